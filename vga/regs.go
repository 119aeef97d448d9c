package vga

import "fmt"

// I/O ports of the VGA core. On the SM712 the same ports are also mirrored
// into the MMIO register window, see MMIO.
const (
	PortAttrIndex  uint16 = 0x3c0 // attribute index and data (W), flip-flop selected
	PortAttrRead   uint16 = 0x3c1 // attribute data (R)
	PortMiscWrite  uint16 = 0x3c2 // miscellaneous output (W)
	PortSeqIndex   uint16 = 0x3c4
	PortSeqData    uint16 = 0x3c5
	PortPixelMask  uint16 = 0x3c6 // DAC pixel mask (RW)
	PortDACWIndex  uint16 = 0x3c8
	PortDACData    uint16 = 0x3c9
	PortMiscRead   uint16 = 0x3cc // miscellaneous output (R)
	PortGfxIndex   uint16 = 0x3ce
	PortGfxData    uint16 = 0x3cf
	PortCRTCIndex  uint16 = 0x3d4
	PortCRTCData   uint16 = 0x3d5
	PortInputStat1 uint16 = 0x3da // reading resets the attribute flip-flop (R)
)

// Bank is one of the indexed register banks of the VGA core. The SM712 vendor
// extensions (SR10 and up, CR30 and up) live in the sequencer and CRTC banks
// above the standard VGA indices.
type Bank uint8

const (
	Sequencer Bank = iota
	Graphics
	Attribute
	CRTC

	NumBanks
)

type ports struct {
	index, data, read uint16
}

var bankPorts = [NumBanks]ports{
	Sequencer: {PortSeqIndex, PortSeqData, PortSeqData},
	Graphics:  {PortGfxIndex, PortGfxData, PortGfxData},
	Attribute: {PortAttrIndex, PortAttrIndex, PortAttrRead},
	CRTC:      {PortCRTCIndex, PortCRTCData, PortCRTCData},
}

// IndexPort returns the port a register index is selected on.
func (b Bank) IndexPort() uint16 { return bankPorts[b].index }

// DataPort returns the port a selected register is written through.
func (b Bank) DataPort() uint16 { return bankPorts[b].data }

// ReadPort returns the port a selected register is read from.
func (b Bank) ReadPort() uint16 { return bankPorts[b].read }

func (b Bank) String() string {
	switch b {
	case Sequencer:
		return "SR"
	case Graphics:
		return "GR"
	case Attribute:
		return "AR"
	case CRTC:
		return "CR"
	}
	return fmt.Sprintf("Bank(%d)", uint8(b))
}

// Bits of the miscellaneous output register.
const (
	MiscIOAddress     byte = 1 << 0 // CRTC at 0x3d4 instead of 0x3b4
	MiscRAMEnable     byte = 1 << 1
	MiscClockMask     byte = 3 << 2
	MiscPageSelect    byte = 1 << 5
	MiscHSyncNegative byte = 1 << 6
	MiscVSyncNegative byte = 1 << 7
)

const (
	PixelMaskBlank   byte = 0x00
	PixelMaskUnblank byte = 0xff
)

// AttrPaletteSource is the palette address source bit of the attribute
// index register. While it is clear the palette is cut off from the display.
const AttrPaletteSource byte = 1 << 5
