package modes

import (
	"fmt"

	"github.com/starsoc/linux-star-x7/vga"
)

// Group is one contiguous register range programmed by a mode. Groups are
// declared in the order they must be written.
type Group uint8

const (
	SeqBase    Group = iota // SR00-SR04, standard VGA sequencer
	SeqExtLow               // SR10-SR24, clock and memory control
	SeqExtMid               // SR30-SR75, flat panel timing and PLLs
	SeqExtHigh              // SR80-SR93, pop-up icon and hardware cursor
	SeqVendor               // SRA0-SRAF, panel power sequencing
	Gfx                     // GR00-GR08
	Attr                    // AR00-AR14
	CRTCBase                // CR00-CR18, standard VGA timing
	CRTCExt                 // CR30-CR4D, extended and shadow timing
	CRTCVendor              // CR90-CRA7, vendor extended

	NumGroups
)

type layout struct {
	bank vga.Bank
	base uint8
	size int
}

// The sizes are those of the hardware register ranges and never vary between
// modes.
var layouts = [NumGroups]layout{
	SeqBase:    {vga.Sequencer, 0x00, 0x04 - 0x00 + 1},
	SeqExtLow:  {vga.Sequencer, 0x10, 0x24 - 0x10 + 1},
	SeqExtMid:  {vga.Sequencer, 0x30, 0x75 - 0x30 + 1},
	SeqExtHigh: {vga.Sequencer, 0x80, 0x93 - 0x80 + 1},
	SeqVendor:  {vga.Sequencer, 0xa0, 0xaf - 0xa0 + 1},
	Gfx:        {vga.Graphics, 0x00, 0x08 - 0x00 + 1},
	Attr:       {vga.Attribute, 0x00, 0x14 - 0x00 + 1},
	CRTCBase:   {vga.CRTC, 0x00, 0x18 - 0x00 + 1},
	CRTCExt:    {vga.CRTC, 0x30, 0x4d - 0x30 + 1},
	CRTCVendor: {vga.CRTC, 0x90, 0xa7 - 0x90 + 1},
}

// Bank returns the register bank the group is written to.
func (g Group) Bank() vga.Bank { return layouts[g].bank }

// Base returns the index of the first register in the group.
func (g Group) Base() uint8 { return layouts[g].base }

// Size returns the fixed number of registers in the group.
func (g Group) Size() int { return layouts[g].size }

// Extended reports whether the group lies in the SM712 vendor extension of its
// bank rather than the standard VGA range.
func (g Group) Extended() bool {
	switch g {
	case SeqBase, Gfx, Attr, CRTCBase:
		return false
	}
	return true
}

func (g Group) String() string {
	if g >= NumGroups {
		return fmt.Sprintf("Group(%d)", uint8(g))
	}
	l := layouts[g]
	return fmt.Sprintf("%s%02X-%s%02X", l.bank, l.base, l.bank, int(l.base)+l.size-1)
}

// RegisterWrites returns the number of register writes needed to program one
// mode: the miscellaneous output register plus every register of every group.
func RegisterWrites() int {
	n := 1
	for _, l := range layouts {
		n += l.size
	}
	return n
}
