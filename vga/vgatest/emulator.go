// Package vgatest provides an emulated VGA register file for testing code that
// programs a vga.Space without hardware.
package vgatest

import (
	"errors"
	"fmt"
	"sync"

	"github.com/starsoc/linux-star-x7/vga"
)

// ErrInjected is returned by the emulator when a fault was requested with
// FailAfter.
var ErrInjected = errors.New("vgatest: injected bus fault")

// Transaction is one raw bus access.
type Transaction struct {
	Port  uint16
	Value byte
	Write bool
}

func (t Transaction) String() string {
	if t.Write {
		return fmt.Sprintf("out 0x%03x <- 0x%02x", t.Port, t.Value)
	}
	return fmt.Sprintf("in  0x%03x -> 0x%02x", t.Port, t.Value)
}

// RegWrite is a decoded register write, i.e. a data port write together with
// the index that was selected for it.
type RegWrite struct {
	Misc  bool // miscellaneous output, Bank and Index are meaningless
	Bank  vga.Bank
	Index uint8
	Value byte
}

func (w RegWrite) String() string {
	if w.Misc {
		return fmt.Sprintf("MISC=%02X", w.Value)
	}
	return fmt.Sprintf("%s%02X=%02X", w.Bank, w.Index, w.Value)
}

// Emulator implements vga.Bus on top of an in-memory register file. All
// accesses are logged.
type Emulator struct {
	mu sync.Mutex

	regs    [vga.NumBanks][256]byte
	index   [vga.NumBanks]uint8
	indexed [vga.NumBanks]bool // index selected since last data access

	attrFlip bool // false: next 0x3c0 write is an index
	attrPAS  bool

	misc      byte
	pixelMask byte

	log        []Transaction
	writes     []RegWrite
	unselected int

	outs      int
	failAfter int
}

func NewEmulator() *Emulator {
	return &Emulator{pixelMask: vga.PixelMaskUnblank}
}

// FailAfter makes the n-th port write from now on fail with ErrInjected,
// and every write after it. Zero disables fault injection.
func (e *Emulator) FailAfter(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.outs = 0
	e.failAfter = n
}

func (e *Emulator) Out(port uint16, v byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.outs++
	if e.failAfter > 0 && e.outs >= e.failAfter {
		return ErrInjected
	}
	e.log = append(e.log, Transaction{port, v, true})

	switch port {
	case vga.PortMiscWrite:
		e.misc = v
		e.writes = append(e.writes, RegWrite{Misc: true, Value: v})
	case vga.PortPixelMask:
		e.pixelMask = v
	case vga.PortAttrIndex:
		if !e.attrFlip {
			e.index[vga.Attribute] = v & 0x1f
			e.attrPAS = v&0x20 != 0
			e.indexed[vga.Attribute] = true
		} else {
			e.store(vga.Attribute, v)
		}
		e.attrFlip = !e.attrFlip
	default:
		for b := vga.Bank(0); b < vga.NumBanks; b++ {
			if b == vga.Attribute {
				continue
			}
			switch port {
			case b.IndexPort():
				e.index[b] = v
				e.indexed[b] = true
			case b.DataPort():
				e.store(b, v)
			}
		}
	}
	return nil
}

func (e *Emulator) store(b vga.Bank, v byte) {
	idx := e.index[b]
	if !e.indexed[b] {
		e.unselected++
	}
	e.regs[b][idx] = v
	e.writes = append(e.writes, RegWrite{Bank: b, Index: idx, Value: v})
	e.indexed[b] = false
}

func (e *Emulator) In(port uint16) (byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var v byte
	switch port {
	case vga.PortInputStat1:
		e.attrFlip = false
	case vga.PortMiscRead:
		v = e.misc
	case vga.PortPixelMask:
		v = e.pixelMask
	case vga.PortAttrRead:
		v = e.regs[vga.Attribute][e.index[vga.Attribute]]
	case vga.PortSeqData:
		v = e.regs[vga.Sequencer][e.index[vga.Sequencer]]
	case vga.PortGfxData:
		v = e.regs[vga.Graphics][e.index[vga.Graphics]]
	case vga.PortCRTCData:
		v = e.regs[vga.CRTC][e.index[vga.CRTC]]
	case vga.PortSeqIndex:
		v = e.index[vga.Sequencer]
	case vga.PortGfxIndex:
		v = e.index[vga.Graphics]
	case vga.PortCRTCIndex:
		v = e.index[vga.CRTC]
	}
	e.log = append(e.log, Transaction{port, v, false})
	return v, nil
}

// Register returns the current value of register index of bank.
func (e *Emulator) Register(b vga.Bank, index uint8) byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.regs[b][index]
}

// Registers returns a copy of the whole register file of bank.
func (e *Emulator) Registers(b vga.Bank) [256]byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.regs[b]
}

// SetRegister changes a register without logging a transaction.
func (e *Emulator) SetRegister(b vga.Bank, index uint8, v byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.regs[b][index] = v
}

func (e *Emulator) Misc() byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.misc
}

// PaletteSource reports whether the last attribute index write had the
// palette address source bit set.
func (e *Emulator) PaletteSource() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.attrPAS
}

func (e *Emulator) PixelMask() byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pixelMask
}

// Log returns all transactions since creation or the last Reset.
func (e *Emulator) Log() []Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Transaction(nil), e.log...)
}

// Writes returns the decoded register writes since creation or the last
// Reset.
func (e *Emulator) Writes() []RegWrite {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]RegWrite(nil), e.writes...)
}

// Unselected returns the number of data port writes that were not directly
// preceded by an index selection on the same bank.
func (e *Emulator) Unselected() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.unselected
}

// Reset clears the logs but keeps the register contents.
func (e *Emulator) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.log = nil
	e.writes = nil
	e.unselected = 0
}
