package vga

import (
	"errors"
	"fmt"

	"github.com/starsoc/linux-star-x7/debug"
)

var (
	ErrBusWriteFault = errors.New("bus write fault")
	ErrBusReadFault  = errors.New("bus read fault")
)

// Bus performs single byte transactions on the I/O ports of one device, like
// the outb and inb instructions.
type Bus interface {
	Out(port uint16, v byte) error
	In(port uint16) (byte, error)
}

// BusError reports the register access that did not complete. It matches
// ErrBusWriteFault or ErrBusReadFault with errors.Is.
type BusError struct {
	Bank  Bank
	Index uint8
	Port  uint16
	Write bool
	Err   error
}

func (e *BusError) Error() string {
	op := "read"
	if e.Write {
		op = "write"
	}
	switch e.Port {
	case PortMiscWrite, PortMiscRead, PortPixelMask:
		return fmt.Sprintf("vga: %s port 0x%03x: %v", op, e.Port, e.Err)
	}
	return fmt.Sprintf("vga: %s %s%02X (port 0x%03x): %v", op, e.Bank, e.Index, e.Port, e.Err)
}

func (e *BusError) Unwrap() error { return e.Err }

func (e *BusError) Is(target error) bool {
	if e.Write {
		return target == ErrBusWriteFault
	}
	return target == ErrBusReadFault
}

// Space is the register space of one physical device.
type Space struct {
	bus    Bus
	writes uint64
}

func NewSpace(bus Bus) *Space {
	return &Space{bus: bus}
}

// Bus returns the bus the space was created with.
func (s *Space) Bus() Bus { return s.bus }

// Writes returns the number of completed register writes, counting the
// miscellaneous output register but not the pixel mask.
func (s *Space) Writes() uint64 { return s.writes }

// WriteGroup writes values to the contiguous registers base, base+1, ... of
// bank. Each element selects its index and then writes its value. A fault
// stops the group immediately, leaving the registers before it written and the
// ones after it untouched.
func (s *Space) WriteGroup(bank Bank, base uint8, values []byte) error {
	debug.Assertf(int(base)+len(values) <= 0x100,
		"vga: %s group at 0x%02x overflows the index space (%d values)", bank, base, len(values))

	for i, v := range values {
		if err := s.WriteRegister(bank, base+uint8(i), v); err != nil {
			return err
		}
	}
	return nil
}

// WriteRegister writes v to register index of bank.
func (s *Space) WriteRegister(bank Bank, index uint8, v byte) error {
	if bank == Attribute {
		// The attribute controller shares one port for index and data,
		// reading input status 1 puts its flip-flop into index state.
		if _, err := s.bus.In(PortInputStat1); err != nil {
			return &BusError{bank, index, PortInputStat1, true, err}
		}
	}
	if err := s.bus.Out(bank.IndexPort(), index); err != nil {
		return &BusError{bank, index, bank.IndexPort(), true, err}
	}
	if err := s.bus.Out(bank.DataPort(), v); err != nil {
		return &BusError{bank, index, bank.DataPort(), true, err}
	}
	s.writes++
	return nil
}

// ReadRegister returns the value of register index of bank. It's meant for
// diagnostics only, mode programming never reads back.
func (s *Space) ReadRegister(bank Bank, index uint8) (byte, error) {
	if bank == Attribute {
		if _, err := s.bus.In(PortInputStat1); err != nil {
			return 0, &BusError{bank, index, PortInputStat1, false, err}
		}
	}
	if err := s.bus.Out(bank.IndexPort(), index); err != nil {
		return 0, &BusError{bank, index, bank.IndexPort(), true, err}
	}
	v, err := s.bus.In(bank.ReadPort())
	if err != nil {
		return 0, &BusError{bank, index, bank.ReadPort(), false, err}
	}
	return v, nil
}

// ReadGroup reads n contiguous registers starting at base.
func (s *Space) ReadGroup(bank Bank, base uint8, n int) ([]byte, error) {
	values := make([]byte, n)
	for i := range values {
		v, err := s.ReadRegister(bank, base+uint8(i))
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// WriteMisc writes the miscellaneous output register, which selects the dot
// clock and the sync polarities.
func (s *Space) WriteMisc(v byte) error {
	if err := s.bus.Out(PortMiscWrite, v); err != nil {
		return &BusError{Port: PortMiscWrite, Write: true, Err: err}
	}
	s.writes++
	return nil
}

func (s *Space) ReadMisc() (byte, error) {
	v, err := s.bus.In(PortMiscRead)
	if err != nil {
		return 0, &BusError{Port: PortMiscRead, Err: err}
	}
	return v, nil
}

// EnablePalette reconnects the palette to the display. Attribute register
// writes select their index with AttrPaletteSource clear, so this has to
// follow them. It is not counted as a register write.
func (s *Space) EnablePalette() error {
	if _, err := s.bus.In(PortInputStat1); err != nil {
		return &BusError{Bank: Attribute, Port: PortInputStat1, Err: err}
	}
	if err := s.bus.Out(PortAttrIndex, AttrPaletteSource); err != nil {
		return &BusError{Bank: Attribute, Port: PortAttrIndex, Write: true, Err: err}
	}
	return nil
}

// SetPixelMask writes the DAC pixel mask. A zero mask forces every pixel to
// palette entry 0, which blanks the output without touching any timing.
func (s *Space) SetPixelMask(v byte) error {
	if err := s.bus.Out(PortPixelMask, v); err != nil {
		return &BusError{Port: PortPixelMask, Write: true, Err: err}
	}
	return nil
}

func (s *Space) PixelMask() (byte, error) {
	v, err := s.bus.In(PortPixelMask)
	if err != nil {
		return 0, &BusError{Port: PortPixelMask, Err: err}
	}
	return v, nil
}
