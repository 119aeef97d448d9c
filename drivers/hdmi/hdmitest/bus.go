// Package hdmitest provides an in-memory I2C bus with emulated register files
// for testing transmitter drivers.
package hdmitest

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"

	"github.com/starsoc/linux-star-x7/drivers/hdmi/smbus"
)

// ErrNoAck is returned for transactions to an address nothing is attached
// to.
var ErrNoAck = errors.New("hdmitest: no ack")

// Target is something attached to the bus.
type Target interface {
	Tx(w, r []byte) error
}

// Stopper is a Target that reacts to the stop condition ending every
// transaction on the bus.
type Stopper interface {
	Stop()
}

// Bus implements i2c.Bus.
type Bus struct {
	mu      sync.Mutex
	targets map[uint16]Target
}

var (
	_ i2c.Bus        = (*Bus)(nil)
	_ smbus.Combiner = (*Bus)(nil)
)

func NewBus() *Bus {
	return &Bus{targets: make(map[uint16]Target)}
}

// Attach puts t on the bus at addr.
func (b *Bus) Attach(addr uint16, t Target) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.targets[addr] = t
}

// Detach removes whatever is attached at addr.
func (b *Bus) Detach(addr uint16) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.targets, addr)
}

func (b *Bus) String() string { return "hdmitest" }

func (b *Bus) SetSpeed(f physic.Frequency) error { return nil }

func (b *Bus) Tx(addr uint16, w, r []byte) error {
	return b.TxCombined(smbus.Msg{Addr: addr, W: w, R: r})
}

// TxCombined runs msgs in order and signals a single stop at the end, or
// at the first message nobody acknowledges.
func (b *Bus) TxCombined(msgs ...smbus.Msg) error {
	defer b.stop()
	for _, m := range msgs {
		b.mu.Lock()
		t, ok := b.targets[m.Addr]
		b.mu.Unlock()
		if !ok {
			return fmt.Errorf("%w at 0x%02x", ErrNoAck, m.Addr)
		}
		if err := t.Tx(m.W, m.R); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bus) stop() {
	b.mu.Lock()
	var ts []Target
	for _, t := range b.targets {
		ts = append(ts, t)
	}
	b.mu.Unlock()
	for _, t := range ts {
		if s, ok := t.(Stopper); ok {
			s.Stop()
		}
	}
}

// Write is a register write seen by a Chip.
type Write struct{ Reg, Val byte }

// Chip is a device with 256 byte wide registers and an auto incrementing
// register pointer.
type Chip struct {
	mu     sync.Mutex
	regs   [256]byte
	writes []Write

	// OnWrite, if set, is called after every register write with the chip
	// locked. It may change registers through Set.
	OnWrite func(c *Chip, reg, v byte)

	// Fail, if set, is returned by every transaction.
	Fail error
}

func (c *Chip) Tx(w, r []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Fail != nil {
		return c.Fail
	}
	if len(w) == 0 {
		return nil
	}
	reg := w[0]
	for _, v := range w[1:] {
		c.regs[reg] = v
		c.writes = append(c.writes, Write{reg, v})
		if c.OnWrite != nil {
			c.OnWrite(c, reg, v)
		}
		reg++
	}
	for i := range r {
		r[i] = c.regs[reg]
		reg++
	}
	return nil
}

// Set changes a register without recording a write. It must only be called
// from OnWrite or while the chip isn't in use.
func (c *Chip) Set(reg, v byte) { c.regs[reg] = v }

// Reg returns the value of a register.
func (c *Chip) Reg(reg byte) byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.regs[reg]
}

// SetReg changes a register without recording a write.
func (c *Chip) SetReg(reg, v byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.regs[reg] = v
}

// Writes returns all register writes in order.
func (c *Chip) Writes() []Write {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Write(nil), c.writes...)
}

// ClearWrites forgets the recorded writes.
func (c *Chip) ClearWrites() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes = nil
}

// EEPROM is a DDC capability block memory. Attach it at 0x50 and its segment
// pointer at 0x30 to emulate E-DDC. The segment pointer falls back to 0 on
// every stop, so segments past the first are only reachable through
// combined transactions.
type EEPROM struct {
	mu      sync.Mutex
	data    []byte
	segment int
}

func NewEEPROM(data []byte) *EEPROM {
	return &EEPROM{data: append([]byte(nil), data...)}
}

func (e *EEPROM) Tx(w, r []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(w) != 1 {
		return errors.New("hdmitest: eeprom expects a one byte offset")
	}
	off := e.segment*256 + int(w[0])
	for i := range r {
		if off+i < len(e.data) {
			r[i] = e.data[off+i]
		} else {
			r[i] = 0xff
		}
	}
	return nil
}

// Stop resets the segment pointer.
func (e *EEPROM) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.segment = 0
}

// SegmentPointer returns the target selecting the 256 byte segment of the
// next read.
func (e *EEPROM) SegmentPointer() Target { return segmentPointer{e} }

type segmentPointer struct{ e *EEPROM }

func (s segmentPointer) Tx(w, r []byte) error {
	if len(w) != 1 || len(r) != 0 {
		return errors.New("hdmitest: bad segment pointer access")
	}
	s.e.mu.Lock()
	defer s.e.mu.Unlock()
	s.e.segment = int(w[0])
	return nil
}
