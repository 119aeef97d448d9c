// Package smbus implements SMBus style byte register access on top of a
// periph I2C device.
package smbus

import (
	"context"
	"fmt"
	"time"

	"periph.io/x/conn/v3/i2c"
)

// Dev is an I2C device with 8 bit register addresses.
type Dev struct {
	i2c.Dev
}

func New(bus i2c.Bus, addr uint16) *Dev {
	return &Dev{i2c.Dev{Bus: bus, Addr: addr}}
}

// ReadReg reads register reg.
func (d *Dev) ReadReg(reg byte) (byte, error) {
	var v [1]byte
	if err := d.Tx([]byte{reg}, v[:]); err != nil {
		return 0, fmt.Errorf("read reg 0x%02x at 0x%02x: %w", reg, d.Addr, err)
	}
	return v[0], nil
}

// WriteReg writes v to register reg.
func (d *Dev) WriteReg(reg, v byte) error {
	if err := d.Tx([]byte{reg, v}, nil); err != nil {
		return fmt.Errorf("write reg 0x%02x at 0x%02x: %w", reg, d.Addr, err)
	}
	return nil
}

// Reg is a register address and value pair.
type Reg struct{ Addr, Val byte }

// WriteRegs writes a register sequence, stopping at the first error.
func (d *Dev) WriteRegs(seq []Reg) error {
	for _, r := range seq {
		if err := d.WriteReg(r.Addr, r.Val); err != nil {
			return err
		}
	}
	return nil
}

// ReadBlock reads len(p) bytes starting at register reg.
func (d *Dev) ReadBlock(reg byte, p []byte) error {
	if err := d.Tx([]byte{reg}, p); err != nil {
		return fmt.Errorf("read %d bytes from 0x%02x at 0x%02x: %w", len(p), reg, d.Addr, err)
	}
	return nil
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
