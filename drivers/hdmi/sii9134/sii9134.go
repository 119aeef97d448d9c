// Package sii9134 drives the Silicon Image SiI9134 HDMI transmitter.
//
// The transmitter runs with its power on defaults, only reset, power up and
// hot plug status are handled. It has no DDC passthrough, so the monitor's
// capability block can't be read.
package sii9134

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"periph.io/x/conn/v3/i2c"

	"github.com/starsoc/linux-star-x7/drivers/hdmi/smbus"
	"github.com/starsoc/linux-star-x7/modes"
)

const DefaultAddr = 0x39

const deviceID = 0x9134

var ErrNotFound = errors.New("sii9134: device not found")

const (
	regDevIDLow  = 0x02
	regDevIDHigh = 0x03
	regSoftReset = 0x05
	regSysCtrl   = 0x08
	regIntStatus = 0x3d

	sysCtrlPowerUp byte = 0xfd // PD# set, 24 bit bus, rising edge
	intPlugged     byte = 1 << 2
)

// Transmitter is a probed SiI9134. It's safe for concurrent use.
type Transmitter struct {
	mu  sync.Mutex
	dev *smbus.Dev
	log *log.Logger
	id  uint16
}

// Probe checks the device ID at addr, then soft resets the transmitter and
// powers it up. If logger is nil, log.Default is used.
func Probe(bus i2c.Bus, addr uint16, logger *log.Logger) (*Transmitter, error) {
	if logger == nil {
		logger = log.Default()
	}
	t := &Transmitter{dev: smbus.New(bus, addr), log: logger}
	lo, err := t.dev.ReadReg(regDevIDLow)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	hi, err := t.dev.ReadReg(regDevIDHigh)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if t.id = uint16(hi)<<8 | uint16(lo); t.id != deviceID {
		return nil, fmt.Errorf("%w: device id %04X at 0x%02x", ErrNotFound, t.id, addr)
	}
	err = t.dev.WriteRegs([]smbus.Reg{
		{regSoftReset, 0x01},
		{regSoftReset, 0x00},
		{regSysCtrl, sysCtrlPowerUp},
	})
	if err != nil {
		return nil, err
	}
	t.log.Printf("sii9134: device id %04X", t.id)
	return t, nil
}

func (t *Transmitter) Name() string { return "sii9134" }

// ID returns the device ID.
func (t *Transmitter) ID() uint16 { return t.id }

// Setup does nothing, the transmitter follows the input timing by itself.
func (t *Transmitter) Setup(modes.Timing, int) error { return nil }

func (t *Transmitter) PowerOn() error { return nil }

func (t *Transmitter) PowerOff() error { return nil }

func (t *Transmitter) CablePresent() (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, err := t.dev.ReadReg(regIntStatus)
	if err != nil {
		return false, err
	}
	return s&intPlugged != 0, nil
}

// AckInterrupt does nothing, the status clears by itself.
func (t *Transmitter) AckInterrupt() error { return nil }

func (t *Transmitter) ReadCapabilityBlock(context.Context) ([]byte, error) {
	return nil, fmt.Errorf("sii9134: capability block: %w", errors.ErrUnsupported)
}
