// Package hdmi provides probing for the HDMI/DVI transmitters that can sit
// behind the SM712's panel interface.
//
// Transmitters are optional. They take the panel signal and only need to be
// told about the timing and powered on and off around mode changes.
//
// See the subdirectories for supported transmitters.
package hdmi

import (
	"context"
	"errors"
	"fmt"
	"log"

	"periph.io/x/conn/v3/i2c"

	"github.com/starsoc/linux-star-x7/drivers/hdmi/sii9022"
	"github.com/starsoc/linux-star-x7/drivers/hdmi/sii9134"
	"github.com/starsoc/linux-star-x7/modes"
)

// Transmitter is an HDMI or DVI transmitter.
type Transmitter interface {
	Name() string

	// Setup programs the input timing after a mode change.
	Setup(t modes.Timing, hz int) error

	PowerOn() error
	PowerOff() error

	// ReadCapabilityBlock reads the monitor's EDID. Transmitters without DDC
	// access return an error matching errors.ErrUnsupported.
	ReadCapabilityBlock(ctx context.Context) ([]byte, error)

	// CablePresent reports whether a monitor is attached.
	CablePresent() (bool, error)

	// AckInterrupt acknowledges the hot plug interrupt seen by the last
	// CablePresent.
	AckInterrupt() error
}

// HotplugEnabler is implemented by transmitters that need their hot plug
// interrupt unmasked.
type HotplugEnabler interface {
	EnableHotplug() error
}

var (
	_ Transmitter    = (*sii9022.Transmitter)(nil)
	_ Transmitter    = (*sii9134.Transmitter)(nil)
	_ HotplugEnabler = (*sii9022.Transmitter)(nil)
)

var ErrUnknownKind = errors.New("hdmi: unknown transmitter")

// Open probes a transmitter of the given kind ("sii9022" or "sii9134") at
// addr. A zero addr selects the kind's default address.
func Open(bus i2c.Bus, kind string, addr uint16, logger *log.Logger) (Transmitter, error) {
	switch kind {
	case "sii9022":
		if addr == 0 {
			addr = sii9022.DefaultAddr
		}
		tx, err := sii9022.Probe(bus, addr, logger)
		if err != nil {
			return nil, err
		}
		return tx, nil
	case "sii9134":
		if addr == 0 {
			addr = sii9134.DefaultAddr
		}
		tx, err := sii9134.Probe(bus, addr, logger)
		if err != nil {
			return nil, err
		}
		return tx, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// ProbeAll returns the first transmitter found on bus, or nil.
func ProbeAll(bus i2c.Bus, logger *log.Logger) Transmitter {
	if tx, err := sii9022.Probe(bus, sii9022.DefaultAddr, logger); err == nil {
		return tx
	}
	if tx, err := sii9134.Probe(bus, sii9134.DefaultAddr, logger); err == nil {
		return tx
	}
	return nil
}
