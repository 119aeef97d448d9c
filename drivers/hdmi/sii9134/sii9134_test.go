package sii9134_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/starsoc/linux-star-x7/drivers/hdmi/hdmitest"
	"github.com/starsoc/linux-star-x7/drivers/hdmi/sii9134"
	"github.com/starsoc/linux-star-x7/modes"
)

func TestProbe(t *testing.T) {
	bus := hdmitest.NewBus()
	chip := &hdmitest.Chip{}
	chip.SetReg(0x02, 0x34)
	chip.SetReg(0x03, 0x91)
	bus.Attach(sii9134.DefaultAddr, chip)

	tx, err := sii9134.Probe(bus, sii9134.DefaultAddr, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []hdmitest.Write{{Reg: 0x05, Val: 0x01}, {Reg: 0x05, Val: 0x00}, {Reg: 0x08, Val: 0xfd}}
	if got := chip.Writes(); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if tx.ID() != 0x9134 {
		t.Errorf("id %04x", tx.ID())
	}

	chip.ClearWrites()
	d, _ := modes.Default().Lookup(800, 600, 16)
	if err := tx.Setup(d.Timing(), d.RefreshHz); err != nil {
		t.Error(err)
	}
	if err := tx.PowerOff(); err != nil {
		t.Error(err)
	}
	if err := tx.PowerOn(); err != nil {
		t.Error(err)
	}
	if w := chip.Writes(); len(w) != 0 {
		t.Errorf("unexpected writes %v", w)
	}

	chip.SetReg(0x3d, 0x04)
	if plugged, err := tx.CablePresent(); err != nil || !plugged {
		t.Errorf("got %v, %v", plugged, err)
	}
	if _, err := tx.ReadCapabilityBlock(context.Background()); !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("got %v", err)
	}
}

func TestProbeFails(t *testing.T) {
	_, err := sii9134.Probe(hdmitest.NewBus(), sii9134.DefaultAddr, nil)
	if !errors.Is(err, hdmitest.ErrNoAck) || !errors.Is(err, sii9134.ErrNotFound) {
		t.Errorf("got %v", err)
	}

	// some other device answering at the address
	bus := hdmitest.NewBus()
	chip := &hdmitest.Chip{}
	chip.SetReg(0x02, 0x22)
	chip.SetReg(0x03, 0x90)
	bus.Attach(sii9134.DefaultAddr, chip)
	if _, err := sii9134.Probe(bus, sii9134.DefaultAddr, nil); !errors.Is(err, sii9134.ErrNotFound) {
		t.Errorf("got %v", err)
	}
	if w := chip.Writes(); len(w) != 0 {
		t.Errorf("wrote %v to a foreign device", w)
	}
}
