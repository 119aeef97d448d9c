package modeset

import (
	"fmt"

	"github.com/sigurn/crc8"

	"github.com/starsoc/linux-star-x7/modes"
	"github.com/starsoc/linux-star-x7/vga"
)

var modeCRC8 = crc8.MakeTable(crc8.CRC8)

// Fingerprint returns a CRC-8 over the miscellaneous output value and all
// register groups of d, in programming order. Equal modes have equal
// fingerprints.
func Fingerprint(d *modes.Descriptor) uint8 {
	csum := crc8.Init(modeCRC8)
	csum = crc8.Update(csum, []byte{d.Misc}, modeCRC8)
	for g := modes.Group(0); g < modes.NumGroups; g++ {
		csum = crc8.Update(csum, d.Group(g), modeCRC8)
	}
	return crc8.Complete(csum, modeCRC8)
}

// Mismatch is a register whose live value differs from the mode.
type Mismatch struct {
	Group modes.Group // NumGroups for the miscellaneous output register
	Index uint8
	Want  byte
	Got   byte
}

func (m Mismatch) String() string {
	if m.Group == modes.NumGroups {
		return fmt.Sprintf("MISC: want %02X got %02X", m.Want, m.Got)
	}
	return fmt.Sprintf("%s%02X: want %02X got %02X", m.Group.Bank(), m.Index, m.Want, m.Got)
}

// Report is the result of comparing a device against a mode.
type Report struct {
	Mode       *modes.Descriptor
	Mismatches []Mismatch

	// CRC-8 fingerprints of the expected and of the live register values.
	Expected, Actual uint8
}

func (r *Report) OK() bool { return len(r.Mismatches) == 0 }

// Verify reads back every register d programs and compares it with d. It
// doesn't change any register, and reconnects the palette the attribute reads
// disconnect. Hardware may report different values for
// write-only or status bits, so a mismatch isn't necessarily an error.
func Verify(d *modes.Descriptor, s *vga.Space) (*Report, error) {
	r := &Report{Mode: d, Expected: Fingerprint(d)}

	misc, err := s.ReadMisc()
	if err != nil {
		return nil, err
	}
	if misc != d.Misc {
		r.Mismatches = append(r.Mismatches, Mismatch{modes.NumGroups, 0, d.Misc, misc})
	}
	live := modes.Descriptor{Misc: misc}
	for g := modes.Group(0); g < modes.NumGroups; g++ {
		got, err := s.ReadGroup(g.Bank(), g.Base(), g.Size())
		if err != nil {
			return nil, fmt.Errorf("%v: %w", g, err)
		}
		for i, want := range d.Group(g) {
			if got[i] != want {
				r.Mismatches = append(r.Mismatches, Mismatch{g, g.Base() + uint8(i), want, got[i]})
			}
		}
		live.Regs[g] = got
	}
	if err := s.EnablePalette(); err != nil {
		return nil, err
	}
	r.Actual = Fingerprint(&live)
	return r, nil
}
