package modeset_test

import (
	"testing"

	"github.com/starsoc/linux-star-x7/modes"
	"github.com/starsoc/linux-star-x7/modeset"
	"github.com/starsoc/linux-star-x7/vga"
	"github.com/starsoc/linux-star-x7/vga/vgatest"
)

func TestFingerprint(t *testing.T) {
	seen := make(map[uint8]string)
	for _, d := range modes.Default().All() {
		fp := modeset.Fingerprint(d)
		if fp != modeset.Fingerprint(d) {
			t.Fatalf("%v: fingerprint not stable", d)
		}
		seen[fp] = d.String()
	}
	if len(seen) < 2 {
		t.Error("all modes have the same fingerprint")
	}
}

func TestVerify(t *testing.T) {
	emu := vgatest.NewEmulator()
	s := vga.NewSpace(emu)
	d := lookup(t, 1024, 768, 24)

	if err := modeset.Apply(d, s); err != nil {
		t.Fatal(err)
	}
	r, err := modeset.Verify(d, s)
	if err != nil {
		t.Fatal(err)
	}
	if !r.OK() {
		t.Errorf("mismatches after apply: %v", r.Mismatches)
	}
	if r.Expected != r.Actual {
		t.Errorf("fingerprints differ: %02x != %02x", r.Expected, r.Actual)
	}

	emu.SetRegister(vga.CRTC, 0x31, ^d.Group(modes.CRTCExt)[1])
	emu.Reset()
	r, err = modeset.Verify(d, s)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Mismatches) != 1 {
		t.Fatalf("got mismatches %v, want one", r.Mismatches)
	}
	m := r.Mismatches[0]
	if m.Group != modes.CRTCExt || m.Index != 0x31 {
		t.Errorf("got %v", m)
	}
	if len(emu.Writes()) != 0 {
		t.Error("Verify wrote registers")
	}
	if !emu.PaletteSource() {
		t.Error("Verify left the palette disconnected")
	}
}
