package modeset_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/starsoc/linux-star-x7/modes"
	"github.com/starsoc/linux-star-x7/modeset"
	"github.com/starsoc/linux-star-x7/vga"
	"github.com/starsoc/linux-star-x7/vga/vgatest"
)

func lookup(t *testing.T, w, h, bpp int) *modes.Descriptor {
	t.Helper()
	d, ok := modes.Default().Lookup(w, h, bpp)
	if !ok {
		t.Fatalf("%dx%d-%d not in table", w, h, bpp)
	}
	return d
}

// expected returns the register writes programming d must produce.
func expected(d *modes.Descriptor) []vgatest.RegWrite {
	w := []vgatest.RegWrite{{Misc: true, Value: d.Misc}}
	for g := modes.Group(0); g < modes.NumGroups; g++ {
		for i, v := range d.Group(g) {
			w = append(w, vgatest.RegWrite{Bank: g.Bank(), Index: g.Base() + uint8(i), Value: v})
		}
	}
	return w
}

func TestApply(t *testing.T) {
	for _, d := range modes.Default().All() {
		t.Run(d.String(), func(t *testing.T) {
			emu := vgatest.NewEmulator()
			s := vga.NewSpace(emu)

			if err := modeset.Apply(d, s); err != nil {
				t.Fatal(err)
			}

			writes := emu.Writes()
			if len(writes) != 242 || s.Writes() != 242 {
				t.Fatalf("got %d register writes (space counted %d), want 242", len(writes), s.Writes())
			}
			if !slices.Equal(writes, expected(d)) {
				t.Error("register writes differ from the mode")
			}
			if n := emu.Unselected(); n != 0 {
				t.Errorf("%d data writes without index selection", n)
			}
			if emu.PixelMask() != vga.PixelMaskUnblank {
				t.Errorf("output left blanked")
			}
		})
	}
}

func TestApplyBlanking(t *testing.T) {
	emu := vgatest.NewEmulator()
	s := vga.NewSpace(emu)
	d := lookup(t, 1024, 600, 16)

	if err := modeset.Apply(d, s); err != nil {
		t.Fatal(err)
	}

	var outs []vgatest.Transaction
	for _, tr := range emu.Log() {
		if tr.Write {
			outs = append(outs, tr)
		}
	}
	first, last := outs[0], outs[len(outs)-1]
	if first != (vgatest.Transaction{Port: vga.PortPixelMask, Value: vga.PixelMaskBlank, Write: true}) {
		t.Errorf("first write %v, want blank", first)
	}
	if last != (vgatest.Transaction{Port: vga.PortPixelMask, Value: vga.PixelMaskUnblank, Write: true}) {
		t.Errorf("last write %v, want unblank", last)
	}
	if second := outs[1]; second != (vgatest.Transaction{Port: vga.PortMiscWrite, Value: 0xeb, Write: true}) {
		t.Errorf("second write %v, want MISC=EB", second)
	}
	for _, tr := range outs[2 : len(outs)-1] {
		if tr.Port == vga.PortPixelMask || tr.Port == vga.PortMiscWrite {
			t.Errorf("unexpected %v between MISC and unblank", tr)
		}
	}
	if pas := outs[len(outs)-2]; pas != (vgatest.Transaction{Port: vga.PortAttrIndex, Value: vga.AttrPaletteSource, Write: true}) {
		t.Errorf("write before unblank %v, want palette source", pas)
	}
	if !emu.PaletteSource() {
		t.Error("palette left disconnected from the display")
	}
	if n := len(emu.Writes()); n != modes.RegisterWrites() {
		t.Errorf("%d register writes, want %d", n, modes.RegisterWrites())
	}
}

func TestApplyStages(t *testing.T) {
	var stages []modeset.Stage
	a := modeset.Applier{OnStage: func(s modeset.Stage) { stages = append(stages, s) }}

	if err := a.Apply(lookup(t, 800, 600, 16), vga.NewSpace(vgatest.NewEmulator())); err != nil {
		t.Fatal(err)
	}
	want := []modeset.Stage{
		modeset.Blanked,
		modeset.WritingMisc,
		modeset.WritingSequencer,
		modeset.WritingGraphics,
		modeset.WritingAttribute,
		modeset.WritingCRT,
		modeset.Unblanked,
	}
	if !slices.Equal(stages, want) {
		t.Errorf("got stages %v, want %v", stages, want)
	}
}

func TestApplyIdempotent(t *testing.T) {
	emu := vgatest.NewEmulator()
	s := vga.NewSpace(emu)
	d := lookup(t, 640, 480, 32)

	if err := modeset.Apply(d, s); err != nil {
		t.Fatal(err)
	}
	var once [vga.NumBanks][256]byte
	for b := vga.Bank(0); b < vga.NumBanks; b++ {
		once[b] = emu.Registers(b)
	}
	misc := emu.Misc()

	if err := modeset.Apply(d, s); err != nil {
		t.Fatal(err)
	}
	for b := vga.Bank(0); b < vga.NumBanks; b++ {
		if emu.Registers(b) != once[b] {
			t.Errorf("%v registers changed by second apply", b)
		}
	}
	if emu.Misc() != misc {
		t.Error("MISC changed by second apply")
	}
}

func TestApplyFault(t *testing.T) {
	d := lookup(t, 640, 480, 16)
	tests := []struct {
		failAfter int
		stage     modeset.Stage
	}{
		{1, modeset.Blanked},
		{2, modeset.WritingMisc},
		{3, modeset.WritingSequencer},
		// blank, MISC and 2 writes per sequencer register
		{2 + 2*(5+21+70+20+16) + 1, modeset.WritingGraphics},
		{2 + 2*(5+21+70+20+16+9) + 1, modeset.WritingAttribute},
		{2 + 2*(5+21+70+20+16+9+21) + 1, modeset.WritingCRT},
		{2 + 2*241 + 1, modeset.Unblanked}, // palette source
		{2 + 2*241 + 2, modeset.Unblanked}, // pixel mask
	}
	for _, tt := range tests {
		t.Run(tt.stage.String(), func(t *testing.T) {
			emu := vgatest.NewEmulator()
			emu.FailAfter(tt.failAfter)

			err := modeset.Apply(d, vga.NewSpace(emu))

			var ae *modeset.ApplyError
			if !errors.As(err, &ae) {
				t.Fatalf("got %v, want ApplyError", err)
			}
			if ae.Stage != tt.stage {
				t.Errorf("failed at %v, want %v", ae.Stage, tt.stage)
			}
			if !errors.Is(err, modeset.ErrApplyFailed) {
				t.Error("error doesn't match ErrApplyFailed")
			}
			if !errors.Is(err, vga.ErrBusWriteFault) {
				t.Error("error doesn't match ErrBusWriteFault")
			}
			if !errors.Is(err, vgatest.ErrInjected) {
				t.Error("error doesn't wrap the bus error")
			}
		})
	}
}

func TestApplyNoMode(t *testing.T) {
	emu := vgatest.NewEmulator()
	s := vga.NewSpace(emu)

	_, err := modes.Default().Select(modes.Request{Width: 99, Height: 99, BitsPerPixel: 16})
	if !errors.Is(err, modes.ErrNoMatchingMode) {
		t.Fatalf("got %v", err)
	}
	err = modeset.Apply(nil, s)
	if !errors.Is(err, modeset.ErrApplyFailed) || !errors.Is(err, modes.ErrNoMatchingMode) {
		t.Errorf("got %v", err)
	}
	if n := len(emu.Log()); n != 0 {
		t.Errorf("%d bus transactions, want none", n)
	}
}
