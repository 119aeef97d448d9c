// Package modeset programs a display mode into the SM712 register space.
//
// A mode change blanks the output, writes the miscellaneous output register,
// writes the register groups in the order sequencer, graphics, attribute and
// CRT controller, and finally unblanks. The sequencer gates the dot clock the
// CRT timing depends on, so the order is fixed.
//
// Individual writes are never retried. If a write faults the mode change
// stops and the hardware is left in an undefined intermediate state. The only
// recovery is a complete new mode change.
//
// Nothing here is synchronized. Callers must make sure only one mode change
// runs per device at a time and that nothing else touches the device while it
// runs.
package modeset

import (
	"errors"
	"fmt"

	"github.com/starsoc/linux-star-x7/debug"
	"github.com/starsoc/linux-star-x7/modes"
	"github.com/starsoc/linux-star-x7/vga"
)

var ErrApplyFailed = errors.New("modeset: apply failed")

// ApplyError is returned when a mode change didn't complete. It matches
// ErrApplyFailed and, through Err, the cause of the failure.
type ApplyError struct {
	Stage Stage
	Err   error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("modeset: apply failed at stage %q: %v", e.Stage, e.Err)
}

func (e *ApplyError) Unwrap() error { return e.Err }

func (e *ApplyError) Is(target error) bool { return target == ErrApplyFailed }

// Applier programs modes. The zero value is ready to use.
type Applier struct {
	// OnStage, if set, is called whenever a stage is entered.
	OnStage func(Stage)
}

// Apply programs d using a zero Applier.
func Apply(d *modes.Descriptor, s *vga.Space) error {
	var a Applier
	return a.Apply(d, s)
}

func stageOf(b vga.Bank) Stage {
	switch b {
	case vga.Sequencer:
		return WritingSequencer
	case vga.Graphics:
		return WritingGraphics
	case vga.Attribute:
		return WritingAttribute
	}
	return WritingCRT
}

// Apply programs d into s. On success the output is unblanked and s holds
// the complete mode.
func (a *Applier) Apply(d *modes.Descriptor, s *vga.Space) error {
	stage := Idle
	enter := func(next Stage) {
		stage = next
		if a.OnStage != nil {
			a.OnStage(next)
		}
	}
	fail := func(err error) error {
		return &ApplyError{Stage: stage, Err: err}
	}

	if d == nil {
		return fail(modes.ErrNoMatchingMode)
	}

	enter(Blanked)
	if err := s.SetPixelMask(vga.PixelMaskBlank); err != nil {
		return fail(err)
	}

	enter(WritingMisc)
	if err := s.WriteMisc(d.Misc); err != nil {
		return fail(err)
	}

	for g := modes.Group(0); g < modes.NumGroups; g++ {
		if next := stageOf(g.Bank()); next != stage {
			enter(next)
		}
		debug.Assert(len(d.Group(g)) == g.Size(), "modeset: descriptor bypassed table validation")
		if err := s.WriteGroup(g.Bank(), g.Base(), d.Group(g)); err != nil {
			return fail(fmt.Errorf("%v: %w", g, err))
		}
	}

	enter(Unblanked)
	if err := s.EnablePalette(); err != nil {
		return fail(err)
	}
	if err := s.SetPixelMask(vga.PixelMaskUnblank); err != nil {
		return fail(err)
	}
	return nil
}
