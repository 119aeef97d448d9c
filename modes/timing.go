package modes

import "github.com/starsoc/linux-star-x7/vga"

// Timing is the CRT raster programmed by a mode, in pixels and lines.
//
// Panel modes smaller than the native panel keep the CRT controller at the
// panel raster and scale through the shadow registers, so the display size
// here can exceed the descriptor's Width and Height.
type Timing struct {
	HDisplay, HSyncStart, HSyncEnd, HTotal int
	VDisplay, VSyncStart, VSyncEnd, VTotal int

	HSyncPositive, VSyncPositive bool
}

// PixelClockHz returns the dot clock needed to scan the raster hz times per
// second.
func (t Timing) PixelClockHz(hz int) int {
	return t.HTotal * t.VTotal * hz
}

// Timing decodes the standard CRT controller registers and the sync polarity
// bits of the miscellaneous output register.
func (d *Descriptor) Timing() Timing {
	cr := d.Regs[CRTCBase]
	ov := int(cr[0x07])
	bit := func(n, shift int) int { return (ov >> n & 1) << shift }

	hss := int(cr[0x04])
	hse := hss&^0x1f | int(cr[0x05])&0x1f
	if hse <= hss {
		hse += 0x20
	}
	vss := int(cr[0x10]) | bit(2, 8) | bit(7, 9)
	vse := vss&^0x0f | int(cr[0x11])&0x0f
	if vse <= vss {
		vse += 0x10
	}
	return Timing{
		HTotal:        (int(cr[0x00]) + 5) * 8,
		HDisplay:      (int(cr[0x01]) + 1) * 8,
		HSyncStart:    hss * 8,
		HSyncEnd:      hse * 8,
		VTotal:        (int(cr[0x06]) | bit(0, 8) | bit(5, 9)) + 2,
		VDisplay:      (int(cr[0x12]) | bit(1, 8) | bit(6, 9)) + 1,
		VSyncStart:    vss,
		VSyncEnd:      vse,
		HSyncPositive: d.Misc&vga.MiscHSyncNegative == 0,
		VSyncPositive: d.Misc&vga.MiscVSyncNegative == 0,
	}
}
