package framebuffer

import (
	"bytes"

	"github.com/starsoc/linux-star-x7/modes"
)

// Bitfield locates a color channel inside a pixel.
type Bitfield struct {
	Offset, Length, MSBRight uint32
}

// Sync flags.
const (
	SyncHorHighAct  = 1
	SyncVertHighAct = 2
)

// VarScreenInfo mirrors struct fb_var_screeninfo.
type VarScreenInfo struct {
	XRes, YRes               uint32
	XResVirtual, YResVirtual uint32
	XOffset, YOffset         uint32
	BitsPerPixel, Grayscale  uint32
	Red, Green, Blue, Transp Bitfield
	NonStd, Activate         uint32
	Height, Width            uint32 // mm
	AccelFlags               uint32
	PixClock                 uint32 // ps
	LeftMargin, RightMargin  uint32
	UpperMargin, LowerMargin uint32
	HSyncLen, VSyncLen       uint32
	Sync, VMode, Rotate      uint32
	Colorspace               uint32
	_                        [4]uint32
}

// FixScreenInfo mirrors struct fb_fix_screeninfo.
type FixScreenInfo struct {
	ID                    [16]byte
	SmemStart             uintptr
	SmemLen               uint32
	Type, TypeAux, Visual uint32
	XPanStep, YPanStep    uint16
	YWrapStep             uint16
	LineLength            uint32
	MMIOStart             uintptr
	MMIOLen               uint32
	Accel                 uint32
	Capabilities          uint16
	_                     [2]uint16
}

// Name returns the driver's identification string.
func (f *FixScreenInfo) Name() string {
	id := f.ID[:]
	if i := bytes.IndexByte(id, 0); i >= 0 {
		id = id[:i]
	}
	return string(id)
}

// VarFromDescriptor returns the screen info describing d. The margins and
// sync lengths come from the CRT raster d programs. Scaled panel modes show
// fewer pixels than the raster, the difference is added to the right and
// lower margins so the totals still match.
func VarFromDescriptor(d *modes.Descriptor) VarScreenInfo {
	t := d.Timing()
	v := VarScreenInfo{
		XRes:         uint32(d.Width),
		YRes:         uint32(d.Height),
		XResVirtual:  uint32(d.Width),
		YResVirtual:  uint32(d.Height),
		BitsPerPixel: uint32(d.BitsPerPixel),
		LeftMargin:   uint32(t.HTotal - t.HSyncEnd),
		RightMargin:  uint32(t.HSyncStart - d.Width),
		HSyncLen:     uint32(t.HSyncEnd - t.HSyncStart),
		UpperMargin:  uint32(t.VTotal - t.VSyncEnd),
		LowerMargin:  uint32(t.VSyncStart - d.Height),
		VSyncLen:     uint32(t.VSyncEnd - t.VSyncStart),
	}
	if hz := t.PixelClockHz(d.RefreshHz); hz > 0 {
		v.PixClock = uint32(1e12 / int64(hz))
	}
	if t.HSyncPositive {
		v.Sync |= SyncHorHighAct
	}
	if t.VSyncPositive {
		v.Sync |= SyncVertHighAct
	}
	switch d.BitsPerPixel {
	case 16:
		v.Red = Bitfield{Offset: 11, Length: 5}
		v.Green = Bitfield{Offset: 5, Length: 6}
		v.Blue = Bitfield{Offset: 0, Length: 5}
	default:
		v.Red = Bitfield{Offset: 16, Length: 8}
		v.Green = Bitfield{Offset: 8, Length: 8}
		v.Blue = Bitfield{Offset: 0, Length: 8}
	}
	return v
}

// Request returns the mode request v describes. The refresh rate is derived
// from the pixel clock and is zero if v carries none.
func (v *VarScreenInfo) Request() modes.Request {
	r := modes.Request{
		Width:        int(v.XRes),
		Height:       int(v.YRes),
		BitsPerPixel: int(v.BitsPerPixel),
	}
	htotal := int64(v.XRes + v.RightMargin + v.HSyncLen + v.LeftMargin)
	vtotal := int64(v.YRes + v.LowerMargin + v.VSyncLen + v.UpperMargin)
	if v.PixClock > 0 && htotal > 0 && vtotal > 0 {
		hz := 1e12 / int64(v.PixClock)
		r.RefreshHz = int((hz + htotal*vtotal/2) / (htotal * vtotal))
	}
	return r
}
