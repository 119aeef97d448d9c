package framebuffer

import (
	"image"
	"image/color"
	"image/draw"
)

func (fb *Framebuffer) Draw(r image.Rectangle, src image.Image, sp image.Point,
	mask image.Image, mp image.Point, op draw.Op) {
	draw.DrawMask(fb.Image, r, src, sp, mask, mp, op)
}

// Fill paints rect with the color last passed to SetColor.
func (fb *Framebuffer) Fill(rect image.Rectangle) {
	fb.Draw(rect, &fb.fill, image.Point{}, nil, image.Point{}, draw.Src)
}

func (fb *Framebuffer) SetColor(c color.Color) {
	fb.fill.C = c
}

// SetDir ignores dir, the scanout direction is fixed by the mode.
func (fb *Framebuffer) SetDir(dir int) image.Rectangle {
	return fb.Bounds()
}

// Flush does nothing, pixels go straight to video memory.
func (fb *Framebuffer) Flush() {}

func (fb *Framebuffer) Err(clear bool) error {
	return nil
}
