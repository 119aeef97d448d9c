package framebuffer

import (
	"image"
	"image/color"

	"github.com/embeddedgo/display/font/subfont"
	"github.com/embeddedgo/display/pix"
	"golang.org/x/image/font/basicfont"
)

const labelMargin = 2

// LabelFace returns a 7x13 fixed face for printable ASCII.
func LabelFace() *subfont.Face {
	f := basicfont.Face7x13
	return &subfont.Face{
		Height: f.Height,
		Ascent: f.Ascent,
		Subfonts: []*subfont.Subfont{
			{First: 0x20, Last: 0x7e, Data: maskData{f}},
		},
	}
}

// maskData serves glyphs from the stacked masks of a basicfont face. Glyph i
// is the i-th cell of the mask, the origin is its baseline dot.
type maskData struct {
	face *basicfont.Face
}

func (m maskData) Advance(i int) int { return m.face.Advance }

func (m maskData) Glyph(i int) (img image.Image, origin image.Point, advance int) {
	f := m.face
	top := i * f.Height
	r := image.Rect(0, top, f.Width, top+f.Height)
	img = f.Mask.(interface {
		SubImage(image.Rectangle) image.Image
	}).SubImage(r)
	return img, image.Pt(0, top+f.Ascent), f.Advance
}

// LabelBounds returns the box DrawLabel fills for text.
func LabelBounds(fb *Framebuffer, text string) image.Rectangle {
	f := basicfont.Face7x13
	b := fb.Bounds()
	r := image.Rect(0, 0, len(text)*f.Advance+2*labelMargin, f.Height+2*labelMargin)
	return r.Add(b.Min).Intersect(b)
}

// DrawLabel writes printable ASCII text in white on a black box in the top
// left corner of fb.
func DrawLabel(fb *Framebuffer, text string) error {
	box := LabelBounds(fb, text)
	fb.SetColor(color.Black)
	fb.Fill(box)

	disp := pix.NewDisplay(fb)
	a := disp.NewArea(disp.Bounds())
	tw := a.NewTextWriter(LabelFace())
	tw.SetColor(color.White)
	tw.Pos = box.Min.Add(image.Pt(labelMargin, labelMargin))
	tw.WriteString(text)
	a.Flush()
	return disp.Err(true)
}
