package framebuffer

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/colornames"
)

// ColorBars are the bars drawn by DrawColorBars, left to right.
var ColorBars = []color.RGBA{
	colornames.White,
	colornames.Yellow,
	colornames.Cyan,
	colornames.Lime,
	colornames.Magenta,
	colornames.Red,
	colornames.Blue,
	colornames.Black,
}

// DrawColorBars fills img with vertical bars of equal width. Leftover
// columns go to the last bar.
func DrawColorBars(img draw.Image) {
	b := img.Bounds()
	w := b.Dx() / len(ColorBars)
	for i, c := range ColorBars {
		r := b
		r.Min.X = b.Min.X + i*w
		if i < len(ColorBars)-1 {
			r.Max.X = r.Min.X + w
		}
		draw.Draw(img, r, &image.Uniform{c}, image.Point{}, draw.Src)
	}
}
