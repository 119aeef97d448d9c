// Package framebuffer draws into the memory a display mode scans out, either
// through a Linux fbdev device or in memory.
package framebuffer

import (
	"image"
	"image/draw"

	"github.com/starsoc/linux-star-x7/modes"
)

// Framebuffer is the visible part of the video memory for one mode. It
// implements draw.Image, so all the drawing tools from the standard library
// can be used on it. It is also a pix.Driver, see pixdriver.go.
type Framebuffer struct {
	draw.Image
	fill image.Uniform
}

// New returns a framebuffer sized for d over pix. A nil pix allocates one.
func New(d *modes.Descriptor, pix []byte, stride int) (*Framebuffer, error) {
	img, err := NewImage(d.BitsPerPixel, image.Rect(0, 0, d.Width, d.Height), pix, stride)
	if err != nil {
		return nil, err
	}
	return &Framebuffer{Image: img}, nil
}
