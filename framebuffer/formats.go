package framebuffer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Stores pixels as little endian RGB 5:6:5.
type RGB565 struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

func NewRGB565(r image.Rectangle) *RGB565 {
	return &RGB565{
		Pix:    make([]byte, r.Dx()*r.Dy()*2),
		Stride: 2 * r.Dx(),
		Rect:   r,
	}
}

type colorRGB565 uint16

func (c colorRGB565) RGBA() (r, g, b, a uint32) {
	r = uint32(c>>11) & 0x1f
	g = uint32(c>>5) & 0x3f
	b = uint32(c) & 0x1f
	return r<<11 | r<<6 | r<<1 | r>>4, g<<10 | g<<4 | g>>2, b<<11 | b<<6 | b<<1 | b>>4, 0xffff
}

var RGB565Model color.Model = color.ModelFunc(rgb565Model)

func rgb565Model(c color.Color) color.Color {
	if _, ok := c.(colorRGB565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return colorRGB565((r & 0xf800) | (g&0xfc00)>>5 | (b&0xf800)>>11)
}

func (p *RGB565) ColorModel() color.Model { return RGB565Model }

func (p *RGB565) Bounds() image.Rectangle { return p.Rect }

func (p *RGB565) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}

func (p *RGB565) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return colorRGB565(0)
	}
	i := p.PixOffset(x, y)
	return colorRGB565(uint16(p.Pix[i]) | uint16(p.Pix[i+1])<<8)
}

func (p *RGB565) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	v := rgb565Model(c).(colorRGB565)
	p.Pix[i], p.Pix[i+1] = byte(v), byte(v>>8)
}

// Stores pixels as packed 24 bit triplets in blue, green, red order.
type BGR888 struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

func NewBGR888(r image.Rectangle) *BGR888 {
	return &BGR888{
		Pix:    make([]byte, r.Dx()*r.Dy()*3),
		Stride: 3 * r.Dx(),
		Rect:   r,
	}
}

func (p *BGR888) ColorModel() color.Model { return color.RGBAModel }

func (p *BGR888) Bounds() image.Rectangle { return p.Rect }

func (p *BGR888) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

func (p *BGR888) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	return color.RGBA{p.Pix[i+2], p.Pix[i+1], p.Pix[i], 0xff}
}

func (p *BGR888) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	r, g, b, _ := c.RGBA()
	p.Pix[i], p.Pix[i+1], p.Pix[i+2] = byte(b>>8), byte(g>>8), byte(r>>8)
}

// Stores pixels as little endian 32 bit words with an unused top byte.
type XRGB8888 struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

func NewXRGB8888(r image.Rectangle) *XRGB8888 {
	return &XRGB8888{
		Pix:    make([]byte, r.Dx()*r.Dy()*4),
		Stride: 4 * r.Dx(),
		Rect:   r,
	}
}

func (p *XRGB8888) ColorModel() color.Model { return color.RGBAModel }

func (p *XRGB8888) Bounds() image.Rectangle { return p.Rect }

func (p *XRGB8888) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*4
}

func (p *XRGB8888) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	return color.RGBA{p.Pix[i+2], p.Pix[i+1], p.Pix[i], 0xff}
}

func (p *XRGB8888) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	r, g, b, _ := c.RGBA()
	p.Pix[i], p.Pix[i+1], p.Pix[i+2], p.Pix[i+3] = byte(b>>8), byte(g>>8), byte(r>>8), 0
}

// NewImage returns an image of the given depth over pix, which holds rows
// stride bytes apart. A nil pix allocates a new buffer.
func NewImage(bpp int, r image.Rectangle, pix []byte, stride int) (draw.Image, error) {
	var img draw.Image
	var need int
	switch bpp {
	case 16:
		p := NewRGB565(r)
		if pix != nil {
			p.Pix, p.Stride = pix, stride
		}
		img, need = p, r.Dy()*p.Stride
	case 24:
		p := NewBGR888(r)
		if pix != nil {
			p.Pix, p.Stride = pix, stride
		}
		img, need = p, r.Dy()*p.Stride
	case 32:
		p := NewXRGB8888(r)
		if pix != nil {
			p.Pix, p.Stride = pix, stride
		}
		img, need = p, r.Dy()*p.Stride
	default:
		return nil, fmt.Errorf("framebuffer: unsupported depth %d", bpp)
	}
	if pix != nil && len(pix) < need {
		return nil, fmt.Errorf("framebuffer: %d bytes can't hold %v at %d bpp", len(pix), r.Size(), bpp)
	}
	return img, nil
}
