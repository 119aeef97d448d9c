package modes

import (
	"fmt"
	"strconv"
	"strings"
)

// Request asks for a display mode. A zero RefreshHz accepts any refresh rate.
type Request struct {
	Width, Height int
	BitsPerPixel  int
	RefreshHz     int
}

func (r Request) String() string {
	s := fmt.Sprintf("%dx%d-%d", r.Width, r.Height, r.BitsPerPixel)
	if r.RefreshHz != 0 {
		s += fmt.Sprintf("@%d", r.RefreshHz)
	}
	return s
}

// Matches reports whether d satisfies r.
func (r Request) Matches(d *Descriptor) bool {
	return d.Width == r.Width && d.Height == r.Height &&
		d.BitsPerPixel == r.BitsPerPixel &&
		(r.RefreshHz == 0 || r.RefreshHz == d.RefreshHz)
}

// ParseRequest parses a frame buffer mode string of the form
// <xres>x<yres>[-<bpp>][@<refresh>], for example "1024x600-16@60". If the
// string has no depth, bpp is used.
func ParseRequest(s string, bpp int) (Request, error) {
	r := Request{BitsPerPixel: bpp}
	bad := func() (Request, error) {
		return Request{}, fmt.Errorf("modes: bad mode string %q", s)
	}
	rest := strings.TrimSpace(s)
	if i := strings.IndexByte(rest, '@'); i >= 0 {
		hz, err := strconv.Atoi(rest[i+1:])
		if err != nil || hz <= 0 {
			return bad()
		}
		r.RefreshHz = hz
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '-'); i >= 0 {
		d, err := strconv.Atoi(rest[i+1:])
		if err != nil || d <= 0 {
			return bad()
		}
		r.BitsPerPixel = d
		rest = rest[:i]
	}
	ws, hs, ok := strings.Cut(rest, "x")
	if !ok {
		return bad()
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return bad()
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return bad()
	}
	r.Width, r.Height = w, h
	if r.BitsPerPixel <= 0 {
		return bad()
	}
	return r, nil
}
