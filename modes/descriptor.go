package modes

import "fmt"

// Descriptor fully specifies one display mode.
type Descriptor struct {
	Width, Height int
	BitsPerPixel  int
	RefreshHz     int

	// Misc is written to the miscellaneous output register. It selects the
	// dot clock and the sync polarities.
	Misc byte

	Regs [NumGroups][]byte
}

// Group returns the register values of g.
func (d *Descriptor) Group(g Group) []byte { return d.Regs[g] }

func (d *Descriptor) String() string {
	return fmt.Sprintf("%dx%d-%d@%d", d.Width, d.Height, d.BitsPerPixel, d.RefreshHz)
}

func (d *Descriptor) validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("bad dimensions %dx%d", d.Width, d.Height)
	}
	if d.RefreshHz <= 0 {
		return fmt.Errorf("bad refresh rate %d", d.RefreshHz)
	}
	switch d.BitsPerPixel {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("unsupported depth %d", d.BitsPerPixel)
	}
	for g := Group(0); g < NumGroups; g++ {
		if n := len(d.Regs[g]); n != g.Size() {
			return fmt.Errorf("%v has %d registers, want %d", g, n, g.Size())
		}
	}
	return nil
}

func (d *Descriptor) clone() Descriptor {
	c := *d
	for g := range c.Regs {
		c.Regs[g] = append([]byte(nil), d.Regs[g]...)
	}
	return c
}

type key struct{ w, h, bpp int }

func (d *Descriptor) key() key { return key{d.Width, d.Height, d.BitsPerPixel} }
