package display

import (
	"fmt"
	"time"

	"github.com/starsoc/linux-star-x7/modes"
	"github.com/starsoc/linux-star-x7/modeset"
)

// State is a snapshot of a Controller.
type State struct {
	Mode        string        `json:"mode,omitempty"`
	Fingerprint string        `json:"fingerprint,omitempty"`
	Timing      *modes.Timing `json:"timing,omitempty"`
	PixelClock  int           `json:"pixel_clock_hz,omitempty"`

	Transmitter string   `json:"transmitter,omitempty"`
	Cable       string   `json:"cable_state"` // plugin or plugout
	Monitor     string   `json:"monitor,omitempty"`
	Modes       []string `json:"monitor_modes,omitempty"`

	EDID []byte `json:"-"`

	LastError string    `json:"last_error,omitempty"`
	Updated   time.Time `json:"updated"`
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := State{Cable: "plugout", Updated: c.updated}
	if c.plugged {
		s.Cable = "plugin"
	}
	if d := c.current; d != nil {
		t := d.Timing()
		s.Mode = d.String()
		s.Fingerprint = fmt.Sprintf("%02x", modeset.Fingerprint(d))
		s.Timing = &t
		s.PixelClock = t.PixelClockHz(d.RefreshHz)
	}
	if c.tx != nil {
		s.Transmitter = c.tx.Name()
	}
	if c.monitor != nil {
		s.Monitor = c.monitor.Name
		for _, m := range c.monitor.Modes() {
			s.Modes = append(s.Modes, m.String())
		}
	}
	if c.edid != nil {
		s.EDID = append([]byte(nil), c.edid...)
	}
	if c.lastErr != nil {
		s.LastError = c.lastErr.Error()
	}
	return s
}
