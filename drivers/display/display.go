// Package display glues mode programming, the HDMI transmitter and hot plug
// handling into one controller per device.
//
// Every mode change goes through a Controller, which serializes them. The
// sequence is the one a framebuffer driver runs from its set_par hook: the
// transmitter is powered down, the mode is programmed, the transmitter is
// told about the new timing and powered up again.
package display

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/starsoc/linux-star-x7/drivers/hdmi"
	"github.com/starsoc/linux-star-x7/drivers/hotplug"
	"github.com/starsoc/linux-star-x7/edid"
	"github.com/starsoc/linux-star-x7/modes"
	"github.com/starsoc/linux-star-x7/modeset"
	"github.com/starsoc/linux-star-x7/notify"
	"github.com/starsoc/linux-star-x7/telemetry"
	"github.com/starsoc/linux-star-x7/vga"
)

var ErrTransmitter = errors.New("display: transmitter failed")

// Options configures a Controller. Everything but Default is optional.
type Options struct {
	// Table defaults to modes.Default().
	Table *modes.Table

	// Default is the mode programmed on the first plug in and the preferred
	// choice on every later one.
	Default modes.Request

	Transmitter hdmi.Transmitter
	Notifier    notify.Notifier
	Metrics     *telemetry.Metrics
	Log         *log.Logger
}

// Controller owns one display device.
type Controller struct {
	mu sync.Mutex

	space   *vga.Space
	table   *modes.Table
	def     modes.Request
	tx      hdmi.Transmitter
	notify  notify.Notifier
	metrics *telemetry.Metrics
	log     *log.Logger

	current *modes.Descriptor
	plugged bool
	edid    []byte
	monitor *edid.EDID
	lastErr error
	updated time.Time

	pending []notify.Event // published once mu is released
}

func New(space *vga.Space, opts Options) *Controller {
	c := &Controller{
		space:   space,
		table:   opts.Table,
		def:     opts.Default,
		tx:      opts.Transmitter,
		notify:  opts.Notifier,
		metrics: opts.Metrics,
		log:     opts.Log,
	}
	if c.table == nil {
		c.table = modes.Default()
	}
	if c.log == nil {
		c.log = log.Default()
	}
	for _, d := range c.table.Duplicates() {
		c.log.Printf("display: mode %v at %d shadowed by entry %d", c.table.At(d.Shadow), d.Shadow, d.First)
	}
	return c
}

// SetMode programs the first table mode matching r. Requests the table
// can't satisfy are rejected before the hardware is touched.
func (c *Controller) SetMode(ctx context.Context, r modes.Request) (*modes.Descriptor, error) {
	c.mu.Lock()
	defer c.unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d, err := c.table.Select(r)
	if err != nil {
		c.metrics.ObserveRejected()
		c.fail(err)
		return nil, err
	}
	return d, c.setMode(d)
}

// Current returns the programmed mode, nil if there is none.
func (c *Controller) Current() *modes.Descriptor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// setMode runs with c.mu held.
func (c *Controller) setMode(d *modes.Descriptor) error {
	if c.tx != nil {
		if err := c.tx.PowerOff(); err != nil {
			c.log.Printf("display: %s power off: %v", c.tx.Name(), err)
		}
	}

	stage := modeset.Idle
	a := modeset.Applier{OnStage: func(s modeset.Stage) { stage = s }}
	start, writes := time.Now(), c.space.Writes()
	err := a.Apply(d, c.space)
	elapsed, n := time.Since(start), c.space.Writes()-writes

	if err != nil {
		c.metrics.ObserveApply(d.String(), modeset.Fingerprint(d), elapsed, n, stage.String())
		c.current = nil
		c.log.Printf("display: mode %v: %v", d, err)
		c.fail(err)
		return err
	}
	c.metrics.ObserveApply(d.String(), modeset.Fingerprint(d), elapsed, n, "")
	c.current = d
	c.lastErr = nil
	c.updated = time.Now()
	c.log.Printf("display: mode %v programmed in %v (%d writes)", d, elapsed, n)

	if err := c.startTransmitter(d); err != nil {
		c.fail(err)
		return err
	}

	ev := notify.NewEvent(notify.ModeSet)
	ev.Mode = d.String()
	c.publish(ev)
	return nil
}

func (c *Controller) startTransmitter(d *modes.Descriptor) error {
	if c.tx == nil {
		return nil
	}
	if err := c.tx.Setup(d.Timing(), d.RefreshHz); err != nil {
		return fmt.Errorf("%w: %s setup: %w", ErrTransmitter, c.tx.Name(), err)
	}
	if err := c.tx.PowerOn(); err != nil {
		return fmt.Errorf("%w: %s power on: %w", ErrTransmitter, c.tx.Name(), err)
	}
	return nil
}

func (c *Controller) fail(err error) {
	c.lastErr = err
	c.updated = time.Now()
	ev := notify.NewEvent(notify.Failure)
	ev.Error = err.Error()
	if c.current != nil {
		ev.Mode = c.current.String()
	}
	c.publish(ev)
}

// publish queues ev. It runs with c.mu held.
func (c *Controller) publish(ev notify.Event) {
	if c.notify != nil {
		c.pending = append(c.pending, ev)
	}
}

// unlock releases c.mu and then delivers the events queued while it was
// held, so slow subscribers never stall State or hot plug handling.
func (c *Controller) unlock() {
	evs := c.pending
	c.pending = nil
	c.mu.Unlock()
	for _, ev := range evs {
		if err := c.notify.Notify(ev); err != nil {
			c.log.Printf("display: publish %s: %v", ev.Name, err)
		}
	}
}

// HandleEvent reacts to a hot plug detection. On plug in a mode suited to
// the monitor is programmed, on plug out the transmitter is powered down.
func (c *Controller) HandleEvent(ev hotplug.Event) error {
	c.mu.Lock()
	defer c.unlock()

	c.updated = ev.Time

	switch ev.Kind {
	case hotplug.Plugged:
		c.plugged = true
		c.metrics.ObserveHotplug(ev.Kind.String(), true)
		c.edid, c.monitor = ev.EDID, nil
		if ev.EDID != nil {
			mon, err := edid.Parse(ev.EDID)
			if err != nil {
				c.log.Printf("display: bad capability block: %v", err)
			} else {
				c.monitor = mon
			}
		} else if ev.Err != nil {
			c.log.Printf("display: no capability block: %v", ev.Err)
		}

		d, err := c.choose()
		if err != nil {
			c.fail(err)
			return err
		}
		err = c.setMode(d)
		out := notify.Event{ID: ev.ID, Time: ev.Time, Name: notify.PlugIn, Mode: d.String()}
		if err != nil {
			out.Error = err.Error()
		}
		c.publish(out)
		return err

	case hotplug.Unplugged:
		c.plugged = false
		c.metrics.ObserveHotplug(ev.Kind.String(), false)
		c.edid, c.monitor = nil, nil
		var err error
		if c.tx != nil {
			if err = c.tx.PowerOff(); err != nil {
				err = fmt.Errorf("%w: %s power off: %w", ErrTransmitter, c.tx.Name(), err)
				c.lastErr = err
			}
		}
		out := notify.Event{ID: ev.ID, Time: ev.Time, Name: notify.PlugOut}
		if err != nil {
			out.Error = err.Error()
		}
		c.publish(out)
		return err
	}

	c.metrics.ObserveHotplug(ev.Kind.String(), c.plugged)
	err := ev.Err
	if err == nil {
		err = errors.New("display: hot plug detection failed")
	}
	c.fail(err)
	return err
}

// choose picks the mode for the attached monitor: the default if the
// monitor takes it, else the largest table mode it takes, else the default.
// The monitor is checked against the raster the mode drives, which for
// scaled panel modes is larger than the mode itself.
func (c *Controller) choose() (*modes.Descriptor, error) {
	def, err := c.table.Select(c.def)
	if err != nil {
		return nil, err
	}
	if c.monitor == nil || c.accepts(def) {
		return def, nil
	}

	var best *modes.Descriptor
	for _, d := range c.table.All() {
		if d.BitsPerPixel != def.BitsPerPixel || !c.accepts(d) {
			continue
		}
		if best == nil || d.Width*d.Height > best.Width*best.Height {
			best = d
		}
	}
	if best == nil {
		c.log.Printf("display: monitor %q takes no table mode, keeping %v", c.monitor.Name, def)
		return def, nil
	}
	return best, nil
}

func (c *Controller) accepts(d *modes.Descriptor) bool {
	t := d.Timing()
	return c.monitor.Supports(t.HDisplay, t.VDisplay, d.RefreshHz)
}

// Run handles events until the channel is closed or ctx is done.
func (c *Controller) Run(ctx context.Context, events <-chan hotplug.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.HandleEvent(ev)
		}
	}
}
