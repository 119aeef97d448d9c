// Package hotplug watches a transmitter's hot plug line and reports cable
// changes as events.
//
// An edge on the line is debounced, then the transmitter's status is read.
// When a monitor is present its capability block is read, and a failed read
// is retried a bounded number of times. Edges arriving while a detection is
// in progress are absorbed by it.
package hotplug

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// Kind is the kind of an event.
type Kind uint8

const (
	Plugged Kind = iota
	Unplugged
	Failed
)

func (k Kind) String() string {
	switch k {
	case Plugged:
		return "plugin"
	case Unplugged:
		return "plugout"
	case Failed:
		return "error"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Event is the result of one detection.
type Event struct {
	ID   uuid.UUID
	Time time.Time
	Kind Kind

	// EDID is the monitor's capability block. It's nil if the transmitter
	// can't read it or all attempts failed, in which case Err says why.
	EDID     []byte
	Attempts int
	Err      error
}

// EdgeSource delivers edges of the hot plug line. It's satisfied by
// periph's gpio.PinIn.
type EdgeSource interface {
	WaitForEdge(timeout time.Duration) bool
}

// Detector reads the cable state. It's satisfied by hdmi.Transmitter.
type Detector interface {
	CablePresent() (bool, error)
	AckInterrupt() error
	ReadCapabilityBlock(ctx context.Context) ([]byte, error)
}

// Watcher runs detections. The zero durations select the defaults.
type Watcher struct {
	Source   EdgeSource
	Detector Detector

	Debounce      time.Duration // before reading the status, 100 ms
	Retries       int           // additional capability block reads, 2, negative for none
	RetryInterval time.Duration // between reads, 500 ms
	EdgeTimeout   time.Duration // longest wait for an edge, 1 s

	Log *log.Logger
}

func (w *Watcher) defaults() Watcher {
	c := *w
	if c.Debounce <= 0 {
		c.Debounce = 100 * time.Millisecond
	}
	if c.Retries == 0 {
		c.Retries = 2
	} else if c.Retries < 0 {
		c.Retries = 0
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = 500 * time.Millisecond
	}
	if c.EdgeTimeout <= 0 {
		c.EdgeTimeout = time.Second
	}
	if c.Log == nil {
		c.Log = log.Default()
	}
	return c
}

// Run starts watching. A detection runs immediately to report the initial
// state, then one per edge. The returned channel is closed after ctx is done
// and the running detection, if any, has stopped.
func (w *Watcher) Run(ctx context.Context) <-chan Event {
	c := w.defaults()
	events := make(chan Event)
	go func() {
		defer close(events)
		edge := true
		for {
			if edge {
				ev, ok := c.Detect(ctx)
				if !ok {
					return
				}
				select {
				case events <- ev:
				case <-ctx.Done():
					return
				}
			}
			if ctx.Err() != nil {
				return
			}
			edge = c.Source.WaitForEdge(c.EdgeTimeout)
		}
	}()
	return events
}

// Detect performs a single detection. It returns false if ctx was done
// before it completed.
func (w *Watcher) Detect(ctx context.Context) (Event, bool) {
	c := w.defaults()
	ev := Event{ID: uuid.New()}

	if sleep(ctx, c.Debounce) != nil {
		return ev, false
	}
	plugged, err := c.Detector.CablePresent()
	if aerr := c.Detector.AckInterrupt(); err == nil {
		err = aerr
	}
	if err != nil {
		c.Log.Printf("hotplug: status: %v", err)
		ev.Kind, ev.Err, ev.Time = Failed, err, time.Now()
		return ev, true
	}
	if !plugged {
		c.Log.Printf("hotplug: EVENT=plugout")
		ev.Kind, ev.Time = Unplugged, time.Now()
		return ev, true
	}

	c.Log.Printf("hotplug: EVENT=plugin")
	ev.Kind = Plugged
	for {
		ev.Attempts++
		ev.EDID, ev.Err = c.Detector.ReadCapabilityBlock(ctx)
		if ev.Err == nil || errors.Is(ev.Err, errors.ErrUnsupported) {
			break
		}
		c.Log.Printf("hotplug: read edid: %v", ev.Err)
		if errors.Is(ev.Err, context.Canceled) || ev.Attempts > c.Retries {
			break
		}
		if sleep(ctx, c.RetryInterval) != nil {
			return ev, false
		}
	}
	if ctx.Err() != nil {
		return ev, false
	}
	ev.Time = time.Now()
	return ev, true
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
