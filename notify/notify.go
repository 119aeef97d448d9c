// Package notify publishes display events, the userspace counterpart of the
// uevents a kernel driver emits on hot plug and mode changes.
package notify

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Event names.
const (
	PlugIn  = "plugin"
	PlugOut = "plugout"
	ModeSet = "modeset"
	Failure = "error"
)

// Event is the JSON payload delivered to every subscriber.
type Event struct {
	ID    uuid.UUID `json:"id"`
	Time  time.Time `json:"time"`
	Name  string    `json:"event"`
	Mode  string    `json:"mode,omitempty"`
	Error string    `json:"error,omitempty"`
}

// NewEvent returns an event with a fresh ID stamped with the current time.
func NewEvent(name string) Event {
	return Event{ID: uuid.New(), Time: time.Now(), Name: name}
}

type Notifier interface {
	Notify(ev Event) error
}

// Multi fans an event out to all its notifiers. Every notifier is called even
// if an earlier one fails.
type Multi []Notifier

func (m Multi) Notify(ev Event) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Func adapts a function to the Notifier interface.
type Func func(Event) error

func (f Func) Notify(ev Event) error { return f(ev) }
