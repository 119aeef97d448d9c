package display_test

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/starsoc/linux-star-x7/drivers/display"
	"github.com/starsoc/linux-star-x7/drivers/hdmi/hdmitest"
	"github.com/starsoc/linux-star-x7/drivers/hotplug"
	"github.com/starsoc/linux-star-x7/modes"
	"github.com/starsoc/linux-star-x7/modeset"
	"github.com/starsoc/linux-star-x7/notify"
	"github.com/starsoc/linux-star-x7/telemetry"
	"github.com/starsoc/linux-star-x7/vga"
	"github.com/starsoc/linux-star-x7/vga/vgatest"
)

type fakeTx struct {
	calls    []string
	timing   modes.Timing
	hz       int
	setupErr error
}

func (t *fakeTx) Name() string { return "fake" }

func (t *fakeTx) Setup(tm modes.Timing, hz int) error {
	t.calls = append(t.calls, "setup")
	t.timing, t.hz = tm, hz
	return t.setupErr
}

func (t *fakeTx) PowerOn() error  { t.calls = append(t.calls, "on"); return nil }
func (t *fakeTx) PowerOff() error { t.calls = append(t.calls, "off"); return nil }

func (t *fakeTx) ReadCapabilityBlock(ctx context.Context) ([]byte, error) { return nil, nil }
func (t *fakeTx) CablePresent() (bool, error)                             { return true, nil }
func (t *fakeTx) AckInterrupt() error                                     { return nil }

type rig struct {
	emu    *vgatest.Emulator
	tx     *fakeTx
	events []notify.Event
	c      *display.Controller
}

func (r *rig) names() []string {
	var s []string
	for _, ev := range r.events {
		s = append(s, ev.Name)
	}
	return s
}

func newRig(t *testing.T) *rig {
	t.Helper()
	r := &rig{emu: vgatest.NewEmulator(), tx: &fakeTx{}}
	r.c = display.New(vga.NewSpace(r.emu), display.Options{
		Default:     modes.Request{Width: 1024, Height: 600, BitsPerPixel: 16, RefreshHz: 60},
		Transmitter: r.tx,
		Notifier: notify.Func(func(ev notify.Event) error {
			r.events = append(r.events, ev)
			return nil
		}),
		Metrics: telemetry.New(prometheus.NewRegistry()),
		Log:     log.New(io.Discard, "", 0),
	})
	return r
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSetMode(t *testing.T) {
	r := newRig(t)
	d, err := r.c.SetMode(context.Background(), modes.Request{Width: 800, Height: 600, BitsPerPixel: 16})
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "800x600-16@60" || r.c.Current() != d {
		t.Errorf("programmed %v, current %v", d, r.c.Current())
	}
	if got := len(r.emu.Writes()); got != modes.RegisterWrites() {
		t.Errorf("%d register writes", got)
	}
	if r.emu.Misc() != 0x2b || r.emu.PixelMask() != 0xff {
		t.Errorf("misc %#x mask %#x", r.emu.Misc(), r.emu.PixelMask())
	}
	if !equal(r.tx.calls, []string{"off", "setup", "on"}) {
		t.Errorf("transmitter calls %v", r.tx.calls)
	}
	if r.tx.timing.HTotal != 1056 || r.tx.timing.VTotal != 628 || r.tx.hz != 60 {
		t.Errorf("transmitter timing %+v @ %d", r.tx.timing, r.tx.hz)
	}
	if !equal(r.names(), []string{"modeset"}) || r.events[0].Mode != "800x600-16@60" {
		t.Errorf("events %+v", r.events)
	}

	s := r.c.State()
	if s.Mode != "800x600-16@60" || s.Transmitter != "fake" || s.Cable != "plugout" ||
		s.PixelClock != 39790080 || s.Fingerprint == "" || s.LastError != "" {
		t.Errorf("state %+v", s)
	}
}

func TestSetModeRejected(t *testing.T) {
	r := newRig(t)
	_, err := r.c.SetMode(context.Background(), modes.Request{Width: 1280, Height: 1024, BitsPerPixel: 16})
	if !errors.Is(err, modes.ErrNoMatchingMode) {
		t.Fatalf("got %v", err)
	}
	if n := len(r.emu.Log()); n != 0 {
		t.Errorf("%d bus transactions for a rejected mode", n)
	}
	if len(r.tx.calls) != 0 {
		t.Errorf("transmitter touched: %v", r.tx.calls)
	}
	if !equal(r.names(), []string{"error"}) || r.c.State().LastError == "" {
		t.Errorf("events %v state %+v", r.names(), r.c.State())
	}
}

func TestSetModeCanceled(t *testing.T) {
	r := newRig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.c.SetMode(ctx, modes.Request{Width: 640, Height: 480, BitsPerPixel: 16}); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v", err)
	}
	if len(r.emu.Log()) != 0 {
		t.Error("bus touched")
	}
}

func TestSetModeFault(t *testing.T) {
	r := newRig(t)
	if _, err := r.c.SetMode(context.Background(), modes.Request{Width: 640, Height: 480, BitsPerPixel: 16}); err != nil {
		t.Fatal(err)
	}
	r.tx.calls = nil
	r.emu.FailAfter(10)

	_, err := r.c.SetMode(context.Background(), modes.Request{Width: 800, Height: 600, BitsPerPixel: 16})
	var ae *modeset.ApplyError
	if !errors.As(err, &ae) || ae.Stage != modeset.WritingSequencer {
		t.Fatalf("got %v", err)
	}
	if r.c.Current() != nil {
		t.Error("failed mode still current")
	}
	if !equal(r.tx.calls, []string{"off"}) {
		t.Errorf("transmitter calls %v", r.tx.calls)
	}
}

func TestSetModeTransmitterFault(t *testing.T) {
	r := newRig(t)
	r.tx.setupErr = errors.New("nack")
	_, err := r.c.SetMode(context.Background(), modes.Request{Width: 640, Height: 480, BitsPerPixel: 32})
	if !errors.Is(err, display.ErrTransmitter) || !errors.Is(err, r.tx.setupErr) {
		t.Fatalf("got %v", err)
	}
	if r.c.Current() == nil {
		t.Error("programmed mode not recorded")
	}
}

func plug(m *hdmitest.Monitor) hotplug.Event {
	ev := hotplug.Event{ID: uuid.New(), Time: time.Now(), Kind: hotplug.Plugged, Attempts: 1}
	if m != nil {
		ev.EDID = hdmitest.EDID(*m)
	} else {
		ev.Err = errors.New("ddc timeout")
	}
	return ev
}

func TestHandlePlug(t *testing.T) {
	tests := []struct {
		name    string
		monitor *hdmitest.Monitor
		want    string
	}{
		// The panel mode drives a 1024x768 raster.
		{"default", &hdmitest.Monitor{Name: "XGA"}, "1024x600-16@60"},
		{"largest", &hdmitest.Monitor{Name: "SXGA", Width: 1280, Height: 1024}, "800x600-16@60"},
		{"no edid", nil, "1024x600-16@60"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t)
			ev := plug(tt.monitor)
			if err := r.c.HandleEvent(ev); err != nil {
				t.Fatal(err)
			}
			if got := r.c.Current().String(); got != tt.want {
				t.Errorf("mode %s, want %s", got, tt.want)
			}
			last := r.events[len(r.events)-1]
			if last.Name != "plugin" || last.ID != ev.ID || last.Mode != tt.want {
				t.Errorf("event %+v", last)
			}
			s := r.c.State()
			if s.Cable != "plugin" {
				t.Errorf("cable %q", s.Cable)
			}
			if tt.monitor != nil && (s.Monitor != tt.monitor.Name || len(s.EDID) != 128 || len(s.Modes) == 0) {
				t.Errorf("state %+v", s)
			}
		})
	}
}

func TestHandleUnplug(t *testing.T) {
	r := newRig(t)
	r.c.HandleEvent(plug(&hdmitest.Monitor{Name: "XGA"}))
	r.tx.calls = nil

	ev := hotplug.Event{ID: uuid.New(), Time: time.Now(), Kind: hotplug.Unplugged}
	if err := r.c.HandleEvent(ev); err != nil {
		t.Fatal(err)
	}
	if !equal(r.tx.calls, []string{"off"}) {
		t.Errorf("transmitter calls %v", r.tx.calls)
	}
	s := r.c.State()
	if s.Cable != "plugout" || s.EDID != nil || s.Monitor != "" {
		t.Errorf("state %+v", s)
	}
	if last := r.events[len(r.events)-1]; last.Name != "plugout" || last.ID != ev.ID {
		t.Errorf("event %+v", last)
	}
	// The mode stays programmed while unplugged.
	if r.c.Current() == nil {
		t.Error("mode dropped")
	}
}

func TestHandleFailure(t *testing.T) {
	r := newRig(t)
	cause := errors.New("i2c bus error")
	err := r.c.HandleEvent(hotplug.Event{ID: uuid.New(), Kind: hotplug.Failed, Err: cause})
	if !errors.Is(err, cause) {
		t.Fatalf("got %v", err)
	}
	if r.c.State().LastError != cause.Error() || !equal(r.names(), []string{"error"}) {
		t.Errorf("state %+v events %v", r.c.State(), r.names())
	}
}

func TestRun(t *testing.T) {
	r := newRig(t)
	events := make(chan hotplug.Event, 2)
	events <- plug(&hdmitest.Monitor{Name: "XGA"})
	events <- hotplug.Event{ID: uuid.New(), Time: time.Now(), Kind: hotplug.Unplugged}
	close(events)

	r.c.Run(context.Background(), events)
	if got := r.names(); !equal(got, []string{"modeset", "plugin", "plugout"}) {
		t.Errorf("events %v", got)
	}
}

func TestSlowNotifier(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{}, 8)
	c := display.New(vga.NewSpace(vgatest.NewEmulator()), display.Options{
		Default:     modes.Request{Width: 800, Height: 600, BitsPerPixel: 16},
		Transmitter: &fakeTx{},
		Notifier: notify.Func(func(ev notify.Event) error {
			entered <- struct{}{}
			<-release
			return nil
		}),
		Log: log.New(io.Discard, "", 0),
	})

	done := make(chan error, 1)
	go func() {
		_, err := c.SetMode(context.Background(), modes.Request{Width: 800, Height: 600, BitsPerPixel: 16})
		done <- err
	}()
	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("no event published")
	}

	// The subscriber is stuck; the controller must still answer.
	state := make(chan display.State, 1)
	go func() { state <- c.State() }()
	select {
	case s := <-state:
		if s.Mode != "800x600-16@60" {
			t.Errorf("state mode %q", s.Mode)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("State blocked behind a publish")
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
}
