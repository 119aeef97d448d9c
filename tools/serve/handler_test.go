package serve

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/starsoc/linux-star-x7/drivers/display"
	"github.com/starsoc/linux-star-x7/drivers/hdmi/hdmitest"
	"github.com/starsoc/linux-star-x7/drivers/hotplug"
	"github.com/starsoc/linux-star-x7/modes"
	"github.com/starsoc/linux-star-x7/telemetry"
	"github.com/starsoc/linux-star-x7/vga"
	"github.com/starsoc/linux-star-x7/vga/vgatest"
)

func get(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec.Code, rec.Body.String()
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	def := modes.Request{Width: 1024, Height: 600, BitsPerPixel: 16}
	c := display.New(vga.NewSpace(vgatest.NewEmulator()), display.Options{
		Default: def,
		Metrics: telemetry.New(reg),
		Log:     log.New(io.Discard, "", 0),
	})
	h := NewHandler(c, nil, reg)

	if code, _ := get(t, h, "/edid"); code != http.StatusNotFound {
		t.Errorf("/edid without monitor: %d", code)
	}

	if _, err := c.SetMode(context.Background(), def); err != nil {
		t.Fatal(err)
	}
	c.HandleEvent(hotplug.Event{
		ID:   uuid.New(),
		Time: time.Now(),
		Kind: hotplug.Plugged,
		EDID: hdmitest.EDID(hdmitest.Monitor{Name: "XGA"}),
	})

	code, body := get(t, h, "/state")
	if code != http.StatusOK {
		t.Fatalf("/state: %d", code)
	}
	var s display.State
	if err := json.Unmarshal([]byte(body), &s); err != nil {
		t.Fatal(err)
	}
	if s.Mode != "1024x600-16@60" || s.Cable != "plugin" || s.Monitor != "XGA" || s.Timing == nil {
		t.Errorf("state %+v", s)
	}

	code, body = get(t, h, "/edid")
	if code != http.StatusOK || !strings.HasPrefix(body, "0x00 0xFF 0xFF 0xFF") || strings.Count(body, "\n") != 8 {
		t.Errorf("/edid: %d %q", code, body)
	}

	code, body = get(t, h, "/metrics")
	if code != http.StatusOK {
		t.Fatalf("/metrics: %d", code)
	}
	for _, want := range []string{
		`lynxfb_mode_applies_total{result="ok"} 2`,
		`lynxfb_hotplug_events_total{kind="plugin"} 1`,
		`lynxfb_cable_plugged 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("/metrics lacks %s", want)
		}
	}
}
