package telemetry_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/starsoc/linux-star-x7/telemetry"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	m := make(map[string]*dto.MetricFamily)
	for _, mf := range mfs {
		m[mf.GetName()] = mf
	}
	return m
}

func value(mf *dto.MetricFamily, labels ...string) float64 {
	if mf == nil {
		return -1
	}
next:
	for _, m := range mf.GetMetric() {
		for i := 0; i+1 < len(labels); i += 2 {
			found := false
			for _, lp := range m.GetLabel() {
				if lp.GetName() == labels[i] && lp.GetValue() == labels[i+1] {
					found = true
				}
			}
			if !found {
				continue next
			}
		}
		switch {
		case m.Counter != nil:
			return m.Counter.GetValue()
		case m.Gauge != nil:
			return m.Gauge.GetValue()
		case m.Histogram != nil:
			return float64(m.Histogram.GetSampleCount())
		}
	}
	return -1
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := telemetry.New(reg)

	m.ObserveApply("1024x600-16@60", 0x5a, time.Millisecond, 242, "")
	m.ObserveApply("800x600-16@60", 0x11, time.Millisecond, 17, "writing CRT")
	m.ObserveRejected()
	m.ObserveHotplug("plugin", true)

	mfs := gather(t, reg)
	tests := []struct {
		name   string
		labels []string
		want   float64
	}{
		{"lynxfb_mode_applies_total", []string{"result", "ok"}, 1},
		{"lynxfb_mode_applies_total", []string{"result", "error"}, 1},
		{"lynxfb_mode_applies_total", []string{"result", "rejected"}, 1},
		{"lynxfb_mode_apply_failures_total", []string{"stage", "writing CRT"}, 1},
		{"lynxfb_register_writes_total", nil, 259},
		{"lynxfb_mode_apply_duration_seconds", nil, 2},
		{"lynxfb_hotplug_events_total", []string{"kind", "plugin"}, 1},
		{"lynxfb_cable_plugged", nil, 1},
	}
	for _, tt := range tests {
		if got := value(mfs[tt.name], tt.labels...); got != tt.want {
			t.Errorf("%s%v = %v, want %v", tt.name, tt.labels, got, tt.want)
		}
	}
	if mf := mfs["lynxfb_current_mode_info"]; mf != nil {
		t.Errorf("mode info kept after failed apply: %v", mf)
	}

	m.ObserveApply("1024x600-16@60", 0x5a, time.Millisecond, 242, "")
	mfs = gather(t, reg)
	if got := value(mfs["lynxfb_current_mode_info"], "mode", "1024x600-16@60", "fingerprint", "5a"); got != 1 {
		t.Errorf("mode info %v", got)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *telemetry.Metrics
	m.ObserveApply("", 0, 0, 0, "")
	m.ObserveRejected()
	m.ObserveHotplug("plugout", false)
}
