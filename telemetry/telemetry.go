// Package telemetry exports Prometheus metrics about mode changes and hot
// plug activity.
//
// All methods accept a nil *Metrics and do nothing, so metrics are optional
// wherever they are passed around.
package telemetry

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors.
type Metrics struct {
	applies        *prometheus.CounterVec // result
	applyFailures  *prometheus.CounterVec // stage
	applyDuration  prometheus.Histogram
	registerWrites prometheus.Counter
	currentMode    *prometheus.GaugeVec   // mode, fingerprint
	hotplugEvents  *prometheus.CounterVec // kind
	cablePlugged   prometheus.Gauge
}

// New registers the collectors with reg, prometheus.DefaultRegisterer if nil.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		applies: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lynxfb_mode_applies_total",
				Help: "Mode changes by result",
			},
			[]string{"result"},
		),
		applyFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lynxfb_mode_apply_failures_total",
				Help: "Failed mode changes by the stage they failed in",
			},
			[]string{"stage"},
		),
		applyDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lynxfb_mode_apply_duration_seconds",
				Help:    "Time spent programming a mode",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		registerWrites: f.NewCounter(
			prometheus.CounterOpts{
				Name: "lynxfb_register_writes_total",
				Help: "Register writes issued to the display controller",
			},
		),
		currentMode: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "lynxfb_current_mode_info",
				Help: "The programmed display mode, always 1",
			},
			[]string{"mode", "fingerprint"},
		),
		hotplugEvents: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lynxfb_hotplug_events_total",
				Help: "Hot plug detections by kind",
			},
			[]string{"kind"},
		),
		cablePlugged: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "lynxfb_cable_plugged",
				Help: "1 if a monitor is attached to the transmitter",
			},
		),
	}
}

// ObserveApply records a mode change that issued writes register writes. An
// empty stage means it succeeded.
func (m *Metrics) ObserveApply(mode string, fingerprint uint8, d time.Duration, writes uint64, failedStage string) {
	if m == nil {
		return
	}
	m.applyDuration.Observe(d.Seconds())
	m.registerWrites.Add(float64(writes))
	if failedStage != "" {
		m.applies.WithLabelValues("error").Inc()
		m.applyFailures.WithLabelValues(failedStage).Inc()
		m.currentMode.Reset()
		return
	}
	m.applies.WithLabelValues("ok").Inc()
	m.currentMode.Reset()
	m.currentMode.WithLabelValues(mode, fmt.Sprintf("%02x", fingerprint)).Set(1)
}

// ObserveRejected records a mode change refused before touching hardware.
func (m *Metrics) ObserveRejected() {
	if m == nil {
		return
	}
	m.applies.WithLabelValues("rejected").Inc()
}

// ObserveHotplug records a hot plug detection.
func (m *Metrics) ObserveHotplug(kind string, plugged bool) {
	if m == nil {
		return
	}
	m.hotplugEvents.WithLabelValues(kind).Inc()
	if plugged {
		m.cablePlugged.Set(1)
	} else {
		m.cablePlugged.Set(0)
	}
}
