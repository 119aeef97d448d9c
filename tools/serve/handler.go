package serve

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/starsoc/linux-star-x7/drivers/display"
	"github.com/starsoc/linux-star-x7/edid"
)

// NewHandler returns the HTTP interface of a controller.
//
//	/metrics  Prometheus metrics from g
//	/state    controller state as JSON
//	/edid     capability block of the attached monitor, hex dumped
//	/events   websocket stream of events
func NewHandler(c *display.Controller, events http.Handler, g prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	mux.HandleFunc("/state", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(c.State())
	})
	mux.HandleFunc("/edid", func(w http.ResponseWriter, r *http.Request) {
		s := c.State()
		if s.EDID == nil {
			http.Error(w, "no monitor capability block", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		edid.WriteHex(w, s.EDID)
	})
	if events != nil {
		mux.Handle("/events", events)
	}
	return mux
}
