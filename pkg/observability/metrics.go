// Package observability holds the Prometheus instrumentation for the
// adapter: render counts and durations, validation counts. The metrics are
// exposed over the SSE transport's HTTP mux; the stdio transport records
// them but has nowhere to serve them.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics aggregates the adapter's Prometheus collectors.
type Metrics struct {
	Renders        *prometheus.CounterVec
	RenderDuration *prometheus.HistogramVec
	Validations    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with the given
// registerer (use prometheus.DefaultRegisterer in production, a private
// registry in tests).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mermaid_renders_total",
				Help: "Total diagram render attempts by format and status",
			},
			[]string{"format", "status"},
		),
		RenderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "mermaid_render_duration_seconds",
				Help: "Wall-clock duration of renderer invocations",
			},
			[]string{"format"},
		),
		Validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mermaid_validations_total",
				Help: "Total heuristic validations by matched diagram kind",
			},
			[]string{"kind"},
		),
	}
	reg.MustRegister(m.Renders, m.RenderDuration, m.Validations)
	return m
}

// ObserveRender records one render attempt.
func (m *Metrics) ObserveRender(format, status string, d time.Duration) {
	m.Renders.WithLabelValues(format, status).Inc()
	if status == "success" {
		m.RenderDuration.WithLabelValues(format).Observe(d.Seconds())
	}
}

// ObserveValidation records one heuristic validation. Invalid inputs are
// counted under the "none" kind.
func (m *Metrics) ObserveValidation(kind string) {
	if kind == "" {
		kind = "none"
	}
	m.Validations.WithLabelValues(kind).Inc()
}
