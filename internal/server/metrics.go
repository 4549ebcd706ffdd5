package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/sixdegrees/core"
)

// Query outcomes used as the "outcome" label.
const (
	outcomeOK       = "ok"
	outcomeBadInput = "bad_input"
	outcomeNotFound = "not_found"
	outcomeNoPath   = "no_path"
	outcomeError    = "error"
)

// metrics groups the service's collectors. They live on a per-Server
// registry so several servers (and tests) never collide on registration.
type metrics struct {
	registry *prometheus.Registry

	// queries counts queries.
	// Labels: op (path, distribution, random), outcome.
	queries *prometheus.CounterVec

	// duration measures query latency in seconds.
	// Labels: op
	duration *prometheus.HistogramVec

	// graphSize reports vertex and edge counts of the loaded catalog.
	// Labels: kind (movies, actors, edges)
	graphSize *prometheus.GaugeVec
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &metrics{
		registry: reg,
		queries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sixdegrees",
			Subsystem: "query",
			Name:      "total",
			Help:      "Total separation queries by operation and outcome",
		}, []string{"op", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sixdegrees",
			Subsystem: "query",
			Name:      "duration_seconds",
			Help:      "Separation query latency in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"op"}),
		graphSize: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "sixdegrees",
			Subsystem: "graph",
			Name:      "size",
			Help:      "Loaded catalog size by element kind",
		}, []string{"kind"}),
	}
}

// recordGraph publishes a size snapshot.
func (m *metrics) recordGraph(st core.Stats) {
	m.graphSize.WithLabelValues("movies").Set(float64(st.Movies))
	m.graphSize.WithLabelValues("actors").Set(float64(st.Actors))
	m.graphSize.WithLabelValues("edges").Set(float64(st.Edges))
}
