package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// metrics holds the Prometheus collectors for the API.
type metrics struct {
	parsesTotal   *prometheus.CounterVec
	treesReturned prometheus.Histogram
	parseSeconds  prometheus.Histogram
}

// newMetrics creates and registers the collectors on reg. Each server owns
// its registry, so tests can spin up servers freely.
func newMetrics(reg *prometheus.Registry) *metrics {
	m := &metrics{
		parsesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buffalo_parses_total",
				Help: "Total parse requests by outcome (ok, no_parse, empty, bad_request).",
			},
			[]string{"outcome"},
		),
		treesReturned: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "buffalo_trees_returned",
				Help:    "Distinct trees returned per successful parse.",
				Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
			},
		),
		parseSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "buffalo_parse_duration_seconds",
				Help:    "Wall time spent inside the chart parser.",
				Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
			},
		),
	}
	reg.MustRegister(
		m.parsesTotal,
		m.treesReturned,
		m.parseSeconds,
		collectors.NewGoCollector(),
	)
	return m
}
