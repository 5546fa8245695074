// Package observability bundles structured logging and Prometheus metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and gauges for a map-generation run.
type Metrics struct {
	NodesExtracted  prometheus.Counter
	NodesResolved   prometheus.Counter
	NodesUnresolved prometheus.Counter
	RunActive       prometheus.Gauge

	// Geoportal lookup metrics.
	ProviderRequests *prometheus.CounterVec   // labels: kind={point,area}, outcome={success,error}
	ProviderDuration *prometheus.HistogramVec // labels: kind={point,area}
	CacheLookups     *prometheus.CounterVec   // labels: namespace={point,area}, result={hit,miss}
}

// NewMetrics creates and registers all run metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		NodesExtracted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "expansion_map",
			Name:      "nodes_extracted_total",
			Help:      "Nodes with a usable position in the source document.",
		}),
		NodesResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "expansion_map",
			Name:      "nodes_resolved_total",
			Help:      "Nodes resolved to a municipal area.",
		}),
		NodesUnresolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "expansion_map",
			Name:      "nodes_unresolved_total",
			Help:      "Nodes whose position matched no municipal area.",
		}),
		RunActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "expansion_map",
			Name:      "run_active",
			Help:      "1 while a map-generation run is in flight.",
		}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "expansion_map",
			Name:      "provider_requests_total",
			Help:      "Geoportal requests by lookup kind and outcome.",
		}, []string{"kind", "outcome"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "expansion_map",
			Name:      "provider_request_duration_seconds",
			Help:      "Geoportal request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"kind"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "expansion_map",
			Name:      "cache_lookups_total",
			Help:      "Geocode cache lookups by namespace and result.",
		}, []string{"namespace", "result"}),
	}

	prometheus.MustRegister(
		m.NodesExtracted,
		m.NodesResolved,
		m.NodesUnresolved,
		m.RunActive,
		m.ProviderRequests,
		m.ProviderDuration,
		m.CacheLookups,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		NodesExtracted:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "expansion_map", Name: "nodes_extracted_total"}),
		NodesResolved:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "expansion_map", Name: "nodes_resolved_total"}),
		NodesUnresolved:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "expansion_map", Name: "nodes_unresolved_total"}),
		RunActive:        prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "expansion_map", Name: "run_active"}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "expansion_map", Name: "provider_requests_total"}, []string{"kind", "outcome"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "expansion_map", Name: "provider_request_duration_seconds"}, []string{"kind"}),
		CacheLookups:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "expansion_map", Name: "cache_lookups_total"}, []string{"namespace", "result"}),
	}
}
