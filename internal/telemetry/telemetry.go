// Package telemetry exposes a running universe's counters as Prometheus
// gauges, grounded on the promauto/promhttp usage in
// jinterlante1206-AleutianLocal's agent/routing and telemetry packages
// (minus that repo's OpenTelemetry tracing, which has no counterpart
// here: this module has no request/span concept to trace).
package telemetry

import (
	"math/big"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Stats is the subset of hashlife.Universe.Stats() telemetry reports.
// Declared locally (rather than importing the root package) so this
// package stays a leaf the root package can import without a cycle.
type Stats struct {
	NodeCount    int
	CacheEntries int
	Population   *big.Int
	Generation   *big.Int
}

// Collector owns the gauges describing one universe's engine counters.
type Collector struct {
	registry *prometheus.Registry

	nodeCount    prometheus.Gauge
	cacheEntries prometheus.Gauge
	population   prometheus.Gauge
	generation   prometheus.Gauge
}

// NewCollector registers a fresh set of gauges in their own registry, so
// multiple universes in the same process never collide.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Collector{
		registry: reg,
		nodeCount: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "hashlife",
			Name:      "arena_nodes",
			Help:      "Number of distinct nodes interned in the arena.",
		}),
		cacheEntries: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "hashlife",
			Name:      "evolve_cache_entries",
			Help:      "Number of (node, step) pairs memoized by the evolver.",
		}),
		population: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "hashlife",
			Name:      "population",
			Help:      "Current live cell count.",
		}),
		generation: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "hashlife",
			Name:      "generation",
			Help:      "Total generations elapsed.",
		}),
	}
}

// Observe updates every gauge from a fresh snapshot. Population and
// generation are *big.Int in the facade (spec.md's u128 contract); a
// Prometheus gauge is float64, so very large counts lose precision here,
// which is acceptable for an approximate dashboard value.
func (c *Collector) Observe(s Stats) {
	c.nodeCount.Set(float64(s.NodeCount))
	c.cacheEntries.Set(float64(s.CacheEntries))
	c.population.Set(bigFloat64(s.Population))
	c.generation.Set(bigFloat64(s.Generation))
}

func bigFloat64(n *big.Int) float64 {
	if n == nil {
		return 0
	}
	f := new(big.Float).SetInt(n)
	v, _ := f.Float64()
	return v
}

// Handler returns the HTTP handler to serve /metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
