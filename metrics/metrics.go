// Package metrics exposes the bot's operational counters for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the process metrics so callers record through methods
// instead of touching collectors directly. Each Registry owns its own
// prometheus registry.
type Registry struct {
	reg *prometheus.Registry

	fetchTotal    *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	storedRates   prometheus.Gauge
	arbitrage     *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		fetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "amdrates_fetch_total",
			Help: "Source fetches by result.",
		}, []string{"source", "result"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "amdrates_fetch_duration_seconds",
			Help:    "Source fetch latency.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		}, []string{"source"}),
		storedRates: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "amdrates_stored_rates",
			Help: "Rates in the current snapshot.",
		}),
		arbitrage: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "amdrates_arbitrage_total",
			Help: "Arbitrage cycles noticed in source boards.",
		}, []string{"source"}),
	}
	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.fetchTotal, r.fetchDuration, r.storedRates, r.arbitrage,
	)
	return r
}

func (r *Registry) RecordFetch(source string, ok bool, seconds float64) {
	result := "ok"
	if !ok {
		result = "error"
	}
	r.fetchTotal.WithLabelValues(source, result).Inc()
	r.fetchDuration.WithLabelValues(source).Observe(seconds)
}

func (r *Registry) RecordArbitrage(source string) {
	r.arbitrage.WithLabelValues(source).Inc()
}

func (r *Registry) SetStoredRates(n int) {
	r.storedRates.Set(float64(n))
}

// Handler serves the scrape endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
