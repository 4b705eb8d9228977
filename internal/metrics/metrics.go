package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	generationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curcuna_generations_total",
			Help: "Total generation requests by feature and origin",
		},
		[]string{"feature", "origin"},
	)
	generationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "curcuna_generation_duration_seconds",
			Help:    "Time spent answering a generation request, fallback included",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"feature"},
	)
	upstreamFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curcuna_upstream_failures_total",
			Help: "Failed provider calls by feature and failure kind",
		},
		[]string{"feature", "kind"},
	)
	rejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curcuna_rejected_requests_total",
			Help: "Requests rejected for missing input",
		},
		[]string{"feature"},
	)
	weatherLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curcuna_weather_lookups_total",
			Help: "Weather lookups by source (provider, mock, error)",
		},
		[]string{"source"},
	)
	glitchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curcuna_glitches_total",
			Help: "Deliberate glitches served by the chaos modules",
		},
		[]string{"module"},
	)
)

var registerOnce sync.Once

// Init registers the collectors with reg. Must be called once at startup;
// later calls are no-ops.
func Init(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		reg.MustRegister(
			generationsTotal,
			generationDuration,
			upstreamFailuresTotal,
			rejectedTotal,
			weatherLookupsTotal,
			glitchesTotal,
		)
	})
}

// ObserveGeneration records a finished generation.
func ObserveGeneration(feature, origin string, d time.Duration) {
	generationsTotal.WithLabelValues(feature, origin).Inc()
	generationDuration.WithLabelValues(feature).Observe(d.Seconds())
}

// ObserveUpstreamFailure records a failed provider call.
func ObserveUpstreamFailure(feature, kind string) {
	upstreamFailuresTotal.WithLabelValues(feature, kind).Inc()
}

// ObserveRejected records a request rejected for missing input.
func ObserveRejected(feature string) {
	rejectedTotal.WithLabelValues(feature).Inc()
}

// ObserveWeatherLookup records a weather lookup by source.
func ObserveWeatherLookup(source string) {
	weatherLookupsTotal.WithLabelValues(source).Inc()
}

// ObserveGlitch records a deliberate glitch.
func ObserveGlitch(module string) {
	glitchesTotal.WithLabelValues(module).Inc()
}
