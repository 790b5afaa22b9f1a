// Package metrics defines comp source specific metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Source-specific counter vectors
var (
	SourceFetchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "price_scout",
		Name:      "source_fetches_total",
		Help:      "Total number of comp source fetches by source and status",
	}, []string{"source", "status"})
)

// Source-specific histogram vectors
var (
	SourceFetchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "price_scout",
		Name:      "source_fetch_duration_seconds",
		Help:      "Duration of comp source fetches in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source"})

	SourceCompsReturned = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "price_scout",
		Name:      "source_comps_returned",
		Help:      "Number of raw comps returned per fetch",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250},
	}, []string{"source"})
)

// Source-specific gauge vectors
var (
	SourceEnabled = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "price_scout",
		Name:      "source_enabled",
		Help:      "Whether each comp source is currently enabled (1) or disabled (0)",
	}, []string{"source"})
)

// RecordSourceFetch records a comp source fetch.
// status should be one of: "success", "error"
func RecordSourceFetch(source, status string, durationSeconds float64, comps int) {
	SourceFetchesTotal.WithLabelValues(source, status).Inc()
	SourceFetchDuration.WithLabelValues(source).Observe(durationSeconds)
	if status == "success" {
		SourceCompsReturned.WithLabelValues(source).Observe(float64(comps))
	}
}

// UpdateSourceEnabled updates the enabled gauge for a comp source.
func UpdateSourceEnabled(source string, enabled bool) {
	value := 0.0
	if enabled {
		value = 1.0
	}
	SourceEnabled.WithLabelValues(source).Set(value)
}
