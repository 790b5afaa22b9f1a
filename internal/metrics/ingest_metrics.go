// Package metrics defines normalization and validation metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Ingest counter vectors
var (
	RecordsNormalizedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "price_scout",
		Name:      "records_normalized_total",
		Help:      "Total number of normalized records by usability",
	}, []string{"status"})

	ValidationProblemsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "price_scout",
		Name:      "validation_problems_total",
		Help:      "Total number of validation problems flagged on normalized records",
	})
)

// Ingest gauges
var (
	LastRunUsableRatio = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "price_scout",
		Name:      "last_run_usable_ratio",
		Help:      "Share of records in the most recent run that carried a usable price",
	})
)

// RecordNormalization records the outcome of a normalization pass.
func RecordNormalization(usable, unusable int) {
	if usable > 0 {
		RecordsNormalizedTotal.WithLabelValues("usable").Add(float64(usable))
	}
	if unusable > 0 {
		RecordsNormalizedTotal.WithLabelValues("unusable").Add(float64(unusable))
	}

	total := usable + unusable
	if total > 0 {
		LastRunUsableRatio.Set(float64(usable) / float64(total))
	}
}

// RecordValidationProblems records validation problems flagged during a run.
func RecordValidationProblems(count int) {
	if count <= 0 {
		return
	}
	ValidationProblemsTotal.Add(float64(count))
}
