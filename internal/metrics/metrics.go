// Package metrics provides the centralized Prometheus metrics registry for the estimation service.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	EstimatesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "price_scout",
		Name:      "estimates_total",
		Help:      "Total number of successful price estimates",
	})
	EstimatesFailedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "price_scout",
		Name:      "estimates_failed_total",
		Help:      "Total number of estimate requests rejected for insufficient data",
	})
	CompsFilteredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "price_scout",
		Name:      "comps_filtered_total",
		Help:      "Total number of comparable sales dropped as outliers",
	})
	ConfidenceLabelsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "price_scout",
		Name:      "confidence_labels_total",
		Help:      "Estimates produced per confidence label",
	}, []string{"label"})
)

// Gauge metrics
var (
	EstimateCacheHitRatio = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "price_scout",
		Name:      "estimate_cache_hit_ratio",
		Help:      "Hit ratio of the estimate memoization cache",
	})
)

// Histogram metrics
var (
	EstimateDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "price_scout",
		Name:      "estimate_duration_seconds",
		Help:      "Duration of estimation passes in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	ConfidenceScore = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "price_scout",
		Name:      "confidence_score",
		Help:      "Distribution of overall confidence scores",
		Buckets:   []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
	})
	CompsUsed = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "price_scout",
		Name:      "comps_used",
		Help:      "Number of comparable sales driving each estimate",
		Buckets:   []float64{5, 10, 15, 20, 30, 50, 100},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		// Register counter metrics
		registry.MustRegister(EstimatesTotal)
		registry.MustRegister(EstimatesFailedTotal)
		registry.MustRegister(CompsFilteredTotal)
		registry.MustRegister(ConfidenceLabelsTotal)

		// Register gauge metrics
		registry.MustRegister(EstimateCacheHitRatio)

		// Register histogram metrics
		registry.MustRegister(EstimateDuration)
		registry.MustRegister(ConfidenceScore)
		registry.MustRegister(CompsUsed)

		// Register source metrics
		registry.MustRegister(SourceFetchesTotal)
		registry.MustRegister(SourceFetchDuration)
		registry.MustRegister(SourceCompsReturned)
		registry.MustRegister(SourceEnabled)

		// Register ingest metrics
		registry.MustRegister(RecordsNormalizedTotal)
		registry.MustRegister(ValidationProblemsTotal)
		registry.MustRegister(LastRunUsableRatio)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordEstimate records a completed estimation pass.
func RecordEstimate(durationSeconds, confidence float64, compsUsed int, label string) {
	EstimatesTotal.Inc()
	EstimateDuration.Observe(durationSeconds)
	ConfidenceScore.Observe(confidence)
	CompsUsed.Observe(float64(compsUsed))
	ConfidenceLabelsTotal.WithLabelValues(label).Inc()
}

// RecordEstimateFailure records an estimate rejected before producing a price.
func RecordEstimateFailure() {
	EstimatesFailedTotal.Inc()
}

// RecordCompsFiltered records comps dropped by outlier filtering.
func RecordCompsFiltered(count int) {
	if count <= 0 {
		return
	}
	CompsFilteredTotal.Add(float64(count))
}

// UpdateCacheHitRatio updates the memoization cache hit ratio gauge.
func UpdateCacheHitRatio(ratio float64) {
	EstimateCacheHitRatio.Set(ratio)
}
