package metrics

import (
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistry(t *testing.T) {
	// Initialize the registry
	InitRegistry()
	registry := GetRegistry()

	assert.NotNil(t, registry)
	assert.IsType(t, &prometheus.Registry{}, registry)
}

func TestRecordEstimate(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordEstimate(0.02, 0.78, 12, "high")
	})
}

func TestRecordEstimateFailure(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordEstimateFailure()
	})
}

func TestRecordCompsFiltered(t *testing.T) {
	InitRegistry()

	tests := []struct {
		name  string
		count int
	}{
		{
			name:  "positive count",
			count: 3,
		},
		{
			name:  "zero count",
			count: 0,
		},
		{
			name:  "negative count",
			count: -1, // Should be ignored
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				RecordCompsFiltered(tt.count)
			})
		})
	}
}

func TestUpdateCacheHitRatio(t *testing.T) {
	InitRegistry()

	tests := []struct {
		name  string
		ratio float64
	}{
		{
			name:  "cold cache",
			ratio: 0,
		},
		{
			name:  "warm cache",
			ratio: 0.85,
		},
		{
			name:  "full hit rate",
			ratio: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				UpdateCacheHitRatio(tt.ratio)
			})
		})
	}
}

func TestMetricsHandler(t *testing.T) {
	InitRegistry()

	handler := Handler()
	assert.NotNil(t, handler)
	assert.Implements(t, (*http.Handler)(nil), handler)
}

func TestSourceMetrics(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordSourceFetch("file", "success", 0.12, 40)
	})

	assert.NotPanics(t, func() {
		RecordSourceFetch("file", "error", 0.05, 0)
	})

	assert.NotPanics(t, func() {
		UpdateSourceEnabled("file", true)
	})

	assert.NotPanics(t, func() {
		UpdateSourceEnabled("file", false)
	})
}

func TestIngestMetrics(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordNormalization(8, 2)
	})

	assert.NotPanics(t, func() {
		RecordNormalization(0, 0)
	})

	assert.NotPanics(t, func() {
		RecordValidationProblems(5)
	})

	assert.NotPanics(t, func() {
		RecordValidationProblems(0)
	})
}

func BenchmarkRecordEstimate(b *testing.B) {
	InitRegistry()

	for i := 0; i < b.N; i++ {
		RecordEstimate(0.02, 0.78, 12, "high")
	}
}

func BenchmarkRecordSourceFetch(b *testing.B) {
	InitRegistry()

	for i := 0; i < b.N; i++ {
		RecordSourceFetch("file", "success", 0.12, 40)
	}
}
