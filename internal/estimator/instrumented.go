package estimator

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/price-scout/internal/metrics"
	"github.com/yourusername/price-scout/internal/models"
)

// InstrumentedEstimator wraps an Estimator with logging and Prometheus metrics
type InstrumentedEstimator struct {
	next   Estimator
	logger *logrus.Logger
}

// NewInstrumentedEstimator creates a new instrumented estimator
func NewInstrumentedEstimator(next Estimator, logger *logrus.Logger) *InstrumentedEstimator {
	if logger == nil {
		logger = logrus.New()
	}
	return &InstrumentedEstimator{next: next, logger: logger}
}

// Estimate delegates to the wrapped estimator and records the outcome
func (ie *InstrumentedEstimator) Estimate(records []models.ComparableRecord, now time.Time) (*models.EstimationResult, error) {
	start := time.Now()
	result, err := ie.next.Estimate(records, now)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		metrics.RecordEstimateFailure()
		ie.logger.WithError(err).WithField("records", len(records)).Warn("Estimation rejected")
		return nil, err
	}

	filtered := len(pricedRecords(records)) - result.CompsUsed
	metrics.RecordEstimate(elapsed, result.ConfidenceScore, result.CompsUsed, string(result.ConfidenceLabel))
	metrics.RecordCompsFiltered(filtered)

	ie.logger.WithFields(logrus.Fields{
		"suggested_price":  result.SuggestedPrice,
		"confidence":       result.ConfidenceScore,
		"confidence_label": result.ConfidenceLabel,
		"comps_used":       result.CompsUsed,
		"comps_filtered":   filtered,
	}).Info("Estimate produced")

	return result, nil
}
