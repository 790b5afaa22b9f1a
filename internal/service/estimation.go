package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/price-scout/internal/datasource"
	"github.com/yourusername/price-scout/internal/estimator"
	"github.com/yourusername/price-scout/internal/logger"
	"github.com/yourusername/price-scout/internal/metrics"
	"github.com/yourusername/price-scout/internal/models"
)

// EstimationService handles the full estimate workflow: fetch, normalize,
// validate, estimate
type EstimationService struct {
	sources        []datasource.CompSource
	normalizer     *CompNormalizer
	validator      *CompValidator
	estimator      estimator.Estimator
	metrics        *EstimationRunMetrics
	ingestLogger   *logger.IngestLogger
	estimateLogger *logger.EstimateLogger
}

// NewEstimationService creates a new estimation service
func NewEstimationService(
	sources []datasource.CompSource,
	normalizer *CompNormalizer,
	validator *CompValidator,
	est estimator.Estimator,
	baseLogger *logrus.Logger,
) *EstimationService {
	if baseLogger == nil {
		baseLogger = logrus.New()
	}

	for _, src := range sources {
		metrics.UpdateSourceEnabled(src.Name(), src.IsEnabled())
	}

	return &EstimationService{
		sources:        sources,
		normalizer:     normalizer,
		validator:      validator,
		estimator:      est,
		metrics:        NewEstimationRunMetrics(),
		ingestLogger:   logger.NewIngestLogger(baseLogger),
		estimateLogger: logger.NewEstimateLogger(baseLogger),
	}
}

// EstimateFromSource fetches comps for a query from a named source and produces an estimate
func (s *EstimationService) EstimateFromSource(ctx context.Context, sourceName, query string, now time.Time) (*models.EstimationResult, error) {
	s.metrics.Reset()
	runStart := time.Now()

	source := s.findSource(sourceName)
	if source == nil {
		return nil, fmt.Errorf("comp source not found: %s", sourceName)
	}

	fetchStart := time.Now()
	raws, err := source.FetchComps(ctx, query)
	if err != nil {
		s.metrics.RecordError()
		metrics.RecordSourceFetch(sourceName, "error", time.Since(fetchStart).Seconds(), 0)
		return nil, fmt.Errorf("failed to fetch comps from %s: %w", sourceName, err)
	}
	metrics.RecordSourceFetch(sourceName, "success", time.Since(fetchStart).Seconds(), len(raws))
	s.ingestLogger.LogSourceFetch(sourceName, len(raws), time.Since(fetchStart).Seconds()*1000)

	records := s.normalizer.NormalizeBatch(raws)
	result, err := s.estimateRecords(records, now)
	s.metrics.SetDuration(time.Since(runStart))
	return result, err
}

// EstimateFromRaw normalizes already-fetched raw comps and produces an estimate
func (s *EstimationService) EstimateFromRaw(raws []models.RawComp, now time.Time) (*models.EstimationResult, error) {
	s.metrics.Reset()
	runStart := time.Now()

	records := s.normalizer.NormalizeBatch(raws)
	result, err := s.estimateRecords(records, now)
	s.metrics.SetDuration(time.Since(runStart))
	return result, err
}

// estimateRecords validates normalized records, logs problems, and runs the estimator
func (s *EstimationService) estimateRecords(records []models.ComparableRecord, now time.Time) (*models.EstimationResult, error) {
	problemCount := 0
	for i := range records {
		problems := s.validator.ValidateComp(&records[i])
		for _, problem := range problems {
			s.ingestLogger.LogRecordProblem(i, problem)
			s.metrics.RecordValidationProblem()
			problemCount++
		}
	}
	metrics.RecordValidationProblems(problemCount)

	usable := s.validator.UsableRecords(records)
	s.metrics.SetRecordCounts(len(records), len(usable))
	metrics.RecordNormalization(len(usable), len(records)-len(usable))
	s.ingestLogger.LogNormalization(len(records), len(usable), len(records)-len(usable))

	estimateStart := time.Now()
	result, err := s.estimator.Estimate(records, now)
	if err != nil {
		s.metrics.RecordRejection()
		s.estimateLogger.LogEstimateRejected(err.Error(), len(records))
		return nil, err
	}

	s.metrics.RecordEstimate()
	s.estimateLogger.LogEstimateProduced(
		result.ID.String(),
		result.SuggestedPrice,
		result.ConfidenceScore,
		string(result.ConfidenceLabel),
		result.CompsUsed,
		time.Since(estimateStart).Seconds()*1000,
	)

	if result.ConfidenceLabel == models.ConfidenceVeryLow {
		s.estimateLogger.LogLowConfidence(result.ID.String(), result.ConfidenceScore, result.Diagnostics)
	}

	return result, nil
}

// findSource returns the named source, or nil when unknown
func (s *EstimationService) findSource(sourceName string) datasource.CompSource {
	for _, src := range s.sources {
		if src.Name() == sourceName {
			return src
		}
	}
	return nil
}

// GetMetrics returns current estimation run metrics
func (s *EstimationService) GetMetrics() *EstimationRunMetrics {
	return s.metrics
}

// ResetMetrics resets estimation run metrics
func (s *EstimationService) ResetMetrics() {
	s.metrics.Reset()
}
