// Package logger provides estimate-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// EstimateLogger provides dedicated logging for price estimation events.
type EstimateLogger struct {
	*logrus.Entry
}

// NewEstimateLogger creates a new estimate logger.
func NewEstimateLogger(baseLogger *logrus.Logger) *EstimateLogger {
	return &EstimateLogger{
		Entry: baseLogger.WithField("component", "estimate"),
	}
}

// LogEstimateProduced logs a completed price estimate.
func (el *EstimateLogger) LogEstimateProduced(estimateID string, suggestedPrice, confidenceScore float64, confidenceLabel string, compsUsed int, durationMs float64) {
	el.WithFields(logrus.Fields{
		"estimate_id":      estimateID,
		"suggested_price":  suggestedPrice,
		"confidence_score": confidenceScore,
		"confidence_label": confidenceLabel,
		"comps_used":       compsUsed,
		"duration_ms":      durationMs,
	}).Info("Estimate produced")
}

// LogEstimateRejected logs an estimation request that could not be served.
func (el *EstimateLogger) LogEstimateRejected(reason string, recordCount int) {
	el.WithFields(logrus.Fields{
		"reason":       reason,
		"record_count": recordCount,
	}).Warn("Estimate rejected")
}

// LogOutlierFiltering logs outlier filtering results.
func (el *EstimateLogger) LogOutlierFiltering(totalRecords, droppedRecords int) {
	el.WithFields(logrus.Fields{
		"total_records":   totalRecords,
		"dropped_records": droppedRecords,
	}).Info("Outlier filtering completed")
}

// LogLowConfidence logs estimates whose confidence fell below the usable band.
func (el *EstimateLogger) LogLowConfidence(estimateID string, confidenceScore float64, diagnostics []string) {
	el.WithFields(logrus.Fields{
		"estimate_id":      estimateID,
		"confidence_score": confidenceScore,
		"diagnostics":      diagnostics,
	}).Warn("Low confidence estimate")
}
