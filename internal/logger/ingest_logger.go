// Package logger provides ingestion-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// IngestLogger provides dedicated logging for comparable record ingestion.
type IngestLogger struct {
	*logrus.Entry
}

// NewIngestLogger creates a new ingest logger.
func NewIngestLogger(baseLogger *logrus.Logger) *IngestLogger {
	return &IngestLogger{
		Entry: baseLogger.WithField("component", "ingest"),
	}
}

// LogSourceFetch logs a completed fetch from a comparable record source.
func (il *IngestLogger) LogSourceFetch(source string, recordCount int, durationMs float64) {
	il.WithFields(logrus.Fields{
		"source":       source,
		"record_count": recordCount,
		"duration_ms":  durationMs,
	}).Info("Comparable records fetched")
}

// LogNormalization logs raw record normalization results.
func (il *IngestLogger) LogNormalization(rawCount, usableCount, droppedCount int) {
	il.WithFields(logrus.Fields{
		"raw_count":     rawCount,
		"usable_count":  usableCount,
		"dropped_count": droppedCount,
	}).Info("Raw records normalized")
}

// LogRecordProblem logs a record that failed validation.
func (il *IngestLogger) LogRecordProblem(recordIndex int, problem string) {
	il.WithFields(logrus.Fields{
		"record_index": recordIndex,
		"problem":      problem,
	}).Warn("Record failed validation")
}
