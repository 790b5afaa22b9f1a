package service

import (
	"fmt"
	"sync"
	"time"
)

// EstimationRunMetrics tracks statistics about one estimation run
type EstimationRunMetrics struct {
	mu                 sync.RWMutex
	StartTime          time.Time
	Duration           time.Duration
	TotalRecords       int
	UsableRecords      int
	ValidationProblems int
	EstimatesProduced  int
	EstimatesRejected  int
	Errors             int
}

// NewEstimationRunMetrics creates a new metrics tracker
func NewEstimationRunMetrics() *EstimationRunMetrics {
	return &EstimationRunMetrics{
		StartTime: time.Now(),
	}
}

// Reset resets all metrics
func (m *EstimationRunMetrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.StartTime = time.Now()
	m.Duration = 0
	m.TotalRecords = 0
	m.UsableRecords = 0
	m.ValidationProblems = 0
	m.EstimatesProduced = 0
	m.EstimatesRejected = 0
	m.Errors = 0
}

// SetRecordCounts records how many records entered the run and how many were usable
func (m *EstimationRunMetrics) SetRecordCounts(total, usable int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TotalRecords = total
	m.UsableRecords = usable
}

// SetDuration records the elapsed time of the run
func (m *EstimationRunMetrics) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Duration = d
}

// RecordEstimate increments produced estimate count
func (m *EstimationRunMetrics) RecordEstimate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EstimatesProduced++
}

// RecordRejection increments rejected estimate count
func (m *EstimationRunMetrics) RecordRejection() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EstimatesRejected++
}

// RecordValidationProblem increments validation problem count
func (m *EstimationRunMetrics) RecordValidationProblem() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ValidationProblems++
}

// RecordError increments error count
func (m *EstimationRunMetrics) RecordError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors++
}

// String returns a formatted string representation of metrics
func (m *EstimationRunMetrics) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	usableRate := float64(0)
	if m.TotalRecords > 0 {
		usableRate = float64(m.UsableRecords) / float64(m.TotalRecords) * 100
	}

	return fmt.Sprintf(
		"EstimationRunMetrics{Records=%d, Usable=%d (%.1f%%), ValidationProblems=%d, Produced=%d, Rejected=%d, Errors=%d, Duration=%v}",
		m.TotalRecords,
		m.UsableRecords,
		usableRate,
		m.ValidationProblems,
		m.EstimatesProduced,
		m.EstimatesRejected,
		m.Errors,
		m.Duration,
	)
}
