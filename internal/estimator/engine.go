package estimator

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/price-scout/internal/models"
)

// Estimator produces a price estimate from a set of comparable sales
type Estimator interface {
	Estimate(records []models.ComparableRecord, now time.Time) (*models.EstimationResult, error)
}

// Engine composes outlier filtering, adaptive temporal weighting and
// confidence scoring into a single estimation pass. It holds no mutable
// state and may be shared across goroutines; identical (records, now)
// inputs yield identical results.
type Engine struct {
	config Config
}

// NewEngine creates a new estimation engine
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid estimator config: %w", err)
	}
	return &Engine{config: cfg}, nil
}

// Config returns the engine configuration
func (e *Engine) Config() Config {
	return e.config
}

// Estimate runs the full pipeline over one comp set. Confidence is scored on
// the raw records; the price path runs on the outlier-filtered subset.
func (e *Engine) Estimate(records []models.ComparableRecord, now time.Time) (*models.EstimationResult, error) {
	usable := pricedRecords(records)
	if len(usable) < e.config.MinComps {
		return nil, fmt.Errorf("%w: %d usable comps, need %d", models.ErrInsufficientData, len(usable), e.config.MinComps)
	}

	factors, diagnostics := ScoreConfidence(records, now, e.config)

	filtered, _ := FilterOutliers(usable)
	volatility := CalculateVolatility(filtered, now, e.config)
	decayRate := SelectDecayRate(volatility, e.config)
	weighted := ComputeWeights(filtered, now, decayRate, e.config)

	aggregate, err := AggregateHotZone(weighted)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInsufficientData, err)
	}

	score := clamp01(factors.Overall())
	return &models.EstimationResult{
		ID:              resultID(records, now),
		SuggestedPrice:  aggregate.SuggestedPrice,
		PriceRange:      aggregate.Range,
		ConfidenceScore: score,
		ConfidenceLabel: LevelForScore(score, e.config),
		Factors:         factors,
		Diagnostics:     diagnostics,
		CompsUsed:       len(weighted),
		GeneratedAt:     now.UTC(),
	}, nil
}

// Fingerprint creates a stable digest of one estimation input. Cached and
// derived identifiers both key off it.
func Fingerprint(records []models.ComparableRecord, now time.Time) string {
	payload := struct {
		Records []models.ComparableRecord `json:"records"`
		Now     time.Time                 `json:"now"`
	}{Records: records, Now: now}
	data, _ := json.Marshal(payload)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

func resultID(records []models.ComparableRecord, now time.Time) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(Fingerprint(records, now)))
}
