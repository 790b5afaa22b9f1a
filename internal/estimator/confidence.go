package estimator

import (
	"time"

	"github.com/yourusername/price-scout/internal/models"
)

const (
	fullQuantityComps  = 20
	fullDiversityCount = 3

	lowQuantityThreshold    = 0.4
	lowRecencyThreshold     = 0.25
	lowConsistencyThreshold = 0.4
	lowStabilityThreshold   = 0.4
	lowDiversityThreshold   = 0.3
)

// ScoreConfidence computes the six-factor confidence assessment over the raw,
// unfiltered comps. Quantity, recency and diversity must reflect all gathered
// evidence, not just the cleaned subset the price came from. Returns the
// factors and any diagnostics for factors below their alert thresholds.
func ScoreConfidence(records []models.ComparableRecord, now time.Time, cfg Config) (models.ConfidenceFactors, []string) {
	factors := models.ConfidenceFactors{
		DataQuantity:        clamp01(float64(len(records)) / fullQuantityComps),
		DataRecency:         recentFraction(records, now, cfg),
		PriceConsistency:    priceConsistency(records),
		MarketStability:     clamp01(1 - CalculateVolatility(records, now, cfg)),
		PlatformDiversity:   clamp01(float64(distinctPlatforms(records)) / fullDiversityCount),
		GeographicDiversity: 0.8,
	}

	diagnostics := []string{}
	if factors.DataQuantity < lowQuantityThreshold {
		diagnostics = append(diagnostics, "More data needed")
	}
	if factors.DataRecency < lowRecencyThreshold {
		diagnostics = append(diagnostics, "Recent data limited")
	}
	if factors.PriceConsistency < lowConsistencyThreshold {
		diagnostics = append(diagnostics, "High price variance")
	}
	if factors.MarketStability < lowStabilityThreshold {
		diagnostics = append(diagnostics, "Market volatility detected")
	}
	if factors.PlatformDiversity < lowDiversityThreshold {
		diagnostics = append(diagnostics, "Limited platform diversity")
	}

	return factors, diagnostics
}

// LevelForScore maps an overall confidence score onto its label
func LevelForScore(score float64, cfg Config) models.ConfidenceLevel {
	switch {
	case score >= cfg.VeryHighThreshold:
		return models.ConfidenceVeryHigh
	case score >= cfg.HighThreshold:
		return models.ConfidenceHigh
	case score >= cfg.MediumThreshold:
		return models.ConfidenceMedium
	case score >= cfg.LowThreshold:
		return models.ConfidenceLow
	default:
		return models.ConfidenceVeryLow
	}
}

func recentFraction(records []models.ComparableRecord, now time.Time, cfg Config) float64 {
	if len(records) == 0 {
		return 0
	}
	window := time.Duration(cfg.RecencyWindowDays) * 24 * time.Hour
	recent := 0
	for _, rec := range records {
		if rec.SoldWithin(window, now) {
			recent++
		}
	}
	return clamp01(float64(recent) / float64(len(records)))
}

func priceConsistency(records []models.ComparableRecord) float64 {
	priced := pricedRecords(records)
	if len(priced) < 2 {
		return 0.5
	}
	sample := prices(priced)
	mean := average(sample)
	if mean <= 0 {
		return 0.5
	}
	consistency := 1 - stddev(sample)/mean
	if consistency < 0 {
		return 0
	}
	return consistency
}

func distinctPlatforms(records []models.ComparableRecord) int {
	seen := make(map[models.Platform]struct{}, len(records))
	for _, rec := range records {
		if rec.Platform == "" {
			continue
		}
		seen[rec.Platform] = struct{}{}
	}
	return len(seen)
}
