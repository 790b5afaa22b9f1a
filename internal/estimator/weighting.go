package estimator

import (
	"math"
	"time"

	"github.com/yourusername/price-scout/internal/models"
)

const (
	// Weight given to comps with an unknown sale date. Moderately aged
	// rather than zero so sparse datasets are not starved of evidence.
	missingDateTimeWeight = 0.7

	// Geography signal placeholder until location data is wired in.
	geographicWeight = 1.0
)

// WeightedRecord wraps a comp with its composite scoring weight and the
// individual components that produced it
type WeightedRecord struct {
	Record             models.ComparableRecord
	Weight             float64
	TimeWeight         float64
	SeasonalMultiplier float64
	PlatformWeight     float64
	GeoWeight          float64
}

// ComputeWeights scores each filtered comp by age, season and platform
// reliability. Every weight is positive by construction.
func ComputeWeights(records []models.ComparableRecord, now time.Time, decayRate float64, cfg Config) []WeightedRecord {
	weighted := make([]WeightedRecord, 0, len(records))
	for _, rec := range records {
		timeWeight := missingDateTimeWeight
		if rec.SaleDate != nil {
			timeWeight = math.Exp(-decayRate * rec.AgeDays(now))
		}
		seasonal := SeasonalMultiplier(rec.Title, rec.SaleDate)
		platform := cfg.PlatformWeight(rec.Platform)

		weighted = append(weighted, WeightedRecord{
			Record:             rec,
			Weight:             timeWeight * seasonal * platform * geographicWeight,
			TimeWeight:         timeWeight,
			SeasonalMultiplier: seasonal,
			PlatformWeight:     platform,
			GeoWeight:          geographicWeight,
		})
	}
	return weighted
}
