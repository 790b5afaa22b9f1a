package estimator

import (
	"time"

	"github.com/yourusername/price-scout/internal/models"
)

// Records needed inside the recency window before recent-only volatility is
// preferred over the full set.
const minRecentRecords = 2

// CalculateVolatility computes the coefficient of variation of recent prices.
// It prefers sales inside the recency window; with fewer than 2 of those it
// falls back to every priced record. The result is clamped to [0,1].
func CalculateVolatility(records []models.ComparableRecord, now time.Time, cfg Config) float64 {
	priced := pricedRecords(records)
	if len(priced) == 0 {
		return 0
	}

	window := time.Duration(cfg.RecencyWindowDays) * 24 * time.Hour
	recent := make([]models.ComparableRecord, 0, len(priced))
	for _, rec := range priced {
		if rec.SoldWithin(window, now) {
			recent = append(recent, rec)
		}
	}

	subset := recent
	if len(recent) < minRecentRecords {
		subset = priced
	}

	sample := prices(subset)
	mean := average(sample)
	if mean <= 0 {
		return 0
	}
	return clamp01(stddev(sample) / mean)
}

// SelectDecayRate maps volatility onto an adaptive per-day decay rate:
// volatile markets discount old comps faster, calm markets slower.
func SelectDecayRate(volatility float64, cfg Config) float64 {
	switch {
	case volatility > cfg.HighVolatility:
		return cfg.BaseDecayRate * cfg.VolatileDecayFactor
	case volatility < cfg.LowVolatility:
		return cfg.BaseDecayRate * cfg.CalmDecayFactor
	default:
		return cfg.BaseDecayRate
	}
}
