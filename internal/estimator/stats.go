package estimator

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/yourusername/price-scout/internal/models"
)

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	return mean / float64(len(values))
}

func stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := average(values)
	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}

// quantile returns the linearly interpolated q-quantile of an unsorted sample.
func quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64{}, values...)
	sort.Float64s(sorted)
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// roundMoney rounds a price to two decimal places for presentation.
func roundMoney(price float64) float64 {
	rounded, _ := decimal.NewFromFloat(price).Round(2).Float64()
	return rounded
}

func prices(records []models.ComparableRecord) []float64 {
	out := make([]float64, 0, len(records))
	for i := range records {
		out = append(out, records[i].PriceFloat())
	}
	return out
}

func pricedRecords(records []models.ComparableRecord) []models.ComparableRecord {
	out := make([]models.ComparableRecord, 0, len(records))
	for _, rec := range records {
		if rec.HasPrice() {
			out = append(out, rec)
		}
	}
	return out
}
