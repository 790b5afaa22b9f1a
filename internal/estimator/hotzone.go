package estimator

import (
	"sort"

	"github.com/yourusername/price-scout/internal/models"
)

const (
	hotZoneLowerShare = 0.25
	hotZoneUpperShare = 0.75
)

// Aggregate represents the outcome of hot-zone averaging over one weighted set
type Aggregate struct {
	SuggestedPrice float64
	Range          models.PriceRange
	ZoneMin        float64
	ZoneMax        float64
	ZoneSize       int
}

// AggregateHotZone finds the price band holding the central 25%-75% of
// cumulative weight and returns the weighted mean price over it. The zone
// boundaries come from two independent forward scans over the sorted list;
// keep them separate, a combined single pass realizes different boundaries
// when cumulative weights tie on a threshold.
func AggregateHotZone(weighted []WeightedRecord) (Aggregate, error) {
	if len(weighted) == 0 {
		return Aggregate{}, models.ErrZeroWeightSet
	}

	sorted := append([]WeightedRecord{}, weighted...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Record.PriceFloat() < sorted[j].Record.PriceFloat()
	})

	totalWeight := 0.0
	for _, w := range sorted {
		totalWeight += w.Weight
	}
	if totalWeight <= 0 {
		return Aggregate{}, models.ErrZeroWeightSet
	}

	zoneMin := scanToWeightShare(sorted, totalWeight*hotZoneLowerShare)
	zoneMax := scanToWeightShare(sorted, totalWeight*hotZoneUpperShare)

	zone := make([]WeightedRecord, 0, len(sorted))
	for _, w := range sorted {
		price := w.Record.PriceFloat()
		if price >= zoneMin && price <= zoneMax {
			zone = append(zone, w)
		}
	}
	if len(zone) == 0 {
		zone = sorted
	}

	suggested := roundMoney(weightedMean(zone))
	lo, hi := priceBounds(zone)
	if suggested < lo {
		suggested = lo
	}
	if suggested > hi {
		suggested = hi
	}

	fullLo, fullHi := priceBounds(sorted)
	return Aggregate{
		SuggestedPrice: suggested,
		Range:          models.PriceRange{Min: fullLo, Max: fullHi},
		ZoneMin:        zoneMin,
		ZoneMax:        zoneMax,
		ZoneSize:       len(zone),
	}, nil
}

func scanToWeightShare(sorted []WeightedRecord, threshold float64) float64 {
	cumulative := 0.0
	for _, w := range sorted {
		cumulative += w.Weight
		if cumulative >= threshold {
			return w.Record.PriceFloat()
		}
	}
	return sorted[len(sorted)-1].Record.PriceFloat()
}

func weightedMean(weighted []WeightedRecord) float64 {
	sum := 0.0
	weightSum := 0.0
	for _, w := range weighted {
		sum += w.Record.PriceFloat() * w.Weight
		weightSum += w.Weight
	}
	if weightSum == 0 {
		return 0
	}
	return sum / weightSum
}

func priceBounds(weighted []WeightedRecord) (float64, float64) {
	lo := weighted[0].Record.PriceFloat()
	hi := lo
	for _, w := range weighted[1:] {
		price := w.Record.PriceFloat()
		if price < lo {
			lo = price
		}
		if price > hi {
			hi = price
		}
	}
	return lo, hi
}
