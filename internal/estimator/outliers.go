package estimator

import (
	"math"

	"github.com/yourusername/price-scout/internal/models"
)

const (
	iqrMultiplier       = 1.5
	conditionSigmaLimit = 2.0
	platformSigmaLimit  = 2.5
	minGroupSize        = 3
	minFilteredRecords  = 3
	minRecordsForIQR    = 4
)

// FilterOutliers drops comps flagged by any of three independent passes:
// a price IQR fence, per-condition deviation and per-platform deviation.
// If fewer than 3 records would survive, filtering is abandoned and the
// original list is returned untouched.
func FilterOutliers(records []models.ComparableRecord) ([]models.ComparableRecord, int) {
	if len(records) == 0 {
		return records, 0
	}

	flagged := make([]bool, len(records))
	flagPriceOutliers(records, flagged)
	flagGroupOutliers(records, flagged, conditionKey, conditionSigmaLimit)
	flagGroupOutliers(records, flagged, platformKey, platformSigmaLimit)

	kept := make([]models.ComparableRecord, 0, len(records))
	for i, rec := range records {
		if !flagged[i] {
			kept = append(kept, rec)
		}
	}

	if len(kept) < minFilteredRecords {
		return records, 0
	}
	return kept, len(records) - len(kept)
}

func flagPriceOutliers(records []models.ComparableRecord, flagged []bool) {
	if len(records) < minRecordsForIQR {
		return
	}
	sample := prices(records)
	q1 := quantile(sample, 0.25)
	q3 := quantile(sample, 0.75)
	iqr := q3 - q1
	lower := q1 - iqrMultiplier*iqr
	upper := q3 + iqrMultiplier*iqr

	for i := range records {
		price := records[i].PriceFloat()
		if price < lower || price > upper {
			flagged[i] = true
		}
	}
}

func flagGroupOutliers(records []models.ComparableRecord, flagged []bool, key func(*models.ComparableRecord) string, sigmaLimit float64) {
	groups := make(map[string][]int)
	for i := range records {
		k := key(&records[i])
		groups[k] = append(groups[k], i)
	}

	for _, members := range groups {
		if len(members) < minGroupSize {
			continue
		}
		sample := make([]float64, 0, len(members))
		for _, idx := range members {
			sample = append(sample, records[idx].PriceFloat())
		}
		mean := average(sample)
		sd := stddev(sample)
		if sd == 0 {
			continue
		}
		for _, idx := range members {
			if math.Abs(records[idx].PriceFloat()-mean) > sigmaLimit*sd {
				flagged[idx] = true
			}
		}
	}
}

func conditionKey(rec *models.ComparableRecord) string {
	if rec.Condition == "" {
		return models.ConditionUnknown
	}
	return rec.Condition
}

func platformKey(rec *models.ComparableRecord) string {
	return string(rec.Platform)
}
