// Package helpers provides shared fixtures for cross-package tests.
package helpers

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/price-scout/internal/models"
)

// SampleComps builds raw comps for one item, sold the given numbers of days
// before now, all on the same platform and in the same condition.
func SampleComps(now time.Time, title string, prices []float64, daysAgo []int, platform, condition string) []models.RawComp {
	comps := make([]models.RawComp, 0, len(prices))
	for i, price := range prices {
		days := 0
		if i < len(daysAgo) {
			days = daysAgo[i]
		}
		date := now.Add(-time.Duration(days) * 24 * time.Hour).Format(time.RFC3339)
		cond := condition
		comps = append(comps, models.RawComp{
			Title:     title,
			SoldPrice: jsonNumber(price),
			SaleDate:  &date,
			Platform:  platform,
			Condition: &cond,
		})
	}
	return comps
}

// WriteCompsFile marshals comps to a JSON file under a test temp dir and
// returns the path.
func WriteCompsFile(t *testing.T, comps []models.RawComp) string {
	t.Helper()

	data, err := json.Marshal(comps)
	require.NoError(t, err, "failed to marshal comps fixture")

	path := filepath.Join(t.TempDir(), "comps.json")
	require.NoError(t, os.WriteFile(path, data, 0o644), "failed to write comps fixture")
	return path
}

// DecodeResult parses an EstimationResult from its JSON form.
func DecodeResult(t *testing.T, data []byte) models.EstimationResult {
	t.Helper()

	var result models.EstimationResult
	require.NoError(t, json.Unmarshal(data, &result), "failed to decode estimation result")
	return result
}

func jsonNumber(v float64) json.Number {
	data, _ := json.Marshal(v)
	return json.Number(data)
}
