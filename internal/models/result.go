package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ConfidenceLevel represents the coarse label assigned to a confidence score
type ConfidenceLevel string

const (
	ConfidenceVeryLow  ConfidenceLevel = "VeryLow"
	ConfidenceLow      ConfidenceLevel = "Low"
	ConfidenceMedium   ConfidenceLevel = "Medium"
	ConfidenceHigh     ConfidenceLevel = "High"
	ConfidenceVeryHigh ConfidenceLevel = "VeryHigh"
)

// ConfidenceFactors holds the six independent confidence signals, each in [0,1]
type ConfidenceFactors struct {
	DataQuantity        float64 `json:"data_quantity" validate:"gte=0,lte=1"`
	DataRecency         float64 `json:"data_recency" validate:"gte=0,lte=1"`
	PriceConsistency    float64 `json:"price_consistency" validate:"gte=0,lte=1"`
	MarketStability     float64 `json:"market_stability" validate:"gte=0,lte=1"`
	PlatformDiversity   float64 `json:"platform_diversity" validate:"gte=0,lte=1"`
	GeographicDiversity float64 `json:"geographic_diversity" validate:"gte=0,lte=1"`
}

// Overall returns the unweighted average of the six factors
func (f *ConfidenceFactors) Overall() float64 {
	sum := f.DataQuantity + f.DataRecency + f.PriceConsistency +
		f.MarketStability + f.PlatformDiversity + f.GeographicDiversity
	return sum / 6
}

// PriceRange represents the (min, max) dispersion of the full weighted set
type PriceRange struct {
	Min float64 `validate:"gte=0"`
	Max float64 `validate:"gtefield=Min"`
}

// MarshalJSON encodes the range as a [min, max] pair
func (r PriceRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{r.Min, r.Max})
}

// UnmarshalJSON decodes a [min, max] pair
func (r *PriceRange) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	r.Min = pair[0]
	r.Max = pair[1]
	return nil
}

// Contains checks whether a price falls inside the range
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// EstimationResult represents the engine's priced answer for one item
type EstimationResult struct {
	ID              uuid.UUID         `json:"id"`
	SuggestedPrice  float64           `json:"suggested_price" validate:"gte=0"`
	PriceRange      PriceRange        `json:"price_range"`
	ConfidenceScore float64           `json:"confidence_score" validate:"gte=0,lte=1"`
	ConfidenceLabel ConfidenceLevel   `json:"confidence_label" validate:"required"`
	Factors         ConfidenceFactors `json:"factors"`
	Diagnostics     []string          `json:"diagnostics"`
	CompsUsed       int               `json:"comps_used" validate:"gte=0"`
	GeneratedAt     time.Time         `json:"generated_at"`
}

// ToJSON exports the result to JSON
func (r *EstimationResult) ToJSON() string {
	data, _ := json.Marshal(r)
	return string(data)
}
