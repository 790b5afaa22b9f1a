package estimator

import (
	"fmt"

	"github.com/yourusername/price-scout/internal/config"
	"github.com/yourusername/price-scout/internal/models"
)

// Config extends core config with estimation-specific settings
type Config struct {
	MinComps              int
	RecencyWindowDays     int
	BaseDecayRate         float64
	LowVolatility         float64
	HighVolatility        float64
	CalmDecayFactor       float64
	VolatileDecayFactor   float64
	PlatformWeights       map[string]float64
	DefaultPlatformWeight float64
	LowThreshold          float64
	MediumThreshold       float64
	HighThreshold         float64
	VeryHighThreshold     float64
}

// DefaultConfig returns the tuned production defaults
func DefaultConfig() Config {
	return Config{
		MinComps:            5,
		RecencyWindowDays:   30,
		BaseDecayRate:       0.03,
		LowVolatility:       0.08,
		HighVolatility:      0.25,
		CalmDecayFactor:     0.5,
		VolatileDecayFactor: 1.8,
		PlatformWeights: map[string]float64{
			string(models.PlatformEBay):       1.00,
			string(models.PlatformAmazon):     0.97,
			string(models.PlatformEtsy):       0.92,
			string(models.PlatformPoshmark):   0.88,
			string(models.PlatformMercari):    0.85,
			string(models.PlatformDepop):      0.82,
			string(models.PlatformFacebook):   0.75,
			string(models.PlatformOther):      0.75,
			string(models.PlatformCraigslist): 0.65,
		},
		DefaultPlatformWeight: 0.75,
		LowThreshold:          0.25,
		MediumThreshold:       0.45,
		HighThreshold:         0.65,
		VeryHighThreshold:     0.85,
	}
}

// FromConfig converts app config to estimator config
func FromConfig(cfg *config.EstimatorConfig) (Config, error) {
	if cfg == nil {
		return Config{}, fmt.Errorf("estimator config is required")
	}

	ec := DefaultConfig()
	ec.MinComps = cfg.MinComps
	ec.RecencyWindowDays = cfg.RecencyWindowDays
	ec.BaseDecayRate = cfg.BaseDecayRate
	ec.LowVolatility = cfg.LowVolatility
	ec.HighVolatility = cfg.HighVolatility
	ec.CalmDecayFactor = cfg.CalmDecayFactor
	ec.VolatileDecayFactor = cfg.VolatileDecayFactor
	ec.DefaultPlatformWeight = cfg.DefaultPlatformWeight
	ec.LowThreshold = cfg.ConfidenceThresholds.Low
	ec.MediumThreshold = cfg.ConfidenceThresholds.Medium
	ec.HighThreshold = cfg.ConfidenceThresholds.High
	ec.VeryHighThreshold = cfg.ConfidenceThresholds.VeryHigh
	if len(cfg.PlatformWeights) > 0 {
		weights := make(map[string]float64, len(cfg.PlatformWeights))
		for platform, weight := range cfg.PlatformWeights {
			weights[platform] = weight
		}
		ec.PlatformWeights = weights
	}

	return ec, ec.Validate()
}

// Validate validates estimator config parameters
func (c Config) Validate() error {
	if c.MinComps < 1 {
		return fmt.Errorf("minimum comps must be positive")
	}
	if c.RecencyWindowDays <= 0 {
		return fmt.Errorf("recency window must be positive")
	}
	if c.BaseDecayRate <= 0 {
		return fmt.Errorf("base decay rate must be positive")
	}
	if c.LowVolatility <= 0 || c.HighVolatility >= 1 || c.LowVolatility >= c.HighVolatility {
		return fmt.Errorf("volatility thresholds must satisfy 0 < low < high < 1")
	}
	if c.CalmDecayFactor <= 0 || c.VolatileDecayFactor <= 0 {
		return fmt.Errorf("decay factors must be positive")
	}
	if c.DefaultPlatformWeight <= 0 || c.DefaultPlatformWeight > 1 {
		return fmt.Errorf("default platform weight must be in (0,1]")
	}
	for platform, weight := range c.PlatformWeights {
		if weight <= 0 || weight > 1 {
			return fmt.Errorf("platform weight for %s must be in (0,1]", platform)
		}
	}
	thresholds := []float64{c.LowThreshold, c.MediumThreshold, c.HighThreshold, c.VeryHighThreshold}
	for i, t := range thresholds {
		if t <= 0 || t >= 1 {
			return fmt.Errorf("confidence thresholds must be in (0,1)")
		}
		if i > 0 && t <= thresholds[i-1] {
			return fmt.Errorf("confidence thresholds must be strictly ascending")
		}
	}
	return nil
}

// PlatformWeight returns the reliability weight for a platform, falling back
// to the default for platforms missing from the table
func (c Config) PlatformWeight(platform models.Platform) float64 {
	if weight, ok := c.PlatformWeights[string(platform)]; ok {
		return weight
	}
	return c.DefaultPlatformWeight
}
