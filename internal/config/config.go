// Package config provides configuration management for the Price Scout application.
package config

import (
	"fmt"
	"time"
)

// Config represents the complete application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	Estimator EstimatorConfig `mapstructure:"estimator" validate:"required"`
	Cache     CacheConfig     `mapstructure:"cache" validate:"required"`
	Metrics   MetricsConfig   `mapstructure:"metrics" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// EstimatorConfig represents price estimation tuning parameters
type EstimatorConfig struct {
	MinComps              int                        `mapstructure:"min_comps" validate:"required,gt=0"`
	RecencyWindowDays     int                        `mapstructure:"recency_window_days" validate:"required,gt=0"`
	BaseDecayRate         float64                    `mapstructure:"base_decay_rate" validate:"required,gt=0"`
	LowVolatility         float64                    `mapstructure:"low_volatility" validate:"required,gt=0,lt=1"`
	HighVolatility        float64                    `mapstructure:"high_volatility" validate:"required,gt=0,lt=1"`
	CalmDecayFactor       float64                    `mapstructure:"calm_decay_factor" validate:"required,gt=0"`
	VolatileDecayFactor   float64                    `mapstructure:"volatile_decay_factor" validate:"required,gt=0"`
	DefaultPlatformWeight float64                    `mapstructure:"default_platform_weight" validate:"required,gt=0,lte=1"`
	PlatformWeights       map[string]float64         `mapstructure:"platform_weights" validate:"omitempty,dive,gt=0,lte=1"`
	ConfidenceThresholds  ConfidenceThresholdsConfig `mapstructure:"confidence_thresholds" validate:"required"`
}

// ConfidenceThresholdsConfig represents the score cutoffs for confidence labels
type ConfidenceThresholdsConfig struct {
	Low      float64 `mapstructure:"low" validate:"required,gt=0,lt=1"`
	Medium   float64 `mapstructure:"medium" validate:"required,gt=0,lt=1"`
	High     float64 `mapstructure:"high" validate:"required,gt=0,lt=1"`
	VeryHigh float64 `mapstructure:"very_high" validate:"required,gt=0,lt=1"`
}

// CacheConfig represents estimate cache configuration
type CacheConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	TTLSeconds int  `mapstructure:"ttl_seconds" validate:"required,gt=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsStaging checks if the application is running in staging mode
func (c *Config) IsStaging() bool {
	return c.App.Environment == "staging"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// CacheTTL returns the configured estimate cache lifetime
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// GetMetricsAddress returns the listen address for the metrics endpoint
func (c *Config) GetMetricsAddress() string {
	return fmt.Sprintf(":%d", c.Metrics.Port)
}
