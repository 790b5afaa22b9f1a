// Package config provides configuration management for the Price Scout application.
package config

import (
	"os"
	"testing"
	"time"
)

const (
	validConfigPath              = "testdata/valid_config.yaml"
	expansionConfigPath          = "testdata/expansion_config.yaml"
	expansionConfigMissingPath   = "testdata/expansion_config_missing.yaml"
	nonexistentConfigPath        = "testdata/nonexistent_config.yaml"
	expectedNoErrorLoadingConfig = "expected no error loading config, got %v"
	expectedNoErrorMsg           = "expected no error, got %v"
	expectedNonNilConfig         = "expected non-nil config"
	priceScoutName               = "price-scout"
	developmentEnv               = "development"
	productionEnv                = "production"
	invalidEnv                   = "invalid"
	testAppName                  = "test-app"
	testAppNameVar               = "TEST_APP_NAME"
	testMissingVar               = "TEST_MISSING_VAR"
	expandedAppName              = "expanded-app-name"
)

// TestLoadConfigSuccess tests loading a valid configuration file
func TestLoadConfigSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg == nil {
		t.Fatal(expectedNonNilConfig)
	}

	if cfg.App.Name != priceScoutName {
		t.Errorf("expected app name '%s', got '%s'", priceScoutName, cfg.App.Name)
	}

	if cfg.App.Environment != developmentEnv {
		t.Errorf("expected environment '%s', got '%s'", developmentEnv, cfg.App.Environment)
	}

	if cfg.Estimator.MinComps != 5 {
		t.Errorf("expected min comps 5, got %d", cfg.Estimator.MinComps)
	}

	if cfg.Estimator.PlatformWeights["EBAY"] != 1.0 {
		t.Errorf("expected EBAY weight 1.0, got %f", cfg.Estimator.PlatformWeights["EBAY"])
	}

	if cfg.Estimator.ConfidenceThresholds.VeryHigh != 0.85 {
		t.Errorf("expected very_high threshold 0.85, got %f", cfg.Estimator.ConfidenceThresholds.VeryHigh)
	}
}

// TestLoadConfigFileNotFound tests handling of missing configuration file
func TestLoadConfigFileNotFound(t *testing.T) {
	_, err := Load(nonexistentConfigPath)
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

// TestLoadConfigEnvironmentVariables tests environment variable override
func TestLoadConfigEnvironmentVariables(t *testing.T) {
	// Set an environment variable
	os.Setenv("PRICE_SCOUT_APP_NAME", testAppName)
	defer os.Unsetenv("PRICE_SCOUT_APP_NAME")

	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg.App.Name != testAppName {
		t.Errorf("expected app name '%s' from environment, got '%s'", testAppName, cfg.App.Name)
	}
}

// TestLoadWithDefaultsMissingFile tests that defaults cover a missing config file
func TestLoadWithDefaultsMissingFile(t *testing.T) {
	cfg, err := LoadWithDefaults(nonexistentConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg.Estimator.MinComps != 5 {
		t.Errorf("expected default min comps 5, got %d", cfg.Estimator.MinComps)
	}

	if cfg.Estimator.BaseDecayRate != 0.03 {
		t.Errorf("expected default base decay rate 0.03, got %f", cfg.Estimator.BaseDecayRate)
	}

	if cfg.Cache.TTLSeconds != 300 {
		t.Errorf("expected default cache TTL 300, got %d", cfg.Cache.TTLSeconds)
	}

	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to pass validation, got %v", err)
	}
}

// TestValidateSuccess tests validation of a valid configuration
func TestValidateSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	err = Validate(cfg)
	if err != nil {
		t.Fatalf("expected no validation error, got %v", err)
	}
}

// TestValidateInvalidEnvironment tests validation of invalid environment
func TestValidateInvalidEnvironment(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.App.Environment = invalidEnv
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for invalid environment")
	}
}

// TestValidateInvalidLogLevel tests validation of invalid log level
func TestValidateInvalidLogLevel(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.App.LogLevel = "verbose"
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for invalid log level")
	}

	if !containsSubstring(err.Error(), "LogLevel") {
		t.Errorf("expected log level validation error, got: %v", err)
	}
}

// TestValidateVolatilityBand tests the volatility band ordering check
func TestValidateVolatilityBand(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.Estimator.LowVolatility = 0.5
	cfg.Estimator.HighVolatility = 0.3
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for inverted volatility band")
	}

	if !containsSubstring(err.Error(), "low_volatility") {
		t.Errorf("expected volatility band error, got: %v", err)
	}
}

// TestValidateThresholdOrdering tests the confidence threshold ordering check
func TestValidateThresholdOrdering(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.Estimator.ConfidenceThresholds.Medium = 0.7
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for out-of-order thresholds")
	}

	if !containsSubstring(err.Error(), "ascending") {
		t.Errorf("expected threshold ordering error, got: %v", err)
	}
}

// TestValidatePlatformWeightRange tests platform weight bounds
func TestValidatePlatformWeightRange(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.Estimator.PlatformWeights["EBAY"] = 1.5
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for platform weight above 1")
	}
}

// TestValidateProductionRequiresMetrics tests production environment constraints
func TestValidateProductionRequiresMetrics(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.App.Environment = productionEnv
	cfg.Metrics.Enabled = false
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for production without metrics")
	}
}

// TestValidateProductionDebugLogging tests that production rejects debug logging
func TestValidateProductionDebugLogging(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.App.Environment = productionEnv
	cfg.App.LogLevel = "debug"
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for debug logging in production")
	}
}

// TestIsDevelopment tests environment check function
func TestIsDevelopment(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Environment: developmentEnv},
	}

	if !cfg.IsDevelopment() {
		t.Error("expected IsDevelopment() to return true")
	}

	if cfg.IsProduction() {
		t.Error("expected IsProduction() to return false")
	}
}

// TestIsProduction tests production environment check
func TestIsProduction(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Environment: productionEnv},
	}

	if !cfg.IsProduction() {
		t.Error("expected IsProduction() to return true")
	}

	if cfg.IsDevelopment() {
		t.Error("expected IsDevelopment() to return false")
	}
}

// TestIsStaging tests staging environment check
func TestIsStaging(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Environment: "staging"},
	}

	if !cfg.IsStaging() {
		t.Error("expected IsStaging() to return true")
	}

	if cfg.IsDevelopment() {
		t.Error("expected IsDevelopment() to return false")
	}
}

// TestCacheTTL tests cache TTL conversion
func TestCacheTTL(t *testing.T) {
	cfg := &Config{
		Cache: CacheConfig{TTLSeconds: 300},
	}

	if cfg.CacheTTL() != 5*time.Minute {
		t.Errorf("expected TTL of 5m, got %v", cfg.CacheTTL())
	}
}

// TestGetMetricsAddress tests metrics listen address formatting
func TestGetMetricsAddress(t *testing.T) {
	cfg := &Config{
		Metrics: MetricsConfig{Port: 9090},
	}

	addr := cfg.GetMetricsAddress()
	if addr != ":9090" {
		t.Errorf("expected address ':9090', got '%s'", addr)
	}
}

// TestLoadConfigEnvironmentVariableExpansion tests environment variable expansion in config file
func TestLoadConfigEnvironmentVariableExpansion(t *testing.T) {
	// Set environment variable
	os.Setenv(testAppNameVar, expandedAppName)
	defer os.Unsetenv(testAppNameVar)

	cfg, err := Load(expansionConfigPath)
	if err != nil {
		t.Fatalf("expected no error loading config with expansion, got %v", err)
	}

	if cfg.App.Name != expandedAppName {
		t.Errorf("expected app name '%s' from environment expansion, got '%s'", expandedAppName, cfg.App.Name)
	}
}

// TestLoadConfigMissingEnvironmentVariable tests handling of missing environment variables
func TestLoadConfigMissingEnvironmentVariable(t *testing.T) {
	// Ensure environment variable is not set
	os.Unsetenv(testMissingVar)

	cfg, err := Load(expansionConfigMissingPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	// os.ExpandEnv replaces unset variables with an empty string
	if cfg.App.Name != "" {
		t.Errorf("expected empty app name for missing env var, got %q", cfg.App.Name)
	}
}

// Helper function
func containsSubstring(str, substr string) bool {
	for i := 0; i <= len(str)-len(substr); i++ {
		if str[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
