// Package main provides the entry point for the price estimation CLI.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/price-scout/internal/config"
	"github.com/yourusername/price-scout/internal/datasource"
	"github.com/yourusername/price-scout/internal/estimator"
	"github.com/yourusername/price-scout/internal/logger"
	"github.com/yourusername/price-scout/internal/models"
	"github.com/yourusername/price-scout/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile  string
	inputPath   string
	query       string
	nowOverride string
	pretty      bool

	appLog *logrus.Logger
	cfg    *config.Config
	svc    *service.EstimationService
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "-", "Path to a JSON file of comparable sales, or '-' for stdin")
	rootCmd.Flags().StringVarP(&query, "query", "q", "", "Item query used to filter file-backed comps by title")
	rootCmd.Flags().StringVar(&nowOverride, "now", "", "RFC3339 timestamp overriding the clock, for reproducible runs")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the result JSON")
}

var rootCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate a resale price from comparable sales",
	Long:  `Reads comparable sales as JSON, filters outliers, applies temporal and platform weighting, and prints a price estimate with a confidence score.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := setupDependencies(); err != nil {
			return fmt.Errorf("failed to setup dependencies: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEstimate()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system env vars")
	}

	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	return config.Validate(cfg)
}

func setupDependencies() error {
	appLog = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	appLog.WithFields(logrus.Fields{
		"version":     Version,
		"commit":      GitCommit,
		"build_date":  BuildDate,
		"environment": cfg.App.Environment,
	}).Debug("Price estimation CLI starting")

	engineConfig, err := estimator.FromConfig(&cfg.Estimator)
	if err != nil {
		return fmt.Errorf("invalid estimator config: %w", err)
	}
	engine, err := estimator.NewEngine(engineConfig)
	if err != nil {
		return fmt.Errorf("failed to create estimation engine: %w", err)
	}

	var est estimator.Estimator = estimator.NewInstrumentedEstimator(engine, appLog)
	if cfg.Cache.Enabled {
		est = estimator.NewCachedEstimator(est, cfg.CacheTTL(), appLog)
	}

	var sources []datasource.CompSource
	if inputPath != "" && inputPath != "-" {
		fileLogger := log.New(os.Stderr, "comp-file: ", log.LstdFlags)
		sources = append(sources, datasource.NewFileSource("file", inputPath, fileLogger))
	}

	stdLogger := log.New(os.Stderr, "estimate: ", log.LstdFlags)
	svc = service.NewEstimationService(
		sources,
		service.NewCompNormalizer(stdLogger),
		service.NewCompValidator(stdLogger),
		est,
		appLog,
	)
	return nil
}

func runEstimate() error {
	now, err := resolveNow()
	if err != nil {
		return err
	}

	var result *models.EstimationResult
	if inputPath == "" || inputPath == "-" {
		var raws []models.RawComp
		if err := json.NewDecoder(os.Stdin).Decode(&raws); err != nil {
			return fmt.Errorf("failed to decode comps from stdin: %w", err)
		}
		result, err = svc.EstimateFromRaw(raws, now)
	} else {
		result, err = svc.EstimateFromSource(context.Background(), "file", query, now)
	}
	if err != nil {
		return err
	}

	appLog.Info(svc.GetMetrics().String())
	return printResult(result)
}

func resolveNow() (time.Time, error) {
	if nowOverride == "" {
		return time.Now().UTC(), nil
	}
	parsed, err := time.Parse(time.RFC3339, nowOverride)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now value %q: %w", nowOverride, err)
	}
	return parsed.UTC(), nil
}

func printResult(result *models.EstimationResult) error {
	if pretty {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}
	fmt.Println(result.ToJSON())
	return nil
}
