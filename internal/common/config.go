// Package common provides shared utilities for GreenVest
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for GreenVest
type Config struct {
	Environment string          `toml:"environment"`
	Server      ServerConfig    `toml:"server"`
	Analytics   AnalyticsConfig `toml:"analytics"`
	Portfolio   PortfolioConfig `toml:"portfolio"`
	Sources     SourcesConfig   `toml:"sources"`
	Cache       CacheConfig     `toml:"cache"`
	Logging     LoggingConfig   `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host      string  `toml:"host"`
	Port      int     `toml:"port"`
	RateLimit float64 `toml:"rate_limit"` // requests per second across the API, 0 disables
	RateBurst int     `toml:"rate_burst"`
}

// AnalyticsConfig tunes the scoring engine.
type AnalyticsConfig struct {
	RiskFreeRate      float64 `toml:"risk_free_rate"`
	AnnualizationDays int     `toml:"annualization_days"`
	ClampScores       bool    `toml:"clamp_scores"` // clamp confidence to [0,1] and risk score to [0,100]
	Seed              uint64  `toml:"seed"`         // 0 seeds from the clock
	TrendShort        int     `toml:"trend_short"`
	TrendLong         int     `toml:"trend_long"`
}

// PortfolioConfig holds the rebalancing policy thresholds.
type PortfolioConfig struct {
	MaxPortfolioRisk float64 `toml:"max_portfolio_risk"`
	DriftTolerance   float64 `toml:"drift_tolerance"`
}

// SourcesConfig selects where prices and fund observations come from.
type SourcesConfig struct {
	Prices  string      `toml:"prices"`  // "sample", "csv" or "yahoo"
	Metrics string      `toml:"metrics"` // "sample"
	CSVDir  string      `toml:"csv_dir"`
	Yahoo   YahooConfig `toml:"yahoo"`
}

// YahooConfig holds the Yahoo Finance price feed settings.
type YahooConfig struct {
	LookbackDays int               `toml:"lookback_days"`
	Timeout      string            `toml:"timeout"`
	Symbols      map[string]string `toml:"symbols"` // fund id -> exchange ticker
}

// GetTimeout parses and returns the timeout duration
func (c *YahooConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// CacheConfig holds the metrics snapshot cache settings.
type CacheConfig struct {
	SnapshotTTL     string `toml:"snapshot_ttl"`
	MaxSize         int64  `toml:"max_size"`
	RefreshSchedule string `toml:"refresh_schedule"` // cron spec, empty disables
}

// GetSnapshotTTL parses and returns the snapshot TTL
func (c *CacheConfig) GetSnapshotTTL() time.Duration {
	d, err := time.ParseDuration(c.SnapshotTTL)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Format     string   `toml:"format"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      8080,
			RateLimit: 50,
			RateBurst: 100,
		},
		Analytics: AnalyticsConfig{
			RiskFreeRate:      0.02,
			AnnualizationDays: 252,
			ClampScores:       true,
			TrendShort:        20,
			TrendLong:         50,
		},
		Portfolio: PortfolioConfig{
			MaxPortfolioRisk: 0.02,
			DriftTolerance:   0.05,
		},
		Sources: SourcesConfig{
			Prices:  "sample",
			Metrics: "sample",
			CSVDir:  "data/prices",
			Yahoo: YahooConfig{
				LookbackDays: 30,
				Timeout:      "30s",
			},
		},
		Cache: CacheConfig{
			SnapshotTTL:     "24h",
			MaxSize:         1000,
			RefreshSchedule: "@daily",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			Outputs:    []string{"console"},
			FilePath:   "./logs/greenvest.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// A missing .env is normal outside development
	_ = godotenv.Load()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)
	if err := validateSources(config); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("GREENVEST_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("GREENVEST_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("GREENVEST_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("GREENVEST_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if v := os.Getenv("GREENVEST_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			config.Analytics.Seed = seed
		}
	}

	if v := os.Getenv("GREENVEST_RISK_FREE_RATE"); v != "" {
		if rf, err := strconv.ParseFloat(v, 64); err == nil {
			config.Analytics.RiskFreeRate = rf
		}
	}

	if v := os.Getenv("GREENVEST_CLAMP_SCORES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Analytics.ClampScores = b
		}
	}

	if v := os.Getenv("GREENVEST_PRICE_SOURCE"); v != "" {
		config.Sources.Prices = strings.ToLower(v)
	}

	if v := os.Getenv("GREENVEST_CSV_DIR"); v != "" {
		config.Sources.CSVDir = v
	}
}

// validateSources falls back to the sample price feed for unknown names.
// The sample feed is the only metrics source, so any other name is an error.
func validateSources(config *Config) error {
	switch config.Sources.Prices {
	case "sample", "csv", "yahoo":
	default:
		config.Sources.Prices = "sample"
	}
	switch strings.ToLower(config.Sources.Metrics) {
	case "", "sample":
		config.Sources.Metrics = "sample"
	default:
		return fmt.Errorf("unknown metrics source %q (only \"sample\" is available)", config.Sources.Metrics)
	}
	return nil
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
