// Package config loads application configuration from environment variables
// and an optional YAML file. Environment variables take precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the banking ETL runner.
type Config struct {
	// CSVPath is the transaction source file processed by the demo runner.
	CSVPath string `mapstructure:"csv_path"`
	// MaxRecords caps how many records the demo runner pushes through the
	// pipeline.
	MaxRecords int `mapstructure:"max_records"`

	// Quote service used by the enrichment side path.
	QuoteBaseURL string   `mapstructure:"quote_base_url"`
	QuoteSymbols []string `mapstructure:"quote_symbols"`

	// Retry knobs for quote fetches.
	RetryMaxAttempts int           `mapstructure:"retry_max_attempts"`
	RetryTimeout     time.Duration `mapstructure:"retry_timeout"`
	RetryBackoff     time.Duration `mapstructure:"retry_backoff"`
}

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory or $HOME/.bankingetl.
//
// Recognized environment variables:
//   - CSV_PATH
//   - MAX_RECORDS
//   - QUOTE_BASE_URL
//   - QUOTE_SYMBOLS (comma-separated)
//   - RETRY_MAX_ATTEMPTS
//   - RETRY_TIMEOUT (Go duration, e.g. "10s")
//   - RETRY_BACKOFF (Go duration, e.g. "1s")
func Load() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.SetDefault("csv_path", "data/banking_transactions.csv")
	v.SetDefault("max_records", 5)
	v.SetDefault("quote_base_url", "https://dummyjson.com")
	v.SetDefault("quote_symbols", []string{"AAPL", "GOOGL", "MSFT"})
	v.SetDefault("retry_max_attempts", 3)
	v.SetDefault("retry_timeout", 10*time.Second)
	v.SetDefault("retry_backoff", 1*time.Second)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.bankingetl")

	// Config file is optional.
	_ = v.ReadInConfig()

	v.BindEnv("csv_path", "CSV_PATH")
	v.BindEnv("max_records", "MAX_RECORDS")
	v.BindEnv("quote_base_url", "QUOTE_BASE_URL")
	v.BindEnv("quote_symbols", "QUOTE_SYMBOLS")
	v.BindEnv("retry_max_attempts", "RETRY_MAX_ATTEMPTS")
	v.BindEnv("retry_timeout", "RETRY_TIMEOUT")
	v.BindEnv("retry_backoff", "RETRY_BACKOFF")

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// QUOTE_SYMBOLS arrives comma-separated from the environment; entries
	// may carry whitespace either way.
	var symbols []string
	for _, s := range config.QuoteSymbols {
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				symbols = append(symbols, p)
			}
		}
	}
	config.QuoteSymbols = symbols

	var problems []string
	if config.CSVPath == "" {
		problems = append(problems, "csv_path must not be empty")
	}
	if config.MaxRecords < 1 {
		problems = append(problems, "max_records must be at least 1")
	}
	if config.RetryMaxAttempts < 1 {
		problems = append(problems, "retry_max_attempts must be at least 1")
	}
	if config.RetryTimeout <= 0 {
		problems = append(problems, "retry_timeout must be positive")
	}
	if config.RetryBackoff < 0 {
		problems = append(problems, "retry_backoff must not be negative")
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return config, nil
}
