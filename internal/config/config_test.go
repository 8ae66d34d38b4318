package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/banking_transactions.csv", cfg.CSVPath)
	assert.Equal(t, 5, cfg.MaxRecords)
	assert.Equal(t, "https://dummyjson.com", cfg.QuoteBaseURL)
	assert.Equal(t, []string{"AAPL", "GOOGL", "MSFT"}, cfg.QuoteSymbols)
	assert.Equal(t, 3, cfg.RetryMaxAttempts)
	assert.Equal(t, 10*time.Second, cfg.RetryTimeout)
	assert.Equal(t, 1*time.Second, cfg.RetryBackoff)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CSV_PATH", "/tmp/txns.csv")
	t.Setenv("MAX_RECORDS", "25")
	t.Setenv("QUOTE_BASE_URL", "http://localhost:8080")
	t.Setenv("QUOTE_SYMBOLS", "AAPL, TSLA,NVDA")
	t.Setenv("RETRY_MAX_ATTEMPTS", "5")
	t.Setenv("RETRY_TIMEOUT", "2s")
	t.Setenv("RETRY_BACKOFF", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/txns.csv", cfg.CSVPath)
	assert.Equal(t, 25, cfg.MaxRecords)
	assert.Equal(t, "http://localhost:8080", cfg.QuoteBaseURL)
	assert.Equal(t, []string{"AAPL", "TSLA", "NVDA"}, cfg.QuoteSymbols)
	assert.Equal(t, 5, cfg.RetryMaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.RetryTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.RetryBackoff)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{"zero max_records", "MAX_RECORDS", "0"},
		{"zero retry attempts", "RETRY_MAX_ATTEMPTS", "0"},
		{"zero retry timeout", "RETRY_TIMEOUT", "0s"},
		{"negative backoff", "RETRY_BACKOFF", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}
