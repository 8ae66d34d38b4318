// Package coordinator fans quote fetches out across goroutines and collects
// the successful results.
package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"bankingetl/internal/quotes"
	"bankingetl/internal/retry"
)

// Coordinator runs a set of quote fetchers concurrently, retry-wrapping each
// fetch. One fetcher exhausting its retries never aborts the others.
type Coordinator struct {
	fetchers []quotes.Fetcher
	retryCfg retry.Config
	logger   *slog.Logger
}

// New creates a Coordinator. A nil logger falls back to slog.Default().
func New(fetchers []quotes.Fetcher, retryCfg retry.Config, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		fetchers: fetchers,
		retryCfg: retryCfg,
		logger:   logger,
	}
}

// FetchAll runs every fetcher in its own goroutine and returns the quotes
// that succeeded, in completion order (no relation to input order). Failed
// keys are dropped from the result and logged with their final error.
func (c *Coordinator) FetchAll(ctx context.Context) ([]quotes.Quote, error) {
	if len(c.fetchers) == 0 {
		return nil, fmt.Errorf("no fetchers configured")
	}

	results := make(chan quotes.Result, len(c.fetchers))

	var wg sync.WaitGroup
	for _, f := range c.fetchers {
		wg.Add(1)
		go func(f quotes.Fetcher) {
			defer wg.Done()
			q, err := retry.Do(ctx, c.retryCfg, f.Fetch)
			results <- quotes.Result{Key: f.Key(), Quote: q, Err: err}
		}(f)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	fetched := make([]quotes.Quote, 0, len(c.fetchers))
	for res := range results {
		if res.Err != nil {
			c.logger.Warn("quote fetch failed",
				"key", res.Key,
				"error", res.Err.Error())
			continue
		}
		fetched = append(fetched, res.Quote)
	}

	return fetched, nil
}
