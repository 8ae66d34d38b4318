// Package retry wraps a single-attempt operation with bounded retries, a
// fixed backoff between attempts, and a per-attempt timeout.
package retry

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Config controls the retry loop.
type Config struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// Timeout bounds each individual attempt.
	Timeout time.Duration
	// Backoff is the fixed wait between a failed attempt and the next one.
	Backoff time.Duration
}

// DefaultConfig mirrors the quote service defaults: three attempts, ten
// seconds per attempt, one second between attempts.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		Timeout:     10 * time.Second,
		Backoff:     1 * time.Second,
	}
}

type outcome[T any] struct {
	value T
	err   error
}

// Do runs op until it succeeds or cfg.MaxAttempts attempts have failed, then
// returns the last failure wrapped with the attempt count. An attempt that
// outlives its timeout is abandoned and counts as a failure; each attempt
// reports into its own buffered channel, so an abandoned attempt can never
// deliver a stale result after a later attempt has produced one. The backoff
// wait and the attempts themselves honor cancellation of ctx.
func Do[T any](ctx context.Context, cfg Config, op func(context.Context) (T, error)) (T, error) {
	var zero T
	if cfg.MaxAttempts < 1 {
		return zero, fmt.Errorf("retry: MaxAttempts must be at least 1, got %d", cfg.MaxAttempts)
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		value, err := runAttempt(ctx, cfg.Timeout, op)
		if err == nil {
			return value, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return zero, ctx.Err()
		}

		slog.Debug("retrying after failed attempt",
			"attempt", attempt,
			"max_attempts", cfg.MaxAttempts,
			"error", err.Error())

		if attempt < cfg.MaxAttempts {
			if err := sleep(ctx, cfg.Backoff); err != nil {
				return zero, err
			}
		}
	}

	return zero, fmt.Errorf("all %d attempts failed: %w", cfg.MaxAttempts, lastErr)
}

// runAttempt executes op once under the per-attempt timeout. The result
// channel is buffered so the goroutine of a timed-out attempt can complete
// and exit; its result is simply never read.
func runAttempt[T any](ctx context.Context, timeout time.Duration, op func(context.Context) (T, error)) (T, error) {
	attemptCtx := ctx
	cancel := context.CancelFunc(func() {})
	if timeout > 0 {
		attemptCtx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	ch := make(chan outcome[T], 1)
	go func() {
		value, err := op(attemptCtx)
		ch <- outcome[T]{value: value, err: err}
	}()

	select {
	case out := <-ch:
		return out.value, out.err
	case <-attemptCtx.Done():
		var zero T
		return zero, attemptCtx.Err()
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
