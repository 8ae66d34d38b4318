package retry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func fastConfig() Config {
	return Config{
		MaxAttempts: 3,
		Timeout:     200 * time.Millisecond,
		Backoff:     10 * time.Millisecond,
	}
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	got, err := Do(context.Background(), fastConfig(), func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Do() returned unexpected error: %v", err)
	}
	if got != "ok" {
		t.Errorf("Do() = %q, want %q", got, "ok")
	}
	if calls != 1 {
		t.Errorf("operation called %d times, want 1", calls)
	}
}

func TestDo_SucceedsThirdAttempt(t *testing.T) {
	calls := 0
	start := time.Now()
	got, err := Do(context.Background(), fastConfig(), func(ctx context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})
	if err != nil {
		t.Fatalf("Do() returned unexpected error: %v", err)
	}
	if got != 42 {
		t.Errorf("Do() = %d, want 42", got)
	}
	if calls != 3 {
		t.Errorf("operation called %d times, want 3", calls)
	}
	// Two failed attempts mean two backoff waits.
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("elapsed %v, want at least two backoff intervals", elapsed)
	}
}

func TestDo_Exhausted(t *testing.T) {
	finalErr := errors.New("still broken")
	calls := 0
	_, err := Do(context.Background(), fastConfig(), func(ctx context.Context) (int, error) {
		calls++
		return 0, finalErr
	})
	if err == nil {
		t.Fatal("Do() expected error after exhaustion, got nil")
	}
	if !errors.Is(err, finalErr) {
		t.Errorf("Do() error = %v, want it to wrap %v", err, finalErr)
	}
	if calls != 3 {
		t.Errorf("operation called %d times, want 3", calls)
	}
}

func TestDo_AttemptTimeout(t *testing.T) {
	cfg := Config{
		MaxAttempts: 2,
		Timeout:     20 * time.Millisecond,
		Backoff:     5 * time.Millisecond,
	}

	var calls int32
	_, err := Do(context.Background(), cfg, func(ctx context.Context) (int, error) {
		atomic.AddInt32(&calls, 1)
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(time.Second):
			return 1, nil
		}
	})
	if err == nil {
		t.Fatal("Do() expected error for timed-out attempts, got nil")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Do() error = %v, want context.DeadlineExceeded", err)
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Errorf("operation called %d times, want 2", n)
	}
}

func TestDo_AbandonedAttemptCannotDeliverStaleResult(t *testing.T) {
	cfg := Config{
		MaxAttempts: 2,
		Timeout:     20 * time.Millisecond,
		Backoff:     time.Millisecond,
	}

	var calls int32
	got, err := Do(context.Background(), cfg, func(ctx context.Context) (string, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			// First attempt ignores its context and answers late.
			time.Sleep(60 * time.Millisecond)
			return "stale", nil
		}
		return "fresh", nil
	})
	if err != nil {
		t.Fatalf("Do() returned unexpected error: %v", err)
	}
	if got != "fresh" {
		t.Errorf("Do() = %q, want %q (stale first-attempt result must not surface)", got, "fresh")
	}
}

func TestDo_ParentCancellationStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	_, err := Do(ctx, Config{MaxAttempts: 5, Timeout: time.Second, Backoff: 50 * time.Millisecond},
		func(ctx context.Context) (int, error) {
			calls++
			cancel()
			return 0, errors.New("fail")
		})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Do() error = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Errorf("operation called %d times after cancellation, want 1", calls)
	}
}

func TestDo_InvalidMaxAttempts(t *testing.T) {
	_, err := Do(context.Background(), Config{MaxAttempts: 0}, func(ctx context.Context) (int, error) {
		return 1, nil
	})
	if err == nil {
		t.Error("Do() expected error for MaxAttempts 0, got nil")
	}
}
