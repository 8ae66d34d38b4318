// Package testutil provides shared test doubles.
package testutil

import (
	"context"

	"bankingetl/internal/quotes"
)

// MockFetcher is a func-field quote fetcher for tests.
type MockFetcher struct {
	FetchFunc func(ctx context.Context) (quotes.Quote, error)
	KeyFunc   func() string
}

// Fetch implements quotes.Fetcher.
func (m *MockFetcher) Fetch(ctx context.Context) (quotes.Quote, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return quotes.Quote{}, nil
}

// Key implements quotes.Fetcher.
func (m *MockFetcher) Key() string {
	if m.KeyFunc != nil {
		return m.KeyFunc()
	}
	return "mock:key"
}

// NewMockFetcher creates a mock that always returns the given quote and error.
func NewMockFetcher(key string, quote quotes.Quote, err error) quotes.Fetcher {
	return &MockFetcher{
		FetchFunc: func(ctx context.Context) (quotes.Quote, error) {
			return quote, err
		},
		KeyFunc: func() string {
			return key
		},
	}
}
