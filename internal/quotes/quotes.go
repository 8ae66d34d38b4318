// Package quotes fetches enrichment quotes from an external quote service.
// It is an optional side path, not part of the per-record pipeline.
package quotes

import "context"

// Quote is one successful fetch outcome. Failures never produce a Quote.
type Quote struct {
	// Symbol is the request key the quote was fetched for.
	Symbol string
	// Text is the quote payload.
	Text string
	// Author is the attribution string.
	Author string
}

// Fetcher is implemented by anything that can fetch a single quote. The
// coordinator fans out over a set of fetchers and the retry wrapper retries
// individual Fetch calls.
type Fetcher interface {
	// Fetch retrieves one quote. It returns an error if the call fails;
	// implementations must respect ctx cancellation.
	Fetch(ctx context.Context) (Quote, error)

	// Key returns a stable identifier for this fetcher, used in logs and
	// result reporting. Format: quotes:{service}:{symbol}.
	Key() string
}

// Result is what a fetch worker reports back to the coordinator.
type Result struct {
	Key   string
	Quote Quote
	Err   error
}
