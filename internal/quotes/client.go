package quotes

import (
	"context"
	"fmt"

	"resty.dev/v3"

	"bankingetl/internal/ratelimit"
)

// randomQuotePath is the quote service endpoint; each call returns one
// random quote.
const randomQuotePath = "/quotes/random"

// quoteResponse mirrors the quote service payload.
type quoteResponse struct {
	ID     int    `json:"id"`
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// RandomQuoteFetcher fetches one random quote per call, attributed to the
// symbol it was requested for.
type RandomQuoteFetcher struct {
	symbol string
	client *resty.Client
}

// NewRandomQuoteFetcher creates a fetcher for symbol against the service at
// baseURL.
func NewRandomQuoteFetcher(symbol, baseURL string) *RandomQuoteFetcher {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	return &RandomQuoteFetcher{
		symbol: symbol,
		client: client,
	}
}

// Fetch retrieves a quote, waiting on the shared quote-service rate limiter
// first.
func (f *RandomQuoteFetcher) Fetch(ctx context.Context) (Quote, error) {
	if err := ratelimit.GetLimiter().Wait(ctx); err != nil {
		return Quote{}, err
	}

	var result quoteResponse

	resp, err := f.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(randomQuotePath)
	if err != nil {
		return Quote{}, newNetworkError(err)
	}

	if !resp.IsSuccess() {
		return Quote{}, newStatusError(resp.StatusCode())
	}

	if result.Quote == "" {
		return Quote{}, newValidationError(fmt.Sprintf("empty quote in response for %s", f.symbol))
	}

	author := result.Author
	if author == "" {
		author = "Unknown"
	}

	return Quote{
		Symbol: f.symbol,
		Text:   result.Quote,
		Author: author,
	}, nil
}

// Key returns the reporting key for this fetcher.
func (f *RandomQuoteFetcher) Key() string {
	return fmt.Sprintf("quotes:dummyjson:%s", f.symbol)
}
