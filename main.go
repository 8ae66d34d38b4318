package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bankingetl/internal/config"
	"bankingetl/internal/coordinator"
	"bankingetl/internal/loader"
	"bankingetl/internal/pipeline"
	"bankingetl/internal/quotes"
	"bankingetl/internal/retry"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	// Stage 1-4: load, then validate/clean/transform per record.
	records, err := loader.LoadFile(cfg.CSVPath)
	if err != nil {
		log.Fatalf("Failed to load transactions: %v", err)
	}
	logger.Info("transactions loaded", "path", cfg.CSVPath, "records", len(records))

	limit := cfg.MaxRecords
	if limit > len(records) {
		limit = len(records)
	}

	fmt.Println("Processing banking transactions...")
	fmt.Println("================================================")

	p := pipeline.New(logger)
	transactions, summary := p.Process(records[:limit])

	for _, txn := range transactions {
		fmt.Printf("%s: %s (%s)\n", txn.ID, txn.Date.Format("2006-01-02"), txn.TransactionDay)
		fmt.Printf("  amount: %.2f %s\n", txn.Amount, txn.Currency)
		fmt.Printf("  large: %v  cross-border: %v  anomaly: %v\n",
			txn.IsLargeTransaction, txn.IsCrossBorder, txn.AmountAnomaly)
		if txn.AmountLog != nil {
			fmt.Printf("  amount log: %.4f\n", *txn.AmountLog)
		} else {
			fmt.Printf("  amount log: N/A\n")
		}
		if txn.RiskScore != nil {
			fmt.Printf("  risk score: %.2f\n", *txn.RiskScore)
		}
	}

	fmt.Println("================================================")
	fmt.Printf("Processed: %d  Succeeded: %d  Failed: %d\n",
		summary.Processed, summary.Succeeded, summary.Failed)

	// Enrichment side path: concurrent quote fetches.
	var fetchers []quotes.Fetcher
	for _, symbol := range cfg.QuoteSymbols {
		fetchers = append(fetchers, quotes.NewRandomQuoteFetcher(symbol, cfg.QuoteBaseURL))
	}

	retryCfg := retry.Config{
		MaxAttempts: cfg.RetryMaxAttempts,
		Timeout:     cfg.RetryTimeout,
		Backoff:     cfg.RetryBackoff,
	}
	coord := coordinator.New(fetchers, retryCfg, logger)

	fetchCtx, fetchCancel := context.WithTimeout(ctx, 60*time.Second)
	defer fetchCancel()

	fmt.Println("\nFetching quotes...")
	fmt.Println("================================================")
	fetched, err := coord.FetchAll(fetchCtx)
	if err != nil {
		log.Fatalf("Coordinator failed: %v", err)
	}
	for _, q := range fetched {
		fmt.Printf("%s: %q by %s\n", q.Symbol, q.Text, q.Author)
	}
	fmt.Println("================================================")
	fmt.Printf("Fetched %d of %d quotes\n", len(fetched), len(fetchers))
}
