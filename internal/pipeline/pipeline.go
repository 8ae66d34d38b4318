// Package pipeline runs records through the four processing stages:
// validate, clean, transform, with loading handled by the caller. Stages are
// strictly sequential per record and records share no state, so callers may
// process independent records in any order without changing any record's
// output.
package pipeline

import (
	"log/slog"

	"github.com/google/uuid"

	"bankingetl/internal/cleaner"
	"bankingetl/internal/transaction"
	"bankingetl/internal/transformer"
	"bankingetl/internal/validator"
)

// Summary describes one batch run.
type Summary struct {
	// RunID tags every log record of the run.
	RunID     string
	Processed int
	Succeeded int
	Failed    int
}

// Pipeline processes raw records into typed transactions.
type Pipeline struct {
	logger *slog.Logger
}

// New creates a Pipeline. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger}
}

// ProcessRecord runs one raw record through validate, clean, and transform.
// A validation failure is fatal to this record only.
func (p *Pipeline) ProcessRecord(rec transaction.Record) (transaction.Transaction, error) {
	validated, err := validator.Validate(rec)
	if err != nil {
		return transaction.Transaction{}, err
	}
	anomalous := validator.Anomalous(validated)

	cleaned := cleaner.Clean(validated)

	txn, err := transformer.Transform(cleaned)
	if err != nil {
		return transaction.Transaction{}, err
	}
	txn.AmountAnomaly = anomalous

	return txn, nil
}

// Process runs each record through the stages, skipping records that fail and
// carrying on with the rest. It returns the transactions that made it through
// together with a run summary.
func (p *Pipeline) Process(records []transaction.Record) ([]transaction.Transaction, Summary) {
	summary := Summary{RunID: uuid.NewString()}
	logger := p.logger.With("run_id", summary.RunID)

	transactions := make([]transaction.Transaction, 0, len(records))
	for i, rec := range records {
		summary.Processed++

		txn, err := p.ProcessRecord(rec)
		if err != nil {
			summary.Failed++
			logger.Warn("record failed",
				"record", i+1,
				"transaction_id", rec.Get(transaction.FieldTransactionID),
				"error", err.Error())
			continue
		}

		summary.Succeeded++
		logger.Debug("record processed",
			"record", i+1,
			"transaction_id", txn.ID,
			"large", txn.IsLargeTransaction,
			"cross_border", txn.IsCrossBorder,
			"day", txn.TransactionDay)
		transactions = append(transactions, txn)
	}

	logger.Info("batch complete",
		"processed", summary.Processed,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed)

	return transactions, summary
}
