// Package transformer converts a cleaned record into its fully typed terminal
// form and attaches the derived analytic features. Optional fields degrade to
// nil; mandatory fields still malformed at this stage mean an upstream stage
// broke its contract, which is an error.
package transformer

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"bankingetl/internal/cleaner"
	"bankingetl/internal/transaction"
	"bankingetl/internal/validator"
)

// LargeTransactionThreshold marks large transactions (strict inequality).
// Lower than the validator's anomaly threshold; the two are separate business
// rules and stay separate.
const LargeTransactionThreshold = 5_000_000

// HomeCurrency is the currency against which cross-border is decided.
const HomeCurrency = "IDR"

// Transform converts rec into a Transaction. rec must already be cleaned:
// the date is expected in canonical form and the amount as a parseable
// numeric string.
func Transform(rec transaction.Record) (transaction.Transaction, error) {
	date, err := time.Parse(validator.DateLayoutISO, rec.Get(transaction.FieldTransactionDate))
	if err != nil {
		return transaction.Transaction{}, fmt.Errorf("transform %s: malformed %s %q after cleaning: %w",
			rec.Get(transaction.FieldTransactionID), transaction.FieldTransactionDate,
			rec.Get(transaction.FieldTransactionDate), err)
	}

	amount, err := strconv.ParseFloat(rec.Get(transaction.FieldAmount), 64)
	if err != nil {
		return transaction.Transaction{}, fmt.Errorf("transform %s: malformed %s %q after cleaning: %w",
			rec.Get(transaction.FieldTransactionID), transaction.FieldAmount,
			rec.Get(transaction.FieldAmount), err)
	}

	txn := transaction.Transaction{
		ID:               rec.Get(transaction.FieldTransactionID),
		CustomerID:       rec.Get(transaction.FieldCustomerID),
		AccountID:        rec.Get(transaction.FieldAccountID),
		Date:             date,
		Amount:           amount,
		Currency:         rec.Get(transaction.FieldCurrency),
		ValueDate:        rec.Get(transaction.FieldValueDate),
		Direction:        rec.Get(transaction.FieldDirection),
		AccountType:      rec.Get(transaction.FieldAccountType),
		MerchantCategory: rec.Get(transaction.FieldMerchantCategory),
		Channel:          rec.Get(transaction.FieldChannel),
		Region:           rec.Get(transaction.FieldRegion),
		TxnType:          rec.Get(transaction.FieldTxnType),
		RiskScore:        parseOptionalFloat(rec.Get(transaction.FieldRiskScore)),
	}
	if txn.MerchantCategory == "" {
		txn.MerchantCategory = cleaner.DefaultMerchantCategory
	}

	txn.IsLargeTransaction = IsLargeTransaction(amount)
	txn.IsCrossBorder = IsCrossBorder(txn.Currency)
	txn.TransactionDay = date.Weekday().String()
	txn.AmountLog = AmountLog(amount)

	return txn, nil
}

// IsLargeTransaction reports whether amount strictly exceeds
// LargeTransactionThreshold.
func IsLargeTransaction(amount float64) bool {
	return amount > LargeTransactionThreshold
}

// IsCrossBorder reports whether currency differs from HomeCurrency.
// An empty currency counts as domestic.
func IsCrossBorder(currency string) bool {
	return currency != "" && currency != HomeCurrency
}

// AmountLog returns the natural logarithm of amount, or nil for non-positive
// amounts. It never fails.
func AmountLog(amount float64) *float64 {
	if amount <= 0 {
		return nil
	}
	v := math.Log(amount)
	return &v
}

// parseOptionalFloat turns a cleaned numeric string into *float64, nil for
// the missing sentinel or anything unparseable.
func parseOptionalFloat(value string) *float64 {
	if value == transaction.Missing {
		return nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &v
}
