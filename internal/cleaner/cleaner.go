// Package cleaner normalizes an already-validated record. Cleaning never
// fails: fields that cannot be normalized degrade to an explicit missing
// sentinel instead of producing an error. Clean is idempotent.
package cleaner

import (
	"strconv"
	"strings"
	"time"

	"bankingetl/internal/transaction"
	"bankingetl/internal/validator"
)

// DefaultMerchantCategory substitutes an empty or absent merchant category.
const DefaultMerchantCategory = "Unknown"

// Clean returns a normalized copy of rec. The input record is not modified.
func Clean(rec transaction.Record) transaction.Record {
	cleaned := make(transaction.Record, len(rec))

	for key, value := range rec {
		trimmed := strings.TrimSpace(value)

		switch key {
		case transaction.FieldTransactionDate, transaction.FieldValueDate:
			cleaned[key] = NormalizeDate(trimmed)
		case transaction.FieldCurrency:
			cleaned[key] = NormalizeCurrency(trimmed)
		case transaction.FieldAmount, transaction.FieldRiskScore:
			cleaned[key] = CleanNumeric(trimmed)
		case transaction.FieldMerchantCategory:
			cleaned[key] = CleanMerchantCategory(trimmed)
		case transaction.FieldDirection, transaction.FieldAccountType:
			cleaned[key] = strings.ToUpper(trimmed)
		default:
			// IDs and free-text fields only get the trim.
			cleaned[key] = trimmed
		}
	}

	if _, ok := cleaned[transaction.FieldMerchantCategory]; !ok {
		cleaned[transaction.FieldMerchantCategory] = DefaultMerchantCategory
	}

	return cleaned
}

// NormalizeDate rewrites a date in either accepted input format into the
// canonical YYYY-MM-DD form. Unparseable dates degrade to the missing
// sentinel.
func NormalizeDate(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return transaction.Missing
	}
	if t, err := time.Parse(validator.DateLayoutISO, date); err == nil {
		return t.Format(validator.DateLayoutISO)
	}
	if t, err := time.Parse(validator.DateLayoutSlashDMY, date); err == nil {
		return t.Format(validator.DateLayoutISO)
	}
	return transaction.Missing
}

// NormalizeCurrency upper-cases a currency code. Codes outside the allow-list
// degrade to the missing sentinel; validation has already rejected them for
// records flowing through the pipeline.
func NormalizeCurrency(currency string) string {
	upper := strings.ToUpper(strings.TrimSpace(currency))
	if !validator.ValidCurrencies[upper] {
		return transaction.Missing
	}
	return upper
}

// CleanNumeric reduces a numeric-looking field to its trimmed string form, or
// the missing sentinel when empty or unparseable.
func CleanNumeric(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return transaction.Missing
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
		return transaction.Missing
	}
	return trimmed
}

// CleanMerchantCategory trims the category, substituting the default label
// when empty.
func CleanMerchantCategory(category string) string {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return DefaultMerchantCategory
	}
	return trimmed
}
