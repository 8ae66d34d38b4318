package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bankingetl/internal/transaction"
)

func TestClean_TrimsAllFields(t *testing.T) {
	rec := transaction.Record{
		transaction.FieldTransactionID: "  TXN0000001  ",
		transaction.FieldCustomerID:    " CUST1",
		transaction.FieldAccountID:     "ACC1 ",
		transaction.FieldChannel:       "  mobile app  ",
	}

	cleaned := Clean(rec)

	assert.Equal(t, "TXN0000001", cleaned.Get(transaction.FieldTransactionID))
	assert.Equal(t, "CUST1", cleaned.Get(transaction.FieldCustomerID))
	assert.Equal(t, "ACC1", cleaned.Get(transaction.FieldAccountID))
	assert.Equal(t, "mobile app", cleaned.Get(transaction.FieldChannel))
}

func TestClean_DoesNotMutateInput(t *testing.T) {
	rec := transaction.Record{
		transaction.FieldTransactionID: "  TXN0000001  ",
		transaction.FieldCurrency:      "idr",
	}
	before := rec.Clone()

	Clean(rec)

	assert.Equal(t, before, rec)
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"iso passes through", "2024-01-15", "2024-01-15"},
		{"slash dmy converted", "15/01/2024", "2024-01-15"},
		{"whitespace trimmed", "  2024-01-15  ", "2024-01-15"},
		{"empty is missing", "", transaction.Missing},
		{"garbage is missing", "soon", transaction.Missing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.in))
		})
	}
}

func TestNormalizeDate_FormatsAgree(t *testing.T) {
	// The same calendar date in either accepted format cleans identically.
	assert.Equal(t, NormalizeDate("2024-03-07"), NormalizeDate("07/03/2024"))
}

func TestNormalizeCurrency(t *testing.T) {
	assert.Equal(t, "IDR", NormalizeCurrency("idr"))
	assert.Equal(t, "USD", NormalizeCurrency("  Usd "))
	assert.Equal(t, "SGD", NormalizeCurrency("SGD"))
	assert.Equal(t, transaction.Missing, NormalizeCurrency("EUR"))
	assert.Equal(t, transaction.Missing, NormalizeCurrency(""))
}

func TestCleanNumeric(t *testing.T) {
	assert.Equal(t, "1000.00", CleanNumeric(" 1000.00 "))
	assert.Equal(t, "0", CleanNumeric("0"))
	assert.Equal(t, "-3.5", CleanNumeric("-3.5"))
	assert.Equal(t, transaction.Missing, CleanNumeric(""))
	assert.Equal(t, transaction.Missing, CleanNumeric("   "))
	assert.Equal(t, transaction.Missing, CleanNumeric("12abc"))
}

func TestCleanMerchantCategory(t *testing.T) {
	assert.Equal(t, "Groceries", CleanMerchantCategory(" Groceries "))
	assert.Equal(t, DefaultMerchantCategory, CleanMerchantCategory(""))
	assert.Equal(t, DefaultMerchantCategory, CleanMerchantCategory("   "))
}

func TestClean_FieldRules(t *testing.T) {
	rec := transaction.Record{
		transaction.FieldTransactionID:   "TXN0000001",
		transaction.FieldTransactionDate: "15/01/2024",
		transaction.FieldValueDate:       "16/01/2024",
		transaction.FieldAmount:          " 1000.00 ",
		transaction.FieldCurrency:        "usd",
		transaction.FieldRiskScore:       "not-a-number",
		transaction.FieldDirection:       " debit ",
		transaction.FieldAccountType:     "savings",
	}

	cleaned := Clean(rec)

	assert.Equal(t, "2024-01-15", cleaned.Get(transaction.FieldTransactionDate))
	assert.Equal(t, "2024-01-16", cleaned.Get(transaction.FieldValueDate))
	assert.Equal(t, "1000.00", cleaned.Get(transaction.FieldAmount))
	assert.Equal(t, "USD", cleaned.Get(transaction.FieldCurrency))
	assert.Equal(t, transaction.Missing, cleaned.Get(transaction.FieldRiskScore))
	assert.Equal(t, "DEBIT", cleaned.Get(transaction.FieldDirection))
	assert.Equal(t, "SAVINGS", cleaned.Get(transaction.FieldAccountType))
	assert.Equal(t, DefaultMerchantCategory, cleaned.Get(transaction.FieldMerchantCategory))
}

func TestClean_Idempotent(t *testing.T) {
	rec := transaction.Record{
		transaction.FieldTransactionID:    " TXN0000001 ",
		transaction.FieldTransactionDate:  "15/01/2024",
		transaction.FieldAmount:           " 1000.00",
		transaction.FieldCurrency:         "idr",
		transaction.FieldRiskScore:        "",
		transaction.FieldMerchantCategory: "  ",
		transaction.FieldDirection:        "credit",
	}

	once := Clean(rec)
	twice := Clean(once)

	assert.Equal(t, once, twice)
}
