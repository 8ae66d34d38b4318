package transaction

import "time"

// Field names expected in the source CSV. The first six are mandatory;
// the rest are optional and handled gracefully when absent.
const (
	FieldTransactionID    = "transaction_id"
	FieldTransactionDate  = "transaction_date"
	FieldCustomerID       = "customer_id"
	FieldAccountID        = "account_id"
	FieldAmount           = "amount"
	FieldCurrency         = "currency"
	FieldValueDate        = "value_date"
	FieldDirection        = "direction"
	FieldAccountType      = "account_type"
	FieldMerchantCategory = "merchant_category"
	FieldRiskScore        = "risk_score"
	FieldChannel          = "channel"
	FieldRegion           = "region"
	FieldTxnType          = "txn_type"
)

// Missing is the sentinel a cleaned record carries for a numeric field that
// was empty, absent, or unparseable. The transformer maps it to a nil value.
const Missing = ""

// MandatoryFields lists the header fields a source file must provide.
func MandatoryFields() []string {
	return []string{
		FieldTransactionID,
		FieldTransactionDate,
		FieldCustomerID,
		FieldAccountID,
		FieldAmount,
		FieldCurrency,
	}
}

// Record is one transaction as read from the source: every value is still a
// string. The loader produces records whose keys come from the file header;
// the validator accepts or rejects them without mutation, and the cleaner
// produces a normalized copy.
type Record map[string]string

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Get returns the value for key, or "" when the key is absent.
func (r Record) Get(key string) string {
	return r[key]
}

// Transaction is the terminal, fully typed form of a record after the
// transform stage. Optional numeric fields use pointers, nil meaning the
// value was missing or unusable upstream.
type Transaction struct {
	ID          string
	CustomerID  string
	AccountID   string
	Date        time.Time
	Amount      float64
	Currency    string
	ValueDate   string // canonical YYYY-MM-DD, empty when absent
	Direction   string
	AccountType string

	MerchantCategory string
	Channel          string
	Region           string
	TxnType          string

	RiskScore *float64

	// Derived features.
	AmountAnomaly      bool
	IsLargeTransaction bool
	IsCrossBorder      bool
	TransactionDay     string
	AmountLog          *float64
}
