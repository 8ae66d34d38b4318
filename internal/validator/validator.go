// Package validator checks one raw transaction record against the business
// rules. Validation is pure: it accepts or rejects a record and never mutates
// it. Rules run in a fixed order and the first violation wins.
package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"bankingetl/internal/transaction"
)

// Rule identifies which validation rule a record violated.
type Rule string

const (
	RuleTransactionID Rule = "transaction_id"
	RuleDate          Rule = "date"
	RuleAmount        Rule = "amount"
	RuleCurrency      Rule = "currency"
	RuleDirection     Rule = "direction"
	RuleAccountType   Rule = "account_type"
)

// RuleError is the typed failure for a single validation rule. Value carries
// the offending input so batch callers can report it without re-reading the
// source.
type RuleError struct {
	Rule   Rule
	Field  string
	Value  string
	Reason string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// AnomalyThreshold flags unusually large amounts during validation. Distinct
// from the transformer's large-transaction threshold; both come straight from
// the business rules and are deliberately not unified.
const AnomalyThreshold = 10_000_000

// Accepted input date layouts.
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutSlashDMY = "02/01/2006"
)

var txnIDPattern = regexp.MustCompile(`^TXN\d{7}$`)

// Enumerations for currency and the optional fields.
var (
	ValidCurrencies   = map[string]bool{"IDR": true, "USD": true, "SGD": true}
	ValidDirections   = map[string]bool{"DEBIT": true, "CREDIT": true}
	ValidAccountTypes = map[string]bool{"SAVINGS": true, "CURRENT": true, "CREDIT_CARD": true, "LOAN": true}
)

// Validate runs every rule against rec, fail-fast, and returns rec unchanged
// on success. Direction and account type are checked only when present.
func Validate(rec transaction.Record) (transaction.Record, error) {
	if err := validateTransactionID(rec.Get(transaction.FieldTransactionID)); err != nil {
		return nil, err
	}
	if err := validateDate(rec.Get(transaction.FieldTransactionDate)); err != nil {
		return nil, err
	}
	if err := validateAmount(rec.Get(transaction.FieldAmount)); err != nil {
		return nil, err
	}
	if err := validateCurrency(rec.Get(transaction.FieldCurrency)); err != nil {
		return nil, err
	}
	if err := validateEnum(RuleDirection, transaction.FieldDirection, rec.Get(transaction.FieldDirection), ValidDirections); err != nil {
		return nil, err
	}
	if err := validateEnum(RuleAccountType, transaction.FieldAccountType, rec.Get(transaction.FieldAccountType), ValidAccountTypes); err != nil {
		return nil, err
	}
	return rec, nil
}

// Anomalous reports whether the record's amount exceeds AnomalyThreshold.
// Not a failure condition; the flag travels with the transformed record.
func Anomalous(rec transaction.Record) bool {
	amount, err := strconv.ParseFloat(strings.TrimSpace(rec.Get(transaction.FieldAmount)), 64)
	if err != nil {
		return false
	}
	return amount > AnomalyThreshold
}

func validateTransactionID(id string) error {
	if !txnIDPattern.MatchString(strings.TrimSpace(id)) {
		return &RuleError{
			Rule:   RuleTransactionID,
			Field:  transaction.FieldTransactionID,
			Value:  id,
			Reason: "must be TXN followed by exactly seven digits",
		}
	}
	return nil
}

func validateDate(date string) error {
	date = strings.TrimSpace(date)
	if _, err := time.Parse(DateLayoutISO, date); err == nil {
		return nil
	}
	if _, err := time.Parse(DateLayoutSlashDMY, date); err == nil {
		return nil
	}
	return &RuleError{
		Rule:   RuleDate,
		Field:  transaction.FieldTransactionDate,
		Value:  date,
		Reason: "must be YYYY-MM-DD or DD/MM/YYYY",
	}
}

func validateAmount(amount string) error {
	trimmed := strings.TrimSpace(amount)
	if trimmed == "" {
		return &RuleError{
			Rule:   RuleAmount,
			Field:  transaction.FieldAmount,
			Value:  amount,
			Reason: "cannot be empty",
		}
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return &RuleError{
			Rule:   RuleAmount,
			Field:  transaction.FieldAmount,
			Value:  amount,
			Reason: "must be numeric",
		}
	}
	if v < 0 {
		return &RuleError{
			Rule:   RuleAmount,
			Field:  transaction.FieldAmount,
			Value:  amount,
			Reason: "cannot be negative",
		}
	}
	return nil
}

func validateCurrency(currency string) error {
	if !ValidCurrencies[strings.ToUpper(strings.TrimSpace(currency))] {
		return &RuleError{
			Rule:   RuleCurrency,
			Field:  transaction.FieldCurrency,
			Value:  currency,
			Reason: "must be one of IDR, USD, SGD",
		}
	}
	return nil
}

// validateEnum checks an optional enumerated field; absent values pass.
func validateEnum(rule Rule, field, value string, allowed map[string]bool) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	if !allowed[strings.ToUpper(trimmed)] {
		return &RuleError{
			Rule:   rule,
			Field:  field,
			Value:  value,
			Reason: "not an allowed value",
		}
	}
	return nil
}
