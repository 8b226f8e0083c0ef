package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentTerm is the payment/compounding frequency of a simulation. The
// string values are the ones stored in the payment_term enum and exchanged
// over the API.
type PaymentTerm string

const (
	TermMonthly PaymentTerm = "Mensual"
	TermAnnual  PaymentTerm = "Anual"
)

// PaymentTerms lists every valid term in display order.
var PaymentTerms = []PaymentTerm{TermMonthly, TermAnnual}

// Valid reports whether t is one of [PaymentTerms].
func (t PaymentTerm) Valid() bool {
	switch t {
	case TermMonthly, TermAnnual:
		return true
	}
	return false
}

// Toggle returns the other term. Invalid values toggle to [TermMonthly].
func (t PaymentTerm) Toggle() PaymentTerm {
	if t == TermMonthly {
		return TermAnnual
	}
	return TermMonthly
}

func (t PaymentTerm) String() string {
	return string(t)
}

// UnmarshalJSON accepts any string; validity is checked by validators so that
// a bad term is reported as a field error instead of a decoding error.
func (t *PaymentTerm) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("payment term must be a string: %w", err)
	}
	*t = PaymentTerm(s)
	return nil
}

// Value implements driver.Valuer.
func (t PaymentTerm) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner.
func (t *PaymentTerm) Scan(src any) error {
	switch v := src.(type) {
	case string:
		*t = PaymentTerm(v)
	case []byte:
		*t = PaymentTerm(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("unsupported payment term source %T", src)
	}
	return nil
}
