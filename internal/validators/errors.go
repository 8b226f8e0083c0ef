package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-fin-simulator/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmailRequired      = errors.New("email is required")
	ErrEmailInvalid       = errors.New("email is invalid")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrAmountNotPositive  = errors.New("amount must be greater than zero")
	ErrTermInvalid        = errors.New("term must be Mensual or Anual")
	ErrStartDateRequired  = errors.New("start date is required")
	ErrEndDateRequired    = errors.New("end date is required")
	ErrEndDateBeforeStart = errors.New("end date precedes start date")
)

// Error types reported in the "type" field of a detail entry.
const (
	TypeMissing     = "missing"
	TypeValueError  = "value_error"
	TypeGreaterThan = "greater_than"
	TypeEnum        = "enum"
	TypeJSONInvalid = "json_invalid"
)

// FieldError describes one invalid field.
type FieldError struct {
	Field string
	Msg   string
	Type  string
	Err   error
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ValidationErrors is the list of problems found in one value. It is only
// returned when non-empty.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Unwrap lets errors.Is match any of the field sentinels.
func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(v))
	for _, e := range v {
		errs = append(errs, e)
	}
	return errs
}

// Details renders v as API detail entries located under "body".
func (v ValidationErrors) Details() []models.ErrorDetail {
	details := make([]models.ErrorDetail, 0, len(v))
	for _, e := range v {
		details = append(details, models.ErrorDetail{
			Loc:  []string{"body", e.Field},
			Msg:  e.Msg,
			Type: e.Type,
		})
	}
	return details
}

// Messages returns the user-facing message of every entry, in order.
func (v ValidationErrors) Messages() []string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Msg)
	}
	return msgs
}

// ByField returns the first message reported for each field.
func (v ValidationErrors) ByField() map[string]string {
	m := make(map[string]string, len(v))
	for _, e := range v {
		if _, ok := m[e.Field]; !ok {
			m[e.Field] = e.Msg
		}
	}
	return m
}

func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
