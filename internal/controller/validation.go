package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-fin-simulator/internal/app"
	"github.com/MKhiriev/go-fin-simulator/internal/validators"
	"github.com/MKhiriev/go-fin-simulator/models"
)

// FieldPasswordConfirm is the register-only confirmation field.
const FieldPasswordConfirm = "password_confirm"

// FieldErrors maps a field name to its inline message. A nil or empty value
// means every field is valid.
type FieldErrors map[string]string

func (f FieldErrors) Empty() bool {
	return len(f) == 0
}

var (
	credentialsValidator = validators.NewCredentialsValidator()
	simulationValidator  = validators.NewSimulationValidator()
)

// ValidateLogin checks the email shape and the password length.
func ValidateLogin(email, password string) FieldErrors {
	return fieldErrorsOf(credentialsValidator.Validate(context.Background(),
		models.Credentials{Email: email, Password: password}))
}

// ValidateRegister is ValidateLogin plus the confirmation, which must equal
// the password.
func ValidateRegister(email, password, confirm string) FieldErrors {
	errs := ValidateLogin(email, password)
	if password != confirm {
		if errs == nil {
			errs = FieldErrors{}
		}
		errs[FieldPasswordConfirm] = app.MsgPasswordsDoNotMatch
	}
	return errs
}

// ParseSimulationFields turns the raw form fields into an input. Fields
// that cannot be parsed are reported as such; the remaining ones go through
// the same rules the API applies.
func ParseSimulationFields(fields FormFields) (models.SimulationInput, FieldErrors) {
	errs := FieldErrors{}
	input := models.SimulationInput{Term: fields.Term}
	checked := []string{validators.FieldTerm}

	amount := strings.TrimSpace(fields.Amount)
	switch parsed, err := decimal.NewFromString(amount); {
	case amount == "":
		errs[validators.FieldAmount] = app.MsgAmountRequired
	case err != nil:
		errs[validators.FieldAmount] = app.MsgAmountInvalid
	default:
		input.Amount = parsed
		checked = append(checked, validators.FieldAmount)
	}

	for _, d := range []struct {
		field    string
		raw      string
		target   *models.Date
		required string
	}{
		{validators.FieldStartDate, fields.StartDate, &input.StartDate, app.MsgStartDateRequired},
		{validators.FieldEndDate, fields.EndDate, &input.EndDate, app.MsgEndDateRequired},
	} {
		raw := strings.TrimSpace(d.raw)
		if raw == "" {
			errs[d.field] = d.required
			continue
		}
		parsed, err := models.ParseDate(raw)
		if err != nil {
			errs[d.field] = app.MsgDateInvalid
			continue
		}
		*d.target = parsed
		checked = append(checked, d.field)
	}

	for field, msg := range fieldErrorsOf(simulationValidator.Validate(context.Background(), input, checked...)) {
		errs[field] = msg
	}

	if errs.Empty() {
		return input, nil
	}
	return input, errs
}

func fieldErrorsOf(err error) FieldErrors {
	if err == nil {
		return nil
	}

	var validationErrs validators.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return FieldErrors{"": err.Error()}
	}
	return FieldErrors(validationErrs.ByField())
}
