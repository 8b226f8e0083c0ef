package validators

import (
	"context"

	"github.com/MKhiriev/go-fin-simulator/internal/app"
	"github.com/MKhiriev/go-fin-simulator/models"
)

const (
	FieldAmount    = "amount"
	FieldTerm      = "term"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
)

var simulationFields = []string{FieldAmount, FieldTerm, FieldStartDate, FieldEndDate}

// SimulationValidator validates [models.SimulationInput] and
// [models.Simulation] values.
type SimulationValidator struct{}

func NewSimulationValidator() Validator {
	return &SimulationValidator{}
}

func (v *SimulationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SimulationInput:
		return v.validateInput(value, fields...)
	case *models.SimulationInput:
		return v.validateInput(*value, fields...)
	case models.Simulation:
		return v.validateInput(value.Input(), fields...)
	case *models.Simulation:
		return v.validateInput(value.Input(), fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SimulationValidator) validateInput(in models.SimulationInput, fields ...string) error {
	if len(fields) == 0 {
		fields = simulationFields
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldAmount:
			if !in.Amount.IsPositive() {
				errs = append(errs, FieldError{Field: FieldAmount, Msg: app.MsgAmountNotPositive, Type: TypeGreaterThan, Err: ErrAmountNotPositive})
			}
		case FieldTerm:
			if !in.Term.Valid() {
				errs = append(errs, FieldError{Field: FieldTerm, Msg: app.MsgTermInvalid, Type: TypeEnum, Err: ErrTermInvalid})
			}
		case FieldStartDate:
			if in.StartDate.IsZero() {
				errs = append(errs, FieldError{Field: FieldStartDate, Msg: app.MsgStartDateRequired, Type: TypeMissing, Err: ErrStartDateRequired})
			}
		case FieldEndDate:
			switch {
			case in.EndDate.IsZero():
				errs = append(errs, FieldError{Field: FieldEndDate, Msg: app.MsgEndDateRequired, Type: TypeMissing, Err: ErrEndDateRequired})
			case !in.StartDate.IsZero() && in.EndDate.Before(in.StartDate):
				errs = append(errs, FieldError{Field: FieldEndDate, Msg: app.MsgEndDateBeforeStart, Type: TypeValueError, Err: ErrEndDateBeforeStart})
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}
