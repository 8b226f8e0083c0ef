package controller

import (
	"errors"

	"github.com/MKhiriev/go-fin-simulator/internal/service"
)

// ErrInvalidForm is returned when client-side validation blocks a submit.
// No network call has been made.
var ErrInvalidForm = errors.New("form has invalid fields")

// ErrBusy is returned when an action is requested while the same one is
// still in flight.
var ErrBusy = errors.New("action already in progress")

// Outcome is the result of a user action.
type Outcome struct {
	// Notice is the success message to show, if any.
	Notice string
	// Err is the failure. Its message is available through Message.
	Err error
	// FieldErrors maps field names to inline messages when validation
	// blocked the action.
	FieldErrors FieldErrors
	// Redirect is set when the client must navigate away.
	Redirect Route
}

// OK reports whether the action succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Message returns the text of the transient notification for o: the error
// message on failure, else the notice.
func (o Outcome) Message() string {
	if o.Err == nil {
		return o.Notice
	}
	if errors.Is(o.Err, ErrInvalidForm) || errors.Is(o.Err, ErrBusy) {
		return ""
	}
	return service.NoticeMessage(o.Err, o.Err.Error())
}

func failed(err error) Outcome {
	return Outcome{Err: err}
}

func invalid(fieldErrs FieldErrors) Outcome {
	return Outcome{Err: ErrInvalidForm, FieldErrors: fieldErrs}
}
