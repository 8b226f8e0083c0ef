package tui

import (
	"github.com/MKhiriev/go-fin-simulator/internal/controller"
)

// NavigateTo asks the root model to switch routes. The route is resolved
// through the session guard first.
type NavigateTo struct {
	Route  controller.Route
	Notice string
}

// SessionExpiredMsg is sent from outside the program when the held
// credential expired.
type SessionExpiredMsg struct{}

type toastMsg struct {
	text   string
	failed bool
}

type clearToastMsg struct {
	seq int
}

type loginDoneMsg struct {
	out controller.Outcome
}

type registerDoneMsg struct {
	out controller.Outcome
}

type pageOp int

const (
	opLoad pageOp = iota
	opSubmit
	opDelete
	opLogout
)

type pageDoneMsg struct {
	op  pageOp
	out controller.Outcome
}

type copiedMsg struct {
	err error
}
