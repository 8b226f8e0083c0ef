package controller

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-fin-simulator/internal/app"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/service"
	"github.com/MKhiriev/go-fin-simulator/internal/validators"
	"github.com/MKhiriev/go-fin-simulator/models"
)

// FormMode is either [CreateMode] or [EditMode].
type FormMode interface {
	formMode()
}

// CreateMode submits a new simulation.
type CreateMode struct{}

// EditMode replaces the simulation with ID.
type EditMode struct {
	ID int64
}

func (CreateMode) formMode() {}
func (EditMode) formMode()   {}

// FormFields holds the raw values typed into the form.
type FormFields struct {
	Amount    string
	Term      models.PaymentTerm
	StartDate string
	EndDate   string
}

// DefaultFormFields is the state of an empty create form.
func DefaultFormFields() FormFields {
	return FormFields{Amount: "0", Term: models.TermMonthly}
}

// FormController drives the create/edit simulation form.
type FormController struct {
	mu          sync.Mutex
	simulations service.ClientSimulationService
	mode        FormMode
	fields      FormFields
	fieldErrs   FieldErrors
	submitting  bool
	logger      *logger.Logger
}

func NewFormController(simulations service.ClientSimulationService, logger *logger.Logger) *FormController {
	return &FormController{
		simulations: simulations,
		mode:        CreateMode{},
		fields:      DefaultFormFields(),
		logger:      logger,
	}
}

func (f *FormController) Mode() FormMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

func (f *FormController) Fields() FormFields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// FieldErrors returns the inline messages of the last blocked submit.
func (f *FormController) FieldErrors() FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make(FieldErrors, len(f.fieldErrs))
	for k, v := range f.fieldErrs {
		out[k] = v
	}
	return out
}

func (f *FormController) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// SetFields replaces the typed values. Inline errors of changed fields are
// cleared.
func (f *FormController) SetFields(fields FormFields) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if fields.Amount != f.fields.Amount {
		delete(f.fieldErrs, validators.FieldAmount)
	}
	if fields.StartDate != f.fields.StartDate {
		delete(f.fieldErrs, validators.FieldStartDate)
	}
	if fields.EndDate != f.fields.EndDate {
		delete(f.fieldErrs, validators.FieldEndDate)
	}
	f.fields = fields
}

func (f *FormController) ToggleTerm() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields.Term = f.fields.Term.Toggle()
}

// Edit switches to EditMode for sim and fills the fields from it.
func (f *FormController) Edit(sim models.Simulation) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.mode = EditMode{ID: sim.ID}
	f.fields = FormFields{
		Amount:    sim.Amount.String(),
		Term:      sim.Term,
		StartDate: sim.StartDate.String(),
		EndDate:   sim.EndDate.String(),
	}
	f.fieldErrs = nil
}

// Cancel discards an edit and returns to an empty create form.
func (f *FormController) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *FormController) reset() {
	f.mode = CreateMode{}
	f.fields = DefaultFormFields()
	f.fieldErrs = nil
}

// Submit validates the fields and, when they are valid, creates or updates
// the simulation. On success the form returns to an empty create form; on
// failure the typed values are kept.
func (f *FormController) Submit(ctx context.Context) Outcome {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return failed(ErrBusy)
	}
	input, fieldErrs := ParseSimulationFields(f.fields)
	if !fieldErrs.Empty() {
		f.fieldErrs = fieldErrs
		f.mu.Unlock()
		return invalid(fieldErrs)
	}
	f.fieldErrs = nil
	f.submitting = true
	mode := f.mode
	f.mu.Unlock()

	var (
		notice string
		err    error
	)
	switch m := mode.(type) {
	case EditMode:
		_, err = f.simulations.Update(ctx, m.ID, input)
		notice = app.MsgSimulationUpdated
	default:
		_, err = f.simulations.Create(ctx, input)
		notice = app.MsgSimulationCreated
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err != nil {
		f.logger.Debug().Err(err).Msg("simulation submit failed")
		return failed(err)
	}
	f.reset()
	return Outcome{Notice: notice}
}
