package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fin-simulator/internal/validators"
	"github.com/MKhiriev/go-fin-simulator/models"
)

// SimulationValidationService rejects invalid input before it reaches the
// wrapped service. Errors wrap both ErrSimulationValidation and the
// validators.ValidationErrors list.
type SimulationValidationService struct {
	inner     SimulationService
	validator validators.Validator
}

func NewSimulationValidationService() SimulationServiceWrapper {
	return &SimulationValidationService{
		validator: validators.NewSimulationValidator(),
	}
}

func (v *SimulationValidationService) Create(ctx context.Context, input models.SimulationInput) (models.Simulation, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Simulation{}, fmt.Errorf("%w: %w", ErrSimulationValidation, err)
	}

	return v.inner.Create(ctx, input)
}

func (v *SimulationValidationService) List(ctx context.Context) ([]models.Simulation, error) {
	return v.inner.List(ctx)
}

func (v *SimulationValidationService) Update(ctx context.Context, simulationID int64, input models.SimulationInput) (models.Simulation, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Simulation{}, fmt.Errorf("%w: %w", ErrSimulationValidation, err)
	}

	return v.inner.Update(ctx, simulationID, input)
}

func (v *SimulationValidationService) Delete(ctx context.Context, simulationID int64) error {
	return v.inner.Delete(ctx, simulationID)
}

func (v *SimulationValidationService) Wrap(wrapper SimulationService) SimulationService {
	v.inner = wrapper
	return v
}
