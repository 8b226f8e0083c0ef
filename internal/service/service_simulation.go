package service

import (
	"context"

	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/rates"
	"github.com/MKhiriev/go-fin-simulator/internal/store"
	"github.com/MKhiriev/go-fin-simulator/internal/utils"
	"github.com/MKhiriev/go-fin-simulator/models"
)

// simulationService stores simulations for the user found in ctx and
// assigns rate_applied from the rates package. Input is expected to be
// validated by a wrapper (see NewSimulationValidationService).
type simulationService struct {
	simulationRepository store.SimulationRepository
	logger               *logger.Logger
}

func NewSimulationService(simulationRepository store.SimulationRepository, logger *logger.Logger) SimulationService {
	return &simulationService{
		simulationRepository: simulationRepository,
		logger:               logger,
	}
}

func (s *simulationService) Create(ctx context.Context, input models.SimulationInput) (models.Simulation, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return models.Simulation{}, ErrNoUserIDInContext
	}

	return s.simulationRepository.Create(ctx, newSimulation(userID, 0, input))
}

func (s *simulationService) List(ctx context.Context) ([]models.Simulation, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNoUserIDInContext
	}

	return s.simulationRepository.ListByUser(ctx, userID)
}

func (s *simulationService) Update(ctx context.Context, simulationID int64, input models.SimulationInput) (models.Simulation, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return models.Simulation{}, ErrNoUserIDInContext
	}

	return s.simulationRepository.Update(ctx, newSimulation(userID, simulationID, input))
}

func (s *simulationService) Delete(ctx context.Context, simulationID int64) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrNoUserIDInContext
	}

	return s.simulationRepository.Delete(ctx, userID, simulationID)
}

// newSimulation builds the stored record. rate_applied is always recomputed.
func newSimulation(userID, simulationID int64, input models.SimulationInput) models.Simulation {
	return models.Simulation{
		ID:          simulationID,
		UserID:      userID,
		Amount:      input.Amount,
		Term:        input.Term,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		RateApplied: rates.RateFor(input),
	}
}
