package service

import (
	"context"

	"github.com/MKhiriev/go-fin-simulator/internal/adapter"
	"github.com/MKhiriev/go-fin-simulator/internal/app"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/models"
)

type clientSimulationService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientSimulationService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSimulationService {
	return &clientSimulationService{
		adapter: serverAdapter,
		logger:  logger,
	}
}

func (s *clientSimulationService) List(ctx context.Context) ([]models.Simulation, error) {
	simulations, err := s.adapter.ListSimulations(ctx)
	if err != nil {
		s.logger.Err(err).Msg("listing simulations failed")
		return nil, toProtectedNotice(err, app.MsgSimulationsLoadErr)
	}
	return simulations, nil
}

func (s *clientSimulationService) Create(ctx context.Context, input models.SimulationInput) (models.Simulation, error) {
	created, err := s.adapter.CreateSimulation(ctx, input)
	if err != nil {
		s.logger.Err(err).Msg("creating simulation failed")
		return models.Simulation{}, toProtectedNotice(err, app.MsgSimulationSaveFail)
	}

	s.logger.Debug().Int64("simulation_id", created.ID).Msg("simulation created")
	return created, nil
}

func (s *clientSimulationService) Update(ctx context.Context, id int64, input models.SimulationInput) (models.Simulation, error) {
	updated, err := s.adapter.UpdateSimulation(ctx, id, input)
	if err != nil {
		s.logger.Err(err).Int64("simulation_id", id).Msg("updating simulation failed")
		return models.Simulation{}, toProtectedNotice(err, app.MsgSimulationSaveFail)
	}
	return updated, nil
}

func (s *clientSimulationService) Delete(ctx context.Context, id int64) error {
	if err := s.adapter.DeleteSimulation(ctx, id); err != nil {
		s.logger.Err(err).Int64("simulation_id", id).Msg("deleting simulation failed")
		return toProtectedNotice(err, app.MsgSimulationDeleteErr)
	}
	return nil
}
