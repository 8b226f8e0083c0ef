package service

import (
	"github.com/MKhiriev/go-fin-simulator/internal/config"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/store"
)

type Services struct {
	AuthService       AuthService
	SimulationService SimulationService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	simulations := NewSimulationValidationService().
		Wrap(NewSimulationService(storages.SimulationRepository, logger))

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.App, logger),
		SimulationService: simulations,
		AppInfoService:    appInfo,
	}, nil
}
