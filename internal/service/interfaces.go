package service

import (
	"context"

	"github.com/MKhiriev/go-fin-simulator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=SimulationServiceWrapper

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SimulationService manages the simulations of the user whose ID is stored
// in ctx (see utils.WithUserID). Records of other users are reported as
// missing.
type SimulationService interface {
	Create(ctx context.Context, input models.SimulationInput) (models.Simulation, error)
	List(ctx context.Context) ([]models.Simulation, error)
	Update(ctx context.Context, simulationID int64, input models.SimulationInput) (models.Simulation, error)
	Delete(ctx context.Context, simulationID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SimulationServiceWrapper defines middleware composition for SimulationService.
// Implementations wrap an existing SimulationService to add behavior such as
// logging or validating.
type SimulationServiceWrapper interface {
	Wrap(SimulationService) SimulationService // returns a decorated SimulationService applying additional behavior
}
