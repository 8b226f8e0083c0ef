package service

import (
	"context"

	"github.com/MKhiriev/go-fin-simulator/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService is the client side of registration and login. Every
// returned error is a [*NoticeError] whose Message can be shown as is.
type ClientAuthService interface {
	// Login authenticates against the API and, on success, holds the
	// returned credential in the session, replacing any previous one.
	Login(ctx context.Context, email, password string) (models.Credential, error)

	// Register creates an account. It never creates a session; the user
	// logs in afterwards.
	Register(ctx context.Context, email, password string) error

	// Logout clears the session.
	Logout(ctx context.Context) error
}

// ClientSimulationService performs the simulation CRUD calls with the
// session credential attached. Every returned error is a [*NoticeError];
// a rejected credential additionally matches [ErrSessionExpired].
type ClientSimulationService interface {
	List(ctx context.Context) ([]models.Simulation, error)
	Create(ctx context.Context, input models.SimulationInput) (models.Simulation, error)
	Update(ctx context.Context, id int64, input models.SimulationInput) (models.Simulation, error)
	Delete(ctx context.Context, id int64) error
}
