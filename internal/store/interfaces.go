package store

import (
	"context"

	"github.com/MKhiriev/go-fin-simulator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts in the users table.
type UserRepository interface {
	// CreateUser inserts user (Email and PasswordHash) and returns the stored
	// row. A taken email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns ErrNoUserWasFound when nothing matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// SimulationRepository persists simulations. Every method is scoped to the
// owning user.
type SimulationRepository interface {
	Create(ctx context.Context, sim models.Simulation) (models.Simulation, error)
	// ListByUser returns the newest simulations first.
	ListByUser(ctx context.Context, userID int64) ([]models.Simulation, error)
	// Update replaces amount, term, dates and rate_applied of sim.ID.
	Update(ctx context.Context, sim models.Simulation) (models.Simulation, error)
	Delete(ctx context.Context, userID, simulationID int64) error
}

// ErrorClassificator decides whether a failed database call is worth
// repeating.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
