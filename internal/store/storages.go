package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fin-simulator/internal/config"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
)

// Storages groups the server repositories. Close releases the shared pool.
type Storages struct {
	UserRepository       UserRepository
	SimulationRepository SimulationRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and wires the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		SimulationRepository: NewSimulationRepository(db, logger),
		db:                   db,
	}
}

func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
