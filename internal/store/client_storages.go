package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fin-simulator/internal/config"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
)

// ClientStorages groups client-side storage. The client keeps only its
// session credential locally; simulations always come from the server.
type ClientStorages struct {
	CredentialStore CredentialStore

	db *DB
}

// NewClientStorages opens (or creates) the SQLite file at cfg.DB.DSN, applies
// the client schema and wires the credential store.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		CredentialStore: NewCredentialRepository(db, logger),
		db:              db,
	}, nil
}

func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
