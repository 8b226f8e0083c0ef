package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/models"
)

const (
	saveCredential = `INSERT INTO session (id, access_token, token_type, saved_at)
    VALUES (1, ?, ?, CURRENT_TIMESTAMP)
    ON CONFLICT (id) DO UPDATE SET
        access_token = excluded.access_token,
        token_type = excluded.token_type,
        saved_at = excluded.saved_at;`

	loadCredential = `SELECT access_token, token_type FROM session WHERE id = 1;`

	deleteCredential = `DELETE FROM session WHERE id = 1;`
)

// credentialRepository is the SQLite-backed [CredentialStore]. The session
// table holds at most one row.
type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialStore {
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

func (r *credentialRepository) Save(ctx context.Context, cred models.Credential) error {
	if _, err := r.db.ExecContext(ctx, saveCredential, cred.AccessToken, cred.TokenType); err != nil {
		r.logger.Err(err).Str("func", "*credentialRepository.Save").Msg("error saving credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *credentialRepository) Load(ctx context.Context) (models.Credential, error) {
	var cred models.Credential
	err := r.db.QueryRowContext(ctx, loadCredential).Scan(&cred.AccessToken, &cred.TokenType)
	switch {
	case err == nil:
		return cred, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Credential{}, ErrCredentialNotFound
	default:
		r.logger.Err(err).Str("func", "*credentialRepository.Load").Msg("error loading credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
}

func (r *credentialRepository) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteCredential); err != nil {
		r.logger.Err(err).Str("func", "*credentialRepository.Delete").Msg("error deleting credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
