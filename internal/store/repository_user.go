package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/models"
)

// userRepository is the PostgreSQL-backed [UserRepository].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the account and returns it with id, is_active and
// created_at filled from the RETURNING clause.
//
//   - unique_violation (23505) on email → [ErrEmailAlreadyExists].
//   - any other query error → wrapped "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, createUser, user.Email, user.PasswordHash)
		if err := row.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if err := row.Scan(&created.UserID, &created.Email, &created.PasswordHash, &created.IsActive, &created.CreatedAt); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		switch {
		case postgresError(err) == pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		case errors.Is(err, ErrExecutingQuery):
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		default:
			return models.User{}, err
		}
	}

	return created, nil
}

// FindUserByEmail returns the account registered under email, or
// [ErrNoUserWasFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, findUserByEmail, email)
		if err := row.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if err := row.Scan(&found.UserID, &found.Email, &found.PasswordHash, &found.IsActive, &found.CreatedAt); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		return nil
	})

	switch {
	case err == nil:
		return found, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case errors.Is(err, ErrExecutingQuery):
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	default:
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error scanning user")
		return models.User{}, err
	}
}
