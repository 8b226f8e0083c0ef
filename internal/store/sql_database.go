package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/migrations"
)

// retryDelays are the pauses between attempts of a retryable operation.
var retryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond}

// DB is a database handle together with the migration set and error
// classification of its dialect.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	migrate            func(*sql.DB) error
	logger             *logger.Logger
}

// Migrate applies the embedded schema of the DB's dialect.
func (db *DB) Migrate() error {
	if db.migrate == nil {
		return migrations.Migrate(db.DB)
	}
	return db.migrate(db.DB)
}

// withRetry runs op and repeats it while the classifier reports the error as
// transient. Without a classifier op runs once.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	if db.errorClassificator == nil {
		return err
	}

	for _, delay := range retryDelays {
		if err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Dur("delay", delay).Msg("retrying database operation")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		err = op()
	}

	return err
}
