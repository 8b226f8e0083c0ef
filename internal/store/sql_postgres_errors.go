package store

import (
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.withRetry] whether a failed call may succeed
// if attempted again.
type ErrorClassification int

const (
	// NonRetryable is the default for constraint violations, bad input and
	// anything unrecognised.
	NonRetryable ErrorClassification = iota
	// Retryable marks transient failures: lost connections, serialization
	// conflicts, deadlocks and a server that is still starting up.
	Retryable
)

// retryablePgCodes lists the SQLSTATE codes worth repeating.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
var retryablePgCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {}, // 08000
	pgerrcode.ConnectionDoesNotExist: {}, // 08003
	pgerrcode.ConnectionFailure:      {}, // 08006
	pgerrcode.TransactionRollback:    {}, // 40000
	pgerrcode.SerializationFailure:   {}, // 40001
	pgerrcode.DeadlockDetected:       {}, // 40P01
	pgerrcode.CannotConnectNow:       {}, // 57P03
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL by
// inspecting the SQLSTATE of *pgconn.PgError values.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. A stale pooled connection
// (driver.ErrBadConn) is retryable as well.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	if errors.Is(err, driver.ErrBadConn) {
		return Retryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a SQLSTATE to an [ErrorClassification].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if _, ok := retryablePgCodes[pgErr.Code]; ok {
		return Retryable
	}
	return NonRetryable
}
