package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registering an email that is
	// already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSimulationNotFound is returned when no simulation with the given id
	// belongs to the requesting user. Other users' rows are reported the same
	// way as missing ones.
	ErrSimulationNotFound = errors.New("simulation was not found")

	// ErrCredentialNotFound is returned by the client credential store when
	// no session has been persisted.
	ErrCredentialNotFound = errors.New("credential was not found")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrScanningRows       = errors.New("failed to scan rows")
)
