package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates a missing API address or timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN, or an in-memory DSN on
	// the client where the session has to survive restarts.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing token or hashing parameters.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing address, timeout or rate
	// limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive check interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
