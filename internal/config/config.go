// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// simulator server and client. It is populated by merging environment
// variables, command-line flags, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token and password hashing parameters plus the version.
	App App `envPrefix:"APP_"`

	// Storage holds the database connection. The server points it at
	// PostgreSQL, the client at its SQLite session file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address, request timeout and /auth rate limit.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the simulator API used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds client background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups storage backend settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// App holds security and versioning settings.
type App struct {
	// TokenSignKey is the HS256 secret used to sign and verify access tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the access token lifetime.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashIterations is the PBKDF2-SHA256 round count for new hashes.
	// Env: APP_PASSWORD_HASH_ITERATIONS
	PasswordHashIterations int `env:"PASSWORD_HASH_ITERATIONS"`

	// Version is reported by GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds inbound transport settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AuthRateLimit is the number of /auth requests per second allowed
	// from a single client address.
	// Env: SERVER_AUTH_RATE_LIMIT
	AuthRateLimit float64 `env:"AUTH_RATE_LIMIT"`

	// AuthRateBurst is the token bucket size paired with AuthRateLimit.
	// Env: SERVER_AUTH_RATE_BURST
	AuthRateBurst int `env:"AUTH_RATE_BURST"`
}

// DB holds the database connection string.
type DB struct {
	// DSN is a PostgreSQL URL on the server and a SQLite file path on the
	// client.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the client's view of the simulator API.
type Adapter struct {
	// HTTPAddress is the API base address ("localhost:8080" or a full URL).
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound API call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds client background worker settings.
type Workers struct {
	// SessionCheckInterval is how often the session watcher checks whether
	// the stored access token has expired.
	// Env: WORKERS_SESSION_CHECK_INTERVAL
	SessionCheckInterval time.Duration `env:"SESSION_CHECK_INTERVAL"`
}

// GetStructuredConfig loads, merges and validates the server configuration.
//
// For every field the first non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	return cfg, nil
}

func loadStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
