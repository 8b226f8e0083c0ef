package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the simulator API address.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database settings for the client.
type ClientDB struct {
	// DSN is the SQLite file holding the persisted session.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SessionCheckInterval defines how often the session watcher runs.
	SessionCheckInterval time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration.
// An empty DSN falls back to [DefaultClientSessionDSN] in the working
// directory.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = DefaultClientSessionDSN
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: dsn},
		},
		Workers: ClientWorkers{SessionCheckInterval: cfg.Workers.SessionCheckInterval},
	}
}
