// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"strings"
)

// validate checks the server view of the merged config.
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" ||
		cfg.App.TokenDuration <= 0 || cfg.App.PasswordHashIterations <= 0 {
		err = errors.Join(err, ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 ||
		cfg.Server.AuthRateLimit <= 0 || cfg.Server.AuthRateBurst <= 0 {
		err = errors.Join(err, ErrInvalidServerConfigs)
	}

	return err
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SessionCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
