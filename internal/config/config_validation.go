// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. All violations are joined into a
// single error.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		errs = append(errs, fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs))
	}

	if cfg.Storage.DB.MaxOpenConns < 0 {
		errs = append(errs, fmt.Errorf("%w: negative max open connections", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs))
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs))
	}

	if cfg.Session.SignKey == "" {
		errs = append(errs, fmt.Errorf("%w: empty sign key", ErrInvalidSessionConfigs))
	}

	if cfg.Session.Duration <= 0 {
		errs = append(errs, fmt.Errorf("%w: non-positive duration", ErrInvalidSessionConfigs))
	}

	if cfg.Workers.CleanupInterval < 0 || cfg.Workers.UnverifiedTTL < 0 {
		errs = append(errs, fmt.Errorf("%w: negative duration", ErrInvalidWorkerConfigs))
	}

	return errors.Join(errs...)
}
