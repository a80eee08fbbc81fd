// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
)

// unverifiedCleanupWorker periodically deletes accounts that stayed
// unverified longer than ttl.
type unverifiedCleanupWorker struct {
	accounts service.AccountService
	interval time.Duration
	ttl      time.Duration
	logger   *logger.Logger
}

func NewUnverifiedCleanupWorker(accounts service.AccountService, cfg config.Workers, logger *logger.Logger) Worker {
	return &unverifiedCleanupWorker{
		accounts: accounts,
		interval: cfg.CleanupInterval,
		ttl:      cfg.UnverifiedTTL,
		logger:   logger,
	}
}

func (w *unverifiedCleanupWorker) Run(ctx context.Context) {
	if w.interval <= 0 || w.ttl <= 0 {
		w.logger.Info().Str("func", "unverifiedCleanupWorker.Run").Msg("unverified account cleanup is disabled")
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.cleanup(ctx)
		}
	}
}

func (w *unverifiedCleanupWorker) cleanup(ctx context.Context) {
	deleted, err := w.accounts.PurgeStaleUnverified(ctx, w.ttl)
	if err != nil {
		w.logger.Err(err).Str("func", "unverifiedCleanupWorker.cleanup").Msg("failed to purge stale unverified accounts")
		return
	}

	if len(deleted) > 0 {
		w.logger.Info().
			Str("func", "unverifiedCleanupWorker.cleanup").
			Ints64("deleted", deleted).
			Msg("stale unverified accounts purged")
	}
}
