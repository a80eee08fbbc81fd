// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/store"
)

type diagnosticsService struct {
	pinger store.Pinger
	logger *logger.Logger
}

func NewDiagnosticsService(pinger store.Pinger, logger *logger.Logger) DiagnosticsService {
	return &diagnosticsService{
		pinger: pinger,
		logger: logger,
	}
}

func (s *diagnosticsService) PingDatabase(ctx context.Context) error {
	if err := s.pinger.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "diagnosticsService.PingDatabase").Msg("database ping failed")
		return fmt.Errorf("database is unreachable: %w", err)
	}
	return nil
}
