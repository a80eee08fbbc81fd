// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/models"
)

type Services struct {
	AccountService     AccountService
	AccessGuard        AccessGuard
	DiagnosticsService DiagnosticsService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, sessions SessionProvider, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AccountService:     NewAccountService(storages.AccountRepository, sessions, logger),
		AccessGuard:        NewAccessGuard(storages.AccountRepository, sessions, logger),
		DiagnosticsService: NewDiagnosticsService(storages.Pinger, logger),
		AppInfoService:     appInfoService,
	}, nil
}
