// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-account-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountService owns the account lifecycle: registration, verification,
// login and the administrative bulk operations.
type AccountService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResult, error)
	Verify(ctx context.Context, token string) error
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)

	// BulkBlock blocks every existing account in ids. When caller's own
	// account is among them its session is revoked and SelfBlocked is set.
	BulkBlock(ctx context.Context, caller models.Session, ids []int64) (models.BlockResult, error)
	BulkUnblock(ctx context.Context, ids []int64) error
	DeleteUnverified(ctx context.Context, ids []int64) ([]int64, error)
	Delete(ctx context.Context, ids []int64) (models.DeleteResult, error)
	List(ctx context.Context) ([]models.AccountView, error)

	// PurgeStaleUnverified deletes unverified accounts older than ttl.
	PurgeStaleUnverified(ctx context.Context, ttl time.Duration) ([]int64, error)
}

// AccessGuard admits a request only for a live session of an existing,
// non-blocked account.
type AccessGuard interface {
	Authorize(ctx context.Context, token string) (models.Session, error)
}

// SessionProvider binds requests to accounts.
type SessionProvider interface {
	Issue(ctx context.Context, accountID int64) (models.Session, error)
	Parse(ctx context.Context, token string) (models.Session, error)
	Revoke(ctx context.Context, session models.Session) error
}

// DiagnosticsService reports the health of backing services.
type DiagnosticsService interface {
	PingDatabase(ctx context.Context) error
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
