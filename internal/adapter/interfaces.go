// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the account service REST API.
//
// [AccountAPI] hides the transport from the command-line client. The HTTP
// implementation keeps the session cookie in a cookie jar, so a successful
// Login authenticates every later privileged call. Non-2xx answers are mapped
// to the sentinel errors in errors.go, so callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

type AccountAPI interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Verify consumes a verification token. The server's redirect to the
	// login page counts as success.
	Verify(ctx context.Context, token string) error

	// Login authenticates and keeps the returned session cookie for later
	// calls.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	List(ctx context.Context) ([]models.AccountView, error)

	// Block reports SelfBlocked when the server ended the caller's own
	// session.
	Block(ctx context.Context, ids []int64) (models.BlockResult, error)
	Unblock(ctx context.Context, ids []int64) error

	// DeleteUnverified returns an empty slice when nothing matched.
	DeleteUnverified(ctx context.Context, ids []int64) ([]int64, error)
	Delete(ctx context.Context, ids []int64) (models.DeleteResponse, error)

	PingDatabase(ctx context.Context) error
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
