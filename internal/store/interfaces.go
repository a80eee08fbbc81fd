// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-account-keeper/models"
)

// AccountRepository is the typed persistence contract for [models.Account].
// Every bulk mutation runs in a single transaction or a single statement, so
// readers never observe a partially applied batch. Mutations write only the
// columns they change.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock
type AccountRepository interface {
	// FindByID returns [ErrAccountNotFound] when no account has the id.
	FindByID(ctx context.Context, id int64) (models.Account, error)
	// FindByEmail matches the normalized email exactly.
	FindByEmail(ctx context.Context, email string) (models.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Create inserts the account and returns it with the assigned ID.
	// A duplicate email yields [ErrEmailAlreadyExists].
	Create(ctx context.Context, account models.Account) (models.Account, error)
	// UpdateLastLogin sets last_login of one account. [ErrAccountNotFound]
	// when the account no longer exists.
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	// ConsumeVerificationToken clears token and activates its account in one
	// statement. [ErrAccountNotFound] when no account holds the token.
	ConsumeVerificationToken(ctx context.Context, token string) (int64, error)
	// SetStatus sets status on the existing accounts among ids and returns
	// their ids.
	SetStatus(ctx context.Context, ids []int64, status models.AccountStatus) ([]int64, error)
	// Unblock sets each existing account among ids to unverified when its
	// verification is pending, to active otherwise, and returns their ids.
	Unblock(ctx context.Context, ids []int64) ([]int64, error)
	// DeleteMany removes the given ids atomically and returns the ids that
	// existed.
	DeleteMany(ctx context.Context, ids []int64) ([]int64, error)
	// DeleteUnverified removes only those of ids whose status is unverified.
	DeleteUnverified(ctx context.Context, ids []int64) ([]int64, error)
	// DeleteStaleUnverified removes unverified accounts created before
	// createdBefore.
	DeleteStaleUnverified(ctx context.Context, createdBefore time.Time) ([]int64, error)
	// List returns every account ordered by ascending id.
	List(ctx context.Context) ([]models.Account, error)
}

// Pinger reports whether the underlying store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}
