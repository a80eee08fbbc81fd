// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AccountStatus is the lifecycle state of an [Account].
type AccountStatus string

const (
	// StatusUnverified is assigned at registration and kept until the
	// verification token is consumed.
	StatusUnverified AccountStatus = "unverified"

	// StatusActive marks a verified account.
	StatusActive AccountStatus = "active"

	// StatusBlocked denies every access regardless of verification state.
	StatusBlocked AccountStatus = "blocked"
)

// IsValid reports whether s is one of the known statuses.
func (s AccountStatus) IsValid() bool {
	switch s {
	case StatusUnverified, StatusActive, StatusBlocked:
		return true
	}
	return false
}

// String implements [fmt.Stringer].
func (s AccountStatus) String() string {
	return string(s)
}

// Field length limits enforced on registration and by the accounts table.
const (
	MaxNameLength              = 100
	MaxEmailLength             = 200
	MaxPasswordLength          = 255
	MaxVerificationTokenLength = 510
)

// Account is the user identity record managed by the service.
// Password and VerificationToken must never leave the server; use
// [Account.View] when building responses.
type Account struct {
	// ID is assigned by the store and never changes.
	ID int64 `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Email is stored trimmed and lower-cased; unique across all accounts.
	Email string `json:"email"`

	// Password is the opaque credential compared verbatim on login.
	Password string `json:"-"`

	// Status is the current lifecycle state.
	Status AccountStatus `json:"status"`

	// LastLogin is set by a successful login only.
	LastLogin *time.Time `json:"lastLogin"`

	// CreatedAt is set once on insert.
	CreatedAt time.Time `json:"createdAt"`

	// VerificationToken is present while verification is pending.
	VerificationToken *string `json:"-"`
}

// HasPendingVerification reports whether the account still holds a
// non-empty verification token.
func (a Account) HasPendingVerification() bool {
	return a.VerificationToken != nil && *a.VerificationToken != ""
}

// IsBlocked reports whether the account is blocked.
func (a Account) IsBlocked() bool {
	return a.Status == StatusBlocked
}

// View returns the public projection of the account.
func (a Account) View() AccountView {
	return AccountView{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Status:    a.Status,
		LastLogin: a.LastLogin,
		CreatedAt: a.CreatedAt,
	}
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// AccountView is the projection of an [Account] returned by list endpoints.
type AccountView struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Status    AccountStatus `json:"status"`
	LastLogin *time.Time    `json:"lastLogin"`
	CreatedAt time.Time     `json:"createdAt"`
}
