// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterResult is produced by the account service on registration.
type RegisterResult struct {
	Account           Account
	VerificationToken string
}

// LoginResult is produced by the account service on a successful login.
// Session is already issued and only needs to be handed to the transport.
type LoginResult struct {
	Account Account
	Session Session
}

// BlockResult reports whether the caller blocked its own account.
type BlockResult struct {
	SelfBlocked bool
}

// DeleteResult reports which accounts were removed.
type DeleteResult struct {
	DeletedCount int
	DeletedIDs   []int64
}
