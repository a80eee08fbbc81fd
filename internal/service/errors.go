// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by the services either wraps one of
// these or is an infrastructure failure.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrAuth       = errors.New("authentication failed")
	ErrNotFound   = errors.New("not found")
)

var (
	ErrRegisterFieldsRequired = fmt.Errorf("%w: name, email and password are required", ErrValidation)
	ErrFieldTooLong           = fmt.Errorf("%w: field exceeds its maximum length", ErrValidation)
	ErrEmailAlreadyRegistered = fmt.Errorf("%w: email already registered", ErrConflict)

	ErrMissingVerificationToken = fmt.Errorf("%w: missing token", ErrValidation)
	ErrInvalidVerificationToken = fmt.Errorf("%w: invalid token", ErrNotFound)

	ErrCredentialsRequired = fmt.Errorf("%w: email and password are required", ErrValidation)
	ErrInvalidCredentials  = fmt.Errorf("%w: invalid email or password", ErrAuth)
	ErrAccountBlocked      = fmt.Errorf("%w: account is blocked", ErrAuth)

	ErrUnauthenticated = fmt.Errorf("%w: unauthenticated", ErrAuth)

	ErrNoIDsProvided      = fmt.Errorf("%w: no user ids provided", ErrValidation)
	ErrNoAccountsSelected = fmt.Errorf("%w: select at least one user", ErrValidation)

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
