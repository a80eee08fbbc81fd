// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrInvalidParams is returned when a token is requested with an empty
	// issuer, sign key or duration.
	ErrInvalidParams = errors.New("invalid params for generating session token")

	// ErrNoSession is returned when a request carries no session cookie.
	ErrNoSession = errors.New("no session")

	// ErrInvalidSession covers malformed, tampered and expired tokens.
	ErrInvalidSession = errors.New("invalid session")

	// ErrRevokedSession is returned for a validly signed token whose id was
	// revoked before expiry.
	ErrRevokedSession = errors.New("session was revoked")
)
