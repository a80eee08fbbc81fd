// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session binds a request to an account for a limited time.
//
// It embeds [jwt.RegisteredClaims] so the same value is used as the claim set
// of the signed session token: "sub" carries the account id and "jti" the
// session id used for server-side revocation.
type Session struct {
	jwt.RegisteredClaims

	// SignedString is the compact token placed into the session cookie.
	SignedString string `json:"-"`

	// AccountID is the parsed "sub" claim.
	AccountID int64 `json:"-"`
}

// GetAccountID parses the subject claim as a base-10 account id.
func (s *Session) GetAccountID() (int64, error) {
	subject, err := s.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting account id from session: %w", err)
	}

	accountID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting account id from session to int64: %w", err)
	}

	return accountID, nil
}

// ExpiresIn returns the time left until the session expires, or zero when it
// has no expiry or has already expired.
func (s *Session) ExpiresIn(now time.Time) time.Duration {
	if s.ExpiresAt == nil {
		return 0
	}
	left := s.ExpiresAt.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// String returns the signed token.
func (s *Session) String() string {
	return s.SignedString
}
