// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-account-keeper/models"
)

// generateToken creates a signed HMAC-SHA256 session token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the account ID encoded as a string
//   - ID        (jti): random session id, the revocation key
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus duration
func generateToken(issuer string, accountID int64, now time.Time, duration time.Duration, signKey []byte) (models.Session, error) {
	if issuer == "" || duration <= 0 || len(signKey) == 0 {
		return models.Session{}, ErrInvalidParams
	}

	session := models.Session{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(accountID, 10),
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		AccountID: accountID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &session).SignedString(signKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}
	session.SignedString = signed

	return session, nil
}

// parseToken validates the signature, issuer and expiry of tokenString and
// extracts the account id from its subject.
func parseToken(tokenString string, signKey []byte, issuer string, now time.Time) (models.Session, error) {
	var session models.Session

	_, err := jwt.ParseWithClaims(tokenString, &session, func(token *jwt.Token) (any, error) {
		return signKey, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	if session.ID == "" {
		return models.Session{}, fmt.Errorf("%w: missing session id", ErrInvalidSession)
	}

	accountID, err := session.GetAccountID()
	if err != nil {
		return models.Session{}, errors.Join(ErrInvalidSession, err)
	}

	session.AccountID = accountID
	session.SignedString = tokenString

	return session, nil
}
