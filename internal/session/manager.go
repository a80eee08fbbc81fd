// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/models"
)

// Manager issues, reads and invalidates sessions. A session is a signed
// token; invalidation before expiry is recorded in a [RevocationStore].
type Manager struct {
	signKey     []byte
	issuer      string
	duration    time.Duration
	revocations RevocationStore
	now         func() time.Time
}

// NewManager builds a Manager from the session configuration.
func NewManager(cfg config.Session, revocations RevocationStore) *Manager {
	return &Manager{
		signKey:     []byte(cfg.SignKey),
		issuer:      cfg.Issuer,
		duration:    cfg.Duration,
		revocations: revocations,
		now:         time.Now,
	}
}

// Duration returns the lifetime of issued sessions.
func (m *Manager) Duration() time.Duration {
	return m.duration
}

// Issue creates a session bound to accountID.
func (m *Manager) Issue(ctx context.Context, accountID int64) (models.Session, error) {
	session, err := generateToken(m.issuer, accountID, m.now(), m.duration, m.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Manager.Issue").Int64("account_id", accountID).Msg("failed to issue session")
		return models.Session{}, err
	}

	return session, nil
}

// Parse validates token and checks it was not revoked.
func (m *Manager) Parse(ctx context.Context, token string) (models.Session, error) {
	if token == "" {
		return models.Session{}, ErrNoSession
	}

	session, err := parseToken(token, m.signKey, m.issuer, m.now())
	if err != nil {
		return models.Session{}, err
	}

	revoked, err := m.revocations.IsRevoked(ctx, session.ID)
	if err != nil {
		return models.Session{}, fmt.Errorf("error checking session revocation: %w", err)
	}
	if revoked {
		return models.Session{}, ErrRevokedSession
	}

	return session, nil
}

// Revoke invalidates session until its natural expiry.
func (m *Manager) Revoke(ctx context.Context, session models.Session) error {
	ttl := session.ExpiresIn(m.now())
	if session.ID == "" || ttl == 0 {
		return nil
	}

	if err := m.revocations.Revoke(ctx, session.ID, ttl); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Manager.Revoke").Int64("account_id", session.AccountID).Msg("failed to revoke session")
		return fmt.Errorf("error revoking session: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "Manager.Revoke").Int64("account_id", session.AccountID).Msg("session revoked")
	return nil
}
