// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/session"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/models"
)

type accessGuard struct {
	accounts store.AccountRepository
	sessions SessionProvider
	logger   *logger.Logger
}

func NewAccessGuard(accounts store.AccountRepository, sessions SessionProvider, logger *logger.Logger) AccessGuard {
	return &accessGuard{
		accounts: accounts,
		sessions: sessions,
		logger:   logger,
	}
}

// Authorize fails closed: a missing, invalid or revoked session and an
// unknown or blocked account all yield [ErrUnauthenticated]. The account is
// reloaded on every call.
func (g *accessGuard) Authorize(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	sess, err := g.sessions.Parse(ctx, token)
	if err != nil {
		if isSessionRejection(err) {
			log.Debug().Err(err).Str("func", "accessGuard.Authorize").Msg("session rejected")
			return models.Session{}, ErrUnauthenticated
		}
		return models.Session{}, fmt.Errorf("error reading session: %w", err)
	}

	account, err := g.accounts.FindByID(ctx, sess.AccountID)
	if errors.Is(err, store.ErrAccountNotFound) {
		log.Warn().Str("func", "accessGuard.Authorize").Int64("account_id", sess.AccountID).Msg("session of deleted account")
		return models.Session{}, ErrUnauthenticated
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("error loading session account: %w", err)
	}

	if account.IsBlocked() {
		log.Warn().Str("func", "accessGuard.Authorize").Int64("account_id", account.ID).Msg("blocked account denied")
		return models.Session{}, ErrUnauthenticated
	}

	return sess, nil
}

func isSessionRejection(err error) bool {
	return errors.Is(err, session.ErrNoSession) ||
		errors.Is(err, session.ErrInvalidSession) ||
		errors.Is(err, session.ErrRevokedSession)
}
