// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/models"
)

// accountService is the concrete implementation of [AccountService].
// It holds no per-request state; the unique email index of the repository is
// the only concurrency guarantee it relies on.
type accountService struct {
	accounts store.AccountRepository
	sessions SessionProvider

	// newToken generates verification tokens.
	newToken func() (string, error)
	now      func() time.Time

	logger *logger.Logger
}

// NewAccountService constructs an [AccountService] over the given repository
// and session provider.
func NewAccountService(accounts store.AccountRepository, sessions SessionProvider, logger *logger.Logger) AccountService {
	return &accountService{
		accounts: accounts,
		sessions: sessions,
		newToken: newVerificationToken,
		now:      time.Now,
		logger:   logger,
	}
}

// Register creates an unverified account and returns it together with its
// verification token.
//
// Two registrations racing for the same email are decided by the store's
// unique index: the loser gets [ErrEmailAlreadyRegistered] just like a
// request that failed the pre-check.
func (s *accountService) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResult, error) {
	log := logger.FromContext(ctx)

	req = normalizeRegisterRequest(req)
	if err := validateRegisterRequest(req); err != nil {
		return models.RegisterResult{}, err
	}

	exists, err := s.accounts.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return models.RegisterResult{}, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return models.RegisterResult{}, ErrEmailAlreadyRegistered
	}

	token, err := s.newToken()
	if err != nil {
		log.Err(err).Str("func", "accountService.Register").Msg("failed to generate verification token")
		return models.RegisterResult{}, err
	}

	created, err := s.accounts.Create(ctx, models.Account{
		Name:              req.Name,
		Email:             req.Email,
		Password:          req.Password,
		Status:            models.StatusUnverified,
		CreatedAt:         s.now().UTC(),
		VerificationToken: &token,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.RegisterResult{}, ErrEmailAlreadyRegistered
	}
	if err != nil {
		return models.RegisterResult{}, fmt.Errorf("error creating account: %w", err)
	}

	log.Info().Str("func", "accountService.Register").Int64("account_id", created.ID).Msg("account registered")

	return models.RegisterResult{Account: created, VerificationToken: token}, nil
}

// Verify consumes token: the token is cleared and the account becomes
// active whatever its previous status was. The store decides which of
// several concurrent calls with the same token wins.
func (s *accountService) Verify(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrMissingVerificationToken
	}

	accountID, err := s.accounts.ConsumeVerificationToken(ctx, token)
	if errors.Is(err, store.ErrAccountNotFound) {
		return ErrInvalidVerificationToken
	}
	if err != nil {
		return fmt.Errorf("error activating account: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "accountService.Verify").Int64("account_id", accountID).Msg("account verified")
	return nil
}

// Login checks credentials and issues a session. Unverified accounts may log
// in; blocked ones may not.
func (s *accountService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validateLoginRequest(req); err != nil {
		return models.LoginResult{}, err
	}

	account, err := s.accounts.FindByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("error finding account: %w", err)
	}

	if account.Password != req.Password {
		return models.LoginResult{}, ErrInvalidCredentials
	}

	if account.IsBlocked() {
		return models.LoginResult{}, ErrAccountBlocked
	}

	now := s.now().UTC()
	err = s.accounts.UpdateLastLogin(ctx, account.ID, now)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("error saving last login: %w", err)
	}
	account.LastLogin = &now

	session, err := s.sessions.Issue(ctx, account.ID)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("error issuing session: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "accountService.Login").Int64("account_id", account.ID).Msg("account logged in")

	return models.LoginResult{Account: account, Session: session}, nil
}

func (s *accountService) BulkBlock(ctx context.Context, caller models.Session, ids []int64) (models.BlockResult, error) {
	log := logger.FromContext(ctx)

	ids = distinctIDs(ids)
	if len(ids) == 0 {
		return models.BlockResult{}, ErrNoIDsProvided
	}

	blocked, err := s.accounts.SetStatus(ctx, ids, models.StatusBlocked)
	if err != nil {
		return models.BlockResult{}, fmt.Errorf("error blocking accounts: %w", err)
	}

	result := models.BlockResult{
		SelfBlocked: caller.AccountID != 0 && slices.Contains(blocked, caller.AccountID),
	}

	if result.SelfBlocked {
		// the account is blocked already, so the guard rejects this session
		// even if revocation fails
		if revokeErr := s.sessions.Revoke(ctx, caller); revokeErr != nil {
			log.Err(revokeErr).
				Str("func", "accountService.BulkBlock").
				Int64("account_id", caller.AccountID).
				Msg("failed to revoke own session")
		}
	}

	log.Info().
		Str("func", "accountService.BulkBlock").
		Int("blocked", len(blocked)).
		Bool("self_blocked", result.SelfBlocked).
		Msg("accounts blocked")

	return result, nil
}

// BulkUnblock restores each account to unverified when its verification is
// still pending and to active otherwise.
func (s *accountService) BulkUnblock(ctx context.Context, ids []int64) error {
	ids = distinctIDs(ids)
	if len(ids) == 0 {
		return ErrNoIDsProvided
	}

	unblocked, err := s.accounts.Unblock(ctx, ids)
	if err != nil {
		return fmt.Errorf("error unblocking accounts: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "accountService.BulkUnblock").Int("unblocked", len(unblocked)).Msg("accounts unblocked")
	return nil
}

// DeleteUnverified deletes the unverified accounts among ids and skips the
// rest. An empty result is not an error.
func (s *accountService) DeleteUnverified(ctx context.Context, ids []int64) ([]int64, error) {
	ids = distinctIDs(ids)
	if len(ids) == 0 {
		return nil, ErrNoAccountsSelected
	}

	deleted, err := s.accounts.DeleteUnverified(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error deleting unverified accounts: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "accountService.DeleteUnverified").Int("deleted", len(deleted)).Msg("unverified accounts deleted")
	return deleted, nil
}

// Delete removes the accounts in ids regardless of their status.
func (s *accountService) Delete(ctx context.Context, ids []int64) (models.DeleteResult, error) {
	ids = distinctIDs(ids)
	if len(ids) == 0 {
		return models.DeleteResult{}, ErrNoIDsProvided
	}

	deleted, err := s.accounts.DeleteMany(ctx, ids)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("error deleting accounts: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "accountService.Delete").Int("deleted", len(deleted)).Msg("accounts deleted")
	return models.DeleteResult{DeletedCount: len(deleted), DeletedIDs: deleted}, nil
}

func (s *accountService) List(ctx context.Context) ([]models.AccountView, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}

	views := make([]models.AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, account.View())
	}
	return views, nil
}

func (s *accountService) PurgeStaleUnverified(ctx context.Context, ttl time.Duration) ([]int64, error) {
	deleted, err := s.accounts.DeleteStaleUnverified(ctx, s.now().UTC().Add(-ttl))
	if err != nil {
		return nil, fmt.Errorf("error purging stale accounts: %w", err)
	}
	return deleted, nil
}
