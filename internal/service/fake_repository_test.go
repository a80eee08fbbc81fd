// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/session"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/models"
)

// memoryAccounts is an in-memory AccountRepository with a unique email
// index, used where a sequence of real state transitions matters more than
// individual calls.
type memoryAccounts struct {
	mu       sync.Mutex
	nextID   int64
	accounts map[int64]models.Account
}

func newMemoryAccounts() *memoryAccounts {
	return &memoryAccounts{accounts: make(map[int64]models.Account)}
}

func (m *memoryAccounts) find(match func(models.Account) bool) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, account := range m.accounts {
		if match(account) {
			return account, nil
		}
	}
	return models.Account{}, store.ErrAccountNotFound
}

func (m *memoryAccounts) FindByID(_ context.Context, id int64) (models.Account, error) {
	return m.find(func(a models.Account) bool { return a.ID == id })
}

func (m *memoryAccounts) FindByEmail(_ context.Context, email string) (models.Account, error) {
	return m.find(func(a models.Account) bool { return a.Email == email })
}

func (m *memoryAccounts) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.FindByEmail(ctx, email)
	return err == nil, nil
}

func (m *memoryAccounts) Create(_ context.Context, account models.Account) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.accounts {
		if existing.Email == account.Email {
			return models.Account{}, store.ErrEmailAlreadyExists
		}
	}

	m.nextID++
	account.ID = m.nextID
	m.accounts[account.ID] = account
	return account, nil
}

func (m *memoryAccounts) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[id]
	if !ok {
		return store.ErrAccountNotFound
	}
	account.LastLogin = &at
	m.accounts[id] = account
	return nil
}

func (m *memoryAccounts) ConsumeVerificationToken(_ context.Context, token string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, account := range m.accounts {
		if account.VerificationToken != nil && *account.VerificationToken == token {
			account.VerificationToken = nil
			account.Status = models.StatusActive
			m.accounts[id] = account
			return id, nil
		}
	}
	return 0, store.ErrAccountNotFound
}

// updateStatus applies next to the status of every existing account in ids.
func (m *memoryAccounts) updateStatus(ids []int64, next func(models.Account) models.AccountStatus) []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	updated := make([]int64, 0, len(ids))
	for _, id := range ids {
		if account, ok := m.accounts[id]; ok {
			account.Status = next(account)
			m.accounts[id] = account
			updated = append(updated, id)
		}
	}
	return updated
}

func (m *memoryAccounts) SetStatus(_ context.Context, ids []int64, status models.AccountStatus) ([]int64, error) {
	return m.updateStatus(ids, func(models.Account) models.AccountStatus { return status }), nil
}

func (m *memoryAccounts) Unblock(_ context.Context, ids []int64) ([]int64, error) {
	return m.updateStatus(ids, func(a models.Account) models.AccountStatus {
		if a.HasPendingVerification() {
			return models.StatusUnverified
		}
		return models.StatusActive
	}), nil
}

func (m *memoryAccounts) deleteWhere(ids []int64, match func(models.Account) bool) []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	deleted := make([]int64, 0)
	for _, id := range ids {
		if account, ok := m.accounts[id]; ok && match(account) {
			delete(m.accounts, id)
			deleted = append(deleted, id)
		}
	}
	return deleted
}

func (m *memoryAccounts) DeleteMany(_ context.Context, ids []int64) ([]int64, error) {
	return m.deleteWhere(ids, func(models.Account) bool { return true }), nil
}

func (m *memoryAccounts) DeleteUnverified(_ context.Context, ids []int64) ([]int64, error) {
	return m.deleteWhere(ids, func(a models.Account) bool { return a.Status == models.StatusUnverified }), nil
}

func (m *memoryAccounts) DeleteStaleUnverified(_ context.Context, createdBefore time.Time) ([]int64, error) {
	m.mu.Lock()
	ids := make([]int64, 0, len(m.accounts))
	for id := range m.accounts {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	return m.deleteWhere(ids, func(a models.Account) bool {
		return a.Status == models.StatusUnverified && a.CreatedAt.Before(createdBefore)
	}), nil
}

func (m *memoryAccounts) List(_ context.Context) ([]models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]models.Account, 0, len(m.accounts))
	for _, account := range m.accounts {
		result = append(result, account)
	}
	slices.SortFunc(result, func(a, b models.Account) int {
		return int(a.ID - b.ID)
	})
	return result, nil
}

// stubSessions issues sessions with sequential ids and remembers revocations.
type stubSessions struct {
	mu      sync.Mutex
	issued  map[string]models.Session
	revoked map[string]bool
	next    int
}

func newStubSessions() *stubSessions {
	return &stubSessions{issued: map[string]models.Session{}, revoked: map[string]bool{}}
}

func (s *stubSessions) Issue(_ context.Context, accountID int64) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	token := "session-" + strconv.Itoa(s.next)
	sess := models.Session{AccountID: accountID, SignedString: token}
	sess.ID = token
	s.issued[token] = sess
	return sess, nil
}

func (s *stubSessions) Parse(_ context.Context, token string) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.issued[token]
	if !ok || s.revoked[token] {
		return models.Session{}, session.ErrRevokedSession
	}
	return sess, nil
}

func (s *stubSessions) Revoke(_ context.Context, sess models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.revoked[sess.ID] = true
	return nil
}
