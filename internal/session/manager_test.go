// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-keeper/internal/config"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	m := NewManager(config.Session{
		SignKey:  "secret",
		Issuer:   "go-account-keeper",
		Duration: 24 * time.Hour,
	}, NewMemoryRevocationStore())
	m.now = func() time.Time { return testNow }
	return m
}

func TestManager_IssueAndParse(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	issued, err := m.Issue(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, issued.SignedString)
	assert.Equal(t, int64(42), issued.AccountID)
	assert.NotEmpty(t, issued.ID)
	assert.Equal(t, testNow.Add(24*time.Hour), issued.ExpiresAt.Time)

	parsed, err := m.Parse(ctx, issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.AccountID)
	assert.Equal(t, issued.ID, parsed.ID)
	assert.Equal(t, issued.SignedString, parsed.SignedString)
}

func TestManager_IssueUniqueIDs(t *testing.T) {
	m := newTestManager(t)

	first, err := m.Issue(context.Background(), 1)
	require.NoError(t, err)
	second, err := m.Issue(context.Background(), 1)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestManager_IssueInvalidParams(t *testing.T) {
	m := NewManager(config.Session{Issuer: "iss", Duration: time.Hour}, NewMemoryRevocationStore())

	_, err := m.Issue(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestManager_ParseRejects(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	issued, err := m.Issue(ctx, 7)
	require.NoError(t, err)

	other := NewManager(config.Session{SignKey: "other", Issuer: "go-account-keeper", Duration: time.Hour}, NewMemoryRevocationStore())
	foreign, err := other.Issue(ctx, 7)
	require.NoError(t, err)

	otherIssuer := NewManager(config.Session{SignKey: "secret", Issuer: "someone-else", Duration: time.Hour}, NewMemoryRevocationStore())
	wrongIssuer, err := otherIssuer.Issue(ctx, 7)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "empty", token: "", want: ErrNoSession},
		{name: "garbage", token: "not-a-token", want: ErrInvalidSession},
		{name: "tampered", token: issued.SignedString + "x", want: ErrInvalidSession},
		{name: "foreign key", token: foreign.SignedString, want: ErrInvalidSession},
		{name: "wrong issuer", token: wrongIssuer.SignedString, want: ErrInvalidSession},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Parse(ctx, tt.token)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestManager_ParseExpired(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	issued, err := m.Issue(ctx, 7)
	require.NoError(t, err)

	m.now = func() time.Time { return testNow.Add(25 * time.Hour) }

	_, err = m.Parse(ctx, issued.SignedString)
	assert.ErrorIs(t, err, ErrInvalidSession)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestManager_Revoke(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	issued, err := m.Issue(ctx, 9)
	require.NoError(t, err)
	sibling, err := m.Issue(ctx, 9)
	require.NoError(t, err)

	require.NoError(t, m.Revoke(ctx, issued))

	_, err = m.Parse(ctx, issued.SignedString)
	assert.ErrorIs(t, err, ErrRevokedSession)

	_, err = m.Parse(ctx, sibling.SignedString)
	assert.NoError(t, err)
}

type failingRevocations struct{}

func (failingRevocations) Revoke(context.Context, string, time.Duration) error {
	return errors.New("store down")
}

func (failingRevocations) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("store down")
}

func TestManager_RevocationStoreErrors(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	issued, err := m.Issue(ctx, 3)
	require.NoError(t, err)

	m.revocations = failingRevocations{}

	assert.Error(t, m.Revoke(ctx, issued))

	_, err = m.Parse(ctx, issued.SignedString)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidSession)
}
