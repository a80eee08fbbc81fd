// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-keeper/internal/config"
)

func TestMemoryRevocationStore(t *testing.T) {
	store := NewMemoryRevocationStore().(*memoryRevocationStore)
	now := testNow
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "a", time.Minute))
	require.NoError(t, store.Revoke(ctx, "  ", time.Minute))

	revoked, err := store.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "b")
	require.NoError(t, err)
	assert.False(t, revoked)

	now = now.Add(2 * time.Minute)

	revoked, err = store.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.Empty(t, store.items)
}

type fakeRedis struct {
	keys     map[string]time.Duration
	setErr   error
	existErr error
}

func (f *fakeRedis) Set(_ context.Context, key string, _ any, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.keys[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Exists(_ context.Context, keys ...string) *redis.IntCmd {
	if f.existErr != nil {
		return redis.NewIntResult(0, f.existErr)
	}
	var n int64
	for _, key := range keys {
		if _, ok := f.keys[key]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisRevocationStore(t *testing.T) {
	client := &fakeRedis{keys: map[string]time.Duration{}}
	store := NewRedisRevocationStore(client)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Hour))
	assert.Equal(t, time.Hour, client.keys["session:revoked:jti-1"])

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)

	revoked, err = store.IsRevoked(ctx, "")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisRevocationStore_Errors(t *testing.T) {
	client := &fakeRedis{
		keys:     map[string]time.Duration{},
		setErr:   errors.New("READONLY"),
		existErr: errors.New("connection refused"),
	}
	store := NewRedisRevocationStore(client)

	assert.Error(t, store.Revoke(context.Background(), "jti", time.Hour))

	_, err := store.IsRevoked(context.Background(), "jti")
	assert.Error(t, err)
}

func TestNewRevocationStore_FallsBackToMemory(t *testing.T) {
	store := NewRevocationStore(config.Redis{})
	_, ok := store.(*memoryRevocationStore)
	assert.True(t, ok)

	store = NewRevocationStore(config.Redis{Address: "localhost:6379"})
	_, ok = store.(*redisRevocationStore)
	assert.True(t, ok)
}
