// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-account-keeper/internal/config"
)

// RevocationStore remembers revoked session ids until their ttl elapses.
type RevocationStore interface {
	Revoke(ctx context.Context, id string, ttl time.Duration) error
	IsRevoked(ctx context.Context, id string) (bool, error)
}

// NewRevocationStore returns a Redis backed store when an address is
// configured and an in-process one otherwise.
func NewRevocationStore(cfg config.Redis) RevocationStore {
	if strings.TrimSpace(cfg.Address) == "" {
		return NewMemoryRevocationStore()
	}

	return NewRedisRevocationStore(redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	}))
}

type memoryRevocationStore struct {
	mu    sync.Mutex
	items map[string]time.Time
	now   func() time.Time
}

// NewMemoryRevocationStore keeps revocations in process memory. Entries are
// dropped lazily once expired.
func NewMemoryRevocationStore() RevocationStore {
	return &memoryRevocationStore{
		items: make(map[string]time.Time),
		now:   time.Now,
	}
}

func (s *memoryRevocationStore) Revoke(_ context.Context, id string, ttl time.Duration) error {
	if strings.TrimSpace(id) == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, exp := range s.items {
		if now.After(exp) {
			delete(s.items, key)
		}
	}
	s.items[id] = now.Add(ttl)
	return nil
}

func (s *memoryRevocationStore) IsRevoked(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.items[id]
	if !ok {
		return false, nil
	}
	if s.now().After(exp) {
		delete(s.items, id)
		return false, nil
	}
	return true, nil
}

// redisCommands is the subset of the go-redis client used for revocations.
type redisCommands interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisRevocationStore struct {
	client redisCommands
	prefix string
}

// NewRedisRevocationStore stores revocations as expiring keys so that every
// server instance sharing the Redis sees them.
func NewRedisRevocationStore(client redisCommands) RevocationStore {
	return &redisRevocationStore{
		client: client,
		prefix: "session:revoked:",
	}
}

func (s *redisRevocationStore) Revoke(ctx context.Context, id string, ttl time.Duration) error {
	if strings.TrimSpace(id) == "" {
		return nil
	}
	return s.client.Set(ctx, s.prefix+id, 1, ttl).Err()
}

func (s *redisRevocationStore) IsRevoked(ctx context.Context, id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, nil
	}

	n, err := s.client.Exists(ctx, s.prefix+id).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
