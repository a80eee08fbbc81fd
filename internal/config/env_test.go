// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_PUBLIC_URL": "https://accounts.example.com",
		"APP_LOGIN_PAGE": "/signin.html",
		"APP_LOG_LEVEL":  "info",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":  "30s",
		"SERVER_SHUTDOWN_TIMEOUT": "5s",

		// Storage has nested prefixes: STORAGE_ + DB_ / REDIS_
		"STORAGE_DB_DRIVER":         "sqlite3",
		"STORAGE_DB_DATABASE_URI":   "file:accounts.db",
		"STORAGE_DB_MAX_OPEN_CONNS": "4",
		"STORAGE_REDIS_ADDRESS":     "localhost:6379",
		"STORAGE_REDIS_PASSWORD":    "secret",
		"STORAGE_REDIS_DB":          "2",

		"SESSION_SIGN_KEY":    "jwt_secret",
		"SESSION_ISSUER":      "test_issuer",
		"SESSION_DURATION":    "2h",
		"SESSION_COOKIE_NAME": "sid",

		"WORKERS_CLEANUP_INTERVAL": "1m",
		"WORKERS_UNVERIFIED_TTL":   "72h",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "https://accounts.example.com", cfg.App.PublicURL)
	assert.Equal(t, "/signin.html", cfg.App.LoginPage)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:accounts.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 4, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, "secret", cfg.Storage.Redis.Password)
	assert.Equal(t, 2, cfg.Storage.Redis.DB)

	assert.Equal(t, "jwt_secret", cfg.Session.SignKey)
	assert.Equal(t, "test_issuer", cfg.Session.Issuer)
	assert.Equal(t, 2*time.Hour, cfg.Session.Duration)
	assert.Equal(t, "sid", cfg.Session.CookieName)

	assert.Equal(t, time.Minute, cfg.Workers.CleanupInterval)
	assert.Equal(t, 72*time.Hour, cfg.Workers.UnverifiedTTL)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Session.Duration)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SESSION_DURATION", "forever")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	t.Setenv("STORAGE_REDIS_DB", "zero")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}
