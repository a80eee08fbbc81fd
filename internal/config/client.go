// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"dario.cat/mergo"
)

// ErrInvalidClientConfigs indicates an unusable command-line client setup.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

// ClientConfig configures the command-line administration client.
type ClientConfig struct {
	// ServerURL is the base URL of the account service.
	// Env: ACCOUNT_SERVER_URL
	ServerURL string `env:"ACCOUNT_SERVER_URL"`

	// Timeout bounds every request made by the client.
	// Env: ACCOUNT_CLIENT_TIMEOUT
	Timeout time.Duration `env:"ACCOUNT_CLIENT_TIMEOUT"`

	// Email and Password authenticate privileged commands.
	// Env: ACCOUNT_EMAIL, ACCOUNT_PASSWORD
	Email    string `env:"ACCOUNT_EMAIL"`
	Password string `env:"ACCOUNT_PASSWORD"`

	// LogLevel is a zerolog level name.
	// Env: ACCOUNT_LOG_LEVEL
	LogLevel string `env:"ACCOUNT_LOG_LEVEL"`
}

// ClientDefaults returns the values used for every client field that no
// source set.
func ClientDefaults() ClientConfig {
	return ClientConfig{
		ServerURL: "http://localhost:8080",
		Timeout:   10 * time.Second,
		LogLevel:  "info",
	}
}

// GetClientConfig merges environment variables and flags (flags win) over
// [ClientDefaults]. The positional arguments left after the flags are
// returned as the command to run.
//
// Flags:
//
//	-s server base URL
//	-t request timeout
//	-email login email
//	-password login password
//	-log-level log level
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	flagCfg := &ClientConfig{}
	fs := flag.NewFlagSet("go-account-client", flag.ContinueOnError)
	fs.StringVar(&flagCfg.ServerURL, "s", "", "Server base URL")
	fs.DurationVar(&flagCfg.Timeout, "t", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&flagCfg.Email, "email", "", "Login email")
	fs.StringVar(&flagCfg.Password, "password", "", "Login password")
	fs.StringVar(&flagCfg.LogLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{envCfg, flagCfg} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	if err := mergo.Merge(cfg, ClientDefaults()); err != nil {
		return nil, nil, fmt.Errorf("error applying default configs: %w", err)
	}

	if strings.TrimSpace(cfg.ServerURL) == "" || cfg.Timeout < 0 {
		return nil, nil, ErrInvalidClientConfigs
	}

	return cfg, fs.Args(), nil
}
