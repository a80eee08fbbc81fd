// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/internal/session"
)

type Handler struct {
	services *service.Services
	cookie   session.Cookie

	// publicURL prefixes verification links; empty means request scheme and host.
	publicURL      string
	loginPage      string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		cookie:         session.NewCookie(cfg.Session.CookieName),
		publicURL:      strings.TrimRight(strings.TrimSpace(cfg.App.PublicURL), "/"),
		loginPage:      cfg.App.LoginPage,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
