// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.redirectToLogin)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/diag/db", h.diagDB)

		r.Post("/api/user/register", h.register)
		r.Get("/api/user/verify", h.verify)
		r.Post("/api/user/login", h.login)
	})

	// routes for signed-in, non-blocked accounts
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/all", h.listAccounts)
		r.Post("/api/user/block", h.block)
		r.Post("/api/user/unblock", h.unblock)
		r.Post("/api/user/delete-unverified", h.deleteUnverified)
		r.Post("/api/user/delete", h.delete)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
