// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
)

// auth admits a request only when its session cookie belongs to an existing,
// non-blocked account. The caller's session is stored in the request context
// under [utils.SessionCtxKey].
//
// Missing, tampered, expired and revoked sessions, as well as sessions of
// deleted or blocked accounts, are answered with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := h.cookie.Read(r)
		if err != nil {
			log.Debug().Err(err).Msg("no session cookie")
			writeError(w, r, service.ErrUnauthenticated)
			return
		}

		ctx := r.Context()
		sess, err := h.services.AccessGuard.Authorize(ctx, token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, sess)))
	})
}
