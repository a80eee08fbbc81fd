// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-account-keeper/internal/utils"
)

func (h *Handler) diagDB(w http.ResponseWriter, r *http.Request) {
	if err := h.services.DiagnosticsService.PingDatabase(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, "DB OK", http.StatusOK)
}

func (h *Handler) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.loginPage, http.StatusFound)
}
