// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON: http.StatusBadRequest,

	service.ErrValidation: http.StatusBadRequest,
	service.ErrConflict:   http.StatusConflict,
	service.ErrAuth:       http.StatusUnauthorized,
	service.ErrNotFound:   http.StatusNotFound,
}

var errorMessageMap = map[error]string{
	ErrInvalidJSON: "Invalid JSON was passed.",

	service.ErrRegisterFieldsRequired:   "Name, email and password are required.",
	service.ErrFieldTooLong:             "Name, email or password is too long.",
	service.ErrEmailAlreadyRegistered:   "Email already registered.",
	service.ErrMissingVerificationToken: "Missing token.",
	service.ErrInvalidVerificationToken: "Invalid token.",
	service.ErrCredentialsRequired:      "Email and password are required.",
	service.ErrInvalidCredentials:       "Invalid email or password.",
	service.ErrAccountBlocked:           "Account is blocked.",
	service.ErrUnauthenticated:          "Unauthorized.",
	service.ErrNoIDsProvided:            "No user ids provided.",
	service.ErrNoAccountsSelected:       "Select at least one user.",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return http.StatusText(status)
}

// writeError answers with the status mapped from err and a {"message"} body.
// Infrastructure failures are logged in full and answered with the generic
// status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
		utils.WriteMessage(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteMessage(w, messageFromError(err, status), status)
}
