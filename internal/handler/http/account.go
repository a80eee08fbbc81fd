// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
)

const (
	msgRegistered     = "Registered successfully. Please verify your email."
	msgLoggedIn       = "Login successful"
	msgSelfBlocked    = "You blocked your own account. Logging out..."
	msgBlocked        = "Selected users blocked."
	msgUnblocked      = "Selected users unblocked (verification preserved)."
	msgDeletedPattern = "Deleted %d user(s)."
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AccountService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Message:           msgRegistered,
		VerificationToken: result.VerificationToken,
		VerifyURL:         h.verifyURL(r, result.VerificationToken),
	}, http.StatusOK)
}

// verifyURL builds the link of the verification page for token.
func (h *Handler) verifyURL(r *http.Request, token string) string {
	base := h.publicURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}

	return base + "/verify.html?token=" + url.QueryEscape(token)
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AccountService.Verify(r.Context(), r.URL.Query().Get("token")); err != nil {
		writeError(w, r, err)
		return
	}

	http.Redirect(w, r, h.loginPage, http.StatusFound)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AccountService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.cookie.Write(w, result.Session)
	utils.WriteJSON(w, models.LoginResponse{
		Message: msgLoggedIn,
		Status:  result.Account.Status,
		ID:      result.Account.ID,
	}, http.StatusOK)
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.services.AccountService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, accounts, http.StatusOK)
}

func (h *Handler) block(w http.ResponseWriter, r *http.Request) {
	var req models.IDsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	caller, _ := utils.GetSessionFromContext(r.Context())

	result, err := h.services.AccountService.BulkBlock(r.Context(), caller, req.IDs)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if result.SelfBlocked {
		h.cookie.Clear(w)
		utils.WriteMessage(w, msgSelfBlocked, statusLoginTimeout)
		return
	}

	utils.WriteMessage(w, msgBlocked, http.StatusOK)
}

func (h *Handler) unblock(w http.ResponseWriter, r *http.Request) {
	var req models.IDsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AccountService.BulkUnblock(r.Context(), req.IDs); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, msgUnblocked, http.StatusOK)
}

func (h *Handler) deleteUnverified(w http.ResponseWriter, r *http.Request) {
	var req models.IDsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	deleted, err := h.services.AccountService.DeleteUnverified(r.Context(), req.IDs)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if len(deleted) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	utils.WriteJSON(w, models.DeleteUnverifiedResponse{Deleted: deleted}, http.StatusOK)
}

// delete accepts ids from the JSON body, a comma separated "ids" query
// parameter and a single "id" query parameter, in any combination.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	var req models.IDsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	ids := append(req.IDs, idsFromQuery(r.URL.Query())...)

	result, err := h.services.AccountService.Delete(r.Context(), ids)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeleteResponse{
		Message:    fmt.Sprintf(msgDeletedPattern, result.DeletedCount),
		DeletedIDs: result.DeletedIDs,
	}, http.StatusOK)
}

// idsFromQuery collects ids from "ids=1,2,3" and "id=4". Parts that are not
// integers are skipped.
func idsFromQuery(query url.Values) []int64 {
	var ids []int64

	for _, raw := range query["ids"] {
		for _, part := range strings.Split(raw, ",") {
			if id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64); err == nil {
				ids = append(ids, id)
			}
		}
	}

	if raw := query.Get("id"); raw != "" {
		if id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
			ids = append(ids, id)
		}
	}

	return ids
}

// decodeJSON decodes the request body into dst. An empty body leaves dst
// untouched.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}

	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return nil
}
