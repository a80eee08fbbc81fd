// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
)

// statusLoginTimeout is answered by the block endpoint when the caller
// blocked their own account.
const statusLoginTimeout = 440

type httpAccountAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAccountAdapter constructs the HTTP implementation of [AccountAPI]
// talking to the server at address. Redirects are not followed: the verify
// endpoint's redirect is the success signal.
func NewHTTPAccountAdapter(address string, timeout time.Duration, logger *logger.Logger) (AccountAPI, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client, err := utils.NewHTTPClient()
	if err != nil {
		return nil, err
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return &httpAccountAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAccountAdapter) jsonRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
}

func (h *httpAccountAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var result models.RegisterResponse

	resp, err := h.jsonRequest(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/user/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return result, nil
}

func (h *httpAccountAdapter) Verify(ctx context.Context, token string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("token", token).
		Get("/api/user/verify")
	if err != nil {
		return fmt.Errorf("verify request: %w", err)
	}
	if resp.StatusCode() == http.StatusFound {
		return nil
	}

	return mapHTTPError(resp)
}

func (h *httpAccountAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.jsonRequest(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/user/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.logger.Debug().Int64("account_id", result.ID).Msg("logged in")
	return result, nil
}

func (h *httpAccountAdapter) List(ctx context.Context) ([]models.AccountView, error) {
	var result []models.AccountView

	resp, err := h.jsonRequest(ctx).
		SetResult(&result).
		Get("/api/user/all")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result, nil
}

func (h *httpAccountAdapter) Block(ctx context.Context, ids []int64) (models.BlockResult, error) {
	resp, err := h.jsonRequest(ctx).
		SetBody(models.IDsRequest{IDs: ids}).
		Post("/api/user/block")
	if err != nil {
		return models.BlockResult{}, fmt.Errorf("block request: %w", err)
	}
	if resp.StatusCode() == statusLoginTimeout {
		return models.BlockResult{SelfBlocked: true}, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BlockResult{}, err
	}

	return models.BlockResult{}, nil
}

func (h *httpAccountAdapter) Unblock(ctx context.Context, ids []int64) error {
	resp, err := h.jsonRequest(ctx).
		SetBody(models.IDsRequest{IDs: ids}).
		Post("/api/user/unblock")
	if err != nil {
		return fmt.Errorf("unblock request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAccountAdapter) DeleteUnverified(ctx context.Context, ids []int64) ([]int64, error) {
	var result models.DeleteUnverifiedResponse

	resp, err := h.jsonRequest(ctx).
		SetBody(models.IDsRequest{IDs: ids}).
		SetResult(&result).
		Post("/api/user/delete-unverified")
	if err != nil {
		return nil, fmt.Errorf("delete unverified request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if resp.StatusCode() == http.StatusNoContent {
		return []int64{}, nil
	}

	return result.Deleted, nil
}

func (h *httpAccountAdapter) Delete(ctx context.Context, ids []int64) (models.DeleteResponse, error) {
	var result models.DeleteResponse

	resp, err := h.jsonRequest(ctx).
		SetBody(models.IDsRequest{IDs: ids}).
		SetResult(&result).
		Post("/api/user/delete")
	if err != nil {
		return models.DeleteResponse{}, fmt.Errorf("delete request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeleteResponse{}, err
	}

	return result, nil
}

func (h *httpAccountAdapter) PingDatabase(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/diag/db")
	if err != nil {
		return fmt.Errorf("diagnostics request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAccountAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var result models.AppBuildInfo

	resp, err := h.jsonRequest(ctx).
		SetResult(&result).
		Get("/api/version")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return result, nil
}
