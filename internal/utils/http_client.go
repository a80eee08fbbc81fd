// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"net/http/cookiejar"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client with its own cookie jar, so a session
// cookie set by a login response is replayed on subsequent requests.
//
// Example usage:
//
//	client, err := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com/api/user/all")
func NewHTTPClient() (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("error creating cookie jar: %w", err)
	}

	return &HTTPClient{Client: resty.New().SetCookieJar(jar)}, nil
}
