// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the account service.
//
// It exposes route wiring, request handlers and middleware for the REST API.
// Cookie-based session authentication, request tracing, access logging,
// response compression and request timeouts are handled in this package
// before requests are delegated to the service layer.
package http
