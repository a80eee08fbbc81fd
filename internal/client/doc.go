// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line administration client.
//
// The client runs one command per invocation against the account service
// through [adapter.AccountAPI]. Privileged commands log in first with the
// configured credentials; the session cookie lives only for the duration of
// the command.
package client
