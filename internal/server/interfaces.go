// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

type Server interface {
	// RunServer serves until ctx is cancelled or a listener fails.
	RunServer(ctx context.Context) error

	Shutdown(ctx context.Context) error
}
