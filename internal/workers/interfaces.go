// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "context"

type Worker interface {
	// Run blocks until ctx is cancelled.
	Run(ctx context.Context)
}
