// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNoCommand          = errors.New("no command given")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrUsage              = errors.New("wrong arguments")
	ErrInvalidID          = errors.New("invalid account id")
	ErrMissingCredentials = errors.New("email and password are required for this command")
)
