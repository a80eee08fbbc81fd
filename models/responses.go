// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the generic JSON body used for confirmations and errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterResponse is returned after a successful registration. The token is
// echoed back so the caller can deliver it out-of-band.
type RegisterResponse struct {
	Message           string `json:"message"`
	VerificationToken string `json:"verificationToken"`
	VerifyURL         string `json:"verifyUrl"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Message string        `json:"message"`
	Status  AccountStatus `json:"status"`
	ID      int64         `json:"id"`
}

// DeleteUnverifiedResponse lists the accounts removed by delete-unverified.
type DeleteUnverifiedResponse struct {
	Deleted []int64 `json:"deleted"`
}

// DeleteResponse reports the outcome of an unrestricted delete.
type DeleteResponse struct {
	Message    string  `json:"message"`
	DeletedIDs []int64 `json:"deletedIds"`
}
