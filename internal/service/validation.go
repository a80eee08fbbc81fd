// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/MKhiriev/go-account-keeper/models"
)

// verificationTokenBytes is 128 bits of entropy, 32 hex characters.
const verificationTokenBytes = 16

// normalizeEmail trims and lower-cases email before any storage or lookup.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizeRegisterRequest trims name and email. The password is kept as
// typed.
func normalizeRegisterRequest(req models.RegisterRequest) models.RegisterRequest {
	return models.RegisterRequest{
		Name:     strings.TrimSpace(req.Name),
		Email:    normalizeEmail(req.Email),
		Password: req.Password,
	}
}

// validateRegisterRequest expects a normalized request.
func validateRegisterRequest(req models.RegisterRequest) error {
	password := strings.TrimSpace(req.Password)

	err := validation.Validate(req.Name, validation.Required)
	if err == nil {
		err = validation.Validate(req.Email, validation.Required)
	}
	if err == nil {
		err = validation.Validate(password, validation.Required)
	}
	if err != nil {
		return ErrRegisterFieldsRequired
	}

	err = validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.RuneLength(1, models.MaxNameLength)),
		validation.Field(&req.Email, validation.RuneLength(1, models.MaxEmailLength)),
		validation.Field(&req.Password, validation.RuneLength(1, models.MaxPasswordLength)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFieldTooLong, err)
	}

	return nil
}

func validateLoginRequest(req models.LoginRequest) error {
	err := validation.Validate(req.Email, validation.Required)
	if err == nil {
		err = validation.Validate(strings.TrimSpace(req.Password), validation.Required)
	}
	if err != nil {
		return ErrCredentialsRequired
	}

	return nil
}

// newVerificationToken returns a random hex-encoded 128-bit token.
func newVerificationToken() (string, error) {
	buf := make([]byte, verificationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating verification token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// distinctIDs removes duplicates keeping the first occurrence order.
func distinctIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
