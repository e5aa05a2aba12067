// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrSecretMismatch is returned by CompareSecret when the plain value does not
// match the hash.
var ErrSecretMismatch = errors.New("secret does not match hash")

// HashSecret returns the salted bcrypt hash of a password or a passcode.
// Inputs longer than 72 bytes are rejected by bcrypt.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing secret: %w", err)
	}
	return string(hash), nil
}

// CompareSecret checks a plain value against a hash produced by HashSecret.
//
// Returns ErrSecretMismatch on a mismatch and a wrapped error when the hash
// itself is malformed.
func CompareSecret(hash, secret string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrSecretMismatch
	default:
		return fmt.Errorf("error comparing secret: %w", err)
	}
}
