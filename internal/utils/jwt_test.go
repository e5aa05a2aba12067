// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClaims(subject string, ttl time.Duration, audience ...string) *jwt.RegisteredClaims {
	now := time.Now()
	return &jwt.RegisteredClaims{
		Issuer:    "test-issuer",
		Subject:   subject,
		Audience:  audience,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func TestSignClaims_EmptyKey(t *testing.T) {
	_, err := SignClaims(newClaims("a@b.c", time.Hour), "")
	assert.Error(t, err)
}

func TestParseClaims_Success(t *testing.T) {
	token, err := SignClaims(newClaims("a@b.c", time.Hour), "secret-key")
	require.NoError(t, err)

	var parsed jwt.RegisteredClaims
	err = ParseClaims(token, "secret-key", "test-issuer", "", &parsed)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", parsed.Subject)
}

func TestParseClaims_InvalidKey(t *testing.T) {
	token, err := SignClaims(newClaims("a@b.c", time.Hour), "correct-key")
	require.NoError(t, err)

	var parsed jwt.RegisteredClaims
	assert.Error(t, ParseClaims(token, "wrong-key", "test-issuer", "", &parsed))
}

func TestParseClaims_Expired(t *testing.T) {
	token, err := SignClaims(newClaims("a@b.c", -time.Second), "key")
	require.NoError(t, err)

	var parsed jwt.RegisteredClaims
	err = ParseClaims(token, "key", "test-issuer", "", &parsed)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseClaims_WrongIssuer(t *testing.T) {
	token, err := SignClaims(newClaims("a@b.c", time.Hour), "key")
	require.NoError(t, err)

	var parsed jwt.RegisteredClaims
	assert.Error(t, ParseClaims(token, "key", "fake-issuer", "", &parsed))
}

func TestParseClaims_Audience(t *testing.T) {
	token, err := SignClaims(newClaims("a@b.c", time.Hour, "password-reset"), "key")
	require.NoError(t, err)

	var parsed jwt.RegisteredClaims
	assert.NoError(t, ParseClaims(token, "key", "test-issuer", "password-reset", &parsed))
	assert.Error(t, ParseClaims(token, "key", "test-issuer", "session", &parsed))
}

func TestParseClaims_EmptySubject(t *testing.T) {
	token, err := SignClaims(newClaims("", time.Hour), "key")
	require.NoError(t, err)

	var parsed jwt.RegisteredClaims
	assert.Error(t, ParseClaims(token, "key", "test-issuer", "", &parsed))
}

func TestParseClaims_Malformed(t *testing.T) {
	var parsed jwt.RegisteredClaims
	assert.Error(t, ParseClaims("not.a.token", "key", "iss", "", &parsed))
}
