// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared across layers: context keys, password
// and passcode hashing, JSON response writing, the outbound HTTP client, JWT
// signing and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-code-review/models"
)

// contextKey is a private type for context keys, so that keys set here never
// collide with string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the auth middleware stores the
// authenticated [models.Session].
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying the session.
func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// GetSessionFromContext retrieves the session stored by the auth middleware.
//
// ok is false when no session is present, the value has an unexpected type
// or the session carries no email.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	if !ok || session.IsZero() {
		return models.Session{}, false
	}
	return session, true
}
