// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session keeps the signed-in user between requests.
//
// Two [Store] implementations exist: a stateless one holding the session as a
// signed JWT inside the cookie, and a Redis-backed one where the cookie only
// carries an opaque session id. [NewStore] selects one from configuration.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/MKhiriev/go-code-review/models"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

// Store persists a [models.Session] across requests.
type Store interface {
	// Save establishes s for the client by setting the session cookie.
	Save(ctx context.Context, w http.ResponseWriter, s models.Session) error

	// Load returns the session carried by r. [ErrNoSession] is returned when
	// the request has no session cookie or the session is gone,
	// [ErrInvalidSession] when the cookie cannot be trusted.
	Load(r *http.Request) (models.Session, error)

	// Clear removes the session and expires the cookie.
	Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// RedisClient is the subset of *redis.Client used by the Redis store.
type RedisClient interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}
