// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-redis/redis/v8"

	"github.com/MKhiriev/go-code-review/internal/utils"
	"github.com/MKhiriev/go-code-review/models"
)

const redisKeyPrefix = "session:"

type redisStore struct {
	client RedisClient
	ids    *utils.UUIDGenerator
	cookie cookieSettings
}

func newRedisStore(client RedisClient, cookie cookieSettings) *redisStore {
	return &redisStore{client: client, ids: utils.NewUUIDGenerator(), cookie: cookie}
}

func redisKey(id string) string {
	return redisKeyPrefix + id
}

// Save implements [Store]. The session is stored under a fresh id with a TTL
// equal to the session duration.
func (s *redisStore) Save(ctx context.Context, w http.ResponseWriter, session models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	id := s.ids.Generate()
	if err = s.client.Set(ctx, redisKey(id), payload, s.cookie.duration).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	s.cookie.set(w, id)
	return nil
}

// Load implements [Store].
func (s *redisStore) Load(r *http.Request) (models.Session, error) {
	id, err := readCookie(r)
	if err != nil {
		return models.Session{}, err
	}
	if !utils.IsValidID(id) {
		return models.Session{}, ErrInvalidSession
	}

	raw, err := s.client.Get(r.Context(), redisKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, ErrNoSession
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal(raw, &session); err != nil || session.IsZero() {
		return models.Session{}, ErrInvalidSession
	}

	return session, nil
}

// Clear implements [Store].
func (s *redisStore) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	s.cookie.expire(w)

	id, err := readCookie(r)
	if err != nil || !utils.IsValidID(id) {
		return nil
	}

	if err = s.client.Del(ctx, redisKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
