// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-code-review/internal/config"
	"github.com/MKhiriev/go-code-review/internal/logger"
)

// NewStore returns the [Store] selected by cfg.SessionStore. client is only
// used by the Redis store and may be nil otherwise.
func NewStore(cfg config.App, client RedisClient, logger *logger.Logger) (Store, error) {
	cookie := cookieSettings{duration: cfg.SessionDuration, secure: cfg.SecureCookie}

	switch cfg.SessionStore {
	case config.SessionStoreCookie, "":
		logger.Info().Str("func", "session.NewStore").Msg("using signed cookie sessions")
		return newCookieStore(cfg.SessionSecret, cfg.TokenIssuer, cookie), nil
	case config.SessionStoreRedis:
		if client == nil {
			return nil, ErrRedisRequired
		}
		logger.Info().Str("func", "session.NewStore").Msg("using redis sessions")
		return newRedisStore(client, cookie), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStore, cfg.SessionStore)
	}
}

type cookieSettings struct {
	duration time.Duration
	secure   bool
}

func (c cookieSettings) set(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.duration.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c cookieSettings) expire(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func readCookie(r *http.Request) (string, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", ErrNoSession
	}
	return c.Value, nil
}
