// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-code-review/internal/utils"
	"github.com/MKhiriev/go-code-review/models"
)

// sessionAudience keeps session tokens apart from other tokens signed with
// the same secret.
const sessionAudience = "session"

type cookieStore struct {
	secret string
	issuer string
	cookie cookieSettings
}

func newCookieStore(secret, issuer string, cookie cookieSettings) *cookieStore {
	return &cookieStore{secret: secret, issuer: issuer, cookie: cookie}
}

// Save implements [Store]. The session is encoded as an HS256 JWT with the
// email as subject and the name in a private claim.
func (s *cookieStore) Save(_ context.Context, w http.ResponseWriter, session models.Session) error {
	now := time.Now()
	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   session.Email,
			Audience:  jwt.ClaimStrings{sessionAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cookie.duration)),
		},
		Name: session.Name,
	}

	token, err := utils.SignClaims(claims, s.secret)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}

	s.cookie.set(w, token)
	return nil
}

// Load implements [Store].
func (s *cookieStore) Load(r *http.Request) (models.Session, error) {
	token, err := readCookie(r)
	if err != nil {
		return models.Session{}, err
	}

	var claims models.SessionClaims
	if err = utils.ParseClaims(token, s.secret, s.issuer, sessionAudience, &claims); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	return claims.Session(), nil
}

// Clear implements [Store]. A stateless session cannot be revoked, only the
// cookie is expired.
func (s *cookieStore) Clear(_ context.Context, w http.ResponseWriter, _ *http.Request) error {
	s.cookie.expire(w)
	return nil
}
