// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-code-review/internal/app"
	"github.com/MKhiriev/go-code-review/internal/service"
	"github.com/MKhiriev/go-code-review/internal/session"
	"github.com/MKhiriev/go-code-review/internal/utils"
)

func TestAuth_StoresSessionInContext(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie(t, h))
	rec := httptest.NewRecorder()

	called := false
	h.auth(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		called = true
		s, ok := utils.GetSessionFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, testSession, s)
	})).ServeHTTP(rec, req)

	assert.True(t, called)
}

func TestAuth_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"no cookie", nil},
		{"empty cookie", &http.Cookie{Name: session.CookieName, Value: ""}},
		{"garbage cookie", &http.Cookie{Name: session.CookieName, Value: "not.a.jwt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()

			h.auth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				t.Fatal("next must not be called")
			})).ServeHTTP(rec, req)

			resp := decodeResponse(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, app.MsgNotAuthenticated, resp.Message)
		})
	}
}

func TestAuth_CookieFromOtherSecretRejected(t *testing.T) {
	signer := newTestHandler(t, &service.Services{})
	cookie := sessionCookie(t, signer)

	other := newTestHandler(t, &service.Services{})
	other.sessions = otherSecretStore(t)

	resp := decodeResponse(t, serve(t, other, http.MethodGet, "/api/me", "", cookie))
	assert.False(t, resp.Success)
}
