// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-code-review/internal/app"
	"github.com/MKhiriev/go-code-review/internal/logger"
	"github.com/MKhiriev/go-code-review/internal/utils"
	"github.com/MKhiriev/go-code-review/models"
)

// auth loads the session of the request from the session store and stores it
// in the request context under [utils.SessionCtxKey].
//
// A request without a valid session is answered with
// {"success":false,"message":"Not authenticated"} and never reaches next.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := h.sessions.Load(r)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Str("uri", r.RequestURI).Msg("unauthenticated request")
			respond(w, r, models.Fail(app.MsgNotAuthenticated))
			return
		}

		ctx := utils.WithSession(r.Context(), s)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
