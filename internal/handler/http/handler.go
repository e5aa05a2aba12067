// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-code-review/internal/logger"
	"github.com/MKhiriev/go-code-review/internal/service"
	"github.com/MKhiriev/go-code-review/internal/session"
	"github.com/MKhiriev/go-code-review/internal/utils"
	"github.com/MKhiriev/go-code-review/models"
)

// maxBodyBytes bounds a decoded request body. Code submissions are limited to
// 100 KiB by validation; the rest is JSON overhead and chat history.
const maxBodyBytes = 1 << 20

type Handler struct {
	services *service.Services
	sessions session.Store

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions session.Store, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		sessions:       sessions,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}

// decodeJSON reads the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// respond writes resp as the 200 OK JSON envelope.
func respond(w http.ResponseWriter, r *http.Request, resp models.APIResponse) {
	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}

// fail logs err and writes the failure envelope with the message mapped from
// it. overrides take precedence over the default mapping.
func fail(w http.ResponseWriter, r *http.Request, err error, overrides ...errorMessage) {
	message := messageFromError(err, overrides...)

	log := logger.FromRequest(r)
	if message == internalErrorMessage {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("uri", r.RequestURI).Str("message", message).Msg("request rejected")
	}

	respond(w, r, models.Fail(message))
}

// sessionFromRequest returns the session stored by the auth middleware.
func sessionFromRequest(r *http.Request) (models.Session, error) {
	s, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		return models.Session{}, ErrNoSessionInContext
	}
	return s, nil
}
