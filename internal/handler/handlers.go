// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers of the service.
package handler

import (
	"github.com/MKhiriev/go-code-review/internal/config"
	"github.com/MKhiriev/go-code-review/internal/handler/http"
	"github.com/MKhiriev/go-code-review/internal/logger"
	"github.com/MKhiriev/go-code-review/internal/service"
	"github.com/MKhiriev/go-code-review/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions session.Store, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if sessions == nil {
		return nil, errNoSessionStore
	}

	return &Handlers{
		HTTP: http.NewHandler(services, sessions, cfg.RequestTimeout, logger),
	}, nil
}
