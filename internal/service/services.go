// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-code-review/internal/adapter"
	"github.com/MKhiriev/go-code-review/internal/config"
	"github.com/MKhiriev/go-code-review/internal/logger"
	"github.com/MKhiriev/go-code-review/internal/notify"
	"github.com/MKhiriev/go-code-review/internal/store"
	"github.com/MKhiriev/go-code-review/models"
)

type Services struct {
	AuthService    AuthService
	ReviewService  ReviewService
	HistoryService HistoryService
	AppInfoService AppInfoService
}

// NewServices wires every service with its validation wrapper.
func NewServices(storages *store.Storages, providers adapter.ProviderRegistry, mailer notify.Mailer, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthValidationService().Wrap(
			NewAuthService(storages.UserRepository, mailer, cfg.App, logger),
		),
		ReviewService: NewReviewValidationService().Wrap(
			NewReviewService(providers, storages.HistoryRepository, logger),
		),
		HistoryService: NewHistoryValidationService().Wrap(
			NewHistoryService(storages.HistoryRepository, mailer, logger),
		),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
