// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
)

// validate checks the merged [StructuredConfig] before it is used at startup.
// All violated groups are reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.SessionSecret == "" || cfg.App.TokenIssuer == "" ||
		cfg.App.SessionDuration <= 0 || cfg.App.OTPTTL <= 0 || cfg.App.ResetTokenTTL <= 0 {
		errs = append(errs, ErrInvalidAppConfigs)
	}

	switch cfg.App.SessionStore {
	case SessionStoreCookie:
	case SessionStoreRedis:
		if cfg.Storage.Redis.Address == "" {
			errs = append(errs, ErrInvalidStorageConfigs)
		}
	default:
		errs = append(errs, ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	if cfg.Adapter.RequestTimeout <= 0 ||
		(cfg.Adapter.Groq.APIKey != "" && cfg.Adapter.Groq.BaseURL == "") ||
		(cfg.Adapter.Mistral.APIKey != "" && cfg.Adapter.Mistral.BaseURL == "") {
		errs = append(errs, ErrInvalidAdapterConfigs)
	}

	if cfg.SMTP.Host != "" && (cfg.SMTP.Port <= 0 || cfg.SMTP.Port > 65535) {
		errs = append(errs, ErrInvalidSMTPConfigs)
	}

	if cfg.Workers.OTPCleanupInterval <= 0 {
		errs = append(errs, ErrInvalidWorkerConfigs)
	}

	return errors.Join(errs...)
}
