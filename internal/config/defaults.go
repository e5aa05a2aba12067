// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultGroqBaseURL    = "https://api.groq.com/openai/v1"
	DefaultMistralBaseURL = "https://api.mistral.ai/v1"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionStore:    SessionStoreCookie,
			SessionDuration: 24 * time.Hour,
			TokenIssuer:     "go-code-review",
			OTPTTL:          10 * time.Minute,
			ResetTokenTTL:   15 * time.Minute,
			LogLevel:        "debug",
		},
		Storage: Storage{
			DB: DB{DSN: "sqlite://code_review.db"},
		},
		Server: Server{
			HTTPAddress:     "localhost:5000",
			RequestTimeout:  90 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			Groq:           Provider{BaseURL: DefaultGroqBaseURL},
			Mistral:        Provider{BaseURL: DefaultMistralBaseURL},
			RequestTimeout: 60 * time.Second,
		},
		SMTP: SMTP{
			Port: 587,
		},
		Workers: Workers{
			OTPCleanupInterval: 5 * time.Minute,
		},
	}
}
