// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transport to the LLM providers used
// for code analysis, rewriting and chat.
//
// The primary abstraction is [Provider], which decouples the service layer
// from the concrete vendor. Both supported vendors (Groq and Mistral) speak
// the OpenAI-compatible chat completions API, so a single HTTP implementation
// ([NewChatCompletionsProvider]) serves them with different base URLs.
//
// Error values defined in errors.go are produced by mapHTTPError so that
// callers can use [errors.Is] and [errors.As] without inspecting HTTP details
// (e.g. [ErrProviderUnavailable] for transport failures, [*StatusError] for
// non-2xx replies).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-code-review/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Provider generates a single chat completion.
type Provider interface {
	// Name returns the provider identifier.
	Name() models.ProviderName

	// Generate sends messages to the provider and returns the content of the
	// first choice. params.Model must be set by the caller.
	Generate(ctx context.Context, messages []models.Message, params models.GenerationParams) (string, error)
}

// ProviderRegistry resolves providers by name. Only providers with configured
// credentials are registered.
type ProviderRegistry interface {
	// Get returns the provider registered under name. An empty name selects
	// [models.DefaultProvider]. Unknown or unconfigured names return
	// [ErrUnknownProvider].
	Get(name string) (Provider, error)

	// Configured lists the registered provider names in catalog order.
	Configured() []models.ProviderName
}
