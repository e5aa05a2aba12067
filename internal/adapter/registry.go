// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-code-review/internal/config"
	"github.com/MKhiriev/go-code-review/internal/logger"
	"github.com/MKhiriev/go-code-review/models"
)

type providerRegistry struct {
	providers map[models.ProviderName]Provider
	order     []models.ProviderName
}

// NewProviderRegistry builds a provider for every vendor with an API key in
// cfg. It fails when a configured base URL is invalid. A registry without
// providers is valid; every Get on it fails.
func NewProviderRegistry(cfg config.Adapter, logger *logger.Logger) (ProviderRegistry, error) {
	registry := &providerRegistry{providers: make(map[models.ProviderName]Provider)}

	vendors := []struct {
		name models.ProviderName
		cfg  config.Provider
	}{
		{models.ProviderGroq, cfg.Groq},
		{models.ProviderMistral, cfg.Mistral},
	}

	for _, v := range vendors {
		if v.cfg.APIKey == "" {
			logger.Warn().
				Str("func", "adapter.NewProviderRegistry").
				Str("provider", v.name.String()).
				Msg("api key is not set, provider disabled")
			continue
		}

		p, err := NewChatCompletionsProvider(v.name, v.cfg.BaseURL, v.cfg.APIKey, cfg.RequestTimeout, logger)
		if err != nil {
			return nil, err
		}
		registry.register(p)
	}

	if len(registry.order) == 0 {
		logger.Warn().
			Str("func", "adapter.NewProviderRegistry").
			Msg("no llm provider configured, ai endpoints will fail")
	}

	return registry, nil
}

// NewRegistryOf builds a registry from ready providers.
func NewRegistryOf(providers ...Provider) ProviderRegistry {
	registry := &providerRegistry{providers: make(map[models.ProviderName]Provider)}
	for _, p := range providers {
		registry.register(p)
	}
	return registry
}

func (r *providerRegistry) register(p Provider) {
	if _, ok := r.providers[p.Name()]; !ok {
		r.order = append(r.order, p.Name())
	}
	r.providers[p.Name()] = p
}

// Get implements [ProviderRegistry].
func (r *providerRegistry) Get(name string) (Provider, error) {
	providerName, ok := models.ParseProviderName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}

	p, ok := r.providers[providerName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, providerName)
	}
	return p, nil
}

// Configured implements [ProviderRegistry].
func (r *providerRegistry) Configured() []models.ProviderName {
	out := make([]models.ProviderName, len(r.order))
	copy(out, r.order)
	return out
}
