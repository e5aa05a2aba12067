// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-code-review/internal/logger"
	"github.com/MKhiriev/go-code-review/internal/utils"
	"github.com/MKhiriev/go-code-review/models"
)

const chatCompletionsPath = "/chat/completions"

type chatCompletionsProvider struct {
	name   models.ProviderName
	client *utils.HTTPClient

	logger *logger.Logger
}

type completionRequest struct {
	Model       string           `json:"model"`
	Messages    []models.Message `json:"messages"`
	Temperature float64          `json:"temperature"`
	MaxTokens   int              `json:"max_tokens,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message models.Message `json:"message"`
	} `json:"choices"`
}

// NewChatCompletionsProvider constructs a [Provider] for an OpenAI-compatible
// chat completions endpoint. baseURL is normalised (trailing slash removed)
// and must carry a scheme and host. timeout bounds every call.
func NewChatCompletionsProvider(name models.ProviderName, baseURL, apiKey string, timeout time.Duration, logger *logger.Logger) (Provider, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid %s base url: %w", name, err)
	}

	return &chatCompletionsProvider{
		name:   name,
		client: utils.NewHTTPClient(normalized, timeout, apiKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Name implements [Provider].
func (p *chatCompletionsProvider) Name() models.ProviderName {
	return p.name
}

// Generate implements [Provider]. It POSTs the conversation to
// /chat/completions and returns choices[0].message.content.
func (p *chatCompletionsProvider) Generate(ctx context.Context, messages []models.Message, params models.GenerationParams) (string, error) {
	log := logger.FromContext(ctx)
	if params.Model == "" {
		return "", ErrMissingModel
	}

	started := time.Now()
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(completionRequest{
			Model:       params.Model,
			Messages:    messages,
			Temperature: params.Temperature,
			MaxTokens:   params.MaxTokens,
		}).
		Post(chatCompletionsPath)
	if err != nil {
		log.Err(err).
			Str("func", "*chatCompletionsProvider.Generate").
			Str("provider", p.name.String()).
			Str("model", params.Model).
			Msg("provider request failed")
		return "", fmt.Errorf("%w: %s: %w", ErrProviderUnavailable, p.name, err)
	}
	if err = mapHTTPError(p.name.String(), resp); err != nil {
		log.Err(err).
			Str("func", "*chatCompletionsProvider.Generate").
			Str("provider", p.name.String()).
			Str("model", params.Model).
			Int("status", resp.StatusCode()).
			Msg("provider rejected request")
		return "", err
	}

	var completion completionResponse
	if err = json.Unmarshal(resp.Body(), &completion); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedCompletion, err)
	}
	if len(completion.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	log.Debug().
		Str("func", "*chatCompletionsProvider.Generate").
		Str("provider", p.name.String()).
		Str("model", params.Model).
		Dur("duration", time.Since(started)).
		Msg("completion received")

	return completion.Choices[0].Message.Content, nil
}
