// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// ProviderName identifies one of the supported LLM backends.
type ProviderName string

const (
	// ProviderGroq is the Groq chat completions backend.
	ProviderGroq ProviderName = "groq"

	// ProviderMistral is the Mistral chat completions backend.
	ProviderMistral ProviderName = "mistral"
)

// DefaultProvider is used when a request does not name a provider.
const DefaultProvider = ProviderGroq

// ModelInfo describes a model selectable for a provider.
type ModelInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var modelCatalog = map[ProviderName][]ModelInfo{
	ProviderGroq: {
		{ID: "llama-3.3-70b-versatile", Label: "Llama 3.3 70B (Versatile)"},
		{ID: "llama-3.1-8b-instant", Label: "Llama 3.1 8B (Fast)"},
		{ID: "mixtral-8x7b-32768", Label: "Mixtral 8x7B"},
		{ID: "gemma2-9b-it", Label: "Gemma2 9B"},
	},
	ProviderMistral: {
		{ID: "mistral-large-latest", Label: "Mistral Large"},
		{ID: "mistral-small-latest", Label: "Mistral Small"},
		{ID: "open-mixtral-8x7b", Label: "Open Mixtral 8x7B"},
	},
}

// ParseProviderName normalizes a provider tag. Empty input yields
// DefaultProvider. ok is false for tags outside the supported set.
func ParseProviderName(s string) (ProviderName, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultProvider, true
	}

	name := ProviderName(s)
	if _, ok := modelCatalog[name]; !ok {
		return "", false
	}
	return name, true
}

// Models returns a copy of the model catalog for the provider.
func (p ProviderName) Models() []ModelInfo {
	models := modelCatalog[p]
	out := make([]ModelInfo, len(models))
	copy(out, models)
	return out
}

// DefaultModel returns the first catalog entry of the provider.
func (p ProviderName) DefaultModel() string {
	if models := modelCatalog[p]; len(models) > 0 {
		return models[0].ID
	}
	return ""
}

// String implements fmt.Stringer.
func (p ProviderName) String() string {
	return string(p)
}
