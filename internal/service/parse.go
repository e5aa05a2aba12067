// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-code-review/models"
)

var (
	leadingFence  = regexp.MustCompile("^```[A-Za-z0-9_+#-]*\\n?")
	trailingFence = regexp.MustCompile("\\n?```$")
	codeBlock     = regexp.MustCompile("```(?:\\w+)?\\n([\\s\\S]+?)\\n```")
)

// stripFences removes a Markdown fence wrapping the whole reply.
func stripFences(reply string) string {
	reply = strings.TrimSpace(reply)
	if !strings.HasPrefix(reply, "```") {
		return reply
	}

	reply = leadingFence.ReplaceAllString(reply, "")
	reply = trailingFence.ReplaceAllString(reply, "")
	return strings.TrimSpace(reply)
}

// parseReview decodes an analysis reply into a ReviewResult. The reply must
// be a JSON object once fences are removed.
func parseReview(reply string) (models.ReviewResult, error) {
	cleaned := stripFences(reply)
	if !strings.HasPrefix(cleaned, "{") {
		return models.ReviewResult{}, ErrInvalidAIResponse
	}

	var result models.ReviewResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return models.ReviewResult{}, fmt.Errorf("%w: %w", ErrInvalidAIResponse, err)
	}
	return result, nil
}

// extractCodeBlock returns the body of the first fenced block in reply, or
// reply itself when it has none.
func extractCodeBlock(reply string) string {
	m := codeBlock.FindStringSubmatch(reply)
	if m == nil {
		return reply
	}
	return m[1]
}
