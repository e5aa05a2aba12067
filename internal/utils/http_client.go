// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client to
// expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to baseURL. A positive timeout is
// applied to every request made by the client, bearer is sent as the
// Authorization token when non-empty.
//
// Each call returns an independent client with its own connection pool.
//
//	client := utils.NewHTTPClient("https://api.groq.com/openai/v1", time.Minute, apiKey)
//	resp, err := client.R().SetBody(body).Post("/chat/completions")
func NewHTTPClient(baseURL string, timeout time.Duration, bearer string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if bearer != "" {
		client.SetAuthToken(bearer)
	}

	return &HTTPClient{Client: client}
}
