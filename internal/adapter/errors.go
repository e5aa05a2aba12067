// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrProviderRejected    = errors.New("provider rejected the request")
	ErrEmptyCompletion     = errors.New("provider returned no choices")
	ErrMalformedCompletion = errors.New("provider returned a malformed completion")
	ErrUnknownProvider     = errors.New("unknown or unconfigured provider")
	ErrMissingModel        = errors.New("model is not set")
)

// StatusError is returned when a provider answers with a non-2xx status.
// It unwraps to [ErrProviderRejected].
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: http %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: http %d: %s", e.Provider, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrProviderRejected
}
