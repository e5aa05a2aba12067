// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body is not a JSON document
	// of the expected shape.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrNoSessionInContext is returned when a protected handler runs without
	// the session the auth middleware stores in the request context.
	ErrNoSessionInContext = errors.New("no session in request context")

	// ErrInvalidGzipBody is returned by the gzip middleware for a request
	// declaring gzip encoding whose body cannot be decompressed.
	ErrInvalidGzipBody = errors.New("invalid gzip request body")
)
