// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address
	// is configured. It is a fatal startup misconfiguration.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoSessionStore is returned by NewHandlers without a session store.
	errNoSessionStore = errors.New("no session store provided")
)
