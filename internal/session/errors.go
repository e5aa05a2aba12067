// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	ErrNoSession        = errors.New("no session")
	ErrInvalidSession   = errors.New("invalid session")
	ErrUnsupportedStore = errors.New("unsupported session store")
	ErrRedisRequired    = errors.New("redis session store requires a redis client")
)
