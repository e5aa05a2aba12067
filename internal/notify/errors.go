// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import "errors"

var (
	ErrMailerNotConfigured = errors.New("smtp host is not configured")
	ErrInvalidRecipient    = errors.New("invalid recipient address")
	ErrInvalidHeader       = errors.New("header contains line breaks")
	ErrDeliveryFailed      = errors.New("smtp delivery failed")
)
