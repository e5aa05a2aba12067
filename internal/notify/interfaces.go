// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify delivers outgoing e-mail: password reset passcodes and code
// review reports.
package notify

import (
	"context"

	"github.com/MKhiriev/go-code-review/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Mailer sends a single plain-text message. Delivery is attempted once.
type Mailer interface {
	Send(ctx context.Context, email models.Email) error
}
