// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailNotFound          = errors.New("email not found")
	ErrSendingEmail           = errors.New("failed to send email")
	ErrInvalidOTP             = errors.New("invalid one-time passcode")
	ErrOTPExpired             = errors.New("one-time passcode expired")
	ErrInvalidResetToken      = errors.New("reset token is invalid or already used")

	ErrInvalidAIResponse = errors.New("ai returned invalid response")
	ErrRecordNotFound    = errors.New("history record not found")
)
