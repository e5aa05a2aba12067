// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingFields      = errors.New("required field is empty")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrPasswordTooLong    = errors.New("password is too long")
	ErrInvalidOTP         = errors.New("invalid one-time passcode format")
	ErrEmptyResetToken    = errors.New("reset token is required")
	ErrEmptyCode          = errors.New("code is required")
	ErrCodeTooLarge       = errors.New("code exceeds the size limit")
	ErrEmptyMessages      = errors.New("messages list cannot be empty")
	ErrInvalidMessageRole = errors.New("message role must be user or assistant")
	ErrEmptyMessage       = errors.New("message content cannot be empty")
	ErrTooManyMessages    = errors.New("too many messages")
	ErrInvalidProvider    = errors.New("unknown provider")
	ErrEmptyRecordID      = errors.New("record id is required")
	ErrEmptyRecipient     = errors.New("recipient address is required")
)
