// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields are never serialized to JSON.
type User struct {
	// UserID is the internal identifier assigned by the storage layer.
	UserID int64 `json:"-"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique key of the account.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// OTPHash is the bcrypt hash of the last issued one-time passcode.
	// Empty when no password reset is in progress.
	OTPHash string `json:"-"`

	// OTPIssuedAt is the issue time of the passcode referenced by OTPHash.
	OTPIssuedAt *time.Time `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasPendingOTP reports whether a passcode was issued and not yet consumed.
func (u User) HasPendingOTP() bool {
	return u.OTPHash != "" && u.OTPIssuedAt != nil
}
