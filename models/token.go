// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set of a cookie session token.
//
// The "sub" claim holds the user's email; Name carries the display name so
// that loading a session does not require a storage round trip.
type SessionClaims struct {
	jwt.RegisteredClaims

	Name string `json:"name"`
}

// Session returns the session encoded in the claims.
func (c SessionClaims) Session() Session {
	return Session{Name: c.Name, Email: c.Subject}
}

// ResetClaims is the claim set of a password reset token.
//
// The token is issued after a successful OTP check. OTPIssuedAt pins it to the
// passcode that was verified: once the passcode is cleared or replaced the
// token no longer matches and is rejected.
type ResetClaims struct {
	jwt.RegisteredClaims

	// OTPIssuedAt is the unix time (nanoseconds) of the verified passcode.
	OTPIssuedAt int64 `json:"otp_iat"`
}
