// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is the authenticated user marker kept in session state.
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// IsZero reports whether the session carries no user.
func (s Session) IsZero() bool {
	return s.Email == ""
}
