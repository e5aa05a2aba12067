// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Email is a plain-text message handed to the mailer.
type Email struct {
	To      string
	Subject string
	Body    string
}
