// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing messages written by the HTTP handlers
// into the "message" field of JSON responses.
//
// Handlers never forward raw error text to the client: every failure is
// translated into one of the Msg* constants below so that wording stays
// consistent across endpoints and no internal details leak.
package app

// Account messages.
const (
	// MsgAllFieldsRequired is returned when a sign up form is incomplete.
	MsgAllFieldsRequired = "All fields required"

	// MsgPasswordMinLength is returned by sign up for a short password.
	MsgPasswordMinLength = "Password must be at least 6 characters"

	// MsgPasswordTooShort is returned by password reset for a short password.
	MsgPasswordTooShort = "Password too short"

	// MsgPasswordTooLong is returned when a password exceeds 72 bytes.
	MsgPasswordTooLong = "Password must be at most 72 bytes"

	MsgInvalidEmail            = "Please enter a valid email address"
	MsgEmailAlreadyRegistered  = "Email already registered"
	MsgAccountCreated          = "Account created successfully"
	MsgLoginSuccessful         = "Login successful"
	MsgInvalidEmailOrPassword  = "Invalid email or password"
	MsgEmailNotFound           = "Email not found"
	MsgOTPSent                 = "OTP sent to your email"
	MsgFailedToSendEmail       = "Failed to send email. Please try again later."
	MsgInvalidOTP              = "Invalid OTP"
	MsgOTPExpired              = "OTP expired"
	MsgInvalidResetToken       = "Invalid or expired reset token"
	MsgPasswordResetSuccessful = "Password reset successful"
	MsgLoggedOut               = "Logged out"

	// MsgNotAuthenticated is returned by every protected endpoint when the
	// request carries no valid session.
	MsgNotAuthenticated = "Not authenticated"
)

// Review messages.
const (
	MsgNoCodeProvided = "No code provided"
	MsgCodeRequired   = "Code required"
	MsgCodeTooLarge   = "Code is too large"

	MsgNoMessagesProvided = "No messages provided"
	MsgInvalidMessages    = "Messages must be non-empty user or assistant turns"
	MsgTooManyMessages    = "Too many messages in conversation"

	// MsgUnknownProvider is returned for a provider outside the supported
	// set or one without configured credentials.
	MsgUnknownProvider = "Unknown or unconfigured AI provider"

	// MsgInvalidAIResponse is returned when the analysis reply is not the
	// expected JSON document.
	MsgInvalidAIResponse = "AI returned invalid response. Try again."

	// MsgProviderUnavailable is returned when the provider cannot be reached.
	MsgProviderUnavailable = "AI provider is unavailable, try again later"

	// MsgProviderRejected is a format string taking the upstream HTTP status.
	MsgProviderRejected = "AI provider rejected the request (HTTP %d)"
)

// History messages.
const (
	MsgRecordNotFound             = "Record not found"
	MsgRecordNotFoundOrNotAllowed = "Record not found or not authorized"
	MsgNoRecordIDProvided         = "No record ID provided"
	MsgRecordDeleted              = "Record deleted"
	MsgRecordsDeleted             = "Deleted %d records"
	MsgNoRecipientProvided        = "Please provide an email address"
	MsgReportSent                 = "Report sent to %s"
)

// Generic messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgInternalServerError is returned for failures the client cannot
	// resolve.
	MsgInternalServerError = "Internal server error"
)
