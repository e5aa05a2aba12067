// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-code-review/internal/adapter"
	"github.com/MKhiriev/go-code-review/internal/app"
	"github.com/MKhiriev/go-code-review/internal/service"
	"github.com/MKhiriev/go-code-review/internal/session"
	"github.com/MKhiriev/go-code-review/internal/validators"
)

const internalErrorMessage = app.MsgInternalServerError

// errorMessage pairs a sentinel with the client-facing message it maps to.
type errorMessage struct {
	target  error
	message string
}

// errorMessages is checked in order; the first sentinel matched with
// errors.Is wins.
var errorMessages = []errorMessage{
	{ErrInvalidJSON, app.MsgInvalidDataProvided},
	{ErrInvalidGzipBody, app.MsgInvalidDataProvided},
	{ErrNoSessionInContext, app.MsgNotAuthenticated},
	{session.ErrNoSession, app.MsgNotAuthenticated},
	{session.ErrInvalidSession, app.MsgNotAuthenticated},

	{validators.ErrMissingFields, app.MsgAllFieldsRequired},
	{validators.ErrInvalidEmail, app.MsgInvalidEmail},
	{validators.ErrPasswordTooShort, app.MsgPasswordMinLength},
	{validators.ErrPasswordTooLong, app.MsgPasswordTooLong},
	{validators.ErrInvalidOTP, app.MsgInvalidOTP},
	{validators.ErrEmptyResetToken, app.MsgInvalidResetToken},
	{validators.ErrEmptyCode, app.MsgNoCodeProvided},
	{validators.ErrCodeTooLarge, app.MsgCodeTooLarge},
	{validators.ErrEmptyMessages, app.MsgNoMessagesProvided},
	{validators.ErrInvalidMessageRole, app.MsgInvalidMessages},
	{validators.ErrEmptyMessage, app.MsgInvalidMessages},
	{validators.ErrTooManyMessages, app.MsgTooManyMessages},
	{validators.ErrInvalidProvider, app.MsgUnknownProvider},
	{validators.ErrEmptyRecordID, app.MsgNoRecordIDProvided},
	{validators.ErrEmptyRecipient, app.MsgNoRecipientProvided},

	{service.ErrEmailAlreadyRegistered, app.MsgEmailAlreadyRegistered},
	{service.ErrInvalidCredentials, app.MsgInvalidEmailOrPassword},
	{service.ErrEmailNotFound, app.MsgEmailNotFound},
	{service.ErrSendingEmail, app.MsgFailedToSendEmail},
	{service.ErrInvalidOTP, app.MsgInvalidOTP},
	{service.ErrOTPExpired, app.MsgOTPExpired},
	{service.ErrInvalidResetToken, app.MsgInvalidResetToken},
	{service.ErrInvalidAIResponse, app.MsgInvalidAIResponse},
	{service.ErrRecordNotFound, app.MsgRecordNotFound},

	{adapter.ErrUnknownProvider, app.MsgUnknownProvider},
	{adapter.ErrMissingModel, app.MsgUnknownProvider},
	{adapter.ErrProviderUnavailable, app.MsgProviderUnavailable},
	{adapter.ErrEmptyCompletion, app.MsgInvalidAIResponse},
	{adapter.ErrMalformedCompletion, app.MsgInvalidAIResponse},
}

// messageFromError translates err into a client-facing message. Provider
// rejections carry the upstream status code; anything unknown becomes the
// internal error message.
func messageFromError(err error, overrides ...errorMessage) string {
	for _, o := range overrides {
		if errors.Is(err, o.target) {
			return o.message
		}
	}

	var statusErr *adapter.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf(app.MsgProviderRejected, statusErr.StatusCode)
	}

	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return internalErrorMessage
}
