// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-code-review/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldOTP        = "otp"
	FieldResetToken = "reset_token"
	FieldCode       = "code"
	FieldProvider   = "provider"
	FieldMessages   = "messages"
	FieldRecordID   = "record_id"
	FieldToEmail    = "to_email"
)

const (
	MinPasswordLength = 6
	// MaxPasswordLength is the bcrypt input limit in bytes.
	MaxPasswordLength = 72

	MaxCodeBytes    = 100 * 1024
	MaxChatMessages = 50
	otpLength       = 6
)

// RequestValidator validates the request bodies defined in models.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms of
// every request model are accepted; anything else yields ErrUnsupportedType.
// When fields is empty the default field set of the request is validated.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUp(value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUp(*value, fields...)

	case models.SignInRequest:
		return v.check(fields, []string{FieldEmail, FieldPassword}, map[string]func() error{
			FieldEmail:    func() error { return validateEmail(value.Email) },
			FieldPassword: func() error { return required(value.Password) },
		})
	case *models.SignInRequest:
		return v.Validate(ctx, *value, fields...)

	case models.ForgotPasswordRequest:
		return v.check(fields, []string{FieldEmail}, map[string]func() error{
			FieldEmail: func() error { return validateEmail(value.Email) },
		})
	case *models.ForgotPasswordRequest:
		return v.Validate(ctx, *value, fields...)

	case models.VerifyOTPRequest:
		return v.check(fields, []string{FieldEmail, FieldOTP}, map[string]func() error{
			FieldEmail: func() error { return validateEmail(value.Email) },
			FieldOTP:   func() error { return validateOTP(value.OTP) },
		})
	case *models.VerifyOTPRequest:
		return v.Validate(ctx, *value, fields...)

	case models.ResetPasswordRequest:
		return v.check(fields, []string{FieldPassword, FieldEmail, FieldResetToken}, map[string]func() error{
			FieldEmail:      func() error { return validateEmail(value.Email) },
			FieldPassword:   func() error { return validatePassword(value.Password) },
			FieldResetToken: func() error { return nonEmpty(value.ResetToken, ErrEmptyResetToken) },
		})
	case *models.ResetPasswordRequest:
		return v.Validate(ctx, *value, fields...)

	case models.AnalyzeRequest:
		return v.check(fields, []string{FieldCode, FieldProvider}, map[string]func() error{
			FieldCode:     func() error { return validateCode(value.Code) },
			FieldProvider: func() error { return validateProvider(value.Provider) },
		})
	case *models.AnalyzeRequest:
		return v.Validate(ctx, *value, fields...)

	case models.RewriteRequest:
		return v.check(fields, []string{FieldCode, FieldProvider}, map[string]func() error{
			FieldCode:     func() error { return validateCode(value.Code) },
			FieldProvider: func() error { return validateProvider(value.Provider) },
		})
	case *models.RewriteRequest:
		return v.Validate(ctx, *value, fields...)

	case models.ChatRequest:
		return v.check(fields, []string{FieldMessages, FieldProvider}, map[string]func() error{
			FieldMessages: func() error { return validateMessages(value.Messages) },
			FieldProvider: func() error { return validateProvider(value.Provider) },
		})
	case *models.ChatRequest:
		return v.Validate(ctx, *value, fields...)

	case models.SendReportRequest:
		return v.check(fields, []string{FieldRecordID, FieldToEmail}, map[string]func() error{
			FieldRecordID: func() error { return nonEmpty(value.RecordID, ErrEmptyRecordID) },
			FieldToEmail: func() error {
				if err := nonEmpty(value.ToEmail, ErrEmptyRecipient); err != nil {
					return err
				}
				return validateEmail(value.ToEmail)
			},
		})
	case *models.SendReportRequest:
		return v.Validate(ctx, *value, fields...)

	case models.DeleteRecordRequest:
		return v.check(fields, []string{FieldRecordID}, map[string]func() error{
			FieldRecordID: func() error { return nonEmpty(value.RecordID, ErrEmptyRecordID) },
		})
	case *models.DeleteRecordRequest:
		return v.Validate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSignUp reports ErrMissingFields before any format error so that a
// partly filled form gets a single message.
func (v *RequestValidator) validateSignUp(req models.SignUpRequest, fields ...string) error {
	if len(fields) == 0 {
		for _, s := range []string{req.Name, req.Email, req.Password} {
			if err := required(s); err != nil {
				return err
			}
		}
	}

	return v.check(fields, []string{FieldName, FieldEmail, FieldPassword}, map[string]func() error{
		FieldName:     func() error { return required(req.Name) },
		FieldEmail:    func() error { return validateEmail(req.Email) },
		FieldPassword: func() error { return validatePassword(req.Password) },
	})
}

// check runs the rules named by fields (or defaults) in order and returns the
// first failure.
func (v *RequestValidator) check(fields, defaults []string, rules map[string]func() error) error {
	if len(fields) == 0 {
		fields = defaults
	}

	for _, f := range fields {
		rule, ok := rules[f]
		if !ok {
			return ErrUnknownField
		}
		if err := rule(); err != nil {
			return err
		}
	}

	return nil
}

func required(s string) error {
	return nonEmpty(s, ErrMissingFields)
}

func nonEmpty(s string, err error) error {
	if strings.TrimSpace(s) == "" {
		return err
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrMissingFields
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	password = strings.TrimSpace(password)
	switch {
	case password == "":
		return ErrMissingFields
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return ErrPasswordTooShort
	case len(password) > MaxPasswordLength:
		return ErrPasswordTooLong
	}
	return nil
}

func validateOTP(otp string) error {
	otp = strings.TrimSpace(otp)
	if len(otp) != otpLength {
		return ErrInvalidOTP
	}
	for _, r := range otp {
		if r < '0' || r > '9' {
			return ErrInvalidOTP
		}
	}
	return nil
}

func validateCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return ErrEmptyCode
	}
	if len(code) > MaxCodeBytes {
		return ErrCodeTooLarge
	}
	return nil
}

func validateProvider(provider string) error {
	if _, ok := models.ParseProviderName(provider); !ok {
		return ErrInvalidProvider
	}
	return nil
}

func validateMessages(messages []models.Message) error {
	if len(messages) == 0 {
		return ErrEmptyMessages
	}
	if len(messages) > MaxChatMessages {
		return ErrTooManyMessages
	}

	for _, m := range messages {
		if m.Role != models.RoleUser && m.Role != models.RoleAssistant {
			return ErrInvalidMessageRole
		}
		if strings.TrimSpace(m.Content) == "" {
			return ErrEmptyMessage
		}
		if len(m.Content) > MaxCodeBytes {
			return ErrCodeTooLarge
		}
	}
	return nil
}
