// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-code-review/internal/validators"
	"github.com/MKhiriev/go-code-review/models"
)

// AuthValidationService normalises and validates auth requests before
// passing them to the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{validator: validators.NewRequestValidator()}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during sign up validation: %w", err)
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = validators.NormalizeEmail(req.Email)
	req.Password = strings.TrimSpace(req.Password)
	return v.inner.SignUp(ctx, req)
}

func (v *AuthValidationService) SignIn(ctx context.Context, req models.SignInRequest) (models.Session, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Session{}, fmt.Errorf("error during sign in validation: %w", err)
	}

	req.Email = validators.NormalizeEmail(req.Email)
	req.Password = strings.TrimSpace(req.Password)
	return v.inner.SignIn(ctx, req)
}

func (v *AuthValidationService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("error during forgot password validation: %w", err)
	}

	req.Email = validators.NormalizeEmail(req.Email)
	return v.inner.ForgotPassword(ctx, req)
}

func (v *AuthValidationService) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (string, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return "", fmt.Errorf("error during passcode validation: %w", err)
	}

	req.Email = validators.NormalizeEmail(req.Email)
	req.OTP = strings.TrimSpace(req.OTP)
	return v.inner.VerifyOTP(ctx, req)
}

func (v *AuthValidationService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("error during reset password validation: %w", err)
	}

	req.Email = validators.NormalizeEmail(req.Email)
	req.Password = strings.TrimSpace(req.Password)
	req.ResetToken = strings.TrimSpace(req.ResetToken)
	return v.inner.ResetPassword(ctx, req)
}

func (v *AuthValidationService) PurgeExpiredOTPs(ctx context.Context) (int64, error) {
	return v.inner.PurgeExpiredOTPs(ctx)
}

// ReviewValidationService validates review requests and fills in the
// language and provider defaults.
type ReviewValidationService struct {
	inner     ReviewService
	validator validators.Validator
}

func NewReviewValidationService() ReviewServiceWrapper {
	return &ReviewValidationService{validator: validators.NewRequestValidator()}
}

func (v *ReviewValidationService) Wrap(inner ReviewService) ReviewService {
	v.inner = inner
	return v
}

func (v *ReviewValidationService) Analyze(ctx context.Context, email string, req models.AnalyzeRequest) (models.Analysis, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Analysis{}, fmt.Errorf("error during analyze validation: %w", err)
	}

	req.Code = strings.TrimSpace(req.Code)
	req.Language = validators.NormalizeLanguage(req.Language)
	req.Provider = strings.ToLower(strings.TrimSpace(req.Provider))
	req.Model = strings.TrimSpace(req.Model)
	return v.inner.Analyze(ctx, email, req)
}

func (v *ReviewValidationService) Rewrite(ctx context.Context, email string, req models.RewriteRequest) (string, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return "", fmt.Errorf("error during rewrite validation: %w", err)
	}

	req.Code = strings.TrimSpace(req.Code)
	req.Language = validators.NormalizeLanguage(req.Language)
	req.Provider = strings.ToLower(strings.TrimSpace(req.Provider))
	req.Model = strings.TrimSpace(req.Model)
	req.RecordID = strings.TrimSpace(req.RecordID)
	return v.inner.Rewrite(ctx, email, req)
}

func (v *ReviewValidationService) Chat(ctx context.Context, req models.ChatRequest) (string, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return "", fmt.Errorf("error during chat validation: %w", err)
	}

	req.Provider = strings.ToLower(strings.TrimSpace(req.Provider))
	req.Model = strings.TrimSpace(req.Model)
	return v.inner.Chat(ctx, req)
}

func (v *ReviewValidationService) Models(ctx context.Context) map[models.ProviderName][]models.ModelInfo {
	return v.inner.Models(ctx)
}

// HistoryValidationService validates history requests.
type HistoryValidationService struct {
	inner     HistoryService
	validator validators.Validator
}

func NewHistoryValidationService() HistoryServiceWrapper {
	return &HistoryValidationService{validator: validators.NewRequestValidator()}
}

func (v *HistoryValidationService) Wrap(inner HistoryService) HistoryService {
	v.inner = inner
	return v
}

func (v *HistoryValidationService) List(ctx context.Context, email string) ([]models.HistoryRecord, error) {
	return v.inner.List(ctx, email)
}

func (v *HistoryValidationService) Get(ctx context.Context, email, recordID string) (models.HistoryRecord, error) {
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return models.HistoryRecord{}, validators.ErrEmptyRecordID
	}
	return v.inner.Get(ctx, email, recordID)
}

func (v *HistoryValidationService) SendReport(ctx context.Context, email string, req models.SendReportRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("error during send report validation: %w", err)
	}

	req.RecordID = strings.TrimSpace(req.RecordID)
	req.ToEmail = strings.TrimSpace(req.ToEmail)
	return v.inner.SendReport(ctx, email, req)
}

func (v *HistoryValidationService) Delete(ctx context.Context, email string, req models.DeleteRecordRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("error during delete validation: %w", err)
	}

	req.RecordID = strings.TrimSpace(req.RecordID)
	return v.inner.Delete(ctx, email, req)
}

func (v *HistoryValidationService) DeleteAll(ctx context.Context, email string) (int64, error) {
	return v.inner.DeleteAll(ctx, email)
}
