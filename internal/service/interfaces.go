// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the code review service:
// account and password reset flows, LLM-backed review, rewrite and chat, and
// per-user history management.
//
// Every service is an interface with an unexported implementation. Input
// validation lives in wrappers (see the *ServiceWrapper interfaces) so the
// inner services can assume well-formed, normalised requests.
package service

import (
	"context"

	"github.com/MKhiriev/go-code-review/models"
)

type AuthService interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)
	// SignIn verifies the credentials and returns the session to establish.
	SignIn(ctx context.Context, req models.SignInRequest) (models.Session, error)
	// ForgotPassword stores a new passcode for the account and mails it.
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error
	// VerifyOTP checks the passcode and returns a reset token bound to it.
	VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (string, error)
	// ResetPassword consumes the reset token and replaces the password.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
	// PurgeExpiredOTPs clears passcodes older than the passcode lifetime.
	PurgeExpiredOTPs(ctx context.Context) (int64, error)
}

type ReviewService interface {
	// Analyze reviews the code and stores the result in the user's history.
	Analyze(ctx context.Context, email string, req models.AnalyzeRequest) (models.Analysis, error)
	// Rewrite returns an improved version of the code and attaches it to a
	// history record when one is found.
	Rewrite(ctx context.Context, email string, req models.RewriteRequest) (string, error)
	Chat(ctx context.Context, req models.ChatRequest) (string, error)
	// Models lists the model catalog of every configured provider.
	Models(ctx context.Context) map[models.ProviderName][]models.ModelInfo
}

type HistoryService interface {
	List(ctx context.Context, email string) ([]models.HistoryRecord, error)
	Get(ctx context.Context, email, recordID string) (models.HistoryRecord, error)
	SendReport(ctx context.Context, email string, req models.SendReportRequest) error
	Delete(ctx context.Context, email string, req models.DeleteRecordRequest) error
	DeleteAll(ctx context.Context, email string) (int64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// AuthServiceWrapper decorates an AuthService with additional behavior such
// as validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// ReviewServiceWrapper decorates a ReviewService.
type ReviewServiceWrapper interface {
	Wrap(ReviewService) ReviewService
}

// HistoryServiceWrapper decorates a HistoryService.
type HistoryServiceWrapper interface {
	Wrap(HistoryService) HistoryService
}
