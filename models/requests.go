// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignUpRequest is the body of POST /signup.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInRequest is the body of POST /signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the body of POST /forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// VerifyOTPRequest is the body of POST /verify-otp.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ResetPasswordRequest is the body of POST /reset-password.
// ResetToken is the value returned by a successful OTP verification.
type ResetPasswordRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	ResetToken string `json:"reset_token"`
}

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// RewriteRequest is the body of POST /api/rewrite.
// RecordID selects the history record the rewrite is attached to; the most
// recent record is used when it is empty.
type RewriteRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
	RecordID string `json:"record_id,omitempty"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Messages []Message `json:"messages"`
	Provider string    `json:"provider"`
	Model    string    `json:"model,omitempty"`
}

// SendReportRequest is the body of POST /api/send-history-email.
type SendReportRequest struct {
	RecordID string `json:"record_id"`
	ToEmail  string `json:"to_email"`
}

// DeleteRecordRequest is the body of POST /api/delete-history.
type DeleteRecordRequest struct {
	RecordID string `json:"record_id"`
}
