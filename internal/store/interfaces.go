// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-code-review/models"
)

// UserRepository persists user accounts and their password reset state.
type UserRepository interface {
	// CreateUser inserts a user and returns it with UserID and CreatedAt set.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// UpdatePassword replaces the password hash and clears the passcode, but
	// only while otpHash is still the stored passcode hash.
	UpdatePassword(ctx context.Context, email, passwordHash, otpHash string) error
	SetOTP(ctx context.Context, email, otpHash string, issuedAt time.Time) error
	ClearOTP(ctx context.Context, email string) error
	// ClearExpiredOTPs clears passcodes issued before the given time and
	// returns the number of affected users.
	ClearExpiredOTPs(ctx context.Context, before time.Time) (int64, error)
}

// HistoryRepository persists review history. Every method except SaveRecord
// is scoped by the owner's email.
type HistoryRepository interface {
	SaveRecord(ctx context.Context, record models.HistoryRecord) (models.HistoryRecord, error)
	// ListRecords returns the owner's records, newest first.
	ListRecords(ctx context.Context, email string) ([]models.HistoryRecord, error)
	FindRecord(ctx context.Context, id, email string) (models.HistoryRecord, error)
	FindLatestRecord(ctx context.Context, email string) (models.HistoryRecord, error)
	AttachRewrite(ctx context.Context, id, email, code string) error
	DeleteRecord(ctx context.Context, id, email string) error
	DeleteAllRecords(ctx context.Context, email string) (int64, error)
}

// ErrorClassificator inspects driver errors of one database backend.
type ErrorClassificator interface {
	// Classify reports whether a failed operation may succeed when retried.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}

// IDGenerator produces record identifiers.
type IDGenerator interface {
	Generate() string
}
