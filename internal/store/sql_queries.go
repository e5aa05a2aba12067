// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-code-review/models"
)

var (
	userColumns = []string{
		"user_id", "name", "email", "password_hash", "otp_hash", "otp_issued_at", "created_at",
	}
	historyColumns = []string{
		"id", "user_email", "language", "original_code", "review_data", "rewritten_code", "created_at",
	}
)

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(sb sq.StatementBuilderType, user models.User) (string, []any, error) {
	return sb.Insert(models.User{}.TableName()).
		Columns("name", "email", "password_hash", "created_at").
		Values(user.Name, user.Email, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id, created_at").
		ToSql()
}

func buildFindUserByEmailQuery(sb sq.StatementBuilderType, email string) (string, []any, error) {
	return sb.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildUpdatePasswordQuery(sb sq.StatementBuilderType, email, passwordHash, otpHash string) (string, []any, error) {
	return sb.Update(models.User{}.TableName()).
		Set("password_hash", passwordHash).
		Set("otp_hash", nil).
		Set("otp_issued_at", nil).
		Where(sq.Eq{"email": email, "otp_hash": otpHash}).
		ToSql()
}

func buildSetOTPQuery(sb sq.StatementBuilderType, email, otpHash string, issuedAt time.Time) (string, []any, error) {
	return sb.Update(models.User{}.TableName()).
		Set("otp_hash", otpHash).
		Set("otp_issued_at", issuedAt).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildClearOTPQuery(sb sq.StatementBuilderType, email string) (string, []any, error) {
	return sb.Update(models.User{}.TableName()).
		Set("otp_hash", nil).
		Set("otp_issued_at", nil).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildClearExpiredOTPsQuery(sb sq.StatementBuilderType, before time.Time) (string, []any, error) {
	return sb.Update(models.User{}.TableName()).
		Set("otp_hash", nil).
		Set("otp_issued_at", nil).
		Where(sq.Lt{"otp_issued_at": before}).
		ToSql()
}

// ── history ───────────────────────────────────────────────────────────────────

func buildSaveRecordQuery(sb sq.StatementBuilderType, record models.HistoryRecord) (string, []any, error) {
	return sb.Insert(models.HistoryRecord{}.TableName()).
		Columns(historyColumns...).
		Values(
			record.ID,
			record.UserEmail,
			record.Language,
			record.OriginalCode,
			string(record.ReviewData),
			record.RewrittenCode,
			record.CreatedAt,
		).
		ToSql()
}

func buildListRecordsQuery(sb sq.StatementBuilderType, email string) (string, []any, error) {
	return sb.Select(historyColumns...).
		From(models.HistoryRecord{}.TableName()).
		Where(sq.Eq{"user_email": email}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildFindRecordQuery(sb sq.StatementBuilderType, id, email string) (string, []any, error) {
	return sb.Select(historyColumns...).
		From(models.HistoryRecord{}.TableName()).
		Where(sq.Eq{"id": id, "user_email": email}).
		ToSql()
}

func buildFindLatestRecordQuery(sb sq.StatementBuilderType, email string) (string, []any, error) {
	return sb.Select(historyColumns...).
		From(models.HistoryRecord{}.TableName()).
		Where(sq.Eq{"user_email": email}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
}

func buildAttachRewriteQuery(sb sq.StatementBuilderType, id, email, code string) (string, []any, error) {
	return sb.Update(models.HistoryRecord{}.TableName()).
		Set("rewritten_code", code).
		Where(sq.Eq{"id": id, "user_email": email}).
		ToSql()
}

func buildDeleteRecordQuery(sb sq.StatementBuilderType, id, email string) (string, []any, error) {
	return sb.Delete(models.HistoryRecord{}.TableName()).
		Where(sq.Eq{"id": id, "user_email": email}).
		ToSql()
}

func buildDeleteAllRecordsQuery(sb sq.StatementBuilderType, email string) (string, []any, error) {
	return sb.Delete(models.HistoryRecord{}.TableName()).
		Where(sq.Eq{"user_email": email}).
		ToSql()
}
