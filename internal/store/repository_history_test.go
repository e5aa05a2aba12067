// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-code-review/internal/logger"
	"github.com/MKhiriev/go-code-review/migrations"
	"github.com/MKhiriev/go-code-review/models"
)

type fixedIDGenerator struct{ id string }

func (g fixedIDGenerator) Generate() string { return g.id }

const testRecordID = "01939c5e-7c1a-7d2b-8f3e-1a2b3c4d5e6f"

var historyRowColumns = []string{"id", "user_email", "language", "original_code", "review_data", "rewritten_code", "created_at"}

func newTestHistoryRepo(t *testing.T) (*historyRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &historyRepository{
		db:          newDB(db, migrations.DialectPostgres, l),
		logger:      l,
		idGenerator: fixedIDGenerator{id: testRecordID},
	}
	return repo, mock, db
}

// ─── SaveRecord ───────────────────────────────────────────────────────────────

func TestSaveRecord_AssignsIDAndTimestamp(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	review := `{"has_errors":false,"score":90,"summary":"ok","errors":[]}`
	mock.ExpectExec("INSERT INTO history").
		WithArgs(testRecordID, "a@b.c", "go", "package main", review, "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := repo.SaveRecord(context.Background(), models.HistoryRecord{
		UserEmail:    "a@b.c",
		Language:     "go",
		OriginalCode: "package main",
		ReviewData:   json.RawMessage(review),
	})
	require.NoError(t, err)
	assert.Equal(t, testRecordID, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRecord_ExecError(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO history").WillReturnError(errors.New("disk full"))

	_, err := repo.SaveRecord(context.Background(), models.HistoryRecord{UserEmail: "a@b.c"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ─── ListRecords ──────────────────────────────────────────────────────────────

func TestListRecords_NewestFirst(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, user_email.* FROM history WHERE user_email = \\$1 ORDER BY created_at DESC").
		WithArgs("a@b.c").
		WillReturnRows(sqlmock.NewRows(historyRowColumns).
			AddRow("id-2", "a@b.c", "go", "b", []byte(`{"score":80}`), "rewritten", now).
			AddRow("id-1", "a@b.c", "python", "a", []byte(`legacy text`), "", now.Add(-time.Hour)))

	records, err := repo.ListRecords(context.Background(), "a@b.c")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "id-2", records[0].ID)
	assert.JSONEq(t, `{"score":80}`, string(records[0].ReviewData))
	assert.JSONEq(t, `"legacy text"`, string(records[1].ReviewData))
}

func TestListRecords_Empty(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(historyRowColumns))

	records, err := repo.ListRecords(context.Background(), "a@b.c")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

// ─── FindRecord / FindLatestRecord ────────────────────────────────────────────

func TestFindRecord_OwnerScoped(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .* FROM history WHERE id = \\$1 AND user_email = \\$2").
		WithArgs(testRecordID, "other@b.c").
		WillReturnRows(sqlmock.NewRows(historyRowColumns))

	_, err := repo.FindRecord(context.Background(), testRecordID, "other@b.c")
	assert.ErrorIs(t, err, ErrHistoryRecordNotFound)
}

func TestFindRecord_MalformedIDIsNotFound(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	_, err := repo.FindRecord(context.Background(), "not-an-id", "a@b.c")
	assert.ErrorIs(t, err, ErrHistoryRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindLatestRecord_Success(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .* ORDER BY created_at DESC, id DESC LIMIT 1").
		WithArgs("a@b.c").
		WillReturnRows(sqlmock.NewRows(historyRowColumns).
			AddRow(testRecordID, "a@b.c", "go", "code", []byte(`{}`), "", time.Now()))

	record, err := repo.FindLatestRecord(context.Background(), "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, testRecordID, record.ID)
}

// ─── mutations ────────────────────────────────────────────────────────────────

func TestAttachRewrite_Success(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE history SET rewritten_code = \\$1 WHERE id = \\$2 AND user_email = \\$3").
		WithArgs("fixed", testRecordID, "a@b.c").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.AttachRewrite(context.Background(), testRecordID, "a@b.c", "fixed"))
}

func TestDeleteRecord_OtherOwnerLeavesRecord(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM history WHERE id = \\$1 AND user_email = \\$2").
		WithArgs(testRecordID, "intruder@b.c").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteRecord(context.Background(), testRecordID, "intruder@b.c")
	assert.ErrorIs(t, err, ErrHistoryRecordNotFound)
}

func TestDeleteAllRecords_ReturnsCount(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM history WHERE user_email = \\$1").
		WithArgs("a@b.c").
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.DeleteAllRecords(context.Background(), "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
