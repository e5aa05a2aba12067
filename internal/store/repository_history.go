// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-code-review/internal/logger"
	"github.com/MKhiriev/go-code-review/internal/utils"
	"github.com/MKhiriev/go-code-review/models"
)

// historyRepository is the SQL implementation of [HistoryRepository] over
// the "history" table.
type historyRepository struct {
	logger      *logger.Logger
	db          *DB
	idGenerator IDGenerator
}

// NewHistoryRepository constructs a [HistoryRepository] backed by db.
// Record ids are UUIDv7 strings.
func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Msg("creating history repository")
	return &historyRepository{
		db:          db,
		logger:      logger,
		idGenerator: utils.NewUUIDGenerator(),
	}
}

// SaveRecord inserts the record. ID and CreatedAt are assigned when empty.
func (r *historyRepository) SaveRecord(ctx context.Context, record models.HistoryRecord) (models.HistoryRecord, error) {
	log := logger.FromContext(ctx)

	if record.ID == "" {
		record.ID = r.idGenerator.Generate()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if len(record.ReviewData) == 0 {
		record.ReviewData = json.RawMessage("null")
	}

	query, args, err := buildSaveRecordQuery(r.db.builder, record)
	if err != nil {
		return models.HistoryRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*historyRepository.SaveRecord").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error inserting history record")
		return models.HistoryRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

// ListRecords returns all records of the owner, newest first.
func (r *historyRepository) ListRecords(ctx context.Context, email string) ([]models.HistoryRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecordsQuery(r.db.builder, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.ListRecords").Msg("error selecting history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.HistoryRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// FindRecord returns the record with the id if it belongs to email.
func (r *historyRepository) FindRecord(ctx context.Context, id, email string) (models.HistoryRecord, error) {
	if !utils.IsValidID(id) {
		return models.HistoryRecord{}, ErrHistoryRecordNotFound
	}

	query, args, err := buildFindRecordQuery(r.db.builder, id, email)
	if err != nil {
		return models.HistoryRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryRecord(ctx, "*historyRepository.FindRecord", query, args)
}

// FindLatestRecord returns the newest record of the owner.
func (r *historyRepository) FindLatestRecord(ctx context.Context, email string) (models.HistoryRecord, error) {
	query, args, err := buildFindLatestRecordQuery(r.db.builder, email)
	if err != nil {
		return models.HistoryRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryRecord(ctx, "*historyRepository.FindLatestRecord", query, args)
}

// AttachRewrite stores code as the rewrite of the owner's record.
func (r *historyRepository) AttachRewrite(ctx context.Context, id, email, code string) error {
	if !utils.IsValidID(id) {
		return ErrHistoryRecordNotFound
	}

	query, args, err := buildAttachRewriteQuery(r.db.builder, id, email, code)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "*historyRepository.AttachRewrite", query, args)
}

// DeleteRecord deletes the owner's record. A record owned by someone else is
// left intact and reported as [ErrHistoryRecordNotFound].
func (r *historyRepository) DeleteRecord(ctx context.Context, id, email string) error {
	if !utils.IsValidID(id) {
		return ErrHistoryRecordNotFound
	}

	query, args, err := buildDeleteRecordQuery(r.db.builder, id, email)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "*historyRepository.DeleteRecord", query, args)
}

// DeleteAllRecords deletes every record of the owner and returns the count.
func (r *historyRepository) DeleteAllRecords(ctx context.Context, email string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAllRecordsQuery(r.db.builder, email)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.DeleteAllRecords").Msg("error deleting history")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

func (r *historyRepository) queryRecord(ctx context.Context, fn, query string, args []any) (models.HistoryRecord, error) {
	record, err := scanRecord(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HistoryRecord{}, ErrHistoryRecordNotFound
		}

		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error selecting history record")
		return models.HistoryRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

func (r *historyRepository) execOne(ctx context.Context, fn, query string, args []any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrHistoryRecordNotFound
	}

	return nil
}

func scanRecord(row rowScanner) (models.HistoryRecord, error) {
	var (
		record     models.HistoryRecord
		reviewData []byte
	)

	err := row.Scan(
		&record.ID,
		&record.UserEmail,
		&record.Language,
		&record.OriginalCode,
		&reviewData,
		&record.RewrittenCode,
		&record.CreatedAt,
	)
	if err != nil {
		return models.HistoryRecord{}, err
	}

	record.ReviewData = normalizeReviewData(reviewData)
	return record, nil
}

// normalizeReviewData returns stored review data as raw JSON. Legacy rows
// holding free text are returned as a JSON string.
func normalizeReviewData(data []byte) json.RawMessage {
	if len(data) == 0 {
		return json.RawMessage("null")
	}
	if json.Valid(data) {
		return json.RawMessage(append([]byte(nil), data...))
	}

	quoted, _ := json.Marshal(string(data))
	return quoted
}
