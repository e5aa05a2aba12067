// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-code-review/internal/logger"
	"github.com/MKhiriev/go-code-review/internal/notify"
	"github.com/MKhiriev/go-code-review/internal/store"
	"github.com/MKhiriev/go-code-review/models"
)

type historyService struct {
	historyRepository store.HistoryRepository
	mailer            notify.Mailer

	logger *logger.Logger
}

func NewHistoryService(historyRepository store.HistoryRepository, mailer notify.Mailer, logger *logger.Logger) HistoryService {
	return &historyService{
		historyRepository: historyRepository,
		mailer:            mailer,
		logger:            logger,
	}
}

func mapHistoryError(err error) error {
	if errors.Is(err, store.ErrHistoryRecordNotFound) {
		return ErrRecordNotFound
	}
	return err
}

// List implements HistoryService. The result is never nil.
func (s *historyService) List(ctx context.Context, email string) ([]models.HistoryRecord, error) {
	records, err := s.historyRepository.ListRecords(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	if records == nil {
		records = []models.HistoryRecord{}
	}
	return records, nil
}

// Get implements HistoryService.
func (s *historyService) Get(ctx context.Context, email, recordID string) (models.HistoryRecord, error) {
	record, err := s.historyRepository.FindRecord(ctx, recordID, email)
	if err != nil {
		return models.HistoryRecord{}, mapHistoryError(err)
	}
	return record, nil
}

// SendReport implements HistoryService. Only the owner's records can be sent.
func (s *historyService) SendReport(ctx context.Context, email string, req models.SendReportRequest) error {
	log := logger.FromContext(ctx)

	record, err := s.historyRepository.FindRecord(ctx, req.RecordID, email)
	if err != nil {
		return mapHistoryError(err)
	}

	if err = s.mailer.Send(ctx, notify.ReportEmail(req.ToEmail, record)); err != nil {
		log.Err(err).Str("func", "*historyService.SendReport").Str("record_id", record.ID).Msg("report mail failed")
		return fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}

	log.Info().Str("func", "*historyService.SendReport").Str("record_id", record.ID).Msg("report sent")
	return nil
}

// Delete implements HistoryService. A record owned by someone else is
// reported as not found and left intact.
func (s *historyService) Delete(ctx context.Context, email string, req models.DeleteRecordRequest) error {
	if err := s.historyRepository.DeleteRecord(ctx, req.RecordID, email); err != nil {
		return mapHistoryError(err)
	}
	return nil
}

// DeleteAll implements HistoryService.
func (s *historyService) DeleteAll(ctx context.Context, email string) (int64, error) {
	n, err := s.historyRepository.DeleteAllRecords(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("delete history: %w", err)
	}
	return n, nil
}
