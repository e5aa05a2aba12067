// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-code-review/internal/adapter"
	"github.com/MKhiriev/go-code-review/internal/logger"
	"github.com/MKhiriev/go-code-review/internal/store"
	"github.com/MKhiriev/go-code-review/models"
)

type reviewService struct {
	providers         adapter.ProviderRegistry
	historyRepository store.HistoryRepository

	logger *logger.Logger
}

func NewReviewService(providers adapter.ProviderRegistry, historyRepository store.HistoryRepository, logger *logger.Logger) ReviewService {
	return &reviewService{
		providers:         providers,
		historyRepository: historyRepository,
		logger:            logger,
	}
}

// resolve returns the provider named by providerName and the generation
// parameters with the model filled in.
func (s *reviewService) resolve(providerName, model string, params models.GenerationParams) (adapter.Provider, models.GenerationParams, error) {
	provider, err := s.providers.Get(providerName)
	if err != nil {
		return nil, params, err
	}

	params.Model = model
	if params.Model == "" {
		params.Model = provider.Name().DefaultModel()
	}
	return provider, params, nil
}

// Analyze implements ReviewService.
func (s *reviewService) Analyze(ctx context.Context, email string, req models.AnalyzeRequest) (models.Analysis, error) {
	log := logger.FromContext(ctx)

	provider, params, err := s.resolve(req.Provider, req.Model, analyzeParams)
	if err != nil {
		return models.Analysis{}, err
	}

	reply, err := provider.Generate(ctx, analyzePrompt(req.Language, req.Code), params)
	if err != nil {
		return models.Analysis{}, fmt.Errorf("analyze: %w", err)
	}

	result, err := parseReview(reply)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "*reviewService.Analyze").
			Str("provider", provider.Name().String()).
			Str("model", params.Model).
			Int("reply_length", len(reply)).
			Msg("unparseable analysis reply")
		return models.Analysis{}, err
	}

	reviewData, err := json.Marshal(result)
	if err != nil {
		return models.Analysis{}, fmt.Errorf("encode review: %w", err)
	}

	record, err := s.historyRepository.SaveRecord(ctx, models.HistoryRecord{
		UserEmail:    email,
		Language:     req.Language,
		OriginalCode: req.Code,
		ReviewData:   reviewData,
	})
	if err != nil {
		log.Err(err).Str("func", "*reviewService.Analyze").Msg("saving history record failed")
		return models.Analysis{}, fmt.Errorf("save review: %w", err)
	}

	return models.Analysis{RecordID: record.ID, Result: result}, nil
}

// Rewrite implements ReviewService. With req.RecordID the rewrite is attached
// to that record, which must belong to email; otherwise it goes to the
// user's latest record, if any.
func (s *reviewService) Rewrite(ctx context.Context, email string, req models.RewriteRequest) (string, error) {
	log := logger.FromContext(ctx)

	provider, params, err := s.resolve(req.Provider, req.Model, rewriteParams)
	if err != nil {
		return "", err
	}

	if req.RecordID != "" {
		if _, err = s.historyRepository.FindRecord(ctx, req.RecordID, email); err != nil {
			return "", mapHistoryError(err)
		}
	}

	reply, err := provider.Generate(ctx, rewritePrompt(req.Language, req.Code), params)
	if err != nil {
		return "", fmt.Errorf("rewrite: %w", err)
	}
	code := extractCodeBlock(reply)

	recordID := req.RecordID
	if recordID == "" {
		latest, findErr := s.historyRepository.FindLatestRecord(ctx, email)
		switch {
		case errors.Is(findErr, store.ErrHistoryRecordNotFound):
			return code, nil
		case findErr != nil:
			log.Err(findErr).Str("func", "*reviewService.Rewrite").Msg("latest record lookup failed")
			return code, nil
		}
		recordID = latest.ID
	}

	if err = s.historyRepository.AttachRewrite(ctx, recordID, email, code); err != nil {
		log.Err(err).Str("func", "*reviewService.Rewrite").Str("record_id", recordID).Msg("attaching rewrite failed")
	}

	return code, nil
}

// Chat implements ReviewService.
func (s *reviewService) Chat(ctx context.Context, req models.ChatRequest) (string, error) {
	provider, params, err := s.resolve(req.Provider, req.Model, chatParams)
	if err != nil {
		return "", err
	}

	reply, err := provider.Generate(ctx, chatPrompt(req.Messages), params)
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}
	return reply, nil
}

// Models implements ReviewService.
func (s *reviewService) Models(ctx context.Context) map[models.ProviderName][]models.ModelInfo {
	catalog := make(map[models.ProviderName][]models.ModelInfo)
	for _, name := range s.providers.Configured() {
		catalog[name] = name.Models()
	}
	return catalog
}
