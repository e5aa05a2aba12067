// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-code-review/internal/app"
	"github.com/MKhiriev/go-code-review/internal/validators"
	"github.com/MKhiriev/go-code-review/models"
)

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	s, err := sessionFromRequest(r)
	if err != nil {
		fail(w, r, err)
		return
	}

	var req models.AnalyzeRequest
	if err = decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}

	analysis, err := h.services.ReviewService.Analyze(r.Context(), s.Email, req)
	if err != nil {
		fail(w, r, err)
		return
	}

	respond(w, r, models.APIResponse{Success: true, Data: analysis.Result, RecordID: analysis.RecordID})
}

func (h *Handler) rewrite(w http.ResponseWriter, r *http.Request) {
	s, err := sessionFromRequest(r)
	if err != nil {
		fail(w, r, err)
		return
	}

	var req models.RewriteRequest
	if err = decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}

	code, err := h.services.ReviewService.Rewrite(r.Context(), s.Email, req)
	if err != nil {
		fail(w, r, err, errorMessage{validators.ErrEmptyCode, app.MsgCodeRequired})
		return
	}

	respond(w, r, models.OKData(code))
}

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	if _, err := sessionFromRequest(r); err != nil {
		fail(w, r, err)
		return
	}

	var req models.ChatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}

	reply, err := h.services.ReviewService.Chat(r.Context(), req)
	if err != nil {
		fail(w, r, err)
		return
	}

	respond(w, r, models.APIResponse{Success: true, Reply: reply})
}

func (h *Handler) listModels(w http.ResponseWriter, r *http.Request) {
	respond(w, r, models.OKData(h.services.ReviewService.Models(r.Context())))
}
