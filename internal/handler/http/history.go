// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-code-review/internal/app"
	"github.com/MKhiriev/go-code-review/internal/service"
	"github.com/MKhiriev/go-code-review/models"
)

// recordIDParam is the chi URL parameter holding a history record id.
const recordIDParam = "recordID"

func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	s, err := sessionFromRequest(r)
	if err != nil {
		fail(w, r, err)
		return
	}

	records, err := h.services.HistoryService.List(r.Context(), s.Email)
	if err != nil {
		fail(w, r, err)
		return
	}

	respond(w, r, models.OKData(records))
}

func (h *Handler) getHistoryRecord(w http.ResponseWriter, r *http.Request) {
	s, err := sessionFromRequest(r)
	if err != nil {
		fail(w, r, err)
		return
	}

	record, err := h.services.HistoryService.Get(r.Context(), s.Email, chi.URLParam(r, recordIDParam))
	if err != nil {
		fail(w, r, err)
		return
	}

	respond(w, r, models.OKData(record))
}

func (h *Handler) sendHistoryEmail(w http.ResponseWriter, r *http.Request) {
	s, err := sessionFromRequest(r)
	if err != nil {
		fail(w, r, err)
		return
	}

	var req models.SendReportRequest
	if err = decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}

	if err = h.services.HistoryService.SendReport(r.Context(), s.Email, req); err != nil {
		fail(w, r, err)
		return
	}

	respond(w, r, models.OK(fmt.Sprintf(app.MsgReportSent, strings.TrimSpace(req.ToEmail))))
}

func (h *Handler) deleteHistory(w http.ResponseWriter, r *http.Request) {
	s, err := sessionFromRequest(r)
	if err != nil {
		fail(w, r, err)
		return
	}

	var req models.DeleteRecordRequest
	if err = decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}

	if err = h.services.HistoryService.Delete(r.Context(), s.Email, req); err != nil {
		fail(w, r, err, errorMessage{service.ErrRecordNotFound, app.MsgRecordNotFoundOrNotAllowed})
		return
	}

	respond(w, r, models.OK(app.MsgRecordDeleted))
}

func (h *Handler) deleteAllHistory(w http.ResponseWriter, r *http.Request) {
	s, err := sessionFromRequest(r)
	if err != nil {
		fail(w, r, err)
		return
	}

	n, err := h.services.HistoryService.DeleteAll(r.Context(), s.Email)
	if err != nil {
		fail(w, r, err)
		return
	}

	respond(w, r, models.OK(fmt.Sprintf(app.MsgRecordsDeleted, n)))
}
