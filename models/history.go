// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// HistoryRecord is a stored code review transaction tied to one user.
type HistoryRecord struct {
	// ID is the record identifier (UUIDv7 string).
	ID string `json:"id"`

	// UserEmail is the email of the owning user.
	UserEmail string `json:"user_email"`

	// Language is the language tag the code was reviewed as.
	Language string `json:"language"`

	// OriginalCode is the code text submitted for review.
	OriginalCode string `json:"original_code"`

	// ReviewData is the review result as returned by the analysis step.
	// It is normally a ReviewResult document but is kept raw so that
	// records written by older schemas still load.
	ReviewData json.RawMessage `json:"review_data"`

	// RewrittenCode holds the attached rewrite, empty if none.
	RewrittenCode string `json:"rewritten_code"`

	// CreatedAt is the creation timestamp of the record.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the HistoryRecord model.
func (h HistoryRecord) TableName() string {
	return "history"
}

// Review decodes ReviewData into a ReviewResult. Undecodable data yields an
// empty result and ok == false.
func (h HistoryRecord) Review() (ReviewResult, bool) {
	var result ReviewResult
	if len(h.ReviewData) == 0 {
		return result, false
	}

	// review data may have been stored as a JSON string holding the document
	var nested string
	data := []byte(h.ReviewData)
	if err := json.Unmarshal(data, &nested); err == nil {
		data = []byte(nested)
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return ReviewResult{}, false
	}

	return result, true
}
