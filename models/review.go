// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ReviewResult is the structured report produced by the analysis step.
type ReviewResult struct {
	HasErrors bool    `json:"has_errors"`
	Score     int     `json:"score"`
	Summary   string  `json:"summary"`
	Errors    []Issue `json:"errors"`
}

// Issue is a single problem found during review.
type Issue struct {
	// Type is one of Bug, Security, Performance, BestPractice.
	Type string `json:"type"`

	// Severity is one of Critical, High, Medium, Low.
	Severity string `json:"severity"`

	// Line is the line reference, a number or "N/A".
	Line LineRef `json:"line"`

	Description string `json:"description"`
	Fix         string `json:"fix"`
}

// UnmarshalJSON accepts a score given as an integer or a float and rounds the
// latter. The errors list is normalized to an empty slice.
func (r *ReviewResult) UnmarshalJSON(b []byte) error {
	var aux struct {
		HasErrors bool        `json:"has_errors"`
		Score     json.Number `json:"score"`
		Summary   string      `json:"summary"`
		Errors    []Issue     `json:"errors"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	score := 0
	if aux.Score != "" {
		f, err := aux.Score.Float64()
		if err != nil {
			return fmt.Errorf("invalid score %q: %w", aux.Score, err)
		}
		score = int(math.Round(f))
	}

	if aux.Errors == nil {
		aux.Errors = []Issue{}
	}

	*r = ReviewResult{
		HasErrors: aux.HasErrors,
		Score:     score,
		Summary:   aux.Summary,
		Errors:    aux.Errors,
	}
	return nil
}

// LineRef is a line reference that the model may emit as a JSON number or
// string.
type LineRef string

// UnmarshalJSON implements json.Unmarshaler.
func (l *LineRef) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	switch {
	case s == "null":
		*l = ""
		return nil
	case strings.HasPrefix(s, `"`):
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*l = LineRef(v)
		return nil
	default:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid line reference %s", s)
		}
		*l = LineRef(strconv.FormatFloat(f, 'f', -1, 64))
		return nil
	}
}

// String returns the line reference or "N/A" if it is empty.
func (l LineRef) String() string {
	if l == "" {
		return "N/A"
	}
	return string(l)
}

// Analysis is a stored review: the result and the history record holding it.
type Analysis struct {
	RecordID string
	Result   ReviewResult
}
