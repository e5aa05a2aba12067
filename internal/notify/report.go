// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-code-review/models"
)

const (
	OTPSubject = "Your OTP - AI Code Review"

	reportRule   = "----------------------------------------"
	reportFooter = "========================================"
)

// OTPEmail builds the passcode message for a password reset.
func OTPEmail(to, otp string, ttlMinutes int) models.Email {
	return models.Email{
		To:      to,
		Subject: OTPSubject,
		Body:    fmt.Sprintf("Your OTP is: %s\nValid for %d minutes.", otp, ttlMinutes),
	}
}

// ReportEmail renders record as a plain-text review report addressed to to.
func ReportEmail(to string, record models.HistoryRecord) models.Email {
	language := strings.ToUpper(orNA(record.Language))

	return models.Email{
		To:      to,
		Subject: "Code Review Report - " + strings.ToUpper(record.Language),
		Body:    renderReport(record, language),
	}
}

func renderReport(record models.HistoryRecord, language string) string {
	review, ok := record.Review()

	score, summary := "N/A", "N/A"
	if ok {
		score = fmt.Sprintf("%d", review.Score)
		if review.Summary != "" {
			summary = review.Summary
		}
	}

	date := "N/A"
	if !record.CreatedAt.IsZero() {
		date = record.CreatedAt.Format("2006-01-02 15:04:05")
	}

	var b strings.Builder
	b.WriteString("AI Code Review Report\n")
	b.WriteString("=====================\n")
	fmt.Fprintf(&b, "Date: %s\n", date)
	fmt.Fprintf(&b, "Language: %s\n", language)
	fmt.Fprintf(&b, "Score: %s/100\n\n", score)
	fmt.Fprintf(&b, "SUMMARY:\n%s\n\n", summary)
	fmt.Fprintf(&b, "ORIGINAL CODE:\n%s\n%s\n\n", reportRule, record.OriginalCode)
	fmt.Fprintf(&b, "ISSUES FOUND (%d total):\n%s\n", len(review.Errors), reportRule)

	for i, issue := range review.Errors {
		typ := issue.Type
		if typ == "" {
			typ = "Issue"
		}
		fmt.Fprintf(&b, "\n%d. [%s] %s - Line %s\n", i+1, orNA(issue.Severity), typ, issue.Line.String())
		fmt.Fprintf(&b, "   Issue: %s\n", issue.Description)
		fmt.Fprintf(&b, "   Fix:   %s\n", issue.Fix)
	}

	if record.RewrittenCode != "" {
		fmt.Fprintf(&b, "\n\nREWRITTEN CODE:\n%s\n%s", reportRule, record.RewrittenCode)
	}

	fmt.Fprintf(&b, "\n\n%s\nGenerated by AI Code Review Agent", reportFooter)
	return b.String()
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
