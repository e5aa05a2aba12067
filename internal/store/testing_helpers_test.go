// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"

	"github.com/MKhiriev/go-code-review/models"
)

func testUser(email string) models.User {
	return models.User{Name: "Ann", Email: email, PasswordHash: "hash"}
}

func testRecord(email string) models.HistoryRecord {
	return models.HistoryRecord{
		UserEmail:    email,
		Language:     "python",
		OriginalCode: "print('hi')",
		ReviewData:   json.RawMessage(`{"has_errors":false,"score":100,"summary":"ok","errors":[]}`),
	}
}
