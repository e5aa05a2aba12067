// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// APIResponse is the envelope of every JSON endpoint. Success carries the
// outcome; the remaining fields are set depending on the endpoint.
type APIResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	Data       any    `json:"data,omitempty"`
	Reply      string `json:"reply,omitempty"`
	ResetToken string `json:"reset_token,omitempty"`
	RecordID   string `json:"record_id,omitempty"`
}

// Fail builds a failed response with the given message.
func Fail(message string) APIResponse {
	return APIResponse{Success: false, Message: message}
}

// OK builds a successful response with the given message.
func OK(message string) APIResponse {
	return APIResponse{Success: true, Message: message}
}

// OKData builds a successful response carrying data.
func OKData(data any) APIResponse {
	return APIResponse{Success: true, Data: data}
}
