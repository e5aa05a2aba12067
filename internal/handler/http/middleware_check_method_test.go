// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/only-get", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("get")) })
	router.Get("/both", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("get")) })
	router.Post("/both", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("post")) })
	router.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("item")) })
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method, path string
		wantStatus   int
		wantBody     string
	}{
		{http.MethodGet, "/only-get", http.StatusOK, "get"},
		{http.MethodPost, "/only-get", http.StatusNotFound, ""},
		{http.MethodDelete, "/only-get", http.StatusNotFound, ""},
		{http.MethodPost, "/both", http.StatusOK, "post"},
		{http.MethodPut, "/both", http.StatusNotFound, ""},
		{http.MethodGet, "/items/7", http.StatusOK, "item"},
		{http.MethodPost, "/items/7", http.StatusNotFound, ""},
		{http.MethodGet, "/missing", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
