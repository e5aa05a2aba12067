// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/signup", h.signUp)
		r.Post("/signin", h.signIn)
		r.Post("/forgot-password", h.forgotPassword)
		r.Post("/verify-otp", h.verifyOTP)
		r.Post("/reset-password", h.resetPassword)
		r.Get("/logout", h.logout)
		r.Post("/logout", h.logout)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/models", h.listModels)
	})

	// routes requiring a session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/me", h.me)

		r.Post("/api/analyze", h.analyze)
		r.Post("/api/rewrite", h.rewrite)
		r.Post("/api/chat", h.chat)

		r.Get("/api/history", h.listHistory)
		r.Get("/api/history/{"+recordIDParam+"}", h.getHistoryRecord)
		r.Post("/api/send-history-email", h.sendHistoryEmail)
		r.Post("/api/delete-history", h.deleteHistory)
		r.Post("/api/delete-all-history", h.deleteAllHistory)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
