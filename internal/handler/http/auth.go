// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-code-review/internal/app"
	"github.com/MKhiriev/go-code-review/internal/logger"
	"github.com/MKhiriev/go-code-review/internal/validators"
	"github.com/MKhiriev/go-code-review/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}

	user, err := h.services.AuthService.SignUp(r.Context(), req)
	if err != nil {
		fail(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("account created")
	respond(w, r, models.OK(app.MsgAccountCreated))
}

// signIn establishes a session. Every failure is reported with the same
// message so that account existence is not revealed.
func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Warn().Err(err).Msg("sign in rejected")
		respond(w, r, models.Fail(app.MsgInvalidEmailOrPassword))
		return
	}

	s, err := h.services.AuthService.SignIn(ctx, req)
	if err != nil {
		log.Warn().Err(err).Msg("sign in rejected")
		respond(w, r, models.Fail(app.MsgInvalidEmailOrPassword))
		return
	}

	if err = h.sessions.Save(ctx, w, s); err != nil {
		fail(w, r, err)
		return
	}

	respond(w, r, models.OK(app.MsgLoginSuccessful))
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}

	if err := h.services.AuthService.ForgotPassword(r.Context(), req); err != nil {
		fail(w, r, err)
		return
	}

	respond(w, r, models.OK(app.MsgOTPSent))
}

func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyOTPRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}

	token, err := h.services.AuthService.VerifyOTP(r.Context(), req)
	if err != nil {
		fail(w, r, err, errorMessage{validators.ErrMissingFields, app.MsgInvalidOTP})
		return
	}

	respond(w, r, models.APIResponse{Success: true, ResetToken: token})
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}

	if err := h.services.AuthService.ResetPassword(r.Context(), req); err != nil {
		fail(w, r, err, errorMessage{validators.ErrPasswordTooShort, app.MsgPasswordTooShort})
		return
	}

	respond(w, r, models.OK(app.MsgPasswordResetSuccessful))
}

// logout succeeds even without a session.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(r.Context(), w, r); err != nil {
		logger.FromRequest(r).Err(err).Msg("clearing session failed")
	}
	respond(w, r, models.OK(app.MsgLoggedOut))
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	s, err := sessionFromRequest(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, r, models.OKData(s))
}
