// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-code-review/internal/config"
	"github.com/MKhiriev/go-code-review/internal/logger"
	"github.com/MKhiriev/go-code-review/internal/notify"
	"github.com/MKhiriev/go-code-review/internal/store"
	"github.com/MKhiriev/go-code-review/internal/utils"
	"github.com/MKhiriev/go-code-review/models"
)

// ResetTokenAudience is the "aud" claim of password reset tokens. It keeps
// reset tokens and session tokens signed with the same secret apart.
const ResetTokenAudience = "password-reset"

// authService is the concrete implementation of AuthService.
// Passwords and passcodes are stored as bcrypt hashes.
type authService struct {
	userRepository store.UserRepository
	mailer         notify.Mailer

	// tokenSignKey signs reset tokens.
	tokenSignKey string
	tokenIssuer  string

	// otpTTL is how long a mailed passcode can be verified.
	otpTTL time.Duration
	// resetTokenTTL is how long a verified passcode can be exchanged for a
	// new password.
	resetTokenTTL time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. The returned service is safe for
// concurrent use; all state is read-only after construction.
func NewAuthService(userRepository store.UserRepository, mailer notify.Mailer, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		mailer:         mailer,
		tokenSignKey:   cfg.SessionSecret,
		tokenIssuer:    cfg.TokenIssuer,
		otpTTL:         cfg.OTPTTL,
		resetTokenTTL:  cfg.ResetTokenTTL,
		now:            time.Now,
		logger:         logger,
	}
}

// SignUp creates an account. A taken email yields ErrEmailAlreadyRegistered.
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	passwordHash, err := utils.HashSecret(req.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Info().Str("func", "*authService.SignUp").Str("email", req.Email).Msg("email already registered")
		return models.User{}, ErrEmailAlreadyRegistered
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.SignUp").Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*authService.SignUp").Int64("user_id", user.UserID).Msg("user registered")
	return user, nil
}

// SignIn authenticates a user. Unknown emails and wrong passwords are both
// reported as ErrInvalidCredentials.
func (a *authService) SignIn(ctx context.Context, req models.SignInRequest) (models.Session, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("func", "*authService.SignIn").Str("email", req.Email).Msg("unknown email")
		return models.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.SignIn").Str("email", req.Email).Msg("user search by email failed")
		return models.Session{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.CompareSecret(user.PasswordHash, req.Password); err != nil {
		log.Info().Str("func", "*authService.SignIn").Int64("user_id", user.UserID).Msg("wrong password")
		return models.Session{}, ErrInvalidCredentials
	}

	return models.Session{Name: user.Name, Email: user.Email}, nil
}

// ForgotPassword generates a six-digit passcode, stores its hash with the
// issue time and mails it. A previously pending passcode is replaced.
func (a *authService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrEmailNotFound
	}
	if err != nil {
		return fmt.Errorf("user search by email failed: %w", err)
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	otpHash, err := utils.HashSecret(otp)
	if err != nil {
		return fmt.Errorf("hash otp: %w", err)
	}

	// microsecond precision survives a round trip through every supported database
	issuedAt := a.now().UTC().Truncate(time.Microsecond)
	if err = a.userRepository.SetOTP(ctx, user.Email, otpHash, issuedAt); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	if err = a.mailer.Send(ctx, notify.OTPEmail(user.Email, otp, int(a.otpTTL.Minutes()))); err != nil {
		log.Err(err).Str("func", "*authService.ForgotPassword").Str("email", user.Email).Msg("passcode mail failed")
		if clearErr := a.userRepository.ClearOTP(ctx, user.Email); clearErr != nil {
			log.Err(clearErr).Str("func", "*authService.ForgotPassword").Msg("clearing undelivered passcode failed")
		}
		return fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}

	log.Info().Str("func", "*authService.ForgotPassword").Int64("user_id", user.UserID).Msg("passcode sent")
	return nil
}

// VerifyOTP checks the passcode against the stored hash and lifetime. On
// success it returns a reset token bound to the passcode issue time, so the
// token stops working once the passcode is replaced or consumed.
func (a *authService) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (string, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return "", ErrInvalidOTP
	}
	if err != nil {
		return "", fmt.Errorf("user search by email failed: %w", err)
	}

	if !user.HasPendingOTP() {
		return "", ErrInvalidOTP
	}

	now := a.now()
	if now.Sub(*user.OTPIssuedAt) > a.otpTTL {
		if clearErr := a.userRepository.ClearOTP(ctx, user.Email); clearErr != nil {
			log.Err(clearErr).Str("func", "*authService.VerifyOTP").Msg("clearing expired passcode failed")
		}
		return "", ErrOTPExpired
	}

	if err = utils.CompareSecret(user.OTPHash, req.OTP); err != nil {
		log.Info().Str("func", "*authService.VerifyOTP").Int64("user_id", user.UserID).Msg("wrong passcode")
		return "", ErrInvalidOTP
	}

	claims := models.ResetClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.tokenIssuer,
			Subject:   user.Email,
			Audience:  jwt.ClaimStrings{ResetTokenAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.resetTokenTTL)),
		},
		OTPIssuedAt: user.OTPIssuedAt.UnixNano(),
	}

	token, err := utils.SignClaims(claims, a.tokenSignKey)
	if err != nil {
		return "", fmt.Errorf("sign reset token: %w", err)
	}

	return token, nil
}

// ResetPassword replaces the password of the account named by a valid reset
// token. The update is conditioned on the passcode hash the token was issued
// for, so a token can be used once.
func (a *authService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	var claims models.ResetClaims
	if err := utils.ParseClaims(req.ResetToken, a.tokenSignKey, a.tokenIssuer, ResetTokenAudience, &claims); err != nil {
		log.Info().Err(err).Str("func", "*authService.ResetPassword").Msg("reset token rejected")
		return ErrInvalidResetToken
	}
	if claims.Subject != req.Email {
		return ErrInvalidResetToken
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrInvalidResetToken
	}
	if err != nil {
		return fmt.Errorf("user search by email failed: %w", err)
	}

	if !user.HasPendingOTP() || user.OTPIssuedAt.UnixNano() != claims.OTPIssuedAt {
		return ErrInvalidResetToken
	}

	passwordHash, err := utils.HashSecret(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = a.userRepository.UpdatePassword(ctx, user.Email, passwordHash, user.OTPHash)
	if errors.Is(err, store.ErrOTPNotPending) {
		return ErrInvalidResetToken
	}
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	log.Info().Str("func", "*authService.ResetPassword").Int64("user_id", user.UserID).Msg("password reset")
	return nil
}

// PurgeExpiredOTPs implements AuthService.
func (a *authService) PurgeExpiredOTPs(ctx context.Context) (int64, error) {
	return a.userRepository.ClearExpiredOTPs(ctx, a.now().UTC().Add(-a.otpTTL))
}
