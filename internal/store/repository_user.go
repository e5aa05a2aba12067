// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-code-review/internal/logger"
	"github.com/MKhiriev/go-code-review/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the user and returns it with server-assigned fields.
//
// A unique violation on email is reported as [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID, &user.CreatedAt); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("email already registered")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByEmail returns the user registered under email or
// [ErrNoUserWasFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByEmailQuery(r.db.builder, email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error selecting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// UpdatePassword sets a new password hash and clears the passcode in one
// statement, conditioned on otpHash still being stored. Returns
// [ErrOTPNotPending] when no row matched.
func (r *userRepository) UpdatePassword(ctx context.Context, email, passwordHash, otpHash string) error {
	query, args, err := buildUpdatePasswordQuery(r.db.builder, email, passwordHash, otpHash)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*userRepository.UpdatePassword", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOTPNotPending
	}

	return nil
}

// SetOTP stores the passcode hash and its issue time.
func (r *userRepository) SetOTP(ctx context.Context, email, otpHash string, issuedAt time.Time) error {
	query, args, err := buildSetOTPQuery(r.db.builder, email, otpHash, issuedAt.UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*userRepository.SetOTP", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// ClearOTP removes any pending passcode of the user.
func (r *userRepository) ClearOTP(ctx context.Context, email string) error {
	query, args, err := buildClearOTPQuery(r.db.builder, email)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.exec(ctx, "*userRepository.ClearOTP", query, args)
	return err
}

// ClearExpiredOTPs clears every passcode issued before the given time.
func (r *userRepository) ClearExpiredOTPs(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := buildClearExpiredOTPsQuery(r.db.builder, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*userRepository.ClearExpiredOTPs", query, args)
}

func (r *userRepository) exec(ctx context.Context, fn, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user        models.User
		otpHash     sql.NullString
		otpIssuedAt sql.NullTime
	)

	err := row.Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&otpHash,
		&otpIssuedAt,
		&user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.OTPHash = otpHash.String
	if otpIssuedAt.Valid {
		issuedAt := otpIssuedAt.Time.UTC()
		user.OTPIssuedAt = &issuedAt
	}

	return user, nil
}
