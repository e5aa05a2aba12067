// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-code-review/internal/store"
	"github.com/MKhiriev/go-code-review/models"
)

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// Fake: store.UserRepository
// ─────────────────────────────────────────────

// memUserRepo is an in-memory store.UserRepository honouring the same
// conditional update semantics as the SQL implementation.
type memUserRepo struct {
	mu     sync.Mutex
	users  map[string]models.User
	nextID int64

	findErr   error
	setOTPErr error

	clearedBefore time.Time
	clearOTPCalls int
}

func newMemUserRepo(users ...models.User) *memUserRepo {
	r := &memUserRepo{users: map[string]models.User{}}
	for _, u := range users {
		r.nextID++
		u.UserID = r.nextID
		r.users[u.Email] = u
	}
	return r
}

func (r *memUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return models.User{}, store.ErrEmailAlreadyExists
	}
	r.nextID++
	user.UserID = r.nextID
	user.CreatedAt = time.Now().UTC()
	r.users[user.Email] = user
	return user, nil
}

func (r *memUserRepo) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return models.User{}, r.findErr
	}
	u, ok := r.users[email]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return u, nil
}

func (r *memUserRepo) UpdatePassword(_ context.Context, email, passwordHash, otpHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[email]
	if !ok || u.OTPHash == "" || u.OTPHash != otpHash {
		return store.ErrOTPNotPending
	}
	u.PasswordHash = passwordHash
	u.OTPHash = ""
	u.OTPIssuedAt = nil
	r.users[email] = u
	return nil
}

func (r *memUserRepo) SetOTP(_ context.Context, email, otpHash string, issuedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.setOTPErr != nil {
		return r.setOTPErr
	}
	u, ok := r.users[email]
	if !ok {
		return store.ErrNoUserWasFound
	}
	u.OTPHash = otpHash
	u.OTPIssuedAt = &issuedAt
	r.users[email] = u
	return nil
}

func (r *memUserRepo) ClearOTP(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clearOTPCalls++
	u, ok := r.users[email]
	if !ok {
		return store.ErrNoUserWasFound
	}
	u.OTPHash = ""
	u.OTPIssuedAt = nil
	r.users[email] = u
	return nil
}

func (r *memUserRepo) ClearExpiredOTPs(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clearedBefore = before
	var n int64
	for email, u := range r.users {
		if u.OTPIssuedAt != nil && u.OTPIssuedAt.Before(before) {
			u.OTPHash = ""
			u.OTPIssuedAt = nil
			r.users[email] = u
			n++
		}
	}
	return n, nil
}

func (r *memUserRepo) get(email string) models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[email]
}

// ─────────────────────────────────────────────
// Fake: store.HistoryRepository
// ─────────────────────────────────────────────

type memHistoryRepo struct {
	mu      sync.Mutex
	records map[string]models.HistoryRecord
	seq     int

	saveErr error
	listErr error
}

func newMemHistoryRepo(records ...models.HistoryRecord) *memHistoryRepo {
	r := &memHistoryRepo{records: map[string]models.HistoryRecord{}}
	for _, rec := range records {
		r.records[rec.ID] = rec
	}
	return r
}

func (r *memHistoryRepo) SaveRecord(_ context.Context, record models.HistoryRecord) (models.HistoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saveErr != nil {
		return models.HistoryRecord{}, r.saveErr
	}
	r.seq++
	record.ID = "rec-" + strconv.Itoa(r.seq)
	record.CreatedAt = time.Now().UTC().Add(time.Duration(r.seq) * time.Millisecond)
	r.records[record.ID] = record
	return record, nil
}

func (r *memHistoryRepo) ListRecords(_ context.Context, email string) ([]models.HistoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []models.HistoryRecord
	for _, rec := range r.records {
		if rec.UserEmail == email {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memHistoryRepo) FindRecord(_ context.Context, id, email string) (models.HistoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok || rec.UserEmail != email {
		return models.HistoryRecord{}, store.ErrHistoryRecordNotFound
	}
	return rec, nil
}

func (r *memHistoryRepo) FindLatestRecord(ctx context.Context, email string) (models.HistoryRecord, error) {
	list, _ := r.ListRecords(ctx, email)
	if len(list) == 0 {
		return models.HistoryRecord{}, store.ErrHistoryRecordNotFound
	}
	return list[0], nil
}

func (r *memHistoryRepo) AttachRewrite(_ context.Context, id, email, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok || rec.UserEmail != email {
		return store.ErrHistoryRecordNotFound
	}
	rec.RewrittenCode = code
	r.records[id] = rec
	return nil
}

func (r *memHistoryRepo) DeleteRecord(_ context.Context, id, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok || rec.UserEmail != email {
		return store.ErrHistoryRecordNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *memHistoryRepo) DeleteAllRecords(_ context.Context, email string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, rec := range r.records {
		if rec.UserEmail == email {
			delete(r.records, id)
			n++
		}
	}
	return n, nil
}
