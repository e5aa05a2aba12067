// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-code-review/internal/config"
	"github.com/MKhiriev/go-code-review/internal/logger"
	"github.com/MKhiriev/go-code-review/internal/utils"
	"github.com/MKhiriev/go-code-review/models"
)

var testSession = models.Session{Name: "Ann", Email: "ann@example.com"}

func testAppConfig(store string) config.App {
	return config.App{
		SessionSecret:   "secret",
		SessionStore:    store,
		SessionDuration: time.Hour,
		TokenIssuer:     "test-issuer",
	}
}

// fakeRedis is an in-memory RedisClient.
type fakeRedis struct {
	data    map[string]string
	ttl     map[string]time.Duration
	failSet error
	failGet error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.failSet != nil {
		return redis.NewStatusResult("", f.failSet)
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttl[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failGet != nil {
		return redis.NewStringResult("", f.failGet)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

// roundTrip saves a session and returns a request carrying the cookie.
func roundTrip(t *testing.T, s Store) (*http.Request, *http.Cookie) {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, s.Save(context.Background(), rec, testSession))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	return req, c
}

// ─── NewStore ────────────────────────────────────────────────────────────────

func TestNewStore(t *testing.T) {
	s, err := NewStore(testAppConfig(config.SessionStoreCookie), nil, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &cookieStore{}, s)

	s, err = NewStore(testAppConfig(config.SessionStoreRedis), newFakeRedis(), logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &redisStore{}, s)

	_, err = NewStore(testAppConfig(config.SessionStoreRedis), nil, logger.Nop())
	assert.ErrorIs(t, err, ErrRedisRequired)

	_, err = NewStore(testAppConfig("memcached"), nil, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedStore)
}

// ─── cookie store ────────────────────────────────────────────────────────────

func TestCookieStore_RoundTrip(t *testing.T) {
	s := newCookieStore("secret", "test-issuer", cookieSettings{duration: time.Hour})

	req, c := roundTrip(t, s)
	assert.Equal(t, CookieName, c.Name)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, 3600, c.MaxAge)

	got, err := s.Load(req)
	require.NoError(t, err)
	assert.Equal(t, testSession, got)
}

func TestCookieStore_NoCookie(t *testing.T) {
	s := newCookieStore("secret", "test-issuer", cookieSettings{duration: time.Hour})

	_, err := s.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestCookieStore_WrongSecret(t *testing.T) {
	writer := newCookieStore("secret", "test-issuer", cookieSettings{duration: time.Hour})
	reader := newCookieStore("other", "test-issuer", cookieSettings{duration: time.Hour})

	req, _ := roundTrip(t, writer)
	_, err := reader.Load(req)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestCookieStore_WrongIssuer(t *testing.T) {
	writer := newCookieStore("secret", "issuer-a", cookieSettings{duration: time.Hour})
	reader := newCookieStore("secret", "issuer-b", cookieSettings{duration: time.Hour})

	req, _ := roundTrip(t, writer)
	_, err := reader.Load(req)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestCookieStore_Expired(t *testing.T) {
	s := newCookieStore("secret", "test-issuer", cookieSettings{duration: -time.Minute})

	rec := httptest.NewRecorder()
	require.NoError(t, s.Save(context.Background(), rec, testSession))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	// the cookie is already expired, read the raw header
	raw := rec.Header().Get("Set-Cookie")
	value := strings.TrimPrefix(strings.SplitN(raw, ";", 2)[0], CookieName+"=")
	req.AddCookie(&http.Cookie{Name: CookieName, Value: value})

	_, err := s.Load(req)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestCookieStore_RejectsOtherAudience(t *testing.T) {
	s := newCookieStore("secret", "test-issuer", cookieSettings{duration: time.Hour})

	token, err := utils.SignClaims(jwt.RegisteredClaims{
		Issuer:    "test-issuer",
		Subject:   "ann@example.com",
		Audience:  jwt.ClaimStrings{"password-reset"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, "secret")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})

	_, err = s.Load(req)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestCookieStore_Tampered(t *testing.T) {
	s := newCookieStore("secret", "test-issuer", cookieSettings{duration: time.Hour})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "a.b.c"})

	_, err := s.Load(req)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestCookieStore_Clear(t *testing.T) {
	s := newCookieStore("secret", "test-issuer", cookieSettings{duration: time.Hour})

	rec := httptest.NewRecorder()
	require.NoError(t, s.Clear(context.Background(), rec, httptest.NewRequest(http.MethodGet, "/", nil)))

	assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
}

// ─── redis store ─────────────────────────────────────────────────────────────

func TestRedisStore_RoundTrip(t *testing.T) {
	rdb := newFakeRedis()
	s := newRedisStore(rdb, cookieSettings{duration: time.Hour})

	req, c := roundTrip(t, s)

	require.Contains(t, rdb.data, redisKey(c.Value))
	assert.Equal(t, time.Hour, rdb.ttl[redisKey(c.Value)])

	got, err := s.Load(req)
	require.NoError(t, err)
	assert.Equal(t, testSession, got)
}

func TestRedisStore_Clear_RemovesKey(t *testing.T) {
	rdb := newFakeRedis()
	s := newRedisStore(rdb, cookieSettings{duration: time.Hour})

	req, c := roundTrip(t, s)

	rec := httptest.NewRecorder()
	require.NoError(t, s.Clear(context.Background(), rec, req))
	assert.NotContains(t, rdb.data, redisKey(c.Value))

	_, err := s.Load(req)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRedisStore_InvalidID(t *testing.T) {
	s := newRedisStore(newFakeRedis(), cookieSettings{duration: time.Hour})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "../../etc"})

	_, err := s.Load(req)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestRedisStore_CorruptPayload(t *testing.T) {
	rdb := newFakeRedis()
	s := newRedisStore(rdb, cookieSettings{duration: time.Hour})

	req, c := roundTrip(t, s)
	rdb.data[redisKey(c.Value)] = "{"

	_, err := s.Load(req)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestRedisStore_BackendErrors(t *testing.T) {
	rdb := newFakeRedis()
	s := newRedisStore(rdb, cookieSettings{duration: time.Hour})

	req, _ := roundTrip(t, s)

	rdb.failGet = errors.New("connection refused")
	_, err := s.Load(req)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSession)

	rdb.failSet = errors.New("connection refused")
	err = s.Save(context.Background(), httptest.NewRecorder(), testSession)
	assert.Error(t, err)
}
