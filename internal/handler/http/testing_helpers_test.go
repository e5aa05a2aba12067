// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-code-review/internal/config"
	"github.com/MKhiriev/go-code-review/internal/logger"
	"github.com/MKhiriev/go-code-review/internal/service"
	"github.com/MKhiriev/go-code-review/internal/session"
	"github.com/MKhiriev/go-code-review/models"
)

var testSession = models.Session{Name: "Ann", Email: "ann@example.com"}

// ─────────────────────────────────────────────
// Fakes: service interfaces
// ─────────────────────────────────────────────

type fakeAuthService struct {
	signUpFn         func(ctx context.Context, req models.SignUpRequest) (models.User, error)
	signInFn         func(ctx context.Context, req models.SignInRequest) (models.Session, error)
	forgotPasswordFn func(ctx context.Context, req models.ForgotPasswordRequest) error
	verifyOTPFn      func(ctx context.Context, req models.VerifyOTPRequest) (string, error)
	resetPasswordFn  func(ctx context.Context, req models.ResetPasswordRequest) error
}

func (f *fakeAuthService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	return f.signUpFn(ctx, req)
}

func (f *fakeAuthService) SignIn(ctx context.Context, req models.SignInRequest) (models.Session, error) {
	return f.signInFn(ctx, req)
}

func (f *fakeAuthService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	return f.forgotPasswordFn(ctx, req)
}

func (f *fakeAuthService) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (string, error) {
	return f.verifyOTPFn(ctx, req)
}

func (f *fakeAuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	return f.resetPasswordFn(ctx, req)
}

func (f *fakeAuthService) PurgeExpiredOTPs(context.Context) (int64, error) {
	return 0, nil
}

type fakeReviewService struct {
	analyzeFn func(ctx context.Context, email string, req models.AnalyzeRequest) (models.Analysis, error)
	rewriteFn func(ctx context.Context, email string, req models.RewriteRequest) (string, error)
	chatFn    func(ctx context.Context, req models.ChatRequest) (string, error)
	catalog   map[models.ProviderName][]models.ModelInfo
}

func (f *fakeReviewService) Analyze(ctx context.Context, email string, req models.AnalyzeRequest) (models.Analysis, error) {
	return f.analyzeFn(ctx, email, req)
}

func (f *fakeReviewService) Rewrite(ctx context.Context, email string, req models.RewriteRequest) (string, error) {
	return f.rewriteFn(ctx, email, req)
}

func (f *fakeReviewService) Chat(ctx context.Context, req models.ChatRequest) (string, error) {
	return f.chatFn(ctx, req)
}

func (f *fakeReviewService) Models(context.Context) map[models.ProviderName][]models.ModelInfo {
	return f.catalog
}

type fakeHistoryService struct {
	listFn       func(ctx context.Context, email string) ([]models.HistoryRecord, error)
	getFn        func(ctx context.Context, email, recordID string) (models.HistoryRecord, error)
	sendReportFn func(ctx context.Context, email string, req models.SendReportRequest) error
	deleteFn     func(ctx context.Context, email string, req models.DeleteRecordRequest) error
	deleteAllFn  func(ctx context.Context, email string) (int64, error)
}

func (f *fakeHistoryService) List(ctx context.Context, email string) ([]models.HistoryRecord, error) {
	return f.listFn(ctx, email)
}

func (f *fakeHistoryService) Get(ctx context.Context, email, recordID string) (models.HistoryRecord, error) {
	return f.getFn(ctx, email, recordID)
}

func (f *fakeHistoryService) SendReport(ctx context.Context, email string, req models.SendReportRequest) error {
	return f.sendReportFn(ctx, email, req)
}

func (f *fakeHistoryService) Delete(ctx context.Context, email string, req models.DeleteRecordRequest) error {
	return f.deleteFn(ctx, email, req)
}

func (f *fakeHistoryService) DeleteAll(ctx context.Context, email string) (int64, error) {
	return f.deleteAllFn(ctx, email)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.version
}

func (f *fakeAppInfoService) GetBuildInfo(context.Context) models.AppBuildInfo {
	return models.AppBuildInfo{}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestSessionStore(t *testing.T) session.Store {
	t.Helper()
	store, err := session.NewStore(config.App{
		SessionSecret:   "handler-test-secret",
		SessionStore:    config.SessionStoreCookie,
		SessionDuration: time.Hour,
		TokenIssuer:     "handler-test",
	}, nil, logger.Nop())
	require.NoError(t, err)
	return store
}

// newTestHandler returns a handler over svcs with a cookie session store.
// A nil AppInfoService is replaced by a fake.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &fakeAppInfoService{version: "test-version"}
	}
	return NewHandler(svcs, newTestSessionStore(t), time.Minute, logger.Nop())
}

// sessionCookie signs in testSession with the handler's store.
func sessionCookie(t *testing.T, h *Handler) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, h.sessions.Save(context.Background(), rec, testSession))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

// serve sends the request through the full router.
func serve(t *testing.T, h *Handler, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// apiResponse mirrors models.APIResponse with Data kept raw.
type apiResponse struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Reply      string          `json:"reply"`
	ResetToken string          `json:"reset_token"`
	RecordID   string          `json:"record_id"`
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func toJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// otherSecretStore is a cookie store signing with a different secret.
func otherSecretStore(t *testing.T) session.Store {
	t.Helper()
	store, err := session.NewStore(config.App{
		SessionSecret:   "another-secret",
		SessionStore:    config.SessionStoreCookie,
		SessionDuration: time.Hour,
		TokenIssuer:     "handler-test",
	}, nil, logger.Nop())
	require.NoError(t, err)
	return store
}
