package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardkit/modules/billing"
	"github.com/dmitrymomot/cardkit/modules/contact"
	"github.com/dmitrymomot/cardkit/pkg/captcha"
	"github.com/dmitrymomot/cardkit/pkg/checkout"
	"github.com/dmitrymomot/cardkit/pkg/email"
	"github.com/dmitrymomot/cardkit/pkg/environment"
	"github.com/dmitrymomot/cardkit/pkg/httpserver"
	"github.com/dmitrymomot/cardkit/pkg/logger"
	"github.com/dmitrymomot/cardkit/pkg/requestid"
)

func testRouter(t *testing.T, checks ...httpserver.Check) (http.Handler, string, *bytes.Buffer) {
	t.Helper()

	assets := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(assets, "device.wasm"), []byte("\x00asm"), 0o644))
	mailDir := t.TempDir()

	var logs bytes.Buffer
	log := logger.New(
		logger.WithOutput(&logs),
		logger.WithJSONFormatter(),
		logger.WithLevel(slog.LevelDebug),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	h := newRouter(routerDeps{
		env:       environment.Development,
		log:       log,
		assetsDir: assets,
		readiness: checks,
		contact: contact.NewService(contact.Config{Inbox: "support@example.com"},
			email.NewDevSender(mailDir), captcha.NoopVerifier{}),
		billing: billing.NewService(checkout.Disabled{}),
	})
	return h, mailDir, &logs
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealth(t *testing.T) {
	t.Parallel()

	h, _, _ := testRouter(t)
	w := get(h, "/health/live")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"alive"}`, w.Body.String())

	w = get(h, "/health/ready")
	assert.Equal(t, http.StatusOK, w.Code)

	failing, _, _ := testRouter(t, httpserver.Check{Name: "redis", Fn: func(context.Context) error {
		return errors.New("connection refused")
	}})
	w = get(failing, "/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestAssets(t *testing.T) {
	t.Parallel()

	h, _, _ := testRouter(t)
	w := get(h, "/assets/device.wasm")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/wasm", w.Header().Get("Content-Type"))

	assert.Equal(t, http.StatusNotFound, get(h, "/assets/missing.js").Code)
}

func TestContactRoute(t *testing.T) {
	t.Parallel()

	h, mailDir, logs := testRouter(t)

	r := httptest.NewRequest(http.MethodPost, "/contact",
		strings.NewReader(`{"name":"Ann","email":"ann@example.com","message":"hello","captcha_token":"tok"}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestid.Header))

	files, err := filepath.Glob(filepath.Join(mailDir, "*.html"))
	require.NoError(t, err)
	assert.Len(t, files, 1)

	assert.Contains(t, logs.String(), `"path":"/contact"`)
	assert.Contains(t, logs.String(), `"request_id"`)
}

func TestBillingDisabled(t *testing.T) {
	t.Parallel()

	h, _, _ := testRouter(t)
	r := httptest.NewRequest(http.MethodPost, "/billing/checkout", strings.NewReader(`{"price_id":"pri_1"}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
