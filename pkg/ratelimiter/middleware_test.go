package ratelimiter_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardkit/pkg/clientip"
	"github.com/dmitrymomot/cardkit/pkg/ratelimiter"
)

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (*ratelimiter.Result, error) {
	return nil, ratelimiter.ErrStoreUnavailable
}

func (failingLimiter) AllowN(context.Context, string, int) (*ratelimiter.Result, error) {
	return nil, ratelimiter.ErrStoreUnavailable
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func request(h http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.RemoteAddr = ip + ":1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("limits per client", func(t *testing.T) {
		t.Parallel()

		b := newBucket(t, newClock(), ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Minute})
		h := ratelimiter.Middleware(b, ratelimiter.ByClientIP)(okHandler)

		rec := request(h, "192.0.2.1")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))

		assert.Equal(t, http.StatusOK, request(h, "192.0.2.1").Code)

		rec = request(h, "192.0.2.1")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
		retry, err := strconv.Atoi(rec.Header().Get("Retry-After"))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, retry, 1)

		assert.Equal(t, http.StatusOK, request(h, "192.0.2.2").Code)
	})

	t.Run("custom denied handler", func(t *testing.T) {
		t.Parallel()

		b := newBucket(t, newClock(), ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
		h := ratelimiter.Middleware(b, ratelimiter.ByClientIP,
			ratelimiter.WithDeniedHandler(func(w http.ResponseWriter, r *http.Request, res *ratelimiter.Result) {
				w.WriteHeader(http.StatusTeapot)
			}),
		)(okHandler)

		request(h, "192.0.2.1")
		assert.Equal(t, http.StatusTeapot, request(h, "192.0.2.1").Code)
	})

	t.Run("store error", func(t *testing.T) {
		t.Parallel()

		var got error
		h := ratelimiter.Middleware(failingLimiter{}, ratelimiter.ByClientIP,
			ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
				got = err
				w.WriteHeader(http.StatusServiceUnavailable)
			}),
		)(okHandler)

		assert.Equal(t, http.StatusServiceUnavailable, request(h, "192.0.2.1").Code)
		assert.True(t, errors.Is(got, ratelimiter.ErrStoreUnavailable))
	})

	t.Run("empty key bypasses", func(t *testing.T) {
		t.Parallel()

		h := ratelimiter.Middleware(failingLimiter{}, func(*http.Request) string { return "" })(okHandler)
		assert.Equal(t, http.StatusOK, request(h, "192.0.2.1").Code)
	})
}

func TestKeyFuncs(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.RemoteAddr = "192.0.2.1:80"
	assert.Equal(t, "192.0.2.1", ratelimiter.ByClientIP(req))

	req = req.WithContext(clientip.WithContext(req.Context(), "203.0.113.7"))
	assert.Equal(t, "203.0.113.7", ratelimiter.ByClientIP(req))
	assert.Equal(t, "POST /contact", ratelimiter.ByRoute(req))

	composite := ratelimiter.Composite(ratelimiter.ByRoute, ratelimiter.ByClientIP, func(*http.Request) string { return "" })
	assert.Equal(t, "POST /contact:203.0.113.7", composite(req))

	long := ratelimiter.Composite(func(*http.Request) string { return strings.Repeat("x", 100) })
	key := long(req)
	assert.LessOrEqual(t, len(key), 13)
	assert.Equal(t, key, long(req))

	assert.Empty(t, ratelimiter.Composite()(req))
}
