package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arxlab/arxpoints/pkg/auth"
)

func TestLocalLimiter(t *testing.T) {
	ctx := context.Background()

	t.Run("allows up to the limit then denies", func(t *testing.T) {
		now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		limiter := NewLocalLimiter().WithNow(func() time.Time { return now })

		for i := 0; i < 5; i++ {
			res, err := limiter.Allow(ctx, "k", 5)
			assert.NoError(t, err)
			assert.True(t, res.Allowed)
			assert.Equal(t, 5-i-1, res.Remaining)
		}

		res, err := limiter.Allow(ctx, "k", 5)
		assert.NoError(t, err)
		assert.False(t, res.Allowed)
		assert.Equal(t, 0, res.Remaining)
		assert.Greater(t, res.RetryAfter, time.Duration(0))
	})

	t.Run("window slides", func(t *testing.T) {
		now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		limiter := NewLocalLimiter().WithNow(func() time.Time { return now })

		for i := 0; i < 3; i++ {
			res, _ := limiter.Allow(ctx, "k", 3)
			assert.True(t, res.Allowed)
		}
		res, _ := limiter.Allow(ctx, "k", 3)
		assert.False(t, res.Allowed)

		now = now.Add(61 * time.Second)
		res, err := limiter.Allow(ctx, "k", 3)
		assert.NoError(t, err)
		assert.True(t, res.Allowed)
	})

	t.Run("keys are independent", func(t *testing.T) {
		limiter := NewLocalLimiter()

		res, _ := limiter.Allow(ctx, "a", 1)
		assert.True(t, res.Allowed)
		res, _ = limiter.Allow(ctx, "a", 1)
		assert.False(t, res.Allowed)
		res, _ = limiter.Allow(ctx, "b", 1)
		assert.True(t, res.Allowed)
	})
}

func TestMiddleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("denies after the class budget is spent", func(t *testing.T) {
		limiter := NewLocalLimiter()
		handler := Middleware(limiter, Class{Name: "test", PerMinute: 2})(okHandler)

		for i := 0; i < 2; i++ {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Remaining"))
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	})

	t.Run("authenticated callers are keyed by user id", func(t *testing.T) {
		limiter := NewLocalLimiter()
		handler := Middleware(limiter, Class{Name: "test", PerMinute: 1})(okHandler)

		send := func(userID int) *httptest.ResponseRecorder {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
			handler.ServeHTTP(rec, req.WithContext(ctx))
			return rec
		}

		assert.Equal(t, http.StatusOK, send(1).Code)
		assert.Equal(t, http.StatusTooManyRequests, send(1).Code)
		assert.Equal(t, http.StatusOK, send(2).Code)
	})

	t.Run("distinct IPs have distinct budgets", func(t *testing.T) {
		limiter := NewLocalLimiter()
		handler := Middleware(limiter, Class{Name: "test", PerMinute: 1})(okHandler)

		send := func(addr string) *httptest.ResponseRecorder {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = addr
			handler.ServeHTTP(rec, req)
			return rec
		}

		assert.Equal(t, http.StatusOK, send("10.0.0.1:1234").Code)
		assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:9999").Code)
		assert.Equal(t, http.StatusOK, send("10.0.0.2:1234").Code)
	})
}
