package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware(t *testing.T) {
	e := echo.New()
	handler := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	t.Run("Success - Requests within burst are allowed", func(t *testing.T) {
		rl := NewRateLimiter(60, 3)
		mw := rl.RateLimitMiddleware()(handler)

		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, mw(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("Failure - Burst exhausted returns 429", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)
		mw := rl.RateLimitMiddleware()(handler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		rec := httptest.NewRecorder()
		require.NoError(t, mw(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)

		req = httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		rec = httptest.NewRecorder()
		require.NoError(t, mw(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("Success - Limits are tracked per IP", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)
		mw := rl.RateLimitMiddleware()(handler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.3:1234"
		rec := httptest.NewRecorder()
		require.NoError(t, mw(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)

		// A different IP gets its own bucket
		req = httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.4:1234"
		rec = httptest.NewRecorder()
		require.NoError(t, mw(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
