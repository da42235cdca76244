package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Run("Success - Round trip", func(t *testing.T) {
		token, err := GenerateJWT("ops", "ops@example.com", testSecret, time.Hour)
		require.NoError(t, err)

		claims, err := ValidateJWT(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "ops", claims.Subject)
		assert.Equal(t, "ops@example.com", claims.Email)
	})

	t.Run("Failure - Wrong secret", func(t *testing.T) {
		token, err := GenerateJWT("ops", "", testSecret, time.Hour)
		require.NoError(t, err)

		_, err = ValidateJWT(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("Failure - Expired token", func(t *testing.T) {
		token, err := GenerateJWT("ops", "", testSecret, -time.Minute)
		require.NoError(t, err)

		_, err = ValidateJWT(token, testSecret)
		assert.Error(t, err)
	})
}

func TestJWTMiddleware(t *testing.T) {
	e := echo.New()
	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("subject").(string))
	}
	mw := JWTMiddleware(testSecret)(handler)

	t.Run("Success - Valid bearer token", func(t *testing.T) {
		token, err := GenerateJWT("ops", "", testSecret, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		require.NoError(t, mw(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ops", rec.Body.String())
	})

	t.Run("Failure - Missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, mw(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Failure - Malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()

		require.NoError(t, mw(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
