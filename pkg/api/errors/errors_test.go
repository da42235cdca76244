package errors

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/variantlab/abtest/pkg/domain"
	"github.com/variantlab/abtest/pkg/models"
)

// newContext creates an echo.Context backed by an httptest.NewRecorder for the
// given HTTP method and path. It returns both the context and the recorder so
// callers can inspect the written response.
func newContext(method, path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}

// parseBody is a small helper that unmarshals the recorder body into an
// ErrorResponse, failing the test on any JSON error.
func parseBody(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// captureLog redirects the standard logger to a buffer for the duration of fn
// and returns everything that was logged.
func captureLog(fn func()) string {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)
	fn()
	return buf.String()
}

// ---------- HTTPStatus ----------

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"NotFound → 404", domain.NewNotFoundError("experiment"), http.StatusNotFound},
		{"Validation → 400", domain.NewValidationError("exactly one of user_id or session_id is required"), http.StatusBadRequest},
		{"PreconditionFailed → 422", domain.NewPreconditionFailedError("experiment is not running"), http.StatusUnprocessableEntity},
		{"Conflict → 409", domain.NewConflictError("assignment already exists"), http.StatusConflict},
		{"DependencyUnavailable → 503", domain.NewDependencyUnavailableError("redis", stderrors.New("connection refused")), http.StatusServiceUnavailable},
		{"Unknown error → 500", stderrors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

// ---------- Respond ----------

func TestRespond_DomainError(t *testing.T) {
	c, rec := newContext(http.MethodPost, "/api/v1/assignments")
	err := Respond(c, domain.NewPreconditionFailedError("experiment is not running"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := parseBody(t, rec)
	assert.Equal(t, "precondition_failed", resp.Error)
	assert.Equal(t, "experiment is not running", resp.Message)
}

func TestRespond_NotFound(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/api/v1/experiments/99999")
	_ = Respond(c, domain.NewNotFoundError("experiment"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := parseBody(t, rec)
	assert.Equal(t, "not_found", resp.Error)
}

func TestRespond_InternalHidesDetails(t *testing.T) {
	internalMsg := "pq: relation \"experiments\" does not exist"
	c, rec := newContext(http.MethodGet, "/api/v1/experiments")
	_ = Respond(c, stderrors.New(internalMsg))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), internalMsg)
	assert.NotContains(t, rec.Body.String(), "pq:")

	resp := parseBody(t, rec)
	assert.Equal(t, "internal_error", resp.Error)
	assert.NotEmpty(t, resp.Message)
}

func TestRespond_InternalLogsError(t *testing.T) {
	internalMsg := "connection refused"
	logged := captureLog(func() {
		c, _ := newContext(http.MethodGet, "/api/v1/experiments")
		_ = Respond(c, stderrors.New(internalMsg))
	})

	assert.Contains(t, logged, "[INTERNAL ERROR]")
	assert.Contains(t, logged, internalMsg)
	assert.Contains(t, logged, "/api/v1/experiments")
}

func TestRespond_ContentType(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/api/v1/experiments/1")
	_ = Respond(c, domain.NewNotFoundError("experiment"))

	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

// ---------- ValidationError ----------

func TestValidationError_StatusCode(t *testing.T) {
	c, rec := newContext(http.MethodPost, "/api/v1/experiments")
	err := ValidationError(c, stderrors.New("field 'name' is required"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidationError_ResponseBody(t *testing.T) {
	c, rec := newContext(http.MethodPost, "/api/v1/experiments")
	_ = ValidationError(c, stderrors.New("field 'name' is required"))

	resp := parseBody(t, rec)
	assert.Equal(t, "validation_error", resp.Error)
	assert.NotEmpty(t, resp.Message)
}

func TestValidationError_NoInternalDetails(t *testing.T) {
	internalMsg := "pq: duplicate key value violates unique constraint"
	c, rec := newContext(http.MethodPost, "/api/v1/experiments")
	_ = ValidationError(c, stderrors.New(internalMsg))

	assert.NotContains(t, rec.Body.String(), internalMsg)
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestValidationError_LogsInternalError(t *testing.T) {
	internalMsg := "field validation failed: variants"
	logged := captureLog(func() {
		c, _ := newContext(http.MethodPost, "/api/v1/experiments")
		_ = ValidationError(c, stderrors.New(internalMsg))
	})

	assert.Contains(t, logged, "[VALIDATION ERROR]")
	assert.Contains(t, logged, internalMsg)
	assert.Contains(t, logged, "/api/v1/experiments")
}

// ---------- InternalError ----------

func TestInternalError_StatusCode(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/api/v1/experiments")
	err := InternalError(c, stderrors.New("nil pointer dereference"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestInternalError_NoInternalDetails(t *testing.T) {
	internalMsg := "goroutine 1 [running]: main.go:42 panic: nil pointer"
	c, rec := newContext(http.MethodGet, "/api/v1/experiments")
	_ = InternalError(c, stderrors.New(internalMsg))

	assert.NotContains(t, rec.Body.String(), internalMsg)
	assert.NotContains(t, rec.Body.String(), "goroutine")
	assert.NotContains(t, rec.Body.String(), "panic")

	resp := parseBody(t, rec)
	assert.Equal(t, "internal_error", resp.Error)
	assert.NotEmpty(t, resp.Message)
}

// ---------- Table-driven summary test ----------

func TestRespond_AllCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "not found → 404",
			err:        domain.NewNotFoundError("variant"),
			wantStatus: http.StatusNotFound,
			wantError:  "not_found",
		},
		{
			name:       "validation → 400",
			err:        domain.NewValidationError("bad input"),
			wantStatus: http.StatusBadRequest,
			wantError:  "validation_error",
		},
		{
			name:       "precondition failed → 422",
			err:        domain.NewPreconditionFailedError("not running"),
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "precondition_failed",
		},
		{
			name:       "conflict → 409",
			err:        domain.NewConflictError("already assigned"),
			wantStatus: http.StatusConflict,
			wantError:  "conflict",
		},
		{
			name:       "dependency unavailable → 503",
			err:        domain.NewDependencyUnavailableError("redis", stderrors.New("connection refused")),
			wantStatus: http.StatusServiceUnavailable,
			wantError:  "dependency_unavailable",
		},
		{
			name:       "plain error → 500",
			err:        stderrors.New("oops"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodGet, "/test")
			err := Respond(c, tt.err)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)

			resp := parseBody(t, rec)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.NotEmpty(t, resp.Message)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		})
	}
}
