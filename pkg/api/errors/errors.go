// Package errors maps domain errors to HTTP responses.
package errors

import (
	stderrors "errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/variantlab/abtest/pkg/domain"
	"github.com/variantlab/abtest/pkg/models"
)

// HTTPStatus returns the HTTP status code for a domain error code
func HTTPStatus(err error) int {
	switch domain.GetErrorCode(err) {
	case domain.ErrCodeNotFound:
		return http.StatusNotFound
	case domain.ErrCodeValidation:
		return http.StatusBadRequest
	case domain.ErrCodePreconditionFailed:
		return http.StatusUnprocessableEntity
	case domain.ErrCodeConflict:
		return http.StatusConflict
	case domain.ErrCodeDependencyUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes the JSON error response for a domain error
func Respond(c echo.Context, err error) error {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("[INTERNAL ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)
	}
	return c.JSON(status, models.ErrorResponse{
		Error:   strings.ToLower(domain.GetErrorCode(err)),
		Message: message(err, status),
	})
}

// ValidationError returns a generic bad request response for malformed input
func ValidationError(c echo.Context, err error) error {
	// Log the actual error for debugging
	log.Printf("[VALIDATION ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: "Invalid request data. Please check your input and try again.",
	})
}

// InternalError returns a generic internal error response
func InternalError(c echo.Context, err error) error {
	// Log the actual error for debugging
	log.Printf("[INTERNAL ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

func message(err error, status int) string {
	// Internal details stay out of 500 responses
	if status == http.StatusInternalServerError {
		return "An unexpected error occurred"
	}

	var de *domain.DomainError
	if stderrors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
