package api

import (
	"errors"
	"net/http"

	"github.com/moruhq/moru-api/internal/api/shared"
	"github.com/moruhq/moru-api/internal/domain"
	"github.com/moruhq/moru-api/internal/service"
	"github.com/moruhq/moru-api/internal/service/auth"
	"github.com/moruhq/moru-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors. Bad credentials and dead sessions both map
	// to 401 with uniform messages.
	case errors.Is(err, service.ErrAuthenticationFailed),
		errors.Is(err, auth.ErrInvalidSession),
		errors.Is(err, auth.ErrMissingSession),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Conflict errors
	case errors.Is(err, store.ErrUsernameExists):
		return http.StatusConflict

	// Not found errors
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors: domain validation failures and entity
	// constraint violations
	case isValidationError(err),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrAuthenticationFailed):
		// Deliberately identical for unknown usernames and wrong
		// passwords.
		return "Invalid username or password"

	case errors.Is(err, auth.ErrInvalidSession),
		errors.Is(err, auth.ErrMissingSession):
		return "Invalid or expired session"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"

	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrMemoNotFound):
		return "Memo not found"

	// Domain validation errors carry user-facing text by construction.
	case isValidationError(err):
		return err.Error()

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes an error response for err, choosing the status code
// and safe message centrally. When userMessage is non-empty it overrides the
// derived message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}

// isValidationError reports whether err is one of the domain's input
// validation failures. The domain wraps every validation sentinel under
// ErrValidation, so one check covers them all.
func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrValidation)
}
