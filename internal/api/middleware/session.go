// Package middleware contains the HTTP middleware, including the session
// gate every protected route passes through.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/moruhq/moru-api/internal/api/shared"
	"github.com/moruhq/moru-api/internal/redact"
	"github.com/moruhq/moru-api/internal/service/auth"
)

// SessionMiddleware authenticates requests by resolving the session cookie
// to a signed-in identity. It is the single choke point in front of every
// memo operation: handlers behind it receive the resolved user ID as an
// explicit context value and never consult session state themselves.
type SessionMiddleware struct {
	sessionService auth.SessionService
	cookieName     string
}

// NewSessionMiddleware creates a new SessionMiddleware with the given
// dependencies.
func NewSessionMiddleware(sessionService auth.SessionService, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{
		sessionService: sessionService,
		cookieName:     cookieName,
	}
}

// Authenticate validates the session cookie and adds the bound user ID and
// username to the request context for authorized requests. Requests without
// an active session are rejected with 401.
func (m *SessionMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cookieName)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
			return
		}

		session, err := m.sessionService.Validate(r.Context(), cookie.Value)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrInvalidSession), errors.Is(err, auth.ErrMissingSession):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid or expired session")
			default:
				slog.Error("failed to validate session", "error", redact.Error(err))
				shared.RespondWithError(
					w,
					r,
					http.StatusInternalServerError,
					"Authentication error",
				)
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, session.UserID)
		ctx = context.WithValue(ctx, shared.UsernameContextKey, session.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated user ID from the request context.
// Returns the user ID and a boolean indicating if a valid ID was found.
// This is the single accessor handlers use to read the identity the
// Authenticate middleware resolved.
func GetUserID(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
