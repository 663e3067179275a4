package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moruhq/moru-api/internal/api/shared"
	"github.com/moruhq/moru-api/internal/domain"
	"github.com/moruhq/moru-api/internal/mocks"
	"github.com/moruhq/moru-api/internal/service/auth"
)

const testCookieName = "moru_session"

// nextRecorder captures whether the wrapped handler ran and what identity
// it saw in the request context.
type nextRecorder struct {
	called   bool
	userID   int64
	username string
}

func (n *nextRecorder) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.called = true
		n.userID, _ = r.Context().Value(shared.UserIDContextKey).(int64)
		n.username, _ = r.Context().Value(shared.UsernameContextKey).(string)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateValidSession(t *testing.T) {
	t.Parallel()

	sessionService := &mocks.MockSessionService{
		Session: &domain.Session{
			Token:     "goodtoken",
			UserID:    7,
			Username:  "alice",
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		},
	}
	mw := NewSessionMiddleware(sessionService, testCookieName)

	next := &nextRecorder{}
	req := httptest.NewRequest(http.MethodGet, "/api/memos", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "goodtoken"})
	rec := httptest.NewRecorder()

	mw.Authenticate(next.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, next.called)
	assert.Equal(t, int64(7), next.userID)
	assert.Equal(t, "alice", next.username)
}

func TestAuthenticateMissingCookie(t *testing.T) {
	t.Parallel()

	mw := NewSessionMiddleware(&mocks.MockSessionService{}, testCookieName)

	next := &nextRecorder{}
	req := httptest.NewRequest(http.MethodGet, "/api/memos", nil)
	rec := httptest.NewRecorder()

	mw.Authenticate(next.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called, "handler must not run without a session")
}

func TestAuthenticateInvalidSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{"unknown token", auth.ErrInvalidSession},
		{"missing token", auth.ErrMissingSession},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sessionService := &mocks.MockSessionService{
				ValidateFn: func(ctx context.Context, token string) (*domain.Session, error) {
					return nil, tc.err
				},
			}
			mw := NewSessionMiddleware(sessionService, testCookieName)

			next := &nextRecorder{}
			req := httptest.NewRequest(http.MethodGet, "/api/memos", nil)
			req.AddCookie(&http.Cookie{Name: testCookieName, Value: "staletoken"})
			rec := httptest.NewRecorder()

			mw.Authenticate(next.handler()).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, next.called)
		})
	}
}

func TestAuthenticateInfrastructureFailure(t *testing.T) {
	t.Parallel()

	sessionService := &mocks.MockSessionService{
		ValidateFn: func(ctx context.Context, token string) (*domain.Session, error) {
			return nil, errors.New("redis unavailable")
		},
	}
	mw := NewSessionMiddleware(sessionService, testCookieName)

	next := &nextRecorder{}
	req := httptest.NewRequest(http.MethodGet, "/api/memos", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "sometoken"})
	rec := httptest.NewRecorder()

	mw.Authenticate(next.handler()).ServeHTTP(rec, req)

	// A store outage is a 500, never a 401 that would look like a
	// credentials problem.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, next.called)
}

func TestGetUserID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  interface{}
		wantID int64
		wantOK bool
	}{
		{"valid ID", int64(9), 9, true},
		{"missing value", nil, 0, false},
		{"zero ID", int64(0), 0, false},
		{"negative ID", int64(-3), 0, false},
		{"wrong type", "9", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.value != nil {
				ctx := context.WithValue(req.Context(), shared.UserIDContextKey, tc.value)
				req = req.WithContext(ctx)
			}

			userID, ok := GetUserID(req)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantID, userID)
		})
	}
}
