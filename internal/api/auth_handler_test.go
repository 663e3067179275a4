package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moruhq/moru-api/internal/api/shared"
	"github.com/moruhq/moru-api/internal/config"
	"github.com/moruhq/moru-api/internal/domain"
	"github.com/moruhq/moru-api/internal/mocks"
	"github.com/moruhq/moru-api/internal/service"
	"github.com/moruhq/moru-api/internal/store"
)

func testSessionConfig() config.SessionConfig {
	return config.SessionConfig{
		CookieName:    "moru_session",
		MaxAgeMinutes: 720,
		CookieSecure:  false,
	}
}

func newAuthHandler(userService *mocks.MockUserService, sessionService *mocks.MockSessionService) *AuthHandler {
	return NewAuthHandler(userService, sessionService, testSessionConfig())
}

func postJSON(t *testing.T, target string, body any) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func findCookie(t *testing.T, resp *http.Response, name string) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSignupSuccess(t *testing.T) {
	t.Parallel()

	userService := &mocks.MockUserService{
		User: &domain.User{ID: 1, Username: "alice"},
	}
	handler := newAuthHandler(userService, &mocks.MockSessionService{})

	req := postJSON(t, "/api/auth/signup", SignupRequest{Username: "alice", Password: "opensesame"})
	rec := httptest.NewRecorder()
	handler.Signup(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(1), resp.UserID)
	assert.Equal(t, "alice", resp.Username)
}

func TestSignupInvalidPayload(t *testing.T) {
	t.Parallel()

	handler := newAuthHandler(&mocks.MockUserService{}, &mocks.MockSessionService{})

	// Malformed JSON
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.Signup(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Missing fields
	req = postJSON(t, "/api/auth/signup", SignupRequest{Username: "alice"})
	rec = httptest.NewRecorder()
	handler.Signup(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignupValidationErrors(t *testing.T) {
	t.Parallel()

	userService := &mocks.MockUserService{Err: domain.ErrPasswordTooShort}
	handler := newAuthHandler(userService, &mocks.MockSessionService{})

	req := postJSON(t, "/api/auth/signup", SignupRequest{Username: "alice", Password: "abc"})
	rec := httptest.NewRecorder()
	handler.Signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, domain.ErrPasswordTooShort.Error(), resp.Error)
}

func TestSignupDuplicateUsername(t *testing.T) {
	t.Parallel()

	userService := &mocks.MockUserService{Err: store.ErrUsernameExists}
	handler := newAuthHandler(userService, &mocks.MockSessionService{})

	req := postJSON(t, "/api/auth/signup", SignupRequest{Username: "alice", Password: "opensesame"})
	rec := httptest.NewRecorder()
	handler.Signup(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSignupInfrastructureFailure(t *testing.T) {
	t.Parallel()

	userService := &mocks.MockUserService{Err: errors.New("connection refused")}
	handler := newAuthHandler(userService, &mocks.MockSessionService{})

	req := postJSON(t, "/api/auth/signup", SignupRequest{Username: "alice", Password: "opensesame"})
	rec := httptest.NewRecorder()
	handler.Signup(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused",
		"internal details must not leak to the client")
}

func TestLoginSuccessSetsSessionCookie(t *testing.T) {
	t.Parallel()

	userService := &mocks.MockUserService{
		User: &domain.User{ID: 7, Username: "alice"},
	}
	sessionService := &mocks.MockSessionService{
		Session: &domain.Session{
			Token:     "sessiontoken123",
			UserID:    7,
			Username:  "alice",
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		},
	}
	handler := newAuthHandler(userService, sessionService)

	req := postJSON(t, "/api/auth/login", LoginRequest{Username: "alice", Password: "opensesame"})
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, sessionService.StartCallCount)

	cookie := findCookie(t, rec.Result(), "moru_session")
	require.NotNil(t, cookie, "login must set the session cookie")
	assert.Equal(t, "sessiontoken123", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 720*60, cookie.MaxAge)

	var resp AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(7), resp.UserID)
	assert.NotContains(t, rec.Body.String(), "sessiontoken123",
		"the token travels only in the cookie")
}

func TestLoginFailureIsUniform(t *testing.T) {
	t.Parallel()

	userService := &mocks.MockUserService{Err: service.ErrAuthenticationFailed}
	sessionService := &mocks.MockSessionService{}
	handler := newAuthHandler(userService, sessionService)

	req := postJSON(t, "/api/auth/login", LoginRequest{Username: "alice", Password: "wrong"})
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Invalid username or password", resp.Error)

	assert.Equal(t, 0, sessionService.StartCallCount, "no session may be created on failure")
	assert.Nil(t, findCookie(t, rec.Result(), "moru_session"))
}

func TestLoginSessionStartFailure(t *testing.T) {
	t.Parallel()

	userService := &mocks.MockUserService{
		User: &domain.User{ID: 7, Username: "alice"},
	}
	sessionService := &mocks.MockSessionService{Err: errors.New("redis unavailable")}
	handler := newAuthHandler(userService, sessionService)

	req := postJSON(t, "/api/auth/login", LoginRequest{Username: "alice", Password: "opensesame"})
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Nil(t, findCookie(t, rec.Result(), "moru_session"))
}

func TestLogoutEndsSessionAndClearsCookie(t *testing.T) {
	t.Parallel()

	sessionService := &mocks.MockSessionService{}
	handler := newAuthHandler(&mocks.MockUserService{}, sessionService)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "moru_session", Value: "sessiontoken123"})
	rec := httptest.NewRecorder()
	handler.Logout(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, sessionService.EndCallCount)
	assert.Equal(t, "sessiontoken123", sessionService.EndCalledWith)

	cookie := findCookie(t, rec.Result(), "moru_session")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge, "cookie must be expired on logout")
}

func TestLogoutWithoutSession(t *testing.T) {
	t.Parallel()

	sessionService := &mocks.MockSessionService{}
	handler := newAuthHandler(&mocks.MockUserService{}, sessionService)

	// No cookie at all: logout still succeeds
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	handler.Logout(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, sessionService.EndCallCount)
}

func TestMe(t *testing.T) {
	t.Parallel()

	handler := newAuthHandler(&mocks.MockUserService{}, &mocks.MockSessionService{})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, int64(7))
	ctx = context.WithValue(ctx, shared.UsernameContextKey, "alice")
	rec := httptest.NewRecorder()
	handler.Me(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp MeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.LoggedIn)
	assert.Equal(t, int64(7), resp.UserID)
	assert.Equal(t, "alice", resp.Username)
}

func TestMeWithoutIdentity(t *testing.T) {
	t.Parallel()

	handler := newAuthHandler(&mocks.MockUserService{}, &mocks.MockSessionService{})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	rec := httptest.NewRecorder()
	handler.Me(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
