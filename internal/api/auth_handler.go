package api

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/moruhq/moru-api/internal/api/middleware"
	"github.com/moruhq/moru-api/internal/api/shared"
	"github.com/moruhq/moru-api/internal/config"
	"github.com/moruhq/moru-api/internal/service"
	"github.com/moruhq/moru-api/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userService    service.UserService
	sessionService auth.SessionService
	sessionCfg     config.SessionConfig
	validator      *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userService service.UserService,
	sessionService auth.SessionService,
	sessionCfg config.SessionConfig,
) *AuthHandler {
	return &AuthHandler{
		userService:    userService,
		sessionService: sessionService,
		sessionCfg:     sessionCfg,
		validator:      validator.New(),
	}
}

// Signup handles the /api/auth/signup endpoint.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest

	// Parse request
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Username and password are required")
		return
	}

	// HandleAPIError sorts the failure modes: 409 for a taken username,
	// 400 for validation failures, 500 for everything else.
	user, err := h.userService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		UserID:   user.ID,
		Username: user.Username,
	})
}

// Login handles the /api/auth/login endpoint.
// On success it starts a session and delivers the token in an HTTP-only
// cookie. Unknown usernames and wrong passwords produce an identical
// response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	// Parse request
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	session, err := h.sessionService.Start(r.Context(), user)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to start session")
		return
	}

	http.SetCookie(w, h.sessionCookie(session.Token, h.sessionMaxAge()))

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		UserID:   user.ID,
		Username: user.Username,
	})
}

// Logout handles the /api/auth/logout endpoint.
// Logout is idempotent: a request without a session cookie, or with a token
// that is already destroyed, still succeeds and clears the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.sessionCfg.CookieName); err == nil {
		if err := h.sessionService.End(r.Context(), cookie.Value); err != nil {
			HandleAPIError(w, r, err, "Failed to log out")
			return
		}
	}

	// MaxAge < 0 instructs the client to drop the cookie immediately.
	http.SetCookie(w, h.sessionCookie("", -1))

	w.WriteHeader(http.StatusNoContent)
}

// Me handles the /api/users/me endpoint. It runs behind the session
// middleware, so the identity is already resolved in the request context.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}
	username, _ := r.Context().Value(shared.UsernameContextKey).(string)

	shared.RespondWithJSON(w, r, http.StatusOK, MeResponse{
		LoggedIn: true,
		UserID:   userID,
		Username: username,
	})
}

// sessionCookie builds the session cookie. HTTP-only always; the Secure
// flag follows configuration (off by default for local development, a
// documented hardening gap).
func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.sessionCfg.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.sessionCfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) sessionMaxAge() int {
	return int((time.Duration(h.sessionCfg.MaxAgeMinutes) * time.Minute).Seconds())
}
