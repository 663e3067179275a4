package domain

import (
	"errors"
	"time"
)

// Common validation errors for Session
var (
	ErrEmptySessionToken  = errors.New("session token cannot be empty")
	ErrEmptySessionUserID = errors.New("session user ID cannot be empty")
)

// Session binds an opaque server-generated token to one signed-in
// identity. The token travels to the client in an HTTP-only cookie;
// the binding itself lives server-side so that logout and expiry can
// destroy it. An identity may hold any number of concurrent sessions.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Validate checks if the Session has valid data.
func (s *Session) Validate() error {
	if s.Token == "" {
		return ErrEmptySessionToken
	}

	if s.UserID <= 0 {
		return ErrEmptySessionUserID
	}

	return nil
}

// Expired reports whether the session has passed its expiry time.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
