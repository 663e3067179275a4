package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidSession indicates the session token has no active binding:
	// it never existed, was destroyed by logout, or expired.
	ErrInvalidSession = errors.New("invalid session")

	// ErrMissingSession indicates a session token was expected but not provided.
	ErrMissingSession = errors.New("session token is missing")
)
