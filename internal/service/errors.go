// Package service contains the application services that sit between the
// HTTP layer and the stores.
package service

import "errors"

// Common service sentinel errors
var (
	// ErrAuthenticationFailed indicates bad credentials. The same error is
	// returned whether the username is unknown or the password is wrong,
	// so callers cannot enumerate usernames.
	ErrAuthenticationFailed = errors.New("invalid username or password")

	// ErrUserNotFound indicates that the user does not exist.
	ErrUserNotFound = errors.New("user not found")
)
