// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is the parent of every input validation sentinel in
	// this package; errors.Is(err, ErrValidation) matches any of them.
	ErrValidation = errors.New("invalid input")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)
