package store

import (
	"context"

	"github.com/moruhq/moru-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// It is the authoritative registry for identity existence: signup-time
// username uniqueness is enforced here, not by the caller.
type UserStore interface {
	// Create saves a new user to the store and assigns its ID from the
	// store's monotonically increasing sequence.
	// The user must already carry a hashed password.
	// Returns ErrUsernameExists if the username is already taken
	// (exact, case-sensitive match).
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique numeric ID.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user contains all fields except the plaintext password.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByUsername retrieves a user by their username.
	// The lookup is exact and case-sensitive.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
