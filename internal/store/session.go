package store

import (
	"context"

	"github.com/moruhq/moru-api/internal/domain"
)

// SessionStore defines the interface for session state persistence.
// Sessions are keyed by their opaque token and require no cross-session
// coordination.
type SessionStore interface {
	// Save persists the session binding until its expiry time.
	// Saving an existing token overwrites the previous binding.
	Save(ctx context.Context, session *domain.Session) error

	// Get retrieves the session bound to the given token.
	// Returns ErrSessionNotFound if the token has no active binding,
	// whether it never existed, was deleted, or expired.
	Get(ctx context.Context, token string) (*domain.Session, error)

	// Delete destroys the binding for the given token.
	// Deleting an absent token is a no-op success, which makes logout
	// idempotent.
	Delete(ctx context.Context, token string) error
}
