package store

import (
	"context"

	"github.com/moruhq/moru-api/internal/domain"
)

// MemoStore defines the interface for memo data persistence.
// Memos are append-only; no update or delete operation exists.
// Every read is scoped by the owning user's ID: the interface offers no
// way to enumerate memos across owners.
type MemoStore interface {
	// Create saves a new memo to the store.
	// It handles domain validation internally.
	// Returns validation errors from the domain Memo if data is invalid.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, memo *domain.Memo) error

	// ListByUser retrieves all memos owned by the given user, ordered by
	// creation time descending (newest first). Ties on identical
	// timestamps may appear in any stable order.
	// Returns an empty slice if the user has no memos.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Memo, error)
}
