package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/moruhq/moru-api/internal/domain"
)

// MockMemoStore implements store.MemoStore for testing
type MockMemoStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, memo *domain.Memo) error
	ListByUserFn func(ctx context.Context, userID int64) ([]*domain.Memo, error)

	// Data for default implementation
	mu    sync.Mutex
	Memos []*domain.Memo

	CreateError error
	ListError   error
}

// NewMockMemoStore creates a new mock store with initialized defaults
func NewMockMemoStore() *MockMemoStore {
	return &MockMemoStore{}
}

// Create implements the store.MemoStore interface
func (m *MockMemoStore) Create(ctx context.Context, memo *domain.Memo) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, memo)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Memos = append(m.Memos, memo)
	return nil
}

// ListByUser implements the store.MemoStore interface, returning the
// user's memos newest first like the real store.
func (m *MockMemoStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Memo, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	memos := make([]*domain.Memo, 0)
	for _, memo := range m.Memos {
		if memo.UserID == userID {
			memos = append(memos, memo)
		}
	}
	sort.SliceStable(memos, func(i, j int) bool {
		return memos[i].CreatedAt.After(memos[j].CreatedAt)
	})
	return memos, nil
}
