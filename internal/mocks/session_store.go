package mocks

import (
	"context"
	"sync"

	"github.com/moruhq/moru-api/internal/domain"
	"github.com/moruhq/moru-api/internal/store"
)

// MockSessionStore implements store.SessionStore for testing
type MockSessionStore struct {
	// Function fields for customizable behavior
	SaveFn   func(ctx context.Context, session *domain.Session) error
	GetFn    func(ctx context.Context, token string) (*domain.Session, error)
	DeleteFn func(ctx context.Context, token string) error

	// Data for default implementation
	mu       sync.Mutex
	Sessions map[string]*domain.Session

	SaveError error

	// Call tracking for verification
	DeleteCallCount int
}

// NewMockSessionStore creates a new mock store with initialized defaults
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{
		Sessions: make(map[string]*domain.Session),
	}
}

// Save implements the store.SessionStore interface
func (m *MockSessionStore) Save(ctx context.Context, session *domain.Session) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, session)
	}

	if m.SaveError != nil {
		return m.SaveError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sessions[session.Token] = session
	return nil
}

// Get implements the store.SessionStore interface
func (m *MockSessionStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, token)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.Sessions[token]
	if !exists {
		return nil, store.ErrSessionNotFound
	}
	return session, nil
}

// Delete implements the store.SessionStore interface
func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	m.DeleteCallCount++
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, token)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Sessions, token)
	return nil
}
