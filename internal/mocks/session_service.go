package mocks

import (
	"context"

	"github.com/moruhq/moru-api/internal/domain"
	"github.com/moruhq/moru-api/internal/service/auth"
)

// MockSessionService implements auth.SessionService for testing
type MockSessionService struct {
	// Function fields for customizable behavior
	StartFn    func(ctx context.Context, user *domain.User) (*domain.Session, error)
	ValidateFn func(ctx context.Context, token string) (*domain.Session, error)
	EndFn      func(ctx context.Context, token string) error

	// Default response values
	Session *domain.Session
	Err     error

	// Call tracking for verification
	StartCallCount    int
	ValidateCallCount int
	EndCallCount      int
	EndCalledWith     string
}

// Start implements the auth.SessionService interface
func (m *MockSessionService) Start(ctx context.Context, user *domain.User) (*domain.Session, error) {
	m.StartCallCount++
	if m.StartFn != nil {
		return m.StartFn(ctx, user)
	}
	return m.Session, m.Err
}

// Validate implements the auth.SessionService interface. With no custom
// function and no default session configured it reports an invalid session.
func (m *MockSessionService) Validate(ctx context.Context, token string) (*domain.Session, error) {
	m.ValidateCallCount++
	if m.ValidateFn != nil {
		return m.ValidateFn(ctx, token)
	}
	if m.Session == nil && m.Err == nil {
		return nil, auth.ErrInvalidSession
	}
	return m.Session, m.Err
}

// End implements the auth.SessionService interface
func (m *MockSessionService) End(ctx context.Context, token string) error {
	m.EndCallCount++
	m.EndCalledWith = token
	if m.EndFn != nil {
		return m.EndFn(ctx, token)
	}
	return m.Err
}
