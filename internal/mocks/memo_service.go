package mocks

import (
	"context"

	"github.com/moruhq/moru-api/internal/domain"
)

// MockMemoService implements service.MemoService for testing
type MockMemoService struct {
	// Function fields for customizable behavior
	CreateMemoFn func(ctx context.Context, userID int64, content string) (*domain.Memo, error)
	ListMemosFn  func(ctx context.Context, userID int64) ([]*domain.Memo, error)

	// Default response values
	Memo  *domain.Memo
	Memos []*domain.Memo
	Err   error
}

// CreateMemo implements the service.MemoService interface
func (m *MockMemoService) CreateMemo(ctx context.Context, userID int64, content string) (*domain.Memo, error) {
	if m.CreateMemoFn != nil {
		return m.CreateMemoFn(ctx, userID, content)
	}
	return m.Memo, m.Err
}

// ListMemos implements the service.MemoService interface
func (m *MockMemoService) ListMemos(ctx context.Context, userID int64) ([]*domain.Memo, error) {
	if m.ListMemosFn != nil {
		return m.ListMemosFn(ctx, userID)
	}
	return m.Memos, m.Err
}
