package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/moruhq/moru-api/internal/domain"
	"github.com/moruhq/moru-api/internal/platform/logger"
	"github.com/moruhq/moru-api/internal/store"
)

// MemoService provides memo creation and owner-scoped listing.
// Callers must pass an authenticated user ID resolved by the session
// middleware; the service never derives ownership from anything else.
type MemoService interface {
	// CreateMemo creates a new memo owned by the given user.
	// Content is trimmed and bound-checked (1-2000 characters); the
	// creation timestamp is assigned at insert time.
	CreateMemo(ctx context.Context, userID int64, content string) (*domain.Memo, error)

	// ListMemos retrieves the user's memos, newest first. Only memos
	// owned by userID are ever returned.
	ListMemos(ctx context.Context, userID int64) ([]*domain.Memo, error)
}

// memoService implements the MemoService interface.
type memoService struct {
	memos  store.MemoStore
	logger *slog.Logger
}

// Ensure memoService implements MemoService interface
var _ MemoService = (*memoService)(nil)

// NewMemoService creates a new MemoService.
// It returns an error if the memo store is nil.
func NewMemoService(memos store.MemoStore, logger *slog.Logger) (MemoService, error) {
	if memos == nil {
		return nil, fmt.Errorf("memo store is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &memoService{
		memos:  memos,
		logger: logger.With(slog.String("component", "memo_service")),
	}, nil
}

// CreateMemo implements MemoService.CreateMemo
func (s *memoService) CreateMemo(ctx context.Context, userID int64, content string) (*domain.Memo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	memo, err := domain.NewMemo(userID, content)
	if err != nil {
		log.Debug("memo rejected by validation",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, err
	}

	if err := s.memos.Create(ctx, memo); err != nil {
		log.Error("failed to create memo",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to create memo: %w", err)
	}

	return memo, nil
}

// ListMemos implements MemoService.ListMemos
func (s *memoService) ListMemos(ctx context.Context, userID int64) ([]*domain.Memo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	memos, err := s.memos.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to list memos",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to list memos: %w", err)
	}

	return memos, nil
}
