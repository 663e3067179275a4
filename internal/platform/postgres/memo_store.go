package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/moruhq/moru-api/internal/domain"
	"github.com/moruhq/moru-api/internal/platform/logger"
	"github.com/moruhq/moru-api/internal/store"
)

// MemoStore implements the store.MemoStore interface using a PostgreSQL
// database as the storage backend. Listing rides on the
// (user_id, created_at DESC) index so per-owner retrieval stays cheap.
type MemoStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewMemoStore creates a new PostgreSQL implementation of the MemoStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller. If logger is nil, a default logger
// will be used.
func NewMemoStore(db store.DBTX, logger *slog.Logger) *MemoStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &MemoStore{
		db:     db,
		logger: logger.With(slog.String("component", "memo_store")),
	}
}

// Ensure MemoStore implements store.MemoStore interface
var _ store.MemoStore = (*MemoStore)(nil)

// Create implements store.MemoStore.Create
// It saves a new memo to the database, handling domain validation.
// Returns validation errors from the domain Memo if data is invalid.
// Returns store.ErrInvalidEntity if the owner doesn't exist (foreign key violation).
func (s *MemoStore) Create(ctx context.Context, memo *domain.Memo) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := memo.Validate(); err != nil {
		log.Warn("memo validation failed during create",
			slog.String("error", err.Error()),
			slog.String("memo_id", memo.ID.String()))
		return err
	}

	query := `
		INSERT INTO memos (id, user_id, content, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		memo.ID,
		memo.UserID,
		memo.Content,
		memo.CreatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during memo creation",
				slog.String("memo_id", memo.ID.String()),
				slog.Int64("user_id", memo.UserID))
			return fmt.Errorf("%w: user with ID %d not found",
				store.ErrInvalidEntity, memo.UserID)
		}

		log.Error("failed to create memo",
			slog.String("error", err.Error()),
			slog.String("memo_id", memo.ID.String()),
			slog.Int64("user_id", memo.UserID))
		return MapError(err)
	}

	log.Info("memo created successfully",
		slog.String("memo_id", memo.ID.String()),
		slog.Int64("user_id", memo.UserID))
	return nil
}

// ListByUser implements store.MemoStore.ListByUser
// It retrieves all memos owned by the given user, newest first.
// Returns an empty slice if the user has no memos. Re-querying re-executes
// the scan; no cursor state is retained.
func (s *MemoStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Memo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("listing memos by user", slog.Int64("user_id", userID))

	query := `
		SELECT id, user_id, content, created_at
		FROM memos
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query memos by user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var memos []*domain.Memo
	for rows.Next() {
		var memo domain.Memo
		err := rows.Scan(
			&memo.ID,
			&memo.UserID,
			&memo.Content,
			&memo.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan memo row",
				slog.String("error", err.Error()))
			return nil, err
		}
		memos = append(memos, &memo)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no memos found
	if memos == nil {
		memos = []*domain.Memo{}
	}

	log.Debug("listed memos by user",
		slog.Int64("user_id", userID),
		slog.Int("count", len(memos)))
	return memos, nil
}
