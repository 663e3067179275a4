// Package redis contains the Redis-backed implementation of the session
// store. Session records are JSON-encoded and carry a TTL equal to their
// remaining lifetime, so time-based expiry needs no sweeper: an expired
// session simply stops existing.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/moruhq/moru-api/internal/domain"
	"github.com/moruhq/moru-api/internal/platform/logger"
	"github.com/moruhq/moru-api/internal/store"
)

const sessionKeyPrefix = "session:"

// SessionStore implements store.SessionStore on top of Redis.
type SessionStore struct {
	rdb    *goredis.Client
	logger *slog.Logger
}

// NewSessionStore creates a Redis implementation of the SessionStore
// interface. The client should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewSessionStore(rdb *goredis.Client, logger *slog.Logger) *SessionStore {
	if rdb == nil {
		panic("rdb cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &SessionStore{
		rdb:    rdb,
		logger: logger.With(slog.String("component", "session_store")),
	}
}

// Ensure SessionStore implements store.SessionStore interface
var _ store.SessionStore = (*SessionStore)(nil)

// Save implements store.SessionStore.Save
// The record's TTL is its remaining lifetime; a session that is already
// past its expiry is rejected rather than stored dead.
func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := session.Validate(); err != nil {
		log.Warn("session validation failed during save",
			slog.String("error", err.Error()))
		return err
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("%w: session already expired", store.ErrInvalidEntity)
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := s.rdb.Set(ctx, sessionKey(session.Token), payload, ttl).Err(); err != nil {
		log.Error("failed to save session",
			slog.String("error", err.Error()),
			slog.Int64("user_id", session.UserID))
		return err
	}

	log.Debug("session saved",
		slog.Int64("user_id", session.UserID),
		slog.Time("expires_at", session.ExpiresAt))
	return nil
}

// Get implements store.SessionStore.Get
// Returns store.ErrSessionNotFound for tokens that have no active binding,
// whether they never existed, were deleted, or expired out of the store.
func (s *SessionStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	data, err := s.rdb.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, store.ErrSessionNotFound
		}
		log.Error("failed to get session", slog.String("error", err.Error()))
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		// A record we cannot decode is as good as absent; treat it so
		// rather than failing every request that presents the token.
		log.Error("failed to decode stored session",
			slog.String("error", err.Error()))
		return nil, store.ErrSessionNotFound
	}

	return &session, nil
}

// Delete implements store.SessionStore.Delete
// Deleting an absent token is a no-op success.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.rdb.Del(ctx, sessionKey(token)).Err(); err != nil {
		log.Error("failed to delete session", slog.String("error", err.Error()))
		return err
	}

	return nil
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}
