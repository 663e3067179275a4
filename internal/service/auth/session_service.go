package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/moruhq/moru-api/internal/domain"
	"github.com/moruhq/moru-api/internal/platform/logger"
	"github.com/moruhq/moru-api/internal/store"
)

// tokenBytes is the entropy of a session token. 32 bytes hex-encode to a
// 64-character token.
const tokenBytes = 32

// SessionService defines operations for the session lifecycle:
// Unauthenticated -> Active on Start, Active -> Destroyed on End or
// expiry. No renewal or refresh transition exists.
type SessionService interface {
	// Start creates a fresh session bound to the given user and persists
	// it with the configured lifetime. Returns the new session, whose
	// token the transport layer delivers via an HTTP-only cookie.
	Start(ctx context.Context, user *domain.User) (*domain.Session, error)

	// Validate resolves a session token to its active binding.
	// Returns ErrMissingSession for an empty token and ErrInvalidSession
	// for unknown, destroyed, or expired tokens.
	Validate(ctx context.Context, token string) (*domain.Session, error)

	// End destroys the session bound to the token. Ending an already
	// destroyed or unknown session is a no-op success, which makes
	// logout idempotent.
	End(ctx context.Context, token string) error
}

// sessionService is the SessionStore-backed implementation of SessionService.
type sessionService struct {
	sessions store.SessionStore
	maxAge   time.Duration
	timeFunc func() time.Time // Injectable for testing
	logger   *slog.Logger
}

// Ensure sessionService implements SessionService interface
var _ SessionService = (*sessionService)(nil)

// NewSessionService creates a SessionService with the given backing store
// and session lifetime. If logger is nil, a default logger will be used.
func NewSessionService(
	sessions store.SessionStore,
	maxAge time.Duration,
	logger *slog.Logger,
) (SessionService, error) {
	if sessions == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if maxAge <= 0 {
		return nil, fmt.Errorf("session max age must be positive")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &sessionService{
		sessions: sessions,
		maxAge:   maxAge,
		timeFunc: time.Now,
		logger:   logger.With(slog.String("component", "session_service")),
	}, nil
}

// Start implements SessionService.Start
func (s *sessionService) Start(ctx context.Context, user *domain.User) (*domain.Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	token, err := generateToken()
	if err != nil {
		log.Error("failed to generate session token",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := s.timeFunc().UTC()
	session := &domain.Session{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.maxAge),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		log.Error("failed to save session",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	log.Info("session started",
		slog.Int64("user_id", user.ID),
		slog.Time("expires_at", session.ExpiresAt))
	return session, nil
}

// Validate implements SessionService.Validate
func (s *sessionService) Validate(ctx context.Context, token string) (*domain.Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if token == "" {
		return nil, ErrMissingSession
	}

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, ErrInvalidSession
		}
		log.Error("failed to look up session",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	// The backing store enforces expiry via TTL; this check also covers
	// stores that retain records past their expiry time.
	if session.Expired(s.timeFunc().UTC()) {
		if err := s.sessions.Delete(ctx, token); err != nil {
			log.Warn("failed to delete expired session",
				slog.String("error", err.Error()))
		}
		return nil, ErrInvalidSession
	}

	return session, nil
}

// End implements SessionService.End
func (s *sessionService) End(ctx context.Context, token string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if token == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, token); err != nil {
		log.Error("failed to delete session",
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete session: %w", err)
	}

	log.Debug("session ended")
	return nil
}

// generateToken creates an unguessable opaque session token.
func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
