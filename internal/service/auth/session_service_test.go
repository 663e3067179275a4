package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moruhq/moru-api/internal/domain"
	"github.com/moruhq/moru-api/internal/store"
)

// fakeSessionStore is an in-memory store.SessionStore. Defined locally
// because importing internal/mocks from this package would be circular.
type fakeSessionStore struct {
	sessions map[string]*domain.Session

	saveErr   error
	getErr    error
	deleteErr error

	deleteCount int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*domain.Session)}
}

func (f *fakeSessionStore) Save(_ context.Context, session *domain.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessionStore) Get(_ context.Context, token string) (*domain.Session, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	session, ok := f.sessions[token]
	if !ok {
		return nil, store.ErrSessionNotFound
	}
	return session, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, token string) error {
	f.deleteCount++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.sessions, token)
	return nil
}

func newTestSessionService(t *testing.T, sessions store.SessionStore, maxAge time.Duration) *sessionService {
	t.Helper()
	svc, err := NewSessionService(sessions, maxAge, nil)
	require.NoError(t, err)
	return svc.(*sessionService)
}

func TestNewSessionServiceValidation(t *testing.T) {
	t.Parallel()

	_, err := NewSessionService(nil, time.Hour, nil)
	assert.Error(t, err)

	_, err = NewSessionService(newFakeSessionStore(), 0, nil)
	assert.Error(t, err)

	_, err = NewSessionService(newFakeSessionStore(), time.Hour, nil)
	assert.NoError(t, err)
}

func TestSessionServiceStart(t *testing.T) {
	t.Parallel()

	sessions := newFakeSessionStore()
	svc := newTestSessionService(t, sessions, time.Hour)

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc.timeFunc = func() time.Time { return now }

	user := &domain.User{ID: 7, Username: "alice"}
	session, err := svc.Start(context.Background(), user)
	require.NoError(t, err)

	assert.Len(t, session.Token, 64, "token should be 32 bytes hex-encoded")
	assert.Equal(t, int64(7), session.UserID)
	assert.Equal(t, "alice", session.Username)
	assert.Equal(t, now, session.CreatedAt)
	assert.Equal(t, now.Add(time.Hour), session.ExpiresAt)

	// Session becomes resolvable immediately
	saved, ok := sessions.sessions[session.Token]
	require.True(t, ok)
	assert.Equal(t, session, saved)
}

func TestSessionServiceStartTokensAreUnique(t *testing.T) {
	t.Parallel()

	sessions := newFakeSessionStore()
	svc := newTestSessionService(t, sessions, time.Hour)
	user := &domain.User{ID: 1, Username: "alice"}

	first, err := svc.Start(context.Background(), user)
	require.NoError(t, err)
	second, err := svc.Start(context.Background(), user)
	require.NoError(t, err)

	// Two concurrent sessions for the same user coexist
	assert.NotEqual(t, first.Token, second.Token)
	assert.Len(t, sessions.sessions, 2)
}

func TestSessionServiceStartSaveFailure(t *testing.T) {
	t.Parallel()

	sessions := newFakeSessionStore()
	sessions.saveErr = errors.New("redis unavailable")
	svc := newTestSessionService(t, sessions, time.Hour)

	_, err := svc.Start(context.Background(), &domain.User{ID: 1, Username: "alice"})
	assert.Error(t, err)
}

func TestSessionServiceValidate(t *testing.T) {
	t.Parallel()

	sessions := newFakeSessionStore()
	svc := newTestSessionService(t, sessions, time.Hour)

	user := &domain.User{ID: 3, Username: "bob"}
	started, err := svc.Start(context.Background(), user)
	require.NoError(t, err)

	session, err := svc.Validate(context.Background(), started.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), session.UserID)
	assert.Equal(t, "bob", session.Username)
}

func TestSessionServiceValidateMissingToken(t *testing.T) {
	t.Parallel()

	svc := newTestSessionService(t, newFakeSessionStore(), time.Hour)

	_, err := svc.Validate(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingSession)
}

func TestSessionServiceValidateUnknownToken(t *testing.T) {
	t.Parallel()

	svc := newTestSessionService(t, newFakeSessionStore(), time.Hour)

	_, err := svc.Validate(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionServiceValidateExpired(t *testing.T) {
	t.Parallel()

	sessions := newFakeSessionStore()
	svc := newTestSessionService(t, sessions, time.Hour)

	started, err := svc.Start(context.Background(), &domain.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	// Advance the clock past expiry
	svc.timeFunc = func() time.Time { return time.Now().UTC().Add(2 * time.Hour) }

	_, err = svc.Validate(context.Background(), started.Token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	// The stale binding is destroyed on discovery
	assert.Equal(t, 1, sessions.deleteCount)
	assert.Empty(t, sessions.sessions)
}

func TestSessionServiceValidateStoreFailure(t *testing.T) {
	t.Parallel()

	sessions := newFakeSessionStore()
	sessions.getErr = errors.New("redis unavailable")
	svc := newTestSessionService(t, sessions, time.Hour)

	_, err := svc.Validate(context.Background(), "sometoken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidSession, "infrastructure failures must not masquerade as auth failures")
}

func TestSessionServiceEnd(t *testing.T) {
	t.Parallel()

	sessions := newFakeSessionStore()
	svc := newTestSessionService(t, sessions, time.Hour)

	started, err := svc.Start(context.Background(), &domain.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	require.NoError(t, svc.End(context.Background(), started.Token))

	_, err = svc.Validate(context.Background(), started.Token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	// Ending again, or ending an unknown token, is a no-op success
	assert.NoError(t, svc.End(context.Background(), started.Token))
	assert.NoError(t, svc.End(context.Background(), "unknown"))
	assert.NoError(t, svc.End(context.Background(), ""))
}
