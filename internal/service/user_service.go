package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/moruhq/moru-api/internal/domain"
	"github.com/moruhq/moru-api/internal/platform/logger"
	"github.com/moruhq/moru-api/internal/service/auth"
	"github.com/moruhq/moru-api/internal/store"
)

// UserService provides identity registration and credential verification.
type UserService interface {
	// Register creates a new identity with the given credentials.
	// Username and password are trimmed and bound-checked before the
	// password is hashed and the identity stored.
	// Returns store.ErrUsernameExists on a duplicate username and domain
	// validation errors on malformed input.
	Register(ctx context.Context, username, password string) (*domain.User, error)

	// Authenticate verifies the given credentials and returns the matching
	// identity. An unknown username and a wrong password both fail with
	// ErrAuthenticationFailed: the error, message, and timing are
	// indistinguishable.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// GetUser retrieves an identity by its numeric ID.
	// Returns ErrUserNotFound if no such identity exists.
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}

// userService implements the UserService interface.
type userService struct {
	users  store.UserStore
	hasher auth.PasswordHasher
	logger *slog.Logger

	// dummyHash is compared against when the username is unknown, so the
	// unknown-user path burns the same bcrypt cost as a real mismatch.
	dummyHash string
}

// Ensure userService implements UserService interface
var _ UserService = (*userService)(nil)

// NewUserService creates a new UserService.
// It returns an error if any of the required dependencies are nil.
func NewUserService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) (UserService, error) {
	if users == nil {
		return nil, fmt.Errorf("user store is required")
	}
	if hasher == nil {
		return nil, fmt.Errorf("password hasher is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	dummyHash, err := hasher.Hash("timing-equalizer-placeholder")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}

	return &userService{
		users:     users,
		hasher:    hasher,
		logger:    logger.With(slog.String("component", "user_service")),
		dummyHash: dummyHash,
	}, nil
}

// Register implements UserService.Register
func (s *userService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(username, password)
	if err != nil {
		log.Debug("registration rejected by validation",
			slog.String("error", err.Error()))
		return nil, err
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		// Hashing failures are configuration errors, never bad input.
		log.Error("failed to hash password",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			log.Debug("registration rejected: username taken",
				slog.String("username", user.Username))
			return nil, err
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user registered",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username))
	return user, nil
}

// Authenticate implements UserService.Authenticate
func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// The signup path trims credentials before storing them; trim here
	// too so the same characters round-trip.
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Burn a comparison so the unknown-user path costs the same
			// as a wrong password.
			_ = s.hasher.Compare(s.dummyHash, password)
			return nil, ErrAuthenticationFailed
		}
		log.Error("failed to look up user",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		log.Debug("authentication failed",
			slog.String("username", username))
		return nil, ErrAuthenticationFailed
	}

	return user, nil
}

// GetUser implements UserService.GetUser
func (s *userService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return user, nil
}
