package domain

import (
	"testing"
	"time"
)

func TestSessionValidate(t *testing.T) {
	validSession := Session{
		Token:    "abc123",
		UserID:   1,
		Username: "alice",
	}

	if err := validSession.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidSession := validSession
	invalidSession.Token = ""
	if err := invalidSession.Validate(); err != ErrEmptySessionToken {
		t.Errorf("Expected error %v, got %v", ErrEmptySessionToken, err)
	}

	invalidSession = validSession
	invalidSession.UserID = 0
	if err := invalidSession.Validate(); err != ErrEmptySessionUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptySessionUserID, err)
	}
}

func TestSessionExpired(t *testing.T) {
	now := time.Now().UTC()

	session := Session{
		Token:     "abc123",
		UserID:    1,
		ExpiresAt: now.Add(time.Hour),
	}

	if session.Expired(now) {
		t.Error("Expected session with future expiry to be active")
	}

	if !session.Expired(now.Add(2 * time.Hour)) {
		t.Error("Expected session past its expiry to be expired")
	}

	// Zero expiry means no expiry
	session.ExpiresAt = time.Time{}
	if session.Expired(now) {
		t.Error("Expected session with zero expiry to be active")
	}
}
