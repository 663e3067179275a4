package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MemoContentMaxLen is the maximum memo length in characters after trimming.
const MemoContentMaxLen = 2000

// Common validation errors for Memo, all wrapped under ErrValidation.
var (
	ErrEmptyMemoID        = fmt.Errorf("%w: memo ID cannot be empty", ErrValidation)
	ErrEmptyMemoUserID    = fmt.Errorf("%w: memo user ID cannot be empty", ErrValidation)
	ErrEmptyMemoContent   = fmt.Errorf("%w: memo content cannot be empty", ErrValidation)
	ErrMemoContentTooLong = fmt.Errorf("%w: memo content must be at most 2000 characters long", ErrValidation)
)

// Memo represents a single user-authored note owned by exactly one
// identity. Memos are append-only: the service exposes no update or
// delete operation.
type Memo struct {
	ID        uuid.UUID `json:"id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMemo creates a new Memo owned by the given user.
// It trims the content, generates a new UUID for the memo ID and sets
// the creation timestamp. Returns an error if validation fails.
func NewMemo(userID int64, content string) (*Memo, error) {
	memo := &Memo{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   strings.TrimSpace(content),
		CreatedAt: time.Now().UTC(),
	}

	if err := memo.Validate(); err != nil {
		return nil, err
	}

	return memo, nil
}

// Validate checks if the Memo has valid data.
// Returns an error if any field fails validation.
func (m *Memo) Validate() error {
	if m.ID == uuid.Nil {
		return ErrEmptyMemoID
	}

	if m.UserID <= 0 {
		return ErrEmptyMemoUserID
	}

	if m.Content == "" {
		return ErrEmptyMemoContent
	}

	if len([]rune(m.Content)) > MemoContentMaxLen {
		return ErrMemoContentTooLong
	}

	return nil
}
