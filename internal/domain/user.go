package domain

import (
	"fmt"
	"strings"
	"time"
)

// Username and password length bounds enforced at signup.
const (
	UsernameMaxLen = 30
	PasswordMinLen = 4
	PasswordMaxLen = 100
)

// Common validation errors, all wrapped under ErrValidation.
var (
	ErrEmptyUsername       = fmt.Errorf("%w: username cannot be empty", ErrValidation)
	ErrUsernameTooLong     = fmt.Errorf("%w: username must be at most 30 characters long", ErrValidation)
	ErrPasswordTooShort    = fmt.Errorf("%w: password must be at least 4 characters long", ErrValidation)
	ErrPasswordTooLong     = fmt.Errorf("%w: password must be at most 100 characters long", ErrValidation)
	ErrEmptyPassword       = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
)

// User represents a registered identity of the Moru memo service.
// It contains essential account information and authentication details.
// Users are immutable after signup; no update or delete path exists.
type User struct {
	// ID is assigned by the user store from a monotonically increasing
	// database sequence. Zero until the user has been persisted.
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Password       string    `json:"-"` // Plaintext password, used temporarily during registration
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a new User with the given username and password.
// Both fields are trimmed of surrounding whitespace before validation,
// matching what the signup form submits. The ID is assigned later by
// the store.
//
// NOTE: This function only sets up the user structure with the plaintext
// password. The caller is responsible for hashing the password before
// storing the user.
func NewUser(username, password string) (*User, error) {
	user := &User{
		Username:  strings.TrimSpace(username),
		Password:  strings.TrimSpace(password), // Plaintext password - must be hashed before storage
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}

	// Bounds count characters, not bytes, so multibyte names get the
	// same budget as ASCII ones.
	if len([]rune(u.Username)) > UsernameMaxLen {
		return ErrUsernameTooLong
	}

	// During registration we validate the provided plaintext password.
	// Existing users loaded from the store carry only the hash.
	if u.Password != "" {
		n := len([]rune(u.Password))
		if n < PasswordMinLen {
			return ErrPasswordTooShort
		}
		if n > PasswordMaxLen {
			return ErrPasswordTooLong
		}
	} else {
		if u.HashedPassword == "" {
			return ErrEmptyPassword
		}
	}

	return nil
}
