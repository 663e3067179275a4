package mocks

import "errors"

// MockPasswordHasher implements auth.PasswordHasher for testing
type MockPasswordHasher struct {
	// ShouldSucceed determines whether password comparison succeeds
	ShouldSucceed bool

	// HashFn and CompareFn allow for custom logic in tests
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	// HashError forces Hash to fail when set
	HashError error

	// Call tracking for verification
	HashCallCount    int
	CompareCallCount int

	// CompareCalledWith stores the last arguments passed to Compare
	CompareCalledWith struct {
		HashedPassword string
		Password       string
	}
}

// Hash implements the auth.PasswordHasher interface. The default
// implementation returns a recognizable fake hash.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.HashCallCount++

	if m.HashFn != nil {
		return m.HashFn(password)
	}

	if m.HashError != nil {
		return "", m.HashError
	}

	return "hashed:" + password, nil
}

// Compare implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	m.CompareCallCount++
	m.CompareCalledWith.HashedPassword = hashedPassword
	m.CompareCalledWith.Password = password

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}

	if m.ShouldSucceed || hashedPassword == "hashed:"+password {
		return nil
	}
	return errors.New("password mismatch")
}
