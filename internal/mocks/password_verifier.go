package mocks

import (
	"errors"

	"github.com/salmansheikhutk/readarabicbackend/internal/service/auth"
)

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
type MockPasswordVerifier struct {
	// ShouldSucceed determines whether password comparison succeeds.
	ShouldSucceed bool

	// HashFn and CompareFn allow for custom logic in tests.
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	// HashErr is returned by the default Hash implementation when set.
	HashErr error

	// CompareCallCount tracks how many times Compare was called.
	CompareCallCount int
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Hash implements the auth.PasswordVerifier interface. The default
// implementation returns a recognizable fake hash.
func (m *MockPasswordVerifier) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return "hashed:" + password, nil
}

// Compare implements the auth.PasswordVerifier interface.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.CompareCallCount++

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}

	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}
