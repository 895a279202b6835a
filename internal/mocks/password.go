package mocks

import (
	"github.com/waypost/waypost-api/internal/service/auth"
)

// MockPasswordHasher is a configurable mock implementation of
// auth.PasswordHasher.
type MockPasswordHasher struct {
	HashFn func(password string) (string, error)
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}

// MockPasswordVerifier is a configurable mock implementation of
// auth.PasswordVerifier.
type MockPasswordVerifier struct {
	CompareFn func(hashedPassword, password string) error
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	return nil
}
