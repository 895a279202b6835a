package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/waypost/waypost-api/internal/service/auth"
)

// MockJWTService is a configurable mock implementation of auth.JWTService.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, userID uuid.UUID, email string) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

var _ auth.JWTService = (*MockJWTService)(nil)

func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID, email)
	}
	return "mock-token", nil
}

func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return nil, auth.ErrInvalidToken
}
