// Package mocks provides hand-rolled test doubles for the store and
// service interfaces. Each mock exposes function fields so a test can
// script exactly the behavior it needs; unset fields fall back to a
// benign default.
package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/waypost/waypost-api/internal/domain"
	"github.com/waypost/waypost-api/internal/store"
)

// MockUserStore is a configurable mock implementation of store.UserStore.
type MockUserStore struct {
	CreateFn      func(ctx context.Context, user *domain.User) error
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn  func(ctx context.Context, email string) (*domain.User, error)
	ListFn        func(ctx context.Context) ([]*domain.User, error)
	PlaceIDsFn    func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	AppendPlaceFn func(ctx context.Context, userID, placeID uuid.UUID) error
	RemovePlaceFn func(ctx context.Context, userID, placeID uuid.UUID) error
	WithTxFn      func(tx *sql.Tx) store.UserStore
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrUserNotFound
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, store.ErrUserNotFound
}

func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []*domain.User{}, nil
}

func (m *MockUserStore) PlaceIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if m.PlaceIDsFn != nil {
		return m.PlaceIDsFn(ctx, userID)
	}
	return []uuid.UUID{}, nil
}

func (m *MockUserStore) AppendPlace(ctx context.Context, userID, placeID uuid.UUID) error {
	if m.AppendPlaceFn != nil {
		return m.AppendPlaceFn(ctx, userID, placeID)
	}
	return nil
}

func (m *MockUserStore) RemovePlace(ctx context.Context, userID, placeID uuid.UUID) error {
	if m.RemovePlaceFn != nil {
		return m.RemovePlaceFn(ctx, userID, placeID)
	}
	return nil
}

// WithTx returns the mock itself unless WithTxFn is set; mocks do not
// distinguish transactional from plain access.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	if m.WithTxFn != nil {
		return m.WithTxFn(tx)
	}
	return m
}
