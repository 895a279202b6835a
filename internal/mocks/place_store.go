package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/waypost/waypost-api/internal/domain"
	"github.com/waypost/waypost-api/internal/store"
)

// MockPlaceStore is a configurable mock implementation of store.PlaceStore.
type MockPlaceStore struct {
	CreateFn        func(ctx context.Context, place *domain.Place) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	ListByCreatorFn func(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error)
	UpdateFn        func(ctx context.Context, place *domain.Place) error
	DeleteFn        func(ctx context.Context, id uuid.UUID) error
	WithTxFn        func(tx *sql.Tx) store.PlaceStore
}

var _ store.PlaceStore = (*MockPlaceStore)(nil)

func (m *MockPlaceStore) Create(ctx context.Context, place *domain.Place) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, place)
	}
	return nil
}

func (m *MockPlaceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrPlaceNotFound
}

func (m *MockPlaceStore) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error) {
	if m.ListByCreatorFn != nil {
		return m.ListByCreatorFn(ctx, creatorID)
	}
	return []*domain.Place{}, nil
}

func (m *MockPlaceStore) Update(ctx context.Context, place *domain.Place) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, place)
	}
	return nil
}

func (m *MockPlaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *MockPlaceStore) WithTx(tx *sql.Tx) store.PlaceStore {
	if m.WithTxFn != nil {
		return m.WithTxFn(tx)
	}
	return m
}
