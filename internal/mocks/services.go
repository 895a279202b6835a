package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/waypost/waypost-api/internal/domain"
	"github.com/waypost/waypost-api/internal/service"
	"github.com/waypost/waypost-api/internal/store"
)

// MockPlaceService is a configurable mock implementation of
// service.PlaceService.
type MockPlaceService struct {
	GetPlaceFn            func(ctx context.Context, placeID uuid.UUID) (*domain.Place, error)
	ListPlacesByCreatorFn func(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error)
	CreatePlaceFn         func(ctx context.Context, creatorID uuid.UUID, title, description, address string) (*domain.Place, error)
	UpdatePlaceFn         func(ctx context.Context, placeID, requesterID uuid.UUID, title, description string) (*domain.Place, error)
	DeletePlaceFn         func(ctx context.Context, placeID, requesterID uuid.UUID) error
}

var _ service.PlaceService = (*MockPlaceService)(nil)

func (m *MockPlaceService) GetPlace(ctx context.Context, placeID uuid.UUID) (*domain.Place, error) {
	if m.GetPlaceFn != nil {
		return m.GetPlaceFn(ctx, placeID)
	}
	return nil, store.ErrPlaceNotFound
}

func (m *MockPlaceService) ListPlacesByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error) {
	if m.ListPlacesByCreatorFn != nil {
		return m.ListPlacesByCreatorFn(ctx, creatorID)
	}
	return []*domain.Place{}, nil
}

func (m *MockPlaceService) CreatePlace(ctx context.Context, creatorID uuid.UUID, title, description, address string) (*domain.Place, error) {
	if m.CreatePlaceFn != nil {
		return m.CreatePlaceFn(ctx, creatorID, title, description, address)
	}
	return domain.NewPlace(creatorID, title, description, address, domain.Location{Lat: 48.1373, Lng: 11.5754})
}

func (m *MockPlaceService) UpdatePlace(ctx context.Context, placeID, requesterID uuid.UUID, title, description string) (*domain.Place, error) {
	if m.UpdatePlaceFn != nil {
		return m.UpdatePlaceFn(ctx, placeID, requesterID, title, description)
	}
	return nil, store.ErrPlaceNotFound
}

func (m *MockPlaceService) DeletePlace(ctx context.Context, placeID, requesterID uuid.UUID) error {
	if m.DeletePlaceFn != nil {
		return m.DeletePlaceFn(ctx, placeID, requesterID)
	}
	return nil
}

// MockUserService is a configurable mock implementation of
// service.UserService.
type MockUserService struct {
	RegisterFn     func(ctx context.Context, name, email, password string) (*service.AuthResult, error)
	AuthenticateFn func(ctx context.Context, email, password string) (*service.AuthResult, error)
	ListUsersFn    func(ctx context.Context) ([]*domain.User, error)
}

var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) Register(ctx context.Context, name, email, password string) (*service.AuthResult, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, name, email, password)
	}
	return nil, store.ErrEmailExists
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*service.AuthResult, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, email, password)
	}
	return nil, service.ErrInvalidCredentials
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx)
	}
	return []*domain.User{}, nil
}
