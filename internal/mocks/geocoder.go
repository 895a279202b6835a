package mocks

import (
	"context"

	"github.com/waypost/waypost-api/internal/domain"
	"github.com/waypost/waypost-api/internal/platform/geocode"
)

// MockGeocoder is a configurable mock implementation of geocode.Geocoder.
type MockGeocoder struct {
	ResolveFn func(ctx context.Context, address string) (domain.Location, error)
}

var _ geocode.Geocoder = (*MockGeocoder)(nil)

func (m *MockGeocoder) Resolve(ctx context.Context, address string) (domain.Location, error) {
	if m.ResolveFn != nil {
		return m.ResolveFn(ctx, address)
	}
	return domain.Location{Lat: 48.1373, Lng: 11.5754}, nil
}
