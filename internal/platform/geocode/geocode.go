// Package geocode resolves street addresses to geographic coordinates
// using an external geocoding provider.
package geocode

import (
	"context"
	"errors"

	"github.com/waypost/waypost-api/internal/domain"
)

// Common geocoding errors.
var (
	// ErrGeocodeFailed indicates the provider could not be reached or
	// returned an unexpected response. The address may still be valid.
	ErrGeocodeFailed = errors.New("geocoding request failed")

	// ErrAddressNotFound indicates the provider answered but could not
	// resolve the address to coordinates.
	ErrAddressNotFound = errors.New("address could not be resolved")
)

// Geocoder resolves a free-form address to a coordinate pair.
// Implementations must not mutate any application state; a failed
// resolution leaves the system exactly as it was.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (domain.Location, error)
}
