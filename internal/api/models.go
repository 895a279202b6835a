package api

import (
	"github.com/google/uuid"

	"github.com/waypost/waypost-api/internal/domain"
)

// Common request/response structures

// SignupRequest defines the payload for the user signup endpoint.
type SignupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for signup and login.
type AuthResponse struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Token  string    `json:"token"`
}

// CreatePlaceRequest defines the payload for creating a place. The
// coordinates are resolved server-side from the address.
type CreatePlaceRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required,min=5"`
	Address     string `json:"address"     validate:"required"`
}

// UpdatePlaceRequest defines the payload for updating a place. Address and
// location are immutable after creation.
type UpdatePlaceRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required,min=5"`
}

// PlaceResponse wraps a single place.
type PlaceResponse struct {
	Place *domain.Place `json:"place"`
}

// PlacesResponse wraps a list of places.
type PlacesResponse struct {
	Places []*domain.Place `json:"places"`
}

// UsersResponse wraps the user listing. Password material is excluded by
// the domain type's JSON tags.
type UsersResponse struct {
	Users []*domain.User `json:"users"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}
