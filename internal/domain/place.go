package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultPlaceImageURL is assigned to places created through the API.
// Image upload is handled by a separate frontend flow.
const DefaultPlaceImageURL = "https://upload.wikimedia.org/wikipedia/commons/6/62/Neues_Rathaus_und_Marienplatz_M%C3%BCnchen.jpg"

// MinDescriptionLength is the minimum accepted place description length.
const MinDescriptionLength = 5

// Common validation errors for Place
var (
	ErrEmptyPlaceID         = errors.New("place ID cannot be empty")
	ErrEmptyPlaceCreator    = errors.New("place creator cannot be empty")
	ErrEmptyPlaceTitle      = errors.New("place title cannot be empty")
	ErrDescriptionTooShort  = errors.New("place description must be at least 5 characters long")
	ErrEmptyPlaceAddress    = errors.New("place address cannot be empty")
	ErrInvalidPlaceLocation = errors.New("place location is out of range")
)

// Location is a resolved geographic coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinates are within WGS84 bounds.
func (l Location) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

// Place represents a point of interest authored by exactly one user.
// The creator reference and the owning user's place set are maintained
// together; see the place service for the transactional protocol.
type Place struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Location    Location  `json:"location"`
	ImageURL    string    `json:"image"`
	CreatorID   uuid.UUID `json:"creator"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewPlace creates a new Place owned by creatorID with the given fields and
// resolved location. It generates a new UUID and sets the timestamps.
// Returns an error if validation fails.
func NewPlace(creatorID uuid.UUID, title, description, address string, location Location) (*Place, error) {
	now := time.Now().UTC()
	place := &Place{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Address:     address,
		Location:    location,
		ImageURL:    DefaultPlaceImageURL,
		CreatorID:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := place.Validate(); err != nil {
		return nil, err
	}

	return place, nil
}

// Validate checks if the Place has valid data.
// Returns an error if any field fails validation.
func (p *Place) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPlaceID
	}

	if p.CreatorID == uuid.Nil {
		return ErrEmptyPlaceCreator
	}

	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyPlaceTitle
	}

	if len(p.Description) < MinDescriptionLength {
		return ErrDescriptionTooShort
	}

	if strings.TrimSpace(p.Address) == "" {
		return ErrEmptyPlaceAddress
	}

	if !p.Location.Valid() {
		return ErrInvalidPlaceLocation
	}

	return nil
}

// UpdateDetails replaces the place's title and description and bumps the
// update timestamp. The address and resolved location are immutable after
// creation. Returns an error if the new values fail validation.
func (p *Place) UpdateDetails(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyPlaceTitle
	}

	if len(description) < MinDescriptionLength {
		return ErrDescriptionTooShort
	}

	p.Title = title
	p.Description = description
	p.UpdatedAt = time.Now().UTC()
	return nil
}
