package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/waypost/waypost-api/internal/domain"
)

// PlaceStore defines the interface for place data persistence.
type PlaceStore interface {
	// Create saves a new place to the store.
	// Returns ErrInvalidEntity if the creator does not exist.
	Create(ctx context.Context, place *domain.Place) error

	// GetByID retrieves a place by its unique ID.
	// Returns ErrPlaceNotFound if the place does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)

	// ListByCreator retrieves all places created by the given user,
	// ordered by creation time. Returns an empty slice when the user
	// has no places or does not exist.
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error)

	// Update modifies an existing place's mutable fields.
	// Returns ErrPlaceNotFound if the place does not exist.
	Update(ctx context.Context, place *domain.Place) error

	// Delete removes a place from the store by its ID.
	// Returns ErrPlaceNotFound if the place does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new PlaceStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) PlaceStore
}
