package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/waypost/waypost-api/internal/domain"
)

// UserStore defines the interface for user data persistence, including the
// user's owned-place set. The owned set is a materialized list of
// back-references; link writes must run in the same transaction as the
// corresponding place write (see the place service).
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password. Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address. The lookup is
	// case-sensitive, matching the email exactly as stored.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all users ordered by creation time.
	List(ctx context.Context) ([]*domain.User, error)

	// PlaceIDs returns the ordered owned-place set of the given user.
	// Returns an empty slice for a user with no places.
	PlaceIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// AppendPlace adds a place reference to the end of the user's owned set.
	AppendPlace(ctx context.Context, userID, placeID uuid.UUID) error

	// RemovePlace removes a place reference from the user's owned set.
	// Returns ErrNotFound if the reference does not exist.
	RemovePlace(ctx context.Context, userID, placeID uuid.UUID) error

	// WithTx returns a new UserStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
