package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/waypost/waypost-api/internal/domain"
	"github.com/waypost/waypost-api/internal/platform/geocode"
	"github.com/waypost/waypost-api/internal/platform/logger"
	"github.com/waypost/waypost-api/internal/store"
)

// PlaceService provides place operations, including the two cross-entity
// mutations that pair a places write with a link write in the owner's
// place set. Those pairs run inside a single transaction: another request
// can never observe a place without its back-reference, or the reverse.
type PlaceService interface {
	// GetPlace retrieves a place by its ID.
	GetPlace(ctx context.Context, placeID uuid.UUID) (*domain.Place, error)

	// ListPlacesByCreator retrieves all places created by the given user.
	// An unknown user yields an empty list, not an error.
	ListPlacesByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error)

	// CreatePlace resolves the address, verifies the creator exists, then
	// inserts the place and appends it to the creator's place set in one
	// atomic unit. Nothing is written if any step fails.
	CreatePlace(ctx context.Context, creatorID uuid.UUID, title, description, address string) (*domain.Place, error)

	// UpdatePlace replaces a place's title and description after checking
	// that the requester is its creator. Single-record: no transaction,
	// last writer wins.
	UpdatePlace(ctx context.Context, placeID, requesterID uuid.UUID, title, description string) (*domain.Place, error)

	// DeletePlace removes a place and its back-reference from the
	// creator's place set in one atomic unit, after checking that the
	// requester is the creator.
	DeletePlace(ctx context.Context, placeID, requesterID uuid.UUID) error
}

// placeServiceImpl implements the PlaceService interface.
type placeServiceImpl struct {
	db       *sql.DB
	users    store.UserStore
	places   store.PlaceStore
	geocoder geocode.Geocoder
	logger   *slog.Logger
}

// Ensure placeServiceImpl implements PlaceService interface
var _ PlaceService = (*placeServiceImpl)(nil)

// NewPlaceService creates a new PlaceService.
// It returns an error if any of the required dependencies are nil.
func NewPlaceService(
	db *sql.DB,
	users store.UserStore,
	places store.PlaceStore,
	geocoder geocode.Geocoder,
	log *slog.Logger,
) (PlaceService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if users == nil {
		return nil, domain.NewValidationError("users", "cannot be nil", domain.ErrValidation)
	}
	if places == nil {
		return nil, domain.NewValidationError("places", "cannot be nil", domain.ErrValidation)
	}
	if geocoder == nil {
		return nil, domain.NewValidationError("geocoder", "cannot be nil", domain.ErrValidation)
	}
	if log == nil {
		log = slog.Default()
	}

	return &placeServiceImpl{
		db:       db,
		users:    users,
		places:   places,
		geocoder: geocoder,
		logger:   log.With(slog.String("component", "place_service")),
	}, nil
}

// GetPlace implements PlaceService.GetPlace
func (s *placeServiceImpl) GetPlace(ctx context.Context, placeID uuid.UUID) (*domain.Place, error) {
	return s.places.GetByID(ctx, placeID)
}

// ListPlacesByCreator implements PlaceService.ListPlacesByCreator
func (s *placeServiceImpl) ListPlacesByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error) {
	return s.places.ListByCreator(ctx, creatorID)
}

// CreatePlace implements PlaceService.CreatePlace
//
// The fallible external call (geocoding) and the creator lookup happen
// before the atomic unit begins, so a failure there aborts with no store
// mutation at all.
func (s *placeServiceImpl) CreatePlace(
	ctx context.Context,
	creatorID uuid.UUID,
	title, description, address string,
) (*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	location, err := s.geocoder.Resolve(ctx, address)
	if err != nil {
		log.Warn("geocoding failed during place creation",
			slog.String("error", err.Error()),
			slog.String("creator_id", creatorID.String()))
		return nil, err
	}

	creator, err := s.users.GetByID(ctx, creatorID)
	if err != nil {
		log.Warn("creator lookup failed during place creation",
			slog.String("error", err.Error()),
			slog.String("creator_id", creatorID.String()))
		return nil, err
	}

	place, err := domain.NewPlace(creator.ID, title, description, address, location)
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txPlaces := s.places.WithTx(tx)
		txUsers := s.users.WithTx(tx)

		if err := txPlaces.Create(ctx, place); err != nil {
			return fmt.Errorf("failed to save place: %w", err)
		}

		if err := txUsers.AppendPlace(ctx, creator.ID, place.ID); err != nil {
			return fmt.Errorf("failed to link place to creator: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error("create-and-link transaction failed",
			slog.String("error", err.Error()),
			slog.String("creator_id", creator.ID.String()))
		return nil, err
	}

	log.Info("place created and linked",
		slog.String("place_id", place.ID.String()),
		slog.String("creator_id", creator.ID.String()))
	return place, nil
}

// UpdatePlace implements PlaceService.UpdatePlace
func (s *placeServiceImpl) UpdatePlace(
	ctx context.Context,
	placeID, requesterID uuid.UUID,
	title, description string,
) (*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}

	if place.CreatorID != requesterID {
		log.Warn("update rejected: requester is not the creator",
			slog.String("place_id", placeID.String()),
			slog.String("requester_id", requesterID.String()))
		return nil, ErrNotOwner
	}

	if err := place.UpdateDetails(title, description); err != nil {
		return nil, err
	}

	if err := s.places.Update(ctx, place); err != nil {
		log.Error("failed to update place",
			slog.String("error", err.Error()),
			slog.String("place_id", placeID.String()))
		return nil, err
	}

	return place, nil
}

// DeletePlace implements PlaceService.DeletePlace
//
// The link row is removed before the place row so the foreign key from
// user_places to places holds at every point inside the transaction;
// atomicity makes the internal order invisible to other requests.
func (s *placeServiceImpl) DeletePlace(ctx context.Context, placeID, requesterID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return err
	}

	if place.CreatorID != requesterID {
		log.Warn("delete rejected: requester is not the creator",
			slog.String("place_id", placeID.String()),
			slog.String("requester_id", requesterID.String()))
		return ErrNotOwner
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txPlaces := s.places.WithTx(tx)
		txUsers := s.users.WithTx(tx)

		if err := txUsers.RemovePlace(ctx, place.CreatorID, place.ID); err != nil {
			return fmt.Errorf("failed to unlink place from creator: %w", err)
		}

		if err := txPlaces.Delete(ctx, place.ID); err != nil {
			return fmt.Errorf("failed to delete place: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error("delete-and-unlink transaction failed",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return err
	}

	log.Info("place deleted and unlinked",
		slog.String("place_id", place.ID.String()),
		slog.String("creator_id", place.CreatorID.String()))
	return nil
}
