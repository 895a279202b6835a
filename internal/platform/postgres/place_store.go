package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/waypost/waypost-api/internal/domain"
	"github.com/waypost/waypost-api/internal/platform/logger"
	"github.com/waypost/waypost-api/internal/store"
)

// PostgresPlaceStore implements the store.PlaceStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPlaceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPlaceStore creates a new PostgreSQL implementation of the
// PlaceStore interface. It accepts a database connection or transaction that
// is initialized and managed by the caller.
func NewPostgresPlaceStore(db store.DBTX, log *slog.Logger) *PostgresPlaceStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresPlaceStore{
		db:     db,
		logger: log.With(slog.String("component", "place_store")),
	}
}

// Ensure PostgresPlaceStore implements store.PlaceStore interface
var _ store.PlaceStore = (*PostgresPlaceStore)(nil)

// WithTx implements store.PlaceStore.WithTx
func (s *PostgresPlaceStore) WithTx(tx *sql.Tx) store.PlaceStore {
	return &PostgresPlaceStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.PlaceStore.Create
// Returns store.ErrInvalidEntity if the creator does not exist
// (foreign key violation).
func (s *PostgresPlaceStore) Create(ctx context.Context, place *domain.Place) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := place.Validate(); err != nil {
		log.Warn("place validation failed during create",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return err
	}

	query := `
		INSERT INTO places (id, title, description, address, latitude, longitude, image_url, creator_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		place.ID,
		place.Title,
		place.Description,
		place.Address,
		place.Location.Lat,
		place.Location.Lng,
		place.ImageURL,
		place.CreatorID,
		place.CreatedAt,
		place.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during place creation",
				slog.String("place_id", place.ID.String()),
				slog.String("creator_id", place.CreatorID.String()))
			return fmt.Errorf("%w: creator with ID %s not found",
				store.ErrInvalidEntity, place.CreatorID)
		}

		log.Error("failed to create place",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return MapError(err)
	}

	log.Info("place created successfully",
		slog.String("place_id", place.ID.String()),
		slog.String("creator_id", place.CreatorID.String()))
	return nil
}

const placeColumns = `id, title, description, address, latitude, longitude, image_url, creator_id, created_at, updated_at`

func scanPlaceRow(scan func(dest ...any) error) (*domain.Place, error) {
	var place domain.Place
	err := scan(
		&place.ID,
		&place.Title,
		&place.Description,
		&place.Address,
		&place.Location.Lat,
		&place.Location.Lng,
		&place.ImageURL,
		&place.CreatorID,
		&place.CreatedAt,
		&place.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &place, nil
}

// GetByID implements store.PlaceStore.GetByID
// Returns store.ErrPlaceNotFound if the place does not exist.
func (s *PostgresPlaceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + placeColumns + ` FROM places WHERE id = $1`

	place, err := scanPlaceRow(s.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("place not found", slog.String("place_id", id.String()))
			return nil, store.ErrPlaceNotFound
		}
		log.Error("failed to get place by ID",
			slog.String("error", err.Error()),
			slog.String("place_id", id.String()))
		return nil, MapError(err)
	}

	return place, nil
}

// ListByCreator implements store.PlaceStore.ListByCreator
// Returns an empty slice when the user has no places.
func (s *PostgresPlaceStore) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + placeColumns + ` FROM places WHERE creator_id = $1 ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, creatorID)
	if err != nil {
		log.Error("failed to query places by creator",
			slog.String("error", err.Error()),
			slog.String("creator_id", creatorID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	places := []*domain.Place{}
	for rows.Next() {
		place, err := scanPlaceRow(rows.Scan)
		if err != nil {
			log.Error("failed to scan place row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		places = append(places, place)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return places, nil
}

// Update implements store.PlaceStore.Update
// Only the mutable fields (title, description) are written; address and
// location are fixed at creation. Last writer wins; there is no version
// check on concurrent updates.
// Returns store.ErrPlaceNotFound if the place does not exist.
func (s *PostgresPlaceStore) Update(ctx context.Context, place *domain.Place) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := place.Validate(); err != nil {
		log.Warn("place validation failed during update",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return err
	}

	query := `
		UPDATE places
		SET title = $1, description = $2, updated_at = $3
		WHERE id = $4
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		place.Title,
		place.Description,
		place.UpdatedAt,
		place.ID,
	)

	if err != nil {
		log.Error("failed to update place",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrPlaceNotFound); err != nil {
		log.Debug("place not found for update",
			slog.String("place_id", place.ID.String()))
		return err
	}

	log.Info("place updated successfully",
		slog.String("place_id", place.ID.String()))
	return nil
}

// Delete implements store.PlaceStore.Delete
// Returns store.ErrPlaceNotFound if the place does not exist.
func (s *PostgresPlaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM places WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete place",
			slog.String("error", err.Error()),
			slog.String("place_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrPlaceNotFound); err != nil {
		log.Debug("place not found for delete",
			slog.String("place_id", id.String()))
		return err
	}

	log.Info("place deleted successfully",
		slog.String("place_id", id.String()))
	return nil
}
