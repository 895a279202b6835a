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

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection or transaction that
// is initialized and managed by the caller.
func NewPostgresUserStore(db store.DBTX, log *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: log.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.UserStore.Create
// Returns store.ErrEmailExists if the email is already taken.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	query := `
		INSERT INTO users (id, name, email, hashed_password, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Name,
		user.Email,
		user.HashedPassword,
		user.ImageURL,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("email already exists",
				slog.String("user_id", user.ID.String()))
			return fmt.Errorf("%w: %s", store.ErrEmailExists, user.Email)
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return MapError(err)
	}

	log.Info("user created successfully",
		slog.String("user_id", user.ID.String()))
	return nil
}

const userColumns = `id, name, email, hashed_password, image_url, created_at, updated_at`

func scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.HashedPassword,
		&user.ImageURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("user_id", id.String()))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, MapError(err)
	}

	return user, nil
}

// GetByEmail implements store.UserStore.GetByEmail
// The lookup is case-sensitive; the email must match exactly as stored.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found by email")
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by email",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return user, nil
}

// List implements store.UserStore.List
// Returns all users ordered by creation time.
func (s *PostgresUserStore) List(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	users := []*domain.User{}
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.HashedPassword,
			&user.ImageURL,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return users, nil
}

// PlaceIDs implements store.UserStore.PlaceIDs
// Returns the user's owned-place references in insertion order.
func (s *PostgresUserStore) PlaceIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT place_id
		FROM user_places
		WHERE user_id = $1
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query user places",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			log.Error("failed to scan place id", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return ids, nil
}

// AppendPlace implements store.UserStore.AppendPlace
// The new reference is placed at the end of the user's owned set. The
// unique constraint on (user_id, position) makes concurrent appends for
// the same user conflict instead of committing duplicate positions.
// Returns store.ErrInvalidEntity if the user or place does not exist.
func (s *PostgresUserStore) AppendPlace(ctx context.Context, userID, placeID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO user_places (user_id, place_id, position)
		VALUES ($1, $2, COALESCE((SELECT MAX(position) + 1 FROM user_places WHERE user_id = $1), 0))
	`
	_, err := s.db.ExecContext(ctx, query, userID, placeID)
	if err != nil {
		log.Error("failed to append place reference",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("place_id", placeID.String()))
		return MapError(err)
	}

	log.Debug("place reference appended",
		slog.String("user_id", userID.String()),
		slog.String("place_id", placeID.String()))
	return nil
}

// RemovePlace implements store.UserStore.RemovePlace
// Returns store.ErrNotFound if the reference does not exist.
func (s *PostgresUserStore) RemovePlace(ctx context.Context, userID, placeID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM user_places
		WHERE user_id = $1 AND place_id = $2
	`
	result, err := s.db.ExecContext(ctx, query, userID, placeID)
	if err != nil {
		log.Error("failed to remove place reference",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("place_id", placeID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrNotFound); err != nil {
		log.Debug("place reference not found for removal",
			slog.String("user_id", userID.String()),
			slog.String("place_id", placeID.String()))
		return err
	}

	log.Debug("place reference removed",
		slog.String("user_id", userID.String()),
		slog.String("place_id", placeID.String()))
	return nil
}
