package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waypost/waypost-api/internal/domain"
	"github.com/waypost/waypost-api/internal/store"
)

// Integration tests against a real database, skipped unless DATABASE_URL
// is set.

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("skipping database integration tests: DATABASE_URL not set")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.PingContext(context.Background()))
	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func insertTestUser(t *testing.T, users *PostgresUserStore) *domain.User {
	t.Helper()

	email := fmt.Sprintf("store-test-%s@example.com", uuid.New())
	user, err := domain.NewUser("Store Test User", email, "secret-password")
	require.NoError(t, err)
	user.HashedPassword = "not-a-real-hash"
	user.Password = ""

	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func insertTestPlace(t *testing.T, places *PostgresPlaceStore, creatorID uuid.UUID) *domain.Place {
	t.Helper()

	place, err := domain.NewPlace(creatorID, "Empire State Building",
		"One of the most famous sky scrapers in the world",
		"20 W 34th St, New York",
		domain.Location{Lat: 40.7484, Lng: -73.9857})
	require.NoError(t, err)

	require.NoError(t, places.Create(context.Background(), place))
	return place
}

func TestPostgresUserStore_CreateAndGet(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	users := NewPostgresUserStore(db, slog.Default())

	user := insertTestUser(t, users)

	byID, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)
	assert.Equal(t, user.HashedPassword, byID.HashedPassword)

	byEmail, err := users.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = users.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestPostgresUserStore_DuplicateEmail(t *testing.T) {
	db := testDB(t)
	users := NewPostgresUserStore(db, slog.Default())

	first := insertTestUser(t, users)

	dup, err := domain.NewUser("Another Name", first.Email, "secret-password")
	require.NoError(t, err)
	dup.HashedPassword = "not-a-real-hash"
	dup.Password = ""

	err = users.Create(context.Background(), dup)
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestPostgresUserStore_PlaceSetKeepsInsertionOrder(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	users := NewPostgresUserStore(db, slog.Default())
	places := NewPostgresPlaceStore(db, slog.Default())

	user := insertTestUser(t, users)

	var want []uuid.UUID
	for i := 0; i < 3; i++ {
		place := insertTestPlace(t, places, user.ID)
		require.NoError(t, users.AppendPlace(ctx, user.ID, place.ID))
		want = append(want, place.ID)
	}

	got, err := users.PlaceIDs(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Removing the middle reference keeps the rest in order.
	require.NoError(t, users.RemovePlace(ctx, user.ID, want[1]))
	got, err = users.PlaceIDs(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{want[0], want[2]}, got)
}

func TestPostgresUserStore_DuplicatePositionRejected(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	users := NewPostgresUserStore(db, slog.Default())
	places := NewPostgresPlaceStore(db, slog.Default())

	user := insertTestUser(t, users)
	first := insertTestPlace(t, places, user.ID)
	second := insertTestPlace(t, places, user.ID)

	require.NoError(t, users.AppendPlace(ctx, user.ID, first.ID))

	// Writing a second reference at an already-taken position must hit the
	// (user_id, position) constraint.
	_, err := db.ExecContext(ctx,
		`INSERT INTO user_places (user_id, place_id, position) VALUES ($1, $2, 0)`,
		user.ID, second.ID)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.ErrorIs(t, MapError(err), store.ErrDuplicate)
}

func TestPostgresUserStore_RemoveMissingPlaceReference(t *testing.T) {
	db := testDB(t)
	users := NewPostgresUserStore(db, slog.Default())

	user := insertTestUser(t, users)

	err := users.RemovePlace(context.Background(), user.ID, uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresPlaceStore_CreateRejectsUnknownCreator(t *testing.T) {
	db := testDB(t)
	places := NewPostgresPlaceStore(db, slog.Default())

	place, err := domain.NewPlace(uuid.New(), "Ghost Place",
		"A place whose creator does not exist",
		"Nowhere 1", domain.Location{Lat: 0, Lng: 0})
	require.NoError(t, err)

	err = places.Create(context.Background(), place)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestPostgresPlaceStore_UpdateAndDelete(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	users := NewPostgresUserStore(db, slog.Default())
	places := NewPostgresPlaceStore(db, slog.Default())

	user := insertTestUser(t, users)
	place := insertTestPlace(t, places, user.ID)

	require.NoError(t, place.UpdateDetails("Renamed Building", "A brand new description"))
	require.NoError(t, places.Update(ctx, place))

	stored, err := places.GetByID(ctx, place.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Building", stored.Title)
	assert.Equal(t, "A brand new description", stored.Description)
	// Address and location stay immutable through updates.
	assert.Equal(t, place.Address, stored.Address)
	assert.Equal(t, place.Location, stored.Location)

	require.NoError(t, places.Delete(ctx, place.ID))
	_, err = places.GetByID(ctx, place.ID)
	assert.ErrorIs(t, err, store.ErrPlaceNotFound)

	assert.ErrorIs(t, places.Delete(ctx, place.ID), store.ErrPlaceNotFound)
}

func TestPostgresPlaceStore_ListByCreator(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	users := NewPostgresUserStore(db, slog.Default())
	places := NewPostgresPlaceStore(db, slog.Default())

	user := insertTestUser(t, users)
	first := insertTestPlace(t, places, user.ID)
	second := insertTestPlace(t, places, user.ID)

	got, err := places.ListByCreator(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	gotIDs := []uuid.UUID{got[0].ID, got[1].ID}
	assert.ElementsMatch(t, []uuid.UUID{first.ID, second.ID}, gotIDs)

	empty, err := places.ListByCreator(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}
