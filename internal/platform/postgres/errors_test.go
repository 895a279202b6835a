package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/waypost/waypost-api/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantIs   error
		wantNil  bool
		passthru bool
	}{
		{
			name:    "nil stays nil",
			err:     nil,
			wantNil: true,
		},
		{
			name:   "no rows maps to not found",
			err:    sql.ErrNoRows,
			wantIs: store.ErrNotFound,
		},
		{
			name:   "wrapped no rows maps to not found",
			err:    fmt.Errorf("query failed: %w", sql.ErrNoRows),
			wantIs: store.ErrNotFound,
		},
		{
			name:   "unique violation maps to duplicate",
			err:    &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			wantIs: store.ErrDuplicate,
		},
		{
			name:   "foreign key violation maps to invalid entity",
			err:    &pgconn.PgError{Code: "23503", ConstraintName: "places_creator_id_fkey"},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:   "not null violation maps to invalid entity",
			err:    &pgconn.PgError{Code: "23502", ColumnName: "title"},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:     "unknown pg error passes through",
			err:      &pgconn.PgError{Code: "57014"},
			passthru: true,
		},
		{
			name:     "plain error passes through",
			err:      errors.New("connection reset"),
			passthru: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := MapError(tc.err)

			if tc.wantNil {
				assert.NoError(t, got)
				return
			}
			if tc.passthru {
				assert.Equal(t, tc.err, got)
				return
			}
			assert.ErrorIs(t, got, tc.wantIs)
			// Original error detail is preserved in the chain.
			assert.ErrorContains(t, got, tc.wantIs.Error())
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("not a pg error")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsForeignKeyViolation(nil))
}
