package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("Max", "max@example.com", "secret-password")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "Max", user.Name)
		assert.Equal(t, "max@example.com", user.Email)
		assert.Equal(t, "secret-password", user.Password)
		assert.Empty(t, user.HashedPassword)
		assert.Equal(t, DefaultUserImageURL, user.ImageURL)
		assert.False(t, user.CreatedAt.IsZero())
		assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	})

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "empty name",
			userName: "  ",
			email:    "max@example.com",
			password: "secret-password",
			wantErr:  ErrEmptyUserName,
		},
		{
			name:     "empty email",
			userName: "Max",
			email:    "",
			password: "secret-password",
			wantErr:  ErrEmptyEmail,
		},
		{
			name:     "email without at sign",
			userName: "Max",
			email:    "max.example.com",
			password: "secret-password",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "email without domain dot",
			userName: "Max",
			email:    "max@examplecom",
			password: "secret-password",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "password too short",
			userName: "Max",
			email:    "max@example.com",
			password: "abc",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "password too long",
			userName: "Max",
			email:    "max@example.com",
			password: strings.Repeat("x", 73),
			wantErr:  ErrPasswordTooLong,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			user, err := NewUser(tc.userName, tc.email, tc.password)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestUserValidate_StoredUser(t *testing.T) {
	t.Parallel()

	// A user loaded from the store has no plaintext password, only the hash.
	user := &User{
		ID:             uuid.New(),
		Name:           "Max",
		Email:          "max@example.com",
		HashedPassword: "$2a$12$fakehashfakehashfakehash",
	}
	require.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
}
