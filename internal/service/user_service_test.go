package service_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waypost/waypost-api/internal/domain"
	"github.com/waypost/waypost-api/internal/mocks"
	"github.com/waypost/waypost-api/internal/service"
	"github.com/waypost/waypost-api/internal/store"
)

func newUserService(t *testing.T, users *mocks.MockUserStore, hasher *mocks.MockPasswordHasher, verifier *mocks.MockPasswordVerifier, jwt *mocks.MockJWTService) service.UserService {
	t.Helper()
	if users == nil {
		users = &mocks.MockUserStore{}
	}
	if hasher == nil {
		hasher = &mocks.MockPasswordHasher{}
	}
	if verifier == nil {
		verifier = &mocks.MockPasswordVerifier{}
	}
	if jwt == nil {
		jwt = &mocks.MockJWTService{}
	}
	svc, err := service.NewUserService(users, hasher, verifier, jwt, slog.Default())
	require.NoError(t, err)
	return svc
}

func TestNewUserService_NilDependencies(t *testing.T) {
	t.Parallel()

	users := &mocks.MockUserStore{}
	hasher := &mocks.MockPasswordHasher{}
	verifier := &mocks.MockPasswordVerifier{}
	jwt := &mocks.MockJWTService{}
	log := slog.Default()

	_, err := service.NewUserService(nil, hasher, verifier, jwt, log)
	assert.Error(t, err)
	_, err = service.NewUserService(users, nil, verifier, jwt, log)
	assert.Error(t, err)
	_, err = service.NewUserService(users, hasher, nil, jwt, log)
	assert.Error(t, err)
	_, err = service.NewUserService(users, hasher, verifier, nil, log)
	assert.Error(t, err)
}

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	t.Run("creates user with hashed password and issues token", func(t *testing.T) {
		t.Parallel()

		var saved *domain.User
		users := &mocks.MockUserStore{
			CreateFn: func(ctx context.Context, user *domain.User) error {
				saved = user
				return nil
			},
		}
		jwt := &mocks.MockJWTService{
			GenerateTokenFn: func(ctx context.Context, userID uuid.UUID, email string) (string, error) {
				assert.Equal(t, "max@example.com", email)
				return "issued-token", nil
			},
		}

		svc := newUserService(t, users, nil, nil, jwt)
		result, err := svc.Register(context.Background(), "Max Schwarz", "max@example.com", "secret-password")
		require.NoError(t, err)

		assert.Equal(t, "issued-token", result.Token)
		require.NotNil(t, saved)
		assert.Equal(t, "hashed:secret-password", saved.HashedPassword)
		assert.Empty(t, saved.Password, "plaintext must not survive registration")
		assert.Equal(t, domain.DefaultUserImageURL, saved.ImageURL)
		assert.Equal(t, saved, result.User)
	})

	t.Run("rejects invalid input before hashing", func(t *testing.T) {
		t.Parallel()

		hashes := 0
		hasher := &mocks.MockPasswordHasher{
			HashFn: func(password string) (string, error) {
				hashes++
				return "", nil
			},
		}

		svc := newUserService(t, nil, hasher, nil, nil)
		result, err := svc.Register(context.Background(), "Max Schwarz", "max@example.com", "short")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
		assert.Zero(t, hashes)
	})

	t.Run("propagates duplicate email", func(t *testing.T) {
		t.Parallel()

		users := &mocks.MockUserStore{
			CreateFn: func(ctx context.Context, user *domain.User) error {
				return store.ErrEmailExists
			},
		}
		tokens := 0
		jwt := &mocks.MockJWTService{
			GenerateTokenFn: func(ctx context.Context, userID uuid.UUID, email string) (string, error) {
				tokens++
				return "", nil
			},
		}

		svc := newUserService(t, users, nil, nil, jwt)
		result, err := svc.Register(context.Background(), "Max Schwarz", "max@example.com", "secret-password")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, store.ErrEmailExists)
		assert.Zero(t, tokens)
	})

	t.Run("fails when hashing fails", func(t *testing.T) {
		t.Parallel()

		hasher := &mocks.MockPasswordHasher{
			HashFn: func(password string) (string, error) {
				return "", errors.New("bcrypt exploded")
			},
		}
		creates := 0
		users := &mocks.MockUserStore{
			CreateFn: func(ctx context.Context, user *domain.User) error {
				creates++
				return nil
			},
		}

		svc := newUserService(t, users, hasher, nil, nil)
		result, err := svc.Register(context.Background(), "Max Schwarz", "max@example.com", "secret-password")
		assert.Nil(t, result)
		assert.Error(t, err)
		assert.Zero(t, creates)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	t.Parallel()

	storedUser := func(t *testing.T) *domain.User {
		t.Helper()
		user, err := domain.NewUser("Max Schwarz", "max@example.com", "secret-password")
		require.NoError(t, err)
		user.HashedPassword = "hashed:secret-password"
		user.Password = ""
		return user
	}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		t.Parallel()

		user := storedUser(t)
		users := &mocks.MockUserStore{
			GetByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
				assert.Equal(t, user.Email, email)
				return user, nil
			},
		}
		verifier := &mocks.MockPasswordVerifier{
			CompareFn: func(hashedPassword, password string) error {
				assert.Equal(t, user.HashedPassword, hashedPassword)
				assert.Equal(t, "secret-password", password)
				return nil
			},
		}
		jwt := &mocks.MockJWTService{
			GenerateTokenFn: func(ctx context.Context, userID uuid.UUID, email string) (string, error) {
				assert.Equal(t, user.ID, userID)
				return "issued-token", nil
			},
		}

		svc := newUserService(t, users, nil, verifier, jwt)
		result, err := svc.Authenticate(context.Background(), user.Email, "secret-password")
		require.NoError(t, err)
		assert.Equal(t, "issued-token", result.Token)
		assert.Equal(t, user, result.User)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		t.Parallel()

		users := &mocks.MockUserStore{
			GetByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
				return nil, store.ErrUserNotFound
			},
		}

		svc := newUserService(t, users, nil, nil, nil)
		result, err := svc.Authenticate(context.Background(), "nobody@example.com", "secret-password")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
		assert.NotErrorIs(t, err, store.ErrUserNotFound, "lookup failure must be indistinguishable from a bad password")
	})

	t.Run("wrong password maps to invalid credentials", func(t *testing.T) {
		t.Parallel()

		user := storedUser(t)
		users := &mocks.MockUserStore{
			GetByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
				return user, nil
			},
		}
		verifier := &mocks.MockPasswordVerifier{
			CompareFn: func(hashedPassword, password string) error {
				return errors.New("mismatch")
			},
		}
		tokens := 0
		jwt := &mocks.MockJWTService{
			GenerateTokenFn: func(ctx context.Context, userID uuid.UUID, email string) (string, error) {
				tokens++
				return "", nil
			},
		}

		svc := newUserService(t, users, nil, verifier, jwt)
		result, err := svc.Authenticate(context.Background(), user.Email, "wrong-password")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
		assert.Zero(t, tokens)
	})

	t.Run("store failure propagates unchanged", func(t *testing.T) {
		t.Parallel()

		storeErr := errors.New("connection refused")
		users := &mocks.MockUserStore{
			GetByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
				return nil, storeErr
			},
		}

		svc := newUserService(t, users, nil, nil, nil)
		result, err := svc.Authenticate(context.Background(), "max@example.com", "secret-password")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	t.Parallel()

	first, err := domain.NewUser("Max Schwarz", "max@example.com", "secret-password")
	require.NoError(t, err)
	second, err := domain.NewUser("Julie Jones", "julie@example.com", "secret-password")
	require.NoError(t, err)

	firstPlaces := []uuid.UUID{uuid.New(), uuid.New()}

	users := &mocks.MockUserStore{
		ListFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{first, second}, nil
		},
		PlaceIDsFn: func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
			if userID == first.ID {
				return firstPlaces, nil
			}
			return []uuid.UUID{}, nil
		},
	}

	svc := newUserService(t, users, nil, nil, nil)
	got, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, firstPlaces, got[0].PlaceIDs)
	assert.Empty(t, got[1].PlaceIDs)
	assert.NotNil(t, got[1].PlaceIDs)
}

func TestUserService_ListUsers_PlaceLookupFailure(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("Max Schwarz", "max@example.com", "secret-password")
	require.NoError(t, err)

	lookupErr := errors.New("connection refused")
	users := &mocks.MockUserStore{
		ListFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{user}, nil
		},
		PlaceIDsFn: func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
			return nil, lookupErr
		},
	}

	svc := newUserService(t, users, nil, nil, nil)
	got, err := svc.ListUsers(context.Background())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, lookupErr)
}
