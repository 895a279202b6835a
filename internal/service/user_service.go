package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/waypost/waypost-api/internal/domain"
	"github.com/waypost/waypost-api/internal/platform/logger"
	"github.com/waypost/waypost-api/internal/service/auth"
	"github.com/waypost/waypost-api/internal/store"
)

// AuthResult bundles the authenticated user with a freshly issued token.
type AuthResult struct {
	User  *domain.User
	Token string
}

// UserService provides signup, login, and user listing.
type UserService interface {
	// Register creates a new user with a hashed password and issues a
	// token for the new session. Returns store.ErrEmailExists if the
	// email is already taken.
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)

	// Authenticate verifies the credentials and issues a token. Returns
	// ErrInvalidCredentials for both an unknown email and a wrong
	// password.
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)

	// ListUsers returns all users ordered by creation time, each with
	// its owned-place references populated.
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

// userServiceImpl implements the UserService interface.
type userServiceImpl struct {
	users    store.UserStore
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
	jwt      auth.JWTService
	logger   *slog.Logger
}

// Ensure userServiceImpl implements UserService interface
var _ UserService = (*userServiceImpl)(nil)

// NewUserService creates a new UserService.
// It returns an error if any of the required dependencies are nil.
func NewUserService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	jwt auth.JWTService,
	log *slog.Logger,
) (UserService, error) {
	if users == nil {
		return nil, domain.NewValidationError("users", "cannot be nil", domain.ErrValidation)
	}
	if hasher == nil {
		return nil, domain.NewValidationError("hasher", "cannot be nil", domain.ErrValidation)
	}
	if verifier == nil {
		return nil, domain.NewValidationError("verifier", "cannot be nil", domain.ErrValidation)
	}
	if jwt == nil {
		return nil, domain.NewValidationError("jwt", "cannot be nil", domain.ErrValidation)
	}
	if log == nil {
		log = slog.Default()
	}

	return &userServiceImpl{
		users:    users,
		hasher:   hasher,
		verifier: verifier,
		jwt:      jwt,
		logger:   log.With(slog.String("component", "user_service")),
	}, nil
}

// Register implements UserService.Register
func (s *userServiceImpl) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(name, email, password)
	if err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password during signup",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Warn("signup rejected: email already registered",
				slog.String("email", email))
		} else {
			log.Error("failed to save user during signup",
				slog.String("error", err.Error()))
		}
		return nil, err
	}

	token, err := s.jwt.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		log.Error("failed to issue token after signup",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	log.Info("user registered",
		slog.String("user_id", user.ID.String()))
	return &AuthResult{User: user, Token: token}, nil
}

// Authenticate implements UserService.Authenticate
//
// Lookup and comparison failures both collapse into ErrInvalidCredentials
// so a caller cannot probe which emails are registered.
func (s *userServiceImpl) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn("login rejected: unknown email")
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user during login",
			slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Warn("login rejected: password mismatch",
			slog.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		log.Error("failed to issue token after login",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	log.Info("user logged in",
		slog.String("user_id", user.ID.String()))
	return &AuthResult{User: user, Token: token}, nil
}

// ListUsers implements UserService.ListUsers
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		placeIDs, err := s.users.PlaceIDs(ctx, user.ID)
		if err != nil {
			log.Error("failed to load place references for user",
				slog.String("error", err.Error()),
				slog.String("user_id", user.ID.String()))
			return nil, fmt.Errorf("failed to load place references: %w", err)
		}
		user.PlaceIDs = placeIDs
	}

	return users, nil
}
