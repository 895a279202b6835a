package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/waypost/waypost-api/internal/config"
	"github.com/waypost/waypost-api/internal/platform/geocode"
	"github.com/waypost/waypost-api/internal/platform/postgres"
	"github.com/waypost/waypost-api/internal/service"
	"github.com/waypost/waypost-api/internal/service/auth"
	"github.com/waypost/waypost-api/internal/store"
)

// application holds the shared application dependencies so they can be
// wired once and cleaned up together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore  store.UserStore
	placeStore store.PlaceStore

	// Collaborators
	geocoder geocode.Geocoder

	// Services
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	userService      service.UserService
	placeService     service.PlaceService
}

// newApplication creates an application instance with all dependencies
// initialized. Configuration, logging, and the database connection must be
// established by the caller.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordHasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.placeStore = postgres.NewPostgresPlaceStore(db, logger)

	app.geocoder = geocode.NewNominatimClient(cfg.Geocode, logger.With("component", "geocoder"))
	logger.Info("Geocoding client initialized", "base_url", cfg.Geocode.BaseURL)

	app.userService, err = service.NewUserService(
		app.userStore,
		app.passwordHasher,
		app.passwordVerifier,
		app.jwtService,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.placeService, err = service.NewPlaceService(
		db,
		app.userStore,
		app.placeStore,
		app.geocoder,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create place service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
