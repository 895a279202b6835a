package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/waypost/waypost-api/internal/api"
	apiMiddleware "github.com/waypost/waypost-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	placeHandler := api.NewPlaceHandler(app.placeService, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		r.Route("/places", func(r chi.Router) {
			// Public reads
			r.Get("/{id}", placeHandler.GetPlace)
			r.Get("/user/{id}", placeHandler.ListPlacesByUser)

			// Mutations require a valid token
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Post("/", placeHandler.CreatePlace)
				r.Patch("/{id}", placeHandler.UpdatePlace)
				r.Delete("/{id}", placeHandler.DeletePlace)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.ListUsers)
			r.Post("/signup", userHandler.Signup)
			r.Post("/login", userHandler.Login)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
