// Package api provides HTTP handlers for the API.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/waypost/waypost-api/internal/api/shared"
	"github.com/waypost/waypost-api/internal/domain"
	"github.com/waypost/waypost-api/internal/platform/logger"
	"github.com/waypost/waypost-api/internal/service"
)

// PlaceHandler handles place-related HTTP requests.
type PlaceHandler struct {
	placeService service.PlaceService
	logger       *slog.Logger
}

// NewPlaceHandler creates a new PlaceHandler.
func NewPlaceHandler(placeService service.PlaceService, log *slog.Logger) *PlaceHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PlaceHandler")
	}

	return &PlaceHandler{
		placeService: placeService,
		logger:       log.With(slog.String("component", "place_handler")),
	}
}

// GetPlace handles GET /api/places/{id} requests.
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	placeID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	place, err := h.placeService.GetPlace(r.Context(), placeID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("retrieved place", slog.String("place_id", placeID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, PlaceResponse{Place: place})
}

// ListPlacesByUser handles GET /api/places/user/{id} requests.
// An unknown user yields an empty list rather than a 404.
func (h *PlaceHandler) ListPlacesByUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	places, err := h.placeService.ListPlacesByCreator(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch places")
		return
	}
	if places == nil {
		places = []*domain.Place{}
	}

	log.Debug("listed places for user",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(places)))
	shared.RespondWithJSON(w, r, http.StatusOK, PlacesResponse{Places: places})
}

// CreatePlace handles POST /api/places requests.
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreatePlaceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity,
			"Invalid inputs passed, please check your data")
		return
	}

	place, err := h.placeService.CreatePlace(r.Context(), userID, req.Title, req.Description, req.Address)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("place created",
		slog.String("place_id", place.ID.String()),
		slog.String("user_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, PlaceResponse{Place: place})
}

// UpdatePlace handles PATCH /api/places/{id} requests.
//
// Two historical quirks are preserved: a successful update answers 201,
// and a non-owner update answers 401 rather than 403.
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, placeID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req UpdatePlaceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity,
			"Invalid inputs passed, please check your data")
		return
	}

	place, err := h.placeService.UpdatePlace(r.Context(), placeID, userID, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrNotOwner) {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized,
				"You are not allowed to edit this place", err)
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("place updated",
		slog.String("place_id", placeID.String()),
		slog.String("user_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, PlaceResponse{Place: place})
}

// DeletePlace handles DELETE /api/places/{id} requests.
func (h *PlaceHandler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, placeID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.placeService.DeletePlace(r.Context(), placeID, userID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("place deleted",
		slog.String("place_id", placeID.String()),
		slog.String("user_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Deleted place."})
}
