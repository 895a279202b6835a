package api

import (
	"errors"
	"net/http"

	"github.com/waypost/waypost-api/internal/api/shared"
	"github.com/waypost/waypost-api/internal/domain"
	"github.com/waypost/waypost-api/internal/platform/geocode"
	"github.com/waypost/waypost-api/internal/service"
	"github.com/waypost/waypost-api/internal/service/auth"
	"github.com/waypost/waypost-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. This
// prevents leaking internal error types to clients.
//
// Two quirks are intentional: a non-owner update is answered with 401 (the
// handler overrides the 403 mapped here), and a duplicate email maps to 422
// rather than 409, both preserving the behavior clients already depend on.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrNotOwner):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrPlaceNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Duplicate email keeps its historical 422
	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusUnprocessableEntity

	// Upstream geocoding failures
	case errors.Is(err, geocode.ErrAddressNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, geocode.ErrGeocodeFailed):
		return http.StatusBadGateway

	// Domain validation failures
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyPlaceTitle),
		errors.Is(err, domain.ErrDescriptionTooShort),
		errors.Is(err, domain.ErrEmptyPlaceAddress),
		errors.Is(err, domain.ErrInvalidPlaceLocation),
		errors.Is(err, domain.ErrEmptyUserName),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrPasswordTooLong):
		return http.StatusUnprocessableEntity

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly message for the
// error. Internal details never reach the client.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid credentials, could not log you in"

	case errors.Is(err, service.ErrNotOwner):
		return "You are not allowed to modify this place"

	case errors.Is(err, store.ErrUserNotFound):
		return "Could not find user for the provided id"

	case errors.Is(err, store.ErrPlaceNotFound):
		return "Could not find place for the provided id"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrEmailExists):
		return "User exists already, please login instead"

	case errors.Is(err, geocode.ErrAddressNotFound):
		return "Could not find location for the specified address"

	case errors.Is(err, geocode.ErrGeocodeFailed):
		return "Geocoding service is unavailable, please try again later"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return "Invalid input: " + validationErr.Field + " " + validationErr.Message
		}
		return "Invalid inputs passed, please check your data"

	case errors.Is(err, domain.ErrEmptyPlaceTitle),
		errors.Is(err, domain.ErrDescriptionTooShort),
		errors.Is(err, domain.ErrEmptyPlaceAddress),
		errors.Is(err, domain.ErrInvalidPlaceLocation),
		errors.Is(err, domain.ErrEmptyUserName),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrPasswordTooLong):
		return "Invalid inputs passed, please check your data"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps the error to a status code and safe message and
// writes the response. An empty overrideMessage keeps the mapped message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, overrideMessage string) {
	statusCode := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if overrideMessage != "" {
		message = overrideMessage
	}
	shared.RespondWithErrorAndLog(w, r, statusCode, message, err)
}
