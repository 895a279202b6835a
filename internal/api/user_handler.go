package api

import (
	"log/slog"
	"net/http"

	"github.com/waypost/waypost-api/internal/api/shared"
	"github.com/waypost/waypost-api/internal/domain"
	"github.com/waypost/waypost-api/internal/platform/logger"
	"github.com/waypost/waypost-api/internal/service"
)

// UserHandler handles user and authentication HTTP requests.
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, log *slog.Logger) *UserHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		userService: userService,
		logger:      log.With(slog.String("component", "user_handler")),
	}
}

// ListUsers handles GET /api/users requests. Password material never
// appears in the response; the domain type excludes it from JSON.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch users")
		return
	}
	if users == nil {
		users = []*domain.User{}
	}

	log.Debug("listed users", slog.Int("count", len(users)))
	shared.RespondWithJSON(w, r, http.StatusOK, UsersResponse{Users: users})
}

// Signup handles POST /api/users/signup requests.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SignupRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity,
			"Invalid inputs passed, please check your data")
		return
	}

	result, err := h.userService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("user signed up", slog.String("user_id", result.User.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		UserID: result.User.ID,
		Email:  result.User.Email,
		Token:  result.Token,
	})
}

// Login handles POST /api/users/login requests.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity,
			"Invalid inputs passed, please check your data")
		return
	}

	result, err := h.userService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("user logged in", slog.String("user_id", result.User.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		UserID: result.User.ID,
		Email:  result.User.Email,
		Token:  result.Token,
	})
}
