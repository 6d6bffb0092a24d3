package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/hbnb-api/internal/api/shared"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/platform/logger"
	"github.com/phrazzld/hbnb-api/internal/service"
	"github.com/phrazzld/hbnb-api/internal/store"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	facade service.Facade
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(facade service.Facade, logger *slog.Logger) *UserHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}
	return &UserHandler{
		facade: facade,
		logger: logger.With(slog.String("component", "user_handler")),
	}
}

// CreateUser handles POST /users. Only administrators may set is_admin.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	principal, _ := shared.PrincipalFromContext(r.Context())
	if err := principal.CanRegister(req.IsAdmin); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.facade.CreateUser(r.Context(), service.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("user registered",
		slog.String("user_id", user.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.facade.GetAllUsers(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list users")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(users, userToResponse))
}

// GetUser handles GET /users/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id", store.ErrUserNotFound)
	if !ok {
		return
	}
	user, err := h.facade.GetUser(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get user")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// ListUserPlaces handles GET /users/{id}/places.
func (h *UserHandler) ListUserPlaces(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id", store.ErrUserNotFound)
	if !ok {
		return
	}
	if _, err := h.facade.GetUser(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to get user")
		return
	}
	places, err := h.facade.GetPlacesByOwner(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list places")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(places, placeToResponse))
}

// UpdateUser handles PUT /users/{id}. Users may edit their own names;
// administrators may edit any field of any user.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id", store.ErrUserNotFound)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	upd := domain.UserUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}

	if err := principal.CanUpdateUser(id, upd); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.facade.UpdateUser(r.Context(), id, upd)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update user")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}
