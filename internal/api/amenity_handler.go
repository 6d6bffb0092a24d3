package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/hbnb-api/internal/api/shared"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/service"
	"github.com/phrazzld/hbnb-api/internal/store"
)

// AmenityHandler handles amenity-related HTTP requests. Write routes are
// expected behind middleware.RequireAdmin.
type AmenityHandler struct {
	facade service.Facade
	logger *slog.Logger
}

// NewAmenityHandler creates a new AmenityHandler.
func NewAmenityHandler(facade service.Facade, logger *slog.Logger) *AmenityHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AmenityHandler")
	}
	return &AmenityHandler{
		facade: facade,
		logger: logger.With(slog.String("component", "amenity_handler")),
	}
}

// CreateAmenity handles POST /amenities.
func (h *AmenityHandler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	var req AmenityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	amenity, err := h.facade.CreateAmenity(r.Context(), service.CreateAmenityInput{Name: req.Name})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create amenity")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, amenityToResponse(amenity))
}

// ListAmenities handles GET /amenities.
func (h *AmenityHandler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.facade.GetAllAmenities(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list amenities")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(amenities, amenityToResponse))
}

// GetAmenity handles GET /amenities/{id}.
func (h *AmenityHandler) GetAmenity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id", store.ErrAmenityNotFound)
	if !ok {
		return
	}
	amenity, err := h.facade.GetAmenity(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get amenity")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, amenityToResponse(amenity))
}

// UpdateAmenity handles PUT /amenities/{id}.
func (h *AmenityHandler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id", store.ErrAmenityNotFound)
	if !ok {
		return
	}
	var req UpdateAmenityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	amenity, err := h.facade.UpdateAmenity(r.Context(), id, domain.AmenityUpdate{Name: req.Name})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update amenity")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, amenityToResponse(amenity))
}
