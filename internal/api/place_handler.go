package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/api/shared"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/service"
	"github.com/phrazzld/hbnb-api/internal/store"
)

// PlaceHandler handles place-related HTTP requests.
type PlaceHandler struct {
	facade service.Facade
	logger *slog.Logger
}

// NewPlaceHandler creates a new PlaceHandler.
func NewPlaceHandler(facade service.Facade, logger *slog.Logger) *PlaceHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PlaceHandler")
	}
	return &PlaceHandler{
		facade: facade,
		logger: logger.With(slog.String("component", "place_handler")),
	}
}

// CreatePlace handles POST /places. The caller becomes the owner.
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req CreatePlaceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	place, err := h.facade.CreatePlace(r.Context(), service.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		OwnerID:     principal.UserID,
		AmenityIDs:  req.Amenities,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create place")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, placeToResponse(place))
}

// ListPlaces handles GET /places.
func (h *PlaceHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.facade.GetAllPlaces(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list places")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(places, placeToResponse))
}

// GetPlace handles GET /places/{id}, including owner, amenities and reviews.
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id", store.ErrPlaceNotFound)
	if !ok {
		return
	}
	ctx := r.Context()

	place, err := h.facade.GetPlace(ctx, id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get place")
		return
	}

	detail := PlaceDetailResponse{PlaceResponse: placeToResponse(place)}

	owner, err := h.facade.GetUser(ctx, place.OwnerID)
	switch {
	case err == nil:
		detail.Owner = &OwnerResponse{ID: owner.ID, FirstName: owner.FirstName, LastName: owner.LastName}
	case !store.IsNotFoundError(err):
		HandleAPIError(w, r, err, "Failed to get place")
		return
	}

	amenities, err := h.facade.GetPlaceAmenities(ctx, id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get place")
		return
	}
	detail.Amenities = mapSlice(amenities, amenityToResponse)

	reviews, err := h.facade.GetReviewsByPlace(ctx, id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get place")
		return
	}
	detail.Reviews = mapSlice(reviews, reviewToResponse)

	shared.RespondWithJSON(w, r, http.StatusOK, detail)
}

// UpdatePlace handles PUT /places/{id}. Owner or admin only.
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	place, ok := h.modifiablePlace(w, r)
	if !ok {
		return
	}

	var req UpdatePlaceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.facade.UpdatePlace(r.Context(), place.ID, domain.PlaceUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update place")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, placeToResponse(updated))
}

// AddAmenity handles POST /places/{id}/amenities/{amenityID}.
func (h *PlaceHandler) AddAmenity(w http.ResponseWriter, r *http.Request) {
	place, ok := h.modifiablePlace(w, r)
	if !ok {
		return
	}
	amenityID, ok := pathUUID(w, r, "amenityID", store.ErrAmenityNotFound)
	if !ok {
		return
	}
	if err := h.facade.AddPlaceAmenity(r.Context(), place.ID, amenityID); err != nil {
		HandleAPIError(w, r, err, "Failed to add amenity")
		return
	}
	h.respondAmenities(w, r, place.ID)
}

// RemoveAmenity handles DELETE /places/{id}/amenities/{amenityID}.
func (h *PlaceHandler) RemoveAmenity(w http.ResponseWriter, r *http.Request) {
	place, ok := h.modifiablePlace(w, r)
	if !ok {
		return
	}
	amenityID, ok := pathUUID(w, r, "amenityID", store.ErrAmenityNotFound)
	if !ok {
		return
	}
	if err := h.facade.RemovePlaceAmenity(r.Context(), place.ID, amenityID); err != nil {
		HandleAPIError(w, r, err, "Failed to remove amenity")
		return
	}
	h.respondAmenities(w, r, place.ID)
}

// ListReviews handles GET /places/{id}/reviews.
func (h *PlaceHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id", store.ErrPlaceNotFound)
	if !ok {
		return
	}
	if _, err := h.facade.GetPlace(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to get place")
		return
	}
	reviews, err := h.facade.GetReviewsByPlace(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list reviews")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(reviews, reviewToResponse))
}

// modifiablePlace loads the place named by {id} and checks that the caller
// may modify it, writing the error response otherwise.
func (h *PlaceHandler) modifiablePlace(w http.ResponseWriter, r *http.Request) (*domain.Place, bool) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return nil, false
	}
	id, ok := pathUUID(w, r, "id", store.ErrPlaceNotFound)
	if !ok {
		return nil, false
	}
	place, err := h.facade.GetPlace(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get place")
		return nil, false
	}
	if err := principal.CanModifyPlace(place); err != nil {
		HandleAPIError(w, r, err, "")
		return nil, false
	}
	return place, true
}

func (h *PlaceHandler) respondAmenities(w http.ResponseWriter, r *http.Request, placeID uuid.UUID) {
	amenities, err := h.facade.GetPlaceAmenities(r.Context(), placeID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list amenities")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(amenities, amenityToResponse))
}
