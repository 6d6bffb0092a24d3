package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/api/shared"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/platform/logger"
	"github.com/phrazzld/hbnb-api/internal/service"
	"github.com/phrazzld/hbnb-api/internal/store"
)

// ReviewHandler handles review-related HTTP requests.
type ReviewHandler struct {
	facade service.Facade
	logger *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(facade service.Facade, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ReviewHandler")
	}
	return &ReviewHandler{
		facade: facade,
		logger: logger.With(slog.String("component", "review_handler")),
	}
}

// CreateReview handles POST /reviews. The caller is the author; owners
// cannot review their own place and nobody reviews a place twice, unless
// they are an administrator.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req CreateReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if req.PlaceID == uuid.Nil {
		HandleAPIError(w, r, service.ErrMissingReference, "")
		return
	}

	review, err := h.facade.CreateReview(r.Context(), service.CreateReviewInput{
		Text:            req.Text,
		Rating:          *req.Rating,
		UserID:          principal.UserID,
		PlaceID:         req.PlaceID,
		ReviewerIsAdmin: principal.IsAdmin,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create review")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, reviewToResponse(review))
}

// ListReviews handles GET /reviews.
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.facade.GetAllReviews(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list reviews")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(reviews, reviewToResponse))
}

// GetReview handles GET /reviews/{id}.
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id", store.ErrReviewNotFound)
	if !ok {
		return
	}
	review, err := h.facade.GetReview(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get review")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, reviewToResponse(review))
}

// UpdateReview handles PUT /reviews/{id}. Author or admin only.
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	review, ok := h.modifiableReview(w, r)
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.facade.UpdateReview(r.Context(), review.ID, domain.ReviewUpdate{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update review")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, reviewToResponse(updated))
}

// DeleteReview handles DELETE /reviews/{id}. Author or admin only.
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	review, ok := h.modifiableReview(w, r)
	if !ok {
		return
	}

	deleted, err := h.facade.DeleteReview(r.Context(), review.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete review")
		return
	}
	if !deleted {
		HandleAPIError(w, r, store.ErrReviewNotFound, "")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("review deleted",
		slog.String("review_id", review.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Review deleted successfully"})
}

// modifiableReview loads the review named by {id} and checks that the
// caller may modify it, writing the error response otherwise.
func (h *ReviewHandler) modifiableReview(w http.ResponseWriter, r *http.Request) (*domain.Review, bool) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return nil, false
	}
	id, ok := pathUUID(w, r, "id", store.ErrReviewNotFound)
	if !ok {
		return nil, false
	}
	review, err := h.facade.GetReview(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get review")
		return nil, false
	}
	if err := principal.CanModifyReview(review); err != nil {
		HandleAPIError(w, r, err, "")
		return nil, false
	}
	return review, true
}
