package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/service/auth"
	"github.com/phrazzld/hbnb-api/internal/store"
)

// CreateReview records a review of an existing place by an existing user.
// Unless the reviewer is an administrator, owners cannot review their own
// place (auth.ErrOwnPlaceReview) and nobody reviews a place twice
// (auth.ErrAlreadyReviewed). Both rules are checked in the same transaction
// as the insert.
func (f *FacadeImpl) CreateReview(ctx context.Context, in CreateReviewInput) (*domain.Review, error) {
	if in.UserID == uuid.Nil || in.PlaceID == uuid.Nil {
		return nil, ErrMissingReference
	}

	review, err := domain.NewReview(in.Text, in.Rating, in.UserID, in.PlaceID)
	if err != nil {
		return nil, err
	}

	err = f.inTx(ctx, func(ctx context.Context, tx store.Store) error {
		if _, err := tx.Users().Get(ctx, in.UserID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserReferenceNotFound
			}
			return err
		}
		place, err := tx.Places().Get(ctx, in.PlaceID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrPlaceReferenceNotFound
			}
			return err
		}

		reviewer := auth.Principal{UserID: in.UserID, IsAdmin: in.ReviewerIsAdmin}
		reviewed := false
		if !reviewer.IsAdmin {
			// Rewriting the place row takes its row lock, so concurrent
			// reviews of one place queue here until the first commits.
			if err := tx.Places().Update(ctx, place); err != nil {
				return err
			}
			if reviewed, err = userReviewedPlace(ctx, tx, in.UserID, in.PlaceID); err != nil {
				return err
			}
		}
		if err := reviewer.CanReview(place, reviewed); err != nil {
			return err
		}

		if err := review.Validate(); err != nil {
			return err
		}
		return tx.Reviews().Add(ctx, review)
	})
	if err != nil {
		f.logger.Debug("review creation rejected",
			"error", err,
			"user_id", in.UserID,
			"place_id", in.PlaceID)
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	f.logger.Info("review created",
		"review_id", review.ID,
		"place_id", review.PlaceID)
	return review, nil
}

// GetReview returns the review with the given ID or store.ErrReviewNotFound.
func (f *FacadeImpl) GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	return read(ctx, f, func(ctx context.Context, tx store.Store) (*domain.Review, error) {
		return tx.Reviews().Get(ctx, id)
	})
}

// GetAllReviews returns every review.
func (f *FacadeImpl) GetAllReviews(ctx context.Context) ([]*domain.Review, error) {
	return read(ctx, f, func(ctx context.Context, tx store.Store) ([]*domain.Review, error) {
		return tx.Reviews().GetAll(ctx)
	})
}

// GetReviewsByPlace returns the reviews of a place. An unknown place has none.
func (f *FacadeImpl) GetReviewsByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	return read(ctx, f, func(ctx context.Context, tx store.Store) ([]*domain.Review, error) {
		return tx.Reviews().ListByAttribute(ctx, "place_id", placeID)
	})
}

// HasReviewed reports whether the user already reviewed the place.
func (f *FacadeImpl) HasReviewed(ctx context.Context, userID, placeID uuid.UUID) (bool, error) {
	return read(ctx, f, func(ctx context.Context, tx store.Store) (bool, error) {
		return userReviewedPlace(ctx, tx, userID, placeID)
	})
}

func userReviewedPlace(ctx context.Context, tx store.Store, userID, placeID uuid.UUID) (bool, error) {
	reviews, err := tx.Reviews().ListByAttribute(ctx, "user_id", userID)
	if err != nil {
		return false, err
	}
	for _, r := range reviews {
		if r.PlaceID == placeID {
			return true, nil
		}
	}
	return false, nil
}

// UpdateReview applies a partial update. Author and place cannot change.
func (f *FacadeImpl) UpdateReview(ctx context.Context, id uuid.UUID, upd domain.ReviewUpdate) (*domain.Review, error) {
	review, err := read(ctx, f, func(ctx context.Context, tx store.Store) (*domain.Review, error) {
		review, err := tx.Reviews().Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := review.Apply(upd); err != nil {
			return nil, err
		}
		if err := tx.Reviews().Update(ctx, review); err != nil {
			return nil, err
		}
		return review, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	f.logger.Info("review updated", "review_id", id)
	return review, nil
}

// DeleteReview removes a review. It reports false if the review did not exist.
func (f *FacadeImpl) DeleteReview(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := read(ctx, f, func(ctx context.Context, tx store.Store) (bool, error) {
		if _, err := tx.Reviews().Get(ctx, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return false, nil
			}
			return false, err
		}
		return true, tx.Reviews().Delete(ctx, id)
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete review: %w", err)
	}

	if deleted {
		f.logger.Info("review deleted", "review_id", id)
	}
	return deleted, nil
}
