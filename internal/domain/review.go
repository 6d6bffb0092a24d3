package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is a rating left by a user for a place.
type Review struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	UserID    uuid.UUID `json:"user_id"`
	PlaceID   uuid.UUID `json:"place_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReviewUpdate carries the review fields a partial update may change.
// Rating is a float so that fractional input can be rejected rather than truncated.
type ReviewUpdate struct {
	Text   *string
	Rating *float64
}

// NewReview validates the supplied fields and returns a review with a fresh ID.
func NewReview(text string, rating float64, userID, placeID uuid.UUID) (*Review, error) {
	var err error
	if text, err = ValidateReviewText(text); err != nil {
		return nil, err
	}
	r, err := ValidateRating(rating)
	if err != nil {
		return nil, err
	}
	if err := requireID(userID, "user_id"); err != nil {
		return nil, err
	}
	if err := requireID(placeID, "place_id"); err != nil {
		return nil, err
	}

	ts := now()
	return &Review{
		ID:        uuid.New(),
		Text:      text,
		Rating:    r,
		UserID:    userID,
		PlaceID:   placeID,
		CreatedAt: ts,
		UpdatedAt: ts,
	}, nil
}

// Validate checks that the review is consistent.
func (r *Review) Validate() error {
	if r.ID == uuid.Nil {
		return ErrInvalidID
	}
	if _, err := ValidateReviewText(r.Text); err != nil {
		return err
	}
	if _, err := ValidateRating(float64(r.Rating)); err != nil {
		return err
	}
	if err := requireID(r.UserID, "user_id"); err != nil {
		return err
	}
	return requireID(r.PlaceID, "place_id")
}

// Apply validates and applies a partial update, all or nothing.
func (r *Review) Apply(upd ReviewUpdate) error {
	next := *r
	var err error
	if upd.Text != nil {
		if next.Text, err = ValidateReviewText(*upd.Text); err != nil {
			return err
		}
	}
	if upd.Rating != nil {
		if next.Rating, err = ValidateRating(*upd.Rating); err != nil {
			return err
		}
	}

	*r = next
	touch(&r.UpdatedAt)
	return nil
}

// GetID returns the review's ID.
func (r *Review) GetID() uuid.UUID { return r.ID }

// Attributes exposes the persisted fields keyed by column name.
func (r *Review) Attributes() map[string]any {
	return map[string]any{
		"id":         r.ID,
		"text":       r.Text,
		"rating":     r.Rating,
		"user_id":    r.UserID,
		"place_id":   r.PlaceID,
		"created_at": r.CreatedAt,
		"updated_at": r.UpdatedAt,
	}
}

// Clone returns an independent copy of the review.
func (r *Review) Clone() *Review {
	c := *r
	return &c
}
