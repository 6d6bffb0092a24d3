package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	t.Parallel()

	userID, placeID := uuid.New(), uuid.New()
	r, err := NewReview(" Great stay ", 5, userID, placeID)
	require.NoError(t, err)
	assert.Equal(t, "Great stay", r.Text)
	assert.Equal(t, 5, r.Rating)
	assert.Equal(t, userID, r.UserID)
	assert.Equal(t, placeID, r.PlaceID)
	assert.NoError(t, r.Validate())

	_, err = NewReview("ok", 4.5, userID, placeID)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewReview("ok", 0, userID, placeID)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewReview("", 3, userID, placeID)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewReview("ok", 3, uuid.Nil, placeID)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestReviewApply(t *testing.T) {
	t.Parallel()

	r, err := NewReview("Fine", 3, uuid.New(), uuid.New())
	require.NoError(t, err)

	require.NoError(t, r.Apply(ReviewUpdate{Rating: floatPtr(4)}))
	assert.Equal(t, 4, r.Rating)
	assert.Equal(t, "Fine", r.Text)

	snapshot := *r
	err = r.Apply(ReviewUpdate{Text: strPtr("Changed"), Rating: floatPtr(2.5)})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, snapshot, *r)
}
