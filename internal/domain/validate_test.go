package domain

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    string
		wantMsg string
	}{
		{name: "trims whitespace", value: "  Ada  ", want: "Ada"},
		{name: "exactly max length", value: strings.Repeat("a", MaxNameLength), want: strings.Repeat("a", MaxNameLength)},
		{name: "multibyte counted as runes", value: strings.Repeat("é", MaxNameLength), want: strings.Repeat("é", MaxNameLength)},
		{name: "empty", value: "", wantMsg: "First name is required"},
		{name: "whitespace only", value: "   ", wantMsg: "First name is required"},
		{name: "too long", value: strings.Repeat("a", MaxNameLength+1), wantMsg: "First name must be 50 characters or less"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ValidateName(tc.value, "first_name")
			if tc.wantMsg != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				ve, ok := AsValidationError(err)
				require.True(t, ok)
				assert.Equal(t, "first_name", ve.Field)
				assert.Equal(t, tc.wantMsg, ve.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidateTitle(t *testing.T) {
	t.Parallel()

	got, err := ValidateTitle(" Cozy loft ")
	require.NoError(t, err)
	assert.Equal(t, "Cozy loft", got)

	_, err = ValidateTitle(strings.Repeat("x", MaxTitleLength))
	assert.NoError(t, err)

	_, err = ValidateTitle(strings.Repeat("x", MaxTitleLength+1))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ValidateTitle("")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   string
		want    string
		wantErr bool
	}{
		{value: "John.Doe@Example.COM", want: "john.doe@example.com"},
		{value: "  a+b@sub.example.io ", want: "a+b@sub.example.io"},
		{value: "", wantErr: true},
		{value: "plainaddress", wantErr: true},
		{value: "missing@tld", wantErr: true},
		{value: "a@b.c", wantErr: true},
		{value: "spaces in@example.com", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			t.Parallel()
			got, err := ValidateEmail(tc.value)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidatePrice(t *testing.T) {
	t.Parallel()

	_, err := ValidatePrice(0.01)
	assert.NoError(t, err)

	for _, bad := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, err := ValidatePrice(bad)
		assert.ErrorIs(t, err, ErrValidation, "price %v", bad)
	}
}

func TestValidateCoordinates(t *testing.T) {
	t.Parallel()

	for _, ok := range []float64{-90, 0, 45.5, 90} {
		_, err := ValidateLatitude(ok)
		assert.NoError(t, err, "latitude %v", ok)
	}
	for _, bad := range []float64{-90.0001, 90.0001, math.NaN()} {
		_, err := ValidateLatitude(bad)
		assert.ErrorIs(t, err, ErrValidation, "latitude %v", bad)
	}

	for _, ok := range []float64{-180, 0, 179.9, 180} {
		_, err := ValidateLongitude(ok)
		assert.NoError(t, err, "longitude %v", ok)
	}
	for _, bad := range []float64{-180.5, 180.5, math.Inf(-1)} {
		_, err := ValidateLongitude(bad)
		assert.ErrorIs(t, err, ErrValidation, "longitude %v", bad)
	}
}

func TestValidateRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   float64
		want    int
		wantMsg string
	}{
		{value: 1, want: 1},
		{value: 5, want: 5},
		{value: 3.0, want: 3},
		{value: 0, wantMsg: "Rating must be between 1 and 5"},
		{value: 6, wantMsg: "Rating must be between 1 and 5"},
		{value: 4.5, wantMsg: "Rating must be an integer"},
		{value: math.NaN(), wantMsg: "Rating must be an integer"},
	}

	for _, tc := range tests {
		got, err := ValidateRating(tc.value)
		if tc.wantMsg != "" {
			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "rating %v", tc.value)
			assert.Equal(t, tc.wantMsg, ve.Message)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestValidateAmenityNameAndReviewText(t *testing.T) {
	t.Parallel()

	name, err := ValidateAmenityName(" Wi-Fi ")
	require.NoError(t, err)
	assert.Equal(t, "Wi-Fi", name)

	_, err = ValidateAmenityName(strings.Repeat("n", MaxAmenityNameLength+1))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ValidateReviewText(" \t ")
	assert.ErrorIs(t, err, ErrValidation)

	text, err := ValidateReviewText(strings.Repeat("long ", 500))
	require.NoError(t, err)
	assert.NotEmpty(t, text)
}
