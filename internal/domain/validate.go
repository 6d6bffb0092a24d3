package domain

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field limits.
const (
	MaxNameLength        = 50
	MaxTitleLength       = 100
	MaxAmenityNameLength = 50
	MinRating            = 1
	MaxRating            = 5
	MinLatitude          = -90.0
	MaxLatitude          = 90.0
	MinLongitude         = -180.0
	MaxLongitude         = 180.0
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// fieldLabel turns a snake_case field name into a sentence-case label,
// e.g. "first_name" -> "First name".
func fieldLabel(field string) string {
	label := strings.ReplaceAll(field, "_", " ")
	r, size := utf8.DecodeRuneInString(label)
	if r == utf8.RuneError {
		return label
	}
	return string(unicode.ToUpper(r)) + label[size:]
}

func validateText(field, value string, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", requiredError(field)
	}
	if maxLen > 0 && utf8.RuneCountInString(value) > maxLen {
		return "", NewValidationError(field,
			fmt.Sprintf("%s must be %d characters or less", fieldLabel(field), maxLen))
	}
	return value, nil
}

// ValidateName validates a person name field such as first_name or last_name.
func ValidateName(value, field string) (string, error) {
	return validateText(field, value, MaxNameLength)
}

// ValidateTitle validates a place title.
func ValidateTitle(value string) (string, error) {
	return validateText("title", value, MaxTitleLength)
}

// ValidateAmenityName validates an amenity name.
func ValidateAmenityName(value string) (string, error) {
	return validateText("name", value, MaxAmenityNameLength)
}

// ValidateReviewText validates the body of a review.
func ValidateReviewText(value string) (string, error) {
	return validateText("text", value, 0)
}

// ValidateEmail normalizes an email address to lower case and checks its format.
func ValidateEmail(value string) (string, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return "", requiredError("email")
	}
	if !emailPattern.MatchString(value) {
		return "", NewValidationError("email", "Invalid email format")
	}
	return value, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidatePrice requires a finite, strictly positive price.
func ValidatePrice(v float64) (float64, error) {
	if !isFinite(v) {
		return 0, NewValidationError("price", "Price must be a number")
	}
	if v <= 0 {
		return 0, NewValidationError("price", "Price must be a positive number")
	}
	return v, nil
}

// ValidateLatitude requires a value within [-90, 90].
func ValidateLatitude(v float64) (float64, error) {
	if !isFinite(v) || v < MinLatitude || v > MaxLatitude {
		return 0, NewValidationError("latitude", "Latitude must be between -90 and 90")
	}
	return v, nil
}

// ValidateLongitude requires a value within [-180, 180].
func ValidateLongitude(v float64) (float64, error) {
	if !isFinite(v) || v < MinLongitude || v > MaxLongitude {
		return 0, NewValidationError("longitude", "Longitude must be between -180 and 180")
	}
	return v, nil
}

// ValidateRating accepts a JSON number and requires an integer in [1, 5].
func ValidateRating(v float64) (int, error) {
	if !isFinite(v) || v != math.Trunc(v) {
		return 0, NewValidationError("rating", "Rating must be an integer")
	}
	if v < MinRating || v > MaxRating {
		return 0, NewValidationError("rating",
			fmt.Sprintf("Rating must be between %d and %d", MinRating, MaxRating))
	}
	return int(v), nil
}
