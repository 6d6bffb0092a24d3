package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
)

// Request payloads. Required numeric fields are pointers so that a missing
// value is distinguishable from zero.

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateUserRequest defines the payload for registering a user.
type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required"`
	Password  string `json:"password"   validate:"required"`
	IsAdmin   bool   `json:"is_admin"`
}

// UpdateUserRequest defines the payload for a partial user update.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

// CreatePlaceRequest defines the payload for listing a place. The owner
// is the authenticated caller.
type CreatePlaceRequest struct {
	Title       string      `json:"title"       validate:"required"`
	Description string      `json:"description"`
	Price       *float64    `json:"price"       validate:"required"`
	Latitude    *float64    `json:"latitude"    validate:"required"`
	Longitude   *float64    `json:"longitude"   validate:"required"`
	Amenities   []uuid.UUID `json:"amenities"`
}

// UpdatePlaceRequest defines the payload for a partial place update.
type UpdatePlaceRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// CreateReviewRequest defines the payload for reviewing a place. The
// author is the authenticated caller.
type CreateReviewRequest struct {
	Text    string    `json:"text"     validate:"required"`
	Rating  *float64  `json:"rating"   validate:"required"`
	PlaceID uuid.UUID `json:"place_id"`
}

// UpdateReviewRequest defines the payload for a partial review update.
type UpdateReviewRequest struct {
	Text   *string  `json:"text"`
	Rating *float64 `json:"rating"`
}

// AmenityRequest defines the payload for creating an amenity.
type AmenityRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateAmenityRequest defines the payload for renaming an amenity.
type UpdateAmenityRequest struct {
	Name *string `json:"name"`
}

// Responses.

// UserResponse is the public view of a user. The password hash is never included.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerResponse is the short view of a user embedded in place details.
type OwnerResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// LoginResponse defines the successful response of the login endpoint.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// ProtectedResponse echoes the authenticated caller.
type ProtectedResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"user_id"`
	IsAdmin bool      `json:"is_admin"`
}

// PlaceResponse is the flat view of a place.
type PlaceResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PlaceDetailResponse adds the place's relationships.
type PlaceDetailResponse struct {
	PlaceResponse
	Owner     *OwnerResponse    `json:"owner"`
	Amenities []AmenityResponse `json:"amenities"`
	Reviews   []ReviewResponse  `json:"reviews"`
}

// ReviewResponse is the public view of a review.
type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	UserID    uuid.UUID `json:"user_id"`
	PlaceID   uuid.UUID `json:"place_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AmenityResponse is the public view of an amenity.
type AmenityResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func placeToResponse(p *domain.Place) PlaceResponse {
	return PlaceResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func reviewToResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		Text:      r.Text,
		Rating:    r.Rating,
		UserID:    r.UserID,
		PlaceID:   r.PlaceID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func amenityToResponse(a *domain.Amenity) AmenityResponse {
	return AmenityResponse{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// mapSlice converts every element of in with fn. A nil input yields an
// empty, non-nil slice so that lists always encode as [].
func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
