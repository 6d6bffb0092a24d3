package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockFacade is a testify mock of service.Facade.
type MockFacade struct {
	mock.Mock
}

var _ service.Facade = (*MockFacade)(nil)

// CreateUser mocks service.Facade.CreateUser
func (m *MockFacade) CreateUser(ctx context.Context, in service.CreateUserInput) (*domain.User, error) {
	args := m.Called(ctx, in)
	if v, ok := args.Get(0).(*domain.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetUser mocks service.Facade.GetUser
func (m *MockFacade) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*domain.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetUserByEmail mocks service.Facade.GetUserByEmail
func (m *MockFacade) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if v, ok := args.Get(0).(*domain.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetAllUsers mocks service.Facade.GetAllUsers
func (m *MockFacade) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]*domain.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// UpdateUser mocks service.Facade.UpdateUser
func (m *MockFacade) UpdateUser(ctx context.Context, id uuid.UUID, upd domain.UserUpdate) (*domain.User, error) {
	args := m.Called(ctx, id, upd)
	if v, ok := args.Get(0).(*domain.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// Authenticate mocks service.Facade.Authenticate
func (m *MockFacade) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if v, ok := args.Get(0).(*domain.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// EnsureAdmin mocks service.Facade.EnsureAdmin
func (m *MockFacade) EnsureAdmin(ctx context.Context, in service.CreateUserInput) (bool, error) {
	args := m.Called(ctx, in)
	return args.Bool(0), args.Error(1)
}

// CreatePlace mocks service.Facade.CreatePlace
func (m *MockFacade) CreatePlace(ctx context.Context, in service.CreatePlaceInput) (*domain.Place, error) {
	args := m.Called(ctx, in)
	if v, ok := args.Get(0).(*domain.Place); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetPlace mocks service.Facade.GetPlace
func (m *MockFacade) GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*domain.Place); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetAllPlaces mocks service.Facade.GetAllPlaces
func (m *MockFacade) GetAllPlaces(ctx context.Context) ([]*domain.Place, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]*domain.Place); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetPlacesByOwner mocks service.Facade.GetPlacesByOwner
func (m *MockFacade) GetPlacesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	args := m.Called(ctx, ownerID)
	if v, ok := args.Get(0).([]*domain.Place); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// UpdatePlace mocks service.Facade.UpdatePlace
func (m *MockFacade) UpdatePlace(ctx context.Context, id uuid.UUID, upd domain.PlaceUpdate) (*domain.Place, error) {
	args := m.Called(ctx, id, upd)
	if v, ok := args.Get(0).(*domain.Place); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// AddPlaceAmenity mocks service.Facade.AddPlaceAmenity
func (m *MockFacade) AddPlaceAmenity(ctx context.Context, placeID, amenityID uuid.UUID) error {
	return m.Called(ctx, placeID, amenityID).Error(0)
}

// RemovePlaceAmenity mocks service.Facade.RemovePlaceAmenity
func (m *MockFacade) RemovePlaceAmenity(ctx context.Context, placeID, amenityID uuid.UUID) error {
	return m.Called(ctx, placeID, amenityID).Error(0)
}

// GetPlaceAmenities mocks service.Facade.GetPlaceAmenities
func (m *MockFacade) GetPlaceAmenities(ctx context.Context, placeID uuid.UUID) ([]*domain.Amenity, error) {
	args := m.Called(ctx, placeID)
	if v, ok := args.Get(0).([]*domain.Amenity); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// CreateReview mocks service.Facade.CreateReview
func (m *MockFacade) CreateReview(ctx context.Context, in service.CreateReviewInput) (*domain.Review, error) {
	args := m.Called(ctx, in)
	if v, ok := args.Get(0).(*domain.Review); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetReview mocks service.Facade.GetReview
func (m *MockFacade) GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*domain.Review); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetAllReviews mocks service.Facade.GetAllReviews
func (m *MockFacade) GetAllReviews(ctx context.Context) ([]*domain.Review, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]*domain.Review); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetReviewsByPlace mocks service.Facade.GetReviewsByPlace
func (m *MockFacade) GetReviewsByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	args := m.Called(ctx, placeID)
	if v, ok := args.Get(0).([]*domain.Review); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// HasReviewed mocks service.Facade.HasReviewed
func (m *MockFacade) HasReviewed(ctx context.Context, userID, placeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, placeID)
	return args.Bool(0), args.Error(1)
}

// UpdateReview mocks service.Facade.UpdateReview
func (m *MockFacade) UpdateReview(ctx context.Context, id uuid.UUID, upd domain.ReviewUpdate) (*domain.Review, error) {
	args := m.Called(ctx, id, upd)
	if v, ok := args.Get(0).(*domain.Review); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// DeleteReview mocks service.Facade.DeleteReview
func (m *MockFacade) DeleteReview(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// CreateAmenity mocks service.Facade.CreateAmenity
func (m *MockFacade) CreateAmenity(ctx context.Context, in service.CreateAmenityInput) (*domain.Amenity, error) {
	args := m.Called(ctx, in)
	if v, ok := args.Get(0).(*domain.Amenity); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetAmenity mocks service.Facade.GetAmenity
func (m *MockFacade) GetAmenity(ctx context.Context, id uuid.UUID) (*domain.Amenity, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*domain.Amenity); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetAllAmenities mocks service.Facade.GetAllAmenities
func (m *MockFacade) GetAllAmenities(ctx context.Context) ([]*domain.Amenity, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]*domain.Amenity); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// UpdateAmenity mocks service.Facade.UpdateAmenity
func (m *MockFacade) UpdateAmenity(ctx context.Context, id uuid.UUID, upd domain.AmenityUpdate) (*domain.Amenity, error) {
	args := m.Called(ctx, id, upd)
	if v, ok := args.Get(0).(*domain.Amenity); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
