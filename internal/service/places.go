package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/store"
)

// CreatePlace lists a place for an existing owner, optionally linking amenities.
func (f *FacadeImpl) CreatePlace(ctx context.Context, in CreatePlaceInput) (*domain.Place, error) {
	if in.OwnerID == uuid.Nil {
		return nil, ErrMissingOwner
	}

	place, err := domain.NewPlace(in.Title, in.Description, in.Price, in.Latitude, in.Longitude, in.OwnerID)
	if err != nil {
		return nil, err
	}

	err = f.inTx(ctx, func(ctx context.Context, tx store.Store) error {
		if _, err := tx.Users().Get(ctx, in.OwnerID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrOwnerNotFound
			}
			return err
		}
		for _, amenityID := range in.AmenityIDs {
			if err := requireAmenity(ctx, tx, amenityID); err != nil {
				return err
			}
		}
		if err := place.Validate(); err != nil {
			return err
		}
		if err := tx.Places().Add(ctx, place); err != nil {
			return err
		}
		for _, amenityID := range in.AmenityIDs {
			if err := tx.PlaceAmenities().Link(ctx, place.ID, amenityID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		f.logger.Debug("place creation rejected",
			"error", err,
			"owner_id", in.OwnerID)
		return nil, fmt.Errorf("failed to create place: %w", err)
	}

	f.logger.Info("place created",
		"place_id", place.ID,
		"owner_id", place.OwnerID)
	return place, nil
}

func requireAmenity(ctx context.Context, tx store.Store, id uuid.UUID) error {
	if _, err := tx.Amenities().Get(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrAmenityReferenceNotFound, id)
		}
		return err
	}
	return nil
}

// GetPlace returns the place with the given ID or store.ErrPlaceNotFound.
func (f *FacadeImpl) GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	return read(ctx, f, func(ctx context.Context, tx store.Store) (*domain.Place, error) {
		return tx.Places().Get(ctx, id)
	})
}

// GetAllPlaces returns every place.
func (f *FacadeImpl) GetAllPlaces(ctx context.Context) ([]*domain.Place, error) {
	return read(ctx, f, func(ctx context.Context, tx store.Store) ([]*domain.Place, error) {
		return tx.Places().GetAll(ctx)
	})
}

// GetPlacesByOwner returns the places owned by a user. An unknown owner has none.
func (f *FacadeImpl) GetPlacesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	return read(ctx, f, func(ctx context.Context, tx store.Store) ([]*domain.Place, error) {
		return tx.Places().ListByAttribute(ctx, "owner_id", ownerID)
	})
}

// UpdatePlace applies a partial update. The owner cannot change.
func (f *FacadeImpl) UpdatePlace(ctx context.Context, id uuid.UUID, upd domain.PlaceUpdate) (*domain.Place, error) {
	place, err := read(ctx, f, func(ctx context.Context, tx store.Store) (*domain.Place, error) {
		place, err := tx.Places().Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := place.Apply(upd); err != nil {
			return nil, err
		}
		if err := tx.Places().Update(ctx, place); err != nil {
			return nil, err
		}
		return place, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update place: %w", err)
	}

	f.logger.Info("place updated", "place_id", id)
	return place, nil
}

// AddPlaceAmenity links an existing amenity to an existing place.
func (f *FacadeImpl) AddPlaceAmenity(ctx context.Context, placeID, amenityID uuid.UUID) error {
	err := f.inTx(ctx, func(ctx context.Context, tx store.Store) error {
		if _, err := tx.Places().Get(ctx, placeID); err != nil {
			return err
		}
		if _, err := tx.Amenities().Get(ctx, amenityID); err != nil {
			return err
		}
		return tx.PlaceAmenities().Link(ctx, placeID, amenityID)
	})
	if err != nil {
		return fmt.Errorf("failed to add amenity to place: %w", err)
	}
	return nil
}

// RemovePlaceAmenity unlinks an amenity from an existing place.
func (f *FacadeImpl) RemovePlaceAmenity(ctx context.Context, placeID, amenityID uuid.UUID) error {
	err := f.inTx(ctx, func(ctx context.Context, tx store.Store) error {
		if _, err := tx.Places().Get(ctx, placeID); err != nil {
			return err
		}
		return tx.PlaceAmenities().Unlink(ctx, placeID, amenityID)
	})
	if err != nil {
		return fmt.Errorf("failed to remove amenity from place: %w", err)
	}
	return nil
}

// GetPlaceAmenities returns the amenities linked to a place in link order.
func (f *FacadeImpl) GetPlaceAmenities(ctx context.Context, placeID uuid.UUID) ([]*domain.Amenity, error) {
	return read(ctx, f, func(ctx context.Context, tx store.Store) ([]*domain.Amenity, error) {
		if _, err := tx.Places().Get(ctx, placeID); err != nil {
			return nil, err
		}
		ids, err := tx.PlaceAmenities().AmenityIDs(ctx, placeID)
		if err != nil {
			return nil, err
		}
		amenities := make([]*domain.Amenity, 0, len(ids))
		for _, id := range ids {
			amenity, err := tx.Amenities().Get(ctx, id)
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			amenities = append(amenities, amenity)
		}
		return amenities, nil
	})
}
