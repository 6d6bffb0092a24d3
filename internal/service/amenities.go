package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/store"
)

// CreateAmenity stores a new amenity. Names are unique.
func (f *FacadeImpl) CreateAmenity(ctx context.Context, in CreateAmenityInput) (*domain.Amenity, error) {
	amenity, err := domain.NewAmenity(in.Name)
	if err != nil {
		return nil, err
	}

	err = f.inTx(ctx, func(ctx context.Context, tx store.Store) error {
		if err := ensureAmenityNameFree(ctx, tx, amenity.Name, uuid.Nil); err != nil {
			return err
		}
		if err := amenity.Validate(); err != nil {
			return err
		}
		if err := tx.Amenities().Add(ctx, amenity); err != nil {
			if store.IsDuplicateError(err) {
				return ErrDuplicateAmenity
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create amenity: %w", err)
	}

	f.logger.Info("amenity created",
		"amenity_id", amenity.ID,
		"name", amenity.Name)
	return amenity, nil
}

func ensureAmenityNameFree(ctx context.Context, tx store.Store, name string, self uuid.UUID) error {
	existing, err := tx.Amenities().GetByAttribute(ctx, "name", name)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != self:
		return ErrDuplicateAmenity
	}
	return nil
}

// GetAmenity returns the amenity with the given ID or store.ErrAmenityNotFound.
func (f *FacadeImpl) GetAmenity(ctx context.Context, id uuid.UUID) (*domain.Amenity, error) {
	return read(ctx, f, func(ctx context.Context, tx store.Store) (*domain.Amenity, error) {
		return tx.Amenities().Get(ctx, id)
	})
}

// GetAllAmenities returns every amenity.
func (f *FacadeImpl) GetAllAmenities(ctx context.Context) ([]*domain.Amenity, error) {
	return read(ctx, f, func(ctx context.Context, tx store.Store) ([]*domain.Amenity, error) {
		return tx.Amenities().GetAll(ctx)
	})
}

// UpdateAmenity renames an amenity, keeping names unique.
func (f *FacadeImpl) UpdateAmenity(ctx context.Context, id uuid.UUID, upd domain.AmenityUpdate) (*domain.Amenity, error) {
	amenity, err := read(ctx, f, func(ctx context.Context, tx store.Store) (*domain.Amenity, error) {
		amenity, err := tx.Amenities().Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := amenity.Apply(upd); err != nil {
			return nil, err
		}
		if err := ensureAmenityNameFree(ctx, tx, amenity.Name, amenity.ID); err != nil {
			return nil, err
		}
		if err := tx.Amenities().Update(ctx, amenity); err != nil {
			if store.IsDuplicateError(err) {
				return nil, ErrDuplicateAmenity
			}
			return nil, err
		}
		return amenity, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update amenity: %w", err)
	}

	f.logger.Info("amenity updated", "amenity_id", id)
	return amenity, nil
}
