package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// PlaceAmenities is a map-backed store.PlaceAmenityStore.
type PlaceAmenities struct {
	mu    sync.RWMutex
	links map[uuid.UUID][]uuid.UUID
}

// NewPlaceAmenities creates an empty link store.
func NewPlaceAmenities() *PlaceAmenities {
	return &PlaceAmenities{links: make(map[uuid.UUID][]uuid.UUID)}
}

// Link associates amenityID with placeID.
func (p *PlaceAmenities) Link(_ context.Context, placeID, amenityID uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !slices.Contains(p.links[placeID], amenityID) {
		p.links[placeID] = append(p.links[placeID], amenityID)
	}
	return nil
}

// Unlink removes the association if present.
func (p *PlaceAmenities) Unlink(_ context.Context, placeID, amenityID uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ids := p.links[placeID]
	if i := slices.Index(ids, amenityID); i >= 0 {
		p.links[placeID] = slices.Delete(ids, i, i+1)
	}
	return nil
}

// AmenityIDs lists the amenity IDs linked to placeID.
func (p *PlaceAmenities) AmenityIDs(_ context.Context, placeID uuid.UUID) ([]uuid.UUID, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return slices.Clone(p.links[placeID]), nil
}
