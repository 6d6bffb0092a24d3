package domain

import (
	"time"

	"github.com/google/uuid"
)

// Amenity is a named feature (e.g. "Wi-Fi") that places can offer.
type Amenity struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AmenityUpdate carries the amenity fields a partial update may change.
type AmenityUpdate struct {
	Name *string
}

// NewAmenity validates name and returns an amenity with a fresh ID.
func NewAmenity(name string) (*Amenity, error) {
	name, err := ValidateAmenityName(name)
	if err != nil {
		return nil, err
	}
	ts := now()
	return &Amenity{ID: uuid.New(), Name: name, CreatedAt: ts, UpdatedAt: ts}, nil
}

// Validate checks that the amenity is consistent.
func (a *Amenity) Validate() error {
	if a.ID == uuid.Nil {
		return ErrInvalidID
	}
	_, err := ValidateAmenityName(a.Name)
	return err
}

// Apply validates and applies a partial update.
func (a *Amenity) Apply(upd AmenityUpdate) error {
	if upd.Name != nil {
		name, err := ValidateAmenityName(*upd.Name)
		if err != nil {
			return err
		}
		a.Name = name
	}
	touch(&a.UpdatedAt)
	return nil
}

// GetID returns the amenity's ID.
func (a *Amenity) GetID() uuid.UUID { return a.ID }

// Attributes exposes the persisted fields keyed by column name.
func (a *Amenity) Attributes() map[string]any {
	return map[string]any{
		"id":         a.ID,
		"name":       a.Name,
		"created_at": a.CreatedAt,
		"updated_at": a.UpdatedAt,
	}
}

// Clone returns an independent copy of the amenity.
func (a *Amenity) Clone() *Amenity {
	c := *a
	return &c
}
