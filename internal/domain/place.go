package domain

import (
	"time"

	"github.com/google/uuid"
)

// Place is a listing offered by its owner. The owner cannot change after
// creation; reviews and amenities are kept outside the struct.
type Place struct {
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

// PlaceUpdate carries the place fields a partial update may change.
type PlaceUpdate struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
}

// NewPlace validates the supplied fields and returns a place with a fresh ID.
func NewPlace(title, description string, price, latitude, longitude float64, ownerID uuid.UUID) (*Place, error) {
	p := &Place{
		Title:       title,
		Description: description,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
	}
	if err := p.normalize(); err != nil {
		return nil, err
	}

	ts := now()
	p.ID = uuid.New()
	p.CreatedAt = ts
	p.UpdatedAt = ts
	return p, nil
}

func (p *Place) normalize() error {
	var err error
	if p.Title, err = ValidateTitle(p.Title); err != nil {
		return err
	}
	if p.Price, err = ValidatePrice(p.Price); err != nil {
		return err
	}
	if p.Latitude, err = ValidateLatitude(p.Latitude); err != nil {
		return err
	}
	if p.Longitude, err = ValidateLongitude(p.Longitude); err != nil {
		return err
	}
	return requireID(p.OwnerID, "owner_id")
}

// Validate checks that the place is consistent.
func (p *Place) Validate() error {
	if p.ID == uuid.Nil {
		return ErrInvalidID
	}
	c := *p
	return c.normalize()
}

// Apply validates and applies a partial update, all or nothing.
func (p *Place) Apply(upd PlaceUpdate) error {
	next := *p
	if upd.Title != nil {
		next.Title = *upd.Title
	}
	if upd.Description != nil {
		next.Description = *upd.Description
	}
	if upd.Price != nil {
		next.Price = *upd.Price
	}
	if upd.Latitude != nil {
		next.Latitude = *upd.Latitude
	}
	if upd.Longitude != nil {
		next.Longitude = *upd.Longitude
	}
	if err := next.normalize(); err != nil {
		return err
	}

	*p = next
	touch(&p.UpdatedAt)
	return nil
}

// GetID returns the place's ID.
func (p *Place) GetID() uuid.UUID { return p.ID }

// Attributes exposes the persisted fields keyed by column name.
func (p *Place) Attributes() map[string]any {
	return map[string]any{
		"id":          p.ID,
		"title":       p.Title,
		"description": p.Description,
		"price":       p.Price,
		"latitude":    p.Latitude,
		"longitude":   p.Longitude,
		"owner_id":    p.OwnerID,
		"created_at":  p.CreatedAt,
		"updated_at":  p.UpdatedAt,
	}
}

// Clone returns an independent copy of the place.
func (p *Place) Clone() *Place {
	c := *p
	return &c
}
