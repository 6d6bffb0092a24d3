// Package domain contains the core business entities of the booking API:
// users, places, reviews and amenities.
//
// Entities are constructed through NewX functions that normalize and
// validate every field, and are modified through typed partial updates
// (UserUpdate, PlaceUpdate, ...) that validate all supplied fields before
// applying any of them. Relationships between entities are stored as
// foreign-key IDs; collections such as a place's reviews are derived by
// querying the store rather than cached on the entity.
package domain
