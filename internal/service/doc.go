// Package service contains the application's use cases. Its Facade is the
// single entry point used by request handlers: it enforces cross-entity
// rules (owner existence, review references, email and amenity name
// uniqueness) and runs every operation inside a store.Store unit of work.
//
// Entity-level validation lives in internal/domain; authorization decisions
// live in internal/service/auth and are applied by the API layer.
package service
