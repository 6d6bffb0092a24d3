// Package store defines the persistence contracts of the application:
// a generic Repository per entity type, the place/amenity link store and
// the Store that bundles them into a unit of work.
//
// Implementations live in store/memory (process-local maps) and
// platform/sqlstore (database/sql). Both satisfy the contract suite in
// store/storetest.
package store
