// Package memory provides a process-local implementation of store.Store.
//
// Entities are cloned on the way in and on the way out, so callers never
// share state with the store. Data does not survive a restart.
package memory
