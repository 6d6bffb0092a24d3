package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/store"
)

// Repository is a map-backed store.Repository that preserves insertion order.
type Repository[T store.Entity[T]] struct {
	mu       sync.RWMutex
	items    map[uuid.UUID]T
	order    []uuid.UUID
	notFound error
}

var _ store.Repository[*domain.User] = (*Repository[*domain.User])(nil)

// NewRepository creates an empty repository. notFound is the error returned
// when a lookup misses; it must wrap store.ErrNotFound.
func NewRepository[T store.Entity[T]](notFound error) *Repository[T] {
	return &Repository[T]{
		items:    make(map[uuid.UUID]T),
		notFound: notFound,
	}
}

// Add stores a copy of entity. An existing ID yields store.ErrDuplicate.
func (r *Repository[T]) Add(_ context.Context, entity T) error {
	id := entity.GetID()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; exists {
		return fmt.Errorf("%w: id %s", store.ErrDuplicate, id)
	}
	r.items[id] = entity.Clone()
	r.order = append(r.order, id)
	return nil
}

// Get returns a copy of the entity with the given ID.
func (r *Repository[T]) Get(_ context.Context, id uuid.UUID) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		var zero T
		return zero, r.notFound
	}
	return item.Clone(), nil
}

// GetAll returns copies of every entity in insertion order.
func (r *Repository[T]) GetAll(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id].Clone())
	}
	return out, nil
}

// Update replaces the stored entity. Unknown IDs are ignored.
func (r *Repository[T]) Update(_ context.Context, entity T) error {
	id := entity.GetID()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; ok {
		r.items[id] = entity.Clone()
	}
	return nil
}

// Delete removes the entity if present.
func (r *Repository[T]) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return nil
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// GetByAttribute returns the first entity, in insertion order, whose
// attribute equals value.
func (r *Repository[T]) GetByAttribute(_ context.Context, name string, value any) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		item := r.items[id]
		if matches(item, name, value) {
			return item.Clone(), nil
		}
	}
	var zero T
	return zero, r.notFound
}

// ListByAttribute returns every entity whose attribute equals value.
func (r *Repository[T]) ListByAttribute(_ context.Context, name string, value any) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []T
	for _, id := range r.order {
		item := r.items[id]
		if matches(item, name, value) {
			out = append(out, item.Clone())
		}
	}
	return out, nil
}

func matches[T store.Entity[T]](item T, name string, value any) bool {
	got, ok := item.Attributes()[name]
	return ok && got == value
}
