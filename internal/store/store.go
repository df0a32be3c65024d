// Package store provides the in-memory entity store backing every
// collection of the storefront: a mutex-guarded keyed map with stable
// insertion order. Each operation is a single critical section, so
// read-modify-write sequences never interleave with other operations on
// the same collection.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an id has no entity in the collection.
var ErrNotFound = errors.New("entity not found")

// Collection is a generic keyed entity collection. The key function
// extracts the id from an entity; it is used when importing snapshots.
type Collection[T any] struct {
	mu    sync.Mutex
	key   func(T) string
	items map[string]T
	order []string
}

// NewCollection builds an empty collection.
func NewCollection[T any](key func(T) string) *Collection[T] {
	return &Collection[T]{
		key:   key,
		items: make(map[string]T),
	}
}

// Create inserts a new entity. The build callback receives the generated
// id and creation timestamp and returns the entity to store.
func (c *Collection[T]) Create(build func(id string, createdAt time.Time) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := uuid.NewString()
	entity := build(id, time.Now().UTC())
	c.items[id] = entity
	c.order = append(c.order, id)
	return entity
}

// Get returns the entity for id, or false when absent. It never fails.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entity, ok := c.items[id]
	return entity, ok
}

// All returns every entity in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Find returns entities matching the predicate, in insertion order.
func (c *Collection[T]) Find(match func(T) bool) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, 0)
	for _, id := range c.order {
		if match(c.items[id]) {
			out = append(out, c.items[id])
		}
	}
	return out
}

// FindOne returns the first entity matching the predicate.
func (c *Collection[T]) FindOne(match func(T) bool) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range c.order {
		if match(c.items[id]) {
			return c.items[id], true
		}
	}
	var zero T
	return zero, false
}

// Update applies mutate to the stored entity under the collection lock and
// stores the result. The mutate callback must not change the entity's id
// or creation timestamp. Returns ErrNotFound when the id is absent.
func (c *Collection[T]) Update(id string, mutate func(T) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entity, ok := c.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	updated := mutate(entity)
	c.items[id] = updated
	return updated, nil
}

// Delete removes the entity and reports whether it existed.
func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, ordered := range c.order {
		if ordered == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of stored entities.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Export returns every entity in insertion order for snapshotting.
func (c *Collection[T]) Export() []T {
	return c.All()
}

// Import replaces the collection contents with the given entities,
// preserving their order and identities.
func (c *Collection[T]) Import(entities []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]T, len(entities))
	c.order = c.order[:0]
	for _, entity := range entities {
		id := c.key(entity)
		if _, exists := c.items[id]; !exists {
			c.order = append(c.order, id)
		}
		c.items[id] = entity
	}
}
