// Package memory provides the building block of the in-process storage driver.
package memory

import (
	"slices"
	"sync"
)

// Collection is an id-keyed set of records with its own monotonic counter.
// Identifiers start at 1 and are never reused, even after deletes.
// Records are stored and returned by value so callers cannot mutate stored state.
type Collection[T any] struct {
	mu    sync.RWMutex
	items map[int64]T
	seq   int64
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{items: make(map[int64]T)}
}

// Insert reserves the next identifier, builds the record and stores it.
func (c *Collection[T]) Insert(build func(id int64) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	item := build(c.seq)
	c.items[c.seq] = item
	return item
}

// NextID reserves an identifier without storing anything.
func (c *Collection[T]) NextID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	return c.seq
}

func (c *Collection[T]) Get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	return item, ok
}

// Update runs mutate on a copy of the record and stores the result.
func (c *Collection[T]) Update(id int64, mutate func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	mutate(&item)
	c.items[id] = item
	return item, true
}

// UpdateWhere mutates every record for which mutate reports a change and
// returns how many were changed.
func (c *Collection[T]) UpdateWhere(mutate func(*T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := 0
	for id, item := range c.items {
		if mutate(&item) {
			c.items[id] = item
			changed++
		}
	}
	return changed
}

// Delete removes the record and reports whether it existed.
func (c *Collection[T]) Delete(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	return true
}

// Filter returns matching records in no particular order.
func (c *Collection[T]) Filter(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for _, item := range c.items {
		if match == nil || match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Select returns copies of the matching records sorted by order.
func (c *Collection[T]) Select(match func(T) bool, order func(a, b *T) int) []*T {
	items := c.Filter(match)
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	if order != nil {
		slices.SortFunc(out, order)
	}
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}
