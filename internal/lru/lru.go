// Package lru provides a small bounded cache that evicts entries in insertion
// order. There is no read promotion: "recently used" means "recently added",
// which matches a cache of released sessions ordered by release time.
//
// The cache is not safe for concurrent use; callers are expected to access it
// from a single goroutine.
package lru

import "container/list"

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a bounded insertion-order cache. The front of the internal list is
// the oldest entry and is evicted first.
type Cache[K comparable, V any] struct {
	capacity int
	order    *list.List
	items    map[K]*list.Element
	onEvict  func(K, V)
}

// New creates a cache holding at most capacity entries. onEvict, if non-nil,
// is called for every entry dropped by capacity eviction or [Cache.Purge].
func New[K comparable, V any](capacity int, onEvict func(K, V)) *Cache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[K, V]{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[K]*list.Element, capacity),
		onEvict:  onEvict,
	}
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int { return c.order.Len() }

// Contains reports whether key is cached.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Add inserts key at the most-recent end, evicting the oldest entry if the
// cache is over capacity. Re-adding an existing key replaces its value and
// moves it to the most-recent end.
func (c *Cache[K, V]) Add(key K, value V) {
	if elem, ok := c.items[key]; ok {
		elem.Value = entry[K, V]{key: key, value: value}
		c.order.MoveToBack(elem)
		return
	}

	c.items[key] = c.order.PushBack(entry[K, V]{key: key, value: value})

	if c.order.Len() <= c.capacity {
		return
	}
	oldest := c.order.Front()
	e := oldest.Value.(entry[K, V])
	c.order.Remove(oldest)
	delete(c.items, e.key)
	if c.onEvict != nil {
		c.onEvict(e.key, e.value)
	}
}

// Remove deletes key from the cache and returns its value. The eviction
// callback is not invoked; the caller takes ownership of the value.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	e := elem.Value.(entry[K, V])
	c.order.Remove(elem)
	delete(c.items, key)
	return e.value, true
}

// Purge drops every entry, invoking the eviction callback for each in oldest
// to newest order.
func (c *Cache[K, V]) Purge() {
	for c.order.Len() > 0 {
		oldest := c.order.Front()
		e := oldest.Value.(entry[K, V])
		c.order.Remove(oldest)
		delete(c.items, e.key)
		if c.onEvict != nil {
			c.onEvict(e.key, e.value)
		}
	}
}
