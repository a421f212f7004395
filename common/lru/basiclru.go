// Copyright 2026 The hotcache Authors
// This file is part of the hotcache library.
//
// The hotcache library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The hotcache library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the hotcache library. If not, see <http://www.gnu.org/licenses/>.

// Package lru implements generically-typed LRU caches.
package lru

// BasicLRU is a simple LRU cache.
//
// This type is not safe for concurrent use.
// The zero value is not valid, instances must be created using NewBasicLRU.
type BasicLRU[K comparable, V any] struct {
	list  *list[K, V]
	items map[K]int
	cap   int
}

// NewBasicLRU creates a new LRU cache holding at most capacity items.
// A non-positive capacity is a programming error and panics.
func NewBasicLRU[K comparable, V any](capacity int) BasicLRU[K, V] {
	if capacity <= 0 {
		panic("lru: capacity must be positive")
	}
	return BasicLRU[K, V]{
		list:  newList[K, V](capacity),
		items: make(map[K]int, capacity),
		cap:   capacity,
	}
}

// Add adds a value to the cache. Returns true if an item was evicted to store the new item.
//
// When the cache is full the least recently used item is dropped before the
// new one goes in, so the size never exceeds the capacity.
func (c *BasicLRU[K, V]) Add(key K, value V) (evicted bool) {
	if ref, ok := c.items[key]; ok {
		c.list.elem(ref).value = value
		c.list.moveToFront(ref)
		return false
	}
	if len(c.items) >= c.cap {
		ref := c.list.removeLast()
		delete(c.items, c.list.elem(ref).key)
		c.list.release(ref)
		evicted = true
	}
	c.items[key] = c.list.pushFront(key, value)
	return evicted
}

// Contains reports whether the given key exists in the cache.
func (c *BasicLRU[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Get retrieves a value from the cache. This marks the key as recently used.
func (c *BasicLRU[K, V]) Get(key K) (value V, ok bool) {
	ref, ok := c.items[key]
	if !ok {
		return value, false
	}
	c.list.moveToFront(ref)
	return c.list.elem(ref).value, true
}

// GetOldest retrieves the least-recently-used item.
// Note that this does not update the item's recency.
func (c *BasicLRU[K, V]) GetOldest() (key K, value V, ok bool) {
	ref := c.list.tail
	if ref == nilRef {
		return key, value, false
	}
	e := c.list.elem(ref)
	return e.key, e.value, true
}

// Len returns the current number of items in the cache.
func (c *BasicLRU[K, V]) Len() int {
	return len(c.items)
}

// Cap returns the maximum number of items the cache holds.
func (c *BasicLRU[K, V]) Cap() int {
	return c.cap
}

// Peek retrieves a value from the cache, but does not mark the key as recently used.
func (c *BasicLRU[K, V]) Peek(key K) (value V, ok bool) {
	ref, ok := c.items[key]
	if !ok {
		return value, false
	}
	return c.list.elem(ref).value, true
}

// Purge empties the cache.
func (c *BasicLRU[K, V]) Purge() {
	c.list.init()
	clear(c.items)
}

// Remove drops an item from the cache. Returns true if the key was present in cache.
func (c *BasicLRU[K, V]) Remove(key K) bool {
	ref, ok := c.items[key]
	if ok {
		c.drop(key, ref)
	}
	return ok
}

// RemoveOldest drops the least recently used item.
func (c *BasicLRU[K, V]) RemoveOldest() (key K, value V, ok bool) {
	ref := c.list.removeLast()
	if ref == nilRef {
		return key, value, false
	}
	e := c.list.elem(ref)
	key, value = e.key, e.value
	delete(c.items, key)
	c.list.release(ref)
	return key, value, true
}

// Keys returns all keys in the cache, most recently used first.
func (c *BasicLRU[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.items))
	return c.list.appendTo(keys)
}

// drop unlinks a present item and frees its node.
func (c *BasicLRU[K, V]) drop(key K, ref int) {
	delete(c.items, key)
	c.list.remove(ref)
	c.list.release(ref)
}
