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

package lru

// RangeLRU is an LRU cache for the results of range queries over an indexed
// store. Entries keyed by Range(lo, hi) are dropped when any index they span
// is updated, scalar entries are never invalidated.
//
// This type is not safe for concurrent use.
type RangeLRU[K comparable, V any] struct {
	BasicLRU[Key[K], V]
}

// NewRangeLRU creates a range cache holding at most capacity items.
func NewRangeLRU[K comparable, V any](capacity int) *RangeLRU[K, V] {
	return &RangeLRU[K, V]{BasicLRU: NewBasicLRU[Key[K], V](capacity)}
}

// GetRange looks up the value cached for the interval [lo, hi] and marks it
// recently used.
func (c *RangeLRU[K, V]) GetRange(lo, hi int) (V, bool) {
	return c.Get(Range[K](lo, hi))
}

// AddRange caches value for the interval [lo, hi]. It reports whether an
// older entry was evicted to make room.
func (c *RangeLRU[K, V]) AddRange(lo, hi int, value V) (evicted bool) {
	return c.Add(Range[K](lo, hi), value)
}

// InvalidateAffectedRanges drops every cached interval containing index and
// returns how many entries went. Interval containment cannot be answered by
// the key map, so this walks all entries.
func (c *RangeLRU[K, V]) InvalidateAffectedRanges(index int) int {
	dropped := 0
	for key, ref := range c.items {
		if key.Contains(index) {
			c.drop(key, ref)
			dropped++
		}
	}
	return dropped
}
