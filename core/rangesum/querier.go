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

// Package rangesum answers interval sum queries over a store, remembering
// recent answers in an LRU cache that is invalidated on point updates.
package rangesum

import (
	"github.com/hotcache/hotcache/common/lru"
	"github.com/hotcache/hotcache/core/store"
	"github.com/hotcache/hotcache/log"
)

// Cache is the range cache used by a Querier.
type Cache = lru.RangeLRU[int, int64]

// Stats counts what a Querier did.
type Stats struct {
	Hits        uint64 // range queries answered from the cache
	Misses      uint64 // range queries computed from the store
	Updates     uint64 // point writes
	Invalidated uint64 // cached ranges dropped by writes
}

// HitRate returns the fraction of range queries served from the cache.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Querier serves range sums over a store through a cache. The store and the
// cache are owned by the caller, all writes to the store must go through
// Update or the cache serves stale sums.
//
// This type is not safe for concurrent use.
type Querier struct {
	cache *Cache
	store store.Store
	stats Stats
	log   log.Logger
}

// New creates a querier over st using cache.
func New(cache *Cache, st store.Store) *Querier {
	return &Querier{
		cache: cache,
		store: st,
		log:   log.New("cache", "range"),
	}
}

// RangeSum returns the sum of elements lo..hi inclusive, from the cache when
// the interval was answered before and not invalidated since.
func (q *Querier) RangeSum(lo, hi int) (int64, error) {
	if err := store.CheckRange(q.store, lo, hi); err != nil {
		return 0, err
	}
	if sum, ok := q.cache.GetRange(lo, hi); ok {
		q.stats.Hits++
		return sum, nil
	}
	sum, err := q.store.RangeSum(lo, hi)
	if err != nil {
		return 0, err
	}
	q.stats.Misses++
	if q.cache.AddRange(lo, hi, sum) {
		q.log.Trace("Evicted least recently used range", "size", q.cache.Len())
	}
	return sum, nil
}

// Update writes value at index and drops every cached range spanning it.
func (q *Querier) Update(index int, value int64) error {
	if err := q.store.Write(index, value); err != nil {
		return err
	}
	dropped := q.cache.InvalidateAffectedRanges(index)
	q.stats.Updates++
	q.stats.Invalidated += uint64(dropped)
	if dropped > 0 {
		q.log.Trace("Invalidated cached ranges", "index", index, "dropped", dropped)
	}
	return nil
}

// Stats returns the counters accumulated so far.
func (q *Querier) Stats() Stats {
	return q.stats
}

// RangeSumNoCache computes the sum of lo..hi straight from the store.
func RangeSumNoCache(st store.Store, lo, hi int) (int64, error) {
	return st.RangeSum(lo, hi)
}

// UpdateNoCache writes value at index.
func UpdateNoCache(st store.Store, index int, value int64) error {
	return st.Write(index, value)
}
