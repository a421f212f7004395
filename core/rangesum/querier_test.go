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

package rangesum

import (
	"testing"

	"github.com/hotcache/hotcache/common/lru"
	"github.com/hotcache/hotcache/core/store"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// countingStore records how often sums are computed from the backing array.
type countingStore struct {
	*store.Array
	sums int
}

func (s *countingStore) RangeSum(lo, hi int) (int64, error) {
	s.sums++
	return s.Array.RangeSum(lo, hi)
}

func TestRangeSumCachesResult(t *testing.T) {
	st := &countingStore{Array: store.NewArray([]int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})}
	q := New(lru.NewRangeLRU[int, int64](8), st)

	sum, err := q.RangeSum(0, 5)
	require.NoError(t, err)
	require.EqualValues(t, 21, sum)
	sum, err = q.RangeSum(0, 5)
	require.NoError(t, err)
	require.EqualValues(t, 21, sum)

	require.Equal(t, 1, st.sums, "second query must be served from the cache")
	require.Equal(t, Stats{Hits: 1, Misses: 1}, q.Stats())
	require.InDelta(t, 0.5, q.Stats().HitRate(), 1e-9)
}

func TestUpdateInvalidatesSpanningRanges(t *testing.T) {
	st := &countingStore{Array: store.NewArray([]int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})}
	cache := lru.NewRangeLRU[int, int64](8)
	q := New(cache, st)

	_, err := q.RangeSum(0, 5)
	require.NoError(t, err)
	_, err = q.RangeSum(6, 9)
	require.NoError(t, err)

	require.NoError(t, q.Update(3, 100))
	require.False(t, cache.Contains(lru.Range[int](0, 5)))
	require.True(t, cache.Contains(lru.Range[int](6, 9)))

	sum, err := q.RangeSum(0, 5)
	require.NoError(t, err)
	require.EqualValues(t, 1+2+3+100+5+6, sum)

	sum, err = q.RangeSum(6, 9)
	require.NoError(t, err)
	require.EqualValues(t, 34, sum)

	require.Equal(t, Stats{Hits: 1, Misses: 3, Updates: 1, Invalidated: 1}, q.Stats())
}

func TestQuerierErrors(t *testing.T) {
	cache := lru.NewRangeLRU[int, int64](4)
	q := New(cache, store.NewArray([]int64{1, 2, 3}))

	_, err := q.RangeSum(2, 1)
	require.ErrorIs(t, err, store.ErrInvalidRange)
	_, err = q.RangeSum(0, 3)
	require.ErrorIs(t, err, store.ErrOutOfRange)
	require.ErrorIs(t, q.Update(3, 1), store.ErrOutOfRange)

	require.Zero(t, cache.Len())
	require.Equal(t, Stats{}, q.Stats())
}

func TestNoCacheHelpers(t *testing.T) {
	st := store.NewArray([]int64{4, 5, 6})
	require.NoError(t, UpdateNoCache(st, 1, 0))
	sum, err := RangeSumNoCache(st, 0, 2)
	require.NoError(t, err)
	require.EqualValues(t, 10, sum)
}

// This test checks that cached answers always match a cache-free computation
// under interleaved queries and updates.
func TestCachedMatchesUncached(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		size := rapid.IntRange(1, 40).Draw(t, "size")
		values := rapid.SliceOfN(rapid.Int64Range(-100, 100), size, size).Draw(t, "values")

		plain := store.NewArray(values)
		q := New(lru.NewRangeLRU[int, int64](rapid.IntRange(1, 16).Draw(t, "capacity")), store.NewArray(values))

		t.Repeat(map[string]func(*rapid.T){
			"query": func(t *rapid.T) {
				lo := rapid.IntRange(0, size-1).Draw(t, "lo")
				hi := rapid.IntRange(lo, size-1).Draw(t, "hi")
				want, err := RangeSumNoCache(plain, lo, hi)
				if err != nil {
					t.Fatalf("uncached: %v", err)
				}
				got, err := q.RangeSum(lo, hi)
				if err != nil {
					t.Fatalf("cached: %v", err)
				}
				if got != want {
					t.Fatalf("sum [%d, %d] = %d, want %d", lo, hi, got, want)
				}
			},
			"update": func(t *rapid.T) {
				index := rapid.IntRange(0, size-1).Draw(t, "index")
				value := rapid.Int64Range(-100, 100).Draw(t, "value")
				if err := UpdateNoCache(plain, index, value); err != nil {
					t.Fatalf("uncached: %v", err)
				}
				if err := q.Update(index, value); err != nil {
					t.Fatalf("cached: %v", err)
				}
			},
		})
	})
}
