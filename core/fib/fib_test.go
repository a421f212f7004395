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

package fib

import (
	"testing"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/holiman/uint256"
	"github.com/hotcache/hotcache/common/lru"
	"github.com/hotcache/hotcache/common/splay"
	"github.com/stretchr/testify/require"
)

var known = map[int]string{
	0:   "0",
	1:   "1",
	2:   "1",
	10:  "55",
	50:  "12586269025",
	93:  "12200160415121876738",
	100: "354224848179261915075",
	300: "222232244629420445529739893461909967206666939096499764990979600",
}

func TestSplay(t *testing.T) {
	tree := splay.New[int, *uint256.Int]()
	for n, want := range known {
		v, err := Splay(n, tree)
		require.NoError(t, err)
		require.Equal(t, want, v.Dec(), "F(%d)", n)

		// A memoised answer is a tree hit, which splays n to the root.
		v, err = Splay(n, tree)
		require.NoError(t, err)
		require.Equal(t, want, v.Dec())
		root, ok := tree.Root()
		require.True(t, ok)
		require.Equal(t, n, root)
	}
	require.Equal(t, 301, tree.Len(), "every index memoised once")
}

func TestLRU(t *testing.T) {
	cache := lru.NewBasicLRU[int, *uint256.Int](MaxN + 1)
	for n, want := range known {
		v, err := LRU(n, &cache)
		require.NoError(t, err)
		require.Equal(t, want, v.Dec(), "F(%d)", n)
	}
}

func TestLRUSmallCapacity(t *testing.T) {
	cache := lru.NewBasicLRU[int, *uint256.Int](2)
	v, err := LRU(300, &cache)
	require.NoError(t, err)
	require.Equal(t, known[300], v.Dec())
	require.Equal(t, 2, cache.Len())
}

func TestFast(t *testing.T) {
	cache := fastcache.New(32 * 1024 * 1024)
	defer cache.Reset()

	for n, want := range known {
		v, err := Fast(n, cache)
		require.NoError(t, err)
		require.Equal(t, want, v.Dec(), "F(%d)", n)
	}
	var stats fastcache.Stats
	cache.UpdateStats(&stats)
	require.EqualValues(t, 301, stats.EntriesCount, "every index memoised once")

	v, err := Fast(MaxN, cache)
	require.NoError(t, err)
	require.Equal(t, 256, v.BitLen())
}

func TestReturnedValueIsCopy(t *testing.T) {
	tree := splay.New[int, *uint256.Int]()
	v, err := Splay(10, tree)
	require.NoError(t, err)
	v.SetUint64(0)

	v, err = Splay(10, tree)
	require.NoError(t, err)
	require.Equal(t, uint64(55), v.Uint64())
}

func TestLimits(t *testing.T) {
	tree := splay.New[int, *uint256.Int]()

	_, err := Splay(-1, tree)
	require.ErrorIs(t, err, ErrNegative)
	_, err = Splay(MaxN+1, tree)
	require.ErrorIs(t, err, ErrOverflow)
	require.Zero(t, tree.Len())

	v, err := Splay(MaxN, tree)
	require.NoError(t, err)
	require.Equal(t, 256, v.BitLen())
}
