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

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// Some of these test cases were adapted
// from https://github.com/hashicorp/golang-lru/blob/master/simplelru/lru_test.go

func TestBasicLRU(t *testing.T) {
	cache := NewBasicLRU[int, int](128)

	for i := 0; i < 256; i++ {
		cache.Add(i, i)
	}
	if cache.Len() != 128 {
		t.Fatalf("bad len: %v", cache.Len())
	}

	// Check that Keys returns keys in the right order.
	keys := cache.Keys()
	if len(keys) != 128 {
		t.Fatal("wrong Keys() length", len(keys))
	}
	for i, k := range keys {
		v, ok := cache.Peek(k)
		if !ok {
			t.Fatalf("expected key %d be present", i)
		}
		if v != k {
			t.Fatalf("expected %d == %d", k, v)
		}
		if v != 255-i {
			t.Fatalf("wrong value at key %d: %d, want %d", i, v, 255-i)
		}
	}

	for i := 0; i < 128; i++ {
		_, ok := cache.Get(i)
		if ok {
			t.Fatalf("%d should be evicted", i)
		}
	}
	for i := 128; i < 256; i++ {
		_, ok := cache.Get(i)
		if !ok {
			t.Fatalf("%d should not be evicted", i)
		}
	}

	for i := 128; i < 192; i++ {
		ok := cache.Remove(i)
		if !ok {
			t.Fatalf("%d should be in cache", i)
		}
		ok = cache.Remove(i)
		if ok {
			t.Fatalf("%d should not be in cache", i)
		}
		_, ok = cache.Get(i)
		if ok {
			t.Fatalf("%d should be deleted", i)
		}
	}

	// Request item 192.
	cache.Get(192)
	// It should be the first item returned by Keys().
	for i, k := range cache.Keys() {
		if (i == 0 && k != 192) || (i > 0 && k != 256-i) {
			t.Fatalf("out of order key: %v", k)
		}
	}

	cache.Purge()
	if cache.Len() != 0 {
		t.Fatalf("bad len: %v", cache.Len())
	}
	if _, ok := cache.Get(200); ok {
		t.Fatalf("should contain nothing")
	}
}

func TestBasicLRUAddExistingKey(t *testing.T) {
	cache := NewBasicLRU[int, int](1)

	cache.Add(1, 1)
	cache.Add(1, 2)

	v, _ := cache.Get(1)
	if v != 2 {
		t.Fatal("wrong value:", v)
	}
}

func TestBasicLRUEvictsFirstInserted(t *testing.T) {
	const capacity = 8
	cache := NewBasicLRU[string, int](capacity)

	for i := 0; i <= capacity; i++ {
		evicted := cache.Add(fmt.Sprint(i), i)
		require.Equal(t, i == capacity, evicted, "eviction flag for insert %d", i)
		require.LessOrEqual(t, cache.Len(), capacity)
	}
	require.False(t, cache.Contains("0"), "first inserted key survived")
	for i := 1; i <= capacity; i++ {
		require.True(t, cache.Contains(fmt.Sprint(i)))
	}
}

func TestBasicLRUGetRefreshesRecency(t *testing.T) {
	const capacity = 4
	cache := NewBasicLRU[int, int](capacity)
	for i := 0; i < capacity; i++ {
		cache.Add(i, i)
	}

	// Touch 0, then add capacity-1 fresh keys: 0 must survive.
	_, ok := cache.Get(0)
	require.True(t, ok)
	for i := 100; i < 100+capacity-1; i++ {
		cache.Add(i, i)
	}
	v, ok := cache.Get(0)
	require.True(t, ok)
	require.Equal(t, 0, v)

	// Without touching it again, capacity fresh keys push it out.
	for i := 200; i < 200+capacity; i++ {
		cache.Add(i, i)
	}
	_, ok = cache.Get(0)
	require.False(t, ok)
}

func TestBasicLRUPeekKeepsRecency(t *testing.T) {
	cache := NewBasicLRU[int, int](2)
	cache.Add(1, 1)
	cache.Add(2, 2)

	v, ok := cache.Peek(1)
	require.True(t, ok)
	require.Equal(t, 1, v)

	cache.Add(3, 3)
	require.False(t, cache.Contains(1), "peek must not refresh the entry")
}

func TestBasicLRUGetOldest(t *testing.T) {
	cache := NewBasicLRU[int, int](128)
	for i := 0; i < 256; i++ {
		cache.Add(i, i)
	}

	k, _, ok := cache.GetOldest()
	if !ok {
		t.Fatalf("missing")
	}
	if k != 128 {
		t.Fatalf("bad: %v", k)
	}

	k, _, ok = cache.RemoveOldest()
	if !ok {
		t.Fatalf("missing")
	}
	if k != 128 {
		t.Fatalf("bad: %v", k)
	}

	k, _, ok = cache.RemoveOldest()
	if !ok {
		t.Fatalf("missing oldest item")
	}
	if k != 129 {
		t.Fatalf("wrong oldest item: %v", k)
	}
}

func TestBasicLRURemoveOldestEmpty(t *testing.T) {
	cache := NewBasicLRU[int, int](4)
	_, _, ok := cache.RemoveOldest()
	require.False(t, ok)
	_, _, ok = cache.GetOldest()
	require.False(t, ok)
}

func TestBasicLRUNonPositiveCapacity(t *testing.T) {
	require.PanicsWithValue(t, "lru: capacity must be positive", func() {
		NewBasicLRU[int, int](0)
	})
	require.Panics(t, func() {
		NewBasicLRU[int, int](-3)
	})
}

// This test checks that the cache stays consistent under any sequence of operations.
func TestBasicLRUOperations(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var (
			capacity = rapid.IntRange(1, 8).Draw(t, "capacity")
			cache    = NewBasicLRU[int, int](capacity)
			keyGen   = rapid.IntRange(0, 15)
			model    []int // keys, most recent first
			values   = make(map[int]int)
		)
		touch := func(key int) {
			for i, k := range model {
				if k == key {
					model = append(model[:i], model[i+1:]...)
					break
				}
			}
			model = append([]int{key}, model...)
		}
		t.Repeat(map[string]func(*rapid.T){
			"add": func(t *rapid.T) {
				key := keyGen.Draw(t, "key")
				value := rapid.Int().Draw(t, "value")

				_, present := values[key]
				wantEvict := !present && len(model) == capacity
				if wantEvict {
					oldest := model[len(model)-1]
					model = model[:len(model)-1]
					delete(values, oldest)
				}
				if evicted := cache.Add(key, value); evicted != wantEvict {
					t.Fatalf("Add(%d) evicted=%v, want %v", key, evicted, wantEvict)
				}
				values[key] = value
				touch(key)
			},
			"get": func(t *rapid.T) {
				key := keyGen.Draw(t, "key")
				v, ok := cache.Get(key)
				want, present := values[key]
				if ok != present || v != want {
					t.Fatalf("Get(%d) = (%d, %v), want (%d, %v)", key, v, ok, want, present)
				}
				if present {
					touch(key)
				}
			},
			"remove": func(t *rapid.T) {
				key := keyGen.Draw(t, "key")
				_, present := values[key]
				if ok := cache.Remove(key); ok != present {
					t.Fatalf("Remove(%d) = %v, want %v", key, ok, present)
				}
				if present {
					delete(values, key)
					for i, k := range model {
						if k == key {
							model = append(model[:i], model[i+1:]...)
							break
						}
					}
				}
			},
			"": func(t *rapid.T) {
				if cache.Len() > capacity {
					t.Fatalf("len %d exceeds capacity %d", cache.Len(), capacity)
				}
				if cache.Len() != cache.list.size {
					t.Fatalf("map holds %d items, list %d", cache.Len(), cache.list.size)
				}
				keys := checkList(t, cache.list)
				if len(keys) != len(model) {
					t.Fatalf("keys %v, model %v", keys, model)
				}
				for i := range keys {
					if keys[i] != model[i] {
						t.Fatalf("keys %v, model %v", keys, model)
					}
				}
			},
		})
	})
}

func BenchmarkLRU(b *testing.B) {
	var (
		capacity = 1000
		indexes  = make([]int, capacity*20)
		keys     = make([]string, capacity)
		values   = make([][]byte, capacity)
	)
	for i := range indexes {
		indexes[i] = rand.Intn(capacity)
	}
	for i := range keys {
		b := make([]byte, 32)
		rand.Read(b)
		keys[i] = string(b)
		rand.Read(b)
		values[i] = b
	}

	var sink []byte

	b.Run("Add/BasicLRU", func(b *testing.B) {
		cache := NewBasicLRU[int, int](capacity)
		for i := 0; i < b.N; i++ {
			cache.Add(i, i)
		}
	})
	b.Run("Get/BasicLRU", func(b *testing.B) {
		cache := NewBasicLRU[string, []byte](capacity)
		for i := 0; i < capacity; i++ {
			index := indexes[i]
			cache.Add(keys[index], values[index])
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			k := keys[indexes[i%len(indexes)]]
			v, ok := cache.Get(k)
			if ok {
				sink = v
			}
		}
	})

	_ = sink
}
