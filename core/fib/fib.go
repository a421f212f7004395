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

// Package fib computes Fibonacci numbers memoised through either a splay tree
// or an LRU cache, as a workload for comparing the two.
package fib

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/holiman/uint256"
	"github.com/hotcache/hotcache/common/lru"
	"github.com/hotcache/hotcache/common/splay"
)

// MaxN is the largest n whose Fibonacci number fits in 256 bits.
const MaxN = 370

var (
	ErrNegative = errors.New("negative fibonacci index")
	ErrOverflow = errors.New("fibonacci number exceeds 256 bits")
)

// Memo is a store of already computed Fibonacci numbers.
type Memo interface {
	lookup(n int) (*uint256.Int, bool)
	store(n int, v *uint256.Int)
}

type splayMemo struct{ tree *splay.Tree[int, *uint256.Int] }

func (m splayMemo) lookup(n int) (*uint256.Int, bool) { return m.tree.Find(n) }
func (m splayMemo) store(n int, v *uint256.Int)       { m.tree.Insert(n, v) }

type lruMemo struct{ cache *lru.BasicLRU[int, *uint256.Int] }

func (m lruMemo) lookup(n int) (*uint256.Int, bool) { return m.cache.Get(n) }
func (m lruMemo) store(n int, v *uint256.Int)       { m.cache.Add(n, v) }

// fastMemo keys entries by the big endian index and stores the 32 byte
// big endian value.
type fastMemo struct{ cache *fastcache.Cache }

func (m fastMemo) lookup(n int) (*uint256.Int, bool) {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], uint64(n))
	enc, ok := m.cache.HasGet(nil, key[:])
	if !ok || len(enc) != 32 {
		return nil, false
	}
	return new(uint256.Int).SetBytes32(enc), true
}

func (m fastMemo) store(n int, v *uint256.Int) {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], uint64(n))
	enc := v.Bytes32()
	m.cache.Set(key[:], enc[:])
}

// SplayMemo memoises into a splay tree. Every hit splays the index to the root.
func SplayMemo(tree *splay.Tree[int, *uint256.Int]) Memo {
	return splayMemo{tree}
}

// LRUMemo memoises into an LRU cache. Entries may be evicted, the result is
// correct for any capacity.
func LRUMemo(cache *lru.BasicLRU[int, *uint256.Int]) Memo {
	return lruMemo{cache}
}

// FastMemo memoises into an off-heap byte cache. Values are copied in and
// out, so entries are never shared with callers.
func FastMemo(cache *fastcache.Cache) Memo {
	return fastMemo{cache}
}

// Splay returns F(n) memoised in tree.
func Splay(n int, tree *splay.Tree[int, *uint256.Int]) (*uint256.Int, error) {
	return Compute(n, SplayMemo(tree))
}

// LRU returns F(n) memoised in cache.
func LRU(n int, cache *lru.BasicLRU[int, *uint256.Int]) (*uint256.Int, error) {
	return Compute(n, LRUMemo(cache))
}

// Fast returns F(n) memoised in cache.
func Fast(n int, cache *fastcache.Cache) (*uint256.Int, error) {
	return Compute(n, FastMemo(cache))
}

// Compute returns F(n), consulting memo for every index 0..n and recording
// the ones it had to compute. The returned value is a copy the caller owns.
func Compute(n int, memo Memo) (*uint256.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegative, n)
	}
	if n > MaxN {
		return nil, fmt.Errorf("%w: n=%d, max %d", ErrOverflow, n, MaxN)
	}
	if v, ok := memo.lookup(n); ok {
		return new(uint256.Int).Set(v), nil
	}
	var prev, cur *uint256.Int // F(i-2), F(i-1)
	for i := 0; i <= n; i++ {
		v, ok := memo.lookup(i)
		if !ok {
			switch i {
			case 0, 1:
				v = uint256.NewInt(uint64(i))
			default:
				sum, overflow := new(uint256.Int).AddOverflow(prev, cur)
				if overflow {
					return nil, fmt.Errorf("%w: n=%d", ErrOverflow, i)
				}
				v = sum
			}
			memo.store(i, v)
		}
		prev, cur = cur, v
	}
	return new(uint256.Int).Set(cur), nil
}
