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

import "fmt"

// Key is a cache key that is either a plain scalar or an inclusive index
// interval [Lo, Hi]. The variant is fixed when the key is built.
type Key[K comparable] struct {
	scalar K
	lo, hi int
	ranged bool
}

// Scalar wraps a plain key.
func Scalar[K comparable](k K) Key[K] {
	return Key[K]{scalar: k}
}

// Range builds an interval key covering lo..hi inclusive. lo > hi panics.
func Range[K comparable](lo, hi int) Key[K] {
	if lo > hi {
		panic(fmt.Sprintf("lru: inverted range (%d, %d)", lo, hi))
	}
	return Key[K]{lo: lo, hi: hi, ranged: true}
}

// IsRange reports whether k is an interval key.
func (k Key[K]) IsRange() bool { return k.ranged }

// Bounds returns the interval of a range key.
func (k Key[K]) Bounds() (lo, hi int, ok bool) {
	return k.lo, k.hi, k.ranged
}

// Value returns the wrapped key of a scalar key.
func (k Key[K]) Value() (K, bool) {
	return k.scalar, !k.ranged
}

// Contains reports whether index falls inside a range key. Scalar keys
// contain nothing.
func (k Key[K]) Contains(index int) bool {
	return k.ranged && k.lo <= index && index <= k.hi
}

func (k Key[K]) String() string {
	if k.ranged {
		return fmt.Sprintf("[%d, %d]", k.lo, k.hi)
	}
	return fmt.Sprint(k.scalar)
}
