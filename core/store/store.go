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

// Package store defines the indexable backing store that range caches sit in
// front of.
package store

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when an index falls outside the store.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidRange is returned for an interval whose lower bound exceeds
	// its upper bound.
	ErrInvalidRange = errors.New("invalid range")
)

// Store is a mutable array of integers.
type Store interface {
	// Read returns the element at index.
	Read(index int) (int64, error)

	// Write replaces the element at index.
	Write(index int, value int64) error

	// Len returns the number of elements.
	Len() int

	// RangeSum returns the sum of elements lo..hi inclusive.
	RangeSum(lo, hi int) (int64, error)
}

// Array is an in-memory Store.
type Array struct {
	data []int64
}

// NewArray creates a store holding a copy of values.
func NewArray(values []int64) *Array {
	data := make([]int64, len(values))
	copy(data, values)
	return &Array{data: data}
}

// Read implements Store.
func (a *Array) Read(index int) (int64, error) {
	if err := a.checkIndex(index); err != nil {
		return 0, err
	}
	return a.data[index], nil
}

// Write implements Store.
func (a *Array) Write(index int, value int64) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	a.data[index] = value
	return nil
}

// Len implements Store.
func (a *Array) Len() int {
	return len(a.data)
}

// RangeSum implements Store by adding up the interval element by element.
func (a *Array) RangeSum(lo, hi int) (int64, error) {
	if err := CheckRange(a, lo, hi); err != nil {
		return 0, err
	}
	var sum int64
	for _, v := range a.data[lo : hi+1] {
		sum += v
	}
	return sum, nil
}

// Clone returns an independent copy of the store.
func (a *Array) Clone() *Array {
	return NewArray(a.data)
}

func (a *Array) checkIndex(index int) error {
	if index < 0 || index >= len(a.data) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, index, len(a.data))
	}
	return nil
}

// CheckRange validates the inclusive interval lo..hi against s.
func CheckRange(s Store, lo, hi int) error {
	if lo > hi {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, lo, hi)
	}
	if lo < 0 || hi >= s.Len() {
		return fmt.Errorf("%w: [%d, %d] not in [0, %d)", ErrOutOfRange, lo, hi, s.Len())
	}
	return nil
}
