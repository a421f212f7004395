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

// Package workload generates reproducible random mixes of range queries and
// point updates.
package workload

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Kind tells a range query from a point update.
type Kind uint8

const (
	RangeQuery Kind = iota
	PointUpdate
)

func (k Kind) String() string {
	switch k {
	case RangeQuery:
		return "range"
	case PointUpdate:
		return "update"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Query is one workload step. For a RangeQuery, A and B are the inclusive
// bounds. For a PointUpdate, A is the index and Value the new element.
type Query struct {
	Kind  Kind
	A, B  int
	Value int64
}

// Config describes a workload.
type Config struct {
	Size        int     // number of array elements
	Queries     int     // number of steps
	UpdateRatio float64 // probability of a step being an update
	MaxValue    int64   // elements and updates are drawn from [1, MaxValue]
	Seed        uint64
}

// DefaultConfig is the mix used when nothing else is configured.
var DefaultConfig = Config{
	Size:        100_000,
	Queries:     50_000,
	UpdateRatio: 0.5,
	MaxValue:    100,
	Seed:        1,
}

var errInvalidConfig = errors.New("invalid workload config")

// Validate checks that c describes a workload that can be generated.
func (c Config) Validate() error {
	switch {
	case c.Size < 2:
		return fmt.Errorf("%w: size %d, need at least 2", errInvalidConfig, c.Size)
	case c.Queries < 0:
		return fmt.Errorf("%w: negative query count %d", errInvalidConfig, c.Queries)
	case c.UpdateRatio < 0 || c.UpdateRatio > 1:
		return fmt.Errorf("%w: update ratio %v outside [0, 1]", errInvalidConfig, c.UpdateRatio)
	case c.MaxValue < 1:
		return fmt.Errorf("%w: max value %d", errInvalidConfig, c.MaxValue)
	}
	return nil
}

// Generate returns the initial array and the query stream for c. The same
// config always yields the same workload.
func Generate(c Config) ([]int64, []Query, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	rng := rand.New(rand.NewPCG(c.Seed, c.Seed^0x9e3779b97f4a7c15))

	values := make([]int64, c.Size)
	for i := range values {
		values[i] = 1 + rng.Int64N(c.MaxValue)
	}
	queries := make([]Query, c.Queries)
	for i := range queries {
		if rng.Float64() < c.UpdateRatio {
			queries[i] = Query{
				Kind:  PointUpdate,
				A:     rng.IntN(c.Size),
				Value: 1 + rng.Int64N(c.MaxValue),
			}
			continue
		}
		lo := rng.IntN(c.Size - 1)
		queries[i] = Query{
			Kind: RangeQuery,
			A:    lo,
			B:    lo + rng.IntN(c.Size-lo),
		}
	}
	return values, queries, nil
}
