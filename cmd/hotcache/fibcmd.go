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

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/holiman/uint256"
	"github.com/hotcache/hotcache/common/lru"
	"github.com/hotcache/hotcache/common/mclock"
	"github.com/hotcache/hotcache/common/splay"
	"github.com/hotcache/hotcache/core/fib"
	"github.com/hotcache/hotcache/internal/flags"
	"github.com/hotcache/hotcache/log"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/urfave/cli/v2"
)

var (
	fibValuesFlag = &cli.IntSliceFlag{
		Name:     "fib.values",
		Usage:    fmt.Sprintf("Comma separated Fibonacci indices to time (each in 0..%d)", fib.MaxN),
		Category: flags.FibCategory,
	}
	fibRoundsFlag = &cli.IntFlag{
		Name:     "fib.rounds",
		Usage:    "Timed repetitions per index, averaged",
		Category: flags.FibCategory,
	}
	fibCapacityFlag = &cli.IntFlag{
		Name:     "fib.capacity",
		Usage:    "Number of entries in the LRU memo",
		Category: flags.CacheCategory,
	}

	fibFlags = []cli.Flag{
		fibValuesFlag,
		fibRoundsFlag,
		fibCapacityFlag,
	}

	fibCommand = &cli.Command{
		Action: fibBench,
		Name:   "fib",
		Usage:  "Compare splay tree and LRU cache memoisation of Fibonacci numbers",
		Flags:  fibFlags,
		Description: `
The fib command computes F(n) for every configured index, memoised once through
an LRU cache shared by all indices, once through a fastcache byte cache shared
by all indices and once through a fresh splay tree per index. Every index is
computed the configured number of rounds and the average time is reported.`,
	}
)

func setFibConfig(ctx *cli.Context, cfg *fibConfig) {
	if ctx.IsSet(fibValuesFlag.Name) {
		cfg.Values = ctx.IntSlice(fibValuesFlag.Name)
	}
	if ctx.IsSet(fibRoundsFlag.Name) {
		cfg.Rounds = ctx.Int(fibRoundsFlag.Name)
	}
	if ctx.IsSet(fibCapacityFlag.Name) {
		cfg.Capacity = ctx.Int(fibCapacityFlag.Name)
	}
}

// fibResult holds the average timings of one Fibonacci index.
type fibResult struct {
	N     int
	Value *uint256.Int
	LRU   time.Duration
	Fast  time.Duration
	Splay time.Duration
}

// fastcacheBytes sizes the byte cache memo. fastcache never goes below 32MB.
const fastcacheBytes = 32 * 1024 * 1024

func fibBench(ctx *cli.Context) error {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	results, err := runFib(cfg.Fib, mclock.System{})
	if err != nil {
		return err
	}
	printFibResults(ctx.App.Writer, cfg.Fib, results)
	return nil
}

func runFib(cfg fibConfig, clock mclock.Clock) ([]fibResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log.Info("Running fibonacci workload", "values", len(cfg.Values), "rounds", cfg.Rounds, "capacity", cfg.Capacity)

	var (
		cache   = lru.NewBasicLRU[int, *uint256.Int](cfg.Capacity)
		blobs   = fastcache.New(fastcacheBytes)
		results = make([]fibResult, 0, len(cfg.Values))
	)
	defer blobs.Reset()

	for _, n := range cfg.Values {
		res := fibResult{N: n}

		start := clock.Now()
		for i := 0; i < cfg.Rounds; i++ {
			v, err := fib.LRU(n, &cache)
			if err != nil {
				return nil, err
			}
			res.Value = v
		}
		res.LRU = mclock.Since(clock, start) / time.Duration(cfg.Rounds)

		start = clock.Now()
		for i := 0; i < cfg.Rounds; i++ {
			v, err := fib.Fast(n, blobs)
			if err != nil {
				return nil, err
			}
			if !v.Eq(res.Value) {
				return nil, fmt.Errorf("%w: F(%d) fastcache %v, lru %v", errMismatch, n, v, res.Value)
			}
		}
		res.Fast = mclock.Since(clock, start) / time.Duration(cfg.Rounds)

		tree := splay.New[int, *uint256.Int]()
		start = clock.Now()
		for i := 0; i < cfg.Rounds; i++ {
			v, err := fib.Splay(n, tree)
			if err != nil {
				return nil, err
			}
			if !v.Eq(res.Value) {
				return nil, fmt.Errorf("%w: F(%d) splay %v, lru %v", errMismatch, n, v, res.Value)
			}
		}
		res.Splay = mclock.Since(clock, start) / time.Duration(cfg.Rounds)

		log.Debug("Timed fibonacci index", "n", n, "lru", res.LRU, "fastcache", res.Fast, "splay", res.Splay, "height", tree.Height())
		results = append(results, res)
	}
	return results, nil
}

func printFibResults(w io.Writer, cfg fibConfig, results []fibResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.SetTitle("Fibonacci memoisation, average of %d rounds", cfg.Rounds)
	t.AppendHeader(table.Row{"n", "LRU cache", "fastcache", "Splay tree", "F(n) bits"})
	for _, r := range results {
		t.AppendRow(table.Row{r.N, r.LRU, r.Fast, r.Splay, r.Value.BitLen()})
	}
	t.Render()
}
