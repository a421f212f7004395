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
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hotcache/hotcache/common/lru"
	"github.com/hotcache/hotcache/common/mclock"
	"github.com/hotcache/hotcache/core/rangesum"
	"github.com/hotcache/hotcache/core/store"
	"github.com/hotcache/hotcache/core/workload"
	"github.com/hotcache/hotcache/internal/flags"
	"github.com/hotcache/hotcache/log"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/urfave/cli/v2"
)

var (
	rangeCapacityFlag = &cli.IntFlag{
		Name:     "cache.capacity",
		Usage:    "Number of range sums kept in the LRU cache",
		Category: flags.CacheCategory,
	}
	rangeSizeFlag = &cli.IntFlag{
		Name:     "range.size",
		Usage:    "Number of array elements",
		Category: flags.WorkloadCategory,
	}
	rangeQueriesFlag = &cli.IntFlag{
		Name:     "range.queries",
		Usage:    "Number of generated queries",
		Category: flags.WorkloadCategory,
	}
	rangeUpdateRatioFlag = &cli.Float64Flag{
		Name:     "range.updateratio",
		Usage:    "Share of point updates among the queries (0..1)",
		Category: flags.WorkloadCategory,
	}
	rangeMaxValueFlag = &cli.Int64Flag{
		Name:     "range.maxvalue",
		Usage:    "Largest generated element value",
		Category: flags.WorkloadCategory,
	}
	rangeSeedFlag = &cli.Uint64Flag{
		Name:     "range.seed",
		Usage:    "Seed of the workload generator",
		Category: flags.WorkloadCategory,
	}

	rangeFlags = []cli.Flag{
		rangeCapacityFlag,
		rangeSizeFlag,
		rangeQueriesFlag,
		rangeUpdateRatioFlag,
		rangeMaxValueFlag,
		rangeSeedFlag,
	}

	rangeCommand = &cli.Command{
		Action: rangeBench,
		Name:   "range",
		Usage:  "Benchmark range-sum queries with and without the LRU cache",
		Flags:  rangeFlags,
		Description: `
The range command generates a random array and a mix of range-sum queries and
point updates. It runs the mix once against the bare array and once through the
LRU cache, checks that both produce the same sums, and reports the timings.`,
	}
)

var errMismatch = errors.New("cached and uncached answers differ")

func setRangeConfig(ctx *cli.Context, cfg *rangeConfig) {
	if ctx.IsSet(rangeCapacityFlag.Name) {
		cfg.Capacity = ctx.Int(rangeCapacityFlag.Name)
	}
	if ctx.IsSet(rangeSizeFlag.Name) {
		cfg.Size = ctx.Int(rangeSizeFlag.Name)
	}
	if ctx.IsSet(rangeQueriesFlag.Name) {
		cfg.Queries = ctx.Int(rangeQueriesFlag.Name)
	}
	if ctx.IsSet(rangeUpdateRatioFlag.Name) {
		cfg.UpdateRatio = ctx.Float64(rangeUpdateRatioFlag.Name)
	}
	if ctx.IsSet(rangeMaxValueFlag.Name) {
		cfg.MaxValue = ctx.Int64(rangeMaxValueFlag.Name)
	}
	if ctx.IsSet(rangeSeedFlag.Name) {
		cfg.Seed = ctx.Uint64(rangeSeedFlag.Name)
	}
}

// rangeReport is the outcome of one range benchmark.
type rangeReport struct {
	Config  rangeConfig
	Ranges  int // range queries in the mix
	Updates int // point updates in the mix
	NoCache time.Duration
	Cached  time.Duration
	Stats   rangesum.Stats
}

func rangeBench(ctx *cli.Context) error {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	report, err := runRange(cfg.Range, mclock.System{})
	if err != nil {
		return err
	}
	printRangeReport(ctx.App.Writer, report)
	return nil
}

// runRange generates the configured workload and replays it twice, first on a
// bare array and then through a range-sum cache.
func runRange(cfg rangeConfig, clock mclock.Clock) (*rangeReport, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	values, queries, err := workload.Generate(cfg.toWorkload())
	if err != nil {
		return nil, err
	}
	report := &rangeReport{Config: cfg}
	for _, q := range queries {
		if q.Kind == workload.RangeQuery {
			report.Ranges++
		} else {
			report.Updates++
		}
	}
	log.Info("Running range workload", "size", cfg.Size, "ranges", report.Ranges, "updates", report.Updates, "capacity", cfg.Capacity)

	var (
		plain   = store.NewArray(values)
		answers = make([]int64, 0, report.Ranges)
		start   = clock.Now()
	)
	for _, q := range queries {
		switch q.Kind {
		case workload.RangeQuery:
			sum, err := rangesum.RangeSumNoCache(plain, q.A, q.B)
			if err != nil {
				return nil, err
			}
			answers = append(answers, sum)
		case workload.PointUpdate:
			if err := rangesum.UpdateNoCache(plain, q.A, q.Value); err != nil {
				return nil, err
			}
		}
	}
	report.NoCache = mclock.Since(clock, start)
	log.Debug("Uncached pass done", "elapsed", report.NoCache)

	querier := rangesum.New(lru.NewRangeLRU[int, int64](cfg.Capacity), store.NewArray(values))
	start = clock.Now()
	next := 0
	for _, q := range queries {
		switch q.Kind {
		case workload.RangeQuery:
			sum, err := querier.RangeSum(q.A, q.B)
			if err != nil {
				return nil, err
			}
			if sum != answers[next] {
				return nil, fmt.Errorf("%w: sum [%d, %d] = %d, want %d", errMismatch, q.A, q.B, sum, answers[next])
			}
			next++
		case workload.PointUpdate:
			if err := querier.Update(q.A, q.Value); err != nil {
				return nil, err
			}
		}
	}
	report.Cached = mclock.Since(clock, start)
	report.Stats = querier.Stats()
	log.Debug("Cached pass done", "elapsed", report.Cached, "hits", report.Stats.Hits, "invalidated", report.Stats.Invalidated)
	return report, nil
}

func printRangeReport(w io.Writer, r *rangeReport) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.SetTitle("Range sums: %d elements, %d ranges, %d updates", r.Config.Size, r.Ranges, r.Updates)
	t.AppendHeader(table.Row{"Mode", "Time", "Hits", "Misses", "Hit rate", "Invalidated"})
	t.AppendRow(table.Row{"no cache", r.NoCache.Round(time.Microsecond), "-", "-", "-", "-"})
	t.AppendRow(table.Row{
		fmt.Sprintf("LRU (%d)", r.Config.Capacity),
		r.Cached.Round(time.Microsecond),
		r.Stats.Hits,
		r.Stats.Misses,
		fmt.Sprintf("%.2f%%", r.Stats.HitRate()*100),
		r.Stats.Invalidated,
	})
	t.Render()
}
