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
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/hotcache/hotcache/core/fib"
	"github.com/hotcache/hotcache/core/workload"
	"github.com/hotcache/hotcache/internal/flags"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
)

var (
	dumpConfigCommand = &cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Export configuration values in a TOML format",
		ArgsUsage:   "<dumpfile (optional)>",
		Flags:       append(append([]cli.Flag{}, rangeFlags...), fibFlags...),
		Description: `Export configuration values in TOML format (to stdout by default).`,
	}

	configFileFlag = &flags.PathFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.MiscCategory,
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

var errInvalidConfig = errors.New("invalid config")

// rangeConfig drives the range-sum benchmark.
type rangeConfig struct {
	Capacity    int // cached ranges
	Size        int
	Queries     int
	UpdateRatio float64
	MaxValue    int64
	Seed        uint64
}

// fibConfig drives the Fibonacci memoisation benchmark.
type fibConfig struct {
	Values   []int
	Rounds   int // timed repetitions per value, averaged
	Capacity int // entries of the LRU memo
}

type hotcacheConfig struct {
	Range rangeConfig
	Fib   fibConfig
}

func defaultConfig() hotcacheConfig {
	w := workload.DefaultConfig
	return hotcacheConfig{
		Range: rangeConfig{
			Capacity:    1000,
			Size:        w.Size,
			Queries:     w.Queries,
			UpdateRatio: w.UpdateRatio,
			MaxValue:    w.MaxValue,
			Seed:        w.Seed,
		},
		Fib: fibConfig{
			Values:   []int{0, 50, 100, 150, 200, 250, 300, 350},
			Rounds:   5,
			Capacity: fib.MaxN + 1,
		},
	}
}

func (c rangeConfig) toWorkload() workload.Config {
	return workload.Config{
		Size:        c.Size,
		Queries:     c.Queries,
		UpdateRatio: c.UpdateRatio,
		MaxValue:    c.MaxValue,
		Seed:        c.Seed,
	}
}

func (c rangeConfig) validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("%w: range cache capacity %d", errInvalidConfig, c.Capacity)
	}
	return c.toWorkload().Validate()
}

func (c fibConfig) validate() error {
	switch {
	case c.Rounds < 1:
		return fmt.Errorf("%w: fib rounds %d", errInvalidConfig, c.Rounds)
	case c.Capacity < 1:
		return fmt.Errorf("%w: fib cache capacity %d", errInvalidConfig, c.Capacity)
	}
	for _, n := range c.Values {
		if n < 0 || n > fib.MaxN {
			return fmt.Errorf("%w: fib value %d outside [0, %d]", errInvalidConfig, n, fib.MaxN)
		}
	}
	return nil
}

func loadConfig(file string, cfg *hotcacheConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// loadBaseConfig loads the defaults, then the config file, then the command
// line flags, each overriding the previous.
func loadBaseConfig(ctx *cli.Context) (hotcacheConfig, error) {
	cfg := defaultConfig()
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	setRangeConfig(ctx, &cfg.Range)
	setFibConfig(ctx, &cfg.Fib)
	return cfg, nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	dump := ctx.App.Writer
	if ctx.NArg() > 0 {
		f, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		dump = f
	}
	_, err = dump.Write(out)
	return err
}
