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

// hotcache benchmarks an LRU range-sum cache and splay tree memoisation.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/hotcache/hotcache/internal/debug"
	"github.com/hotcache/hotcache/internal/flags"
	"github.com/hotcache/hotcache/internal/version"
	"github.com/urfave/cli/v2"
)

const clientIdentifier = "hotcache"

var app = flags.NewApp("LRU range-sum cache and splay tree benchmarks")

var versionCommand = &cli.Command{
	Action:    printVersion,
	Name:      "version",
	Usage:     "Print version numbers",
	ArgsUsage: " ",
	Description: `
The output of this command is supposed to be machine-readable.
`,
}

func init() {
	app.Commands = []*cli.Command{
		rangeCommand,
		fibCommand,
		dumpConfigCommand,
		versionCommand,
	}
	app.Flags = append([]cli.Flag{configFileFlag}, debug.Flags...)
	app.Before = func(ctx *cli.Context) error {
		return debug.Setup(ctx)
	}
	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printVersion(ctx *cli.Context) error {
	git, _ := version.VCS()
	w := ctx.App.Writer

	fmt.Fprintln(w, clientIdentifier)
	fmt.Fprintln(w, "Version:", version.WithMeta)
	if git.Commit != "" {
		fmt.Fprintln(w, "Git Commit:", git.Commit)
	}
	if git.Date != "" {
		fmt.Fprintln(w, "Git Commit Date:", git.Date)
	}
	fmt.Fprintln(w, "Architecture:", runtime.GOARCH)
	fmt.Fprintln(w, "Go Version:", runtime.Version())
	fmt.Fprintln(w, "Operating System:", runtime.GOOS)
	return nil
}
