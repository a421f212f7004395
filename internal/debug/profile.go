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

package debug

import (
	"errors"
	"io"
	"os"
	"runtime/pprof"
	"runtime/trace"
	"sync"

	"github.com/hotcache/hotcache/log"
)

var (
	errProfiling    = errors.New("CPU profiling already in progress")
	errNotProfiling = errors.New("CPU profiling not in progress")
	errTracing      = errors.New("trace already in progress")
	errNotTracing   = errors.New("trace not in progress")
)

// Profiler is the process wide profiling state, see Profile.
type Profiler struct {
	mu        sync.Mutex
	cpuW      io.WriteCloser
	cpuFile   string
	traceW    io.WriteCloser
	traceFile string
}

// Profile is the profiler driven by the command line flags.
var Profile = new(Profiler)

// StartCPUProfile turns on CPU profiling, writing to the given file.
func (p *Profiler) StartCPUProfile(file string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cpuW != nil {
		return errProfiling
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return err
	}
	p.cpuW, p.cpuFile = f, file
	log.Info("CPU profiling started", "dump", file)
	return nil
}

// StopCPUProfile stops an ongoing CPU profile.
func (p *Profiler) StopCPUProfile() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cpuW == nil {
		return errNotProfiling
	}
	pprof.StopCPUProfile()
	log.Info("Done writing CPU profile", "dump", p.cpuFile)
	p.cpuW.Close()
	p.cpuW, p.cpuFile = nil, ""
	return nil
}

// StartGoTrace turns on execution tracing, writing to the given file.
func (p *Profiler) StartGoTrace(file string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.traceW != nil {
		return errTracing
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := trace.Start(f); err != nil {
		f.Close()
		return err
	}
	p.traceW, p.traceFile = f, file
	log.Info("Go tracing started", "dump", file)
	return nil
}

// StopGoTrace stops an ongoing trace.
func (p *Profiler) StopGoTrace() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.traceW == nil {
		return errNotTracing
	}
	trace.Stop()
	log.Info("Done writing Go trace", "dump", p.traceFile)
	p.traceW.Close()
	p.traceW, p.traceFile = nil, ""
	return nil
}
