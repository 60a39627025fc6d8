// enTitan
// Copyright (c) 2026 The enTitan Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of enTitan.
//
// enTitan is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// enTitan is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with enTitan.  If not, see <http://www.gnu.org/licenses/>.

package sequencer

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/entitan/entitan/pkg/config"
	"github.com/entitan/entitan/pkg/helpers/syncutil"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrRunInProgress is returned by Coordinator.Start while another run has
// not reached a terminal step.
var ErrRunInProgress = errors.New("a run sequence is already in progress")

// Run is a handle to a sequence running in the background.
type Run struct {
	cancel context.CancelFunc
	done   chan struct{}
	result Result
	step   atomic.Int32
	id     uuid.UUID
}

func (r *Run) ID() uuid.UUID {
	return r.id
}

// Step returns the step the run is currently in.
func (r *Run) Step() Step {
	return Step(r.step.Load())
}

// Done is closed once the run is terminal.
func (r *Run) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the run is terminal and returns its result.
func (r *Run) Wait() Result {
	<-r.done
	return r.result
}

// Cancel abandons the remaining steps. Processes already started keep
// running.
func (r *Run) Cancel() {
	r.cancel()
}

// Coordinator owns the single active run. Each Start gets its own
// sequencer; the coordinator only remembers which one is non-terminal.
type Coordinator struct {
	active *Run
	deps   Deps
	mu     syncutil.Mutex
}

func NewCoordinator(deps Deps) *Coordinator {
	return &Coordinator{deps: deps.withDefaults()}
}

// Active returns the non-terminal run, or nil.
func (c *Coordinator) Active() *Run {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Start snapshots the launch and timing settings from cfg and runs the
// sequence in a new goroutine. observer may be nil.
func (c *Coordinator) Start(ctx context.Context, cfg *config.Instance, observer Observer) (*Run, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil {
		log.Warn().
			Str("run", c.active.id.String()).
			Stringer("step", c.active.Step()).
			Msg("rejected run request, sequence already in progress")
		return nil, ErrRunInProgress
	}

	if observer == nil {
		observer = noopObserver
	}

	runCtx, cancel := context.WithCancel(ctx)
	run := &Run{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	seq := New(cfg.LaunchConfig(), cfg.Timing(), c.deps, func(ev Event) {
		run.step.Store(int32(ev.Step)) //nolint:gosec // G115 small enum
		observer(ev)
	})
	run.id = seq.ID()
	c.active = run

	go func() {
		defer cancel()
		res := seq.Run(runCtx)
		run.result = res
		run.step.Store(int32(res.Final)) //nolint:gosec // G115 small enum

		c.mu.Lock()
		if c.active == run {
			c.active = nil
		}
		c.mu.Unlock()

		close(run.done)
	}()

	log.Info().Str("run", run.id.String()).Msg("run sequence started")
	return run, nil
}
