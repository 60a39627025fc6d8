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

// Package sequencer drives the timed launch sequence: start the platform
// launcher, wait, start the game binary directly, wait, then start the
// launcher again so it comes to the foreground.
package sequencer

import (
	"context"
	"errors"
	"time"

	"github.com/entitan/entitan/pkg/config"
	"github.com/entitan/entitan/pkg/helpers/command"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Deps are the collaborators a Sequencer talks to. Zero fields fall back to
// the real implementations, except Finder which disables early exit.
type Deps struct {
	Launcher command.Launcher
	Clock    clockwork.Clock
	Finder   WindowWatcher
	Fs       afero.Fs
	Validate config.ValidateOptions
}

func (d Deps) withDefaults() Deps {
	if d.Launcher == nil {
		d.Launcher = command.NewLauncher()
	}
	if d.Clock == nil {
		d.Clock = clockwork.NewRealClock()
	}
	if d.Fs == nil {
		d.Fs = afero.NewOsFs()
	}
	return d
}

// Result summarises a finished run.
type Result struct {
	Err     error
	Visited []Step
	Handles []command.Handle
	Final   Step
	RunID   uuid.UUID
}

// Sequencer runs a single launch sequence. It is not reusable; build a new
// one for every run.
type Sequencer struct {
	deps     Deps
	observer Observer
	lc       config.LaunchConfig
	timing   config.Timing
	runID    uuid.UUID
	visited  []Step
	handles  []command.Handle
}

// New takes copies of lc and timing; later changes to the config don't
// affect the run.
func New(lc config.LaunchConfig, timing config.Timing, deps Deps, observer Observer) *Sequencer {
	if observer == nil {
		observer = noopObserver
	}
	return &Sequencer{
		lc:       lc,
		timing:   timing,
		deps:     deps.withDefaults(),
		observer: observer,
		runID:    uuid.New(),
	}
}

func (s *Sequencer) ID() uuid.UUID {
	return s.runID
}

func (s *Sequencer) emit(ev Event) {
	ev.RunID = s.runID
	s.observer(ev)
}

// Run validates the config and walks the steps in order. Nothing is spawned
// if validation fails. A step failure or ctx cancellation aborts the
// remaining steps; processes already started are left running.
func (s *Sequencer) Run(ctx context.Context) Result {
	logger := log.With().Str("run", s.runID.String()).Logger()

	if err := s.lc.Validate(s.deps.Fs, s.deps.Validate); err != nil {
		logger.Warn().Err(err).Msg("launch config rejected")
		return s.finish(Aborted, err)
	}

	for step := StartLauncher; !step.Terminal(); step = step.next() {
		if err := ctx.Err(); err != nil {
			logger.Info().Stringer("step", step).Msg("run cancelled")
			return s.finish(Aborted, &StepError{Step: step, Err: err})
		}

		s.visited = append(s.visited, step)
		logger.Info().Stringer("step", step).Msg("entering step")

		if err := s.exec(ctx, step); err != nil {
			logger.Error().Err(err).Stringer("step", step).Msg("step failed")
			return s.finish(Aborted, &StepError{Step: step, Err: err})
		}
	}

	logger.Info().Int("spawned", len(s.handles)).Msg("run sequence completed")
	return s.finish(Done, nil)
}

func (s *Sequencer) finish(final Step, err error) Result {
	s.visited = append(s.visited, final)
	s.emit(Event{Kind: EventFinished, Step: final, Err: err})
	return Result{
		RunID:   s.runID,
		Final:   final,
		Err:     err,
		Visited: s.visited,
		Handles: s.handles,
	}
}

func (s *Sequencer) exec(ctx context.Context, step Step) error {
	switch step {
	case StartLauncher, RefocusLauncher:
		return s.launch(ctx, step, s.lc.PlatformLauncherPath)
	case StartGameDirect:
		return s.launch(ctx, step, s.lc.GameBinaryPath)
	case WaitAfterLauncher:
		return s.wait(ctx, step, s.timing.LauncherWaitDuration(), s.lc.PlatformLauncherPath)
	case WaitAfterGame:
		return s.wait(ctx, step, s.timing.GameWaitDuration(), s.lc.GameBinaryPath)
	case Done, Aborted:
		return nil
	default:
		return errors.New("unknown step: " + step.String())
	}
}

func (s *Sequencer) launch(ctx context.Context, step Step, path string) error {
	s.emit(Event{Kind: EventStep, Step: step, Path: path})

	h, err := s.deps.Launcher.Launch(ctx, path)
	if err != nil {
		return err //nolint:wrapcheck // wrapped in StepError by Run
	}
	s.handles = append(s.handles, h)

	log.Info().
		Str("run", s.runID.String()).
		Stringer("step", step).
		Int("pid", h.PID).
		Str("path", path).
		Msg("process started")
	s.emit(Event{Kind: EventLaunched, Step: step, Path: path, PID: h.PID})
	return nil
}

// wait counts total down one second at a time. With early exit enabled the
// target window is polled and, once it appears, the remaining time is cut
// to the settle delay. total is always the upper bound.
func (s *Sequencer) wait(ctx context.Context, step Step, total time.Duration, target string) error {
	s.emit(Event{Kind: EventStep, Step: step, Path: target})
	if total <= 0 {
		return nil
	}

	var poll *readiness
	if s.timing.EarlyExit && s.deps.Finder != nil {
		poll = newReadiness(s.deps.Finder, target, s.timing)
	}

	ticker := s.deps.Clock.NewTicker(time.Second)
	defer ticker.Stop()

	remaining := total
	elapsed := time.Duration(0)
	for remaining > 0 {
		s.emit(Event{Kind: EventCountdown, Step: step, Remaining: remaining, Path: target})

		select {
		case <-ctx.Done():
			return ctx.Err() //nolint:wrapcheck // wrapped in StepError by Run
		case <-ticker.Chan():
		}

		remaining -= time.Second
		elapsed += time.Second

		if poll == nil || remaining <= 0 {
			continue
		}
		win, ready := poll.check(elapsed)
		if !ready {
			continue
		}
		settle := s.timing.SettleDelayDuration()
		if settle < remaining {
			remaining = settle
		}
		log.Info().
			Str("run", s.runID.String()).
			Stringer("step", step).
			Str("title", win.Title).
			Dur("remaining", remaining).
			Msg("target window appeared, shortening wait")
		s.emit(Event{
			Kind:      EventWindowReady,
			Step:      step,
			Remaining: remaining,
			Path:      target,
			Window:    &win,
			PID:       win.PID,
		})
		poll = nil
	}

	return nil
}
