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
	"fmt"
	"path/filepath"
	"time"

	"github.com/entitan/entitan/pkg/winfind"
	"github.com/google/uuid"
)

type EventKind int

const (
	// EventStep is sent when a step is entered.
	EventStep EventKind = iota
	// EventLaunched is sent after a process was started.
	EventLaunched
	// EventCountdown is sent once per second during a wait.
	EventCountdown
	// EventWindowReady is sent when early exit spotted the target window.
	EventWindowReady
	// EventFinished is always the last event of a run.
	EventFinished
)

// Event is a progress notification from a running sequence.
type Event struct {
	Err       error
	Window    *winfind.Record
	Path      string
	Kind      EventKind
	Step      Step
	Remaining time.Duration
	PID       int
	RunID     uuid.UUID
}

// Observer receives events synchronously on the run's goroutine. It must not
// block for long.
type Observer func(Event)

func noopObserver(Event) {}

func targetLabel(path string) string {
	if path == "" {
		return "process"
	}
	return filepath.Base(path)
}

// Message renders the event as a one-line status for humans.
func (e *Event) Message() string {
	switch e.Kind {
	case EventStep:
		switch e.Step {
		case StartLauncher:
			return "Starting run sequence..."
		case RefocusLauncher:
			return "Re-launching " + targetLabel(e.Path)
		case StartGameDirect:
			return "Launching " + targetLabel(e.Path)
		default:
			return e.Step.String()
		}
	case EventLaunched:
		return fmt.Sprintf("Launched %s (pid %d)", targetLabel(e.Path), e.PID)
	case EventCountdown:
		secs := int(e.Remaining.Round(time.Second) / time.Second)
		if e.Step == WaitAfterLauncher {
			return fmt.Sprintf("Waiting to launch game: %ds", secs)
		}
		return fmt.Sprintf("Waiting before re-launching launcher: %ds", secs)
	case EventWindowReady:
		title := ""
		if e.Window != nil {
			title = e.Window.Title
		}
		return fmt.Sprintf("Window %q is up, continuing in %ds",
			title, int(e.Remaining.Round(time.Second)/time.Second))
	case EventFinished:
		if e.Err != nil {
			return "Run sequence failed: " + e.Err.Error()
		}
		return "Run sequence completed"
	default:
		return fmt.Sprintf("event %d", int(e.Kind))
	}
}
