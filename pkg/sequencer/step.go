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

import "fmt"

// Step is one stage of a launch sequence. A run moves through the steps in
// declaration order; Done and Aborted are terminal.
type Step int

const (
	StartLauncher Step = iota
	WaitAfterLauncher
	StartGameDirect
	WaitAfterGame
	RefocusLauncher
	Done
	Aborted
)

var stepNames = [...]string{
	StartLauncher:     "StartLauncher",
	WaitAfterLauncher: "WaitAfterLauncher",
	StartGameDirect:   "StartGameDirect",
	WaitAfterGame:     "WaitAfterGame",
	RefocusLauncher:   "RefocusLauncher",
	Done:              "Done",
	Aborted:           "Aborted",
}

func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepNames[s]
}

func (s Step) Terminal() bool {
	return s == Done || s == Aborted
}

// next returns the step that follows s on the success path.
func (s Step) next() Step {
	if s.Terminal() {
		return s
	}
	return s + 1
}

// StepError reports which step of a run failed.
type StepError struct {
	Err  error
	Step Step
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
