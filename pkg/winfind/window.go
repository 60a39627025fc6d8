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

// Package winfind takes snapshots of the desktop's top-level windows and
// ranks them to help pick out the window belonging to a freshly started
// game. Every call produces a new, independent snapshot: a handle from one
// snapshot may be stale in the next.
package winfind

import (
	"fmt"
	"runtime"
)

var ErrUnsupported = fmt.Errorf("window enumeration is not supported on %s", runtime.GOOS)

type Rect struct {
	Left   int `json:"left"   yaml:"left"`
	Top    int `json:"top"    yaml:"top"`
	Width  int `json:"width"  yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

func (r Rect) Area() int {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Record describes one top-level window at the moment it was enumerated.
// Records are never mutated after creation.
type Record struct {
	ProcessName string `json:"processName" yaml:"processName"`
	Title       string `json:"title"       yaml:"title"`
	Class       string `json:"class"       yaml:"class"`
	Bounds      Rect   `json:"bounds"      yaml:"bounds"`
	Handle      uint64 `json:"handle"      yaml:"handle"`
	Owner       uint64 `json:"owner"       yaml:"owner"`
	PID         int    `json:"pid"         yaml:"pid"`
	Visible     bool   `json:"visible"     yaml:"visible"`
}

func (r *Record) Area() int {
	return r.Bounds.Area()
}

// HasOwner reports whether the window is owned by another window, e.g. a
// dialog or splash owned by the main window.
func (r *Record) HasOwner() bool {
	return r.Owner != 0
}
