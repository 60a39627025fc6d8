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

package winfind

import "strings"

// Filter narrows a snapshot. Zero fields match everything.
type Filter struct {
	// ProcessName is matched as a case-insensitive substring of the owning
	// process's executable name, so "wow" matches "WowTitan.exe".
	ProcessName string
	PID         int
}

func (f Filter) IsZero() bool {
	return f.PID == 0 && f.ProcessName == ""
}

func (f Filter) Matches(r *Record) bool {
	if f.PID != 0 && r.PID != f.PID {
		return false
	}
	if f.ProcessName != "" &&
		!strings.Contains(strings.ToLower(r.ProcessName), strings.ToLower(f.ProcessName)) {
		return false
	}
	return true
}

func (f Filter) Apply(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for i := range records {
		if f.Matches(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}
