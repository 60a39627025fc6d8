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

import (
	"cmp"
	"slices"
)

// SortKey orders candidate windows: visible before hidden, then larger
// before smaller. A large visible window is the most likely game window, but
// splash screens and error dialogs can look the same, so the ranking is
// advisory only.
type SortKey struct {
	Area    int
	Visible bool
}

func keyOf(r *Record) SortKey {
	return SortKey{Visible: r.Visible, Area: r.Area()}
}

func compareKeys(a, b SortKey) int {
	if a.Visible != b.Visible {
		if a.Visible {
			return -1
		}
		return 1
	}
	return cmp.Compare(b.Area, a.Area)
}

// Ranked is a Record with its computed position in the ranking.
type Ranked struct {
	Record
	Key  SortKey
	Rank int
}

// Rank sorts a copy of records by SortKey. Ties keep enumeration order.
func Rank(records []Record) []Ranked {
	ranked := make([]Ranked, len(records))
	for i := range records {
		ranked[i] = Ranked{Record: records[i], Key: keyOf(&records[i])}
	}

	slices.SortStableFunc(ranked, func(a, b Ranked) int {
		return compareKeys(a.Key, b.Key)
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// ProcessGroup clusters the windows owned by one process.
type ProcessGroup struct {
	ProcessName string
	Windows     []Record
	PID         int
}

// GroupByProcess clusters records by owning pid, ordered by pid. Windows in
// a group keep their ranked order.
func GroupByProcess(records []Record) []ProcessGroup {
	byPID := make(map[int]*ProcessGroup)
	for _, r := range Rank(records) {
		g, ok := byPID[r.PID]
		if !ok {
			g = &ProcessGroup{PID: r.PID, ProcessName: r.ProcessName}
			byPID[r.PID] = g
		}
		g.Windows = append(g.Windows, r.Record)
	}

	groups := make([]ProcessGroup, 0, len(byPID))
	for _, g := range byPID {
		groups = append(groups, *g)
	}
	slices.SortFunc(groups, func(a, b ProcessGroup) int {
		return cmp.Compare(a.PID, b.PID)
	})
	return groups
}
