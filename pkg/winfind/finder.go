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
	"github.com/rs/zerolog/log"
)

// Finder combines an Enumerator with process name lookup.
type Finder struct {
	enum  Enumerator
	names ProcessNamer
}

func NewFinder() *Finder {
	return NewFinderWith(NewEnumerator(), NewProcessNamer())
}

func NewFinderWith(enum Enumerator, names ProcessNamer) *Finder {
	return &Finder{enum: enum, names: names}
}

// Find takes a fresh snapshot, resolves owning process names and applies
// filter. Records are in enumeration order; use Rank for presentation.
func (f *Finder) Find(filter Filter) ([]Record, error) {
	records, err := f.enum.Enumerate()
	if err != nil {
		return nil, err //nolint:wrapcheck // enumerators return descriptive errors
	}

	names := make(map[int]string)
	for i := range records {
		pid := records[i].PID
		if pid == 0 {
			continue
		}
		name, ok := names[pid]
		if !ok {
			name, err = f.names.ProcessName(pid)
			if err != nil {
				// processes can exit between enumeration and lookup
				log.Debug().Err(err).Int("pid", pid).Msg("process name lookup failed")
				name = ""
			}
			names[pid] = name
		}
		records[i].ProcessName = name
	}

	return filter.Apply(records), nil
}

// Appeared reports the best ranked visible window matching filter whose
// area is at least minArea, if any.
func (f *Finder) Appeared(filter Filter, minArea int) (Record, bool, error) {
	records, err := f.Find(filter)
	if err != nil {
		return Record{}, false, err
	}

	for _, r := range Rank(records) {
		if r.Visible && r.Area() >= minArea {
			return r.Record, true, nil
		}
	}
	return Record{}, false, nil
}
