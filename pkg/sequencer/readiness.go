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
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/entitan/entitan/pkg/config"
	"github.com/entitan/entitan/pkg/winfind"
	"github.com/rs/zerolog/log"
)

// WindowWatcher is the part of winfind.Finder used for early exit.
type WindowWatcher interface {
	Appeared(filter winfind.Filter, minArea int) (winfind.Record, bool, error)
}

// readiness polls for the window of one target executable during a wait.
type readiness struct {
	finder   WindowWatcher
	filter   winfind.Filter
	interval time.Duration
	minArea  int
}

// TargetFilter matches windows whose owning process name contains the
// executable's base name without extension, e.g. "Wow" for Wow.exe.
func TargetFilter(path string) winfind.Filter {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "." || name == string(filepath.Separator) {
		name = ""
	}
	return winfind.Filter{ProcessName: name}
}

func newReadiness(finder WindowWatcher, target string, timing config.Timing) *readiness {
	interval := timing.PollIntervalDuration()
	if interval < time.Second {
		interval = time.Second
	}
	return &readiness{
		finder:   finder,
		filter:   TargetFilter(target),
		interval: interval.Truncate(time.Second),
		minArea:  timing.MinArea(),
	}
}

// check polls when elapsed lands on the poll interval. Enumeration errors
// are logged and treated as not ready; an unsupported platform stops the
// polling for good.
func (r *readiness) check(elapsed time.Duration) (winfind.Record, bool) {
	if r.filter.IsZero() || elapsed%r.interval != 0 {
		return winfind.Record{}, false
	}

	win, ok, err := r.finder.Appeared(r.filter, r.minArea)
	if err != nil {
		if errors.Is(err, winfind.ErrUnsupported) {
			log.Debug().Msg("window polling unsupported, falling back to fixed wait")
			r.filter = winfind.Filter{}
			return winfind.Record{}, false
		}
		log.Warn().Err(err).Msg("window poll failed")
		return winfind.Record{}, false
	}
	return win, ok
}
