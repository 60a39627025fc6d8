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

package config

import "time"

const (
	// DefaultLauncherWait gives the platform launcher time to finish starting
	// before the game binary is run directly.
	DefaultLauncherWait = 10
	// DefaultGameWait gives the game client time to read its locale from
	// Config.wtf before the platform launcher is brought back.
	DefaultGameWait      = 60
	DefaultPollInterval  = 1
	DefaultSettleDelay   = 5
	DefaultMinWindowArea = 640 * 480
)

// Timing is the [timing] table of config.toml. All durations are seconds.
type Timing struct {
	LauncherWait  int  `toml:"launcher_wait,omitempty"`
	GameWait      int  `toml:"game_wait,omitempty"`
	PollInterval  int  `toml:"poll_interval,omitempty"`
	SettleDelay   int  `toml:"settle_delay"`
	MinWindowArea int  `toml:"min_window_area,omitempty"`
	EarlyExit     bool `toml:"early_exit,omitempty"`
}

func seconds(v, def int) time.Duration {
	if v <= 0 {
		v = def
	}
	return time.Duration(v) * time.Second
}

func (t Timing) LauncherWaitDuration() time.Duration {
	return seconds(t.LauncherWait, DefaultLauncherWait)
}

func (t Timing) GameWaitDuration() time.Duration {
	return seconds(t.GameWait, DefaultGameWait)
}

func (t Timing) PollIntervalDuration() time.Duration {
	return seconds(t.PollInterval, DefaultPollInterval)
}

// SettleDelayDuration is the only timing value where zero is meaningful: it
// means proceed as soon as the window is seen.
func (t Timing) SettleDelayDuration() time.Duration {
	if t.SettleDelay < 0 {
		return 0
	}
	return time.Duration(t.SettleDelay) * time.Second
}

func (t Timing) MinArea() int {
	if t.MinWindowArea <= 0 {
		return DefaultMinWindowArea
	}
	return t.MinWindowArea
}

func (c *Instance) Timing() Timing {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Timing
}

func (c *Instance) SetTiming(t Timing) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Timing = t
}
