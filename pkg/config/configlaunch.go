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

// Launch is the [launch] table of config.toml.
type Launch struct {
	PlatformLauncher string `toml:"platform_launcher"`
	GameConfig       string `toml:"game_config"`
	GameBinary       string `toml:"game_binary"`
	Locale           string `toml:"locale"`
}

// LaunchConfig is the read-only view of the launch settings used for the
// duration of one run.
type LaunchConfig struct {
	PlatformLauncherPath string `validate:"required"`
	GameConfigPath       string `validate:"required"`
	GameBinaryPath       string `validate:"required"`
	Locale               string `validate:"required,locale"`
}

// LaunchConfig returns a snapshot of the current launch settings. Later
// edits through the settings form don't affect a snapshot already taken.
func (c *Instance) LaunchConfig() LaunchConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return LaunchConfig{
		PlatformLauncherPath: c.vals.Launch.PlatformLauncher,
		GameConfigPath:       c.vals.Launch.GameConfig,
		GameBinaryPath:       c.vals.Launch.GameBinary,
		Locale:               c.vals.Launch.Locale,
	}
}

func (c *Instance) SetLaunchConfig(lc LaunchConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Launch = Launch{
		PlatformLauncher: lc.PlatformLauncherPath,
		GameConfig:       lc.GameConfigPath,
		GameBinary:       lc.GameBinaryPath,
		Locale:           lc.Locale,
	}
}

func (c *Instance) Locale() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Launch.Locale
}
