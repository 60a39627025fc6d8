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

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigDir = "/config"

func newTestConfig(t *testing.T, fs afero.Fs) *Instance {
	t.Helper()
	cfg, err := NewConfig(fs, testConfigDir, BaseDefaults)
	require.NoError(t, err)
	return cfg
}

func TestNewConfig_WritesDefaults(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	cfg := newTestConfig(t, fs)

	exists, err := afero.Exists(fs, filepath.Join(testConfigDir, CfgFile))
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, DefaultLocale, cfg.Locale())
	assert.Equal(t, 10*time.Second, cfg.Timing().LauncherWaitDuration())
	assert.Equal(t, 60*time.Second, cfg.Timing().GameWaitDuration())
}

func TestLaunchConfig_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	cfg := newTestConfig(t, fs)

	want := LaunchConfig{
		PlatformLauncherPath: `C:\Program Files (x86)\Battle.net\Battle.net Launcher.exe`,
		GameConfigPath:       `C:\Games\WoW\WTF\Config.wtf`,
		GameBinaryPath:       `C:\Games\WoW\Wow.exe`,
		Locale:               "deDE",
	}
	cfg.SetLaunchConfig(want)
	require.NoError(t, cfg.Save())

	reloaded := newTestConfig(t, fs)
	assert.Equal(t, want, reloaded.LaunchConfig())
}

func TestLaunchConfig_IsSnapshot(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t, afero.NewMemMapFs())
	cfg.SetLaunchConfig(LaunchConfig{Locale: "frFR"})

	snap := cfg.LaunchConfig()
	cfg.SetLaunchConfig(LaunchConfig{Locale: "koKR"})

	assert.Equal(t, "frFR", snap.Locale)
	assert.Equal(t, "koKR", cfg.Locale())
}

func TestLoad_PreservesDefaultsForMissingFields(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	path := filepath.Join(testConfigDir, CfgFile)
	require.NoError(t, fs.MkdirAll(testConfigDir, 0o750))
	data := []byte("config_schema = 1\n\n[launch]\nlocale = \"esMX\"\n")
	require.NoError(t, afero.WriteFile(fs, path, data, 0o600))

	cfg := newTestConfig(t, fs)

	assert.Equal(t, "esMX", cfg.Locale())
	assert.Equal(t, DefaultGameWait, cfg.Timing().GameWait)
	assert.Equal(t, DefaultSettleDelay, cfg.Timing().SettleDelay)
}

func TestLoad_SchemaMismatch(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	path := filepath.Join(testConfigDir, CfgFile)
	require.NoError(t, fs.MkdirAll(testConfigDir, 0o750))
	require.NoError(t, afero.WriteFile(fs, path, []byte("config_schema = 99\n"), 0o600))

	_, err := NewConfig(fs, testConfigDir, BaseDefaults)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema version mismatch")
}

func TestLoad_InvalidToml(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	path := filepath.Join(testConfigDir, CfgFile)
	require.NoError(t, fs.MkdirAll(testConfigDir, 0o750))
	require.NoError(t, afero.WriteFile(fs, path, []byte("[launch\n"), 0o600))

	_, err := NewConfig(fs, testConfigDir, BaseDefaults)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config")
}

func TestTiming_Durations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		timing Timing
		launch time.Duration
		game   time.Duration
		settle time.Duration
		area   int
	}{
		{
			name:   "zero values use defaults",
			timing: Timing{},
			launch: 10 * time.Second,
			game:   60 * time.Second,
			settle: 0,
			area:   DefaultMinWindowArea,
		},
		{
			name:   "custom values",
			timing: Timing{LauncherWait: 15, GameWait: 90, SettleDelay: 3, MinWindowArea: 100},
			launch: 15 * time.Second,
			game:   90 * time.Second,
			settle: 3 * time.Second,
			area:   100,
		},
		{
			name:   "negative values",
			timing: Timing{LauncherWait: -1, GameWait: -5, SettleDelay: -2, MinWindowArea: -1},
			launch: 10 * time.Second,
			game:   60 * time.Second,
			settle: 0,
			area:   DefaultMinWindowArea,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.launch, tt.timing.LauncherWaitDuration())
			assert.Equal(t, tt.game, tt.timing.GameWaitDuration())
			assert.Equal(t, tt.settle, tt.timing.SettleDelayDuration())
			assert.Equal(t, tt.area, tt.timing.MinArea())
		})
	}
}

func TestDebugLogging(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	cfg := newTestConfig(t, fs)
	assert.False(t, cfg.DebugLogging())

	cfg.SetDebugLogging(true)
	require.NoError(t, cfg.Save())

	assert.True(t, newTestConfig(t, fs).DebugLogging())
}
