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
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLaunchFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/apps/Launcher.exe", []byte("MZ"), 0o755))
	require.NoError(t, afero.WriteFile(fs, "/apps/Wow.exe", []byte("MZ"), 0o755))
	require.NoError(t, afero.WriteFile(fs, "/wtf/Config.wtf", []byte(`SET textLocale "enUS"`), 0o644))
	require.NoError(t, fs.MkdirAll("/apps/Folder.exe", 0o755))
	return fs
}

func validLaunchConfig() LaunchConfig {
	return LaunchConfig{
		PlatformLauncherPath: "/apps/Launcher.exe",
		GameConfigPath:       "/wtf/Config.wtf",
		GameBinaryPath:       "/apps/Wow.exe",
		Locale:               "enUS",
	}
}

func TestLaunchConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		modify   func(*LaunchConfig)
		name     string
		problems []string
		opts     ValidateOptions
	}{
		{
			name:   "valid config",
			modify: func(*LaunchConfig) {},
		},
		{
			name:   "valid config with exe requirement",
			modify: func(*LaunchConfig) {},
			opts:   ValidateOptions{RequireExe: true},
		},
		{
			name:     "missing launcher file",
			modify:   func(lc *LaunchConfig) { lc.PlatformLauncherPath = "/apps/Missing.exe" },
			problems: []string{`platform launcher path "/apps/Missing.exe" does not exist`},
		},
		{
			name:     "missing game binary",
			modify:   func(lc *LaunchConfig) { lc.GameBinaryPath = "/nope/Wow.exe" },
			problems: []string{`game binary path "/nope/Wow.exe" does not exist`},
		},
		{
			name:     "missing game config",
			modify:   func(lc *LaunchConfig) { lc.GameConfigPath = "/wtf/Other.wtf" },
			problems: []string{`game config path "/wtf/Other.wtf" does not exist`},
		},
		{
			name:     "empty path",
			modify:   func(lc *LaunchConfig) { lc.GameBinaryPath = "" },
			problems: []string{"game binary path is not set"},
		},
		{
			name:     "directory instead of file",
			modify:   func(lc *LaunchConfig) { lc.GameBinaryPath = "/apps/Folder.exe" },
			problems: []string{`game binary path "/apps/Folder.exe" is a directory`},
		},
		{
			name:     "unknown locale",
			modify:   func(lc *LaunchConfig) { lc.Locale = "xxYY" },
			problems: []string{`locale "xxYY" is not recognised`},
		},
		{
			name:     "config file without wtf extension",
			modify:   func(lc *LaunchConfig) { lc.GameConfigPath = "/apps/Wow.exe" },
			problems: []string{`game config path "/apps/Wow.exe" must be a .wtf file`},
		},
		{
			name:     "exe required",
			modify:   func(lc *LaunchConfig) { lc.GameBinaryPath = "/wtf/Config.wtf" },
			opts:     ValidateOptions{RequireExe: true},
			problems: []string{`game binary path "/wtf/Config.wtf" must be a .exe file`},
		},
		{
			name: "all problems reported together",
			modify: func(lc *LaunchConfig) {
				lc.PlatformLauncherPath = ""
				lc.GameBinaryPath = "/missing.exe"
				lc.Locale = ""
			},
			problems: []string{
				"platform launcher path is not set",
				"locale is not set",
				`game binary path "/missing.exe" does not exist`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lc := validLaunchConfig()
			tt.modify(&lc)

			err := lc.Validate(validLaunchFs(t), tt.opts)
			if len(tt.problems) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			require.ErrorIs(t, err, ErrConfigInvalid)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.ElementsMatch(t, tt.problems, verr.Problems)
		})
	}
}

func TestLaunchConfig_ValidateExtensionCaseInsensitive(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, `/apps/LAUNCHER.EXE`, nil, 0o755))
	require.NoError(t, afero.WriteFile(fs, `/apps/WOW.Exe`, nil, 0o755))
	require.NoError(t, afero.WriteFile(fs, `/wtf/CONFIG.WTF`, nil, 0o644))

	lc := LaunchConfig{
		PlatformLauncherPath: "/apps/LAUNCHER.EXE",
		GameConfigPath:       "/wtf/CONFIG.WTF",
		GameBinaryPath:       "/apps/WOW.Exe",
		Locale:               "ruRU",
	}

	assert.NoError(t, lc.Validate(fs, ValidateOptions{RequireExe: true}))
}
