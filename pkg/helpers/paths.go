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

package helpers

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/adrg/xdg"
	"github.com/entitan/entitan/pkg/config"
)

var (
	userDirCache       string
	userDirCacheExists bool
	userDirOnce        sync.Once
)

func ExeDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}

	return filepath.Dir(exe)
}

// HasUserDir checks if a "user" directory exists next to the enTitan binary
// and returns true and the absolute path to it. When present, settings and
// logs live there instead of the per-user directories, for a portable
// install. The result is cached after the first call.
func HasUserDir() (string, bool) {
	userDirOnce.Do(func() {
		exeDir := os.Getenv(config.AppEnv)
		if exeDir == "" {
			exeDir = ExeDir()
		}
		if exeDir == "" {
			return
		}

		userDir := filepath.Join(exeDir, config.UserDir)
		info, err := os.Stat(userDir)
		if err != nil || !info.IsDir() {
			return
		}

		userDirCache = userDir
		userDirCacheExists = true
	})

	return userDirCache, userDirCacheExists
}

// ConfigDir returns the directory holding config.toml and the pid file:
// %APPDATA%\entitan on Windows and the XDG config home elsewhere.
func ConfigDir() string {
	if v, ok := HasUserDir(); ok {
		return v
	}
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, config.AppName)
		}
	}
	return filepath.Join(xdg.ConfigHome, config.AppName)
}

// LogDir returns the directory for the rotating log file.
func LogDir() string {
	if v, ok := HasUserDir(); ok {
		return filepath.Join(v, "logs")
	}
	return filepath.Join(xdg.StateHome, config.AppName)
}

func EnsureDirectories() error {
	for _, dir := range []string{ConfigDir(), LogDir()} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err //nolint:wrapcheck // path is already in the error
		}
	}
	return nil
}
