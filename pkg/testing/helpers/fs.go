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
	"fmt"
	"os"
	"path/filepath"

	"github.com/entitan/entitan/pkg/config"
	"github.com/spf13/afero"
)

// Default fixture locations, matching a typical install layout.
const (
	LauncherPath = "/apps/Launcher.exe"
	GamePath     = "/apps/Wow.exe"
	WtfPath      = "/wtf/Config.wtf"
)

// FSHelper provides utilities for filesystem mocking in tests
type FSHelper struct {
	Fs afero.Fs
}

// NewMemoryFS creates a new in-memory filesystem for testing
func NewMemoryFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewMemMapFs(),
	}
}

// NewOSFS creates a filesystem helper using the real filesystem (for integration tests)
func NewOSFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewOsFs(),
	}
}

func (h *FSHelper) writeFile(path string, data []byte, perm os.FileMode) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(h.Fs, path, data, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// CreateExecutable writes a stub executable with a PE header.
func (h *FSHelper) CreateExecutable(path string) error {
	return h.writeFile(path, []byte("MZ"), 0o755)
}

// CreateGameConfig writes a Config.wtf with the given lines.
func (h *FSHelper) CreateGameConfig(path string, lines ...string) error {
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	return h.writeFile(path, []byte(content), 0o644)
}

// CreateLaunchFixture creates the launcher, game and Config.wtf at the
// default locations and returns a config pointing at them.
func (h *FSHelper) CreateLaunchFixture(locale string) (config.LaunchConfig, error) {
	if err := h.CreateExecutable(LauncherPath); err != nil {
		return config.LaunchConfig{}, err
	}
	if err := h.CreateExecutable(GamePath); err != nil {
		return config.LaunchConfig{}, err
	}
	err := h.CreateGameConfig(WtfPath,
		fmt.Sprintf("SET audioLocale %q", locale),
		fmt.Sprintf("SET textLocale %q", locale),
	)
	if err != nil {
		return config.LaunchConfig{}, err
	}
	return config.LaunchConfig{
		PlatformLauncherPath: LauncherPath,
		GameConfigPath:       WtfPath,
		GameBinaryPath:       GamePath,
		Locale:               locale,
	}, nil
}

// FileExists checks if a file exists
func (h *FSHelper) FileExists(path string) bool {
	exists, err := afero.Exists(h.Fs, path)
	return err == nil && exists
}

// ReadFile returns a file's content or an empty string.
func (h *FSHelper) ReadFile(path string) string {
	data, err := afero.ReadFile(h.Fs, path)
	if err != nil {
		return ""
	}
	return string(data)
}
