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

package configui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nixinwang/dialog"
)

// FilePicker asks the user for a file. An empty path with a nil error means
// the user cancelled.
type FilePicker interface {
	Pick(title, description, ext, startDir string) (string, error)
}

type nativePicker struct{}

// NewNativePicker opens the operating system's file dialog.
func NewNativePicker() FilePicker {
	return nativePicker{}
}

func (nativePicker) Pick(title, description, ext, startDir string) (string, error) {
	b := dialog.File().Title(title)
	if ext != "" {
		b = b.Filter(description, strings.TrimPrefix(ext, "."))
	}
	if startDir != "" {
		b = b.SetStartDir(startDir)
	}
	path, err := b.Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("file dialog failed: %w", err)
	}
	return path, nil
}
