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

package wtf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_NotifiesOnWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "Config.wtf")
	other := filepath.Join(dir, "Other.wtf")
	require.NoError(t, os.WriteFile(path, []byte("SET textLocale \"enUS\"\n"), 0o600))
	require.NoError(t, os.WriteFile(other, []byte(""), 0o600))

	changed := make(chan string, 16)
	w, err := Watch(path, func(p string) { changed <- p }, nil)
	require.NoError(t, err)
	defer func() { assert.NoError(t, w.Close()) }()

	// writes to siblings are ignored
	require.NoError(t, os.WriteFile(other, []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte("SET textLocale \"deDE\"\n"), 0o600))

	select {
	case got := <-changed:
		abs, err := filepath.Abs(path)
		require.NoError(t, err)
		assert.Equal(t, filepath.Clean(abs), got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}
}

func TestWatch_SetPathMovesWatch(t *testing.T) {
	t.Parallel()

	dirA := t.TempDir()
	dirB := t.TempDir()
	pathA := filepath.Join(dirA, "Config.wtf")
	pathB := filepath.Join(dirB, "Config.wtf")
	require.NoError(t, os.WriteFile(pathA, nil, 0o600))
	require.NoError(t, os.WriteFile(pathB, nil, 0o600))

	changed := make(chan string, 16)
	w, err := Watch("", func(p string) { changed <- p }, nil)
	require.NoError(t, err)
	defer func() { assert.NoError(t, w.Close()) }()

	require.NoError(t, w.SetPath(pathA))
	require.NoError(t, w.SetPath(pathB))

	require.NoError(t, os.WriteFile(pathB, []byte("SET audioLocale \"frFR\"\n"), 0o600))

	select {
	case got := <-changed:
		assert.Equal(t, "Config.wtf", filepath.Base(got))
		assert.Equal(t, filepath.Clean(dirB), filepath.Dir(got))
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := Watch(filepath.Join(t.TempDir(), "nope", "Config.wtf"), func(string) {}, nil)
	require.Error(t, err)
}
