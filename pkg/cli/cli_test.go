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

package cli

import (
	"bytes"
	"context"
	"flag"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/entitan/entitan/pkg/config"
	"github.com/entitan/entitan/pkg/sequencer"
	testhelpers "github.com/entitan/entitan/pkg/testing/helpers"
	"github.com/entitan/entitan/pkg/testing/mocks"
	"github.com/entitan/entitan/pkg/winfind"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupFlags_Parse(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("entitan", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := SetupFlags(fs)

	require.NoError(t, fs.Parse([]string{"-windows", "-name", "wow", "-pid", "42", "-group", "-export", "out.csv"}))

	assert.True(t, *f.Windows)
	assert.False(t, *f.Run)
	assert.True(t, *f.Group)
	assert.Equal(t, "out.csv", *f.Export)
	assert.Equal(t, winfind.Filter{PID: 42, ProcessName: "wow"}, f.WindowFilter())
}

func TestSetupFlags_Defaults(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("entitan", flag.ContinueOnError)
	f := SetupFlags(fs)
	require.NoError(t, fs.Parse(nil))

	assert.False(t, *f.Version)
	assert.False(t, *f.Run)
	assert.False(t, *f.Windows)
	assert.True(t, f.WindowFilter().IsZero())
}

type runFixture struct {
	cfg   *config.Instance
	clock *clockwork.FakeClock
	ml    *mocks.MockLauncher
	coord *sequencer.Coordinator
}

func newRunFixture(t *testing.T) *runFixture {
	t.Helper()

	h := testhelpers.NewMemoryFS()
	lc, err := h.CreateLaunchFixture("enUS")
	require.NoError(t, err)
	fs := h.Fs

	vals := config.BaseDefaults
	vals.Timing.LauncherWait = 2
	vals.Timing.GameWait = 3
	cfg, err := config.NewConfig(fs, "/config", vals)
	require.NoError(t, err)
	cfg.SetLaunchConfig(lc)

	clk := clockwork.NewFakeClock()
	ml := mocks.NewMockLauncher(clk)
	return &runFixture{
		cfg:   cfg,
		clock: clk,
		ml:    ml,
		coord: sequencer.NewCoordinator(sequencer.Deps{
			Launcher: ml,
			Clock:    clk,
			Fs:       fs,
			Validate: config.ValidateOptions{RequireExe: true},
		}),
	}
}

// advance ticks the fake clock whenever something is waiting on it, until
// ctx is done.
func advance(ctx context.Context, clk *clockwork.FakeClock) {
	for {
		if err := clk.BlockUntilContext(ctx, 1); err != nil {
			return
		}
		clk.Advance(time.Second)
	}
}

func TestRunHeadless_Success(t *testing.T) {
	t.Parallel()

	f := newRunFixture(t)
	f.ml.ReturnPID("/apps/Launcher.exe", 10)
	f.ml.ReturnPID("/apps/Wow.exe", 20)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	go advance(ctx, f.clock)

	var out bytes.Buffer
	code := RunHeadless(ctx, &out, f.cfg, f.coord)

	assert.Equal(t, 0, code)
	text := out.String()
	assert.Contains(t, text, "Launched Launcher.exe (pid 10)")
	assert.Contains(t, text, "Launched Wow.exe (pid 20)")
	assert.Contains(t, text, "Waiting to launch game: 2s")
	assert.True(t, strings.HasSuffix(text, "Run sequence completed\n"))
	assert.Len(t, f.ml.Calls(), 3)
}

func TestRunHeadless_InvalidConfig(t *testing.T) {
	t.Parallel()

	f := newRunFixture(t)
	lc := f.cfg.LaunchConfig()
	lc.Locale = "qqQQ"
	f.cfg.SetLaunchConfig(lc)

	var out bytes.Buffer
	code := RunHeadless(context.Background(), &out, f.cfg, f.coord)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), `Settings are invalid: launch config invalid: locale "qqQQ" is not recognised`)
	assert.Empty(t, f.ml.Calls())
}

func TestRunHeadless_Cancelled(t *testing.T) {
	t.Parallel()

	f := newRunFixture(t)
	f.ml.ReturnPID("/apps/Launcher.exe", 10)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		_ = f.clock.BlockUntilContext(context.Background(), 1)
		cancel()
	}()

	var out bytes.Buffer
	code := RunHeadless(ctx, &out, f.cfg, f.coord)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Run sequence cancelled")
}

func testFinder() *winfind.Finder {
	enum := &mocks.MockEnumerator{}
	enum.On("Enumerate").Return([]winfind.Record{
		{Handle: 0x10, PID: 100, Title: "Battle.net", Visible: true, Bounds: winfind.Rect{Width: 800, Height: 600}},
		{Handle: 0x20, PID: 200, Title: "World of Warcraft", Visible: true, Bounds: winfind.Rect{Width: 1920, Height: 1080}},
		{Handle: 0x21, PID: 200, Title: "", Visible: false},
	}, nil)
	return winfind.NewFinderWith(enum, mocks.StaticNamer{100: "Battle.net.exe", 200: "WowTitan.exe"})
}

func TestListWindows(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	fs := afero.NewMemMapFs()
	err := ListWindows(&out, fs, testFinder(), WindowsOptions{Group: true, Export: "/windows.json"})
	require.NoError(t, err)

	lines := strings.Split(out.String(), "\n")
	require.Greater(t, len(lines), 4)
	assert.True(t, strings.HasPrefix(lines[0], "RANK"))
	assert.Contains(t, lines[1], "WowTitan.exe")
	assert.Contains(t, out.String(), "PID")
	assert.Contains(t, out.String(), "Exported 3 windows to /windows.json")

	data, err := afero.ReadFile(fs, "/windows.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), "World of Warcraft")
}

func TestListWindows_Filtered(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := ListWindows(&out, afero.NewMemMapFs(), testFinder(),
		WindowsOptions{Filter: winfind.Filter{ProcessName: "wow"}})
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "Battle.net.exe")
	assert.Contains(t, out.String(), "WowTitan.exe")

	out.Reset()
	err = ListWindows(&out, afero.NewMemMapFs(), testFinder(),
		WindowsOptions{Filter: winfind.Filter{ProcessName: "diablo"}})
	require.NoError(t, err)
	assert.Equal(t, "No matching windows.\n", out.String())
}

func TestListWindows_Unsupported(t *testing.T) {
	t.Parallel()

	enum := &mocks.MockEnumerator{}
	enum.On("Enumerate").Return(nil, winfind.ErrUnsupported)

	err := ListWindows(io.Discard, afero.NewMemMapFs(), winfind.NewFinderWith(enum, mocks.StaticNamer{}), WindowsOptions{})
	require.ErrorIs(t, err, winfind.ErrUnsupported)
}
