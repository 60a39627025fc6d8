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

// Package command starts external programs detached from enTitan. A started
// process is never waited on or killed: once Launch returns, its lifetime is
// independent of ours.
package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var (
	// ErrPathNotFound means the target file is missing or isn't a file.
	ErrPathNotFound = errors.New("path not found")
	// ErrLaunchDenied means the OS refused to start the target, e.g. missing
	// permissions or the target requires elevation.
	ErrLaunchDenied = errors.New("launch denied")
	// ErrSpawnFailed covers every other OS level failure to start.
	ErrSpawnFailed = errors.New("spawn failed")
)

// Handle identifies a spawned process. It's only informational; nothing in
// enTitan acts on a process after starting it.
type Handle struct {
	Path string
	PID  int
}

// LaunchError carries the classification sentinel alongside the OS error.
type LaunchError struct {
	Kind  error
	Cause error
	Path  string
}

func (e *LaunchError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Cause)
}

func (e *LaunchError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// Launcher starts an executable by path without waiting for it to exit.
type Launcher interface {
	Launch(ctx context.Context, path string, args ...string) (Handle, error)
}

// RealLauncher starts real OS processes. Fs is only used for the existence
// check so tests can swap it out.
type RealLauncher struct {
	Fs afero.Fs
}

func NewLauncher() *RealLauncher {
	return &RealLauncher{Fs: afero.NewOsFs()}
}

func (l *RealLauncher) fs() afero.Fs {
	if l.Fs == nil {
		return afero.NewOsFs()
	}
	return l.Fs
}

// Launch checks path exists, then starts it detached with its own directory
// as the working directory. ctx is only checked before starting; cancelling
// it later has no effect on the child.
func (l *RealLauncher) Launch(ctx context.Context, path string, args ...string) (Handle, error) {
	if err := ctx.Err(); err != nil {
		return Handle{}, fmt.Errorf("launch cancelled: %w", err)
	}

	info, err := l.fs().Stat(path)
	switch {
	case errors.Is(err, os.ErrPermission):
		return Handle{}, &LaunchError{Kind: ErrLaunchDenied, Path: path, Cause: err}
	case err != nil:
		return Handle{}, &LaunchError{Kind: ErrPathNotFound, Path: path, Cause: err}
	case info.IsDir():
		return Handle{}, &LaunchError{Kind: ErrPathNotFound, Path: path, Cause: errors.New("is a directory")}
	}

	//nolint:gosec // path comes from the user's own settings
	cmd := exec.Command(path, args...)
	cmd.Dir = filepath.Dir(path)
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return Handle{}, classify(path, err)
	}

	handle := Handle{Path: path, PID: cmd.Process.Pid}
	release(cmd)

	log.Debug().Str("path", path).Int("pid", handle.PID).Msg("process started")
	return handle, nil
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist), errors.Is(err, exec.ErrNotFound):
		return &LaunchError{Kind: ErrPathNotFound, Path: path, Cause: err}
	case errors.Is(err, os.ErrPermission), isDenied(err):
		return &LaunchError{Kind: ErrLaunchDenied, Path: path, Cause: err}
	default:
		return &LaunchError{Kind: ErrSpawnFailed, Path: path, Cause: err}
	}
}
