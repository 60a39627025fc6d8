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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/entitan/entitan/pkg/config"
	"github.com/rs/zerolog/log"
)

// ErrAlreadyRunning is returned by AcquireInstance when another enTitan
// process holds the pid file.
var ErrAlreadyRunning = errors.New("another instance is already running")

// Instance is the single-instance guard for this process.
type Instance struct {
	path string
}

// ReadPid returns the pid recorded in dir's pid file, or 0 if there is none.
func ReadPid(dir string) (int, error) {
	pidPath := filepath.Join(dir, config.PidFile)

	//nolint:gosec // reads our own pid file
	data, err := os.ReadFile(pidPath)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	} else if err != nil {
		return 0, fmt.Errorf("error reading pid file: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("error parsing pid: %w", err)
	}

	return pid, nil
}

// AcquireInstance writes the current pid to dir's pid file. A pid file left
// behind by a process that is no longer running is replaced.
func AcquireInstance(dir string) (*Instance, error) {
	pid, err := ReadPid(dir)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring unreadable pid file")
		pid = 0
	}

	if pid != 0 && pid != os.Getpid() && IsProcessRunning(pid) {
		return nil, fmt.Errorf("%w (pid %d)", ErrAlreadyRunning, pid)
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create pid file directory: %w", err)
	}

	pidPath := filepath.Join(dir, config.PidFile)
	err = os.WriteFile(pidPath, []byte(strconv.Itoa(os.Getpid())), 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to write PID file: %w", err)
	}

	return &Instance{path: pidPath}, nil
}

func (i *Instance) Release() error {
	err := os.Remove(i.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove PID file: %w", err)
	}
	return nil
}
