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

//go:build windows

package helpers

import (
	"golang.org/x/sys/windows"
)

const stillActive = 259 // STILL_ACTIVE exit code for running processes

// IsProcessRunning reports whether pid refers to a live process. Used to
// detect a stale pid file and to report which launched processes survived an
// aborted run; it never signals or otherwise touches the process.
func IsProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}

	//nolint:gosec // G115 Windows PIDs are 32-bit, checked positive above
	handle, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		return false
	}
	defer func() { _ = windows.CloseHandle(handle) }()

	var exitCode uint32
	err = windows.GetExitCodeProcess(handle, &exitCode)
	if err != nil {
		return false
	}

	return exitCode == stillActive
}
