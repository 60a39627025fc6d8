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

package winfind

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/process"
)

type psNamer struct{}

// NewProcessNamer looks process names up through gopsutil.
func NewProcessNamer() ProcessNamer {
	return psNamer{}
}

func (psNamer) ProcessName(pid int) (string, error) {
	//nolint:gosec // G115 pids fit in int32 on every supported OS
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return "", fmt.Errorf("failed to open process %d: %w", pid, err)
	}
	name, err := proc.Name()
	if err != nil {
		return "", fmt.Errorf("failed to read name of process %d: %w", pid, err)
	}
	return name, nil
}
