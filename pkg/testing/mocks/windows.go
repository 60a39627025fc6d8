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

package mocks

import (
	"github.com/entitan/entitan/pkg/winfind"
	"github.com/stretchr/testify/mock"
)

// MockEnumerator is a testify mock for winfind.Enumerator.
type MockEnumerator struct {
	mock.Mock
}

func (m *MockEnumerator) Enumerate() ([]winfind.Record, error) {
	args := m.Called()
	records, _ := args.Get(0).([]winfind.Record)
	if records != nil {
		// every enumeration is a fresh snapshot
		out := make([]winfind.Record, len(records))
		copy(out, records)
		records = out
	}
	//nolint:wrapcheck // mock returns are wrapped by the caller
	return records, args.Error(1)
}

// MockProcessNamer is a testify mock for winfind.ProcessNamer.
type MockProcessNamer struct {
	mock.Mock
}

func (m *MockProcessNamer) ProcessName(pid int) (string, error) {
	args := m.Called(pid)
	//nolint:wrapcheck // mock returns are wrapped by the caller
	return args.String(0), args.Error(1)
}

// StaticNamer resolves names from a fixed map and never fails.
type StaticNamer map[int]string

func (s StaticNamer) ProcessName(pid int) (string, error) {
	return s[pid], nil
}
