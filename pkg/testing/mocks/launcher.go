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
	"context"
	"sync"
	"time"

	"github.com/entitan/entitan/pkg/helpers/command"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"
)

// LaunchCall records one call to MockLauncher.Launch.
type LaunchCall struct {
	At   time.Time
	Path string
	Args []string
}

// MockLauncher is a testify mock for command.Launcher. Every call is also
// recorded with the time read from Clock, so tests can assert the gaps
// between spawns.
type MockLauncher struct {
	Clock clockwork.Clock
	mock.Mock
	calls []LaunchCall
	mu    sync.Mutex
}

func NewMockLauncher(clock clockwork.Clock) *MockLauncher {
	return &MockLauncher{Clock: clock}
}

// Launch mocks starting an executable.
//
// Example:
//
//	ml := mocks.NewMockLauncher(clk)
//	ml.On("Launch", mock.Anything, "/apps/Launcher.exe", mock.Anything).
//		Return(command.Handle{PID: 100, Path: "/apps/Launcher.exe"}, nil)
func (m *MockLauncher) Launch(ctx context.Context, path string, args ...string) (command.Handle, error) {
	m.mu.Lock()
	call := LaunchCall{Path: path, Args: args}
	if m.Clock != nil {
		call.At = m.Clock.Now()
	}
	m.calls = append(m.calls, call)
	m.mu.Unlock()

	called := m.Called(ctx, path, args)
	h, _ := called.Get(0).(command.Handle)
	//nolint:wrapcheck // mock returns are wrapped by the caller
	return h, called.Error(1)
}

// Calls returns a copy of the recorded launches in call order.
func (m *MockLauncher) Calls() []LaunchCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LaunchCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// ReturnPID is a convenience for the common success expectation.
func (m *MockLauncher) ReturnPID(path string, pid int) *mock.Call {
	return m.On("Launch", mock.Anything, path, mock.Anything).
		Return(command.Handle{PID: pid, Path: path}, nil)
}
