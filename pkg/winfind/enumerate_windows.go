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

package winfind

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	gwOwner      = 4
	maxTitleLen  = 512
	maxClassLen  = 256
	enumContinue = 1
)

var (
	user32            = windows.NewLazySystemDLL("user32.dll")
	procGetWindowText = user32.NewProc("GetWindowTextW")
	procGetWindowRect = user32.NewProc("GetWindowRect")
	procGetWindow     = user32.NewProc("GetWindow")
)

type winRect struct {
	Left, Top, Right, Bottom int32
}

// Callbacks created with NewCallback are never freed and there's a hard
// limit on how many a process may create, so a single one is shared and
// enumeration is serialised.
var (
	enumMu      sync.Mutex
	enumHandles []windows.HWND
	enumProc    = sync.OnceValue(func() uintptr {
		return windows.NewCallback(func(hwnd windows.HWND, _ uintptr) uintptr {
			enumHandles = append(enumHandles, hwnd)
			return enumContinue
		})
	})
)

type user32Enumerator struct{}

func NewEnumerator() Enumerator {
	return user32Enumerator{}
}

func (user32Enumerator) Enumerate() ([]Record, error) {
	handles, err := topLevelWindows()
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(handles))
	for _, hwnd := range handles {
		records = append(records, describe(hwnd))
	}
	return records, nil
}

func topLevelWindows() ([]windows.HWND, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumHandles = nil
	if err := windows.EnumWindows(enumProc(), nil); err != nil {
		enumHandles = nil
		return nil, fmt.Errorf("EnumWindows failed: %w", err)
	}

	handles := enumHandles
	enumHandles = nil
	return handles, nil
}

// describe reads everything about hwnd in one go. Individual lookups fail
// silently when the window disappears mid-snapshot; the record just ends up
// with empty fields.
func describe(hwnd windows.HWND) Record {
	rec := Record{
		Handle:  uint64(hwnd),
		Visible: windows.IsWindowVisible(hwnd),
		Title:   windowText(hwnd),
		Class:   className(hwnd),
	}

	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(hwnd, &pid); err == nil {
		rec.PID = int(pid)
	}

	var r winRect
	ret, _, _ := procGetWindowRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&r)))
	if ret != 0 {
		rec.Bounds = Rect{
			Left:   int(r.Left),
			Top:    int(r.Top),
			Width:  int(r.Right - r.Left),
			Height: int(r.Bottom - r.Top),
		}
	}

	owner, _, _ := procGetWindow.Call(uintptr(hwnd), gwOwner)
	rec.Owner = uint64(owner)

	return rec
}

func windowText(hwnd windows.HWND) string {
	buf := make([]uint16, maxTitleLen)
	n, _, _ := procGetWindowText.Call(
		uintptr(hwnd),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

func className(hwnd windows.HWND) string {
	buf := make([]uint16, maxClassLen)
	n, err := windows.GetClassName(hwnd, &buf[0], int32(len(buf)))
	if err != nil || n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}
