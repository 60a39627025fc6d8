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

//go:build !windows

package winfind

type unsupportedEnumerator struct{}

// NewEnumerator returns an Enumerator that always fails with
// ErrUnsupported; only Windows desktops can be enumerated.
func NewEnumerator() Enumerator {
	return unsupportedEnumerator{}
}

func (unsupportedEnumerator) Enumerate() ([]Record, error) {
	return nil, ErrUnsupported
}
