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

package config

import "strings"

const DefaultLocale = "enUS"

// maxLocaleLen is the length of every game locale code, e.g. "deDE".
const maxLocaleLen = 4

// KnownLocales lists the locale codes the game client accepts in Config.wtf.
var KnownLocales = []string{
	"enUS", "enGB", "enCN", "enTW",
	"deDE", "esES", "esMX", "frFR", "itIT",
	"koKR", "ptBR", "ptPT", "ruRU", "zhCN", "zhTW",
}

func IsKnownLocale(locale string) bool {
	for _, l := range KnownLocales {
		if l == locale {
			return true
		}
	}
	return false
}

// SanitizeLocale reduces free text typed into the locale field to at most
// four ASCII letters. The second return value is false when the input had to
// be changed. Input with no letters at all falls back to DefaultLocale.
func SanitizeLocale(input string) (string, bool) {
	var sb strings.Builder
	for _, r := range input {
		if sb.Len() == maxLocaleLen {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			sb.WriteRune(r)
		}
	}

	out := sb.String()
	if out == "" {
		return DefaultLocale, input == ""
	}
	return out, out == input
}
