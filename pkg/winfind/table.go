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
	"io"
	"strings"
	"text/tabwriter"
)

const maxTitleWidth = 48

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func formatHandle(h uint64) string {
	if h == 0 {
		return "-"
	}
	return fmt.Sprintf("0x%X", h)
}

func formatBounds(b Rect) string {
	return fmt.Sprintf("%d,%d %dx%d", b.Left, b.Top, b.Width, b.Height)
}

// WriteTable prints ranked windows as an aligned table, best candidate
// first.
func WriteTable(out io.Writer, ranked []Ranked) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "RANK\tHANDLE\tPID\tPROCESS\tVISIBLE\tAREA\tBOUNDS\tOWNER\tCLASS\tTITLE")
	for _, r := range ranked {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			r.Rank,
			formatHandle(r.Handle),
			r.PID,
			r.ProcessName,
			yesNo(r.Visible),
			r.Key.Area,
			formatBounds(r.Bounds),
			formatHandle(r.Owner),
			r.Class,
			truncate(r.Title, maxTitleWidth),
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

// WriteGroups prints a per-process summary: window counts and the titles of
// visible windows.
func WriteGroups(out io.Writer, groups []ProcessGroup) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "PID\tPROCESS\tWINDOWS\tVISIBLE\tTITLES")
	for _, g := range groups {
		visible := 0
		var titles []string
		for _, w := range g.Windows {
			if !w.Visible {
				continue
			}
			visible++
			if w.Title != "" {
				titles = append(titles, truncate(w.Title, maxTitleWidth))
			}
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\n",
			g.PID, g.ProcessName, len(g.Windows), visible, strings.Join(titles, " | "))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write groups: %w", err)
	}
	return nil
}
