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

package cli

import (
	"fmt"
	"io"

	"github.com/entitan/entitan/pkg/winfind"
	"github.com/spf13/afero"
)

type WindowsOptions struct {
	Export string
	Filter winfind.Filter
	Group  bool
}

// ListWindows prints the ranked window table for one snapshot, optionally
// followed by the per-process summary and an export file.
func ListWindows(out io.Writer, fs afero.Fs, finder *winfind.Finder, opts WindowsOptions) error {
	records, err := finder.Find(opts.Filter)
	if err != nil {
		return fmt.Errorf("failed to enumerate windows: %w", err)
	}

	if len(records) == 0 {
		_, _ = fmt.Fprintln(out, "No matching windows.")
	} else if err := winfind.WriteTable(out, winfind.Rank(records)); err != nil {
		return err //nolint:wrapcheck // already wrapped
	}

	if opts.Group && len(records) > 0 {
		_, _ = fmt.Fprintln(out)
		if err := winfind.WriteGroups(out, winfind.GroupByProcess(records)); err != nil {
			return err //nolint:wrapcheck // already wrapped
		}
	}

	if opts.Export != "" {
		if err := winfind.Export(fs, opts.Export, records); err != nil {
			return err //nolint:wrapcheck // already wrapped
		}
		_, _ = fmt.Fprintf(out, "Exported %d windows to %s\n", len(records), opts.Export)
	}

	return nil
}
