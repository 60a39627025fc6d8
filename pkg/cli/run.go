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
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/entitan/entitan/pkg/config"
	"github.com/entitan/entitan/pkg/sequencer"
	"github.com/rs/zerolog/log"
)

// RunHeadless runs one launch sequence, printing each status line to out,
// and returns the process exit code.
func RunHeadless(
	ctx context.Context,
	out io.Writer,
	cfg *config.Instance,
	coord *sequencer.Coordinator,
) int {
	run, err := coord.Start(ctx, cfg, func(ev sequencer.Event) {
		if ev.Kind == sequencer.EventFinished {
			return
		}
		_, _ = fmt.Fprintln(out, ev.Message())
	})
	if err != nil {
		log.Error().Err(err).Msg("error starting run")
		_, _ = fmt.Fprintf(out, "Error starting run: %v\n", err)
		return 1
	}

	res := run.Wait()
	switch {
	case res.Err == nil:
		_, _ = fmt.Fprintln(out, "Run sequence completed")
		return 0
	case errors.Is(res.Err, config.ErrConfigInvalid):
		_, _ = fmt.Fprintf(out, "Settings are invalid: %v\n", res.Err)
	case errors.Is(res.Err, context.Canceled):
		_, _ = fmt.Fprintln(out, "Run sequence cancelled")
	default:
		_, _ = fmt.Fprintf(out, "Run sequence failed: %v\n", res.Err)
	}
	return 1
}
