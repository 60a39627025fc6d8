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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/entitan/entitan/internal/telemetry"
	"github.com/entitan/entitan/pkg/cli"
	"github.com/entitan/entitan/pkg/config"
	"github.com/entitan/entitan/pkg/configui"
	"github.com/entitan/entitan/pkg/helpers"
	"github.com/entitan/entitan/pkg/sequencer"
	"github.com/nixinwang/dialog"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := cli.SetupFlags(flag.CommandLine)
	flags.Pre(flag.CommandLine, os.Args[1:])

	var writers []io.Writer
	if flags.Headless() {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	}
	cfg := cli.Setup(config.BaseDefaults, writers)
	defer telemetry.Close()

	// diagnostics don't launch anything, so they may run alongside the app
	if *flags.Windows {
		code, _ := flags.Post(cfg)
		return code
	}

	inst, err := helpers.AcquireInstance(helpers.ConfigDir())
	if errors.Is(err, helpers.ErrAlreadyRunning) {
		log.Warn().Err(err).Msg("refusing to start a second instance")
		dialog.Message("%s", "enTitan is already running.").Title("enTitan already running").Error()
		return 1
	} else if err != nil {
		log.Error().Err(err).Msg("error acquiring instance lock")
		_, _ = fmt.Fprintf(os.Stderr, "Error acquiring instance lock: %v\n", err)
		return 1
	}
	defer func() {
		if err := inst.Release(); err != nil {
			log.Warn().Err(err).Msg("error releasing instance lock")
		}
	}()

	if code, handled := flags.Post(cfg); handled {
		return code
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := cli.Deps()
	editor := configui.NewEditor(cfg, deps.Fs, sequencer.NewCoordinator(deps), deps.Validate)
	if err := configui.Run(ctx, editor, configui.NewNativePicker()); err != nil {
		log.Error().Err(err).Msg("settings editor failed")
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
