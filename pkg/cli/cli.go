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
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/entitan/entitan/internal/telemetry"
	"github.com/entitan/entitan/pkg/config"
	"github.com/entitan/entitan/pkg/helpers"
	"github.com/entitan/entitan/pkg/helpers/command"
	"github.com/entitan/entitan/pkg/sequencer"
	"github.com/entitan/entitan/pkg/winfind"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

type Flags struct {
	Version *bool
	Run     *bool
	Windows *bool
	PID     *int
	Name    *string
	Group   *bool
	Export  *string
}

// SetupFlags defines the CLI flags on fs. Pass flag.CommandLine in main.
func SetupFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		Version: fs.Bool(
			"version",
			false,
			"print version and exit",
		),
		Run: fs.Bool(
			"run",
			false,
			"run the launch sequence without the settings editor",
		),
		Windows: fs.Bool(
			"windows",
			false,
			"list top-level windows ranked by visibility and size",
		),
		PID: fs.Int(
			"pid",
			0,
			"only list windows owned by this process id (with -windows)",
		),
		Name: fs.String(
			"name",
			"",
			"only list windows whose process name contains this text (with -windows)",
		),
		Group: fs.Bool(
			"group",
			false,
			"also print a per-process summary (with -windows)",
		),
		Export: fs.String(
			"export",
			"",
			"write the window list to a .csv, .json or .yaml file (with -windows)",
		),
	}
}

// Pre runs flag parsing and actions any immediate flags that don't
// require environment setup.
func (f *Flags) Pre(fs *flag.FlagSet, args []string) {
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}

	if *f.Version {
		_, _ = fmt.Printf("enTitan v%s\n", config.AppVersion)
		os.Exit(0)
	}
}

// WindowFilter builds the diagnostic filter from -pid and -name.
func (f *Flags) WindowFilter() winfind.Filter {
	return winfind.Filter{PID: *f.PID, ProcessName: *f.Name}
}

// Deps returns the real collaborators for a launch sequence.
func Deps() sequencer.Deps {
	return sequencer.Deps{
		Launcher: command.NewLauncher(),
		Clock:    clockwork.NewRealClock(),
		Finder:   winfind.NewFinder(),
		Fs:       afero.NewOsFs(),
		Validate: config.DefaultValidateOptions(),
	}
}

// Post actions the flags that need config and logging. handled is false
// when no action flag was given, meaning the settings editor should open.
func (f *Flags) Post(cfg *config.Instance) (code int, handled bool) {
	switch {
	case *f.Run:
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return RunHeadless(ctx, os.Stderr, cfg, sequencer.NewCoordinator(Deps())), true
	case *f.Windows:
		opts := WindowsOptions{
			Filter: f.WindowFilter(),
			Group:  *f.Group,
			Export: *f.Export,
		}
		if err := ListWindows(os.Stdout, afero.NewOsFs(), winfind.NewFinder(), opts); err != nil {
			log.Error().Err(err).Msg("error listing windows")
			_, _ = fmt.Fprintf(os.Stderr, "Error listing windows: %v\n", err)
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// Setup initializes the directories, logging and user config. Returns a
// user config object.
//
//nolint:gocritic // config struct copied for immutability
func Setup(defaultConfig config.Values, writers []io.Writer) *config.Instance {
	err := helpers.EnsureDirectories()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error creating directories: %v\n", err)
		os.Exit(1)
	}

	err = helpers.InitLogging(helpers.LogDir(), writers)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig(afero.NewOsFs(), helpers.ConfigDir(), defaultConfig)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Initialize error reporting (opt-in)
	if err := telemetry.Init(
		cfg.ErrorReporting(),
		cfg.ErrorReportingDSN(),
		config.AppVersion,
	); err != nil {
		log.Warn().Err(err).Msg("failed to initialize error reporting")
	}

	log.Info().
		Str("version", config.AppVersion).
		Str("config", cfg.Path()).
		Msg("enTitan starting")
	return cfg
}

// Headless reports whether an action flag was given, so the settings
// editor won't take over the terminal.
func (f *Flags) Headless() bool {
	return *f.Run || *f.Windows
}
