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

// Package configui is the settings editor: a terminal form for the locale
// and the three paths, with Update and Run actions.
package configui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/entitan/entitan/pkg/config"
	"github.com/entitan/entitan/pkg/sequencer"
	"github.com/entitan/entitan/pkg/wtf"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Field identifies one of the path inputs.
type Field int

const (
	FieldPlatformLauncher Field = iota
	FieldGameConfig
	FieldGameBinary
)

func (f Field) label() string {
	switch f {
	case FieldPlatformLauncher:
		return "Platform launcher"
	case FieldGameConfig:
		return "Config.wtf"
	case FieldGameBinary:
		return "Game executable"
	default:
		return "path"
	}
}

// ext returns the extension a picked file must have, or "" for any.
func (f Field) ext(opts config.ValidateOptions) string {
	if f == FieldGameConfig {
		return config.WtfExt
	}
	if opts.RequireExe {
		return config.ExeExt
	}
	return ""
}

// Editor holds the form state between the widgets and the config. It is
// not safe for concurrent use; call it from the UI goroutine only.
type Editor struct {
	cfg    *config.Instance
	fs     afero.Fs
	coord  *sequencer.Coordinator
	lc     config.LaunchConfig
	status string
	opts   config.ValidateOptions
}

func NewEditor(
	cfg *config.Instance,
	fs afero.Fs,
	coord *sequencer.Coordinator,
	opts config.ValidateOptions,
) *Editor {
	return &Editor{
		cfg:   cfg,
		fs:    fs,
		coord: coord,
		opts:  opts,
		lc:    cfg.LaunchConfig(),
	}
}

func (e *Editor) LaunchConfig() config.LaunchConfig {
	return e.lc
}

func (e *Editor) Status() string {
	return e.status
}

func (e *Editor) SetStatus(s string) {
	e.status = s
}

func (e *Editor) Path(f Field) string {
	switch f {
	case FieldPlatformLauncher:
		return e.lc.PlatformLauncherPath
	case FieldGameConfig:
		return e.lc.GameConfigPath
	case FieldGameBinary:
		return e.lc.GameBinaryPath
	default:
		return ""
	}
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// SetLocaleInput stores the sanitised form of text and returns it, so the
// input field can be rewritten when characters were dropped.
func (e *Editor) SetLocaleInput(text string) string {
	locale, unchanged := config.SanitizeLocale(text)
	switch {
	case unchanged:
	case !strings.ContainsFunc(text, isASCIILetter):
		e.status = "Preferred locale invalid; reset to " + config.DefaultLocale
	default:
		e.status = "Preferred locale filtered to letters only (max 4)"
	}
	e.lc.Locale = locale
	return locale
}

// EditPath stores a path as typed. It's checked on Update and Run.
func (e *Editor) EditPath(f Field, path string) {
	path = strings.TrimSpace(path)
	switch f {
	case FieldPlatformLauncher:
		e.lc.PlatformLauncherPath = path
	case FieldGameConfig:
		e.lc.GameConfigPath = path
	case FieldGameBinary:
		e.lc.GameBinaryPath = path
	}
}

// PickPath stores a file chosen in the file dialog. A file with the wrong
// extension is rejected and the previous value kept.
func (e *Editor) PickPath(f Field, path string) bool {
	ext := f.ext(e.opts)
	if ext != "" && !strings.EqualFold(filepath.Ext(path), ext) {
		e.status = fmt.Sprintf("Selected file is not a %s file", ext)
		return false
	}
	e.EditPath(f, path)
	e.status = "Selected (unsaved)"
	return true
}

// Dirty reports whether the form differs from the saved config.
func (e *Editor) Dirty() bool {
	return e.lc != e.cfg.LaunchConfig()
}

func describeError(err error) string {
	var verr *config.ValidationError
	if errors.As(err, &verr) {
		return strings.Join(verr.Problems, "; ")
	}
	return err.Error()
}

// Update validates the form, saves it to config.toml and writes the locale
// into Config.wtf.
func (e *Editor) Update() error {
	if err := e.lc.Validate(e.fs, e.opts); err != nil {
		e.status = describeError(err)
		return err
	}

	e.cfg.SetLaunchConfig(e.lc)
	if err := e.cfg.Save(); err != nil {
		e.status = "Error saving: " + err.Error()
		return fmt.Errorf("failed to save config: %w", err)
	}

	if err := wtf.SetLocale(e.fs, e.lc.GameConfigPath, e.lc.Locale); err != nil {
		e.status = "Error updating config: " + err.Error()
		return fmt.Errorf("failed to update %s: %w", e.lc.GameConfigPath, err)
	}

	e.status = "Config.wtf updated"
	log.Info().Str("locale", e.lc.Locale).Msg("settings updated")
	return nil
}

// StartRun hands the current form values to the coordinator. Unsaved edits
// are used for the run but not written to disk.
func (e *Editor) StartRun(ctx context.Context, observer sequencer.Observer) (*sequencer.Run, error) {
	if err := e.lc.Validate(e.fs, e.opts); err != nil {
		e.status = describeError(err)
		return nil, err
	}

	e.cfg.SetLaunchConfig(e.lc)
	run, err := e.coord.Start(ctx, e.cfg, observer)
	if errors.Is(err, sequencer.ErrRunInProgress) {
		e.status = "A run sequence is already in progress"
		return nil, err
	} else if err != nil {
		e.status = "Error starting run: " + err.Error()
		return nil, err
	}

	e.status = "Starting run sequence..."
	return run, nil
}

// LocalesText describes the locales currently in Config.wtf.
func (e *Editor) LocalesText() string {
	path := e.lc.GameConfigPath
	if path == "" {
		return "Config.wtf: not set"
	}
	locales, err := wtf.ReadLocales(e.fs, path)
	switch {
	case errors.Is(err, wtf.ErrFileTooLarge):
		return "Audio: (file too large)  Text: (file too large)"
	case err != nil:
		return "Config.wtf: not found"
	}

	show := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}
	return fmt.Sprintf("Audio: %s  Text: %s", show(locales.Audio), show(locales.Text))
}
