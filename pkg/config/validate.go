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

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
)

// ErrConfigInvalid is returned when a launch can't be attempted because a
// configured path is missing or the locale isn't recognised. It's always
// detected before any process is started.
var ErrConfigInvalid = errors.New("launch config invalid")

// ValidationError lists every problem found in a LaunchConfig.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConfigInvalid, strings.Join(e.Problems, "; "))
}

func (*ValidationError) Unwrap() error {
	return ErrConfigInvalid
}

type ValidateOptions struct {
	// RequireExe enforces an .exe extension on the launcher and game binary.
	RequireExe bool
}

func DefaultValidateOptions() ValidateOptions {
	return ValidateOptions{RequireExe: runtime.GOOS == "windows"}
}

var fieldLabels = map[string]string{
	"PlatformLauncherPath": "platform launcher path",
	"GameConfigPath":       "game config path",
	"GameBinaryPath":       "game binary path",
	"Locale":               "locale",
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		return IsKnownLocale(fl.Field().String())
	})
	return v
}

var launchValidator = newValidator()

// Validate checks the struct rules and then that every path references an
// existing file on fs. All problems are reported together.
//
//nolint:gocritic // value receiver keeps LaunchConfig immutable
func (lc LaunchConfig) Validate(fs afero.Fs, opts ValidateOptions) error {
	var problems []string

	err := launchValidator.Struct(lc)
	if err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validation failed: %w", err)
		}
		for _, fe := range verrs {
			label := fieldLabels[fe.Field()]
			switch fe.Tag() {
			case "required":
				problems = append(problems, label+" is not set")
			case "locale":
				problems = append(problems, fmt.Sprintf("locale %q is not recognised", lc.Locale))
			default:
				problems = append(problems, fmt.Sprintf("%s failed %s", label, fe.Tag()))
			}
		}
	}

	checkFile := func(label, path, ext string) {
		if path == "" {
			return
		}
		info, err := fs.Stat(path)
		switch {
		case err != nil:
			problems = append(problems, fmt.Sprintf("%s %q does not exist", label, path))
		case info.IsDir():
			problems = append(problems, fmt.Sprintf("%s %q is a directory", label, path))
		case ext != "" && !strings.EqualFold(filepath.Ext(path), ext):
			problems = append(problems, fmt.Sprintf("%s %q must be a %s file", label, path, ext))
		}
	}

	exeExt := ""
	if opts.RequireExe {
		exeExt = ExeExt
	}
	checkFile(fieldLabels["PlatformLauncherPath"], lc.PlatformLauncherPath, exeExt)
	checkFile(fieldLabels["GameConfigPath"], lc.GameConfigPath, WtfExt)
	checkFile(fieldLabels["GameBinaryPath"], lc.GameBinaryPath, exeExt)

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
