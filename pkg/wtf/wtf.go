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

// Package wtf reads and rewrites the locale settings in the game's own
// Config.wtf file. The file is a list of `SET key "value"` lines.
package wtf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// MaxFileSize is the size at which Config.wtf is considered suspicious and
// left alone. Real files are a few kilobytes.
const MaxFileSize = 8192

const (
	audioLocaleKey = "SET audioLocale"
	textLocaleKey  = "SET textLocale"
)

var (
	ErrFileTooLarge = fmt.Errorf("config file is %d bytes or larger", MaxFileSize)
	ErrNotSet       = errors.New("config file path is not set")
	ErrNotAFile     = errors.New("config file path does not exist or is not a file")
)

// Locales holds the values found in Config.wtf. Empty means the line is
// absent.
type Locales struct {
	Audio string
	Text  string
}

func (l Locales) String() string {
	show := func(s string) string {
		if s == "" {
			return "(not set)"
		}
		return s
	}
	return fmt.Sprintf("audio %s, text %s", show(l.Audio), show(l.Text))
}

func readSmallFile(fs afero.Fs, path string) ([]byte, error) {
	if path == "" {
		return nil, ErrNotSet
	}
	info, err := fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAFile, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}
	if info.Size() >= MaxFileSize {
		return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, path)
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// quotedValue returns the text between the first pair of double quotes.
func quotedValue(line string) (string, bool) {
	first := strings.IndexByte(line, '"')
	if first < 0 {
		return "", false
	}
	rest := line[first+1:]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

func splitLines(data string) ([]string, string) {
	sep := "\n"
	if strings.Contains(data, "\r\n") {
		sep = "\r\n"
	}
	data = strings.TrimSuffix(data, sep)
	if data == "" {
		return nil, sep
	}
	return strings.Split(data, sep), sep
}

// ReadLocales parses the audio and text locale lines. When a key appears
// more than once the last value wins, matching how the game reads it.
func ReadLocales(fs afero.Fs, path string) (Locales, error) {
	data, err := readSmallFile(fs, path)
	if err != nil {
		return Locales{}, err
	}

	var locales Locales
	lines, _ := splitLines(string(data))
	for _, line := range lines {
		s := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(s, audioLocaleKey):
			if v, ok := quotedValue(s); ok {
				locales.Audio = v
			}
		case strings.HasPrefix(s, textLocaleKey):
			if v, ok := quotedValue(s); ok {
				locales.Text = v
			}
		}
	}
	return locales, nil
}

// SetLocale rewrites every audio and text locale line to locale, appending
// the lines if they're missing. The result always ends with a newline.
func SetLocale(fs afero.Fs, path, locale string) error {
	if locale == "" || strings.ContainsAny(locale, "\"\r\n") {
		return fmt.Errorf("invalid locale %q", locale)
	}

	data, err := readSmallFile(fs, path)
	if err != nil {
		return err
	}
	info, err := fs.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	audioLine := fmt.Sprintf("%s %q", audioLocaleKey, locale)
	textLine := fmt.Sprintf("%s %q", textLocaleKey, locale)

	lines, sep := splitLines(string(data))
	foundAudio, foundText := false, false
	for i, line := range lines {
		s := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(s, audioLocaleKey):
			lines[i] = audioLine
			foundAudio = true
		case strings.HasPrefix(s, textLocaleKey):
			lines[i] = textLine
			foundText = true
		}
	}
	if !foundAudio {
		lines = append(lines, audioLine)
	}
	if !foundText {
		lines = append(lines, textLine)
	}

	out := strings.Join(lines, sep) + sep
	if err := afero.WriteFile(fs, path, []byte(out), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Info().Str("path", path).Str("locale", locale).Msg("updated config file locales")
	return nil
}
