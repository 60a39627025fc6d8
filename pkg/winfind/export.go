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
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// csvRow flattens a Record into one column per field.
type csvRow struct {
	Handle      string `csv:"handle"`
	ProcessName string `csv:"process_name"`
	Title       string `csv:"title"`
	Class       string `csv:"class"`
	Owner       string `csv:"owner"`
	PID         int    `csv:"pid"`
	Left        int    `csv:"left"`
	Top         int    `csv:"top"`
	Width       int    `csv:"width"`
	Height      int    `csv:"height"`
	Area        int    `csv:"area"`
	Visible     bool   `csv:"visible"`
}

func ExportCSV(out io.Writer, records []Record) error {
	rows := make([]csvRow, 0, len(records))
	for i := range records {
		r := &records[i]
		rows = append(rows, csvRow{
			Handle:      formatHandle(r.Handle),
			PID:         r.PID,
			ProcessName: r.ProcessName,
			Title:       r.Title,
			Class:       r.Class,
			Visible:     r.Visible,
			Left:        r.Bounds.Left,
			Top:         r.Bounds.Top,
			Width:       r.Bounds.Width,
			Height:      r.Bounds.Height,
			Area:        r.Area(),
			Owner:       formatHandle(r.Owner),
		})
	}
	if err := gocsv.Marshal(rows, out); err != nil {
		return fmt.Errorf("failed to marshal csv: %w", err)
	}
	return nil
}

func ExportJSON(out io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func ExportYAML(out io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	enc := yaml.NewEncoder(out)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return nil
}

// Export writes records to path, choosing the format from the extension:
// .csv, .json, or .yaml/.yml.
func Export(fs afero.Fs, path string, records []Record) error {
	var write func(io.Writer, []Record) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		write = ExportCSV
	case ".json":
		write = ExportJSON
	case ".yaml", ".yml":
		write = ExportYAML
	default:
		return fmt.Errorf("unsupported export format: %q (expected .csv, .json or .yaml)", path)
	}

	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close export file")
		}
	}()

	if err := write(f, records); err != nil {
		return err
	}

	log.Info().Str("path", path).Int("windows", len(records)).Msg("exported window snapshot")
	return nil
}
