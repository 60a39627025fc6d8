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
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleRecords() []Record {
	return []Record{
		{
			Handle:      0x1A2B,
			PID:         200,
			ProcessName: "Wow.exe",
			Title:       "World of Warcraft",
			Class:       "GxWindowClass",
			Visible:     true,
			Bounds:      Rect{Left: 0, Top: 0, Width: 1920, Height: 1080},
		},
		{
			Handle:      0x3C,
			PID:         100,
			ProcessName: "Battle.net.exe",
			Title:       `Battle.net, "Login"`,
			Class:       "Chrome_WidgetWin_0",
			Owner:       0x1A2B,
		},
	}
}

func TestExportCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, sampleRecords()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t,
		"handle,process_name,title,class,owner,pid,left,top,width,height,area,visible",
		lines[0])
	assert.Equal(t,
		"0x1A2B,Wow.exe,World of Warcraft,GxWindowClass,-,200,0,0,1920,1080,2073600,true",
		lines[1])
	assert.Contains(t, lines[2], `"Battle.net, ""Login"""`)
	assert.Contains(t, lines[2], ",0x1A2B,")
}

func TestExportJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, sampleRecords()))

	var decoded []Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleRecords(), decoded)
	assert.Contains(t, buf.String(), `"processName": "Wow.exe"`)
}

func TestExportJSON_EmptyIsArray(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestExportYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, ExportYAML(&buf, sampleRecords()))

	var decoded []Record
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleRecords(), decoded)
}

func TestExport_ChoosesFormatByExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		prefix string
	}{
		{path: "/out/windows.csv", prefix: "handle,"},
		{path: "/out/windows.json", prefix: "["},
		{path: "/out/windows.YAML", prefix: "- processName:"},
		{path: "/out/windows.yml", prefix: "- processName:"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			require.NoError(t, fs.MkdirAll("/out", 0o755))
			require.NoError(t, Export(fs, tt.path, sampleRecords()))

			data, err := afero.ReadFile(fs, tt.path)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(data), tt.prefix), string(data))
		})
	}
}

func TestExport_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	err := Export(fs, "/out/windows.txt", sampleRecords())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")

	exists, err := afero.Exists(fs, "/out/windows.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}
