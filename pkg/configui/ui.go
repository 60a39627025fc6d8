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

package configui

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/entitan/entitan/pkg/config"
	"github.com/entitan/entitan/pkg/sequencer"
	"github.com/entitan/entitan/pkg/wtf"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

const (
	labelLocale   = "Preferred locale"
	inputWidth    = 60
	localeWidth   = 6
	maxLocaleChar = 4
)

var pathFields = []Field{FieldPlatformLauncher, FieldGameConfig, FieldGameBinary}

// view owns the widgets. All methods run on the tview event goroutine.
type view struct {
	editor  *Editor
	picker  FilePicker
	app     *tview.Application
	root    *tview.Flex
	form    *tview.Form
	locales *tview.TextView
	status  *tview.TextView
	watcher *wtf.Watcher
	run     *sequencer.Run
	inputs  map[Field]*tview.InputField
	locale  *tview.InputField
	ctx     context.Context
}

func newView(ctx context.Context, app *tview.Application, editor *Editor, picker FilePicker) *view {
	v := &view{
		ctx:    ctx,
		app:    app,
		editor: editor,
		picker: picker,
		inputs: make(map[Field]*tview.InputField),
	}

	lc := editor.LaunchConfig()
	v.form = tview.NewForm()
	v.form.AddInputField(labelLocale, lc.Locale, localeWidth,
		func(text string, ch rune) bool {
			return len(text) <= maxLocaleChar && isASCIILetter(ch)
		}, nil)
	v.locale, _ = v.form.GetFormItemByLabel(labelLocale).(*tview.InputField)

	for _, field := range pathFields {
		v.form.AddInputField(field.label(), editor.Path(field), inputWidth, nil, func(text string) {
			editor.EditPath(field, text)
			if field == FieldGameConfig {
				v.refreshLocales()
			}
		})
		v.inputs[field], _ = v.form.GetFormItemByLabel(field.label()).(*tview.InputField)
	}

	v.form.AddButton("Browse launcher", func() { v.browse(FieldPlatformLauncher) })
	v.form.AddButton("Browse Config.wtf", func() { v.browse(FieldGameConfig) })
	v.form.AddButton("Browse game", func() { v.browse(FieldGameBinary) })
	v.form.AddButton("Update", v.update)
	v.form.AddButton("Run", v.startRun)
	v.form.AddButton("Close", v.close)
	v.form.SetBorder(true).SetTitle(" enTitan " + config.AppVersion + " ")
	v.form.SetCancelFunc(v.close)

	v.locales = tview.NewTextView()
	v.locales.SetBorder(true).SetTitle(" Config.wtf ")
	v.status = tview.NewTextView().SetDynamicColors(false)
	v.status.SetBorder(true).SetTitle(" Status ")

	v.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.form, 0, 1, true).
		AddItem(v.locales, 3, 0, false).
		AddItem(v.status, 3, 0, false)

	v.refreshLocales()
	v.refreshStatus()
	return v
}

func (v *view) refreshLocales() {
	v.locales.SetText(v.editor.LocalesText())
	if v.watcher != nil {
		if err := v.watcher.SetPath(v.editor.Path(FieldGameConfig)); err != nil {
			log.Debug().Err(err).Msg("failed to move config watch")
		}
	}
}

func (v *view) refreshStatus() {
	v.status.SetText(v.editor.Status())
}

func (v *view) syncLocale() {
	text := v.locale.GetText()
	if locale := v.editor.SetLocaleInput(text); locale != text {
		v.locale.SetText(locale)
	}
}

func (v *view) browse(f Field) {
	startDir := ""
	if current := v.editor.Path(f); current != "" {
		startDir = filepath.Dir(current)
	}
	ext := f.ext(v.editor.opts)
	path, err := v.picker.Pick("Select "+f.label(), f.label(), ext, startDir)
	switch {
	case err != nil:
		v.editor.SetStatus(err.Error())
	case path == "":
		return
	case v.editor.PickPath(f, path):
		v.inputs[f].SetText(path)
		if f == FieldGameConfig {
			v.refreshLocales()
		}
	}
	v.refreshStatus()
}

func (v *view) update() {
	v.syncLocale()
	if err := v.editor.Update(); err != nil {
		log.Warn().Err(err).Msg("update failed")
	}
	v.refreshLocales()
	v.refreshStatus()
}

func (v *view) startRun() {
	v.syncLocale()
	run, err := v.editor.StartRun(v.ctx, func(ev sequencer.Event) {
		msg := ev.Message()
		v.app.QueueUpdateDraw(func() {
			v.editor.SetStatus(msg)
			v.refreshStatus()
		})
	})
	if err == nil {
		v.run = run
	}
	v.refreshStatus()
}

// close abandons a run in progress; processes it already started keep
// running.
func (v *view) close() {
	if v.run != nil {
		v.run.Cancel()
	}
	v.app.Stop()
}

func (v *view) onWtfChanged(string) {
	v.app.QueueUpdateDraw(func() {
		v.locales.SetText(v.editor.LocalesText())
		v.editor.SetStatus("Config.wtf changed on disk; reloaded")
		v.refreshStatus()
	})
}

func (v *view) onWtfError(err error) {
	v.app.QueueUpdateDraw(func() {
		v.editor.SetStatus("File watcher error: " + err.Error())
		v.refreshStatus()
	})
}

// Run shows the settings editor and blocks until it's closed.
func Run(ctx context.Context, editor *Editor, picker FilePicker) error {
	app := tview.NewApplication()
	v := newView(ctx, app, editor, picker)

	w, err := wtf.Watch(editor.Path(FieldGameConfig), v.onWtfChanged, v.onWtfError)
	if err != nil {
		log.Warn().Err(err).Msg("config file watcher unavailable")
		if w, err = wtf.Watch("", v.onWtfChanged, v.onWtfError); err != nil {
			log.Warn().Err(err).Msg("failed to start file watcher")
		}
	}
	v.watcher = w
	defer func() {
		if v.watcher != nil {
			_ = v.watcher.Close()
		}
	}()

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC {
			v.close()
			return nil
		}
		return event
	})

	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-ctx.Done():
			app.QueueUpdate(v.close)
		case <-stopped:
		}
	}()

	if err := app.SetRoot(v.root, true).EnableMouse(true).Run(); err != nil {
		return fmt.Errorf("settings editor failed: %w", err)
	}
	return nil
}
