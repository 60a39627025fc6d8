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

package wtf

import (
	"fmt"
	"path/filepath"

	"github.com/entitan/entitan/pkg/helpers/syncutil"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watcher calls a function whenever the watched file is written, created,
// renamed or removed. It watches the parent directory so editors that
// replace the file atomically are still noticed.
type Watcher struct {
	fsw      *fsnotify.Watcher
	onChange func(path string)
	onError  func(error)
	done     chan struct{}
	path     string
	dir      string
	mu       syncutil.Mutex
}

// Watch starts watching path. onError may be nil.
func Watch(path string, onChange func(path string), onError func(error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		onChange: onChange,
		onError:  onError,
		done:     make(chan struct{}),
	}

	if path != "" {
		if err := w.SetPath(path); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	go w.loop()
	return w, nil
}

// SetPath moves the watch to a new file. An empty path stops watching
// without closing the watcher.
func (w *Watcher) SetPath(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	clean := ""
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		clean = filepath.Clean(abs)
	}
	if clean == w.path {
		return nil
	}

	dir := ""
	if clean != "" {
		dir = filepath.Dir(clean)
	}
	if w.dir != "" && w.dir != dir {
		if err := w.fsw.Remove(w.dir); err != nil {
			log.Debug().Err(err).Str("dir", w.dir).Msg("failed to remove old watch")
		}
	}
	if dir != "" && dir != w.dir {
		if err := w.fsw.Add(dir); err != nil {
			w.path, w.dir = "", ""
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	w.path, w.dir = clean, dir
	log.Debug().Str("path", clean).Msg("watching config file")
	return nil
}

func (w *Watcher) watched() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			path := w.watched()
			if path == "" || filepath.Clean(event.Name) != path {
				continue
			}
			log.Debug().Str("op", event.Op.String()).Str("path", path).Msg("config file changed")
			w.onChange(path)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("error in config file watcher")
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

// Close stops the watcher and waits for the event loop to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	if err != nil {
		return fmt.Errorf("failed to close file watcher: %w", err)
	}
	return nil
}
