/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package theme

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	applog "godashboard/internal/log"
)

// Watcher re-imports a theme file whenever it changes on disk. Editors often
// emit several writes per save, so events are debounced before the reload.
type Watcher struct {
	path     string
	onChange func(Theme)

	mu     sync.Mutex
	fsw    *fsnotify.Watcher
	timer  *time.Timer
	seq    uint64
	closed bool
}

const watchDebounce = 250 * time.Millisecond

// Watch starts watching path and invokes onChange with the normalized theme
// after each (debounced) modification. The initial file content is not
// delivered; callers import it themselves first.
func Watch(path string, onChange func(Theme)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: many editors replace the file on save, which
	// removes the original watch target.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	w := &Watcher{path: path, onChange: onChange, fsw: fsw}
	go w.loop()
	return w, nil
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	l := applog.WithComponent("theme")
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			l.Warn("theme watch error", "err", err)
		}
	}
}

// schedule coalesces bursts of events into a single reload.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.seq++
	seq := w.seq
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(watchDebounce, func() {
		w.mu.Lock()
		stale := w.closed || seq != w.seq
		w.mu.Unlock()
		if stale {
			return
		}
		w.reload()
	})
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		applog.WithComponent("theme").Warn("theme reload read failed", "path", w.path, "err", err)
		return
	}
	w.onChange(Normalize(data))
}
