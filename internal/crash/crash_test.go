/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package crash

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"godashboard/internal/dashboard"
	"godashboard/internal/storage"
)

func TestRecoverWritesReportAndAutosave(t *testing.T) {
	origExit := exitFn
	exitCode := -1
	exitFn = func(code int) { exitCode = code }
	defer func() { exitFn = origExit }()

	dir := t.TempDir()
	d := dashboard.New()
	d.AddWidget(dashboard.KindPie)
	h, err := storage.Create(filepath.Join(dir, "board.json"), d)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	func() {
		defer Recover(h)
		panic("boom")
	}()

	if exitCode != 2 {
		t.Fatalf("expected exit code 2, got %d", exitCode)
	}

	backups := storage.BackupsDir(h.Path)
	ents, err := os.ReadDir(backups)
	if err != nil {
		t.Fatalf("backups dir: %v", err)
	}
	var gotReport, gotAutosave bool
	for _, e := range ents {
		name := e.Name()
		if strings.HasPrefix(name, "crash-") && strings.HasSuffix(name, ".log") {
			gotReport = true
			raw, err := os.ReadFile(filepath.Join(backups, name))
			if err != nil {
				t.Fatalf("read report: %v", err)
			}
			if !strings.Contains(string(raw), "Panic: boom") {
				t.Fatalf("report missing panic value:\n%s", raw)
			}
		}
		if strings.HasPrefix(name, "crash-autosave-") && strings.HasSuffix(name, ".json") {
			gotAutosave = true
		}
	}
	if !gotReport {
		t.Fatalf("no crash report written")
	}
	if !gotAutosave {
		t.Fatalf("no autosave snapshot written")
	}
}

func TestRecoverWithoutHandleUsesTempDir(t *testing.T) {
	origExit := exitFn
	exitFn = func(int) {}
	defer func() { exitFn = origExit }()

	func() {
		defer Recover(nil)
		panic("standalone")
	}()
	// Nothing to assert beyond not panicking out; the report lands in the
	// system temp dir.
}

func TestRecoverNoopWithoutPanic(t *testing.T) {
	origExit := exitFn
	called := false
	exitFn = func(int) { called = true }
	defer func() { exitFn = origExit }()

	func() {
		defer Recover(nil)
	}()
	if called {
		t.Fatalf("Recover must not exit when there is no panic")
	}
}
