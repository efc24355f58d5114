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
	"testing"
	"time"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.json")
	if err := os.WriteFile(path, []byte(`{"name":"v1"}`), 0o644); err != nil {
		t.Fatalf("seed theme: %v", err)
	}

	got := make(chan Theme, 4)
	w, err := Watch(path, func(th Theme) { got <- th })
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer func() { _ = w.Close() }()

	if err := os.WriteFile(path, []byte(`{"name":"v2"}`), 0o644); err != nil {
		t.Fatalf("rewrite theme: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case th := <-got:
			if th.Name == "v2" {
				return
			}
			// an intermediate event may still carry v1; keep waiting
		case <-deadline:
			t.Fatalf("watcher did not deliver updated theme")
		}
	}
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("seed theme: %v", err)
	}

	got := make(chan Theme, 4)
	w, err := Watch(path, func(th Theme) { got <- th })
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer func() { _ = w.Close() }()

	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{"name":"x"}`), 0o644); err != nil {
		t.Fatalf("write sibling: %v", err)
	}

	select {
	case th := <-got:
		t.Fatalf("unexpected reload from sibling file: %+v", th)
	case <-time.After(700 * time.Millisecond):
	}
}

func TestWatchCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("seed theme: %v", err)
	}
	w, err := Watch(path, func(Theme) {})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}
