/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"godashboard/internal/theme"
)

func TestWriteSampleThemeIsImportable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples", "theme.json")
	if err := WriteSampleTheme(path); err != nil {
		t.Fatalf("WriteSampleTheme: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	th, err := theme.Parse(raw)
	if err != nil {
		t.Fatalf("sample theme must parse: %v", err)
	}
	if !reflect.DeepEqual(th, theme.Sample()) {
		t.Fatalf("sample theme did not round trip")
	}
}

func TestWriteSampleBackgroundIsImportable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.json")
	if err := WriteSampleBackground(path); err != nil {
		t.Fatalf("WriteSampleBackground: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	bg, err := theme.ParseBackground(raw)
	if err != nil {
		t.Fatalf("sample background must parse: %v", err)
	}
	if bg.Color != "#07140c" || bg.Opacity != 0.95 {
		t.Fatalf("unexpected sample background: %+v", bg)
	}
}
