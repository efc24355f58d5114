/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package theme

import (
	"reflect"
	"testing"
)

func TestPaletteColorCycles(t *testing.T) {
	th := Default()
	n := len(th.DataColors)
	if th.PaletteColor(0) != th.DataColors[0] {
		t.Fatalf("index 0 mismatch")
	}
	if th.PaletteColor(n) != th.DataColors[0] {
		t.Fatalf("palette must cycle at len")
	}
	if th.PaletteColor(n+3) != th.DataColors[3] {
		t.Fatalf("palette must cycle modulo len")
	}
}

func TestPaletteColorEmptyFallsBackToDefault(t *testing.T) {
	th := Theme{Name: "empty"}
	if got := th.PaletteColor(1); got != Default().DataColors[1] {
		t.Fatalf("empty palette must fall back to default, got %q", got)
	}
}

func TestNormalizeEmptyObjectYieldsDefault(t *testing.T) {
	got := Normalize([]byte(`{}`))
	if !reflect.DeepEqual(got, Default()) {
		t.Fatalf("empty object must normalize to default, got %+v", got)
	}
}

func TestNormalizeMalformedYieldsDefault(t *testing.T) {
	got := Normalize([]byte(`{not json`))
	if !reflect.DeepEqual(got, Default()) {
		t.Fatalf("malformed input must normalize to default")
	}
}

func TestParseReportsMalformedInput(t *testing.T) {
	if _, err := Parse([]byte(`]`)); err == nil {
		t.Fatalf("expected error for malformed theme JSON")
	}
}

func TestNormalizeMergesPartialFields(t *testing.T) {
	raw := []byte(`{"name":"Ocean","dataColors":["#111111","#222222"],"textClasses":{"label":{"color":"#abcdef"}}}`)
	got := Normalize(raw)
	if got.Name != "Ocean" {
		t.Fatalf("name not merged: %q", got.Name)
	}
	if len(got.DataColors) != 2 || got.DataColors[1] != "#222222" {
		t.Fatalf("dataColors not merged: %v", got.DataColors)
	}
	if got.TextClasses.Label.Color != "#abcdef" {
		t.Fatalf("label color not merged: %q", got.TextClasses.Label.Color)
	}
	// Fields absent from the import inherit from the default.
	if got.TextClasses.Label.FontFace != Default().TextClasses.Label.FontFace {
		t.Fatalf("missing sub-fields must inherit default")
	}
	if got.TextClasses.Title != Default().TextClasses.Title {
		t.Fatalf("untouched title style must equal default")
	}
}

func TestNormalizeIgnoresEmptyDataColors(t *testing.T) {
	got := Normalize([]byte(`{"dataColors":[]}`))
	if !reflect.DeepEqual(got.DataColors, Default().DataColors) {
		t.Fatalf("empty dataColors array must keep the default palette")
	}
}

func TestIsDefault(t *testing.T) {
	if !Default().IsDefault() {
		t.Fatalf("Default() must report default")
	}
	th := Default()
	th.Name = "other"
	if th.IsDefault() {
		t.Fatalf("renamed theme must not report default")
	}
}

func TestNormalizeBackground(t *testing.T) {
	b := NormalizeBackground([]byte(`{"backgroundColor":"#123456","opacity":2.5}`))
	if b.Color != "#123456" {
		t.Fatalf("color not merged: %q", b.Color)
	}
	if b.Opacity != 1 {
		t.Fatalf("opacity must clamp to 1, got %v", b.Opacity)
	}
	if b.Image != "" {
		t.Fatalf("missing image must stay default")
	}
	if got := NormalizeBackground([]byte(`garbage`)); !got.IsDefault() {
		t.Fatalf("malformed background must degrade to default")
	}
}
