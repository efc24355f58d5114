/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package theme holds the active dashboard theme (named color palette plus
// text styling) and the canvas background. Importing a theme merges recognized
// fields onto a copy of the built-in default; malformed input degrades to the
// default rather than failing.
package theme

import (
	"encoding/json"
	"reflect"
)

// TextStyle carries font hints forwarded to chart rendering.
type TextStyle struct {
	FontFace string  `json:"fontFace,omitempty"`
	Color    string  `json:"color,omitempty"`
	FontSize float64 `json:"fontSize,omitempty"`
}

// TextClasses groups the title and label styles.
type TextClasses struct {
	Title TextStyle `json:"title"`
	Label TextStyle `json:"label"`
}

// ChartStyle carries plot-area hints.
type ChartStyle struct {
	PlotBg string `json:"plotBg,omitempty"`
	Grid   string `json:"grid,omitempty"`
}

// Theme is the active styling document.
type Theme struct {
	Name        string      `json:"name"`
	DataColors  []string    `json:"dataColors"`
	Background  string      `json:"background,omitempty"`
	Foreground  string      `json:"foreground,omitempty"`
	TextClasses TextClasses `json:"textClasses"`
	Chart       ChartStyle  `json:"chart,omitempty"`
}

// Default returns the built-in dark theme.
func Default() Theme {
	return Theme{
		Name: "Default Dark Prototype",
		DataColors: []string{
			"#3b82f6", "#22c55e", "#f59e0b", "#a855f7", "#ef4444",
			"#06b6d4", "#eab308", "#f97316", "#84cc16", "#14b8a6",
		},
		Background: "#0f1115",
		Foreground: "#e8ecf2",
		TextClasses: TextClasses{
			Title: TextStyle{FontFace: "Segoe UI Semibold", Color: "#e8ecf2", FontSize: 12},
			Label: TextStyle{FontFace: "Segoe UI", Color: "#cfd6e1", FontSize: 10},
		},
		Chart: ChartStyle{PlotBg: "rgba(255,255,255,0.00)", Grid: "rgba(255,255,255,0.08)"},
	}
}

// Sample returns the bundled green sample theme offered for download.
func Sample() Theme {
	return Theme{
		Name: "Green Theme (Sample)",
		DataColors: []string{
			"#22c55e", "#16a34a", "#84cc16", "#10b981",
			"#06b6d4", "#f59e0b", "#ef4444", "#a855f7",
		},
		Background: "#0f1115",
		Foreground: "#e8ecf2",
		TextClasses: TextClasses{
			Title: TextStyle{FontFace: "Segoe UI Semibold", Color: "#e8ecf2", FontSize: 12},
			Label: TextStyle{FontFace: "Segoe UI", Color: "#d5ffe3", FontSize: 10},
		},
		Chart: ChartStyle{PlotBg: "rgba(255,255,255,0.00)", Grid: "rgba(34,197,94,0.14)"},
	}
}

// PaletteColor resolves the color for the i-th series, cycling through the
// palette. An empty palette falls back to the built-in default palette.
func (t Theme) PaletteColor(i int) string {
	colors := t.DataColors
	if len(colors) == 0 {
		colors = Default().DataColors
	}
	if i < 0 {
		i = 0
	}
	return colors[i%len(colors)]
}

// IsDefault reports whether t deep-equals the built-in default theme.
func (t Theme) IsDefault() bool { return reflect.DeepEqual(t, Default()) }

// overlay mirrors Theme with optional fields for merge-on-import.
type overlay struct {
	Name        *string  `json:"name"`
	DataColors  []string `json:"dataColors"`
	Background  *string  `json:"background"`
	Foreground  *string  `json:"foreground"`
	TextClasses *struct {
		Title *textOverlay `json:"title"`
		Label *textOverlay `json:"label"`
	} `json:"textClasses"`
	Chart *struct {
		PlotBg *string `json:"plotBg"`
		Grid   *string `json:"grid"`
	} `json:"chart"`
}

type textOverlay struct {
	FontFace *string  `json:"fontFace"`
	Color    *string  `json:"color"`
	FontSize *float64 `json:"fontSize"`
}

// Normalize merges recognized fields of raw JSON onto a fresh copy of the
// default theme. Malformed input yields the default untouched; it never fails.
func Normalize(raw []byte) Theme {
	t, err := Parse(raw)
	if err != nil {
		return Default()
	}
	return t
}

// Parse is the strict variant of Normalize: it returns an error for input that
// is not a JSON object, so callers can report a failed import while keeping
// their previous state.
func Parse(raw []byte) (Theme, error) {
	out := Default()
	var o overlay
	if err := json.Unmarshal(raw, &o); err != nil {
		return out, err
	}
	mergeOverlay(&out, o)
	return out, nil
}

func mergeOverlay(out *Theme, o overlay) {
	if o.Name != nil {
		out.Name = *o.Name
	}
	if len(o.DataColors) > 0 {
		out.DataColors = append([]string(nil), o.DataColors...)
	}
	if o.Background != nil {
		out.Background = *o.Background
	}
	if o.Foreground != nil {
		out.Foreground = *o.Foreground
	}
	if o.TextClasses != nil {
		mergeText(&out.TextClasses.Title, o.TextClasses.Title)
		mergeText(&out.TextClasses.Label, o.TextClasses.Label)
	}
	if o.Chart != nil {
		if o.Chart.PlotBg != nil {
			out.Chart.PlotBg = *o.Chart.PlotBg
		}
		if o.Chart.Grid != nil {
			out.Chart.Grid = *o.Chart.Grid
		}
	}
}

func mergeText(dst *TextStyle, src *textOverlay) {
	if src == nil {
		return
	}
	if src.FontFace != nil {
		dst.FontFace = *src.FontFace
	}
	if src.Color != nil {
		dst.Color = *src.Color
	}
	if src.FontSize != nil {
		dst.FontSize = *src.FontSize
	}
}
