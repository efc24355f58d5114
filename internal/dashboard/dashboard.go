/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package dashboard

import (
	"sync"

	"godashboard/internal/geom"
	"godashboard/internal/theme"
)

// Canvas dimension limits in canvas units.
const (
	MinCanvasW = 320
	MaxCanvasW = 4000
	MinCanvasH = 180
	MaxCanvasH = 3000

	DefaultCanvasW = 1280
	DefaultCanvasH = 720
)

// framePad is the breathing room kept around the scaled canvas inside the
// viewport when computing the fit-to-screen scale.
const framePad = 12

// Preset is a named canvas size.
type Preset struct {
	Name   string
	Width  int
	Height int
}

// Presets returns the canvas size presets shown in the canvas settings pane.
func Presets() []Preset {
	return []Preset{
		{Name: "16:9", Width: 1280, Height: 720},
		{Name: "4:3", Width: 960, Height: 720},
		{Name: "Letter", Width: 816, Height: 1056},
		{Name: "Tooltip", Width: 320, Height: 240},
	}
}

// Dashboard is the complete editable state of one dashboard. All methods are
// safe for concurrent use; accessors return copies.
type Dashboard struct {
	mu         sync.Mutex
	canvasW    int
	canvasH    int
	background theme.Background
	theme      theme.Theme
	widgets    map[string]*Widget
	order      []string // paint order, back to front
	selected   string
	nextID     int
}

// New returns an empty dashboard with the default canvas, theme, and
// background.
func New() *Dashboard {
	return NewWithSize(DefaultCanvasW, DefaultCanvasH)
}

// NewWithSize returns an empty dashboard with the given canvas size, clamped
// to the allowed range.
func NewWithSize(w, h int) *Dashboard {
	d := &Dashboard{
		background: theme.DefaultBackground(),
		theme:      theme.Default(),
		widgets:    make(map[string]*Widget),
		nextID:     1,
	}
	d.canvasW = int(geom.Clamp(float64(w), MinCanvasW, MaxCanvasW))
	d.canvasH = int(geom.Clamp(float64(h), MinCanvasH, MaxCanvasH))
	return d
}

// CanvasSize returns the canvas dimensions in canvas units.
func (d *Dashboard) CanvasSize() (w, h int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.canvasW, d.canvasH
}

// SetCanvasSize resizes the canvas, clamping the dimensions to the allowed
// range and re-clamping every widget so none sticks out of the new bounds.
func (d *Dashboard) SetCanvasSize(w, h int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.canvasW = int(geom.Clamp(float64(w), MinCanvasW, MaxCanvasW))
	d.canvasH = int(geom.Clamp(float64(h), MinCanvasH, MaxCanvasH))
	d.clampAllLocked()
}

// FitScale computes the zoom factor that fits the whole canvas inside a
// viewport of the given pixel size, never magnifying past 1:1.
func (d *Dashboard) FitScale(viewW, viewH float64) float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return geom.FitScale(viewW-framePad, viewH-framePad, float64(d.canvasW), float64(d.canvasH))
}

// Background returns the canvas background.
func (d *Dashboard) Background() theme.Background {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.background
}

// SetBackground replaces the canvas background.
func (d *Dashboard) SetBackground(bg theme.Background) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.background = bg
}

// ImportBackgroundJSON parses a canvas background JSON blob and applies it.
// Malformed input degrades to the default background.
func (d *Dashboard) ImportBackgroundJSON(raw []byte) {
	bg := theme.NormalizeBackground(raw)
	d.SetBackground(bg)
}

// WidgetCount returns the number of widgets on the canvas.
func (d *Dashboard) WidgetCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.order)
}

// Widget returns a copy of the widget with the given id.
func (d *Dashboard) Widget(id string) (Widget, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, ok := d.widgets[id]
	if !ok {
		return Widget{}, false
	}
	return w.clone(), true
}

// Widgets returns copies of all widgets in paint order (back to front).
func (d *Dashboard) Widgets() []Widget {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Widget, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.widgets[id].clone())
	}
	return out
}

// PaintOrder returns the widget ids back to front.
func (d *Dashboard) PaintOrder() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// clampAllLocked re-clamps every widget rect against the current canvas.
func (d *Dashboard) clampAllLocked() {
	for _, w := range d.widgets {
		w.Rect = geom.ClampRect(w.Rect, float64(d.canvasW), float64(d.canvasH), MinWidgetW, MinWidgetH)
	}
}
