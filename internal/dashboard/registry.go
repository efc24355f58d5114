/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package dashboard

import (
	"fmt"

	"godashboard/internal/geom"
)

// RectPatch carries a partial geometry update; nil fields keep their current
// value.
type RectPatch struct {
	X, Y, W, H *float64
}

// F is a convenience for building RectPatch literals.
func F(v float64) *float64 { return &v }

// AddWidget creates a widget of the given kind with its default size, title,
// series, and payload, places it with a cascading offset, appends it to the
// front of the paint order, and selects it. Returns the new widget id.
func (d *Dashboard) AddWidget(kind Kind) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := fmt.Sprintf("vis%d", d.nextID)
	d.nextID++

	w, h := DefaultSize(kind)
	offset := float64((len(d.order) * 18) % 140)
	x := geom.Clamp(40+offset, 0, float64(d.canvasW)-w)
	y := geom.Clamp(40+offset, 0, float64(d.canvasH)-h)

	wd := &Widget{
		ID:     id,
		Kind:   kind,
		Title:  DefaultTitle(kind),
		Rect:   geom.ClampRect(geom.R(x, y, w, h), float64(d.canvasW), float64(d.canvasH), MinWidgetW, MinWidgetH),
		Series: DefaultSeries(kind, d.theme),
	}
	defaultPayload(wd)

	d.widgets[id] = wd
	d.order = append(d.order, id)
	d.selected = id
	return id
}

// RemoveWidget deletes a widget. Unknown ids are a no-op; removing the
// selected widget clears the selection.
func (d *Dashboard) RemoveWidget(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.widgets[id]; !ok {
		return
	}
	delete(d.widgets, id)
	for i, oid := range d.order {
		if oid == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	if d.selected == id {
		d.selected = ""
	}
}

// UpdateGeometry merges a partial rect into a widget's geometry and clamps the
// result against the canvas and minimum size. Unknown ids are a no-op.
func (d *Dashboard) UpdateGeometry(id string, patch RectPatch) {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, ok := d.widgets[id]
	if !ok {
		return
	}
	r := w.Rect
	if patch.X != nil {
		r.X = *patch.X
	}
	if patch.Y != nil {
		r.Y = *patch.Y
	}
	if patch.W != nil {
		r.W = *patch.W
	}
	if patch.H != nil {
		r.H = *patch.H
	}
	w.Rect = geom.ClampRect(r, float64(d.canvasW), float64(d.canvasH), MinWidgetW, MinWidgetH)
}

// SetTitle changes a widget's title. Unknown ids are a no-op.
func (d *Dashboard) SetTitle(id, title string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if w, ok := d.widgets[id]; ok {
		w.Title = title
	}
}

// RenameSeries changes the display name of one series. Out-of-range indexes
// and unknown ids are no-ops.
func (d *Dashboard) RenameSeries(id string, idx int, name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, ok := d.widgets[id]
	if !ok || idx < 0 || idx >= len(w.Series) {
		return
	}
	w.Series[idx].Name = name
}

// OverrideSeriesColor pins one series to an explicit color. The override
// survives later theme changes until ResetSeriesColors.
func (d *Dashboard) OverrideSeriesColor(id string, idx int, color string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, ok := d.widgets[id]
	if !ok || idx < 0 || idx >= len(w.Series) {
		return
	}
	w.Series[idx].Color = color
	w.Series[idx].OverrideColor = true
}

// ResetSeriesColors drops all color overrides on a widget and re-resolves its
// series colors from the current theme palette.
func (d *Dashboard) ResetSeriesColors(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, ok := d.widgets[id]
	if !ok {
		return
	}
	for i := range w.Series {
		w.Series[i].OverrideColor = false
		w.Series[i].Color = d.theme.PaletteColor(i)
	}
}

// SetKPI replaces a KPI widget's payload. No-op for other kinds.
func (d *Dashboard) SetKPI(id string, p KPIPayload) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if w, ok := d.widgets[id]; ok && w.KPI != nil {
		*w.KPI = p
	}
}

// SetCard replaces a card widget's payload. No-op for other kinds.
func (d *Dashboard) SetCard(id string, p CardPayload) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if w, ok := d.widgets[id]; ok && w.Card != nil {
		*w.Card = p
	}
}

// SetMultirow replaces a multi-row card widget's payload. No-op for other
// kinds.
func (d *Dashboard) SetMultirow(id string, p MultirowPayload) {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, ok := d.widgets[id]
	if !ok || w.Multirow == nil {
		return
	}
	rows := make([]MultirowRow, len(p.Rows))
	copy(rows, p.Rows)
	w.Multirow.Rows = rows
}

// SetTextBox replaces a text box widget's payload. No-op for other kinds.
func (d *Dashboard) SetTextBox(id string, p TextBoxPayload) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if w, ok := d.widgets[id]; ok && w.TextBox != nil {
		*w.TextBox = p
	}
}

// SetImageData replaces an image widget's data URL. No-op for other kinds.
func (d *Dashboard) SetImageData(id, dataURL string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if w, ok := d.widgets[id]; ok && w.Image != nil {
		w.Image.DataURL = dataURL
	}
}
