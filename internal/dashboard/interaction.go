/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package dashboard

import (
	"strings"

	"godashboard/internal/geom"
)

// InteractionState is the pointer gesture phase.
type InteractionState int

const (
	StateIdle InteractionState = iota
	StateDragging
	StateResizing
)

// Resize handle names. Corner handles combine the letters of their edges.
const (
	HandleN  = "n"
	HandleS  = "s"
	HandleE  = "e"
	HandleW  = "w"
	HandleNE = "ne"
	HandleNW = "nw"
	HandleSE = "se"
	HandleSW = "sw"
)

// Interaction runs one drag or resize gesture against a dashboard. The zoom
// scale is captured at gesture start so pointer deltas stay consistent even if
// the view rescales mid-gesture. A second pointer-down while a gesture is
// active is ignored.
//
// Interaction is driven from a single UI goroutine and is not itself
// concurrency-safe; the dashboard it mutates is.
type Interaction struct {
	d      *Dashboard
	state  InteractionState
	id     string
	handle string
	startX float64
	startY float64
	scale  float64
	anchor geom.Rect
}

// NewInteraction returns an idle interaction controller for d.
func NewInteraction(d *Dashboard) *Interaction {
	return &Interaction{d: d}
}

// State returns the current gesture phase.
func (it *Interaction) State() InteractionState { return it.state }

// ActiveID returns the widget id of the running gesture, or "" when idle.
func (it *Interaction) ActiveID() string {
	if it.state == StateIdle {
		return ""
	}
	return it.id
}

// BeginDrag starts a drag gesture on a widget at the given pointer position
// (screen pixels) and zoom scale. The widget is selected and brought to the
// front. Returns false when a gesture is already active or the id is unknown.
func (it *Interaction) BeginDrag(id string, px, py, scale float64) bool {
	w, ok := it.begin(id, px, py, scale)
	if !ok {
		return false
	}
	it.state = StateDragging
	it.anchor = w.Rect
	return true
}

// BeginResize starts a resize gesture on a widget for the given handle.
// Returns false when a gesture is already active, the id is unknown, or the
// handle name is not one of the eight handles.
func (it *Interaction) BeginResize(id, handle string, px, py, scale float64) bool {
	switch handle {
	case HandleN, HandleS, HandleE, HandleW, HandleNE, HandleNW, HandleSE, HandleSW:
	default:
		return false
	}
	w, ok := it.begin(id, px, py, scale)
	if !ok {
		return false
	}
	it.state = StateResizing
	it.handle = handle
	it.anchor = w.Rect
	return true
}

func (it *Interaction) begin(id string, px, py, scale float64) (Widget, bool) {
	if it.state != StateIdle {
		return Widget{}, false
	}
	w, ok := it.d.Widget(id)
	if !ok {
		return Widget{}, false
	}
	it.d.Select(id)
	it.id = id
	it.startX = px
	it.startY = py
	if scale <= 0 {
		scale = 1
	}
	it.scale = scale
	return w, true
}

// Move updates the active gesture with the current pointer position in screen
// pixels, applying the clamped geometry to the widget. No-op while idle.
func (it *Interaction) Move(px, py float64) {
	if it.state == StateIdle {
		return
	}
	dx, dy := geom.ScaleDelta(px-it.startX, py-it.startY, it.scale)
	cw, ch := it.d.CanvasSize()
	canvasW, canvasH := float64(cw), float64(ch)

	r := it.anchor
	switch it.state {
	case StateDragging:
		r.X = geom.Clamp(it.anchor.X+dx, 0, canvasW-it.anchor.W)
		r.Y = geom.Clamp(it.anchor.Y+dy, 0, canvasH-it.anchor.H)
	case StateResizing:
		if strings.Contains(it.handle, HandleE) {
			r.W = geom.Clamp(it.anchor.W+dx, MinWidgetW, canvasW-it.anchor.X)
		}
		if strings.Contains(it.handle, HandleW) {
			r.W = geom.Clamp(it.anchor.W-dx, MinWidgetW, it.anchor.X+it.anchor.W)
			r.X = it.anchor.X + it.anchor.W - r.W
		}
		if strings.Contains(it.handle, HandleS) {
			r.H = geom.Clamp(it.anchor.H+dy, MinWidgetH, canvasH-it.anchor.Y)
		}
		if strings.Contains(it.handle, HandleN) {
			r.H = geom.Clamp(it.anchor.H-dy, MinWidgetH, it.anchor.Y+it.anchor.H)
			r.Y = it.anchor.Y + it.anchor.H - r.H
		}
	}
	it.d.UpdateGeometry(it.id, RectPatch{X: &r.X, Y: &r.Y, W: &r.W, H: &r.H})
}

// End commits the active gesture and returns to idle. It reports the widget
// id and whether its geometry actually changed, so callers can decide whether
// to record an undo step.
func (it *Interaction) End() (id string, changed bool) {
	if it.state == StateIdle {
		return "", false
	}
	id = it.id
	if w, ok := it.d.Widget(id); ok {
		changed = w.Rect != it.anchor
	}
	it.reset()
	return id, changed
}

// Cancel aborts the active gesture and restores the widget's geometry from
// the gesture anchor. No-op while idle.
func (it *Interaction) Cancel() {
	if it.state == StateIdle {
		return
	}
	r := it.anchor
	it.d.UpdateGeometry(it.id, RectPatch{X: &r.X, Y: &r.Y, W: &r.W, H: &r.H})
	it.reset()
}

func (it *Interaction) reset() {
	it.state = StateIdle
	it.id = ""
	it.handle = ""
	it.scale = 0
	it.anchor = geom.Rect{}
}
