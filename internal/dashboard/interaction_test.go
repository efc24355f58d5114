/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package dashboard

import "testing"

func TestDragMovesWithScaleCorrection(t *testing.T) {
	d := New()
	id := d.AddWidget(KindLine)
	start, _ := d.Widget(id)

	it := NewInteraction(d)
	if !it.BeginDrag(id, 100, 100, 0.5) {
		t.Fatalf("begin drag failed")
	}
	it.Move(110, 120) // 10,20 screen px at 0.5 zoom = 20,40 canvas units
	w, _ := d.Widget(id)
	if w.Rect.X != start.Rect.X+20 || w.Rect.Y != start.Rect.Y+40 {
		t.Fatalf("scale-corrected drag wrong: got (%v,%v), want (%v,%v)",
			w.Rect.X, w.Rect.Y, start.Rect.X+20, start.Rect.Y+40)
	}
	if gotID, changed := it.End(); gotID != id || !changed {
		t.Fatalf("End = (%q,%v), want (%q,true)", gotID, changed, id)
	}
	if it.State() != StateIdle {
		t.Fatalf("interaction should be idle after End")
	}
}

func TestDragClampsToCanvas(t *testing.T) {
	d := New()
	id := d.AddWidget(KindLine)

	it := NewInteraction(d)
	it.BeginDrag(id, 0, 0, 1)
	it.Move(-10000, -10000)
	w, _ := d.Widget(id)
	if w.Rect.X != 0 || w.Rect.Y != 0 {
		t.Fatalf("drag should clamp at origin, got (%v,%v)", w.Rect.X, w.Rect.Y)
	}
	it.Move(10000, 10000)
	w, _ = d.Widget(id)
	cw, ch := d.CanvasSize()
	if w.Rect.X+w.Rect.W != float64(cw) || w.Rect.Y+w.Rect.H != float64(ch) {
		t.Fatalf("drag should clamp at far edge, got %+v", w.Rect)
	}
	it.End()
}

func TestSecondPointerDownIgnored(t *testing.T) {
	d := New()
	a := d.AddWidget(KindLine)
	b := d.AddWidget(KindPie)

	it := NewInteraction(d)
	if !it.BeginDrag(a, 0, 0, 1) {
		t.Fatalf("first begin failed")
	}
	if it.BeginDrag(b, 0, 0, 1) {
		t.Fatalf("second pointer-down must be ignored")
	}
	if it.BeginResize(b, HandleSE, 0, 0, 1) {
		t.Fatalf("resize during drag must be ignored")
	}
	if it.ActiveID() != a {
		t.Fatalf("active gesture hijacked: %q", it.ActiveID())
	}
	it.End()
}

func TestBeginRejectsUnknownIDAndHandle(t *testing.T) {
	d := New()
	id := d.AddWidget(KindLine)
	it := NewInteraction(d)
	if it.BeginDrag("ghost", 0, 0, 1) {
		t.Fatalf("unknown id must not start a drag")
	}
	if it.BeginResize(id, "x", 0, 0, 1) {
		t.Fatalf("bogus handle must not start a resize")
	}
	if it.State() != StateIdle {
		t.Fatalf("state should stay idle")
	}
}

func TestResizeWestKeepsRightEdge(t *testing.T) {
	d := New()
	id := d.AddWidget(KindLine)
	start, _ := d.Widget(id)
	right := start.Rect.X + start.Rect.W

	it := NewInteraction(d)
	if !it.BeginResize(id, HandleW, 500, 500, 1) {
		t.Fatalf("begin resize failed")
	}
	it.Move(460, 500) // pull west edge 40 left
	w, _ := d.Widget(id)
	if w.Rect.W != start.Rect.W+40 {
		t.Fatalf("width should grow by 40, got %v", w.Rect.W-start.Rect.W)
	}
	if w.Rect.X+w.Rect.W != right {
		t.Fatalf("right edge moved: %v != %v", w.Rect.X+w.Rect.W, right)
	}
	it.End()
}

func TestResizeClampsAtMinimumSize(t *testing.T) {
	d := New()
	id := d.AddWidget(KindLine)
	start, _ := d.Widget(id)
	bottom := start.Rect.Y + start.Rect.H

	it := NewInteraction(d)
	it.BeginResize(id, HandleNW, 0, 0, 1)
	it.Move(10000, 10000) // shove both edges far past the opposite side
	w, _ := d.Widget(id)
	if w.Rect.W != MinWidgetW || w.Rect.H != MinWidgetH {
		t.Fatalf("resize should stop at minimum, got %vx%v", w.Rect.W, w.Rect.H)
	}
	if w.Rect.Y+w.Rect.H != bottom {
		t.Fatalf("north resize must keep bottom edge, got %v want %v", w.Rect.Y+w.Rect.H, bottom)
	}
	it.End()
}

func TestResizeCornerGrowsBothAxes(t *testing.T) {
	d := New()
	id := d.AddWidget(KindLine)
	start, _ := d.Widget(id)

	it := NewInteraction(d)
	it.BeginResize(id, HandleSE, 0, 0, 2)
	it.Move(30, 20) // at 2x zoom: +15, +10 canvas units
	w, _ := d.Widget(id)
	if w.Rect.W != start.Rect.W+15 || w.Rect.H != start.Rect.H+10 {
		t.Fatalf("corner resize wrong: %vx%v, want %vx%v",
			w.Rect.W, w.Rect.H, start.Rect.W+15, start.Rect.H+10)
	}
	it.End()
}

func TestCancelRestoresAnchor(t *testing.T) {
	d := New()
	id := d.AddWidget(KindLine)
	start, _ := d.Widget(id)

	it := NewInteraction(d)
	it.BeginDrag(id, 0, 0, 1)
	it.Move(120, 80)
	it.Cancel()

	w, _ := d.Widget(id)
	if w.Rect != start.Rect {
		t.Fatalf("cancel should restore geometry: got %+v, want %+v", w.Rect, start.Rect)
	}
	if it.State() != StateIdle {
		t.Fatalf("interaction should be idle after Cancel")
	}
}

func TestEndWithoutMoveReportsUnchanged(t *testing.T) {
	d := New()
	id := d.AddWidget(KindLine)
	it := NewInteraction(d)
	it.BeginDrag(id, 50, 50, 1)
	if _, changed := it.End(); changed {
		t.Fatalf("no movement should report unchanged")
	}
}

func TestBeginDragSelectsAndRaises(t *testing.T) {
	d := New()
	a := d.AddWidget(KindLine)
	b := d.AddWidget(KindPie)
	_ = b

	it := NewInteraction(d)
	it.BeginDrag(a, 0, 0, 1)
	if d.SelectedID() != a {
		t.Fatalf("drag should select its widget")
	}
	order := d.PaintOrder()
	if order[len(order)-1] != a {
		t.Fatalf("drag should raise its widget, order %v", order)
	}
	it.End()
}
