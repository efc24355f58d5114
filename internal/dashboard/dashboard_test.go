/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package dashboard

import (
	"reflect"
	"testing"

	"godashboard/internal/theme"
)

func TestAddWidgetDefaultsAndSelection(t *testing.T) {
	d := New()
	id := d.AddWidget(KindPie)
	if id != "vis1" {
		t.Fatalf("expected first id vis1, got %q", id)
	}
	if d.SelectedID() != id {
		t.Fatalf("new widget should be selected, got %q", d.SelectedID())
	}
	w, ok := d.Widget(id)
	if !ok {
		t.Fatalf("widget %q not found", id)
	}
	if w.Title != "Sales by Category" {
		t.Fatalf("unexpected default title %q", w.Title)
	}
	if len(w.Series) != len(Categories()) {
		t.Fatalf("pie should get one series per category, got %d", len(w.Series))
	}
	if w.Series[0].Color != theme.Default().PaletteColor(0) {
		t.Fatalf("series color should come from theme palette, got %q", w.Series[0].Color)
	}
}

func TestAddWidgetCascadeOffset(t *testing.T) {
	d := New()
	a := d.AddWidget(KindLine)
	b := d.AddWidget(KindLine)
	wa, _ := d.Widget(a)
	wb, _ := d.Widget(b)
	if wb.Rect.X-wa.Rect.X != 18 || wb.Rect.Y-wa.Rect.Y != 18 {
		t.Fatalf("second widget should cascade by 18, got dx=%v dy=%v", wb.Rect.X-wa.Rect.X, wb.Rect.Y-wa.Rect.Y)
	}
}

func TestRemoveWidgetIdempotentAndClearsSelection(t *testing.T) {
	d := New()
	id := d.AddWidget(KindCard)
	d.RemoveWidget(id)
	if d.WidgetCount() != 0 {
		t.Fatalf("widget not removed")
	}
	if d.SelectedID() != "" {
		t.Fatalf("selection should clear on removal, got %q", d.SelectedID())
	}
	d.RemoveWidget(id) // second removal is a no-op
	d.RemoveWidget("nope")
}

func TestUnknownIDOperationsAreNoOps(t *testing.T) {
	d := New()
	d.UpdateGeometry("ghost", RectPatch{X: F(10)})
	d.SetTitle("ghost", "x")
	d.RenameSeries("ghost", 0, "x")
	d.OverrideSeriesColor("ghost", 0, "#fff")
	d.ResetSeriesColors("ghost")
	d.SetKPI("ghost", KPIPayload{})
	if d.WidgetCount() != 0 {
		t.Fatalf("no-op operations must not create state")
	}
}

func TestUpdateGeometryClampsSizeBeforePosition(t *testing.T) {
	d := New() // 1280x720
	id := d.AddWidget(KindLine)
	d.UpdateGeometry(id, RectPatch{X: F(5000), Y: F(5000), W: F(9000), H: F(9000)})
	w, _ := d.Widget(id)
	if w.Rect.W != 1280 || w.Rect.H != 720 {
		t.Fatalf("size should clamp to canvas, got %vx%v", w.Rect.W, w.Rect.H)
	}
	if w.Rect.X != 0 || w.Rect.Y != 0 {
		t.Fatalf("position should clamp against clamped size, got (%v,%v)", w.Rect.X, w.Rect.Y)
	}

	d.UpdateGeometry(id, RectPatch{W: F(1), H: F(1)})
	w, _ = d.Widget(id)
	if w.Rect.W != MinWidgetW || w.Rect.H != MinWidgetH {
		t.Fatalf("minimum size not enforced, got %vx%v", w.Rect.W, w.Rect.H)
	}
}

func TestSelectBringsToFrontPreservingRelativeOrder(t *testing.T) {
	d := New()
	a := d.AddWidget(KindLine)
	b := d.AddWidget(KindPie)
	c := d.AddWidget(KindCard)

	d.Select(a)
	want := []string{b, c, a}
	if got := d.PaintOrder(); !reflect.DeepEqual(got, want) {
		t.Fatalf("paint order after select = %v, want %v", got, want)
	}

	// Re-selecting the frontmost widget keeps the order stable.
	d.Select(a)
	if got := d.PaintOrder(); !reflect.DeepEqual(got, want) {
		t.Fatalf("re-select changed order: %v", got)
	}

	d.Select("")
	if d.SelectedID() != "" {
		t.Fatalf("empty select should clear selection")
	}
	if got := d.PaintOrder(); !reflect.DeepEqual(got, want) {
		t.Fatalf("clearing selection must not reorder: %v", got)
	}
}

func TestSetCanvasSizeClampsAndReclampsWidgets(t *testing.T) {
	d := New()
	id := d.AddWidget(KindLine)
	d.UpdateGeometry(id, RectPatch{X: F(700), Y: F(380), W: F(520), H: F(300)})

	d.SetCanvasSize(100, 50) // below minimums
	cw, ch := d.CanvasSize()
	if cw != MinCanvasW || ch != MinCanvasH {
		t.Fatalf("canvas should clamp to %dx%d, got %dx%d", MinCanvasW, MinCanvasH, cw, ch)
	}
	w, _ := d.Widget(id)
	if w.Rect.X+w.Rect.W > float64(cw) || w.Rect.Y+w.Rect.H > float64(ch) {
		t.Fatalf("widget sticks out of shrunk canvas: %+v", w.Rect)
	}

	d.SetCanvasSize(9999, 9999)
	cw, ch = d.CanvasSize()
	if cw != MaxCanvasW || ch != MaxCanvasH {
		t.Fatalf("canvas should clamp to %dx%d, got %dx%d", MaxCanvasW, MaxCanvasH, cw, ch)
	}
}

func TestFitScaleNeverMagnifies(t *testing.T) {
	d := New()
	if s := d.FitScale(5000, 5000); s != 1 {
		t.Fatalf("oversized viewport should give scale 1, got %v", s)
	}
	if s := d.FitScale(640, 360); s > 0.5 {
		t.Fatalf("small viewport scale should be <= 0.5, got %v", s)
	}
}

func TestThemeSwapPreservesOverrides(t *testing.T) {
	d := New()
	id := d.AddWidget(KindLine)
	d.OverrideSeriesColor(id, 1, "#ff0000")

	d.SetTheme(theme.Sample())
	w, _ := d.Widget(id)
	if w.Series[1].Color != "#ff0000" || !w.Series[1].OverrideColor {
		t.Fatalf("override lost on theme swap: %+v", w.Series[1])
	}
	if w.Series[0].Color != theme.Sample().PaletteColor(0) {
		t.Fatalf("non-override series should follow new palette, got %q", w.Series[0].Color)
	}

	d.ResetSeriesColors(id)
	w, _ = d.Widget(id)
	if w.Series[1].OverrideColor || w.Series[1].Color != theme.Sample().PaletteColor(1) {
		t.Fatalf("reset should drop override and re-resolve palette: %+v", w.Series[1])
	}
}

func TestImportThemeJSONKeepsStateOnError(t *testing.T) {
	d := New()
	d.SetTheme(theme.Sample())
	if err := d.ImportThemeJSON([]byte("{not json")); err == nil {
		t.Fatalf("expected parse error")
	}
	if !reflect.DeepEqual(d.Theme(), theme.Sample()) {
		t.Fatalf("failed import must keep previous theme")
	}
}

func TestWidgetAccessorsReturnCopies(t *testing.T) {
	d := New()
	id := d.AddWidget(KindKPI)
	w, _ := d.Widget(id)
	w.KPI.Value = "mutated"
	w.Title = "mutated"

	again, _ := d.Widget(id)
	if again.KPI.Value == "mutated" || again.Title == "mutated" {
		t.Fatalf("accessor leaked internal state")
	}
}

func TestPayloadUpdates(t *testing.T) {
	d := New()
	kpi := d.AddWidget(KindKPI)
	d.SetKPI(kpi, KPIPayload{Label: "Revenue", Value: "1M"})
	w, _ := d.Widget(kpi)
	if w.KPI.Label != "Revenue" || w.KPI.Value != "1M" {
		t.Fatalf("kpi payload not updated: %+v", w.KPI)
	}

	// Payload setters are kind-checked.
	d.SetCard(kpi, CardPayload{Label: "x"})
	w, _ = d.Widget(kpi)
	if w.Card != nil {
		t.Fatalf("card payload must not attach to a kpi widget")
	}

	tb := d.AddWidget(KindTextBox)
	d.SetTextBox(tb, TextBoxPayload{Text: "hello", FontSize: 24, Bold: true, Align: "center"})
	w, _ = d.Widget(tb)
	if w.TextBox.Text != "hello" || !w.TextBox.Bold {
		t.Fatalf("text box payload not updated: %+v", w.TextBox)
	}
}

func TestSeriesRename(t *testing.T) {
	d := New()
	id := d.AddWidget(KindStackedBar)
	d.RenameSeries(id, 0, "Nord")
	d.RenameSeries(id, 99, "out of range")
	w, _ := d.Widget(id)
	if w.Series[0].Name != "Nord" {
		t.Fatalf("rename failed: %+v", w.Series[0])
	}
	if w.Series[0].Key != "North" {
		t.Fatalf("rename must not touch the key: %+v", w.Series[0])
	}
}

func TestHitTestRegions(t *testing.T) {
	d := New()
	id := d.AddWidget(KindLine)
	w, _ := d.Widget(id)
	r := w.Rect

	if h := d.HitTest(r.X+r.W/2, r.Y+10); h.ID != id || h.Region != RegionHeader {
		t.Fatalf("expected header hit, got %+v", h)
	}
	if h := d.HitTest(r.X+r.W/2, r.Y+r.H/2); h.ID != id || h.Region != RegionBody {
		t.Fatalf("expected body hit, got %+v", h)
	}
	if h := d.HitTest(r.X+r.W, r.Y+r.H); h.Region != RegionHandle || h.Handle != HandleSE {
		t.Fatalf("expected se handle, got %+v", h)
	}
	if h := d.HitTest(r.X, r.Y+r.H/2); h.Region != RegionHandle || h.Handle != HandleW {
		t.Fatalf("expected w handle, got %+v", h)
	}
	if h := d.HitTest(5, 5); h.ID != "" || h.Region != RegionNone {
		t.Fatalf("expected empty hit, got %+v", h)
	}

	// The hit classification enum lives next to the demo dataset's Region
	// rows; both types must stay usable side by side.
	var cls HitRegion = d.HitTest(r.X, r.Y).Region
	if cls != RegionHandle {
		t.Fatalf("corner should hit a handle, got %v", cls)
	}
	if rows := Regions(); len(rows) == 0 || rows[0].Name == "" {
		t.Fatalf("demo dataset regions missing")
	}
}

func TestHitTestFrontmostWins(t *testing.T) {
	d := New()
	a := d.AddWidget(KindLine)
	b := d.AddWidget(KindLine)
	d.UpdateGeometry(b, RectPatch{X: F(40), Y: F(40)}) // fully overlap a

	wa, _ := d.Widget(a)
	h := d.HitTest(wa.Rect.X+50, wa.Rect.Y+50)
	if h.ID != b {
		t.Fatalf("frontmost widget should win the hit, got %q", h.ID)
	}
}
