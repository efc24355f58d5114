/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package chart

import (
	"math"
	"testing"

	"godashboard/internal/dashboard"
	"godashboard/internal/theme"
)

func widgetOf(kind dashboard.Kind) dashboard.Widget {
	d := dashboard.New()
	id := d.AddWidget(kind)
	w, _ := d.Widget(id)
	return w
}

func TestBuildSkipsNonChartKinds(t *testing.T) {
	th := theme.Default()
	for _, k := range []dashboard.Kind{
		dashboard.KindKPI, dashboard.KindCard, dashboard.KindMultirowCard,
		dashboard.KindTextBox, dashboard.KindImage,
	} {
		if _, ok := Build(widgetOf(k), th); ok {
			t.Fatalf("%s must not build a chart config", k)
		}
	}
}

func TestBuildPieUsesSeriesNamesAndColors(t *testing.T) {
	d := dashboard.New()
	id := d.AddWidget(dashboard.KindPie)
	d.RenameSeries(id, 0, "Gadgets")
	d.OverrideSeriesColor(id, 2, "#123456")
	w, _ := d.Widget(id)

	c, ok := Build(w, d.Theme())
	if !ok || c.Form != FormPie {
		t.Fatalf("expected pie config, got %+v ok=%v", c.Form, ok)
	}
	if c.Labels[0] != "Gadgets" {
		t.Fatalf("renamed series should drive the label, got %q", c.Labels[0])
	}
	if c.Datasets[0].Colors[2] != "#123456" {
		t.Fatalf("override color should drive the slice, got %q", c.Datasets[0].Colors[2])
	}
	if len(c.Datasets[0].Values) != len(dashboard.Categories()) {
		t.Fatalf("one value per category expected")
	}
	if c.Options.Donut {
		t.Fatalf("pie must not be a donut")
	}
}

func TestBuildDonutSetsHole(t *testing.T) {
	c, ok := Build(widgetOf(dashboard.KindDonut), theme.Default())
	if !ok || !c.Options.Donut {
		t.Fatalf("donut should set the hole option")
	}
}

func TestBuildLinePerRegion(t *testing.T) {
	c, ok := Build(widgetOf(dashboard.KindLine), theme.Default())
	if !ok || c.Form != FormLines {
		t.Fatalf("expected line config")
	}
	if len(c.Datasets) != len(dashboard.Regions()) {
		t.Fatalf("one dataset per region, got %d", len(c.Datasets))
	}
	for _, ds := range c.Datasets {
		if !ds.Line || len(ds.Values) != 12 {
			t.Fatalf("line datasets need 12 monthly values: %+v", ds.Label)
		}
	}
}

func TestBuildPercentStackedSumsTo100(t *testing.T) {
	c, ok := Build(widgetOf(dashboard.KindStackedColumn100), theme.Default())
	if !ok || !c.Options.Percent || !c.Options.Stacked {
		t.Fatalf("expected percent stacked options, got %+v", c.Options)
	}
	for i := 0; i < 12; i++ {
		sum := 0.0
		for _, ds := range c.Datasets {
			sum += ds.Values[i]
		}
		if math.Abs(sum-100) > 1e-9 {
			t.Fatalf("month %d sums to %v, want 100", i, sum)
		}
	}
}

func TestBuildComboAddsProfitLine(t *testing.T) {
	c, ok := Build(widgetOf(dashboard.KindLineStackedColumn), theme.Default())
	if !ok || c.Form != FormBars {
		t.Fatalf("expected bars form for combo")
	}
	last := c.Datasets[len(c.Datasets)-1]
	if !last.Line || last.Label != "Profit" {
		t.Fatalf("combo should end with a profit line, got %+v", last.Label)
	}
	if !c.Options.Stacked {
		t.Fatalf("stacked combo should stack its columns")
	}
}

func TestBuildScatterPoints(t *testing.T) {
	c, ok := Build(widgetOf(dashboard.KindScatter), theme.Default())
	if !ok || c.Form != FormScatter {
		t.Fatalf("expected scatter config")
	}
	if len(c.Datasets[0].Points) != len(dashboard.Categories()) {
		t.Fatalf("one point per category expected")
	}
}

func TestBuildUnknownKindFallsBackToLine(t *testing.T) {
	w := widgetOf(dashboard.KindLine)
	w.Kind = dashboard.Kind("flux-capacitor")
	c, ok := Build(w, theme.Default())
	if !ok || c.Form != FormLines {
		t.Fatalf("unknown kind should fall back to a line chart")
	}
}

func TestToPercentStackedZeroTotal(t *testing.T) {
	ds := []Dataset{
		{Values: []float64{0, 2}},
		{Values: []float64{0, 6}},
	}
	out := ToPercentStacked(ds)
	if out[0].Values[0] != 0 || out[1].Values[0] != 0 {
		t.Fatalf("zero total positions must stay zero")
	}
	if out[0].Values[1] != 25 || out[1].Values[1] != 75 {
		t.Fatalf("shares wrong: %v %v", out[0].Values[1], out[1].Values[1])
	}
	if ds[0].Values[1] != 2 {
		t.Fatalf("input datasets must not be mutated")
	}
}

func TestTreemapLayoutCoversAreaInOrder(t *testing.T) {
	values := []float64{40, 30, 0, 20, 10}
	boxes := TreemapLayout(values, 400, 300)
	if len(boxes) != 4 {
		t.Fatalf("zero values get no tile; want 4 boxes, got %d", len(boxes))
	}
	area := 0.0
	for _, b := range boxes {
		if b.W <= 0 || b.H <= 0 {
			t.Fatalf("degenerate tile: %+v", b)
		}
		if b.X < -1e-9 || b.Y < -1e-9 || b.X+b.W > 400+1e-9 || b.Y+b.H > 300+1e-9 {
			t.Fatalf("tile outside area: %+v", b)
		}
		area += b.W * b.H
	}
	if math.Abs(area-400*300) > 1e-6 {
		t.Fatalf("tiles should cover the area exactly, got %v", area)
	}
	// Tile areas proportional to values.
	if math.Abs(boxes[0].W*boxes[0].H-0.4*400*300) > 1e-6 {
		t.Fatalf("first tile area off: %v", boxes[0].W*boxes[0].H)
	}
	if boxes[2].Index != 3 {
		t.Fatalf("indexes should skip zero values, got %d", boxes[2].Index)
	}
}

func TestTreemapLayoutEmpty(t *testing.T) {
	if boxes := TreemapLayout(nil, 100, 100); boxes != nil {
		t.Fatalf("no values should give no boxes")
	}
	if boxes := TreemapLayout([]float64{0, -5}, 100, 100); boxes != nil {
		t.Fatalf("non-positive values should give no boxes")
	}
}

func TestRibbonBandsRankAndCross(t *testing.T) {
	ds := []Dataset{
		{Values: []float64{10, 1}},
		{Values: []float64{1, 10}},
	}
	bands := RibbonBands(ds, 0)
	if len(bands) != 2 {
		t.Fatalf("one band per dataset")
	}
	// Position 0: dataset 0 is larger and sits on top (smaller Top value).
	if bands[0].Segments[0].Top >= bands[1].Segments[0].Top {
		t.Fatalf("larger series should rank on top at position 0")
	}
	// Position 1: ranks flip, bands cross.
	if bands[1].Segments[1].Top >= bands[0].Segments[1].Top {
		t.Fatalf("bands should cross when ranks flip")
	}
	// Segments tile 0..1 when gap is 0.
	bottom := bands[0].Segments[0].Bottom + (bands[1].Segments[0].Bottom - bands[1].Segments[0].Top)
	if math.Abs(bottom-1) > 1e-9 {
		t.Fatalf("segments should fill the unit height, got %v", bottom)
	}
}

func TestRibbonBandsGapReservesSpace(t *testing.T) {
	ds := []Dataset{
		{Values: []float64{5}},
		{Values: []float64{5}},
	}
	bands := RibbonBands(ds, 0.1)
	h0 := bands[0].Segments[0].Bottom - bands[0].Segments[0].Top
	h1 := bands[1].Segments[0].Bottom - bands[1].Segments[0].Top
	if math.Abs(h0+h1-0.9) > 1e-9 {
		t.Fatalf("gap should reserve 0.1, segment heights sum to %v", h0+h1)
	}
}
