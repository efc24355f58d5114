/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"math"

	"git.sr.ht/~sbinet/gg"

	"godashboard/internal/chart"
	"godashboard/internal/theme"
)

func drawChart(dc *gg.Context, cfg chart.Config, th theme.Theme, x, y, w, h float64) {
	if cfg.Options.Legend && h > legendH*2 {
		drawLegend(dc, cfg, th, x, y+h-legendH, w)
		h -= legendH
	}
	if th.Chart.PlotBg != "" {
		dc.SetColor(ParseColor(th.Chart.PlotBg))
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()
	}
	switch cfg.Form {
	case chart.FormPie:
		drawPie(dc, cfg, x, y, w, h)
	case chart.FormBars:
		drawBars(dc, cfg, th, x, y, w, h)
	case chart.FormLines:
		drawLines(dc, cfg, th, x, y, w, h)
	case chart.FormScatter:
		drawScatter(dc, cfg, th, x, y, w, h)
	case chart.FormTreemap:
		drawTreemap(dc, cfg, x, y, w, h)
	case chart.FormRibbon:
		drawRibbon(dc, cfg, x, y, w, h)
	}
}

func drawLegend(dc *gg.Context, cfg chart.Config, th theme.Theme, x, y, w float64) {
	labelColor := ParseColor(th.TextClasses.Label.Color)
	cx := x
	for _, ds := range cfg.Datasets {
		if ds.Color == "" && len(ds.Colors) > 0 {
			// Pie-style configs carry one dataset with per-slice colors;
			// legend entries come from the labels instead.
			break
		}
		dc.SetColor(ParseColor(ds.Color))
		dc.DrawRectangle(cx, y+4, 8, 8)
		dc.Fill()
		dc.SetColor(labelColor)
		dc.DrawStringAnchored(ds.Label, cx+11, y+8, 0, 0.5)
		tw, _ := dc.MeasureString(ds.Label)
		cx += 11 + tw + 14
		if cx > x+w {
			break
		}
	}
	if len(cfg.Datasets) == 1 && len(cfg.Datasets[0].Colors) > 0 {
		for i, lbl := range cfg.Labels {
			dc.SetColor(ParseColor(cfg.Datasets[0].Colors[i%len(cfg.Datasets[0].Colors)]))
			dc.DrawRectangle(cx, y+4, 8, 8)
			dc.Fill()
			dc.SetColor(labelColor)
			dc.DrawStringAnchored(lbl, cx+11, y+8, 0, 0.5)
			tw, _ := dc.MeasureString(lbl)
			cx += 11 + tw + 14
			if cx > x+w {
				break
			}
		}
	}
}

func drawGrid(dc *gg.Context, th theme.Theme, x, y, w, h float64) {
	dc.SetColor(ParseColor(th.Chart.Grid))
	for i := 1; i <= 4; i++ {
		gy := y + h*float64(i)/4
		dc.DrawRectangle(x, gy, w, 1)
		dc.Fill()
	}
}

func drawPie(dc *gg.Context, cfg chart.Config, x, y, w, h float64) {
	if len(cfg.Datasets) == 0 {
		return
	}
	ds := cfg.Datasets[0]
	total := 0.0
	for _, v := range ds.Values {
		total += v
	}
	if total <= 0 {
		return
	}
	cx, cy := x+w/2, y+h/2
	radius := math.Min(w, h)/2 - 4
	if radius <= 0 {
		return
	}
	angle := -math.Pi / 2
	for i, v := range ds.Values {
		if v <= 0 {
			continue
		}
		sweep := v / total * 2 * math.Pi
		dc.SetColor(ParseColor(ds.Colors[i%len(ds.Colors)]))
		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, radius, angle, angle+sweep)
		dc.ClosePath()
		dc.Fill()
		angle += sweep
	}
	if cfg.Options.Donut {
		dc.SetColor(panelFill)
		dc.DrawCircle(cx, cy, radius*0.55)
		dc.Fill()
	}
}

func drawBars(dc *gg.Context, cfg chart.Config, th theme.Theme, x, y, w, h float64) {
	maxV := barMax(cfg)
	if maxV <= 0 {
		return
	}
	drawGrid(dc, th, x, y, w, h)
	n := len(cfg.Labels)
	if n == 0 {
		return
	}
	bars := barsOnly(cfg.Datasets)
	for pos := 0; pos < n; pos++ {
		if cfg.Options.Horizontal {
			slot := h / float64(n)
			drawBarSlot(dc, cfg, bars, pos, maxV, x, y+slot*float64(pos), w, slot, true)
		} else {
			slot := w / float64(n)
			drawBarSlot(dc, cfg, bars, pos, maxV, x+slot*float64(pos), y, slot, h, false)
		}
	}
	// Combo line datasets draw on top of the columns.
	for _, ds := range cfg.Datasets {
		if !ds.Line {
			continue
		}
		drawPolyline(dc, ds, maxV, x, y, w, h, false)
	}
}

// drawBarSlot renders the bars of one label position into its slot.
func drawBarSlot(dc *gg.Context, cfg chart.Config, bars []chart.Dataset, pos int, maxV, sx, sy, sw, sh float64, horizontal bool) {
	const pad = 0.15
	if cfg.Options.Stacked {
		acc := 0.0
		for _, ds := range bars {
			v := valueAt(ds, pos)
			if v <= 0 {
				continue
			}
			dc.SetColor(ParseColor(ds.Color))
			if horizontal {
				bw := v / maxV * sw
				dc.DrawRectangle(sx+acc, sy+sh*pad, bw, sh*(1-2*pad))
				acc += bw
			} else {
				bh := v / maxV * sh
				acc += bh
				dc.DrawRectangle(sx+sw*pad, sy+sh-acc, sw*(1-2*pad), bh)
			}
			dc.Fill()
		}
		return
	}
	k := len(bars)
	if k == 0 {
		return
	}
	for i, ds := range bars {
		v := valueAt(ds, pos)
		if v <= 0 {
			continue
		}
		dc.SetColor(ParseColor(ds.Color))
		if horizontal {
			lane := sh * (1 - 2*pad) / float64(k)
			dc.DrawRectangle(sx, sy+sh*pad+lane*float64(i), v/maxV*sw, lane*0.9)
		} else {
			lane := sw * (1 - 2*pad) / float64(k)
			bh := v / maxV * sh
			dc.DrawRectangle(sx+sw*pad+lane*float64(i), sy+sh-bh, lane*0.9, bh)
		}
		dc.Fill()
	}
}

func drawLines(dc *gg.Context, cfg chart.Config, th theme.Theme, x, y, w, h float64) {
	maxV := 0.0
	for _, ds := range cfg.Datasets {
		for _, v := range ds.Values {
			if v > maxV {
				maxV = v
			}
		}
	}
	if cfg.Options.Stacked {
		maxV = stackedMax(cfg.Datasets)
	}
	if maxV <= 0 {
		return
	}
	drawGrid(dc, th, x, y, w, h)
	if cfg.Options.Stacked {
		// Stacked areas paint back to front on accumulated baselines.
		acc := make([]float64, maxLen(cfg.Datasets))
		for _, ds := range cfg.Datasets {
			drawStackedArea(dc, ds, acc, maxV, x, y, w, h)
		}
		return
	}
	for _, ds := range cfg.Datasets {
		drawPolyline(dc, ds, maxV, x, y, w, h, ds.Fill)
	}
}

func drawPolyline(dc *gg.Context, ds chart.Dataset, maxV, x, y, w, h float64, fill bool) {
	n := len(ds.Values)
	if n == 0 || maxV <= 0 {
		return
	}
	step := w
	if n > 1 {
		step = w / float64(n-1)
	}
	px := func(i int) float64 { return x + step*float64(i) }
	py := func(v float64) float64 { return y + h - v/maxV*h }

	c := ParseColor(ds.Color)
	if fill {
		dc.MoveTo(px(0), py(ds.Values[0]))
		for i := 1; i < n; i++ {
			dc.LineTo(px(i), py(ds.Values[i]))
		}
		dc.LineTo(px(n-1), y+h)
		dc.LineTo(px(0), y+h)
		dc.ClosePath()
		dc.SetColor(WithAlpha(c, 0.35))
		dc.Fill()
	}
	dc.SetColor(c)
	dc.SetLineWidth(2)
	dc.MoveTo(px(0), py(ds.Values[0]))
	for i := 1; i < n; i++ {
		dc.LineTo(px(i), py(ds.Values[i]))
	}
	dc.Stroke()
}

func drawStackedArea(dc *gg.Context, ds chart.Dataset, acc []float64, maxV, x, y, w, h float64) {
	n := len(ds.Values)
	if n == 0 {
		return
	}
	step := w
	if n > 1 {
		step = w / float64(n-1)
	}
	px := func(i int) float64 { return x + step*float64(i) }
	py := func(v float64) float64 { return y + h - v/maxV*h }

	dc.MoveTo(px(0), py(acc[0]+ds.Values[0]))
	for i := 1; i < n; i++ {
		dc.LineTo(px(i), py(acc[i]+ds.Values[i]))
	}
	for i := n - 1; i >= 0; i-- {
		dc.LineTo(px(i), py(acc[i]))
	}
	dc.ClosePath()
	dc.SetColor(WithAlpha(ParseColor(ds.Color), 0.75))
	dc.Fill()
	for i := 0; i < n; i++ {
		acc[i] += ds.Values[i]
	}
}

func drawScatter(dc *gg.Context, cfg chart.Config, th theme.Theme, x, y, w, h float64) {
	drawGrid(dc, th, x, y, w, h)
	for _, ds := range cfg.Datasets {
		maxX, maxY := 0.0, 0.0
		for _, p := range ds.Points {
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
		if maxX <= 0 || maxY <= 0 {
			continue
		}
		dc.SetColor(ParseColor(ds.Color))
		for _, p := range ds.Points {
			dc.DrawCircle(x+p.X/maxX*(w-12)+6, y+h-p.Y/maxY*(h-12)-6, 4)
			dc.Fill()
		}
	}
}

func drawTreemap(dc *gg.Context, cfg chart.Config, x, y, w, h float64) {
	if len(cfg.Datasets) == 0 {
		return
	}
	ds := cfg.Datasets[0]
	for _, b := range chart.TreemapLayout(ds.Values, w, h) {
		dc.SetColor(ParseColor(ds.Colors[b.Index%len(ds.Colors)]))
		dc.DrawRectangle(x+b.X+1, y+b.Y+1, math.Max(b.W-2, 0), math.Max(b.H-2, 0))
		dc.Fill()
		if b.W > 60 && b.H > 24 && b.Index < len(cfg.Labels) {
			dc.SetColor(ParseColor("#0b0d12"))
			dc.DrawStringAnchored(cfg.Labels[b.Index], x+b.X+6, y+b.Y+12, 0, 0.5)
		}
	}
}

func drawRibbon(dc *gg.Context, cfg chart.Config, x, y, w, h float64) {
	bands := chart.RibbonBands(cfg.Datasets, 0.02)
	if len(bands) == 0 {
		return
	}
	n := 0
	for _, b := range bands {
		if len(b.Segments) > n {
			n = len(b.Segments)
		}
	}
	if n < 2 {
		return
	}
	step := w / float64(n-1)
	for _, b := range bands {
		dc.MoveTo(x, y+b.Segments[0].Top*h)
		for i := 1; i < n; i++ {
			dc.LineTo(x+step*float64(i), y+b.Segments[i].Top*h)
		}
		for i := n - 1; i >= 0; i-- {
			dc.LineTo(x+step*float64(i), y+b.Segments[i].Bottom*h)
		}
		dc.ClosePath()
		dc.SetColor(WithAlpha(ParseColor(cfg.Datasets[b.Dataset].Color), 0.85))
		dc.Fill()
	}
}

func barsOnly(ds []chart.Dataset) []chart.Dataset {
	out := make([]chart.Dataset, 0, len(ds))
	for _, d := range ds {
		if !d.Line {
			out = append(out, d)
		}
	}
	return out
}

func valueAt(ds chart.Dataset, i int) float64 {
	if i < 0 || i >= len(ds.Values) {
		return 0
	}
	return ds.Values[i]
}

func maxLen(ds []chart.Dataset) int {
	n := 0
	for _, d := range ds {
		if len(d.Values) > n {
			n = len(d.Values)
		}
	}
	return n
}

func stackedMax(ds []chart.Dataset) float64 {
	totals := make([]float64, maxLen(ds))
	for _, d := range ds {
		for i, v := range d.Values {
			totals[i] += v
		}
	}
	maxV := 0.0
	for _, t := range totals {
		if t > maxV {
			maxV = t
		}
	}
	return maxV
}

func barMax(cfg chart.Config) float64 {
	if cfg.Options.Percent {
		return 100
	}
	bars := barsOnly(cfg.Datasets)
	maxV := 0.0
	if cfg.Options.Stacked {
		maxV = stackedMax(bars)
	} else {
		for _, d := range bars {
			for _, v := range d.Values {
				if v > maxV {
					maxV = v
				}
			}
		}
	}
	// Combo lines share the scale; make sure they fit.
	for _, d := range cfg.Datasets {
		if !d.Line {
			continue
		}
		for _, v := range d.Values {
			if v > maxV {
				maxV = v
			}
		}
	}
	return maxV
}
