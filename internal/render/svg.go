/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"godashboard/internal/chart"
	"godashboard/internal/dashboard"
	"godashboard/internal/theme"
)

// WriteSVG renders the dashboard as a standalone SVG document at 1:1 canvas
// units.
func WriteSVG(d *dashboard.Dashboard, out io.Writer) {
	cw, ch := d.CanvasSize()
	th := d.Theme()
	bg := d.Background()

	s := svg.New(out)
	s.Start(cw, ch)
	s.Rect(0, 0, cw, ch, fill(ParseColor(th.Background)))
	if bg.Color != "" {
		s.Rect(0, 0, cw, ch, fill(WithAlpha(ParseColor(bg.Color), bg.Opacity)))
	}
	for _, w := range d.Widgets() {
		svgWidget(s, w, th)
	}
	s.End()
}

func svgWidget(s *svg.SVG, w dashboard.Widget, th theme.Theme) {
	r := w.Rect
	s.Roundrect(ri(r.X), ri(r.Y), ri(r.W), ri(r.H), panelRadius, panelRadius,
		fill(panelFill)+";stroke:"+CSS(panelBorder)+";stroke-width:1.5")
	s.Text(ri(r.X+bodyInset), ri(r.Y+dashboard.HeaderHeight/2+4), w.Title,
		fill(ParseColor(th.TextClasses.Title.Color))+";font-family:sans-serif;font-size:12px")

	bx := r.X + bodyInset
	by := r.Y + dashboard.HeaderHeight
	bw := r.W - 2*bodyInset
	bh := r.H - dashboard.HeaderHeight - bodyInset
	if bw <= 0 || bh <= 0 {
		return
	}

	if cfg, ok := chart.Build(w, th); ok {
		svgChart(s, cfg, bx, by, bw, bh)
		return
	}
	fg := fill(ParseColor(th.Foreground)) + ";font-family:sans-serif"
	label := fill(ParseColor(th.TextClasses.Label.Color)) + ";font-family:sans-serif;font-size:11px"
	switch w.Kind {
	case dashboard.KindKPI:
		if w.KPI != nil {
			s.Text(ri(bx+bw/2), ri(by+bh*0.35), w.KPI.Label, label+";text-anchor:middle")
			s.Text(ri(bx+bw/2), ri(by+bh*0.65), w.KPI.Value, fg+";font-size:26px;text-anchor:middle")
		}
	case dashboard.KindCard:
		if w.Card != nil {
			s.Text(ri(bx+bw/2), ri(by+bh*0.45), w.Card.Value, fg+";font-size:22px;text-anchor:middle")
			s.Text(ri(bx+bw/2), ri(by+bh*0.7), w.Card.Label, label+";text-anchor:middle")
		}
	case dashboard.KindMultirowCard:
		if w.Multirow != nil {
			for i, row := range w.Multirow.Rows {
				cy := ri(by + 22*float64(i) + 14)
				s.Text(ri(bx+4), cy, row.Label, label)
				s.Text(ri(bx+bw-4), cy, row.Value, fg+";font-size:12px;text-anchor:end")
			}
		}
	case dashboard.KindTextBox:
		if w.TextBox != nil {
			anchor, tx := "start", bx
			switch w.TextBox.Align {
			case "center":
				anchor, tx = "middle", bx+bw/2
			case "right":
				anchor, tx = "end", bx+bw
			}
			weight := ""
			if w.TextBox.Bold {
				weight = ";font-weight:bold"
			}
			if w.TextBox.Background != "" {
				s.Rect(ri(bx), ri(by), ri(bw), ri(bh), fill(ParseColor(w.TextBox.Background)))
			}
			s.Text(ri(tx), ri(by+18), w.TextBox.Text,
				fill(ParseColor(w.TextBox.Color))+fmt.Sprintf(";font-family:sans-serif;font-size:%dpx;text-anchor:%s%s",
					ri(math.Max(w.TextBox.FontSize, 8)), anchor, weight))
		}
	case dashboard.KindImage:
		if w.Image != nil && w.Image.DataURL != "" {
			s.Image(ri(bx), ri(by), ri(bw), ri(bh), w.Image.DataURL, `preserveAspectRatio="xMidYMid meet"`)
		} else {
			s.Text(ri(bx+bw/2), ri(by+bh/2), "No image", label+";text-anchor:middle")
		}
	}
}

func svgChart(s *svg.SVG, cfg chart.Config, x, y, w, h float64) {
	if cfg.Options.Legend && h > legendH*2 {
		h -= legendH
	}
	switch cfg.Form {
	case chart.FormPie:
		svgPie(s, cfg, x, y, w, h)
	case chart.FormBars, chart.FormLines, chart.FormScatter:
		svgPlot(s, cfg, x, y, w, h)
	case chart.FormTreemap:
		if len(cfg.Datasets) > 0 {
			ds := cfg.Datasets[0]
			for _, b := range chart.TreemapLayout(ds.Values, w, h) {
				s.Rect(ri(x+b.X+1), ri(y+b.Y+1), ri(math.Max(b.W-2, 1)), ri(math.Max(b.H-2, 1)),
					fill(ParseColor(ds.Colors[b.Index%len(ds.Colors)])))
			}
		}
	case chart.FormRibbon:
		svgRibbon(s, cfg, x, y, w, h)
	}
}

func svgPie(s *svg.SVG, cfg chart.Config, x, y, w, h float64) {
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
	angle := -math.Pi / 2
	for i, v := range ds.Values {
		if v <= 0 {
			continue
		}
		sweep := v / total * 2 * math.Pi
		large := 0
		if sweep > math.Pi {
			large = 1
		}
		x0, y0 := cx+radius*math.Cos(angle), cy+radius*math.Sin(angle)
		x1, y1 := cx+radius*math.Cos(angle+sweep), cy+radius*math.Sin(angle+sweep)
		s.Path(fmt.Sprintf("M%d,%d L%.2f,%.2f A%.2f,%.2f 0 %d 1 %.2f,%.2f Z",
			ri(cx), ri(cy), x0, y0, radius, radius, large, x1, y1),
			fill(ParseColor(ds.Colors[i%len(ds.Colors)])))
		angle += sweep
	}
	if cfg.Options.Donut {
		s.Circle(ri(cx), ri(cy), ri(radius*0.55), fill(panelFill))
	}
}

// svgPlot covers bars, lines, and scatter with one max-scaled plot area.
func svgPlot(s *svg.SVG, cfg chart.Config, x, y, w, h float64) {
	switch cfg.Form {
	case chart.FormScatter:
		for _, ds := range cfg.Datasets {
			maxX, maxY := 0.0, 0.0
			for _, p := range ds.Points {
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
			}
			if maxX <= 0 || maxY <= 0 {
				continue
			}
			for _, p := range ds.Points {
				s.Circle(ri(x+p.X/maxX*(w-12)+6), ri(y+h-p.Y/maxY*(h-12)-6), 4, fill(ParseColor(ds.Color)))
			}
		}
	case chart.FormBars:
		maxV := barMax(cfg)
		if maxV <= 0 {
			return
		}
		n := len(cfg.Labels)
		bars := barsOnly(cfg.Datasets)
		for pos := 0; pos < n; pos++ {
			svgBarSlot(s, cfg, bars, pos, maxV, x, y, w, h, n)
		}
		for _, ds := range cfg.Datasets {
			if ds.Line {
				svgPolyline(s, ds, maxV, x, y, w, h)
			}
		}
	case chart.FormLines:
		maxV := 0.0
		for _, ds := range cfg.Datasets {
			for _, v := range ds.Values {
				maxV = math.Max(maxV, v)
			}
		}
		if cfg.Options.Stacked {
			maxV = stackedMax(cfg.Datasets)
			if maxV <= 0 {
				return
			}
			acc := make([]float64, maxLen(cfg.Datasets))
			for _, ds := range cfg.Datasets {
				svgStackedArea(s, ds, acc, maxV, x, y, w, h)
			}
			return
		}
		if maxV <= 0 {
			return
		}
		for _, ds := range cfg.Datasets {
			svgPolyline(s, ds, maxV, x, y, w, h)
		}
	}
}

func svgBarSlot(s *svg.SVG, cfg chart.Config, bars []chart.Dataset, pos int, maxV, x, y, w, h float64, n int) {
	const pad = 0.15
	if cfg.Options.Horizontal {
		slot := h / float64(n)
		sy := y + slot*float64(pos)
		if cfg.Options.Stacked {
			acc := 0.0
			for _, ds := range bars {
				v := valueAt(ds, pos)
				if v <= 0 {
					continue
				}
				bw := v / maxV * w
				s.Rect(ri(x+acc), ri(sy+slot*pad), ri(math.Max(bw, 1)), ri(slot*(1-2*pad)), fill(ParseColor(ds.Color)))
				acc += bw
			}
			return
		}
		lane := slot * (1 - 2*pad) / float64(len(bars))
		for i, ds := range bars {
			v := valueAt(ds, pos)
			if v <= 0 {
				continue
			}
			s.Rect(ri(x), ri(sy+slot*pad+lane*float64(i)), ri(math.Max(v/maxV*w, 1)), ri(lane*0.9), fill(ParseColor(ds.Color)))
		}
		return
	}
	slot := w / float64(n)
	sx := x + slot*float64(pos)
	if cfg.Options.Stacked {
		acc := 0.0
		for _, ds := range bars {
			v := valueAt(ds, pos)
			if v <= 0 {
				continue
			}
			bh := v / maxV * h
			acc += bh
			s.Rect(ri(sx+slot*pad), ri(y+h-acc), ri(slot*(1-2*pad)), ri(math.Max(bh, 1)), fill(ParseColor(ds.Color)))
		}
		return
	}
	lane := slot * (1 - 2*pad) / float64(len(bars))
	for i, ds := range bars {
		v := valueAt(ds, pos)
		if v <= 0 {
			continue
		}
		bh := v / maxV * h
		s.Rect(ri(sx+slot*pad+lane*float64(i)), ri(y+h-bh), ri(lane*0.9), ri(math.Max(bh, 1)), fill(ParseColor(ds.Color)))
	}
}

func svgPolyline(s *svg.SVG, ds chart.Dataset, maxV, x, y, w, h float64) {
	n := len(ds.Values)
	if n < 2 || maxV <= 0 {
		return
	}
	step := w / float64(n-1)
	xs := make([]int, n)
	ys := make([]int, n)
	for i, v := range ds.Values {
		xs[i] = ri(x + step*float64(i))
		ys[i] = ri(y + h - v/maxV*h)
	}
	s.Polyline(xs, ys, "fill:none;stroke:"+CSS(ParseColor(ds.Color))+";stroke-width:2")
}

func svgStackedArea(s *svg.SVG, ds chart.Dataset, acc []float64, maxV, x, y, w, h float64) {
	n := len(ds.Values)
	if n < 2 {
		return
	}
	step := w / float64(n-1)
	xs := make([]int, 0, 2*n)
	ys := make([]int, 0, 2*n)
	for i := 0; i < n; i++ {
		xs = append(xs, ri(x+step*float64(i)))
		ys = append(ys, ri(y+h-(acc[i]+ds.Values[i])/maxV*h))
	}
	for i := n - 1; i >= 0; i-- {
		xs = append(xs, ri(x+step*float64(i)))
		ys = append(ys, ri(y+h-acc[i]/maxV*h))
	}
	s.Polygon(xs, ys, fill(WithAlpha(ParseColor(ds.Color), 0.75)))
	for i := 0; i < n; i++ {
		acc[i] += ds.Values[i]
	}
}

func svgRibbon(s *svg.SVG, cfg chart.Config, x, y, w, h float64) {
	bands := chart.RibbonBands(cfg.Datasets, 0.02)
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
		xs := make([]int, 0, 2*n)
		ys := make([]int, 0, 2*n)
		for i := 0; i < n; i++ {
			xs = append(xs, ri(x+step*float64(i)))
			ys = append(ys, ri(y+b.Segments[i].Top*h))
		}
		for i := n - 1; i >= 0; i-- {
			xs = append(xs, ri(x+step*float64(i)))
			ys = append(ys, ri(y+b.Segments[i].Bottom*h))
		}
		s.Polygon(xs, ys, fill(WithAlpha(ParseColor(cfg.Datasets[b.Dataset].Color), 0.85)))
	}
}

func fill(c color.RGBA) string { return "fill:" + CSS(c) }

func ri(f float64) int { return int(math.Round(f)) }
