/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"git.sr.ht/~sbinet/gg"
	xdraw "golang.org/x/image/draw"

	// Decoders for uploaded image payloads.
	_ "image/gif"
	_ "image/jpeg"

	"godashboard/internal/chart"
	"godashboard/internal/dashboard"
	"godashboard/internal/theme"
)

// Widget chrome colors, matching the editor's dark panel styling.
var (
	panelFill   = ParseColor("#141822")
	panelBorder = ParseColor("#2a3142")
)

const (
	panelRadius = 10
	bodyInset   = 10
	legendH     = 16
)

// Image rasterizes the whole dashboard in paint order. Scale is pixels per
// canvas unit; values <= 0 render at 1:1.
func Image(d *dashboard.Dashboard, scale float64) image.Image {
	if scale <= 0 {
		scale = 1
	}
	cw, ch := d.CanvasSize()
	dc := gg.NewContext(int(float64(cw)*scale+0.5), int(float64(ch)*scale+0.5))
	th := d.Theme()

	dc.SetColor(ParseColor(th.Background))
	dc.Clear()
	dc.Scale(scale, scale)

	bg := d.Background()
	if bg.Color != "" {
		dc.SetColor(WithAlpha(ParseColor(bg.Color), bg.Opacity))
		dc.DrawRectangle(0, 0, float64(cw), float64(ch))
		dc.Fill()
	}
	for _, w := range d.Widgets() {
		drawWidget(dc, w, th)
	}
	return dc.Image()
}

func drawWidget(dc *gg.Context, w dashboard.Widget, th theme.Theme) {
	r := w.Rect
	dc.SetColor(panelFill)
	dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, panelRadius)
	dc.FillPreserve()
	dc.SetColor(panelBorder)
	dc.SetLineWidth(1.5)
	dc.Stroke()

	dc.SetColor(ParseColor(th.TextClasses.Title.Color))
	dc.DrawStringAnchored(w.Title, r.X+bodyInset, r.Y+dashboard.HeaderHeight/2, 0, 0.35)

	bx := r.X + bodyInset
	by := r.Y + dashboard.HeaderHeight
	bw := r.W - 2*bodyInset
	bh := r.H - dashboard.HeaderHeight - bodyInset
	if bw <= 0 || bh <= 0 {
		return
	}

	if cfg, ok := chart.Build(w, th); ok {
		drawChart(dc, cfg, th, bx, by, bw, bh)
		return
	}
	switch w.Kind {
	case dashboard.KindKPI:
		drawKPI(dc, w, th, bx, by, bw, bh)
	case dashboard.KindCard:
		drawCard(dc, w, th, bx, by, bw, bh)
	case dashboard.KindMultirowCard:
		drawMultirow(dc, w, th, bx, by, bw, bh)
	case dashboard.KindTextBox:
		drawTextBox(dc, w, bx, by, bw, bh)
	case dashboard.KindImage:
		drawImage(dc, w, th, bx, by, bw, bh)
	}
}

func drawKPI(dc *gg.Context, w dashboard.Widget, th theme.Theme, x, y, wd, h float64) {
	p := w.KPI
	if p == nil {
		return
	}
	dc.SetColor(ParseColor(th.PaletteColor(0)))
	dc.DrawRectangle(x, y+h-4, wd, 3)
	dc.Fill()
	dc.SetColor(ParseColor(th.TextClasses.Label.Color))
	dc.DrawStringAnchored(p.Label, x+wd/2, y+h*0.3, 0.5, 0.5)
	dc.SetColor(ParseColor(th.Foreground))
	dc.DrawStringAnchored(p.Value, x+wd/2, y+h*0.6, 0.5, 0.5)
}

func drawCard(dc *gg.Context, w dashboard.Widget, th theme.Theme, x, y, wd, h float64) {
	p := w.Card
	if p == nil {
		return
	}
	dc.SetColor(ParseColor(th.Foreground))
	dc.DrawStringAnchored(p.Value, x+wd/2, y+h*0.42, 0.5, 0.5)
	dc.SetColor(ParseColor(th.TextClasses.Label.Color))
	dc.DrawStringAnchored(p.Label, x+wd/2, y+h*0.68, 0.5, 0.5)
}

func drawMultirow(dc *gg.Context, w dashboard.Widget, th theme.Theme, x, y, wd, h float64) {
	p := w.Multirow
	if p == nil || len(p.Rows) == 0 {
		return
	}
	rowH := h / float64(len(p.Rows))
	if rowH > 34 {
		rowH = 34
	}
	grid := ParseColor(th.Chart.Grid)
	for i, row := range p.Rows {
		cy := y + rowH*float64(i) + rowH/2
		dc.SetColor(ParseColor(th.TextClasses.Label.Color))
		dc.DrawStringAnchored(row.Label, x+4, cy, 0, 0.5)
		dc.SetColor(ParseColor(th.Foreground))
		dc.DrawStringAnchored(row.Value, x+wd-4, cy, 1, 0.5)
		if i < len(p.Rows)-1 {
			dc.SetColor(grid)
			dc.DrawRectangle(x, y+rowH*float64(i+1), wd, 1)
			dc.Fill()
		}
	}
}

func drawTextBox(dc *gg.Context, w dashboard.Widget, x, y, wd, h float64) {
	p := w.TextBox
	if p == nil {
		return
	}
	if p.Background != "" {
		dc.SetColor(ParseColor(p.Background))
		dc.DrawRectangle(x, y, wd, h)
		dc.Fill()
	}
	align := gg.AlignLeft
	ax := 0.0
	switch p.Align {
	case "center":
		align, ax = gg.AlignCenter, 0.5
	case "right":
		align, ax = gg.AlignRight, 1
	}
	dc.SetColor(ParseColor(p.Color))
	dc.DrawStringWrapped(p.Text, x+ax*wd, y+4, ax, 0, wd, 1.4, align)
}

func drawImage(dc *gg.Context, w dashboard.Widget, th theme.Theme, x, y, wd, h float64) {
	p := w.Image
	if p == nil || p.DataURL == "" {
		dc.SetColor(ParseColor(th.TextClasses.Label.Color))
		dc.DrawStringAnchored("No image", x+wd/2, y+h/2, 0.5, 0.5)
		return
	}
	img, err := DecodeDataURL(p.DataURL)
	if err != nil {
		dc.SetColor(ParseColor(th.TextClasses.Label.Color))
		dc.DrawStringAnchored("Invalid image", x+wd/2, y+h/2, 0.5, 0.5)
		return
	}
	scaled, ox, oy := fitImage(img, wd, h)
	dc.DrawImage(scaled, int(x+ox), int(y+oy))
}

// DecodeDataURL decodes a base64 image data URL into an image.
func DecodeDataURL(s string) (image.Image, error) {
	_, data, found := strings.Cut(s, ",")
	if !found || !strings.HasPrefix(s, "data:image/") {
		return nil, fmt.Errorf("not an image data url")
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("decode image data url: %w", err)
	}
	img, _, err := image.Decode(strings.NewReader(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("decode image payload: %w", err)
	}
	return img, nil
}

// EncodeDataURL reads an image stream and re-encodes it as a PNG data URL so
// it can live inline in the dashboard document.
func EncodeDataURL(r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode image payload: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// fitImage scales an image to fit contain-style inside w x h and returns the
// centering offsets.
func fitImage(img image.Image, w, h float64) (image.Image, float64, float64) {
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw <= 0 || ih <= 0 {
		return img, 0, 0
	}
	s := w / iw
	if hs := h / ih; hs < s {
		s = hs
	}
	if s > 1 {
		s = 1
	}
	tw, th := int(iw*s), int(ih*s)
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst, (w - float64(tw)) / 2, (h - float64(th)) / 2
}
