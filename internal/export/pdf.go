/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"godashboard/internal/dashboard"
	"godashboard/internal/render"
)

// PDFOptions controls PDF export.
// - Title sets the document title; empty uses a generic one.
// - Scale is the raster scale for the embedded dashboard image (default 2x).
// - IncludeOutlines draws vector widget outlines over the raster, useful as
//   print guides.
type PDFOptions struct {
	Title           string
	Scale           float64
	IncludeOutlines bool
}

// WritePDF writes a single-page PDF sized to the canvas, with the rendered
// dashboard embedded as a raster image.
func WritePDF(d *dashboard.Dashboard, outPath string, opt PDFOptions) error {
	cw, ch := d.CanvasSize()
	mediaW, mediaH := float64(cw), float64(ch)

	scale := opt.Scale
	if scale <= 0 {
		scale = DefaultPNGScale
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, render.Image(d, scale)); err != nil {
		return fmt.Errorf("encode dashboard raster: %w", err)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: mediaW, Ht: mediaH},
	})
	title := opt.Title
	if title == "" {
		title = "Dashboard"
	}
	pdf.SetTitle(title, false)
	pdf.SetFont("Helvetica", "", 12)
	pdf.AddPageFormat("", gofpdf.SizeType{Wd: mediaW, Ht: mediaH})

	pdf.RegisterImageOptionsReader("dashboard", gofpdf.ImageOptions{ImageType: "PNG"}, &buf)
	pdf.ImageOptions("dashboard", 0, 0, mediaW, mediaH, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	if opt.IncludeOutlines {
		pdf.SetDrawColor(255, 0, 0)
		pdf.SetLineWidth(0.3)
		for _, w := range d.Widgets() {
			pdf.Rect(w.Rect.X, w.Rect.Y, w.Rect.W, w.Rect.H, "D")
		}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
