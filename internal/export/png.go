/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export writes a dashboard to PNG, SVG, and PDF files.
package export

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"godashboard/internal/dashboard"
	"godashboard/internal/render"
)

// PNGOptions controls PNG export.
// Scale is pixels per canvas unit; zero exports at 2x for crisp output.
type PNGOptions struct {
	Scale float64
}

// DefaultPNGScale is used when PNGOptions.Scale is unset.
const DefaultPNGScale = 2.0

// WritePNG renders the dashboard and writes it to outPath, creating parent
// directories as needed.
func WritePNG(d *dashboard.Dashboard, outPath string, opt PNGOptions) error {
	scale := opt.Scale
	if scale <= 0 {
		scale = DefaultPNGScale
	}
	img := render.Image(d, scale)

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close png: %w", err)
	}
	return nil
}
