/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"godashboard/internal/dashboard"
	"godashboard/internal/render"
)

// WriteSVG writes the dashboard as a vector SVG document to outPath.
func WriteSVG(d *dashboard.Dashboard, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}
	w := bufio.NewWriter(f)
	render.WriteSVG(d, w)
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write svg: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close svg: %w", err)
	}
	return nil
}
