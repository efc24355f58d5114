/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"godashboard/internal/theme"
)

// SampleThemeJSON returns the bundled green sample theme as importable JSON.
func SampleThemeJSON() []byte {
	b, _ := json.MarshalIndent(theme.Sample(), "", "  ")
	return append(b, '\n')
}

// SampleBackgroundJSON returns a sample canvas background document.
func SampleBackgroundJSON() []byte {
	bg := theme.Background{Color: "#07140c", Opacity: 0.95}
	b, _ := json.MarshalIndent(bg, "", "  ")
	return append(b, '\n')
}

// WriteSampleTheme writes the sample theme JSON to path.
func WriteSampleTheme(path string) error {
	return writeSample(path, SampleThemeJSON())
}

// WriteSampleBackground writes the sample canvas background JSON to path.
func WriteSampleBackground(path string) error {
	return writeSample(path, SampleBackgroundJSON())
}

func writeSample(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure sample dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write sample: %w", err)
	}
	return nil
}
