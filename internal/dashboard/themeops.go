/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package dashboard

import "godashboard/internal/theme"

// Theme returns the active theme.
func (d *Dashboard) Theme() theme.Theme {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.theme
}

// SetTheme activates a theme and re-resolves every widget's series colors from
// the new palette. Series with an explicit color override keep their color.
func (d *Dashboard) SetTheme(th theme.Theme) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.theme = th
	d.applyThemeLocked()
}

// ImportThemeJSON parses a theme JSON blob and activates it. On parse failure
// the previous theme stays active and the error is returned for reporting.
func (d *Dashboard) ImportThemeJSON(raw []byte) error {
	th, err := theme.Parse(raw)
	if err != nil {
		return err
	}
	d.SetTheme(th)
	return nil
}

// ResetTheme reverts to the built-in default theme.
func (d *Dashboard) ResetTheme() {
	d.SetTheme(theme.Default())
}

func (d *Dashboard) applyThemeLocked() {
	for _, w := range d.widgets {
		for i := range w.Series {
			if w.Series[i].OverrideColor {
				continue
			}
			w.Series[i].Color = d.theme.PaletteColor(i)
		}
	}
}
