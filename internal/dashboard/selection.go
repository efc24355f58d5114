/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package dashboard

// Select marks a widget as selected and brings it to the front of the paint
// order. Selecting "" clears the selection; unknown ids only clear it.
func (d *Dashboard) Select(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if id == "" {
		d.selected = ""
		return
	}
	if _, ok := d.widgets[id]; !ok {
		d.selected = ""
		return
	}
	d.selected = id
	if n := len(d.order); n > 0 && d.order[n-1] == id {
		return // already frontmost
	}
	for i, oid := range d.order {
		if oid == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	d.order = append(d.order, id)
}

// SelectedID returns the selected widget id, or "" when nothing is selected.
func (d *Dashboard) SelectedID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selected
}
