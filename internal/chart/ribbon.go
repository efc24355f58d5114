/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package chart

import "sort"

// Segment is one series' vertical interval at one label position, in 0..1 of
// the plot height.
type Segment struct {
	Top    float64
	Bottom float64
}

// Band is one series' ribbon across all label positions. Segments are ordered
// by label; series are re-ranked at every position so larger values sit on
// top, which is what makes ribbons cross.
type Band struct {
	Dataset  int
	Segments []Segment
}

// RibbonBands computes normalized ribbon geometry for the config's datasets.
// Gap is the fraction of plot height reserved between stacked segments
// (typically 0.02). Datasets without values are skipped.
func RibbonBands(ds []Dataset, gap float64) []Band {
	n := 0
	for _, d := range ds {
		if len(d.Values) > n {
			n = len(d.Values)
		}
	}
	if n == 0 {
		return nil
	}
	bands := make([]Band, len(ds))
	for i := range bands {
		bands[i] = Band{Dataset: i, Segments: make([]Segment, n)}
	}

	type rank struct {
		ds  int
		val float64
	}
	for pos := 0; pos < n; pos++ {
		ranked := make([]rank, 0, len(ds))
		total := 0.0
		for i, d := range ds {
			v := 0.0
			if pos < len(d.Values) {
				v = d.Values[pos]
			}
			ranked = append(ranked, rank{ds: i, val: v})
			total += v
		}
		// Largest value on top; equal values keep dataset order.
		sort.SliceStable(ranked, func(a, b int) bool { return ranked[a].val > ranked[b].val })

		usable := 1.0 - gap*float64(len(ds)-1)
		if usable < 0 {
			usable = 0
		}
		y := 0.0
		for _, r := range ranked {
			hgt := 0.0
			if total > 0 {
				hgt = r.val / total * usable
			}
			bands[r.ds].Segments[pos] = Segment{Top: y, Bottom: y + hgt}
			y += hgt + gap
		}
	}
	return bands
}
