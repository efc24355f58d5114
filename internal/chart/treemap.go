/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package chart

// Box is one treemap tile. Index refers back to the value/label position of
// the config that produced it.
type Box struct {
	Index      int
	X, Y, W, H float64
}

// TreemapLayout tiles values into a w by h area using recursive slice and
// dice with alternating split direction. Non-positive values get no tile;
// tiles keep the input order.
func TreemapLayout(values []float64, w, h float64) []Box {
	idx := make([]int, 0, len(values))
	vals := make([]float64, 0, len(values))
	for i, v := range values {
		if v > 0 {
			idx = append(idx, i)
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 || w <= 0 || h <= 0 {
		return nil
	}
	out := make([]Box, 0, len(vals))
	slice(vals, idx, 0, 0, w, h, w < h, &out)
	return out
}

func slice(vals []float64, idx []int, x, y, w, h float64, vertical bool, out *[]Box) {
	if len(vals) == 1 {
		*out = append(*out, Box{Index: idx[0], X: x, Y: y, W: w, H: h})
		return
	}
	total := 0.0
	for _, v := range vals {
		total += v
	}
	// Split the value list in two halves of roughly equal weight.
	acc, cut := 0.0, 1
	for i, v := range vals {
		acc += v
		if acc >= total/2 && i < len(vals)-1 {
			cut = i + 1
			break
		}
	}
	frac := 0.0
	for _, v := range vals[:cut] {
		frac += v
	}
	frac /= total

	if vertical {
		hh := h * frac
		slice(vals[:cut], idx[:cut], x, y, w, hh, !vertical, out)
		slice(vals[cut:], idx[cut:], x, y+hh, w, h-hh, !vertical, out)
	} else {
		ww := w * frac
		slice(vals[:cut], idx[:cut], x, y, ww, h, !vertical, out)
		slice(vals[cut:], idx[cut:], x+ww, y, w-ww, h, !vertical, out)
	}
}
