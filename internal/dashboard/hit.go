/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package dashboard

import "godashboard/internal/geom"

// Widget chrome metrics in canvas units.
const (
	HeaderHeight = 30
	handleHit    = 10
)

// HitRegion classifies where inside a widget a canvas point landed.
type HitRegion int

const (
	RegionNone HitRegion = iota
	RegionHandle
	RegionHeader
	RegionBody
)

// Hit is the result of a canvas hit test. Handle is set only for
// RegionHandle.
type Hit struct {
	ID     string
	Region HitRegion
	Handle string
}

// HitTest finds the frontmost widget under a canvas-space point and
// classifies the hit: a resize handle wins over the header strip, which wins
// over the body. Points on empty canvas return a zero Hit.
func (d *Dashboard) HitTest(x, y float64) Hit {
	d.mu.Lock()
	defer d.mu.Unlock()
	p := geom.Pt{X: x, Y: y}
	for i := len(d.order) - 1; i >= 0; i-- {
		w := d.widgets[d.order[i]]
		r := w.Rect
		if h := handleAt(r, x, y); h != "" {
			return Hit{ID: w.ID, Region: RegionHandle, Handle: h}
		}
		if !r.Contains(p) {
			continue
		}
		if y < r.Y+HeaderHeight {
			return Hit{ID: w.ID, Region: RegionHeader}
		}
		return Hit{ID: w.ID, Region: RegionBody}
	}
	return Hit{}
}

// handleAt returns the resize handle name covering the point, or "". Handle
// zones are small squares centered on the rect's corners and edge midlines,
// extending slightly outside the rect.
func handleAt(r geom.Rect, x, y float64) string {
	const half = handleHit / 2.0
	nearL := x >= r.X-half && x <= r.X+half
	nearR := x >= r.X+r.W-half && x <= r.X+r.W+half
	nearT := y >= r.Y-half && y <= r.Y+half
	nearB := y >= r.Y+r.H-half && y <= r.Y+r.H+half
	insideX := x >= r.X-half && x <= r.X+r.W+half
	insideY := y >= r.Y-half && y <= r.Y+r.H+half

	switch {
	case nearT && nearL:
		return HandleNW
	case nearT && nearR:
		return HandleNE
	case nearB && nearL:
		return HandleSW
	case nearB && nearR:
		return HandleSE
	case nearT && insideX:
		return HandleN
	case nearB && insideX:
		return HandleS
	case nearL && insideY:
		return HandleW
	case nearR && insideY:
		return HandleE
	}
	return ""
}
