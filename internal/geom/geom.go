/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package geom holds the pure layout math for the dashboard canvas: clamping
// rectangles into the logical canvas, converting pointer deltas between the
// physical (scaled) and logical coordinate spaces, and computing the
// fit-to-screen scale. These utilities are UI-agnostic and deterministic.
package geom

// Pt is a 2D point in logical canvas pixels.
type Pt struct{ X, Y float64 }

// Rect is an axis-aligned rectangle defined by min corner and size,
// in logical canvas pixels.
type Rect struct {
	X, Y float64
	W, H float64
}

func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

func (r Rect) Min() Pt { return Pt{r.X, r.Y} }
func (r Rect) Max() Pt { return Pt{r.X + r.W, r.Y + r.H} }

func (r Rect) Contains(p Pt) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X <= r.X+r.W && p.Y <= r.Y+r.H
}

// Clamp returns v limited to [min, max]. min <= max is a precondition.
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampRect forces r inside a canvasW x canvasH canvas while respecting the
// minimum widget size. Size is clamped before position so an oversized rect is
// shrunk first; otherwise the valid position range could be negative.
func ClampRect(r Rect, canvasW, canvasH, minW, minH float64) Rect {
	r.W = Clamp(r.W, minW, canvasW)
	r.H = Clamp(r.H, minH, canvasH)
	r.X = Clamp(r.X, 0, canvasW-r.W)
	r.Y = Clamp(r.Y, 0, canvasH-r.H)
	return r
}

// ScaleDelta converts a pointer-movement delta from physical screen pixels to
// logical canvas pixels. When the canvas is drawn at a fit-to-screen scale the
// raw delta is too small by that factor; dividing restores 1:1 movement.
// A scale <= 0 is treated as 1.
func ScaleDelta(dx, dy, scale float64) (float64, float64) {
	if scale <= 0 {
		scale = 1
	}
	return dx / scale, dy / scale
}

// FitScale returns the uniform factor that fits a canvasW x canvasH canvas
// into the given available viewport space. The canvas is never upscaled past
// its logical size, so the result is capped at 1.
func FitScale(availW, availH, canvasW, canvasH float64) float64 {
	if canvasW <= 0 || canvasH <= 0 {
		return 1
	}
	if availW < 1 {
		availW = 1
	}
	if availH < 1 {
		availH = 1
	}
	s := availW / canvasW
	if t := availH / canvasH; t < s {
		s = t
	}
	if s > 1 {
		return 1
	}
	return s
}
