/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package chart maps widget kinds plus series plus theme onto declarative
// chart configs the renderers draw from. Everything here is pure data and
// math; no drawing happens in this package.
package chart

// Form is the geometric family a config renders as.
type Form int

const (
	FormPie Form = iota
	FormBars
	FormLines
	FormScatter
	FormTreemap
	FormRibbon
)

// XY is one scatter point.
type XY struct {
	X float64
	Y float64
}

// Dataset is one renderable series.
type Dataset struct {
	Label  string
	Color  string
	Values []float64
	Points []XY     // scatter only
	Colors []string // per-slice colors, pie/treemap only
	Line   bool     // render as a line in combo charts
	Fill   bool     // fill under the line (area)
}

// Options toggles chart-level behavior.
type Options struct {
	Horizontal bool // bars instead of columns
	Stacked    bool
	Percent    bool // values are shares of 100
	Donut      bool // pie with a hole
	Legend     bool
}

// Config is a complete description of one chart.
type Config struct {
	Form     Form
	Labels   []string
	Datasets []Dataset
	Options  Options
}
