/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package dashboard

import "math"

// The built-in retail demo dataset. All charts render from these tables so a
// fresh widget always shows something plausible; there is no data import.

// Category is one product category with yearly totals.
type Category struct {
	Name   string
	Sales  float64
	Profit float64
}

// Region is one sales region with a monthly trend.
type Region struct {
	Name    string
	Monthly []float64
}

// Months returns the month axis labels.
func Months() []string {
	return []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
}

// Categories returns the category table.
func Categories() []Category {
	return []Category{
		{Name: "Electronics", Sales: 48200, Profit: 9300},
		{Name: "Fashion", Sales: 36100, Profit: 7200},
		{Name: "Grocery", Sales: 28900, Profit: 4100},
		{Name: "Home & Garden", Sales: 21800, Profit: 3600},
		{Name: "Sports", Sales: 16400, Profit: 2900},
	}
}

// Regions returns the region table with twelve monthly values each.
func Regions() []Region {
	return []Region{
		{Name: "North", Monthly: growth(8200, 13600)},
		{Name: "South", Monthly: growth(6100, 9800)},
		{Name: "East", Monthly: growth(7400, 11900)},
		{Name: "West", Monthly: growth(5300, 10400)},
	}
}

// RegionNames returns the region names in table order.
func RegionNames() []string {
	regs := Regions()
	out := make([]string, len(regs))
	for i, r := range regs {
		out[i] = r.Name
	}
	return out
}

// growth interpolates start..end over twelve months with a small deterministic
// wobble so trend lines do not look ruler-straight.
func growth(start, end float64) []float64 {
	out := make([]float64, 12)
	for i := 0; i < 12; i++ {
		t := float64(i) / 11
		v := start + (end-start)*t + math.Sin(float64(i)*0.9)*0.03*(end-start)
		out[i] = math.Round(v)
	}
	return out
}
