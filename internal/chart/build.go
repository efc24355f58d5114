/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package chart

import (
	"math"

	"godashboard/internal/dashboard"
	"godashboard/internal/theme"
)

// profitRate approximates profit from sales for derived combo-chart lines.
const profitRate = 0.18

// Build maps a widget onto a chart config against the demo dataset. Returns
// false for kinds that are not charts (kpi, card, multi-row card, text box,
// image); those render directly from their payload. Unknown kinds fall back
// to a line chart.
func Build(w dashboard.Widget, th theme.Theme) (Config, bool) {
	switch w.Kind {
	case dashboard.KindKPI, dashboard.KindCard, dashboard.KindMultirowCard,
		dashboard.KindTextBox, dashboard.KindImage:
		return Config{}, false
	case dashboard.KindPie:
		return categoryPie(w, th, false), true
	case dashboard.KindDonut:
		return categoryPie(w, th, true), true
	case dashboard.KindTreemap:
		c := categoryPie(w, th, false)
		c.Form = FormTreemap
		c.Options = Options{}
		return c, true
	case dashboard.KindRibbon:
		c := regionSeries(w, th, false)
		c.Form = FormRibbon
		return c, true
	case dashboard.KindLine:
		return regionSeries(w, th, false), true
	case dashboard.KindArea:
		return totalsLine(w, th, true), true
	case dashboard.KindStackedArea:
		c := regionSeries(w, th, true)
		c.Options.Stacked = true
		return c, true
	case dashboard.KindClusteredBar:
		return regionBars(w, th, Options{Horizontal: true, Legend: true}), true
	case dashboard.KindStackedBar:
		return regionBars(w, th, Options{Horizontal: true, Stacked: true, Legend: true}), true
	case dashboard.KindStackedBar100:
		c := regionBars(w, th, Options{Horizontal: true, Stacked: true, Percent: true, Legend: true})
		c.Datasets = ToPercentStacked(c.Datasets)
		return c, true
	case dashboard.KindClusteredColumn:
		return regionBars(w, th, Options{Legend: true}), true
	case dashboard.KindStackedColumn:
		return regionBars(w, th, Options{Stacked: true, Legend: true}), true
	case dashboard.KindStackedColumn100:
		c := regionBars(w, th, Options{Stacked: true, Percent: true, Legend: true})
		c.Datasets = ToPercentStacked(c.Datasets)
		return c, true
	case dashboard.KindLineClusteredColumn:
		return comboColumns(w, th, false), true
	case dashboard.KindLineStackedColumn:
		return comboColumns(w, th, true), true
	case dashboard.KindScatter:
		return categoryScatter(w, th), true
	default:
		return totalsLine(w, th, false), true
	}
}

// categoryPie builds slice-per-category data; slices follow the widget's
// series for names and colors, falling back to the table when series are few.
func categoryPie(w dashboard.Widget, th theme.Theme, donut bool) Config {
	cats := dashboard.Categories()
	labels := make([]string, len(cats))
	colors := make([]string, len(cats))
	values := make([]float64, len(cats))
	for i, c := range cats {
		labels[i] = c.Name
		colors[i] = th.PaletteColor(i)
		values[i] = c.Sales
		if i < len(w.Series) {
			if w.Series[i].Name != "" {
				labels[i] = w.Series[i].Name
			}
			if w.Series[i].Color != "" {
				colors[i] = w.Series[i].Color
			}
		}
	}
	return Config{
		Form:   FormPie,
		Labels: labels,
		Datasets: []Dataset{{
			Label:  "Sales",
			Values: values,
			Colors: colors,
		}},
		Options: Options{Donut: donut, Legend: true},
	}
}

// regionSeries builds one monthly dataset per widget series, matched to the
// region table by key.
func regionSeries(w dashboard.Widget, th theme.Theme, fill bool) Config {
	regs := dashboard.Regions()
	byName := make(map[string][]float64, len(regs))
	for _, r := range regs {
		byName[r.Name] = r.Monthly
	}
	series := w.Series
	if len(series) == 0 {
		series = dashboard.DefaultSeries(dashboard.KindLine, th)
	}
	ds := make([]Dataset, 0, len(series))
	for i, s := range series {
		vals := byName[s.Key]
		if vals == nil {
			vals = regs[i%len(regs)].Monthly
		}
		ds = append(ds, Dataset{
			Label:  s.Name,
			Color:  s.Color,
			Values: vals,
			Line:   true,
			Fill:   fill,
		})
	}
	return Config{
		Form:     FormLines,
		Labels:   dashboard.Months(),
		Datasets: ds,
		Options:  Options{Legend: true},
	}
}

// regionBars is regionSeries reshaped as bars or columns.
func regionBars(w dashboard.Widget, th theme.Theme, opt Options) Config {
	c := regionSeries(w, th, false)
	c.Form = FormBars
	for i := range c.Datasets {
		c.Datasets[i].Line = false
	}
	c.Options = opt
	return c
}

// totalsLine builds a single monthly trend: total sales, or derived profit
// when profit is true (the area chart).
func totalsLine(w dashboard.Widget, th theme.Theme, profit bool) Config {
	vals := monthlyTotals()
	if profit {
		for i := range vals {
			vals[i] = math.Round(vals[i] * profitRate)
		}
	}
	label, color := "Value", th.PaletteColor(0)
	if len(w.Series) > 0 {
		if w.Series[0].Name != "" {
			label = w.Series[0].Name
		}
		if w.Series[0].Color != "" {
			color = w.Series[0].Color
		}
	}
	return Config{
		Form:     FormLines,
		Labels:   dashboard.Months(),
		Datasets: []Dataset{{Label: label, Color: color, Values: vals, Line: true, Fill: profit}},
	}
}

// comboColumns builds the line-and-column combos: monthly sales columns
// (stacked per region when stacked is true) with a derived profit line on top.
func comboColumns(w dashboard.Widget, th theme.Theme, stacked bool) Config {
	var c Config
	if stacked {
		c = regionBars(w, th, Options{Stacked: true, Legend: true})
	} else {
		totals := totalsLine(w, th, false)
		totals.Datasets[0].Line = false
		c = Config{Form: FormBars, Labels: totals.Labels, Datasets: totals.Datasets, Options: Options{Legend: true}}
	}
	profit := monthlyTotals()
	for i := range profit {
		profit[i] = math.Round(profit[i] * profitRate)
	}
	c.Datasets = append(c.Datasets, Dataset{
		Label:  "Profit",
		Color:  th.PaletteColor(len(c.Datasets)),
		Values: profit,
		Line:   true,
	})
	return c
}

// categoryScatter plots profit against sales, one point per category.
func categoryScatter(w dashboard.Widget, th theme.Theme) Config {
	cats := dashboard.Categories()
	pts := make([]XY, len(cats))
	for i, c := range cats {
		pts[i] = XY{X: c.Sales, Y: c.Profit}
	}
	label, color := "Categories", th.PaletteColor(0)
	if len(w.Series) > 0 {
		if w.Series[0].Name != "" {
			label = w.Series[0].Name
		}
		if w.Series[0].Color != "" {
			color = w.Series[0].Color
		}
	}
	return Config{
		Form:     FormScatter,
		Datasets: []Dataset{{Label: label, Color: color, Points: pts}},
	}
}

func monthlyTotals() []float64 {
	regs := dashboard.Regions()
	out := make([]float64, 12)
	for _, r := range regs {
		for i, v := range r.Monthly {
			out[i] += v
		}
	}
	return out
}

// ToPercentStacked converts each label position to shares summing to 100.
// Positions whose total is zero stay zero.
func ToPercentStacked(ds []Dataset) []Dataset {
	if len(ds) == 0 {
		return ds
	}
	n := 0
	for _, d := range ds {
		if len(d.Values) > n {
			n = len(d.Values)
		}
	}
	totals := make([]float64, n)
	for _, d := range ds {
		for i, v := range d.Values {
			totals[i] += v
		}
	}
	out := make([]Dataset, len(ds))
	for di, d := range ds {
		out[di] = d
		out[di].Values = make([]float64, len(d.Values))
		for i, v := range d.Values {
			if totals[i] > 0 {
				out[di].Values[i] = v / totals[i] * 100
			}
		}
	}
	return out
}
