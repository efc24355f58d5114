/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package dashboard

import "godashboard/internal/theme"

// Kind tags a widget's visual type. The set is closed; unknown kinds coming
// from a loaded document fall back to a line chart at render time.
type Kind string

const (
	KindPie                 Kind = "pie"
	KindDonut               Kind = "donut"
	KindTreemap             Kind = "treemap"
	KindRibbon              Kind = "ribbon"
	KindLine                Kind = "line"
	KindArea                Kind = "area"
	KindStackedArea         Kind = "stackedArea"
	KindClusteredBar        Kind = "clusteredBar"
	KindStackedBar          Kind = "stackedBar"
	KindStackedBar100       Kind = "stackedBar100"
	KindClusteredColumn     Kind = "clusteredColumn"
	KindStackedColumn       Kind = "stackedColumn"
	KindStackedColumn100    Kind = "stackedColumn100"
	KindLineClusteredColumn Kind = "lineClusteredColumn"
	KindLineStackedColumn   Kind = "lineStackedColumn"
	KindScatter             Kind = "scatter"
	KindKPI                 Kind = "kpi"
	KindCard                Kind = "card"
	KindMultirowCard        Kind = "multirowCard"
	KindTextBox             Kind = "textBox"
	KindImage               Kind = "image"
)

// CatalogEntry describes one pickable visual type.
type CatalogEntry struct {
	Kind Kind
	Name string
	Icon string
}

// CatalogSection groups catalog entries for the picker menu.
type CatalogSection struct {
	Category string
	Items    []CatalogEntry
}

// Catalog returns the visual picker contents in display order.
func Catalog() []CatalogSection {
	return []CatalogSection{
		{
			Category: "Charts",
			Items: []CatalogEntry{
				{KindPie, "Pie Chart", "◔"},
				{KindDonut, "Donut Chart", "◕"},
				{KindTreemap, "Treemap", "▧"},
				{KindRibbon, "Ribbon Chart", "〰"},
				{KindLine, "Line Chart (multiple trends)", "╱"},
				{KindArea, "Area Chart", "▱"},
				{KindStackedArea, "Stacked Area Chart", "▰"},
				{KindClusteredBar, "Clustered Bar Chart", "▤"},
				{KindStackedBar, "Stacked Bar Chart", "▥"},
				{KindStackedBar100, "100% Stacked Bar Chart", "▦"},
				{KindClusteredColumn, "Clustered Column Chart", "▮"},
				{KindStackedColumn, "Stacked Column Chart", "▯"},
				{KindStackedColumn100, "100% Stacked Column Chart", "▰"},
				{KindLineClusteredColumn, "Line & Clustered Column Chart", "⟂"},
				{KindLineStackedColumn, "Line & Stacked Column Chart", "⟋"},
				{KindScatter, "Scatter Chart", "∘"},
			},
		},
		{
			Category: "Other",
			Items: []CatalogEntry{
				{KindKPI, "KPI", "⦿"},
				{KindCard, "Card", "▭"},
				{KindMultirowCard, "Multi-row Card", "≡"},
				{KindTextBox, "Text Box", "T"},
				{KindImage, "Upload Image", "🖼"},
			},
		},
	}
}

// DisplayName returns the human name for a kind, or the kind itself when the
// kind is not in the catalog.
func DisplayName(k Kind) string {
	for _, sec := range Catalog() {
		for _, it := range sec.Items {
			if it.Kind == k {
				return it.Name
			}
		}
	}
	return string(k)
}

// DefaultSize returns the initial widget size for a kind. Sizes are medium and
// readable rather than full width.
func DefaultSize(k Kind) (w, h float64) {
	switch k {
	case KindPie, KindDonut:
		return 360, 270
	case KindTreemap:
		return 420, 280
	case KindRibbon:
		return 460, 280
	case KindLineClusteredColumn, KindLineStackedColumn:
		return 560, 320
	case KindKPI, KindCard:
		return 320, 170
	case KindMultirowCard:
		return 360, 220
	case KindTextBox:
		return 360, 200
	case KindImage:
		return 420, 260
	default:
		return 520, 300
	}
}

// DefaultTitle returns the starter title for a kind.
func DefaultTitle(k Kind) string {
	switch k {
	case KindPie:
		return "Sales by Category"
	case KindDonut:
		return "Profit Split (Category)"
	case KindTreemap:
		return "Category Treemap"
	case KindRibbon:
		return "Ribbon (Share Trend)"
	case KindLine:
		return "Monthly Sales (Trends)"
	case KindArea:
		return "Monthly Profit (Area)"
	case KindStackedArea:
		return "Regional Sales (Stacked Area)"
	case KindClusteredBar:
		return "Sales by Region (Bar)"
	case KindStackedBar:
		return "Sales by Region (Stacked Bar)"
	case KindStackedBar100:
		return "Sales Share by Region (100% Bar)"
	case KindClusteredColumn:
		return "Orders by Region (Column)"
	case KindStackedColumn:
		return "Orders by Region (Stacked Column)"
	case KindStackedColumn100:
		return "Orders Share by Region (100% Column)"
	case KindLineClusteredColumn:
		return "Sales + Profit (Combo)"
	case KindLineStackedColumn:
		return "Sales + Regional Mix (Combo)"
	case KindScatter:
		return "Profit vs Sales (Scatter)"
	case KindKPI:
		return "KPI"
	case KindCard:
		return "Card"
	case KindMultirowCard:
		return "Multi-row Card"
	case KindTextBox:
		return "Text Box"
	case KindImage:
		return "Image"
	default:
		return "Visual"
	}
}

// DefaultSeries builds the starter series list for a kind, with colors
// resolved from the theme palette and no overrides.
func DefaultSeries(k Kind, th theme.Theme) []Series {
	switch k {
	case KindPie, KindDonut, KindTreemap:
		cats := Categories()
		out := make([]Series, len(cats))
		for i, c := range cats {
			out[i] = Series{Key: c.Name, Name: c.Name, Color: th.PaletteColor(i)}
		}
		return out
	case KindKPI, KindCard, KindMultirowCard, KindTextBox, KindImage:
		return nil
	case KindLine, KindStackedArea, KindRibbon,
		KindClusteredBar, KindStackedBar, KindStackedBar100,
		KindClusteredColumn, KindStackedColumn, KindStackedColumn100,
		KindLineStackedColumn:
		names := RegionNames()
		out := make([]Series, len(names))
		for i, n := range names {
			out[i] = Series{Key: n, Name: n, Color: th.PaletteColor(i)}
		}
		return out
	default:
		return []Series{{Key: "Value", Name: "Value", Color: th.PaletteColor(0)}}
	}
}
