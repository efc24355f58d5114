/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package dashboard holds the editable dashboard model: the widget registry,
// selection and paint order, the drag/resize interaction state machine, canvas
// sizing, theme application, and the JSON document codec.
package dashboard

import "godashboard/internal/geom"

// Minimum widget dimensions in canvas units. Resizing and loading never
// produce a widget smaller than this.
const (
	MinWidgetW = 220
	MinWidgetH = 170
)

// Series is one chart series or slice. Color is the resolved display color;
// when OverrideColor is set the color survives theme changes.
type Series struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	Color         string `json:"color"`
	OverrideColor bool   `json:"overrideColor,omitempty"`
}

// KPIPayload is the editable content of a KPI widget.
type KPIPayload struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CardPayload is the editable content of a card widget.
type CardPayload struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// MultirowRow is one label/value row of a multi-row card.
type MultirowRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// MultirowPayload is the editable content of a multi-row card.
type MultirowPayload struct {
	Rows []MultirowRow `json:"rows"`
}

// TextBoxPayload is the styled content of a text box widget.
type TextBoxPayload struct {
	Text       string  `json:"text"`
	FontSize   float64 `json:"fontSize"`
	Color      string  `json:"color"`
	Background string  `json:"bg"`
	Bold       bool    `json:"bold"`
	Align      string  `json:"align"`
}

// ImagePayload holds an uploaded image as a data URL so the document stays a
// single self-contained JSON blob.
type ImagePayload struct {
	DataURL string `json:"dataUrl"`
}

// Widget is one visual on the canvas. Exactly the payload matching Kind is
// non-nil; the rest stay nil.
type Widget struct {
	ID       string
	Kind     Kind
	Title    string
	Rect     geom.Rect
	Series   []Series
	KPI      *KPIPayload
	Card     *CardPayload
	Multirow *MultirowPayload
	TextBox  *TextBoxPayload
	Image    *ImagePayload
}

// clone returns a deep copy so callers can hold widget snapshots without
// aliasing registry state.
func (w Widget) clone() Widget {
	c := w
	if w.Series != nil {
		c.Series = make([]Series, len(w.Series))
		copy(c.Series, w.Series)
	}
	if w.KPI != nil {
		k := *w.KPI
		c.KPI = &k
	}
	if w.Card != nil {
		cd := *w.Card
		c.Card = &cd
	}
	if w.Multirow != nil {
		m := MultirowPayload{Rows: make([]MultirowRow, len(w.Multirow.Rows))}
		copy(m.Rows, w.Multirow.Rows)
		c.Multirow = &m
	}
	if w.TextBox != nil {
		t := *w.TextBox
		c.TextBox = &t
	}
	if w.Image != nil {
		img := *w.Image
		c.Image = &img
	}
	return c
}

// defaultPayload attaches the starter payload for kinds that carry one.
func defaultPayload(w *Widget) {
	switch w.Kind {
	case KindKPI:
		w.KPI = &KPIPayload{Label: "Total Sales", Value: "151.4K"}
	case KindCard:
		w.Card = &CardPayload{Label: "Orders", Value: "12,408"}
	case KindMultirowCard:
		w.Multirow = &MultirowPayload{Rows: []MultirowRow{
			{Label: "Electronics", Value: "48.2K"},
			{Label: "Fashion", Value: "36.1K"},
			{Label: "Grocery", Value: "28.9K"},
		}}
	case KindTextBox:
		w.TextBox = &TextBoxPayload{
			Text:     "Double-click to edit this text box.",
			FontSize: 16,
			Color:    "#e6e9f2",
			Align:    "left",
		}
	case KindImage:
		w.Image = &ImagePayload{}
	}
}
