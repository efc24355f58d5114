/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package dashboard

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"godashboard/internal/geom"
	"godashboard/internal/theme"
)

// DocumentVersion is the current dashboard file format version.
const DocumentVersion = 2

// Document is the serialized form of a dashboard. Selection and interaction
// state are session-only and never persisted.
type Document struct {
	Version int         `json:"version"`
	Canvas  CanvasDoc   `json:"canvas"`
	Theme   theme.Theme `json:"theme"`
	Visuals []VisualDoc `json:"visuals"`
}

// CanvasDoc is the serialized canvas block.
type CanvasDoc struct {
	Width      int              `json:"width"`
	Height     int              `json:"height"`
	Background theme.Background `json:"background"`
}

// VisualDoc is one serialized widget. Geometry is stored flat in canvas
// units; payload fields are present only for the kinds that carry them.
type VisualDoc struct {
	ID           string           `json:"id"`
	Type         string           `json:"type"`
	Title        string           `json:"title"`
	X            float64          `json:"x"`
	Y            float64          `json:"y"`
	W            float64          `json:"w"`
	H            float64          `json:"h"`
	Series       []Series         `json:"series,omitempty"`
	ImageDataURL string           `json:"imageDataUrl,omitempty"`
	KPI          *KPIPayload      `json:"kpi,omitempty"`
	Card         *CardPayload     `json:"card,omitempty"`
	Multirow     *MultirowPayload `json:"multirow,omitempty"`
	TextBox      *TextBoxPayload  `json:"textBox,omitempty"`
}

// Serialize snapshots the dashboard into a document, visuals in paint order.
func (d *Dashboard) Serialize() Document {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := Document{
		Version: DocumentVersion,
		Canvas: CanvasDoc{
			Width:      d.canvasW,
			Height:     d.canvasH,
			Background: d.background,
		},
		Theme:   d.theme,
		Visuals: make([]VisualDoc, 0, len(d.order)),
	}
	for _, id := range d.order {
		w := d.widgets[id]
		v := VisualDoc{
			ID:    w.ID,
			Type:  string(w.Kind),
			Title: w.Title,
			X:     w.Rect.X,
			Y:     w.Rect.Y,
			W:     w.Rect.W,
			H:     w.Rect.H,
		}
		if len(w.Series) > 0 {
			v.Series = make([]Series, len(w.Series))
			copy(v.Series, w.Series)
		}
		if w.KPI != nil {
			k := *w.KPI
			v.KPI = &k
		}
		if w.Card != nil {
			c := *w.Card
			v.Card = &c
		}
		if w.Multirow != nil {
			m := MultirowPayload{Rows: make([]MultirowRow, len(w.Multirow.Rows))}
			copy(m.Rows, w.Multirow.Rows)
			v.Multirow = &m
		}
		if w.TextBox != nil {
			t := *w.TextBox
			v.TextBox = &t
		}
		if w.Image != nil {
			v.ImageDataURL = w.Image.DataURL
		}
		doc.Visuals = append(doc.Visuals, v)
	}
	return doc
}

// MarshalDocument renders a document as indented JSON.
func MarshalDocument(doc Document) ([]byte, error) {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal dashboard document: %w", err)
	}
	return b, nil
}

// docWire mirrors Document with raw theme and background blocks so malformed
// or missing sub-documents degrade to defaults instead of failing the load.
type docWire struct {
	Version int `json:"version"`
	Canvas  struct {
		Width      int             `json:"width"`
		Height     int             `json:"height"`
		Background json.RawMessage `json:"background"`
	} `json:"canvas"`
	Theme   json.RawMessage `json:"theme"`
	Visuals []VisualDoc     `json:"visuals"`
}

// ParseDocument decodes dashboard JSON. Only malformed JSON fails; missing or
// invalid sub-blocks are normalized to defaults field by field.
func ParseDocument(raw []byte) (Document, error) {
	var w docWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return Document{}, fmt.Errorf("parse dashboard document: %w", err)
	}
	doc := Document{
		Version: w.Version,
		Canvas: CanvasDoc{
			Width:      w.Canvas.Width,
			Height:     w.Canvas.Height,
			Background: theme.NormalizeBackground(w.Canvas.Background),
		},
		Theme:   theme.Normalize(w.Theme),
		Visuals: w.Visuals,
	}
	return doc, nil
}

// LoadDocument replaces the dashboard state with a document's contents.
// Loading is tolerant: zero canvas dimensions fall back to the defaults,
// widget geometry is re-clamped, missing titles and series are regenerated,
// and missing or colliding ids are reallocated. The selection is cleared and
// the id allocator resumes past the highest loaded id.
func (d *Dashboard) LoadDocument(doc Document) {
	d.mu.Lock()
	defer d.mu.Unlock()

	cw, ch := doc.Canvas.Width, doc.Canvas.Height
	if cw <= 0 {
		cw = DefaultCanvasW
	}
	if ch <= 0 {
		ch = DefaultCanvasH
	}
	d.canvasW = int(geom.Clamp(float64(cw), MinCanvasW, MaxCanvasW))
	d.canvasH = int(geom.Clamp(float64(ch), MinCanvasH, MaxCanvasH))
	d.background = doc.Canvas.Background
	d.theme = doc.Theme
	d.widgets = make(map[string]*Widget, len(doc.Visuals))
	d.order = d.order[:0]
	d.selected = ""
	d.nextID = 1

	// Generated ids consume the counter as they are handed out. Ids taken
	// verbatim from the document only move the resume point once the whole
	// document is in, so a later generated id never burns a slot past them.
	maxDocID := 0
	for _, v := range doc.Visuals {
		kind := Kind(v.Type)
		if kind == "" {
			kind = KindLine
		}
		id := v.ID
		if id == "" {
			id = fmt.Sprintf("vis%d", d.nextID)
			d.nextID++
		}
		for {
			if _, taken := d.widgets[id]; !taken {
				break
			}
			id = fmt.Sprintf("vis%d", d.nextID)
			d.nextID++
		}
		if id == v.ID {
			if n, ok := idNumber(id); ok && n > maxDocID {
				maxDocID = n
			}
		}

		w, h := v.W, v.H
		if w <= 0 || h <= 0 {
			w, h = DefaultSize(kind)
		}
		wd := &Widget{
			ID:    id,
			Kind:  kind,
			Title: v.Title,
			Rect:  geom.ClampRect(geom.R(v.X, v.Y, w, h), float64(d.canvasW), float64(d.canvasH), MinWidgetW, MinWidgetH),
		}
		if wd.Title == "" {
			wd.Title = DefaultTitle(kind)
		}
		if len(v.Series) > 0 {
			wd.Series = make([]Series, len(v.Series))
			copy(wd.Series, v.Series)
		} else {
			wd.Series = DefaultSeries(kind, d.theme)
		}
		attachPayloads(wd, v)

		d.widgets[id] = wd
		d.order = append(d.order, id)
	}
	if maxDocID >= d.nextID {
		d.nextID = maxDocID + 1
	}
}

// Reset returns the dashboard to its initial empty default state.
func (d *Dashboard) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.canvasW = DefaultCanvasW
	d.canvasH = DefaultCanvasH
	d.background = theme.DefaultBackground()
	d.theme = theme.Default()
	d.widgets = make(map[string]*Widget)
	d.order = nil
	d.selected = ""
	d.nextID = 1
}

// IsDefaultState reports whether the dashboard is indistinguishable from a
// freshly created one: no widgets, default canvas size, default theme, and
// default background. Selection and the id allocator do not count.
func (d *Dashboard) IsDefaultState() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.order) == 0 &&
		d.canvasW == DefaultCanvasW && d.canvasH == DefaultCanvasH &&
		d.theme.IsDefault() &&
		d.background.IsDefault()
}

// attachPayloads copies document payloads onto a widget and fills in the
// default payload when the kind expects one the document lacks.
func attachPayloads(w *Widget, v VisualDoc) {
	if v.KPI != nil {
		k := *v.KPI
		w.KPI = &k
	}
	if v.Card != nil {
		c := *v.Card
		w.Card = &c
	}
	if v.Multirow != nil {
		m := MultirowPayload{Rows: make([]MultirowRow, len(v.Multirow.Rows))}
		copy(m.Rows, v.Multirow.Rows)
		w.Multirow = &m
	}
	if v.TextBox != nil {
		t := *v.TextBox
		w.TextBox = &t
	}
	if v.ImageDataURL != "" {
		w.Image = &ImagePayload{DataURL: v.ImageDataURL}
	}
	switch w.Kind {
	case KindKPI:
		if w.KPI == nil {
			defaultPayload(w)
		}
	case KindCard:
		if w.Card == nil {
			defaultPayload(w)
		}
	case KindMultirowCard:
		if w.Multirow == nil {
			defaultPayload(w)
		}
	case KindTextBox:
		if w.TextBox == nil {
			defaultPayload(w)
		}
	case KindImage:
		if w.Image == nil {
			defaultPayload(w)
		}
	}
}

func idNumber(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "vis")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
