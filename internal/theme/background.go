/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package theme

import (
	"encoding/json"
	"reflect"
)

// Background styles the canvas surface. Image may be a URL or embedded image
// data; Opacity is clamped to [0, 1] on normalization.
type Background struct {
	Color   string  `json:"backgroundColor"`
	Image   string  `json:"backgroundImage"`
	Opacity float64 `json:"opacity"`
}

// DefaultBackground returns the built-in canvas background.
func DefaultBackground() Background {
	return Background{Color: "#0b0d12", Image: "", Opacity: 1}
}

// IsDefault reports whether b deep-equals the built-in default background.
func (b Background) IsDefault() bool { return reflect.DeepEqual(b, DefaultBackground()) }

// NormalizeBackground merges recognized fields of a parsed document onto the
// default background, clamping opacity into range.
func NormalizeBackground(raw []byte) Background {
	b, err := ParseBackground(raw)
	if err != nil {
		return DefaultBackground()
	}
	return b
}

// ParseBackground is the strict variant of NormalizeBackground.
func ParseBackground(raw []byte) (Background, error) {
	out := DefaultBackground()
	var o struct {
		Color   *string  `json:"backgroundColor"`
		Image   *string  `json:"backgroundImage"`
		Opacity *float64 `json:"opacity"`
	}
	if err := json.Unmarshal(raw, &o); err != nil {
		return out, err
	}
	if o.Color != nil {
		out.Color = *o.Color
	}
	if o.Image != nil {
		out.Image = *o.Image
	}
	if o.Opacity != nil {
		v := *o.Opacity
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		out.Opacity = v
	}
	return out, nil
}
