/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package render draws dashboards to raster images and SVG. It consumes the
// declarative configs from the chart package; all layout decisions live there.
package render

import (
	"image/color"
	"strconv"
	"strings"
)

// fallbackColor stands in for unparseable color strings so a bad theme never
// aborts a render.
var fallbackColor = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// ParseColor understands #RGB, #RRGGBB, #RRGGBBAA, rgb(r,g,b) and
// rgba(r,g,b,a) with a fractional alpha. Anything else yields a neutral gray.
func ParseColor(s string) color.RGBA {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s[5:len(s)-1], true)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s[4:len(s)-1], false)
	}
	return fallbackColor
}

func parseHex(h string) color.RGBA {
	switch len(h) {
	case 3:
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return fallbackColor
	}
	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return fallbackColor
	}
	if len(h) == 8 {
		return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

func parseRGBFunc(body string, hasAlpha bool) color.RGBA {
	parts := strings.Split(body, ",")
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(parts) != want {
		return fallbackColor
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return fallbackColor
		}
		ch[i] = uint8(n)
	}
	a := uint8(0xff)
	if hasAlpha {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || f < 0 || f > 1 {
			return fallbackColor
		}
		a = uint8(f*255 + 0.5)
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: a}
}

// WithAlpha scales a color's alpha by f in 0..1.
func WithAlpha(c color.RGBA, f float64) color.RGBA {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	c.A = uint8(float64(c.A)*f + 0.5)
	return c
}

// CSS renders a color as a CSS rgba() literal for SVG styles.
func CSS(c color.RGBA) string {
	var b strings.Builder
	b.WriteString("rgba(")
	b.WriteString(strconv.Itoa(int(c.R)))
	b.WriteString(",")
	b.WriteString(strconv.Itoa(int(c.G)))
	b.WriteString(",")
	b.WriteString(strconv.Itoa(int(c.B)))
	b.WriteString(",")
	b.WriteString(strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64))
	b.WriteString(")")
	return b.String()
}
