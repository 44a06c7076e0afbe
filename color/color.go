// seehuhn.de/go/dvisvg - a library for converting DVI files to SVG
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package color represents the colors used in DVI special commands.
//
// Colors are opaque RGB values.  Gray, CMYK and HSB specifications are
// converted to RGB when they are parsed.
package color

import "fmt"

// Color is an RGB color.  Each component is in the range [0, 1].
type Color struct {
	R, G, B float64
}

// Gray returns the gray level g as a Color.
func Gray(g float64) Color {
	return Color{g, g, g}
}

// CMYK converts a CMYK color specification to a Color.
func CMYK(c, m, y, k float64) Color {
	return Color{
		R: (1 - c) * (1 - k),
		G: (1 - m) * (1 - k),
		B: (1 - y) * (1 - k),
	}
}

// HSB converts a hue/saturation/brightness specification to a Color.
// All three components are in the range [0, 1].
func HSB(h, s, b float64) Color {
	if s == 0 {
		return Color{b, b, b}
	}
	h = h - float64(int(h)) // wrap the hue to [0, 1)
	if h < 0 {
		h++
	}
	h *= 6
	i := int(h)
	f := h - float64(i)
	p := b * (1 - s)
	q := b * (1 - s*f)
	t := b * (1 - s*(1-f))
	switch i {
	case 0:
		return Color{b, t, p}
	case 1:
		return Color{q, b, p}
	case 2:
		return Color{p, b, t}
	case 3:
		return Color{p, q, b}
	case 4:
		return Color{t, p, b}
	default:
		return Color{b, p, q}
	}
}

// String returns the color in the form used by SVG attributes.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x",
		component(c.R), component(c.G), component(c.B))
}

func component(x float64) uint8 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return uint8(x*255 + 0.5)
}
