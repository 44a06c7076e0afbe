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

// Package canvas provides a drawing context for use in unit tests.
// All drawing operations are recorded instead of being rendered.
package canvas

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/dvisvg/color"
	"seehuhn.de/go/dvisvg/special"
)

// A4 is the default page rectangle, in big points.
var A4 = rect.Rect{URx: 595.276, URy: 841.89}

// Canvas records the drawing operations performed by special handlers.
//
// This type implements the [special.Actions] interface.
type Canvas struct {
	// Page is the number of the current page.
	Page int

	// Rect is the extent of the current page.
	Rect rect.Rect

	// Fill is the current fill color.
	Fill color.Color

	// Background holds the background color of each page seen so far.
	Background map[int]color.Color

	// Filled lists all rectangles drawn so far.
	Filled []FillOp
}

// FillOp describes one call to FillRect.
type FillOp struct {
	Page int
	Rect rect.Rect
	Col  color.Color
}

var _ special.Actions = (*Canvas)(nil)

// New creates a new Canvas with an A4 page rectangle.
func New() *Canvas {
	return &Canvas{
		Page:       1,
		Rect:       A4,
		Background: make(map[int]color.Color),
	}
}

// CurrentPage implements the [special.Actions] interface.
func (c *Canvas) CurrentPage() int {
	return c.Page
}

// FillColor implements the [special.Actions] interface.
func (c *Canvas) FillColor() color.Color {
	return c.Fill
}

// SetFillColor implements the [special.Actions] interface.
func (c *Canvas) SetFillColor(col color.Color) {
	c.Fill = col
}

// SetBackground implements the [special.Actions] interface.
func (c *Canvas) SetBackground(col color.Color) {
	c.Background[c.Page] = col
}

// PageRect implements the [special.Actions] interface.
func (c *Canvas) PageRect() rect.Rect {
	return c.Rect
}

// FillRect implements the [special.Actions] interface.
func (c *Canvas) FillRect(r rect.Rect, col color.Color) {
	c.Filled = append(c.Filled, FillOp{Page: c.Page, Rect: r, Col: col})
}
