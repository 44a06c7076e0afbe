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

// Package special dispatches DVI special commands to handlers.
//
// Specials are out-of-band instructions embedded in a DVI file.  Each
// special consists of a prefix token which selects the responsible
// handler, and an opaque body which is interpreted by that handler
// alone.
//
// The DVI processor makes two passes over the document.  During the
// first pass, [Handler.Preprocess] is called for every special, in
// document order, before anything is drawn.  This allows handlers to
// collect state which must be known ahead of time, for example a page
// background color which has to be painted underneath all other
// content of the page even if the special occurs in the middle of the
// page.  During the second pass the registered [PageListener]s are
// notified at the start of every page, and [Handler.Process] is called
// for every special, interleaved with the drawing operations.
package special

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/dvisvg/color"
)

// Handler processes one family of special commands.
type Handler interface {
	// Prefixes returns the prefix tokens this handler is responsible
	// for.  The returned set must not change over the lifetime of the
	// handler.
	Prefixes() []string

	// Preprocess is called for every matching special during the
	// first pass over the document.  Implementations must not draw
	// anything, but may record state keyed by the current page number.
	Preprocess(prefix, body string, ctx Actions) error

	// Process is called for every matching special during the
	// rendering pass.  Implementations may update the drawing state in
	// ctx and may draw immediately.
	Process(prefix, body string, ctx Actions) error
}

// PageListener is implemented by handlers which need to act at the
// start of every page, before the first drawing operation of the page.
type PageListener interface {
	// BeginPage is called once per page during the rendering pass.
	// The call must not assume that any special of the page has
	// already been seen.
	BeginPage(pageNo int, ctx Actions)
}

// Actions is the drawing context shared between the DVI processor and
// the special handlers.  At most one handler at a time operates on the
// context; handlers are never invoked reentrantly.
type Actions interface {
	// CurrentPage returns the number of the page being processed.
	// Pages are numbered starting from 1.
	CurrentPage() int

	// FillColor returns the current fill color.
	FillColor() color.Color

	// SetFillColor changes the fill color for subsequent drawing
	// operations.
	SetFillColor(col color.Color)

	// SetBackground records col as the background color of the current
	// page.
	SetBackground(col color.Color)

	// PageRect returns the extent of the current page.
	PageRect() rect.Rect

	// FillRect draws a solid rectangle filled with col.
	FillRect(r rect.Rect, col color.Color)
}
