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

// Package bgcolor handles the "background" special, which sets the
// background color of pages.
//
// A background special takes effect at the top of the page it occurs
// on, even if other material of the page has already been drawn when
// the special is encountered.  The color then stays in effect for all
// following pages until another background special overrides it.  The
// handler therefore collects all (page, color) pairs during the
// preprocessing pass, and paints the page rectangle when it is
// notified of a page start during the rendering pass.
package bgcolor

import (
	"seehuhn.de/go/dvisvg/color"
	"seehuhn.de/go/dvisvg/special"
)

// Handler implements the "background" special.  It must be registered
// with a [special.Handlers] registry; the zero value is ready to use.
type Handler struct {
	entries []pageColor
}

type pageColor struct {
	pageNo int
	col    color.Color
}

var (
	_ special.Handler      = (*Handler)(nil)
	_ special.PageListener = (*Handler)(nil)
)

// Prefixes implements the [special.Handler] interface.
func (h *Handler) Prefixes() []string {
	return []string{"background", "bgcolor"}
}

// Preprocess records the background color requested for the current
// page.  This implements the [special.Handler] interface.
func (h *Handler) Preprocess(prefix, body string, ctx special.Actions) error {
	col, err := color.Parse(body)
	if err != nil {
		return err
	}
	h.entries = append(h.entries, pageColor{ctx.CurrentPage(), col})
	return nil
}

// Process implements the [special.Handler] interface.  The visible
// effect of the special was already committed in [Handler.BeginPage],
// so only the syntax of the body is checked here.
func (h *Handler) Process(prefix, body string, ctx special.Actions) error {
	_, err := color.Parse(body)
	return err
}

// BeginPage paints the background of the new page, if one is in
// effect.  This implements the [special.PageListener] interface.
func (h *Handler) BeginPage(pageNo int, ctx special.Actions) {
	col, ok := h.effectiveColor(pageNo)
	if !ok {
		return
	}
	ctx.SetBackground(col)
	ctx.FillRect(ctx.PageRect(), col)
}

// effectiveColor returns the color of the latest entry at or before
// pageNo.  Entries are stored in document order, so scanning backwards
// implements both the carry-forward rule and last-write-wins for
// repeated specials on a single page.
func (h *Handler) effectiveColor(pageNo int) (color.Color, bool) {
	for i := len(h.entries) - 1; i >= 0; i-- {
		if h.entries[i].pageNo <= pageNo {
			return h.entries[i].col, true
		}
	}
	return color.Color{}, false
}
