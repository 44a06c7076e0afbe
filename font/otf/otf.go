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

// Package otf derives font metrics from OpenType and TrueType fonts.
//
// This is a stopgap for fonts which come without a TFM file: character
// codes are mapped to glyphs through the "cmap" table of the font, and
// the glyph extents take the place of the TFM height/depth/italic
// tables.
package otf

import (
	"io"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"
)

// Font provides TFM-style glyph geometry, backed by an OpenType font.
type Font struct {
	lookup  func(r rune) glyph.ID
	widths  []float64
	extents []funit.Rect16
	upem    float64
	size    float64
}

// Read parses an OpenType or TrueType font and scales its metrics to
// the given design size.
func Read(r io.Reader, designSize float64) (*Font, error) {
	info, err := sfnt.Read(r)
	if err != nil {
		return nil, err
	}
	return New(info, designSize)
}

// New wraps an already parsed OpenType font.
func New(info *sfnt.Font, designSize float64) (*Font, error) {
	subtable, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, err
	}
	return &Font{
		lookup:  subtable.Lookup,
		widths:  info.WidthsPDF(),
		extents: info.GlyphBBoxes(),
		upem:    float64(info.UnitsPerEm),
		size:    designSize,
	}, nil
}

// DesignSize returns the size the metrics are scaled to.
func (f *Font) DesignSize() float64 {
	return f.size
}

// Width returns the width of character c in TeX point units.
func (f *Font) Width(c uint16) float64 {
	gid, ok := f.glyph(c)
	if !ok || int(gid) >= len(f.widths) {
		return 0
	}
	return f.widths[gid] * f.size
}

// Height returns the height of character c in TeX point units.
func (f *Font) Height(c uint16) float64 {
	ext, ok := f.extent(c)
	if !ok || ext.URy <= 0 {
		return 0
	}
	return float64(ext.URy) / f.upem * f.size
}

// Depth returns the depth of character c in TeX point units.
func (f *Font) Depth(c uint16) float64 {
	ext, ok := f.extent(c)
	if !ok || ext.LLy >= 0 {
		return 0
	}
	return -float64(ext.LLy) / f.upem * f.size
}

// Italic returns the italic correction of character c in TeX point
// units.  OpenType fonts do not store italic corrections, so the
// amount the glyph protrudes beyond its advance width is used instead.
func (f *Font) Italic(c uint16) float64 {
	gid, ok := f.glyph(c)
	if !ok || int(gid) >= len(f.widths) || int(gid) >= len(f.extents) {
		return 0
	}
	overhang := float64(f.extents[gid].URx)/f.upem - f.widths[gid]
	if overhang <= 0 {
		return 0
	}
	return overhang * f.size
}

func (f *Font) glyph(c uint16) (glyph.ID, bool) {
	gid := f.lookup(rune(c))
	if gid == 0 {
		return 0, false
	}
	return gid, true
}

func (f *Font) extent(c uint16) (funit.Rect16, bool) {
	gid, ok := f.glyph(c)
	if !ok || int(gid) >= len(f.extents) {
		return funit.Rect16{}, false
	}
	return f.extents[gid], true
}
