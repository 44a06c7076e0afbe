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

// Package afm derives font metrics from Adobe font metric (AFM) files.
package afm

import (
	"io"

	psafm "seehuhn.de/go/postscript/afm"
)

// Font provides TFM-style glyph geometry, backed by an AFM file.
//
// AFM files describe glyphs in 1/1000ths of the font size and do not
// record a design size, so the desired size must be given when the
// font is loaded.
type Font struct {
	byCode [256]*psafm.GlyphInfo
	size   float64
}

// Read parses an AFM file and scales its metrics to the given design
// size.  Glyphs are addressed using the encoding built into the file.
func Read(r io.Reader, designSize float64) (*Font, error) {
	info, err := psafm.Read(r)
	if err != nil {
		return nil, err
	}
	return New(info, designSize), nil
}

// New wraps already parsed AFM metrics.
func New(info *psafm.Metrics, designSize float64) *Font {
	f := &Font{size: designSize}
	for code, name := range info.Encoding {
		if code >= len(f.byCode) {
			break
		}
		if name == ".notdef" {
			// unencoded position, not a real character
			continue
		}
		if g, ok := info.Glyphs[name]; ok {
			f.byCode[code] = g
		}
	}
	return f
}

// DesignSize returns the size the metrics are scaled to.
func (f *Font) DesignSize() float64 {
	return f.size
}

// Width returns the width of character c in TeX point units.
func (f *Font) Width(c uint16) float64 {
	g := f.glyph(c)
	if g == nil {
		return 0
	}
	return g.WidthX / 1000 * f.size
}

// Height returns the height of character c in TeX point units.
func (f *Font) Height(c uint16) float64 {
	g := f.glyph(c)
	if g == nil || g.BBox.URy <= 0 {
		return 0
	}
	return g.BBox.URy / 1000 * f.size
}

// Depth returns the depth of character c in TeX point units.
func (f *Font) Depth(c uint16) float64 {
	g := f.glyph(c)
	if g == nil || g.BBox.LLy >= 0 {
		return 0
	}
	return -g.BBox.LLy / 1000 * f.size
}

// Italic returns the italic correction of character c in TeX point
// units.  AFM files do not store italic corrections directly, so the
// amount the glyph protrudes beyond its advance width is used instead.
func (f *Font) Italic(c uint16) float64 {
	g := f.glyph(c)
	if g == nil || g.BBox.URx <= g.WidthX {
		return 0
	}
	return (g.BBox.URx - g.WidthX) / 1000 * f.size
}

func (f *Font) glyph(c uint16) *psafm.GlyphInfo {
	if c >= uint16(len(f.byCode)) {
		return nil
	}
	return f.byCode[c]
}
