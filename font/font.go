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

// Package font gives access to font metric information.
//
// Metric information is normally read from TFM files, but AFM files
// and OpenType fonts can serve as substitutes when no TFM file is
// available.  All three sources are presented uniformly through the
// [Metrics] interface.
package font

// Metrics provides the geometry of the characters in a font.
//
// All values are in TeX point units.  Queries for characters not
// present in the font return 0; fonts with missing or inconsistent
// metric data must not break the layout.
type Metrics interface {
	// DesignSize returns the design size of the font.
	DesignSize() float64

	// Width returns the width of character c.
	Width(c uint16) float64

	// Height returns the height of character c, i.e. the extent
	// above the baseline.
	Height(c uint16) float64

	// Depth returns the depth of character c, i.e. the extent
	// below the baseline.
	Depth(c uint16) float64

	// Italic returns the italic correction of character c.
	Italic(c uint16) float64
}
