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

package tfm

// A char info word packs four sub-table indices, a tag and a remainder
// into 32 bits:
//
//	bits 24-31  width index
//	bits 20-23  height index
//	bits 16-19  depth index
//	bits 10-15  italic correction index
//	bits  8-9   tag
//	bits  0-7   remainder
//
// The tag and remainder select ligature/kern programs and extensible
// recipes, which are not needed for geometry queries.

const (
	widthIndexShift  = 24
	widthIndexMask   = 0xff
	heightIndexShift = 20
	heightIndexMask  = 0x0f
	depthIndexShift  = 16
	depthIndexMask   = 0x0f
	italicIndexShift = 10
	italicIndexMask  = 0x3f
)

func widthIndex(info uint32) int {
	return int(info >> widthIndexShift & widthIndexMask)
}

func heightIndex(info uint32) int {
	return int(info >> heightIndexShift & heightIndexMask)
}

func depthIndex(info uint32) int {
	return int(info >> depthIndexShift & depthIndexMask)
}

func italicIndex(info uint32) int {
	return int(info >> italicIndexShift & italicIndexMask)
}
