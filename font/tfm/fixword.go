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

// FixWord is a signed 32-bit fixed point number with 20 fractional bits.
// This is the numeric type used for all dimensions in TFM files.
type FixWord int32

// Float64 converts x to a float64.
func (x FixWord) Float64() float64 {
	return float64(x) / (1 << 20)
}

// FromFloat64 converts z to the nearest FixWord value.
func FromFloat64(z float64) FixWord {
	if z >= 0 {
		return FixWord(z*(1<<20) + 0.5)
	}
	return FixWord(z*(1<<20) - 0.5)
}

// fixTable is a flat sequence of fixed point values, addressed by the
// indices extracted from char info words.  Out-of-range indices yield
// zero, so that slightly malformed fonts degrade gracefully instead of
// breaking the layout.
type fixTable []FixWord

func (t fixTable) get(idx int) FixWord {
	if idx < 0 || idx >= len(t) {
		return 0
	}
	return t[idx]
}
