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

package color

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Parse reads a color specification as used in DVI special commands.
//
// The following forms are accepted:
//
//	gray g
//	rgb r g b
//	cmyk c m y k
//	hsb h s b
//	#rrggbb
//	name
//
// All numeric components must be in the range [0, 1].  Color names are
// the SVG 1.1 names, compared ignoring case.
func Parse(s string) (Color, error) {
	ff := strings.Fields(s)
	if len(ff) == 0 {
		return Color{}, &ParseError{Spec: s, Reason: "empty color specification"}
	}

	switch ff[0] {
	case "gray", "grey":
		xx, err := components(s, ff[1:], 1)
		if err != nil {
			return Color{}, err
		}
		return Gray(xx[0]), nil
	case "rgb":
		xx, err := components(s, ff[1:], 3)
		if err != nil {
			return Color{}, err
		}
		return Color{xx[0], xx[1], xx[2]}, nil
	case "cmyk":
		xx, err := components(s, ff[1:], 4)
		if err != nil {
			return Color{}, err
		}
		return CMYK(xx[0], xx[1], xx[2], xx[3]), nil
	case "hsb":
		xx, err := components(s, ff[1:], 3)
		if err != nil {
			return Color{}, err
		}
		return HSB(xx[0], xx[1], xx[2]), nil
	}

	if len(ff) != 1 {
		return Color{}, &ParseError{Spec: s, Reason: "unknown color space " + ff[0]}
	}

	if strings.HasPrefix(ff[0], "#") {
		return parseHex(s, ff[0])
	}

	if c, ok := colornames.Map[strings.ToLower(ff[0])]; ok {
		return Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
		}, nil
	}
	return Color{}, &ParseError{Spec: s, Reason: "unknown color name " + ff[0]}
}

// ParseError indicates a malformed color specification.
type ParseError struct {
	Spec   string
	Reason string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", err.Spec, err.Reason)
}

func components(spec string, ff []string, n int) ([]float64, error) {
	if len(ff) != n {
		reason := fmt.Sprintf("expected %d components, got %d", n, len(ff))
		return nil, &ParseError{Spec: spec, Reason: reason}
	}
	xx := make([]float64, n)
	for i, f := range ff {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil || x < 0 || x > 1 {
			return nil, &ParseError{Spec: spec, Reason: "invalid component " + f}
		}
		xx[i] = x
	}
	return xx, nil
}

func parseHex(spec, f string) (Color, error) {
	digits := f[1:]
	if len(digits) != 6 {
		return Color{}, &ParseError{Spec: spec, Reason: "expected 6 hex digits"}
	}
	val, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, &ParseError{Spec: spec, Reason: "invalid hex digits"}
	}
	return Color{
		R: float64(val>>16&0xff) / 255,
		G: float64(val>>8&0xff) / 255,
		B: float64(val&0xff) / 255,
	}, nil
}
