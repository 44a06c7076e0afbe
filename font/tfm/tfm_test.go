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

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fontData describes a synthetic TFM file for testing.
type fontData struct {
	headerWords uint16 // number of 4-byte words in the header, at least 2
	firstChar   uint16
	lastChar    uint16
	checksum    uint32
	designSize  FixWord
	charInfo    []uint32
	width       []FixWord
	height      []FixWord
	depth       []FixWord
	italic      []FixWord
}

// encode writes the binary TFM representation of d.
func (d *fontData) encode() []byte {
	buf := &bytes.Buffer{}
	write := func(x any) {
		err := binary.Write(buf, binary.BigEndian, x)
		if err != nil {
			panic(err)
		}
	}

	numWords := 6 + int(d.headerWords) + len(d.charInfo) +
		len(d.width) + len(d.height) + len(d.depth) + len(d.italic)
	write(uint16(numWords))
	write(d.headerWords)
	write(d.firstChar)
	write(d.lastChar)
	write(uint16(len(d.width)))
	write(uint16(len(d.height)))
	write(uint16(len(d.depth)))
	write(uint16(len(d.italic)))
	write(uint16(0)) // nl
	write(uint16(0)) // nk
	write(uint16(0)) // ne
	write(uint16(0)) // np

	write(d.checksum)
	write(uint32(d.designSize))
	for i := 2; i < int(d.headerWords); i++ {
		write(uint32(0))
	}

	write(d.charInfo)
	write(d.width)
	write(d.height)
	write(d.depth)
	write(d.italic)

	return buf.Bytes()
}

func charInfoWord(w, h, d, it int) uint32 {
	return uint32(w)<<24 | uint32(h)<<20 | uint32(d)<<16 | uint32(it)<<10
}

// testFont covers character codes 65 and 66.  Character 65 has
// non-zero indices into all four sub-tables.
var testFont = &fontData{
	headerWords: 18,
	firstChar:   65,
	lastChar:    66,
	checksum:    0xdeadbeef,
	designSize:  10 << 20, // 10pt
	charInfo: []uint32{
		charInfoWord(1, 1, 1, 1),
		charInfoWord(2, 0, 0, 0),
	},
	width:  []FixWord{0, FromFloat64(0.5), FromFloat64(0.75)},
	height: []FixWord{0, FromFloat64(0.6)},
	depth:  []FixWord{0, FromFloat64(0.2)},
	italic: []FixWord{0, FromFloat64(0.05)},
}

func TestRoundTrip(t *testing.T) {
	f, err := Read(bytes.NewReader(testFont.encode()))
	if err != nil {
		t.Fatal(err)
	}

	if f.Checksum != testFont.checksum {
		t.Errorf("checksum: got %#x, want %#x", f.Checksum, testFont.checksum)
	}
	if f.FirstChar != 65 || f.LastChar != 66 {
		t.Errorf("character range: got %d-%d, want 65-66",
			f.FirstChar, f.LastChar)
	}
	if ds := f.DesignSize(); ds != 10 {
		t.Errorf("design size: got %g, want 10", ds)
	}

	cases := []struct {
		name string
		get  func(c uint16) float64
		want float64
	}{
		{"width", f.Width, 0.5 * 10},
		{"height", f.Height, 0.6 * 10},
		{"depth", f.Depth, 0.2 * 10},
		{"italic", f.Italic, 0.05 * 10},
	}
	for _, test := range cases {
		got := test.get(65)
		if math.Abs(got-test.want) > 1e-4 {
			t.Errorf("%s(65): got %g, want %g", test.name, got, test.want)
		}
	}

	if got, want := f.Width(66), 0.75*10.0; math.Abs(got-want) > 1e-4 {
		t.Errorf("width(66): got %g, want %g", got, want)
	}
}

func TestOutOfRangeChars(t *testing.T) {
	f, err := Read(bytes.NewReader(testFont.encode()))
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range []uint16{0, 64, 67, 1000, math.MaxUint16} {
		for name, get := range map[string]func(uint16) float64{
			"width":  f.Width,
			"height": f.Height,
			"depth":  f.Depth,
			"italic": f.Italic,
		} {
			if got := get(c); got != 0 {
				t.Errorf("%s(%d): got %g, want 0", name, c, got)
			}
		}
	}
}

func TestInvalidTableIndex(t *testing.T) {
	// Character 65 points beyond the end of every sub-table.
	data := &fontData{
		headerWords: 2,
		firstChar:   65,
		lastChar:    65,
		designSize:  10 << 20,
		charInfo:    []uint32{charInfoWord(200, 15, 15, 63)},
		width:       []FixWord{0, FromFloat64(0.5)},
		height:      []FixWord{0},
		depth:       []FixWord{0},
		italic:      []FixWord{0},
	}
	f, err := Read(bytes.NewReader(data.encode()))
	if err != nil {
		t.Fatal(err)
	}

	if got := f.Width(65); got != 0 {
		t.Errorf("width: got %g, want 0", got)
	}
	if got := f.Height(65); got != 0 {
		t.Errorf("height: got %g, want 0", got)
	}
	if got := f.Depth(65); got != 0 {
		t.Errorf("depth: got %g, want 0", got)
	}
	if got := f.Italic(65); got != 0 {
		t.Errorf("italic: got %g, want 0", got)
	}
}

func TestIdempotentRead(t *testing.T) {
	blob := testFont.encode()
	f1, err := Read(bytes.NewReader(blob))
	if err != nil {
		t.Fatal(err)
	}
	f2, err := Read(bytes.NewReader(blob))
	if err != nil {
		t.Fatal(err)
	}

	type geometry struct {
		W, H, D, I float64
	}
	query := func(f *Font) map[uint16]geometry {
		res := make(map[uint16]geometry)
		for c := f.FirstChar; c <= f.LastChar; c++ {
			res[c] = geometry{f.Width(c), f.Height(c), f.Depth(c), f.Italic(c)}
		}
		return res
	}
	if d := cmp.Diff(query(f1), query(f2)); d != "" {
		t.Errorf("fonts differ (-first +second):\n%s", d)
	}
}

func TestEmptyFont(t *testing.T) {
	// firstChar = lastChar+1 denotes a font without any characters
	data := &fontData{
		headerWords: 2,
		firstChar:   1,
		lastChar:    0,
		designSize:  10 << 20,
	}
	f, err := Read(bytes.NewReader(data.encode()))
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Width(0); got != 0 {
		t.Errorf("width(0): got %g, want 0", got)
	}
}

func TestShortCharInfo(t *testing.T) {
	// The char info table ends before character 66, but the file
	// is otherwise consistent.
	data := &fontData{
		headerWords: 2,
		firstChar:   65,
		lastChar:    66,
		designSize:  10 << 20,
		charInfo:    []uint32{charInfoWord(1, 0, 0, 0), 0},
		width:       []FixWord{0, FromFloat64(0.5)},
	}
	f, err := Read(bytes.NewReader(data.encode()))
	if err != nil {
		t.Fatal(err)
	}
	f.charInfo = f.charInfo[:1]

	if got := f.Width(66); got != 0 {
		t.Errorf("width(66): got %g, want 0", got)
	}
	if got := f.Width(65); got == 0 {
		t.Error("width(65): got 0, want non-zero")
	}
}

func TestTruncated(t *testing.T) {
	blob := testFont.encode()
	for _, n := range []int{0, 1, 8, 15, 23, 27, 31, len(blob) - 1} {
		_, err := Read(bytes.NewReader(blob[:n]))
		var fontErr *InvalidFontError
		if !errors.As(err, &fontErr) {
			t.Errorf("length %d: got %v, want InvalidFontError", n, err)
			continue
		}
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("length %d: error does not wrap ErrUnexpectedEOF: %v",
				n, err)
		}
	}
}

func TestInvalidPreamble(t *testing.T) {
	badRange := &fontData{
		headerWords: 2,
		firstChar:   10,
		lastChar:    5,
		designSize:  10 << 20,
	}
	if _, err := Read(bytes.NewReader(badRange.encode())); err == nil {
		t.Error("invalid character range not detected")
	}

	badSize := &fontData{
		headerWords: 2,
		firstChar:   1,
		lastChar:    0,
		designSize:  0,
	}
	if _, err := Read(bytes.NewReader(badSize.encode())); err == nil {
		t.Error("invalid design size not detected")
	}
}
