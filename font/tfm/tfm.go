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

// Package tfm reads TeX font metric (TFM) files.
//
// A TFM file stores the geometry of every character in a font, but no
// glyph outlines.  All file dimensions are fixed point numbers with 20
// fractional bits, measured in multiples of the design size.  The
// queries on [Font] undo this scaling and return values in TeX point
// units.
package tfm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Font holds the metric information for a single font.
//
// A Font is immutable once it has been read and can be shared freely
// between independent query sites.
type Font struct {
	// Checksum is copied verbatim from the file.  DVI files repeat this
	// value in their font definitions, so that mismatched metric files
	// can be detected.
	Checksum uint32

	// FirstChar and LastChar are the smallest and largest character
	// codes present in the font.
	FirstChar uint16
	LastChar  uint16

	designSize FixWord

	charInfo []uint32
	width    fixTable
	height   fixTable
	depth    fixTable
	italic   fixTable
}

// InvalidFontError indicates that a TFM file could not be decoded.
type InvalidFontError struct {
	Pos int64
	Err error
}

func (err *InvalidFontError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = fmt.Sprintf(" (at byte %d)", err.Pos)
	}
	return "not a valid TFM file" + middle + tail
}

func (err *InvalidFontError) Unwrap() error {
	return err.Err
}

// Read decodes a TFM file.
//
// Truncated or structurally inconsistent input is reported as an
// [InvalidFontError].  Out-of-range sub-table indices inside the char
// info words are not treated as errors; the corresponding geometry
// queries simply return 0, because slightly malformed metric files are
// common in the wild.
func Read(r io.ReadSeeker) (*Font, error) {
	p := &reader{r: r}

	// The preamble consists of twelve 16-bit counts.  Only the first
	// seven are needed for geometry queries; the lig/kern, kern,
	// extensible and parameter counts are skipped below.
	p.seek(2, io.SeekStart) // file length in words, unused
	lh := p.readUint16()    // length of the header in 4-byte words
	bc := p.readUint16()    // smallest character code
	ec := p.readUint16()    // largest character code
	nw := p.readUint16()    // number of words in the width table
	nh := p.readUint16()    // number of words in the height table
	nd := p.readUint16()    // number of words in the depth table
	ni := p.readUint16()    // number of words in the italic correction table

	p.seek(8, io.SeekCurrent) // skip nl, nk, ne and np
	checksum := p.readUint32()
	designSize := FixWord(p.readUint32())

	// Character codes bc-1 ≤ ec, with bc = ec+1 denoting an empty font.
	if p.err == nil && int(bc) > int(ec)+1 {
		p.err = fmt.Errorf("invalid character code range %d-%d", bc, ec)
	}
	if p.err == nil && designSize <= 0 {
		p.err = fmt.Errorf("invalid design size %d", designSize)
	}

	numChars := int(ec) - int(bc) + 1
	if numChars < 0 {
		numChars = 0
	}

	p.seek(24+int64(lh)*4, io.SeekStart)
	charInfo := p.readUint32Slice(numChars)
	width := p.readFixSlice(int(nw))
	height := p.readFixSlice(int(nh))
	depth := p.readFixSlice(int(nd))
	italic := p.readFixSlice(int(ni))

	if p.err != nil {
		return nil, &InvalidFontError{Pos: p.pos(), Err: p.err}
	}

	f := &Font{
		Checksum:   checksum,
		FirstChar:  bc,
		LastChar:   ec,
		designSize: designSize,
		charInfo:   charInfo,
		width:      width,
		height:     height,
		depth:      depth,
		italic:     italic,
	}
	return f, nil
}

// DesignSize returns the design size of the font in TeX point units.
func (f *Font) DesignSize() float64 {
	return f.designSize.Float64()
}

// Width returns the width of character c in TeX point units.
// The result is 0 if c is not present in the font.
func (f *Font) Width(c uint16) float64 {
	info, ok := f.infoWord(c)
	if !ok {
		return 0
	}
	return f.scale(f.width.get(widthIndex(info)))
}

// Height returns the height of character c in TeX point units.
// The result is 0 if c is not present in the font.
func (f *Font) Height(c uint16) float64 {
	info, ok := f.infoWord(c)
	if !ok {
		return 0
	}
	return f.scale(f.height.get(heightIndex(info)))
}

// Depth returns the depth of character c in TeX point units.
// The result is 0 if c is not present in the font.
func (f *Font) Depth(c uint16) float64 {
	info, ok := f.infoWord(c)
	if !ok {
		return 0
	}
	return f.scale(f.depth.get(depthIndex(info)))
}

// Italic returns the italic correction of character c in TeX point
// units.  The result is 0 if c is not present in the font.
func (f *Font) Italic(c uint16) float64 {
	info, ok := f.infoWord(c)
	if !ok {
		return 0
	}
	return f.scale(f.italic.get(italicIndex(info)))
}

func (f *Font) infoWord(c uint16) (uint32, bool) {
	if c < f.FirstChar || c > f.LastChar {
		return 0, false
	}
	idx := int(c) - int(f.FirstChar)
	if idx >= len(f.charInfo) {
		return 0, false
	}
	return f.charInfo[idx], true
}

func (f *Font) scale(x FixWord) float64 {
	return x.Float64() * f.designSize.Float64()
}

// reader decodes big-endian words from a seekable stream.  The first
// error encountered is latched and turns all following reads into
// no-ops, so that the decode functions above can omit per-read error
// checks.
type reader struct {
	r   io.ReadSeeker
	buf [4]byte
	err error
}

func (p *reader) seek(offset int64, whence int) {
	if p.err != nil {
		return
	}
	_, err := p.r.Seek(offset, whence)
	if err != nil {
		p.err = err
	}
}

func (p *reader) readUint16() uint16 {
	if p.err != nil {
		return 0
	}
	_, err := io.ReadFull(p.r, p.buf[:2])
	if err != nil {
		p.err = noEOF(err)
		return 0
	}
	return binary.BigEndian.Uint16(p.buf[:2])
}

func (p *reader) readUint32() uint32 {
	if p.err != nil {
		return 0
	}
	_, err := io.ReadFull(p.r, p.buf[:4])
	if err != nil {
		p.err = noEOF(err)
		return 0
	}
	return binary.BigEndian.Uint32(p.buf[:4])
}

func (p *reader) readUint32Slice(n int) []uint32 {
	if p.err != nil {
		return nil
	}
	buf := make([]byte, 4*n)
	_, err := io.ReadFull(p.r, buf)
	if err != nil {
		p.err = noEOF(err)
		return nil
	}
	res := make([]uint32, n)
	for i := range res {
		res[i] = binary.BigEndian.Uint32(buf[4*i:])
	}
	return res
}

func (p *reader) readFixSlice(n int) fixTable {
	words := p.readUint32Slice(n)
	res := make(fixTable, len(words))
	for i, w := range words {
		res[i] = FixWord(w)
	}
	return res
}

func (p *reader) pos() int64 {
	pos, err := p.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0
	}
	return pos
}

func noEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
