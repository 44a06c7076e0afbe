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

// Package ps evaluates PostScript code embedded in DVI files.
//
// TeX packages use "ps" specials to inject raw PostScript into the
// output, and "!" specials to install header code which later
// fragments rely on.  The handler keeps a single PostScript
// interpreter per document, so that definitions made by one special
// remain visible to all following ones.
//
// The interpreter implements the language core only.  The supported
// graphics operators are added by a small prologue which records each
// call together with its operands; after a fragment has been
// executed, the handler replays the recorded calls onto the drawing
// context.
package ps

import (
	"fmt"
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/postscript"

	"seehuhn.de/go/dvisvg/color"
	"seehuhn.de/go/dvisvg/special"
)

// maxOps limits the number of PostScript operations per special, to
// keep runaway loops from stalling the conversion.
const maxOps = 100_000

// The prologue defines the graphics operators understood by the
// handler.  Each definition packs the operator name and its operands
// into an array and appends it to the journal, which the handler
// drains after every executed fragment.
const prologue = `
/dvisvg.journal 4096 array def
/dvisvg.count 0 def
/dvisvg.rec {
  dvisvg.journal dvisvg.count 3 -1 roll put
  userdict /dvisvg.count dvisvg.count 1 add put
} def
/setgray { [ 2 1 roll /setgray ] dvisvg.rec } def
/setrgbcolor { [ 4 1 roll /setrgbcolor ] dvisvg.rec } def
/sethsbcolor { [ 4 1 roll /sethsbcolor ] dvisvg.rec } def
/setcmykcolor { [ 5 1 roll /setcmykcolor ] dvisvg.rec } def
/rectfill { [ 5 1 roll /rectfill ] dvisvg.rec } def
`

// Handler implements the "ps" and "!" specials.  The zero value is
// ready to use; the interpreter is created when the first fragment is
// executed.
type Handler struct {
	intp *postscript.Interpreter
}

var _ special.Handler = (*Handler)(nil)

// Prefixes implements the [special.Handler] interface.
func (h *Handler) Prefixes() []string {
	return []string{"ps", "!"}
}

// Preprocess executes header code ("!" specials) during the first
// pass over the document, so that the definitions are in place before
// any page content runs.  Headers must not draw; recorded graphics
// calls are discarded.  Ordinary "ps" fragments are left for the
// rendering pass.  This implements the [special.Handler] interface.
func (h *Handler) Preprocess(prefix, body string, ctx special.Actions) error {
	if prefix != "!" {
		return nil
	}
	err := h.execute(body)
	h.drain()
	return err
}

// Process executes a "ps" fragment and applies the graphics calls it
// makes to the drawing context.  This implements the [special.Handler]
// interface.
func (h *Handler) Process(prefix, body string, ctx special.Actions) error {
	if prefix == "!" {
		// already executed during the first pass
		return nil
	}

	// "ps:: ..." suppresses the surrounding save/restore in other
	// drivers; here both forms are executed the same way.
	body = strings.TrimSpace(strings.TrimPrefix(body, ":"))

	execErr := h.execute(body)
	var replayErr error
	for _, call := range h.drain() {
		if err := apply(call, ctx); err != nil && replayErr == nil {
			replayErr = err
		}
	}
	if execErr != nil {
		return execErr
	}
	return replayErr
}

func (h *Handler) execute(code string) error {
	if h.intp == nil {
		intp := postscript.NewInterpreter()
		intp.MaxOps = maxOps
		if err := intp.ExecuteString(prologue); err != nil {
			return err
		}
		h.intp = intp
	}
	h.intp.NumOps = 0
	return h.intp.ExecuteString(code)
}

// drain returns the graphics calls recorded since the last call to
// drain, and resets the journal.
func (h *Handler) drain() []postscript.Object {
	if h.intp == nil {
		return nil
	}
	journal, _ := h.intp.UserDict["dvisvg.journal"].(postscript.Array)
	n, _ := h.intp.UserDict["dvisvg.count"].(postscript.Integer)
	if int(n) > len(journal) {
		n = postscript.Integer(len(journal))
	}
	h.intp.UserDict["dvisvg.count"] = postscript.Integer(0)
	return journal[:n]
}

// apply translates one recorded graphics call into operations on the
// drawing context.
func apply(entry postscript.Object, ctx special.Actions) error {
	call, ok := entry.(postscript.Array)
	if !ok || len(call) == 0 {
		return fmt.Errorf("malformed graphics call %v", entry)
	}
	op, _ := call[len(call)-1].(postscript.Name)
	args := make([]float64, len(call)-1)
	for i, obj := range call[:len(call)-1] {
		x, ok := number(obj)
		if !ok {
			return fmt.Errorf("%s: invalid operand %v", op, obj)
		}
		args[i] = x
	}

	switch {
	case op == "setgray" && len(args) == 1:
		ctx.SetFillColor(color.Gray(args[0]))
	case op == "setrgbcolor" && len(args) == 3:
		ctx.SetFillColor(color.Color{R: args[0], G: args[1], B: args[2]})
	case op == "sethsbcolor" && len(args) == 3:
		ctx.SetFillColor(color.HSB(args[0], args[1], args[2]))
	case op == "setcmykcolor" && len(args) == 4:
		ctx.SetFillColor(color.CMYK(args[0], args[1], args[2], args[3]))
	case op == "rectfill" && len(args) == 4:
		r := rect.Rect{
			LLx: args[0],
			LLy: args[1],
			URx: args[0] + args[2],
			URy: args[1] + args[3],
		}
		ctx.FillRect(r, ctx.FillColor())
	default:
		return fmt.Errorf("%s: invalid graphics call", op)
	}
	return nil
}

func number(obj postscript.Object) (float64, bool) {
	switch x := obj.(type) {
	case postscript.Integer:
		return float64(x), true
	case postscript.Real:
		return float64(x), true
	}
	return 0, false
}
