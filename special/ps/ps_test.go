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

package ps

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/dvisvg/color"
	"seehuhn.de/go/dvisvg/internal/debug/canvas"
	"seehuhn.de/go/dvisvg/special"
)

func TestSetColor(t *testing.T) {
	cases := []struct {
		code string
		want color.Color
	}{
		{"0.25 setgray", color.Gray(0.25)},
		{"1 0 0 setrgbcolor", color.Color{R: 1}},
		{"0 1 1 0 setcmykcolor", color.Color{R: 1}},
		{"0 1 1 sethsbcolor", color.Color{R: 1}},
	}
	for _, test := range cases {
		h := &Handler{}
		ctx := canvas.New()
		if err := h.Process("ps", test.code, ctx); err != nil {
			t.Errorf("%q: %v", test.code, err)
			continue
		}
		if ctx.Fill != test.want {
			t.Errorf("%q: got %v, want %v", test.code, ctx.Fill, test.want)
		}
	}
}

func TestRectFill(t *testing.T) {
	h := &Handler{}
	ctx := canvas.New()
	err := h.Process("ps", "0 0 1 setrgbcolor 10 20 100 50 rectfill", ctx)
	if err != nil {
		t.Fatal(err)
	}

	want := []canvas.FillOp{
		{
			Page: 1,
			Rect: rect.Rect{LLx: 10, LLy: 20, URx: 110, URy: 70},
			Col:  color.Color{B: 1},
		},
	}
	if d := cmp.Diff(want, ctx.Filled); d != "" {
		t.Errorf("fills (-want +got):\n%s", d)
	}
}

func TestStatePersists(t *testing.T) {
	// definitions made by one special are visible to later ones
	h := &Handler{}
	ctx := canvas.New()
	if err := h.Process("ps", "/w 100 def", ctx); err != nil {
		t.Fatal(err)
	}
	if len(ctx.Filled) != 0 {
		t.Fatalf("unexpected fills %v", ctx.Filled)
	}

	if err := h.Process("ps", "0 0 w 50 rectfill", ctx); err != nil {
		t.Fatal(err)
	}
	want := rect.Rect{URx: 100, URy: 50}
	if len(ctx.Filled) != 1 || ctx.Filled[0].Rect != want {
		t.Errorf("fills: got %v, want rect %v", ctx.Filled, want)
	}
}

func TestHeaders(t *testing.T) {
	h := &Handler{}
	ctx := canvas.New()

	// header code runs during the first pass and must not draw
	err := h.Preprocess("!", "/unit 10 def 0 0 1 1 rectfill", ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(ctx.Filled) != 0 {
		t.Fatalf("header drew %v", ctx.Filled)
	}

	// the discarded header fills must not resurface later
	if err := h.Process("!", "/unit 10 def 0 0 1 1 rectfill", ctx); err != nil {
		t.Fatal(err)
	}
	if len(ctx.Filled) != 0 {
		t.Fatalf("header drew %v", ctx.Filled)
	}

	// page content can use the header definitions
	if err := h.Process("ps", "0 0 unit unit rectfill", ctx); err != nil {
		t.Fatal(err)
	}
	want := rect.Rect{URx: 10, URy: 10}
	if len(ctx.Filled) != 1 || ctx.Filled[0].Rect != want {
		t.Errorf("fills: got %v, want rect %v", ctx.Filled, want)
	}
}

func TestNoSaveVariant(t *testing.T) {
	// "ps:: ..." reaches the handler with a leading ':' in the body
	h := &Handler{}
	ctx := canvas.New()
	if err := h.Process("ps", ": 0.5 setgray", ctx); err != nil {
		t.Fatal(err)
	}
	if want := color.Gray(0.5); ctx.Fill != want {
		t.Errorf("fill color: got %v, want %v", ctx.Fill, want)
	}
}

func TestExecutionError(t *testing.T) {
	h := &Handler{}
	ctx := canvas.New()
	if err := h.Process("ps", "nosuchoperator", ctx); err == nil {
		t.Error("undefined operator not reported")
	}

	// the interpreter must survive a failed fragment
	if err := h.Process("ps", "1 0 0 setrgbcolor", ctx); err != nil {
		t.Fatal(err)
	}
	if want := (color.Color{R: 1}); ctx.Fill != want {
		t.Errorf("fill color: got %v, want %v", ctx.Fill, want)
	}
}

func TestRegistration(t *testing.T) {
	hh := special.NewHandlers()
	h := &Handler{}
	if err := hh.Register(h); err != nil {
		t.Fatal(err)
	}

	ctx := canvas.New()
	if !hh.Preprocess("! /unit 10 def", ctx) {
		t.Fatal("header special not dispatched")
	}
	if !hh.Process("ps: 0 0 unit unit rectfill", ctx) {
		t.Fatal("ps special not dispatched")
	}
	want := rect.Rect{URx: 10, URy: 10}
	if len(ctx.Filled) != 1 || ctx.Filled[0].Rect != want {
		t.Errorf("fills: got %v, want rect %v", ctx.Filled, want)
	}
}
