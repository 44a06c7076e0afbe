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

package special

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// Handlers routes special commands to the registered handlers.
//
// Routing uses the prefix token of the special, i.e. the part of the
// command before the first white space character, '=' or ':'.  Only
// exact token matches are considered; a special "bgcolors ..." is not
// routed to a handler registered for "bgcolor".
type Handlers struct {
	// Warn, if non-nil, is called when a handler reports an error.
	// Handler errors never abort a pass; a malformed special simply
	// has no effect.
	Warn func(err error)

	handlers  map[string]Handler
	listeners []PageListener
}

// NewHandlers creates an empty handler registry.
func NewHandlers() *Handlers {
	return &Handlers{
		handlers: make(map[string]Handler),
	}
}

// Register adds h to the registry.  If h also implements the
// [PageListener] interface, it is additionally registered for page
// notifications.  An error is returned if one of the prefixes of h is
// already taken.
func (hh *Handlers) Register(h Handler) error {
	prefixes := h.Prefixes()
	for _, p := range prefixes {
		if _, ok := hh.handlers[p]; ok {
			return fmt.Errorf("special prefix %q already registered", p)
		}
	}
	for _, p := range prefixes {
		hh.handlers[p] = h
	}
	if l, ok := h.(PageListener); ok {
		hh.listeners = append(hh.listeners, l)
	}
	return nil
}

// Prefixes returns the sorted list of all registered prefix tokens.
func (hh *Handlers) Prefixes() []string {
	pp := maps.Keys(hh.handlers)
	sort.Strings(pp)
	return pp
}

// Preprocess routes one special to the matching handler during the
// first pass over the document.  The return value indicates whether a
// handler was found.
func (hh *Handlers) Preprocess(cmd string, ctx Actions) bool {
	prefix, body := splitCommand(cmd)
	h, ok := hh.handlers[prefix]
	if !ok {
		return false
	}
	err := h.Preprocess(prefix, body, ctx)
	if err != nil {
		hh.warn(prefix, ctx, err)
	}
	return true
}

// Process routes one special to the matching handler during the
// rendering pass.  The return value indicates whether a handler was
// found.
func (hh *Handlers) Process(cmd string, ctx Actions) bool {
	prefix, body := splitCommand(cmd)
	h, ok := hh.handlers[prefix]
	if !ok {
		return false
	}
	err := h.Process(prefix, body, ctx)
	if err != nil {
		hh.warn(prefix, ctx, err)
	}
	return true
}

// BeginPage notifies all registered page listeners, in registration
// order.  The DVI processor calls this at the start of every page of
// the rendering pass, before the first drawing operation of the page.
func (hh *Handlers) BeginPage(pageNo int, ctx Actions) {
	for _, l := range hh.listeners {
		l.BeginPage(pageNo, ctx)
	}
}

func (hh *Handlers) warn(prefix string, ctx Actions, err error) {
	if hh.Warn == nil {
		return
	}
	hh.Warn(fmt.Errorf("special %q on page %d: %w",
		prefix, ctx.CurrentPage(), err))
}

// splitCommand separates the prefix token of a special command from
// its body.  A ':' or '=' terminating the prefix is discarded, so that
// commands like "ps: ...", "papersize=..." and "bgcolor red" are
// treated uniformly.
func splitCommand(cmd string) (prefix, body string) {
	cmd = strings.TrimSpace(cmd)
	end := strings.IndexAny(cmd, " \t:=")
	if end < 0 {
		return cmd, ""
	}
	prefix = cmd[:end]
	body = cmd[end:]
	if body[0] == ':' || body[0] == '=' {
		body = body[1:]
	}
	return prefix, strings.TrimSpace(body)
}
