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

package font

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"seehuhn.de/go/dvisvg/font/afm"
	"seehuhn.de/go/dvisvg/font/otf"
	"seehuhn.de/go/dvisvg/font/tfm"
)

// make sure all metric sources implement the Metrics interface
var (
	_ Metrics = (*tfm.Font)(nil)
	_ Metrics = (*afm.Font)(nil)
	_ Metrics = (*otf.Font)(nil)
)

// ErrNotFound indicates that no metric file for a font could be
// located.
var ErrNotFound = errors.New("no font metrics found")

// defaultSize is the design size assumed for metric sources which do
// not record one, in TeX points.
const defaultSize = 10

// A Loader locates and reads font metric files.
//
// For a font "name", the loader tries "name.tfm", "name.afm",
// "name.otf" and "name.ttf" in this order, in each of the search
// directories.  Loaded metrics are cached per font name; the cache is
// not safe for concurrent use.
type Loader struct {
	dirs  []string
	cache map[string]Metrics
}

// NewLoader creates a Loader which searches the given directories.
func NewLoader(dirs ...string) *Loader {
	return &Loader{
		dirs:  dirs,
		cache: make(map[string]Metrics),
	}
}

// Load returns the metrics for the font with the given base name.
// If no metric file can be located, the error wraps [ErrNotFound].
func (l *Loader) Load(name string) (Metrics, error) {
	if f, ok := l.cache[name]; ok {
		return f, nil
	}

	f, err := l.open(name)
	if err != nil {
		return nil, err
	}
	l.cache[name] = f
	return f, nil
}

func (l *Loader) open(name string) (Metrics, error) {
	type format struct {
		ext  string
		read func(f *os.File) (Metrics, error)
	}
	formats := []format{
		{".tfm", func(f *os.File) (Metrics, error) {
			return tfm.Read(f)
		}},
		{".afm", func(f *os.File) (Metrics, error) {
			return afm.Read(f, defaultSize)
		}},
		{".otf", func(f *os.File) (Metrics, error) {
			return otf.Read(f, defaultSize)
		}},
		{".ttf", func(f *os.File) (Metrics, error) {
			return otf.Read(f, defaultSize)
		}},
	}

	for _, dir := range l.dirs {
		for _, format := range formats {
			path := filepath.Join(dir, name+format.ext)
			fd, err := os.Open(path)
			if os.IsNotExist(err) {
				continue
			} else if err != nil {
				return nil, err
			}

			m, err := format.read(fd)
			closeErr := fd.Close()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			if closeErr != nil {
				return nil, closeErr
			}
			return m, nil
		}
	}
	return nil, fmt.Errorf("font %q: %w", name, ErrNotFound)
}
