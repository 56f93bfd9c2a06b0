// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textsolid

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sync"

	"cogentcore.org/core/base/errors"
	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/go-fonts/latin-modern/lmsans12regular"
	"github.com/go-text/typesetting/font"
	"golang.org/x/sync/singleflight"
)

// ErrFontLoad is returned when a font cannot be read or parsed.
var ErrFontLoad = errors.New("textsolid: font load failed")

// DefaultFont is the logical path of the default font face.
const DefaultFont = "fonts/lmsans10-regular.otf"

// Embedded maps logical font paths to font data that is available
// without any file system.
var Embedded = map[string][]byte{
	DefaultFont:                  lmsans10regular.TTF,
	"fonts/lmsans10-bold.otf":    lmsans10bold.TTF,
	"fonts/lmsans12-regular.otf": lmsans12regular.TTF,
}

// Loader loads font faces by logical path, asynchronously.
// Concurrent loads of the same path share a single parse,
// and successfully parsed faces are cached.
type Loader struct {

	// FS is consulted for paths that are not in [Embedded]. It may be nil.
	FS fs.FS

	group singleflight.Group
	mu    sync.Mutex
	faces map[string]*font.Face
}

// NewLoader returns a new loader reading non-embedded fonts from fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{FS: fsys}
}

// Load starts loading the font at the given logical path and returns
// a future for the face.
func (ld *Loader) Load(fpath string) *Future[*font.Face] {
	fpath = path.Clean(fpath)
	if path.IsAbs(fpath) {
		fpath = fpath[1:]
	}
	if face, ok := ld.cached(fpath); ok {
		return Resolved(face, nil)
	}
	return Go(func() (*font.Face, error) {
		v, err, _ := ld.group.Do(fpath, func() (any, error) {
			// an earlier call may have finished since Load checked
			if face, ok := ld.cached(fpath); ok {
				return face, nil
			}
			return ld.load(fpath)
		})
		if err != nil {
			return nil, err
		}
		return v.(*font.Face), nil
	})
}

func (ld *Loader) cached(fpath string) (*font.Face, bool) {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	face, ok := ld.faces[fpath]
	return face, ok
}

func (ld *Loader) load(fpath string) (*font.Face, error) {
	b, ok := Embedded[fpath]
	if !ok {
		if ld.FS == nil {
			return nil, fmt.Errorf("%w: %q: no font file system", ErrFontLoad, fpath)
		}
		var err error
		b, err = fs.ReadFile(ld.FS, fpath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
		}
	}
	faces, err := font.ParseTTC(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrFontLoad, fpath, err)
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("%w: %q: no faces", ErrFontLoad, fpath)
	}
	slog.Debug("loaded font", "path", fpath)
	ld.mu.Lock()
	if ld.faces == nil {
		ld.faces = map[string]*font.Face{}
	}
	face, ok := ld.faces[fpath]
	if !ok {
		face = faces[0]
		ld.faces[fpath] = face
	}
	ld.mu.Unlock()
	return face, nil
}
