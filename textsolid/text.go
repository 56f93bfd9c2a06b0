// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textsolid builds extruded 3D text solids from font glyph
// outlines, with asynchronous, deduplicated font loading.
package textsolid

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint/ppath"
	"cogentcore.org/wifistand/shape"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// LineHeight is the distance between lines of text, relative to size.
const LineHeight = 1.2

// Params are the parameters for building a text solid.
type Params struct {

	// Size is the nominal font size (em height) in world units.
	Size float32

	// Depth is the extrusion depth along +Z.
	Depth float32

	// Tolerance is the maximum curve flattening deviation.
	// If zero, Size/500 is used.
	Tolerance float32
}

// Text is an extruded text solid.
type Text struct {
	Mesh *shape.Mesh

	// Width and Height are the extent of the mesh bounding box.
	Width, Height float32

	// Offset is (-Width/2, -Height/2), which callers add to an anchor
	// position to center the text on it.
	Offset math32.Vector2
}

// Outline returns the glyph outlines of the text laid out on a baseline
// starting at the origin, with y pointing up. Characters the face does
// not map are skipped.
func Outline(face *font.Face, text string, size float32) ppath.Path {
	sc := size / float32(face.Upem())
	p := ppath.Path{}
	var x, y float32
	for _, r := range text {
		if r == '\n' {
			x = 0
			y -= LineHeight * size
			continue
		}
		gid, ok := face.NominalGlyph(r)
		if !ok {
			continue
		}
		if outline, ok := face.GlyphData(gid).(font.GlyphOutline); ok {
			for _, s := range outline.Segments {
				p0 := math32.Vec2(s.Args[0].X*sc+x, s.Args[0].Y*sc+y)
				switch s.Op {
				case opentype.SegmentOpMoveTo:
					p.Close()
					p.MoveTo(p0.X, p0.Y)
				case opentype.SegmentOpLineTo:
					p.LineTo(p0.X, p0.Y)
				case opentype.SegmentOpQuadTo:
					p1 := math32.Vec2(s.Args[1].X*sc+x, s.Args[1].Y*sc+y)
					p.QuadTo(p0.X, p0.Y, p1.X, p1.Y)
				case opentype.SegmentOpCubeTo:
					p1 := math32.Vec2(s.Args[1].X*sc+x, s.Args[1].Y*sc+y)
					p2 := math32.Vec2(s.Args[2].X*sc+x, s.Args[2].Y*sc+y)
					p.CubeTo(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y)
				}
			}
			p.Close()
		}
		x += sc * face.HorizontalAdvance(gid)
	}
	return p
}

// Build returns the extruded solid of the text in the given face.
// Glyph contours are classified into outlines and holes by nesting,
// so the result does not depend on the winding convention of the font.
func Build(face *font.Face, text string, pr Params) (*Text, error) {
	if face == nil {
		return nil, fmt.Errorf("textsolid.Build: %w: nil face", ErrFontLoad)
	}
	tol := pr.Tolerance
	if tol <= 0 {
		tol = pr.Size / 500
	}
	ms := shape.ExtrudePath(Outline(face, text, pr.Size), pr.Depth, tol)
	ms.Name = "text"
	tx := &Text{Mesh: ms}
	if !ms.IsEmpty() {
		bb := ms.BBox()
		sz := bb.Size()
		tx.Width, tx.Height = sz.X, sz.Y
	}
	tx.Offset = math32.Vec2(-0.5*tx.Width, -0.5*tx.Height)
	return tx, nil
}

// BuildAsync loads the font at fontPath with the loader and builds the
// text solid once it is available.
func BuildAsync(ld *Loader, fontPath, text string, pr Params) *Future[*Text] {
	return Then(ld.Load(fontPath), func(face *font.Face) (*Text, error) {
		return Build(face, text, pr)
	})
}
