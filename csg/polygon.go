// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csg implements constructive solid geometry on triangle
// meshes using binary space partitioning trees, following the
// classic csg.js formulation by Evan Wallace.
package csg

import "cogentcore.org/core/math32"

// Epsilon is the tolerance used to decide whether a point is on a plane.
var Epsilon = float32(1e-4)

// Vertex is a polygon vertex with position and normal.
type Vertex struct {
	Pos    math32.Vector3
	Normal math32.Vector3
}

// Interpolate returns the vertex at t between v and o.
func (v Vertex) Interpolate(o Vertex, t float32) Vertex {
	return Vertex{
		Pos:    v.Pos.Add(o.Pos.Sub(v.Pos).MulScalar(t)),
		Normal: v.Normal.Add(o.Normal.Sub(v.Normal).MulScalar(t)),
	}
}

// Plane is the plane of points p with Normal . p == W.
type Plane struct {
	Normal math32.Vector3
	W      float32
}

// PlaneFromPoints returns the plane through a, b, c, wound
// counter-clockwise. ok is false for degenerate points.
func PlaneFromPoints(a, b, c math32.Vector3) (pl Plane, ok bool) {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Length() < Epsilon*Epsilon {
		return pl, false
	}
	n = n.Normal()
	return Plane{Normal: n, W: n.Dot(a)}, true
}

// Flip reverses the plane orientation.
func (pl *Plane) Flip() {
	pl.Normal = pl.Normal.Negate()
	pl.W = -pl.W
}

// Polygon is a convex planar polygon.
type Polygon struct {
	Vertices []Vertex
	Plane    Plane
}

// NewPolygon returns a polygon for the given vertices, whose plane
// is computed from the first three.
func NewPolygon(vs []Vertex) (*Polygon, bool) {
	if len(vs) < 3 {
		return nil, false
	}
	pl, ok := PlaneFromPoints(vs[0].Pos, vs[1].Pos, vs[2].Pos)
	if !ok {
		return nil, false
	}
	return &Polygon{Vertices: vs, Plane: pl}, true
}

// Clone returns a copy of the polygon.
func (pg *Polygon) Clone() *Polygon {
	return &Polygon{Vertices: append([]Vertex(nil), pg.Vertices...), Plane: pg.Plane}
}

// Flip reverses the winding and normals of the polygon.
func (pg *Polygon) Flip() {
	n := len(pg.Vertices)
	for i := 0; i < n/2; i++ {
		pg.Vertices[i], pg.Vertices[n-1-i] = pg.Vertices[n-1-i], pg.Vertices[i]
	}
	for i := range pg.Vertices {
		pg.Vertices[i].Normal = pg.Vertices[i].Normal.Negate()
	}
	pg.Plane.Flip()
}

const (
	coplanar = 0
	front    = 1
	back     = 2
	spanning = 3
)

// split splits pg by the plane and appends the pieces to the lists.
// Coplanar polygons go into coFront or coBack depending on their
// orientation.
func (pl *Plane) split(pg *Polygon, coFront, coBack, fr, bk *[]*Polygon) {
	ptype := 0
	types := make([]int, len(pg.Vertices))
	for i, v := range pg.Vertices {
		t := pl.Normal.Dot(v.Pos) - pl.W
		typ := coplanar
		if t < -Epsilon {
			typ = back
		} else if t > Epsilon {
			typ = front
		}
		ptype |= typ
		types[i] = typ
	}
	switch ptype {
	case coplanar:
		if pl.Normal.Dot(pg.Plane.Normal) > 0 {
			*coFront = append(*coFront, pg)
		} else {
			*coBack = append(*coBack, pg)
		}
	case front:
		*fr = append(*fr, pg)
	case back:
		*bk = append(*bk, pg)
	case spanning:
		var f, b []Vertex
		n := len(pg.Vertices)
		for i := range n {
			j := (i + 1) % n
			ti, tj := types[i], types[j]
			vi, vj := pg.Vertices[i], pg.Vertices[j]
			if ti != back {
				f = append(f, vi)
			}
			if ti != front {
				b = append(b, vi)
			}
			if ti|tj == spanning {
				t := (pl.W - pl.Normal.Dot(vi.Pos)) / pl.Normal.Dot(vj.Pos.Sub(vi.Pos))
				v := vi.Interpolate(vj, t)
				f = append(f, v)
				b = append(b, v)
			}
		}
		if len(f) >= 3 {
			*fr = append(*fr, &Polygon{Vertices: f, Plane: pg.Plane})
		}
		if len(b) >= 3 {
			*bk = append(*bk, &Polygon{Vertices: b, Plane: pg.Plane})
		}
	}
}
