// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint/ppath"
	"cogentcore.org/core/paint/ppath/intersect"
)

// DefaultTolerance is the maximum deviation in world units used when
// flattening curves into line segments.
const DefaultTolerance = float32(0.01)

// Contour is a closed ring of points. The first point is not repeated
// at the end.
type Contour []math32.Vector2

// Area returns the signed area of the contour, which is positive
// for counter-clockwise winding.
func (c Contour) Area() float32 {
	var a float32
	n := len(c)
	for i := range n {
		p, q := c[i], c[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Reversed returns a copy of the contour with reversed winding.
func (c Contour) Reversed() Contour {
	r := slices.Clone(c)
	slices.Reverse(r)
	return r
}

// Oriented returns the contour wound counter-clockwise if ccw is true,
// and clockwise otherwise.
func (c Contour) Oriented(ccw bool) Contour {
	if (c.Area() > 0) == ccw {
		return c
	}
	return c.Reversed()
}

// Contains returns true if p is inside the contour, using the even-odd rule.
func (c Contour) Contains(p math32.Vector2) bool {
	in := false
	n := len(c)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := c[i], c[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

// Polygon is an outer contour with zero or more holes.
type Polygon struct {
	Outer Contour
	Holes []Contour
}

// Contours flattens the curves of the path with the given tolerance
// and returns one contour per closed subpath. Subpaths with fewer than
// three distinct points are dropped.
func Contours(p ppath.Path, tolerance float32) []Contour {
	var cs []Contour
	for _, sp := range intersect.Flatten(p, tolerance).Split() {
		pts := sp.Coords()
		if n := len(pts); n > 1 && ppath.EqualPoint(pts[0], pts[n-1]) {
			pts = pts[:n-1]
		}
		if len(pts) < 3 || math32.Abs(Contour(pts).Area()) < tolerance*tolerance {
			continue
		}
		cs = append(cs, Contour(pts))
	}
	return cs
}

// Nest groups contours into polygons by containment depth: a contour
// inside an even number of other contours is an outer boundary, and a
// contour inside an odd number is a hole of its innermost container.
// This does not depend on the winding of the source contours, which
// varies between font formats.
func Nest(cs []Contour) []Polygon {
	n := len(cs)
	depth := make([]int, n)
	parent := make([]int, n)
	area := make([]float32, n)
	for i := range cs {
		area[i] = math32.Abs(cs[i].Area())
	}
	for i := range cs {
		parent[i] = -1
		for j := range cs {
			if i == j || area[j] <= area[i] || !cs[j].Contains(cs[i][0]) {
				continue
			}
			depth[i]++
			if parent[i] < 0 || area[j] < area[parent[i]] {
				parent[i] = j
			}
		}
	}
	idx := make([]int, n)
	var pgs []Polygon
	for i := range cs {
		idx[i] = -1
		if depth[i]%2 == 0 {
			idx[i] = len(pgs)
			pgs = append(pgs, Polygon{Outer: cs[i].Oriented(true)})
		}
	}
	for i := range cs {
		if depth[i]%2 == 1 && parent[i] >= 0 && idx[parent[i]] >= 0 {
			pg := &pgs[idx[parent[i]]]
			pg.Holes = append(pg.Holes, cs[i].Oriented(false))
		}
	}
	return pgs
}
