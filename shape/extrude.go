// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint/ppath"
)

// Extrude returns an indexed solid made by extruding the polygons
// along +Z from z = 0 to z = depth. The front cap faces +Z, the back
// cap faces -Z, and each contour edge gets a flat side quad.
func Extrude(pgs []Polygon, depth float32) *Mesh {
	ms := &Mesh{Name: "extrude", Index: math32.ArrayU32{}}
	front := math32.Vec3(0, 0, 1)
	back := front.Negate()
	for _, pg := range pgs {
		if len(pg.Outer) < 3 {
			continue
		}
		pts, tris := Triangulate(pg)
		fb := ms.NumVertex()
		for _, p := range pts {
			ms.AddVertex(math32.Vec3(p.X, p.Y, depth), front)
		}
		bb := ms.NumVertex()
		for _, p := range pts {
			ms.AddVertex(math32.Vec3(p.X, p.Y, 0), back)
		}
		for i := 0; i+2 < len(tris); i += 3 {
			a, b, c := tris[i], tris[i+1], tris[i+2]
			ms.AddTriangle(fb+a, fb+b, fb+c)
			ms.AddTriangle(bb+a, bb+c, bb+b)
		}
		addSides(ms, pg.Outer.Oriented(true), depth)
		for _, h := range pg.Holes {
			addSides(ms, h.Oriented(false), depth)
		}
	}
	return ms
}

// addSides adds the side walls of one contour. Outer contours must be
// counter-clockwise and holes clockwise, so normals face out of the solid.
func addSides(ms *Mesh, c Contour, depth float32) {
	n := len(c)
	for i := range n {
		a, b := c[i], c[(i+1)%n]
		d := b.Sub(a)
		nrm := math32.Vec3(d.Y, -d.X, 0).Normal()
		a0 := ms.AddVertex(math32.Vec3(a.X, a.Y, 0), nrm)
		b0 := ms.AddVertex(math32.Vec3(b.X, b.Y, 0), nrm)
		b1 := ms.AddVertex(math32.Vec3(b.X, b.Y, depth), nrm)
		a1 := ms.AddVertex(math32.Vec3(a.X, a.Y, depth), nrm)
		ms.AddTriangle(a0, b0, b1)
		ms.AddTriangle(a0, b1, a1)
	}
}

// ExtrudePath flattens the closed path, nests its contours into
// polygons with holes, and extrudes them to the given depth.
func ExtrudePath(p ppath.Path, depth, tolerance float32) *Mesh {
	return Extrude(Nest(Contours(p, tolerance)), depth)
}

// arcSteps returns the number of chords needed to follow an arc of the
// given radius and span so that no chord strays more than tolerance
// from the circle.
func arcSteps(radius, span, tolerance float32) int {
	if radius <= tolerance {
		return 1
	}
	step := 2 * math32.Acos(1-tolerance/radius)
	return max(int(math32.Ceil(math32.Abs(span)/step)), 1)
}

// arcPoints appends the points of an arc of given radius from angle a0
// to a1, both included, to c.
func arcPoints(c Contour, radius, a0, a1 float32) Contour {
	if radius <= 0 {
		return append(c, math32.Vector2{})
	}
	n := arcSteps(radius, a1-a0, DefaultTolerance)
	for i := 0; i <= n; i++ {
		s, co := math32.Sincos(a0 + (a1-a0)*float32(i)/float32(n))
		c = append(c, math32.Vec2(radius*co, radius*s))
	}
	return c
}

// ArcRingContour returns the planar loop of a ring segment centered at
// the origin, between the given angles in radians, with outer radius
// radius and inner radius radius - thickness, wound counter-clockwise.
// Both arcs stay within [DefaultTolerance] of the true circles, with
// every vertex exactly on them.
func ArcRingContour(radius, thickness, start, end float32) Contour {
	if end < start {
		start, end = end, start
	}
	c := arcPoints(nil, radius, start, end)
	c = arcPoints(c, radius-thickness, end, start)
	return c.Oriented(true)
}

// ArcRingPath returns the closed polyline outline of [ArcRingContour].
func ArcRingPath(radius, thickness, start, end float32) ppath.Path {
	c := ArcRingContour(radius, thickness, start, end)
	p := ppath.Path{}
	for i, pt := range c {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
		} else {
			p.LineTo(pt.X, pt.Y)
		}
	}
	p.Close()
	return p
}

// NewArcRing returns an indexed solid ring segment in the XY plane,
// extruded along +Z from 0 to depth.
func NewArcRing(radius, thickness, depth, start, end float32) *Mesh {
	ms := Extrude([]Polygon{{Outer: ArcRingContour(radius, thickness, start, end)}}, depth)
	ms.Name = "arc"
	return ms
}
