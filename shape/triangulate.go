// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"slices"

	"cogentcore.org/core/math32"
)

// Triangulate decomposes the polygon into triangles by ear clipping,
// after bridging each hole into the outer contour. It returns the
// points (outer contour first, then holes in order) and the
// counter-clockwise triangle indexes into them.
func Triangulate(pg Polygon) ([]math32.Vector2, []int) {
	outer := pg.Outer.Oriented(true)
	pts := slices.Clone([]math32.Vector2(outer))
	ring := make([]int, len(outer))
	for i := range ring {
		ring[i] = i
	}
	holes := make([]Contour, len(pg.Holes))
	for i, h := range pg.Holes {
		holes[i] = h.Oriented(false)
	}
	// rightmost holes first, so later bridges can pass through earlier ones
	slices.SortFunc(holes, func(a, b Contour) int {
		ax, bx := a[rightmost(a)].X, b[rightmost(b)].X
		switch {
		case ax > bx:
			return -1
		case ax < bx:
			return 1
		}
		return 0
	})
	for _, h := range holes {
		if len(h) < 3 {
			continue
		}
		base := len(pts)
		pts = append(pts, h...)
		m := rightmost(h)
		bp := bridge(pts, ring, pts[base+m])
		nr := make([]int, 0, len(ring)+len(h)+2)
		nr = append(nr, ring[:bp+1]...)
		for k := 0; k <= len(h); k++ {
			nr = append(nr, base+(m+k)%len(h))
		}
		nr = append(nr, ring[bp])
		nr = append(nr, ring[bp+1:]...)
		ring = nr
	}
	return pts, earClip(pts, ring)
}

func rightmost(c Contour) int {
	mi := 0
	for i, p := range c {
		if p.X > c[mi].X || (p.X == c[mi].X && p.Y < c[mi].Y) {
			mi = i
		}
	}
	return mi
}

func cross2(o, a, b math32.Vector2) float32 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func inTriangle(p, a, b, c math32.Vector2) bool {
	return cross2(a, b, p) >= 0 && cross2(b, c, p) >= 0 && cross2(c, a, p) >= 0
}

// bridge returns the position in ring of a vertex visible from the
// hole vertex m, following the ray casting method of Eberly.
func bridge(pts []math32.Vector2, ring []int, m math32.Vector2) int {
	n := len(ring)
	bestX := math32.Inf(1)
	best := -1
	for i := range n {
		a, b := pts[ring[i]], pts[ring[(i+1)%n]]
		if a.Y == b.Y || min(a.Y, b.Y) > m.Y || max(a.Y, b.Y) < m.Y {
			continue
		}
		x := a.X + (m.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x < m.X || x >= bestX {
			continue
		}
		bestX = x
		if a.X > b.X {
			best = i
		} else {
			best = (i + 1) % n
		}
	}
	if best < 0 {
		return nearest(pts, ring, m)
	}
	p := pts[ring[best]]
	if p.X == bestX && p.Y == m.Y {
		return best
	}
	// a reflex vertex inside the triangle (m, hit, p) may block p;
	// take the one with the smallest angle to the ray instead.
	hit := math32.Vec2(bestX, m.Y)
	tri := [3]math32.Vector2{m, hit, p}
	if cross2(m, hit, p) < 0 {
		tri[1], tri[2] = p, hit
	}
	bestTan := math32.Inf(1)
	for i := range n {
		q := pts[ring[i]]
		if i == best || q.X < m.X || !reflex(pts, ring, i) || !inTriangle(q, tri[0], tri[1], tri[2]) {
			continue
		}
		dx := q.X - m.X
		if dx == 0 {
			continue
		}
		if tn := math32.Abs(q.Y-m.Y) / dx; tn < bestTan {
			bestTan = tn
			best = i
		}
	}
	return best
}

func nearest(pts []math32.Vector2, ring []int, m math32.Vector2) int {
	bi := 0
	bd := math32.Inf(1)
	for i, r := range ring {
		dv := pts[r].Sub(m)
		if d := dv.Dot(dv); d < bd {
			bd, bi = d, i
		}
	}
	return bi
}

func reflex(pts []math32.Vector2, ring []int, i int) bool {
	n := len(ring)
	a, b, c := pts[ring[(i+n-1)%n]], pts[ring[i]], pts[ring[(i+1)%n]]
	return cross2(a, b, c) <= 0
}

// earClip triangulates the simple counter-clockwise ring.
func earClip(pts []math32.Vector2, ring []int) []int {
	ring = slices.Clone(ring)
	var tris []int
	fails := 0
	i := 0
	for len(ring) > 3 {
		n := len(ring)
		i %= n
		ia, ib, ic := ring[(i+n-1)%n], ring[i], ring[(i+1)%n]
		if isEar(pts, ring, ia, ib, ic) {
			tris = append(tris, ia, ib, ic)
			ring = slices.Delete(ring, i, i+1)
			fails = 0
			continue
		}
		i++
		fails++
		if fails < n {
			continue
		}
		// no ear: the remaining ring is degenerate, drop its flattest vertex.
		fi, fa := 0, math32.Inf(1)
		for k := range n {
			a := cross2(pts[ring[(k+n-1)%n]], pts[ring[k]], pts[ring[(k+1)%n]])
			if math32.Abs(a) < fa {
				fi, fa = k, math32.Abs(a)
			}
		}
		ring = slices.Delete(ring, fi, fi+1)
		fails = 0
	}
	if len(ring) == 3 && cross2(pts[ring[0]], pts[ring[1]], pts[ring[2]]) > 0 {
		tris = append(tris, ring...)
	}
	return tris
}

func isEar(pts []math32.Vector2, ring []int, ia, ib, ic int) bool {
	a, b, c := pts[ia], pts[ib], pts[ic]
	if cross2(a, b, c) <= 0 {
		return false
	}
	for _, r := range ring {
		if r == ia || r == ib || r == ic {
			continue
		}
		p := pts[r]
		if p == a || p == b || p == c {
			continue
		}
		if inTriangle(p, a, b, c) {
			return false
		}
	}
	return true
}
