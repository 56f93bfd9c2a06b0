// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	gshape "cogentcore.org/core/gpu/shape"
	"cogentcore.org/core/math32"
)

// DefaultEdgeAngle is the default crease angle in degrees for [Edges].
const DefaultEdgeAngle = float32(1)

// Lines is a set of line segments, two vertices per segment,
// used to outline solids.
type Lines struct {
	Vertex math32.ArrayF32

	released bool
}

// NumSegments returns the number of line segments.
func (ls *Lines) NumSegments() int {
	return len(ls.Vertex) / 6
}

// BBox returns the bounding box of the segment endpoints.
func (ls *Lines) BBox() math32.Box3 {
	return gshape.BBoxFromVtxs(ls.Vertex, 0, len(ls.Vertex)/3)
}

// Release frees the vertex buffer.
func (ls *Lines) Release() {
	ls.Vertex = nil
	ls.released = true
}

// Released returns true if [Lines.Release] has been called.
func (ls *Lines) Released() bool {
	return ls.released
}

type edgePoint [3]int32

type edgeKey [2]edgePoint

type edgeFace struct {
	normal math32.Vector3
	a, b   math32.Vector3
}

func quantize(v math32.Vector3) edgePoint {
	const prec = 1e4
	return edgePoint{int32(math32.Round(v.X * prec)), int32(math32.Round(v.Y * prec)), int32(math32.Round(v.Z * prec))}
}

func lessPoint(a, b edgePoint) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Edges returns the outline of the mesh: every edge shared by two
// faces whose normals differ by more than thresholdDeg degrees, plus
// every edge that belongs to only one face.
func Edges(ms *Mesh, thresholdDeg float32) *Lines {
	thresh := math32.Cos(math32.DegToRad(thresholdDeg))
	seen := map[edgeKey]edgeFace{}
	var order []edgeKey
	ls := &Lines{}
	add := func(a, b math32.Vector3) {
		ls.Vertex = append(ls.Vertex, a.X, a.Y, a.Z, b.X, b.Y, b.Z)
	}
	nt := ms.NumTriangles()
	for t := 0; t < nt; t++ {
		a, b, c := ms.Triangle(t)
		n := math32.Normal(a, b, c)
		qs := [3]edgePoint{quantize(a), quantize(b), quantize(c)}
		if qs[0] == qs[1] || qs[1] == qs[2] || qs[0] == qs[2] {
			continue
		}
		vs := [3]math32.Vector3{a, b, c}
		for i := range 3 {
			j := (i + 1) % 3
			k := edgeKey{qs[i], qs[j]}
			if lessPoint(qs[j], qs[i]) {
				k = edgeKey{qs[j], qs[i]}
			}
			if f, ok := seen[k]; ok {
				if f.normal.Dot(n) <= thresh {
					add(f.a, f.b)
				}
				delete(seen, k)
				continue
			}
			seen[k] = edgeFace{normal: n, a: vs[i], b: vs[j]}
			order = append(order, k)
		}
	}
	for _, k := range order {
		if f, ok := seen[k]; ok {
			add(f.a, f.b)
			delete(seen, k)
		}
	}
	return ls
}
