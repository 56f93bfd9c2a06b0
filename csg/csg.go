// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csg

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/wifistand/scene"
	"cogentcore.org/wifistand/shape"
)

// ErrNoGeometry is returned by [SubtractNodes] when an operand has no mesh.
var ErrNoGeometry = errors.New("csg: operand has no geometry")

func clonePolygons(pgs []*Polygon) []*Polygon {
	cp := make([]*Polygon, len(pgs))
	for i, pg := range pgs {
		cp[i] = pg.Clone()
	}
	return cp
}

// Subtract returns the polygons of solid a minus solid b.
// The inputs are not modified.
func Subtract(a, b []*Polygon) []*Polygon {
	an := newNode(clonePolygons(a))
	bn := newNode(clonePolygons(b))
	an.invert()
	an.clipTo(bn)
	bn.clipTo(an)
	bn.invert()
	bn.clipTo(an)
	bn.invert()
	an.build(bn.allPolygons())
	an.invert()
	return an.allPolygons()
}

// union returns the polygons of solid a plus solid b.
// The inputs are not modified.
func union(a, b []*Polygon) []*Polygon {
	an := newNode(clonePolygons(a))
	bn := newNode(clonePolygons(b))
	an.clipTo(bn)
	bn.clipTo(an)
	bn.invert()
	bn.clipTo(an)
	bn.invert()
	an.build(bn.allPolygons())
	return an.allPolygons()
}

// intersect returns the polygons of the volume common to a and b.
// The inputs are not modified.
func intersect(a, b []*Polygon) []*Polygon {
	an := newNode(clonePolygons(a))
	bn := newNode(clonePolygons(b))
	an.invert()
	bn.clipTo(an)
	bn.invert()
	an.clipTo(bn)
	bn.clipTo(an)
	an.build(bn.allPolygons())
	an.invert()
	return an.allPolygons()
}

// FromMesh returns one polygon per non-degenerate triangle of the mesh,
// transformed by m if it is not nil.
func FromMesh(ms *shape.Mesh, m *math32.Matrix4) []*Polygon {
	nt := ms.NumTriangles()
	hasNorm := len(ms.Normal) == len(ms.Vertex)
	pgs := make([]*Polygon, 0, nt)
	for t := range nt {
		ia, ib, ic := ms.TriangleIndexes(t)
		vs := make([]Vertex, 3)
		for k, i := range [3]int{ia, ib, ic} {
			v := Vertex{Pos: ms.Pos(i)}
			if hasNorm {
				v.Normal = ms.Norm(i)
			}
			if m != nil {
				v.Pos = shape.MulPoint(m, v.Pos)
				v.Normal = shape.MulDir(m, v.Normal)
			}
			vs[k] = v
		}
		pg, ok := NewPolygon(vs)
		if !ok {
			continue
		}
		if !hasNorm {
			for k := range vs {
				vs[k].Normal = pg.Plane.Normal
			}
		}
		pgs = append(pgs, pg)
	}
	return pgs
}

// ToMesh returns an indexed mesh of the polygons, which are
// triangulated as fans. Vertex normals are the polygon plane normals,
// transformed by m if it is not nil.
func ToMesh(pgs []*Polygon, m *math32.Matrix4) *shape.Mesh {
	ms := &shape.Mesh{Name: "csg", Index: math32.ArrayU32{}}
	for _, pg := range pgs {
		n := pg.Plane.Normal
		base := ms.NumVertex()
		for _, v := range pg.Vertices {
			p := v.Pos
			if m != nil {
				p = shape.MulPoint(m, p)
			}
			vn := n
			if m != nil {
				vn = shape.MulDir(m, n).Normal()
			}
			ms.AddVertex(p, vn)
		}
		for i := 1; i+1 < len(pg.Vertices); i++ {
			ms.AddTriangle(base, base+i, base+i+1)
		}
	}
	return ms
}

// SubtractNodes returns a new solid node with the geometry of base minus
// cutter, both taken with their local poses. The result has the pose and
// color of base, and its geometry is in the local frame of base, so the
// rotation of the result can be changed independently of the cut.
// The result has an outline of its edges.
func SubtractNodes(name string, base, cutter *scene.Node) (*scene.Node, error) {
	if base.Mesh == nil || cutter.Mesh == nil {
		return nil, fmt.Errorf("csg.SubtractNodes: %w", ErrNoGeometry)
	}
	base.Pose.UpdateMatrix()
	cutter.Pose.UpdateMatrix()
	inv, err := base.Pose.Matrix.Inverse()
	if err != nil {
		return nil, fmt.Errorf("csg.SubtractNodes: base pose: %w", err)
	}
	res := Subtract(FromMesh(base.Mesh, &base.Pose.Matrix), FromMesh(cutter.Mesh, &cutter.Pose.Matrix))
	ms := ToMesh(res, inv)
	ms.Name = name
	nd := scene.NewSolid(name, ms, base.Color)
	nd.Pose.CopyFrom(&base.Pose)
	nd.SetOutline(shape.Edges(ms, shape.DefaultEdgeAngle))
	return nd, nil
}
