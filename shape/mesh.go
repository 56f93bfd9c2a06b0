// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape provides triangle mesh buffers and the parametric
// generators used to build solids: boxes, cylinders, extruded arc rings,
// extruded polygons, and voxelized QR code bitmaps.
package shape

import (
	"cogentcore.org/core/base/errors"
	gshape "cogentcore.org/core/gpu/shape"
	"cogentcore.org/core/math32"
)

// ErrMixedIndexing is returned by [Merge] when indexed and
// non-indexed meshes are merged together.
var ErrMixedIndexing = errors.New("shape: cannot merge indexed and non-indexed meshes")

// Mesh is a triangle mesh with vertex positions, per-vertex normals,
// and an optional index buffer. When Index is nil the mesh is non-indexed:
// every three consecutive vertices form one triangle.
// A Mesh exclusively owns its buffers; [Mesh.Release] must be called
// when a mesh is swapped out of a solid.
type Mesh struct {

	// Name is an optional name used by exporters.
	Name string

	// Vertex has the x,y,z positions of each vertex.
	Vertex math32.ArrayF32

	// Normal has the x,y,z normal of each vertex.
	Normal math32.ArrayF32

	// Index groups vertices into triangles, three per face.
	// It is nil for non-indexed meshes.
	Index math32.ArrayU32

	released bool
}

// NumVertex returns the number of vertices.
func (ms *Mesh) NumVertex() int {
	return len(ms.Vertex) / 3
}

// Indexed returns true if the mesh has an index buffer.
func (ms *Mesh) Indexed() bool {
	return ms.Index != nil
}

// NumTriangles returns the number of triangle faces.
func (ms *Mesh) NumTriangles() int {
	if ms.Indexed() {
		return len(ms.Index) / 3
	}
	return ms.NumVertex() / 3
}

// IsEmpty returns true if the mesh has no faces.
func (ms *Mesh) IsEmpty() bool {
	return ms.NumTriangles() == 0
}

// Pos returns the position of vertex i.
func (ms *Mesh) Pos(i int) math32.Vector3 {
	return math32.Vec3(ms.Vertex[3*i], ms.Vertex[3*i+1], ms.Vertex[3*i+2])
}

// Norm returns the normal of vertex i.
func (ms *Mesh) Norm(i int) math32.Vector3 {
	return math32.Vec3(ms.Normal[3*i], ms.Normal[3*i+1], ms.Normal[3*i+2])
}

// TriangleIndexes returns the vertex indexes of triangle face i.
func (ms *Mesh) TriangleIndexes(i int) (a, b, c int) {
	if ms.Indexed() {
		return int(ms.Index[3*i]), int(ms.Index[3*i+1]), int(ms.Index[3*i+2])
	}
	return 3 * i, 3*i + 1, 3*i + 2
}

// Triangle returns the vertex positions of triangle face i.
func (ms *Mesh) Triangle(i int) (a, b, c math32.Vector3) {
	ia, ib, ic := ms.TriangleIndexes(i)
	return ms.Pos(ia), ms.Pos(ib), ms.Pos(ic)
}

// BBox returns the axis-aligned bounding box of the vertices.
// It is empty for a mesh without vertices.
func (ms *Mesh) BBox() math32.Box3 {
	return gshape.BBoxFromVtxs(ms.Vertex, 0, ms.NumVertex())
}

// AddVertex appends a vertex with given position and normal,
// returning its index.
func (ms *Mesh) AddVertex(pos, norm math32.Vector3) int {
	idx := ms.NumVertex()
	ms.Vertex = append(ms.Vertex, pos.X, pos.Y, pos.Z)
	ms.Normal = append(ms.Normal, norm.X, norm.Y, norm.Z)
	return idx
}

// AddTriangle appends an indexed triangle face.
func (ms *Mesh) AddTriangle(a, b, c int) {
	ms.Index = append(ms.Index, uint32(a), uint32(b), uint32(c))
}

// ComputeNormals recomputes the vertex normals. Indexed meshes get
// area-weighted smooth normals shared across faces; non-indexed
// meshes get flat face normals.
func (ms *Mesh) ComputeNormals() {
	nv := ms.NumVertex()
	ms.Normal = make(math32.ArrayF32, 3*nv)
	nt := ms.NumTriangles()
	for i := 0; i < nt; i++ {
		ia, ib, ic := ms.TriangleIndexes(i)
		a, b, c := ms.Pos(ia), ms.Pos(ib), ms.Pos(ic)
		fn := c.Sub(b).Cross(a.Sub(b))
		for _, vi := range [3]int{ia, ib, ic} {
			ms.Normal[3*vi] += fn.X
			ms.Normal[3*vi+1] += fn.Y
			ms.Normal[3*vi+2] += fn.Z
		}
	}
	for i := 0; i < nv; i++ {
		n := ms.Norm(i).Normal()
		ms.Normal[3*i], ms.Normal[3*i+1], ms.Normal[3*i+2] = n.X, n.Y, n.Z
	}
}

// Clone returns a deep copy of the mesh buffers.
func (ms *Mesh) Clone() *Mesh {
	cm := &Mesh{Name: ms.Name}
	cm.Vertex = append(math32.ArrayF32(nil), ms.Vertex...)
	cm.Normal = append(math32.ArrayF32(nil), ms.Normal...)
	if ms.Index != nil {
		cm.Index = append(math32.ArrayU32{}, ms.Index...)
	}
	return cm
}

// Transform applies the given affine matrix to the vertex positions
// and rotates the normals accordingly.
func (ms *Mesh) Transform(m *math32.Matrix4) {
	nv := ms.NumVertex()
	hasNorm := len(ms.Normal) == len(ms.Vertex)
	for i := 0; i < nv; i++ {
		p := MulPoint(m, ms.Pos(i))
		ms.Vertex[3*i], ms.Vertex[3*i+1], ms.Vertex[3*i+2] = p.X, p.Y, p.Z
		if hasNorm {
			n := MulDir(m, ms.Norm(i)).Normal()
			ms.Normal[3*i], ms.Normal[3*i+1], ms.Normal[3*i+2] = n.X, n.Y, n.Z
		}
	}
}

// MulPoint transforms the point v by the matrix m.
func MulPoint(m *math32.Matrix4, v math32.Vector3) math32.Vector3 {
	r := math32.Vector4{X: v.X, Y: v.Y, Z: v.Z, W: 1}.MulMatrix4(m)
	return math32.Vec3(r.X, r.Y, r.Z)
}

// MulDir transforms the direction v by the matrix m, ignoring translation.
func MulDir(m *math32.Matrix4, v math32.Vector3) math32.Vector3 {
	r := math32.Vector4{X: v.X, Y: v.Y, Z: v.Z, W: 0}.MulMatrix4(m)
	return math32.Vec3(r.X, r.Y, r.Z)
}

// Translate moves all vertices by the given offset.
func (ms *Mesh) Translate(x, y, z float32) {
	for i := 0; i+2 < len(ms.Vertex); i += 3 {
		ms.Vertex[i] += x
		ms.Vertex[i+1] += y
		ms.Vertex[i+2] += z
	}
}

// ToNonIndexed returns a non-indexed copy of the mesh, in which
// each triangle has its own three vertices. A mesh that is already
// non-indexed is simply cloned.
func (ms *Mesh) ToNonIndexed() *Mesh {
	if !ms.Indexed() {
		return ms.Clone()
	}
	hasNorm := len(ms.Normal) == len(ms.Vertex)
	nm := &Mesh{Name: ms.Name}
	nm.Vertex = make(math32.ArrayF32, 0, 3*len(ms.Index))
	if hasNorm {
		nm.Normal = make(math32.ArrayF32, 0, 3*len(ms.Index))
	}
	for _, idx := range ms.Index {
		i := int(idx)
		nm.Vertex = append(nm.Vertex, ms.Vertex[3*i:3*i+3]...)
		if hasNorm {
			nm.Normal = append(nm.Normal, ms.Normal[3*i:3*i+3]...)
		}
	}
	return nm
}

// Release frees the mesh buffers. A released mesh must not be used
// for rendering or export again.
func (ms *Mesh) Release() {
	ms.Vertex = nil
	ms.Normal = nil
	ms.Index = nil
	ms.released = true
}

// Released returns true if [Mesh.Release] has been called.
func (ms *Mesh) Released() bool {
	return ms.released
}

// Merge concatenates the given meshes into one new mesh.
// Either all meshes must be indexed or none of them, otherwise
// [ErrMixedIndexing] is returned; use [Mesh.ToNonIndexed] first.
// Nil meshes are skipped.
func Merge(meshes ...*Mesh) (*Mesh, error) {
	out := &Mesh{}
	indexed := -1
	normals := true
	for _, ms := range meshes {
		if ms == nil {
			continue
		}
		ix := 0
		if ms.Indexed() {
			ix = 1
		}
		if indexed >= 0 && ix != indexed {
			return nil, ErrMixedIndexing
		}
		indexed = ix
		if len(ms.Normal) != len(ms.Vertex) {
			normals = false
		}
	}
	for _, ms := range meshes {
		if ms == nil {
			continue
		}
		off := uint32(out.NumVertex())
		out.Vertex = append(out.Vertex, ms.Vertex...)
		if normals {
			out.Normal = append(out.Normal, ms.Normal...)
		}
		if indexed == 1 {
			for _, idx := range ms.Index {
				out.Index = append(out.Index, idx+off)
			}
		}
	}
	if indexed == 1 && out.Index == nil {
		out.Index = math32.ArrayU32{}
	}
	if !normals {
		out.ComputeNormals()
	}
	return out, nil
}
