// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	gshape "cogentcore.org/core/gpu/shape"
	"cogentcore.org/core/math32"
)

// boxSegs is one segment per box face.
var boxSegs = math32.Vector3i{X: 1, Y: 1, Z: 1}

// NewBox returns an indexed box mesh of given size centered at the
// origin, with 4 vertices per face so that faces have flat normals.
func NewBox(size math32.Vector3) *Mesh {
	nv, ni := gshape.BoxN(boxSegs)
	ms := &Mesh{Name: "box"}
	ms.Vertex = math32.NewArrayF32(3*nv, 0)
	ms.Normal = math32.NewArrayF32(3*nv, 0)
	ms.Index = math32.NewArrayU32(ni, 0)
	tex := math32.NewArrayF32(2*nv, 0)
	gshape.SetBox(ms.Vertex, ms.Normal, tex, ms.Index, 0, 0, size, boxSegs, math32.Vector3{})
	return ms
}

// appendBoxFlat appends the 12 triangles of the box tmpl, moved to
// center, to a non-indexed mesh.
func appendBoxFlat(ms *Mesh, tmpl *Mesh, center math32.Vector3) {
	for _, idx := range tmpl.Index {
		p := tmpl.Pos(int(idx)).Add(center)
		ms.AddVertex(p, tmpl.Norm(int(idx)))
	}
}
