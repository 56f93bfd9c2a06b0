// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	gshape "cogentcore.org/core/gpu/shape"
	"cogentcore.org/core/math32"
)

// MinCylinderSegments is the minimum number of radial segments
// used by [NewCylinder].
const MinCylinderSegments = 48

// NewCylinder returns an indexed, capped cylinder mesh with its axis
// along Y, centered at the origin, with the given radius and height.
// segs is raised to [MinCylinderSegments] if smaller.
func NewCylinder(radius, height float32, segs int) *Mesh {
	segs = max(segs, MinCylinderSegments)
	nv, ni := gshape.CylinderSectorN(segs, 1, true, true)
	ms := &Mesh{Name: "cylinder"}
	ms.Vertex = math32.NewArrayF32(3*nv, 0)
	ms.Normal = math32.NewArrayF32(3*nv, 0)
	ms.Index = math32.NewArrayU32(ni, 0)
	tex := math32.NewArrayF32(2*nv, 0)
	gshape.SetCylinderSector(ms.Vertex, ms.Normal, tex, ms.Index, 0, 0, height, radius, radius, segs, 1, 0, 360, true, true, math32.Vector3{})
	return ms
}
