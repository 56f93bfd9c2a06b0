// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"io"

	"cogentcore.org/core/math32"
	"cogentcore.org/wifistand/scene"
	"github.com/hschendel/stl"
)

func init() {
	Encoders[STL] = &STLEncoder{}
}

// STLEncoder writes binary STL. STL has no colors or objects, so
// all parts become one solid with face normals.
type STLEncoder struct{}

func (e *STLEncoder) Encode(w io.Writer, name string, parts []scene.Part) error {
	solid := &stl.Solid{Name: name}
	for _, p := range parts {
		ms := p.Mesh
		for t := range ms.NumTriangles() {
			a, b, c := ms.Triangle(t)
			n := math32.Normal(a, b, c)
			solid.Triangles = append(solid.Triangles, stl.Triangle{
				Normal:   stlVec(n),
				Vertices: [3]stl.Vec3{stlVec(a), stlVec(b), stlVec(c)},
			})
		}
	}
	return solid.WriteAll(w)
}

func stlVec(v math32.Vector3) stl.Vec3 {
	return stl.Vec3{v.X, v.Y, v.Z}
}
