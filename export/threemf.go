// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"encoding/xml"
	"io"

	"cogentcore.org/core/math32"
	"cogentcore.org/wifistand/scene"
	"github.com/hpinc/go3mf"
)

func init() {
	Encoders[ThreeMF] = &ThreeMFEncoder{}
}

// threeMFModelPath is the package path of the root model part.
const threeMFModelPath = "/3D/3dmodel.model"

// ThreeMFEncoder writes a 3MF package with one mesh object per part.
// Part colors are written as base materials, and coincident vertices
// are welded since 3MF meshes are indexed.
type ThreeMFEncoder struct{}

func (e *ThreeMFEncoder) Encode(w io.Writer, name string, parts []scene.Part) error {
	return go3mf.NewEncoder(w).Encode(threeMFModel(name, parts))
}

// threeMFModel returns the model document for the parts.
func threeMFModel(name string, parts []scene.Part) *go3mf.Model {
	const matID = 1
	md := &go3mf.Model{
		Path:     threeMFModelPath,
		Units:    go3mf.UnitMillimeter,
		Metadata: []go3mf.Metadata{{Name: xml.Name{Local: "Title"}, Value: name}},
	}
	mats := &go3mf.BaseMaterials{ID: matID}
	id := uint32(matID + 1)
	for _, p := range parts {
		if p.Mesh.IsEmpty() {
			continue
		}
		mats.Materials = append(mats.Materials, go3mf.Base{Name: p.Name, Color: p.Color})
		ob := &go3mf.Object{
			ID:     id,
			Name:   p.Name,
			PID:    matID,
			PIndex: uint32(len(mats.Materials) - 1),
			Mesh:   threeMFMesh(p),
		}
		md.Resources.Objects = append(md.Resources.Objects, ob)
		md.Build.Items = append(md.Build.Items, &go3mf.Item{ObjectID: id, Transform: go3mf.Identity()})
		id++
	}
	if len(mats.Materials) > 0 {
		md.Resources.Assets = append(md.Resources.Assets, mats)
	}
	return md
}

// threeMFMesh returns the welded mesh of the part, skipping
// triangles that collapse when welded.
func threeMFMesh(p scene.Part) *go3mf.Mesh {
	ms := &go3mf.Mesh{}
	weld := map[math32.Vector3]uint32{}
	vidx := func(v math32.Vector3) uint32 {
		if i, ok := weld[v]; ok {
			return i
		}
		i := uint32(len(ms.Vertices.Vertex))
		weld[v] = i
		ms.Vertices.Vertex = append(ms.Vertices.Vertex, go3mf.Point3D{v.X, v.Y, v.Z})
		return i
	}
	for t := range p.Mesh.NumTriangles() {
		a, b, c := p.Mesh.Triangle(t)
		ia, ib, ic := vidx(a), vidx(b), vidx(c)
		if ia == ib || ib == ic || ia == ic {
			continue
		}
		ms.Triangles.Triangle = append(ms.Triangles.Triangle, go3mf.Triangle{V1: ia, V2: ib, V3: ic})
	}
	return ms
}
