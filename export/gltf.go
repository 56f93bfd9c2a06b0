// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"image/color"
	"io"

	"cogentcore.org/wifistand/scene"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

func init() {
	Encoders[GLTF] = &GLTFEncoder{}
}

// GLTFEncoder writes binary glTF, with one mesh node per part and
// one material per distinct part color.
type GLTFEncoder struct{}

func (e *GLTFEncoder) Encode(w io.Writer, name string, parts []scene.Part) error {
	doc := gltf.NewDocument()
	doc.Scenes[0].Name = name
	mats := map[color.RGBA]uint32{}
	for _, p := range parts {
		ms := p.Mesh
		if ms.IsEmpty() {
			continue
		}
		mi, ok := mats[p.Color]
		if !ok {
			mi = uint32(len(doc.Materials))
			mats[p.Color] = mi
			doc.Materials = append(doc.Materials, gltfMaterial(p.Color))
		}
		pos := make([][3]float32, ms.NumVertex())
		for i := range pos {
			v := ms.Pos(i)
			pos[i] = [3]float32{v.X, v.Y, v.Z}
		}
		attrs := gltf.Attribute{gltf.POSITION: modeler.WritePosition(doc, pos)}
		if len(ms.Normal) == len(ms.Vertex) {
			nrm := make([][3]float32, ms.NumVertex())
			for i := range nrm {
				v := ms.Norm(i)
				nrm[i] = [3]float32{v.X, v.Y, v.Z}
			}
			attrs[gltf.NORMAL] = modeler.WriteNormal(doc, nrm)
		}
		prim := &gltf.Primitive{
			Attributes: attrs,
			Material:   gltf.Index(mi),
		}
		if ms.Indexed() {
			prim.Indices = gltf.Index(modeler.WriteIndices(doc, []uint32(ms.Index)))
		}
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: p.Name, Primitives: []*gltf.Primitive{prim}})
		doc.Nodes = append(doc.Nodes, &gltf.Node{Name: p.Name, Mesh: gltf.Index(uint32(len(doc.Meshes) - 1))})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	return enc.Encode(doc)
}

func gltfMaterial(c color.RGBA) *gltf.Material {
	return &gltf.Material{
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{
				float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255,
			},
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(1),
		},
	}
}
