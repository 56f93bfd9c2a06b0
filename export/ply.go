// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"cogentcore.org/wifistand/scene"
)

func init() {
	Encoders[PLY] = &PLYEncoder{}
}

// PLYEncoder writes binary little-endian PLY. All parts are merged
// into one vertex list, and each vertex carries the color of its part.
type PLYEncoder struct{}

type plyVertex struct {
	X, Y, Z    float32
	NX, NY, NZ float32
	R, G, B    uint8
}

type plyFace struct {
	N       uint8
	A, B, C uint32
}

func (e *PLYEncoder) Encode(w io.Writer, name string, parts []scene.Part) error {
	nv, nf := 0, 0
	for _, p := range parts {
		nv += p.Mesh.NumVertex()
		nf += p.Mesh.NumTriangles()
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "ply\nformat binary_little_endian 1.0\ncomment %s\n", name)
	fmt.Fprintf(bw, "element vertex %d\n", nv)
	bw.WriteString("property float x\nproperty float y\nproperty float z\n")
	bw.WriteString("property float nx\nproperty float ny\nproperty float nz\n")
	bw.WriteString("property uchar red\nproperty uchar green\nproperty uchar blue\n")
	fmt.Fprintf(bw, "element face %d\n", nf)
	bw.WriteString("property list uchar uint vertex_indices\nend_header\n")

	for _, p := range parts {
		ms := p.Mesh
		if len(ms.Normal) != len(ms.Vertex) {
			ms = ms.Clone()
			ms.ComputeNormals()
		}
		for i := range ms.NumVertex() {
			v, n := ms.Pos(i), ms.Norm(i)
			pv := plyVertex{v.X, v.Y, v.Z, n.X, n.Y, n.Z, p.Color.R, p.Color.G, p.Color.B}
			if err := binary.Write(bw, binary.LittleEndian, &pv); err != nil {
				return err
			}
		}
	}
	base := uint32(0)
	for _, p := range parts {
		ms := p.Mesh
		for t := range ms.NumTriangles() {
			a, b, c := ms.TriangleIndexes(t)
			pf := plyFace{3, base + uint32(a), base + uint32(b), base + uint32(c)}
			if err := binary.Write(bw, binary.LittleEndian, &pf); err != nil {
				return err
			}
		}
		base += uint32(ms.NumVertex())
	}
	return bw.Flush()
}
