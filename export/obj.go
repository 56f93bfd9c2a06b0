// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bufio"
	"fmt"
	"io"

	"cogentcore.org/wifistand/scene"
)

func init() {
	Encoders[OBJ] = &OBJEncoder{}
}

// OBJEncoder writes Wavefront OBJ text, with one object per part.
// Indexes are global across objects and 1-based, as the format requires.
type OBJEncoder struct{}

func (e *OBJEncoder) Encode(w io.Writer, name string, parts []scene.Part) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n", name)
	base := 1
	for _, p := range parts {
		ms := p.Mesh
		if ms.IsEmpty() {
			continue
		}
		hasNorm := len(ms.Normal) == len(ms.Vertex)
		fmt.Fprintf(bw, "o %s\n", p.Name)
		for i := range ms.NumVertex() {
			v := ms.Pos(i)
			fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
		}
		if hasNorm {
			for i := range ms.NumVertex() {
				n := ms.Norm(i)
				fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
			}
		}
		for t := range ms.NumTriangles() {
			a, b, c := ms.TriangleIndexes(t)
			a, b, c = a+base, b+base, c+base
			if hasNorm {
				fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
			} else {
				fmt.Fprintf(bw, "f %d %d %d\n", a, b, c)
			}
		}
		base += ms.NumVertex()
	}
	return bw.Flush()
}
