// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/wifistand/shape"
)

// Part is a mesh baked into a common frame, with its color.
type Part struct {
	Name  string
	Mesh  *shape.Mesh
	Color color.RGBA
}

// Bake returns copies of the meshes of the node and its descendants,
// transformed by the node's own pose and those of its descendants, as
// if the node were the root of a scene. The node is not modified.
func Bake(nd *Node) []Part {
	var parts []Part
	var walk func(n *Node, par *math32.Matrix4)
	walk = func(n *Node, par *math32.Matrix4) {
		ps := n.Pose
		ps.UpdateMatrix()
		ps.UpdateWorldMatrix(par)
		if n.Mesh != nil && !n.Mesh.IsEmpty() {
			ms := n.Mesh.Clone()
			ms.Transform(&ps.WorldMatrix)
			parts = append(parts, Part{Name: n.Name, Mesh: ms, Color: n.Color})
		}
		for _, c := range n.Children {
			walk(c, &ps.WorldMatrix)
		}
	}
	walk(nd, nil)
	return parts
}

// MergeParts merges the baked parts into a single non-indexed mesh.
func MergeParts(parts []Part) (*shape.Mesh, error) {
	meshes := make([]*shape.Mesh, len(parts))
	for i, p := range parts {
		meshes[i] = p.Mesh.ToNonIndexed()
	}
	return shape.Merge(meshes...)
}

// Composite merges the world-space geometry of the nodes registered
// under ids into one new, unregistered solid with a single color.
// Indexed geometry is converted to non-indexed form before merging.
func (sc *Scene) Composite(name string, clr color.RGBA, ids ...string) (*Node, error) {
	var parts []Part
	for _, id := range ids {
		e, ok := sc.entries[id]
		if !ok {
			return nil, notFound("Composite", id)
		}
		parts = append(parts, bakeInScene(e.Node)...)
	}
	ms, err := MergeParts(parts)
	if err != nil {
		return nil, fmt.Errorf("scene.Composite: %w", err)
	}
	ms.Name = name
	return NewSolid(name, ms, clr), nil
}

// bakeInScene bakes nd in world space, including the poses of its
// ancestors.
func bakeInScene(nd *Node) []Part {
	par := &math32.Matrix4{}
	par.SetIdentity()
	var chain []*Node
	for p := nd.parent; p != nil; p = p.parent {
		chain = append(chain, p)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		ps := chain[i].Pose
		ps.UpdateMatrix()
		pm := *par
		par.MulMatrices(&pm, &ps.Matrix)
	}
	parts := Bake(nd)
	for _, p := range parts {
		p.Mesh.Transform(par)
	}
	return parts
}
