// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/wifistand/shape"
)

// Kinds are the kinds of nodes.
type Kinds int32

const (
	// Group is a node without geometry of its own,
	// which positions its children together.
	Group Kinds = iota

	// Box is a solid box, whose dimensions can be changed.
	Box

	// Solid is a solid with an arbitrary mesh.
	Solid
)

// String returns the name of the kind.
func (k Kinds) String() string {
	switch k {
	case Group:
		return "Group"
	case Box:
		return "Box"
	case Solid:
		return "Solid"
	}
	return "Kinds(?)"
}

// Node is an element of the scene tree. Each node exclusively owns
// its mesh, its outline, and its children.
type Node struct {

	// Name is the name of the node.
	Name string

	// Kind is the kind of node.
	Kind Kinds

	// Pose is the position and orientation relative to the parent.
	Pose Pose

	// Mesh is the solid geometry, in the node's local frame.
	// It is nil for groups.
	Mesh *shape.Mesh

	// Outline is optional outline geometry drawn with the solid.
	Outline *shape.Lines

	// Color is the flat material color.
	Color color.RGBA

	// BoxSize is the size of a [Box] node.
	BoxSize math32.Vector3

	// Children are the owned child nodes.
	Children []*Node

	parent *Node
}

// NewGroup returns a new group node.
func NewGroup(name string) *Node {
	nd := &Node{Name: name, Kind: Group}
	nd.Pose.UpdateMatrix()
	return nd
}

// NewSolid returns a new solid node with the given mesh and color.
func NewSolid(name string, ms *shape.Mesh, clr color.RGBA) *Node {
	nd := &Node{Name: name, Kind: Solid, Mesh: ms, Color: clr}
	nd.Pose.UpdateMatrix()
	return nd
}

// NewBox returns a new box node of the given size and color,
// centered on its origin, with an outline of its edges.
func NewBox(name string, size math32.Vector3, clr color.RGBA) *Node {
	nd := &Node{Name: name, Kind: Box, Color: clr}
	nd.setBox(size)
	nd.Pose.UpdateMatrix()
	return nd
}

func (nd *Node) setBox(size math32.Vector3) {
	nd.BoxSize = size
	nd.SetMesh(shape.NewBox(size))
	nd.SetOutline(shape.Edges(nd.Mesh, shape.DefaultEdgeAngle))
}

// Parent returns the parent node, or nil.
func (nd *Node) Parent() *Node {
	return nd.parent
}

// AddChild adds the given node as the last child,
// detaching it from any previous parent.
func (nd *Node) AddChild(c *Node) *Node {
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = nd
	nd.Children = append(nd.Children, c)
	return c
}

// RemoveChild detaches the given child, returning false if it
// is not a child of this node. The child is not released.
func (nd *Node) RemoveChild(c *Node) bool {
	i := slices.Index(nd.Children, c)
	if i < 0 {
		return false
	}
	nd.Children = slices.Delete(nd.Children, i, i+1)
	c.parent = nil
	return true
}

// Walk calls fn on the node and then on its descendants, depth first.
// Children of a node for which fn returns false are skipped.
func (nd *Node) Walk(fn func(n *Node) bool) {
	if !fn(nd) {
		return
	}
	for _, c := range nd.Children {
		c.Walk(fn)
	}
}

// SetMesh replaces the mesh, releasing the previous one.
func (nd *Node) SetMesh(ms *shape.Mesh) {
	if nd.Mesh != nil && nd.Mesh != ms {
		nd.Mesh.Release()
	}
	nd.Mesh = ms
}

// SetOutline replaces the outline, releasing the previous one.
func (nd *Node) SetOutline(ls *shape.Lines) {
	if nd.Outline != nil && nd.Outline != ls {
		nd.Outline.Release()
	}
	nd.Outline = ls
}

// Release releases the geometry of the node and all its descendants.
func (nd *Node) Release() {
	nd.Walk(func(n *Node) bool {
		n.SetMesh(nil)
		n.SetOutline(nil)
		return true
	})
}

// Clone returns a deep copy of the node and its descendants,
// with copies of all geometry buffers. The clone has no parent.
func (nd *Node) Clone() *Node {
	cn := &Node{Name: nd.Name, Kind: nd.Kind, Pose: nd.Pose, Color: nd.Color, BoxSize: nd.BoxSize}
	if nd.Mesh != nil {
		cn.Mesh = nd.Mesh.Clone()
	}
	if nd.Outline != nil {
		cn.Outline = &shape.Lines{Vertex: append(math32.ArrayF32(nil), nd.Outline.Vertex...)}
	}
	for _, c := range nd.Children {
		cn.AddChild(c.Clone())
	}
	return cn
}

// UpdateWorld updates the local and world matrices of the node and
// its descendants, given the parent world matrix (nil for the root).
func (nd *Node) UpdateWorld(parWorld *math32.Matrix4) {
	nd.Pose.UpdateMatrix()
	nd.Pose.UpdateWorldMatrix(parWorld)
	for _, c := range nd.Children {
		c.UpdateWorld(&nd.Pose.WorldMatrix)
	}
}

// LocalBBox returns the bounding box of the geometry of the node and
// its descendants, in the node's own frame (excluding its own pose).
func (nd *Node) LocalBBox() math32.Box3 {
	bb := math32.B3Empty()
	if nd.Mesh != nil && nd.Mesh.NumVertex() > 0 {
		bb.ExpandByBox(nd.Mesh.BBox())
	}
	for _, c := range nd.Children {
		cb := c.LocalBBox()
		if cb.IsEmpty() {
			continue
		}
		c.Pose.UpdateMatrix()
		bb.ExpandByBox(cb.MulMatrix4(&c.Pose.Matrix))
	}
	return bb
}
