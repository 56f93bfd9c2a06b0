// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/wifistand/shape"
)

// Axes is a set of coordinate axes.
type Axes uint8

const (
	AxisX Axes = 1 << iota
	AxisY
	AxisZ

	// AllAxes is the set of all three axes.
	AllAxes = AxisX | AxisY | AxisZ
)

// Has returns true if the set contains all of the given axes.
func (a Axes) Has(b Axes) bool {
	return a&b == b
}

// RecenterOffset returns the offset that centers the node on its
// position in X and Y: (-0.5 * width, -0.5 * height, 0) of its
// local bounding box.
func (nd *Node) RecenterOffset() math32.Vector3 {
	bb := nd.LocalBBox()
	if bb.IsEmpty() {
		return math32.Vector3{}
	}
	sz := bb.Size()
	return math32.Vec3(-0.5*sz.X, -0.5*sz.Y, 0)
}

// SetPosition sets the position of id along the given axes to the
// values of pos; the other axes keep their current position.
// If recenter is true, [Node.RecenterOffset] is added on top, so that
// text-like objects with an asymmetric bounding box are centered on
// the requested position. The canonical position is set to the
// requested position, without the recentering offset.
func (sc *Scene) SetPosition(id string, pos math32.Vector3, axes Axes, recenter bool) error {
	e, ok := sc.entries[id]
	if !ok {
		return notFound("SetPosition", id)
	}
	cur := e.Node.Pose.Pos
	if !axes.Has(AxisX) {
		pos.X = cur.X
	}
	if !axes.Has(AxisY) {
		pos.Y = cur.Y
	}
	if !axes.Has(AxisZ) {
		pos.Z = cur.Z
	}
	np := pos
	if recenter {
		np = np.Add(e.Node.RecenterOffset())
	}
	e.Node.Pose.Pos = np
	e.Node.Pose.UpdateMatrix()
	e.Canonical = pos
	return nil
}

// SetOffset sets the position of id to its canonical position plus
// the given offset. Offsets do not accumulate, and are applied in the
// parent's axes regardless of the node's rotation.
func (sc *Scene) SetOffset(id string, off math32.Vector3) error {
	e, ok := sc.entries[id]
	if !ok {
		return notFound("SetOffset", id)
	}
	e.Node.Pose.Pos = e.Canonical.Add(off)
	e.Node.Pose.UpdateMatrix()
	return nil
}

// SetAngle sets the absolute rotation of id in Euler angles (degrees).
func (sc *Scene) SetAngle(id string, x, y, z float32) error {
	e, ok := sc.entries[id]
	if !ok {
		return notFound("SetAngle", id)
	}
	e.Node.Pose.SetEulerRotation(x, y, z)
	e.Node.Pose.UpdateMatrix()
	return nil
}

// SetDimension regenerates the mesh and outline of the box id at the
// given size, releasing the previous geometry.
func (sc *Scene) SetDimension(id string, size math32.Vector3) error {
	e, ok := sc.entries[id]
	if !ok {
		return notFound("SetDimension", id)
	}
	if e.Node.Kind != Box {
		return fmt.Errorf("scene.SetDimension: %q is a %v: %w", id, e.Node.Kind, ErrNotBox)
	}
	e.Node.setBox(size)
	return nil
}

// SetMesh replaces the mesh of id, releasing the previous one.
func (sc *Scene) SetMesh(id string, ms *shape.Mesh) error {
	e, ok := sc.entries[id]
	if !ok {
		return notFound("SetMesh", id)
	}
	e.Node.SetMesh(ms)
	return nil
}
