// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csg

import (
	"testing"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/wifistand/scene"
	"cogentcore.org/wifistand/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// volume returns the enclosed volume of a closed, outward wound mesh.
func volume(ms *shape.Mesh) float32 {
	var v float32
	for i := range ms.NumTriangles() {
		a, b, c := ms.Triangle(i)
		v += a.Dot(b.Cross(c)) / 6
	}
	return v
}

func boxPolygons(size, pos math32.Vector3) []*Polygon {
	m := &math32.Matrix4{}
	q := math32.Quat{}
	q.SetIdentity()
	m.SetTransform(pos, q, math32.Vec3(1, 1, 1))
	return FromMesh(shape.NewBox(size), m)
}

func TestFromMesh(t *testing.T) {
	pgs := FromMesh(shape.NewBox(math32.Vec3(2, 2, 2)), nil)
	assert.Len(t, pgs, 12)
	tolVolume := volume(ToMesh(pgs, nil))
	assert.InDelta(t, 8, tolVolume, 1e-4)
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name   string
		cutter math32.Vector3
		pos    math32.Vector3
		want   float32
	}{
		{"through hole", math32.Vec3(2, 2, 8), math32.Vec3(0, 0, 0), 64 - 16},
		{"corner notch", math32.Vec3(2, 2, 2), math32.Vec3(2, 2, 2), 64 - 1},
		{"disjoint", math32.Vec3(1, 1, 1), math32.Vec3(10, 0, 0), 64},
		{"inside", math32.Vec3(1, 1, 1), math32.Vec3(0, 0, 0), 64 - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := boxPolygons(math32.Vec3(4, 4, 4), math32.Vector3{})
			b := boxPolygons(tt.cutter, tt.pos)
			na, nb := len(a), len(b)
			ms := ToMesh(Subtract(a, b), nil)
			assert.InDelta(t, tt.want, volume(ms), 1e-2)
			assert.Len(t, a, na)
			assert.Len(t, b, nb)
		})
	}
}

func TestUnionIntersect(t *testing.T) {
	a := boxPolygons(math32.Vec3(2, 2, 2), math32.Vector3{})
	b := boxPolygons(math32.Vec3(2, 2, 2), math32.Vec3(1, 0, 0))
	assert.InDelta(t, 12, volume(ToMesh(union(a, b), nil)), 1e-2)
	assert.InDelta(t, 4, volume(ToMesh(intersect(a, b), nil)), 1e-2)
}

func TestSubtractNodes(t *testing.T) {
	stand := scene.NewBox("stand", math32.Vec3(50, 5, 50), colors.White)
	stand.Pose.Pos = math32.Vec3(0, -38, 0)
	card := scene.NewBox("card", math32.Vec3(50, 75, 2), colors.White)

	res, err := SubtractNodes("slotted", stand, card)
	require.NoError(t, err)
	assert.Equal(t, scene.Solid, res.Kind)
	assert.Equal(t, stand.Pose.Pos, res.Pose.Pos)
	// overlap is 50 x 2 x 2
	assert.InDelta(t, 50*5*50-200, volume(res.Mesh), 1)
	require.NotNil(t, res.Outline)
	assert.Greater(t, res.Outline.NumSegments(), 12)

	// tilted stand: geometry stays in the stand's local frame
	stand.Pose.SetEulerRotation(15, 0, 0)
	res, err = SubtractNodes("slotted", stand, card)
	require.NoError(t, err)
	assert.Equal(t, stand.Pose.Quat, res.Pose.Quat)
	bb := res.Mesh.BBox()
	assert.InDelta(t, -25, bb.Min.X, 1e-3)
	assert.InDelta(t, 2.5, bb.Max.Y, 1e-3)
	assert.InDelta(t, -25, bb.Min.Z, 1e-3)
	vol := volume(res.Mesh)
	assert.Less(t, vol, float32(50*5*50))
	assert.Greater(t, vol, float32(50*5*50-400))

	// operands are not changed
	assert.Equal(t, 12, stand.Mesh.NumTriangles())
	assert.Equal(t, 12, card.Mesh.NumTriangles())

	_, err = SubtractNodes("slotted", scene.NewGroup("g"), card)
	assert.ErrorIs(t, err, ErrNoGeometry)
}
