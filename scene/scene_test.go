// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/wifistand/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func assertVec3(t *testing.T, want, have math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, want.X, have.X, 1e-4)
	tolassert.EqualTol(t, want.Y, have.Y, 1e-4)
	tolassert.EqualTol(t, want.Z, have.Z, 1e-4)
}

func TestRegistry(t *testing.T) {
	sc := New("test")
	card := NewBox("card", math32.Vec3(50, 75, 2), colors.White)
	e, err := sc.Add("card", card, math32.Vec3(0, 0, 0))
	require.NoError(t, err)
	assert.Same(t, card, e.Node)
	assert.True(t, sc.IsLive("card"))

	_, err = sc.Add("card", NewGroup("other"), math32.Vector3{})
	assert.ErrorIs(t, err, ErrExists)

	nd, err := sc.Node("card")
	require.NoError(t, err)
	assert.Same(t, card, nd)

	_, err = sc.Node("nothing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, sc.SetAngle("nothing", 0, 0, 0), ErrNotFound)
	assert.ErrorIs(t, sc.SetOffset("nothing", math32.Vector3{}), ErrNotFound)

	sc.Hide("card")
	assert.False(t, sc.IsLive("card"))
	assert.True(t, sc.Has("card"))
	assert.False(t, card.Mesh.Released())
	require.NoError(t, sc.Show("card"))
	require.NoError(t, sc.Show("card"))
	assert.True(t, sc.IsLive("card"))
	assert.Len(t, sc.Root.Children, 1)

	old := card.Mesh
	repl := NewBox("card", math32.Vec3(10, 10, 10), colors.White)
	sc.Register("card", repl, math32.Vec3(1, 2, 3))
	assert.True(t, old.Released())
	assert.True(t, sc.IsLive("card"))
	assert.Len(t, sc.Root.Children, 1)
	c, err := sc.Canonical("card")
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(1, 2, 3), c)

	require.NoError(t, sc.Remove("card"))
	assert.True(t, repl.Mesh == nil)
	assert.False(t, sc.Has("card"))
	assert.Empty(t, sc.Root.Children)
	assert.ErrorIs(t, sc.Remove("card"), ErrNotFound)
	assert.Empty(t, sc.IDs())
}

func TestBoxOutline(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := float32(rapid.Float64Range(0.1, 100).Draw(rt, "w"))
		h := float32(rapid.Float64Range(0.1, 100).Draw(rt, "h"))
		d := float32(rapid.Float64Range(0.1, 100).Draw(rt, "d"))
		nd := NewBox("box", math32.Vec3(w, h, d), colors.White)
		bb := nd.Mesh.BBox()
		ob := nd.Outline.BBox()
		sz := bb.Size()
		assert.InDelta(rt, w, sz.X, 1e-4)
		assert.InDelta(rt, h, sz.Y, 1e-4)
		assert.InDelta(rt, d, sz.Z, 1e-4)
		assert.Equal(rt, bb, ob)
		ctr := bb.Center()
		assert.InDelta(rt, 0, ctr.X, 1e-4)
		assert.InDelta(rt, 0, ctr.Y, 1e-4)
		assert.InDelta(rt, 0, ctr.Z, 1e-4)
	})
}

func TestSetPosition(t *testing.T) {
	sc := New("test")
	// text-like mesh whose bounding box starts at the origin
	ms := shape.NewBox(math32.Vec3(10, 4, 1))
	ms.Translate(5, 2, 0.5)
	nd := NewSolid("text", ms, colors.Black)
	_, err := sc.Add("text", nd, math32.Vector3{})
	require.NoError(t, err)

	require.NoError(t, sc.SetPosition("text", math32.Vec3(0, 30, 1), AllAxes, true))
	assertVec3(t, math32.Vec3(-5, 28, 1), nd.Pose.Pos)
	c, _ := sc.Canonical("text")
	assert.Equal(t, math32.Vec3(0, 30, 1), c)

	// only Y given: X and Z keep the current position
	require.NoError(t, sc.SetPosition("text", math32.Vec3(99, 10, 99), AxisY, false))
	assertVec3(t, math32.Vec3(-5, 10, 1), nd.Pose.Pos)
	c, _ = sc.Canonical("text")
	assertVec3(t, math32.Vec3(-5, 10, 1), c)
}

func TestSetOffsetNotCumulative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		sc := New("test")
		nd := NewBox("box", math32.Vec3(1, 1, 1), colors.White)
		canon := math32.Vec3(0, -38, 0)
		nd.Pose.Pos = canon
		_, err := sc.Add("box", nd, canon)
		require.NoError(rt, err)
		require.NoError(rt, sc.SetAngle("box", float32(rapid.Float64Range(-90, 90).Draw(rt, "angle")), 0, 0))
		var off math32.Vector3
		n := rapid.IntRange(1, 5).Draw(rt, "n")
		for i := range n {
			off = math32.Vec3(
				float32(rapid.Float64Range(-10, 10).Draw(rt, "x")),
				float32(rapid.Float64Range(-10, 10).Draw(rt, "y")),
				float32(i),
			)
			require.NoError(rt, sc.SetOffset("box", off))
		}
		want := canon.Add(off)
		assert.InDelta(rt, want.X, nd.Pose.Pos.X, 1e-4)
		assert.InDelta(rt, want.Y, nd.Pose.Pos.Y, 1e-4)
		assert.InDelta(rt, want.Z, nd.Pose.Pos.Z, 1e-4)
	})
}

func TestSetDimension(t *testing.T) {
	sc := New("test")
	nd := NewBox("card", math32.Vec3(50, 75, 2), colors.White)
	sc.Register("card", nd, math32.Vector3{})
	oldMesh, oldOutline := nd.Mesh, nd.Outline
	require.NoError(t, sc.SetDimension("card", math32.Vec3(10, 20, 30)))
	assert.True(t, oldMesh.Released())
	assert.True(t, oldOutline.Released())
	assertVec3(t, math32.Vec3(10, 20, 30), nd.Mesh.BBox().Size())
	assertVec3(t, math32.Vec3(10, 20, 30), nd.Outline.BBox().Size())
	assert.Equal(t, math32.Vec3(10, 20, 30), nd.BoxSize)

	sc.Register("qr", NewSolid("qr", shape.NewBox(math32.Vec3(1, 1, 1)), colors.Black), math32.Vector3{})
	assert.ErrorIs(t, sc.SetDimension("qr", math32.Vec3(1, 1, 1)), ErrNotBox)
}

func TestSetMesh(t *testing.T) {
	sc := New("test")
	nd := NewSolid("qr", shape.NewBox(math32.Vec3(1, 1, 1)), colors.Black)
	sc.Register("qr", nd, math32.Vector3{})
	old := nd.Mesh
	require.NoError(t, sc.SetMesh("qr", shape.NewBox(math32.Vec3(2, 2, 2))))
	assert.True(t, old.Released())
	assert.False(t, nd.Mesh.Released())
}

func TestComposite(t *testing.T) {
	sc := New("test")
	a := NewSolid("a", shape.NewBox(math32.Vec3(2, 2, 2)), colors.Black)
	a.Pose.Pos = math32.Vec3(10, 0, 0)
	sc.Register("a", a, a.Pose.Pos)

	icon := NewGroup("icon")
	icon.Pose.Pos = math32.Vec3(0, -25, 1)
	dot := icon.AddChild(NewSolid("dot", shape.NewCylinder(1, 1, 48), colors.Black))
	dot.Pose.SetEulerRotation(90, 0, 0)
	dot.Pose.Pos.Z = 0.5
	sc.Register("icon", icon, icon.Pose.Pos)

	q, err := shape.NewQRSolid(shape.Bitmap{true, true, true, true}, 4, 1)
	require.NoError(t, err)
	sc.Register("qr", NewSolid("qr", q, colors.Black), math32.Vector3{})

	cn, err := sc.Composite("content", colors.Black, "a", "icon", "qr")
	require.NoError(t, err)
	assert.False(t, cn.Mesh.Indexed())
	assert.Nil(t, cn.Parent())
	assert.False(t, sc.Has("content"))
	wantTris := a.Mesh.NumTriangles() + dot.Mesh.NumTriangles() + q.NumTriangles()
	assert.Equal(t, wantTris, cn.Mesh.NumTriangles())

	bb := cn.Mesh.BBox()
	assertVec3(t, math32.Vec3(-2, -26, -1), bb.Min)
	assertVec3(t, math32.Vec3(11, 2, 2), bb.Max)

	// sources are not modified
	assertVec3(t, math32.Vec3(-1, -1, -1), a.Mesh.BBox().Min)

	_, err = sc.Composite("content", colors.Black, "a", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBakeClone(t *testing.T) {
	g := NewGroup("g")
	g.Pose.Pos = math32.Vec3(0, 5, 0)
	c := g.AddChild(NewBox("b", math32.Vec3(1, 1, 1), colors.White))
	c.Pose.Pos = math32.Vec3(1, 0, 0)

	parts := Bake(g)
	require.Len(t, parts, 1)
	assertVec3(t, math32.Vec3(1, 5, 0), parts[0].Mesh.BBox().Center())

	cl := g.Clone()
	require.Len(t, cl.Children, 1)
	assert.Same(t, cl, cl.Children[0].Parent())
	assert.NotSame(t, c.Mesh, cl.Children[0].Mesh)
	g.Release()
	assert.True(t, c.Mesh == nil)
	assert.False(t, cl.Children[0].Mesh.Released())
}
