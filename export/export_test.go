// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"image/color"
	"strconv"
	"strings"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/wifistand/scene"
	"github.com/h2non/filetype"
	"github.com/hpinc/go3mf"
	"github.com/hschendel/stl"
	"github.com/klauspost/compress/zip"
	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testModel returns a group with a white box and a black box at x=10.
func testModel() *scene.Node {
	g := scene.NewGroup("model")
	g.AddChild(scene.NewBox("card", math32.Vec3(2, 2, 2), colors.White))
	b := g.AddChild(scene.NewBox("dot", math32.Vec3(2, 2, 2), colors.Black))
	b.Pose.Pos = math32.Vec3(10, 0, 0)
	return g
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Formats
	}{
		{"stl", STL},
		{"STL", STL},
		{".obj", OBJ},
		{"glb", GLTF},
		{"gltf", GLTF},
		{"ply", PLY},
		{"3mf", ThreeMF},
	}
	for _, tt := range tests {
		f, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, f, tt.in)
	}
	_, err := ParseFormat("fbx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	var f Formats
	require.NoError(t, f.UnmarshalText([]byte("3MF")))
	assert.Equal(t, ThreeMF, f)
	b, err := f.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "3mf", string(b))
	assert.Equal(t, "gltf", GLTF.Ext())

	// unknown names are logged and leave the value unchanged
	assert.NoError(t, f.UnmarshalText([]byte("dxf")))
	assert.Equal(t, ThreeMF, f)
	assert.Error(t, f.SetString("dxf"))
	assert.Len(t, FormatsValues(), int(FormatsN))
}

func TestUnsupported(t *testing.T) {
	b, err := Export(testModel(), Formats(42))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Nil(t, b)
	assert.Equal(t, "42", Formats(42).String())
	for f := range FormatsN {
		assert.NoError(t, Validate(f))
	}
}

func TestExportDoesNotModify(t *testing.T) {
	g := testModel()
	before := g.Children[1].Mesh.BBox()
	_, err := Export(g, STL)
	require.NoError(t, err)
	assert.Equal(t, before, g.Children[1].Mesh.BBox())
	assert.Equal(t, math32.Vec3(10, 0, 0), g.Children[1].Pose.Pos)
}

func TestSTL(t *testing.T) {
	b, err := Export(testModel(), STL)
	require.NoError(t, err)
	solid, err := stl.ReadAll(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Len(t, solid.Triangles, 24)
	maxX := float32(-1000)
	for _, tr := range solid.Triangles {
		for _, v := range tr.Vertices {
			maxX = max(maxX, v[0])
		}
	}
	assert.InDelta(t, 11, maxX, 1e-5)
}

func TestGLTF(t *testing.T) {
	b, err := Export(testModel(), GLTF)
	require.NoError(t, err)
	assert.Equal(t, "glTF", string(b[:4]))

	doc := new(gltf.Document)
	require.NoError(t, gltf.NewDecoder(bytes.NewReader(b)).Decode(doc))
	assert.Len(t, doc.Meshes, 2)
	assert.Len(t, doc.Nodes, 2)
	assert.Len(t, doc.Materials, 2)
	assert.Len(t, doc.Scenes[0].Nodes, 2)
	prim := doc.Meshes[1].Primitives[0]
	pos := doc.Accessors[prim.Attributes[gltf.POSITION]]
	assert.Equal(t, uint32(24), pos.Count)
	require.NotNil(t, prim.Indices)
	assert.Equal(t, uint32(36), doc.Accessors[*prim.Indices].Count)
	assert.InDelta(t, 11, pos.Max[0], 1e-5)
	assert.Equal(t, [4]float64{0, 0, 0, 1}, *doc.Materials[1].PBRMetallicRoughness.BaseColorFactor)
}

func TestOBJ(t *testing.T) {
	b, err := Export(testModel(), OBJ)
	require.NoError(t, err)
	counts := map[string]int{}
	var lastFace string
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		fs := strings.Fields(sc.Text())
		if len(fs) == 0 {
			continue
		}
		counts[fs[0]]++
		if fs[0] == "f" {
			lastFace = sc.Text()
		}
	}
	assert.Equal(t, 2, counts["o"])
	assert.Equal(t, 48, counts["v"])
	assert.Equal(t, 48, counts["vn"])
	assert.Equal(t, 24, counts["f"])
	// second object indexes continue after the first 24 vertices
	for _, f := range strings.Fields(lastFace)[1:] {
		vi, err := strconv.Atoi(strings.Split(f, "/")[0])
		require.NoError(t, err)
		assert.Greater(t, vi, 24)
	}
}

func TestPLY(t *testing.T) {
	b, err := Export(testModel(), PLY)
	require.NoError(t, err)
	hdr, body, ok := bytes.Cut(b, []byte("end_header\n"))
	require.True(t, ok)
	assert.Contains(t, string(hdr), "element vertex 48\n")
	assert.Contains(t, string(hdr), "element face 24\n")
	assert.Len(t, body, 48*27+24*13)

	// first vertex of the black box
	var v plyVertex
	require.NoError(t, binary.Read(bytes.NewReader(body[24*27:]), binary.LittleEndian, &v))
	assert.Equal(t, uint8(0), v.R)
	assert.InDelta(t, 10, v.X, 1.01)

	var f plyFace
	require.NoError(t, binary.Read(bytes.NewReader(body[48*27+12*13:]), binary.LittleEndian, &f))
	assert.Equal(t, uint8(3), f.N)
	assert.GreaterOrEqual(t, f.A, uint32(24))
}

// sourceBounds returns the vertex count and world bounding box of the
// baked test model.
func sourceBounds() (int, math32.Box3) {
	n := 0
	bb := math32.B3Empty()
	for _, p := range scene.Bake(testModel()) {
		n += p.Mesh.NumVertex()
		bb.ExpandByBox(p.Mesh.BBox())
	}
	return n, bb
}

func assertBox(t *testing.T, want, have math32.Box3) {
	t.Helper()
	for _, v := range [][2]math32.Vector3{{want.Min, have.Min}, {want.Max, have.Max}} {
		tolassert.EqualTol(t, v[0].X, v[1].X, 1e-4)
		tolassert.EqualTol(t, v[0].Y, v[1].Y, 1e-4)
		tolassert.EqualTol(t, v[0].Z, v[1].Z, 1e-4)
	}
}

func TestOBJReadBack(t *testing.T) {
	b, err := Export(testModel(), OBJ)
	require.NoError(t, err)
	var pos []math32.Vector3
	faces := 0
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		fs := strings.Fields(sc.Text())
		if len(fs) == 0 {
			continue
		}
		switch fs[0] {
		case "v":
			require.Len(t, fs, 4)
			var xyz [3]float32
			for i := range xyz {
				x, err := strconv.ParseFloat(fs[i+1], 32)
				require.NoError(t, err)
				xyz[i] = float32(x)
			}
			pos = append(pos, math32.Vec3(xyz[0], xyz[1], xyz[2]))
		case "f":
			faces++
			for _, f := range fs[1:] {
				vi, err := strconv.Atoi(strings.Split(f, "/")[0])
				require.NoError(t, err)
				assert.True(t, vi >= 1 && vi <= len(pos), "face index %d out of range", vi)
			}
		}
	}
	n, want := sourceBounds()
	assert.Equal(t, n, len(pos))
	assert.Equal(t, 24, faces)
	bb := math32.B3Empty()
	for _, p := range pos {
		bb.ExpandByPoint(p)
	}
	assertBox(t, want, bb)
}

func TestPLYReadBack(t *testing.T) {
	b, err := Export(testModel(), PLY)
	require.NoError(t, err)
	hdr, body, ok := bytes.Cut(b, []byte("end_header\n"))
	require.True(t, ok)
	var nv, nf int
	for _, ln := range strings.Split(string(hdr), "\n") {
		fs := strings.Fields(ln)
		if len(fs) == 3 && fs[0] == "element" {
			v, err := strconv.Atoi(fs[2])
			require.NoError(t, err)
			switch fs[1] {
			case "vertex":
				nv = v
			case "face":
				nf = v
			}
		}
	}
	n, want := sourceBounds()
	require.Equal(t, n, nv)

	r := bytes.NewReader(body)
	bb := math32.B3Empty()
	for range nv {
		var v plyVertex
		require.NoError(t, binary.Read(r, binary.LittleEndian, &v))
		bb.ExpandByPoint(math32.Vec3(v.X, v.Y, v.Z))
	}
	assertBox(t, want, bb)
	for range nf {
		var f plyFace
		require.NoError(t, binary.Read(r, binary.LittleEndian, &f))
		assert.Equal(t, uint8(3), f.N)
		for _, vi := range []uint32{f.A, f.B, f.C} {
			assert.Less(t, vi, uint32(nv))
		}
	}
	assert.Zero(t, r.Len())
}

func TestThreeMF(t *testing.T) {
	b, err := Export(testModel(), ThreeMF)
	require.NoError(t, err)
	assert.True(t, filetype.Is(b, "zip"))

	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	require.NoError(t, err)
	files := map[string]bool{}
	for _, f := range zr.File {
		files[f.Name] = true
	}
	assert.Contains(t, files, "[Content_Types].xml")
	assert.Contains(t, files, "_rels/.rels")
	assert.Contains(t, files, strings.TrimPrefix(threeMFModelPath, "/"))

	var md go3mf.Model
	require.NoError(t, go3mf.NewDecoder(bytes.NewReader(b), int64(len(b))).Decode(&md))
	assert.Equal(t, go3mf.UnitMillimeter, md.Units)
	require.Len(t, md.Resources.Objects, 2)
	require.Len(t, md.Resources.Assets, 1)
	mats, ok := md.Resources.Assets[0].(*go3mf.BaseMaterials)
	require.True(t, ok)
	require.Len(t, mats.Materials, 2)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, mats.Materials[1].Color)
	for i, ob := range md.Resources.Objects {
		require.NotNil(t, ob.Mesh)
		assert.Len(t, ob.Mesh.Vertices.Vertex, 8)
		assert.Len(t, ob.Mesh.Triangles.Triangle, 12)
		assert.Equal(t, uint32(i), ob.PIndex)
	}
	assert.Len(t, md.Build.Items, 2)
}
