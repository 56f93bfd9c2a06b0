// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// ErrInvalidBitmap is returned when a bitmap is not square.
var ErrInvalidBitmap = errors.New("shape: bitmap length is not a perfect square")

// Bitmap is a square grid of dark (true) and light (false) cells,
// stored in row-major order.
type Bitmap []bool

// NewBitmap returns a bitmap from the given rows, which must form a square.
func NewBitmap(rows [][]bool) (Bitmap, error) {
	bm := make(Bitmap, 0, len(rows)*len(rows))
	for i, r := range rows {
		if len(r) != len(rows) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBitmap, i, len(r), len(rows))
		}
		bm = append(bm, r...)
	}
	return bm, nil
}

// Side returns the number of cells per side.
func (bm Bitmap) Side() (int, error) {
	side := int(math32.Round(math32.Sqrt(float32(len(bm)))))
	if side*side != len(bm) {
		return 0, fmt.Errorf("%w: %d cells", ErrInvalidBitmap, len(bm))
	}
	return side, nil
}

// At returns the cell at the given row and column.
func (bm Bitmap) At(side, row, col int) bool {
	return bm[row*side+col]
}

// Dark returns the number of dark cells.
func (bm Bitmap) Dark() int {
	n := 0
	for _, b := range bm {
		if b {
			n++
		}
	}
	return n
}

// NewQRSolid returns a non-indexed mesh with one cube per dark cell of
// the bitmap. The cells span a size x size square centered on the
// origin in XY, row 0 at the top, and z runs from 0 to depth.
func NewQRSolid(bm Bitmap, size, depth float32) (*Mesh, error) {
	side, err := bm.Side()
	if err != nil {
		return nil, err
	}
	ms := &Mesh{Name: "qrcode"}
	if side == 0 {
		return ms, nil
	}
	pixel := size / float32(side)
	startX := -size/2 + pixel/2
	startY := size/2 - pixel/2
	cube := NewBox(math32.Vec3(pixel, pixel, depth))
	nv := len(cube.Index) * bm.Dark()
	ms.Vertex = math32.NewArrayF32(0, 3*nv)
	ms.Normal = math32.NewArrayF32(0, 3*nv)
	for row := range side {
		for col := range side {
			if !bm.At(side, row, col) {
				continue
			}
			ctr := math32.Vec3(startX+float32(col)*pixel, startY-float32(row)*pixel, depth/2)
			appendBoxFlat(ms, cube, ctr)
		}
	}
	return ms, nil
}
