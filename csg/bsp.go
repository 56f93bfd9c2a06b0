// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csg

// node is a node of a BSP tree. Polygons coplanar with the node
// plane are stored in the node itself.
type node struct {
	plane    *Plane
	front    *node
	back     *node
	polygons []*Polygon
}

func newNode(pgs []*Polygon) *node {
	nd := &node{}
	if len(pgs) > 0 {
		nd.build(pgs)
	}
	return nd
}

// invert converts solid space to empty space and vice versa.
func (nd *node) invert() {
	for _, pg := range nd.polygons {
		pg.Flip()
	}
	if nd.plane != nil {
		nd.plane.Flip()
	}
	if nd.front != nil {
		nd.front.invert()
	}
	if nd.back != nil {
		nd.back.invert()
	}
	nd.front, nd.back = nd.back, nd.front
}

// clipPolygons removes the parts of pgs that are inside this tree.
func (nd *node) clipPolygons(pgs []*Polygon) []*Polygon {
	if nd.plane == nil {
		return append([]*Polygon(nil), pgs...)
	}
	var fr, bk []*Polygon
	for _, pg := range pgs {
		nd.plane.split(pg, &fr, &bk, &fr, &bk)
	}
	if nd.front != nil {
		fr = nd.front.clipPolygons(fr)
	}
	if nd.back != nil {
		bk = nd.back.clipPolygons(bk)
	} else {
		bk = nil
	}
	return append(fr, bk...)
}

// clipTo removes all polygons in this tree that are inside the other tree.
func (nd *node) clipTo(o *node) {
	nd.polygons = o.clipPolygons(nd.polygons)
	if nd.front != nil {
		nd.front.clipTo(o)
	}
	if nd.back != nil {
		nd.back.clipTo(o)
	}
}

// allPolygons returns all polygons in the tree.
func (nd *node) allPolygons() []*Polygon {
	pgs := append([]*Polygon(nil), nd.polygons...)
	if nd.front != nil {
		pgs = append(pgs, nd.front.allPolygons()...)
	}
	if nd.back != nil {
		pgs = append(pgs, nd.back.allPolygons()...)
	}
	return pgs
}

// build inserts the polygons into the tree, splitting them as needed.
func (nd *node) build(pgs []*Polygon) {
	if len(pgs) == 0 {
		return
	}
	if nd.plane == nil {
		pl := pgs[0].Plane
		nd.plane = &pl
	}
	var fr, bk []*Polygon
	for _, pg := range pgs {
		nd.plane.split(pg, &nd.polygons, &nd.polygons, &fr, &bk)
	}
	if len(fr) > 0 {
		if nd.front == nil {
			nd.front = &node{}
		}
		nd.front.build(fr)
	}
	if len(bk) > 0 {
		if nd.back == nil {
			nd.back = &node{}
		}
		nd.back.build(bk)
	}
}
