// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides a tree of posed solids and a registry that
// addresses them by id, with the transform operations used to lay out
// an assembly and bake it into world-space geometry.
package scene

import (
	"fmt"
	"image/color"
	"log/slog"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

var (
	// ErrNotFound is returned when an operation references an id
	// that is not registered.
	ErrNotFound = errors.New("scene: object not found")

	// ErrExists is returned by [Scene.Add] for an id that is
	// already registered.
	ErrExists = errors.New("scene: object already exists")

	// ErrNotBox is returned by [Scene.SetDimension] for nodes
	// that are not boxes.
	ErrNotBox = errors.New("scene: object is not a box")
)

// Entry is the registry handle of a node. It remains valid until the
// id is removed or replaced.
type Entry struct {

	// ID is the registry id.
	ID string

	// Node is the registered node.
	Node *Node

	// Canonical is the placement recorded at creation, used as the
	// baseline for relative offsets.
	Canonical math32.Vector3
}

// Scene is a root node plus a registry of named nodes.
// Registered nodes are children of Root while live; hidden nodes are
// detached from Root but keep their entry and geometry.
// Scene is not safe for concurrent use.
type Scene struct {

	// Name is the name of the scene.
	Name string

	// Background is the background color.
	Background color.RGBA

	// Root is the root of the renderable tree.
	Root *Node

	entries map[string]*Entry
}

// New returns a new empty scene.
func New(name string) *Scene {
	return &Scene{Name: name, Background: colors.White, Root: NewGroup(name), entries: map[string]*Entry{}}
}

func notFound(op, id string) error {
	return fmt.Errorf("scene.%s: %q: %w", op, id, ErrNotFound)
}

// Add registers the node under the given id with the given canonical
// position, and adds it to the live scene. The node pose is not changed.
func (sc *Scene) Add(id string, nd *Node, canonical math32.Vector3) (*Entry, error) {
	if _, ok := sc.entries[id]; ok {
		return nil, fmt.Errorf("scene.Add: %q: %w", id, ErrExists)
	}
	e := &Entry{ID: id, Node: nd, Canonical: canonical}
	sc.entries[id] = e
	sc.Root.AddChild(nd)
	return e, nil
}

// Replace releases the geometry of the node registered under id and
// installs the given node in its place, keeping its live state.
func (sc *Scene) Replace(id string, nd *Node, canonical math32.Vector3) (*Entry, error) {
	old, ok := sc.entries[id]
	if !ok {
		return nil, notFound("Replace", id)
	}
	live := sc.isLive(old.Node)
	sc.detach(old.Node)
	if old.Node != nd {
		old.Node.Release()
	}
	e := &Entry{ID: id, Node: nd, Canonical: canonical}
	sc.entries[id] = e
	if live {
		sc.Root.AddChild(nd)
	}
	return e, nil
}

// Register adds the node, or replaces the node already registered
// under the same id.
func (sc *Scene) Register(id string, nd *Node, canonical math32.Vector3) *Entry {
	if _, ok := sc.entries[id]; ok {
		return errors.Must1(sc.Replace(id, nd, canonical))
	}
	return errors.Must1(sc.Add(id, nd, canonical))
}

// Lookup returns the entry registered under id.
func (sc *Scene) Lookup(id string) (*Entry, error) {
	e, ok := sc.entries[id]
	if !ok {
		return nil, notFound("Lookup", id)
	}
	return e, nil
}

// Node returns the node registered under id.
func (sc *Scene) Node(id string) (*Node, error) {
	e, ok := sc.entries[id]
	if !ok {
		return nil, notFound("Node", id)
	}
	return e.Node, nil
}

// Has returns true if id is registered.
func (sc *Scene) Has(id string) bool {
	_, ok := sc.entries[id]
	return ok
}

// Canonical returns the canonical position of id.
func (sc *Scene) Canonical(id string) (math32.Vector3, error) {
	e, ok := sc.entries[id]
	if !ok {
		return math32.Vector3{}, notFound("Canonical", id)
	}
	return e.Canonical, nil
}

// IDs returns the sorted registered ids.
func (sc *Scene) IDs() []string {
	ids := make([]string, 0, len(sc.entries))
	for id := range sc.entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Remove unregisters id, detaches its node from the scene and
// releases its geometry.
func (sc *Scene) Remove(id string) error {
	e, ok := sc.entries[id]
	if !ok {
		return notFound("Remove", id)
	}
	delete(sc.entries, id)
	sc.detach(e.Node)
	e.Node.Release()
	slog.Debug("removed scene object", "id", id)
	return nil
}

// Hide removes the node of id from the live scene, keeping its
// entry and geometry. Hiding an unknown id does nothing.
func (sc *Scene) Hide(id string) {
	if e, ok := sc.entries[id]; ok {
		sc.detach(e.Node)
	}
}

// Show adds the node of id back to the live scene.
func (sc *Scene) Show(id string) error {
	e, ok := sc.entries[id]
	if !ok {
		return notFound("Show", id)
	}
	if !sc.isLive(e.Node) {
		sc.Root.AddChild(e.Node)
	}
	return nil
}

// IsLive returns true if id is registered and part of the live scene.
func (sc *Scene) IsLive(id string) bool {
	e, ok := sc.entries[id]
	return ok && sc.isLive(e.Node)
}

func (sc *Scene) isLive(nd *Node) bool {
	for p := nd; p != nil; p = p.parent {
		if p == sc.Root {
			return true
		}
	}
	return false
}

func (sc *Scene) detach(nd *Node) {
	if nd.parent != nil {
		nd.parent.RemoveChild(nd)
	}
}

// UpdateWorld updates the world matrices of all live nodes.
func (sc *Scene) UpdateWorld() {
	sc.Root.UpdateWorld(nil)
}
