// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package card assembles the printable WiFi card: a card carrying the
// network name, a QR code and a WiFi icon, and a stand with a slot cut
// for the card. It exports the model as an archive of 3D files.
package card

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/wifistand/csg"
	"cogentcore.org/wifistand/scene"
	"cogentcore.org/wifistand/shape"
	"cogentcore.org/wifistand/textsolid"
	"golang.org/x/sync/errgroup"
)

// Registry ids of the model objects.
const (
	CardID  = "card"
	TextID  = "ssidText"
	QRID    = "qrcode"
	IconID  = "wifiIcon"
	StandID = "stand"

	// SlotID is the stand with the card slot cut out of it.
	SlotID = "slottedStand"
)

// iconSpan is the angular span of the icon arcs, in radians.
var iconSpan = [2]float32{math32.Pi * 0.25, math32.Pi * 0.75}

// Model is a WiFi card and stand model. Async text solids are only
// installed in the scene by [Model.Sync]; all other methods must be
// called from one goroutine.
type Model struct {

	// Options is the layout.
	Options *Options

	// Scene holds the model objects.
	Scene *scene.Scene

	// Loader loads the fonts for text solids.
	Loader *textsolid.Loader

	// texts are the source strings of text solids, by id.
	texts map[string]string

	// bitmap is the QR code bitmap.
	bitmap shape.Bitmap

	// pending are the text solids being built, by id.
	pending map[string]*pendingText
}

type pendingText struct {
	future *textsolid.Future[*textsolid.Text]

	// anchor is used when the id is not registered at install time.
	anchor math32.Vector3
}

// NewModel returns a new empty model with the given options, which
// must be valid, and loader. nil options are [DefaultOptions], and a
// nil loader only has the embedded fonts.
func NewModel(opts *Options, ld *textsolid.Loader) *Model {
	if opts == nil {
		opts = DefaultOptions()
	}
	if ld == nil {
		ld = textsolid.NewLoader(nil)
	}
	sc := scene.New("wifistand")
	sc.Background = hexColor(opts.Background)
	return &Model{
		Options: opts,
		Scene:   sc,
		Loader:  ld,
		texts:   map[string]string{},
		pending: map[string]*pendingText{},
	}
}

// GenerateModel builds all objects of the model for the given network
// name and QR bitmap. The text solid is built asynchronously and
// appears in the scene at the next [Model.Sync].
func (m *Model) GenerateModel(ssid string, bm shape.Bitmap) error {
	if _, err := bm.Side(); err != nil {
		return fmt.Errorf("card.GenerateModel: %w", err)
	}
	o := m.Options
	m.bitmap = bm

	cd := scene.NewBox(CardID, o.Card.Size, hexColor(o.Card.Color))
	cd.Pose.Pos = o.Card.Pos
	m.Scene.Register(CardID, cd, o.Card.Pos)

	m.texts[TextID] = ssid
	m.buildText(TextID, o.Text.Size, o.Text.Pos)

	if err := m.buildQR(o.QR.Size, o.QR.Pos); err != nil {
		return err
	}
	m.buildIcon()

	st := scene.NewBox(StandID, o.Stand.Size, hexColor(o.Stand.Color))
	st.Pose.Pos = o.Stand.Pos
	m.Scene.Register(StandID, st, o.Stand.Pos)
	errors.Log(m.Scene.SetAngle(StandID, o.Stand.Angle, 0, 0))

	side, _ := bm.Side()
	slog.Info("generated model", "ssid", ssid, "qrSide", side)
	return nil
}

// Text returns the source string of the text solid id.
func (m *Model) Text(id string) (string, bool) {
	s, ok := m.texts[id]
	return s, ok
}

// Bitmap returns the QR code bitmap.
func (m *Model) Bitmap() shape.Bitmap {
	return m.bitmap
}

// Pending returns the ids of text solids that are still to be
// installed by [Model.Sync].
func (m *Model) Pending() []string {
	return slices.Sorted(maps.Keys(m.pending))
}

func (m *Model) buildText(id string, size float32, anchor math32.Vector3) {
	pr := textsolid.Params{Size: size, Depth: m.Options.Text.Depth}
	m.pending[id] = &pendingText{
		future: textsolid.BuildAsync(m.Loader, m.Options.Text.Font, m.texts[id], pr),
		anchor: anchor,
	}
}

func (m *Model) buildQR(size float32, pos math32.Vector3) error {
	ms, err := shape.NewQRSolid(m.bitmap, size, m.Options.QR.Depth)
	if err != nil {
		return fmt.Errorf("card: qr code: %w", err)
	}
	nd := scene.NewSolid(QRID, ms, hexColor(m.Options.QR.Color))
	nd.Pose.Pos = pos
	m.Scene.Register(QRID, nd, pos)
	return nil
}

func (m *Model) buildIcon() {
	o := m.Options.Icon
	clr := hexColor(o.Color)
	g := scene.NewGroup(IconID)
	g.Pose.Pos = o.Pos
	g.AddChild(scene.NewSolid("arc1", shape.NewArcRing(o.Size, o.Thickness, o.Depth, iconSpan[0], iconSpan[1]), clr))
	g.AddChild(scene.NewSolid("arc2", shape.NewArcRing(0.6*o.Size, o.Thickness, o.Depth, iconSpan[0], iconSpan[1]), clr))
	dot := g.AddChild(scene.NewSolid("dot", shape.NewCylinder(o.DotRadius, o.Depth, shape.MinCylinderSegments), clr))
	dot.Pose.SetEulerRotation(90, 0, 0)
	dot.Pose.Pos.Z = o.Depth / 2
	m.Scene.Register(IconID, g, o.Pos)
}

// Sync waits for all pending text solids and installs them in the
// scene, centered on their canonical position. A text solid that
// fails to build is logged and never appears, without affecting the
// other objects. Sync only returns an error if ctx is done first, in
// which case unfinished solids stay pending.
func (m *Model) Sync(ctx context.Context) error {
	ids := m.Pending()
	if len(ids) == 0 {
		return nil
	}
	texts := make([]*textsolid.Text, len(ids))
	errs := make([]error, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		fut := m.pending[id].future
		g.Go(func() error {
			tx, err := fut.Wait(gctx)
			if err != nil && gctx.Err() != nil {
				return gctx.Err()
			}
			texts[i], errs[i] = tx, err
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("card.Sync: %w", err)
	}
	for i, id := range ids {
		pt := m.pending[id]
		delete(m.pending, id)
		if errs[i] != nil {
			errors.Log(fmt.Errorf("card.Sync: text %q: %w", id, errs[i]))
			continue
		}
		m.installText(id, pt, texts[i])
	}
	return nil
}

func (m *Model) installText(id string, pt *pendingText, tx *textsolid.Text) {
	anchor := pt.anchor
	if e, err := m.Scene.Lookup(id); err == nil {
		anchor = e.Canonical
		errors.Log(m.Scene.SetMesh(id, tx.Mesh))
	} else {
		m.Scene.Register(id, scene.NewSolid(id, tx.Mesh, hexColor(m.Options.Text.Color)), anchor)
	}
	errors.Log(m.Scene.SetPosition(id, anchor, scene.AllAxes, true))
	slog.Debug("installed text", "id", id, "width", tx.Width, "height", tx.Height)
}

// ResizeQR regenerates the QR code solid with the given side length,
// keeping its position.
func (m *Model) ResizeQR(size float32) error {
	if _, err := m.Scene.Lookup(QRID); err != nil {
		return fmt.Errorf("card.ResizeQR: %w", err)
	}
	ms, err := shape.NewQRSolid(m.bitmap, size, m.Options.QR.Depth)
	if err != nil {
		return fmt.Errorf("card.ResizeQR: %w", err)
	}
	return m.Scene.SetMesh(QRID, ms)
}

// ResizeText rebuilds the text solid id from its source string at the
// given font size. The new solid replaces the old one at the next
// [Model.Sync], centered on the canonical position at that time.
func (m *Model) ResizeText(id string, size float32) error {
	if _, ok := m.texts[id]; !ok {
		return fmt.Errorf("card.ResizeText: %q: %w", id, scene.ErrNotFound)
	}
	anchor := m.Options.Text.Pos
	if pt, ok := m.pending[id]; ok {
		anchor = pt.anchor
	}
	m.buildText(id, size, anchor)
	return nil
}

// ResizeIcon regenerates the icon parts for the given outer radius.
// The arc thickness is size/6 and the dot radius is size/7.
func (m *Model) ResizeIcon(size float32) error {
	g, err := m.Scene.Node(IconID)
	if err != nil {
		return fmt.Errorf("card.ResizeIcon: %w", err)
	}
	if len(g.Children) != 3 {
		return fmt.Errorf("card.ResizeIcon: icon has %d parts, not 3", len(g.Children))
	}
	d := m.Options.Icon.Depth
	g.Children[0].SetMesh(shape.NewArcRing(size, size/6, d, iconSpan[0], iconSpan[1]))
	g.Children[1].SetMesh(shape.NewArcRing(0.6*size, size/6, d, iconSpan[0], iconSpan[1]))
	g.Children[2].SetMesh(shape.NewCylinder(size/7, d, shape.MinCylinderSegments))
	return nil
}

// CutSlot cuts the card out of the stand, registering the result as
// [SlotID]. If the slotted stand is already live, it is returned
// without being recomputed.
func (m *Model) CutSlot() (*scene.Node, error) {
	if m.Scene.IsLive(SlotID) {
		return m.Scene.Node(SlotID)
	}
	st, err := m.Scene.Lookup(StandID)
	if err != nil {
		return nil, fmt.Errorf("card.CutSlot: %w", err)
	}
	cd, err := m.Scene.Node(CardID)
	if err != nil {
		return nil, fmt.Errorf("card.CutSlot: %w", err)
	}
	nd, err := csg.SubtractNodes(SlotID, st.Node, cd)
	if err != nil {
		return nil, fmt.Errorf("card.CutSlot: %w", err)
	}
	m.Scene.Register(SlotID, nd, st.Canonical)
	errors.Log(m.Scene.Show(SlotID))
	slog.Debug("cut slot", "triangles", nd.Mesh.NumTriangles())
	return nd, nil
}

// ContentSolid returns a new unregistered solid merging the text,
// the QR code and the icon in world space, in the text color.
// The caller owns the result.
func (m *Model) ContentSolid() (*scene.Node, error) {
	nd, err := m.Scene.Composite("content", hexColor(m.Options.Text.Color), TextID, QRID, IconID)
	if err != nil {
		return nil, fmt.Errorf("card.ContentSolid: %w", err)
	}
	return nd, nil
}
