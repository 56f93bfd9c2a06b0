// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package card

import (
	"context"
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/wifistand/archive"
	"cogentcore.org/wifistand/export"
	"cogentcore.org/wifistand/scene"
)

// Export waits for pending text solids, exports the model in the
// given format split into files by the policy, and returns the zip
// archive of the files. An unsupported format or policy fails before
// anything is exported, and any failure aborts the whole archive.
func (m *Model) Export(ctx context.Context, f export.Formats, p archive.Policies) ([]byte, error) {
	if err := export.Validate(f); err != nil {
		return nil, fmt.Errorf("card.Export: %w", err)
	}
	names, err := p.Names(f.Ext())
	if err != nil {
		return nil, fmt.Errorf("card.Export: %w", err)
	}
	if err := m.Sync(ctx); err != nil {
		return nil, err
	}
	var data [][]byte
	switch p {
	case archive.Separate:
		data, err = m.exportSeparate(f)
	case archive.CardContentAndStand:
		data, err = m.exportCardContentAndStand(f)
	case archive.Single:
		var b []byte
		b, err = export.Export(m.Scene.Root, f)
		data = [][]byte{b}
	}
	if err != nil {
		return nil, fmt.Errorf("card.Export: %w", err)
	}
	files := make([]archive.File, len(names))
	for i, nm := range names {
		files[i] = archive.File{Name: nm, Data: data[i]}
	}
	slog.Info("exported model", "format", f, "policy", p, "files", len(files))
	return archive.Pack(files)
}

func (m *Model) exportSeparate(f export.Formats) ([][]byte, error) {
	cd, err := m.Scene.Node(CardID)
	if err != nil {
		return nil, err
	}
	cb, err := export.Export(cd, f)
	if err != nil {
		return nil, err
	}
	ct, err := m.ContentSolid()
	if err != nil {
		return nil, err
	}
	defer ct.Release()
	tb, err := export.Export(ct, f)
	if err != nil {
		return nil, err
	}
	sb, err := m.exportStand(f)
	if err != nil {
		return nil, err
	}
	return [][]byte{cb, tb, sb}, nil
}

func (m *Model) exportCardContentAndStand(f export.Formats) ([][]byte, error) {
	cd, err := m.Scene.Node(CardID)
	if err != nil {
		return nil, err
	}
	ct, err := m.ContentSolid()
	if err != nil {
		return nil, err
	}
	g := scene.NewGroup("card-and-content")
	g.AddChild(cd.Clone())
	g.AddChild(ct)
	defer g.Release()
	cb, err := export.Export(g, f)
	if err != nil {
		return nil, err
	}
	sb, err := m.exportStand(f)
	if err != nil {
		return nil, err
	}
	return [][]byte{cb, sb}, nil
}

// exportStand exports the slotted stand without its tilt. The slotted
// stand is removed from the scene afterwards.
func (m *Model) exportStand(f export.Formats) ([]byte, error) {
	nd, err := m.CutSlot()
	if err != nil {
		return nil, err
	}
	defer func() {
		errors.Log(m.Scene.Remove(SlotID))
	}()
	m.Scene.Hide(SlotID)
	nd.Pose.SetEulerRotation(0, 0, 0)
	nd.Pose.UpdateMatrix()
	return export.Export(nd, f)
}
