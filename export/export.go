// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export serializes baked scene geometry into 3D interchange
// formats. Each format has an [Encoder] registered in [Encoders].
package export

//go:generate core generate

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/wifistand/scene"
)

// ErrUnsupportedFormat is returned for a format with no registered encoder.
var ErrUnsupportedFormat = errors.New("export: unsupported format")

// Formats are the supported export formats.
type Formats int32 //enums:enum -transform lower -line-comment -accept-lower

const (
	// GLTF is binary glTF 2.0 (a .glb container).
	GLTF Formats = iota

	// OBJ is Wavefront OBJ text.
	OBJ

	// PLY is binary little-endian Stanford PLY with vertex colors.
	PLY

	// STL is binary STL.
	STL

	// ThreeMF is the 3D Manufacturing Format zip container.
	ThreeMF // 3mf
)

// Ext returns the file extension for the format, without the dot.
// Binary glTF keeps the .gltf extension.
func (f Formats) Ext() string {
	return f.String()
}

// ParseFormat returns the format with the given name or file
// extension, case-insensitively. "glb" is accepted for [GLTF].
func ParseFormat(s string) (Formats, error) {
	s = strings.TrimPrefix(s, ".")
	if strings.EqualFold(s, "glb") {
		return GLTF, nil
	}
	var f Formats
	if err := f.SetString(s); err != nil {
		return 0, fmt.Errorf("export.ParseFormat: %w: %w", ErrUnsupportedFormat, err)
	}
	return f, nil
}

// Encoder writes baked parts in one file format.
type Encoder interface {
	// Encode writes the parts as one document named name.
	Encode(w io.Writer, name string, parts []scene.Part) error
}

// Encoders is the registry of encoders for each format.
// Encoders register themselves in init functions.
var Encoders = map[Formats]Encoder{}

// Validate returns [ErrUnsupportedFormat] if there is no encoder for f.
func Validate(f Formats) error {
	if _, ok := Encoders[f]; !ok {
		return fmt.Errorf("export: format %v: %w", f, ErrUnsupportedFormat)
	}
	return nil
}

// Export bakes the node and its descendants with the node as root
// and encodes them in the given format. The node is not modified.
func Export(nd *scene.Node, f Formats) ([]byte, error) {
	if err := Validate(f); err != nil {
		return nil, err
	}
	return ExportParts(nd.Name, scene.Bake(nd), f)
}

// ExportParts encodes already baked parts in the given format.
func ExportParts(name string, parts []scene.Part, f Formats) ([]byte, error) {
	enc, ok := Encoders[f]
	if !ok {
		return nil, fmt.Errorf("export.ExportParts: format %v: %w", f, ErrUnsupportedFormat)
	}
	var b bytes.Buffer
	if err := enc.Encode(&b, name, parts); err != nil {
		return nil, fmt.Errorf("export.ExportParts: %v: %w", f, err)
	}
	return b.Bytes(), nil
}
