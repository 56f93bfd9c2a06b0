// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package archive packages exported model files into a single
// zip archive, split into files according to a [Policies] value.
package archive

//go:generate core generate

import (
	"bytes"
	"fmt"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/klauspost/compress/zip"
)

// ErrUnknownPolicy is returned for an undefined [Policies] value.
var ErrUnknownPolicy = errors.New("archive: unknown export policy")

// File is one named entry in an archive.
type File struct {
	Name string
	Data []byte
}

// Policies determine how a model is split into files.
type Policies int32 //enums:enum -transform kebab -accept-lower

const (
	// Separate exports the card, the content and the stand as three files.
	Separate Policies = iota

	// CardContentAndStand exports the card merged with its content,
	// and the stand, as two files.
	CardContentAndStand

	// Single exports the whole model as one file.
	Single
)

// ParsePolicy returns the policy with the given name, case-insensitively.
func ParsePolicy(s string) (Policies, error) {
	var p Policies
	if err := p.SetString(s); err != nil {
		return 0, fmt.Errorf("archive.ParsePolicy: %w: %w", ErrUnknownPolicy, err)
	}
	return p, nil
}

// Names returns the archive file names for the policy, with the
// given extension (without the dot).
func (p Policies) Names(ext string) ([]string, error) {
	var base []string
	switch p {
	case Separate:
		base = []string{"card", "content", "stand"}
	case CardContentAndStand:
		base = []string{"card-and-content", "stand"}
	case Single:
		base = []string{"model"}
	default:
		return nil, fmt.Errorf("archive.Names: %v: %w", p, ErrUnknownPolicy)
	}
	for i, b := range base {
		base[i] = b + "." + ext
	}
	return base, nil
}

// Pack returns a deflate-compressed zip archive of the files,
// in the given order.
func Pack(files []File) ([]byte, error) {
	var b bytes.Buffer
	zw := zip.NewWriter(&b)
	for _, f := range files {
		fh := &zip.FileHeader{Name: f.Name, Method: zip.Deflate, Modified: time.Now()}
		w, err := zw.CreateHeader(fh)
		if err != nil {
			return nil, fmt.Errorf("archive.Pack: %s: %w", f.Name, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, fmt.Errorf("archive.Pack: %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("archive.Pack: %w", err)
	}
	return b.Bytes(), nil
}
