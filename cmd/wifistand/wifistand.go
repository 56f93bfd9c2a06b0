// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command wifistand generates a 3D printable WiFi card with a QR code
// and a slotted stand, and writes it as a zip archive of model files.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/core/cli"
	"cogentcore.org/wifistand/archive"
	"cogentcore.org/wifistand/card"
	"cogentcore.org/wifistand/export"
	"cogentcore.org/wifistand/textsolid"
	"cogentcore.org/wifistand/wifiqr"
	"github.com/mitchellh/go-homedir"
)

// Config is the configuration information for the wifistand cli.
type Config struct {

	// SSID is the name of the network.
	SSID string `posarg:"0"`

	// Password is the network password. An empty password
	// makes an open network code.
	Password string `flag:"p,password"`

	// Hidden marks the network as hidden.
	Hidden bool

	// Level is the QR error correction level: L, M, Q or H.
	Level string `default:"M"`

	// Format is the model file format.
	Format export.Formats `flag:"f,format" default:"stl"`

	// Policy is how the model is split into files.
	Policy archive.Policies `default:"separate"`

	// Output is the archive file to write.
	Output string `flag:"o,output" default:"wifistand.zip"`

	// Layout is an optional TOML file overriding the default layout.
	Layout string

	// SaveLayout writes the layout in use to the given TOML file.
	SaveLayout string

	// Font is the logical path of the text font, which overrides the layout.
	Font string

	// Fonts is a directory that non-embedded font paths are relative to.
	Fonts string
}

func main() {
	opts := cli.DefaultOptions("wifistand", "Wifistand generates a 3D printable WiFi card with a QR code and a slotted stand.")
	cli.Run(opts, &Config{}, &cli.Cmd[*Config]{
		Func: Run,
		Name: "wifistand",
		Doc:  "Run generates the model and writes the archive.",
		Root: true,
	})
}

// Run generates the model for the configured network and writes
// the exported archive.
func Run(c *Config) error { //cli:cmd -root
	lo := card.DefaultOptions()
	if c.Layout != "" {
		var err error
		lo, err = card.OpenOptions(c.Layout)
		if err != nil {
			return err
		}
	}
	if c.Font != "" {
		lo.Text.Font = c.Font
	}
	if c.SaveLayout != "" {
		if err := lo.Save(c.SaveLayout); err != nil {
			return err
		}
	}
	level, err := wifiqr.ParseLevel(c.Level)
	if err != nil {
		return err
	}
	if err := export.Validate(c.Format); err != nil {
		return err
	}
	if _, err := c.Policy.Names(c.Format.Ext()); err != nil {
		return err
	}
	bm, err := wifiqr.WiFi(c.SSID, c.Password, c.Hidden, level)
	if err != nil {
		return err
	}

	var ld *textsolid.Loader
	if c.Fonts != "" {
		dir, err := homedir.Expand(c.Fonts)
		if err != nil {
			return err
		}
		ld = textsolid.NewLoader(os.DirFS(dir))
	}
	m := card.NewModel(lo, ld)
	if err := m.GenerateModel(c.SSID, bm); err != nil {
		return err
	}
	b, err := m.Export(context.Background(), c.Format, c.Policy)
	if err != nil {
		return err
	}
	out, err := homedir.Expand(c.Output)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, b, 0666); err != nil {
		return fmt.Errorf("writing archive: %w", err)
	}
	slog.Info("wrote archive", "file", out, "bytes", len(b))
	return nil
}
