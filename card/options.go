// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package card

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/wifistand/textsolid"
	"github.com/mitchellh/go-homedir"
)

// Options are the layout parameters of the card and stand.
// All lengths are in millimeters, and colors are hex strings.
type Options struct {

	// Background is the scene background color.
	Background string

	// Card is the flat card that carries the content.
	Card BoxOptions

	// Stand is the block the card is slotted into.
	Stand StandOptions

	// Text is the network name printed above the QR code.
	Text TextOptions

	// QR is the QR code.
	QR QROptions

	// Icon is the WiFi symbol below the QR code.
	Icon IconOptions
}

// BoxOptions are the placement, size and color of a box.
type BoxOptions struct {
	Pos   math32.Vector3
	Size  math32.Vector3
	Color string
}

// StandOptions are the placement and tilt of the stand.
type StandOptions struct {
	Pos   math32.Vector3
	Size  math32.Vector3
	Color string

	// Angle is the tilt about the X axis, in degrees.
	Angle float32
}

// TextOptions are the parameters of the text solid.
type TextOptions struct {

	// Pos is the anchor the text is centered on.
	Pos math32.Vector3

	// Size is the font size.
	Size float32

	// Depth is the extrusion depth.
	Depth float32

	// Font is the logical path of the font, see [textsolid.Loader].
	Font string

	Color string
}

// QROptions are the parameters of the QR code solid.
type QROptions struct {
	Pos math32.Vector3

	// Size is the side of the square code.
	Size float32

	Depth float32
	Color string
}

// IconOptions are the parameters of the WiFi icon.
type IconOptions struct {
	Pos math32.Vector3

	// Size is the outer radius of the outer arc.
	Size float32

	Depth float32

	// Thickness is the radial thickness of the arcs.
	Thickness float32

	// DotRadius is the radius of the dot below the arcs.
	DotRadius float32

	Color string
}

// Defaults sets the default layout.
func (o *Options) Defaults() {
	o.Background = "#FFFFFF"
	o.Card = BoxOptions{Size: math32.Vec3(50, 75, 2), Color: "#FFFFFF"}
	o.Stand = StandOptions{Pos: math32.Vec3(0, -38, 0), Size: math32.Vec3(50, 5, 50), Color: "#FFFFFF", Angle: 15}
	o.Text = TextOptions{Pos: math32.Vec3(0, 30, 1), Size: 5, Depth: 1, Font: textsolid.DefaultFont, Color: "#000000"}
	o.QR = QROptions{Pos: math32.Vec3(0, 5, 1), Size: 40, Depth: 1, Color: "#000000"}
	o.Icon = IconOptions{Pos: math32.Vec3(0, -25, 1), Size: 6, Depth: 1, Thickness: 1, DotRadius: 1, Color: "#000000"}
}

// DefaultOptions returns the default layout.
func DefaultOptions() *Options {
	o := &Options{}
	o.Defaults()
	return o
}

// OpenOptions returns the default layout overridden by the values
// in the given TOML file. A leading ~ in the file name is expanded.
func OpenOptions(filename string) (*Options, error) {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	o := DefaultOptions()
	if err := tomlx.Open(o, fn); err != nil {
		return nil, fmt.Errorf("card.OpenOptions: %s: %w", fn, err)
	}
	return o, o.Validate()
}

// Save writes the options to the given TOML file.
func (o *Options) Save(filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	return tomlx.Save(o, fn)
}

// Validate returns an error for unparseable colors or
// sizes that are not positive.
func (o *Options) Validate() error {
	for _, c := range []string{o.Background, o.Card.Color, o.Stand.Color, o.Text.Color, o.QR.Color, o.Icon.Color} {
		if _, err := colors.FromHex(c); err != nil {
			return fmt.Errorf("card.Options: %w", err)
		}
	}
	sizes := map[string]float32{
		"Card.Size.X": o.Card.Size.X, "Card.Size.Y": o.Card.Size.Y, "Card.Size.Z": o.Card.Size.Z,
		"Stand.Size.X": o.Stand.Size.X, "Stand.Size.Y": o.Stand.Size.Y, "Stand.Size.Z": o.Stand.Size.Z,
		"Text.Size": o.Text.Size, "Text.Depth": o.Text.Depth,
		"QR.Size": o.QR.Size, "QR.Depth": o.QR.Depth,
		"Icon.Size": o.Icon.Size, "Icon.Depth": o.Icon.Depth,
		"Icon.Thickness": o.Icon.Thickness, "Icon.DotRadius": o.Icon.DotRadius,
	}
	for nm, v := range sizes {
		if v <= 0 {
			return fmt.Errorf("card.Options: %s must be positive, not %g", nm, v)
		}
	}
	return nil
}

// hexColor returns the color for a validated hex string.
func hexColor(s string) color.RGBA {
	c, _ := colors.FromHex(s)
	return c
}
