// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wifiqr produces the QR code bitmaps that let phones join
// a WiFi network.
package wifiqr

import (
	"fmt"
	"strings"

	"cogentcore.org/wifistand/shape"
	"github.com/skip2/go-qrcode"
)

// Levels are QR error correction levels.
type Levels = qrcode.RecoveryLevel

// DefaultLevel is the error correction level used when none is given.
const DefaultLevel = qrcode.Medium

// Payload returns the WiFi network configuration string encoded in
// the QR code. A network without a password is open, and the hidden
// flag is only recorded for protected networks.
func Payload(ssid, password string, hidden bool) string {
	switch {
	case password == "":
		return fmt.Sprintf("WIFI:T:nopass;S:%s;;", ssid)
	case hidden:
		return fmt.Sprintf("WIFI:T:WPA;S:%s;P:%s;H:true;;", ssid, password)
	default:
		return fmt.Sprintf("WIFI:T:WPA;S:%s;P:%s;;", ssid, password)
	}
}

// ParseLevel returns the level for one of the letters L, M, Q, H.
// An empty string is [DefaultLevel].
func ParseLevel(s string) (Levels, error) {
	switch strings.ToUpper(s) {
	case "":
		return DefaultLevel, nil
	case "L":
		return qrcode.Low, nil
	case "M":
		return qrcode.Medium, nil
	case "Q":
		return qrcode.High, nil
	case "H":
		return qrcode.Highest, nil
	}
	return DefaultLevel, fmt.Errorf("wifiqr.ParseLevel: unknown level %q", s)
}

// Bitmap returns the square module matrix of the QR code for the
// payload, without the quiet zone border. true is a dark module.
func Bitmap(payload string, level Levels) (shape.Bitmap, error) {
	q, err := qrcode.New(payload, level)
	if err != nil {
		return nil, fmt.Errorf("wifiqr.Bitmap: %w", err)
	}
	q.DisableBorder = true
	return shape.NewBitmap(q.Bitmap())
}

// WiFi returns the QR bitmap for joining the given network.
func WiFi(ssid, password string, hidden bool, level Levels) (shape.Bitmap, error) {
	return Bitmap(Payload(ssid, password, hidden), level)
}
