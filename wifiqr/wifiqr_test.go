// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wifiqr

import (
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayload(t *testing.T) {
	assert.Equal(t, "WIFI:T:nopass;S:cafe;;", Payload("cafe", "", false))
	assert.Equal(t, "WIFI:T:nopass;S:cafe;;", Payload("cafe", "", true))
	assert.Equal(t, "WIFI:T:WPA;S:home;P:secret;;", Payload("home", "secret", false))
	assert.Equal(t, "WIFI:T:WPA;S:home;P:secret;H:true;;", Payload("home", "secret", true))
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("q")
	require.NoError(t, err)
	assert.Equal(t, qrcode.High, l)
	l, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLevel, l)
	_, err = ParseLevel("X")
	assert.Error(t, err)
}

func TestBitmap(t *testing.T) {
	bm, err := WiFi("home", "secret", false, DefaultLevel)
	require.NoError(t, err)
	side, err := bm.Side()
	require.NoError(t, err)
	// versions are 21 + 4k modules wide
	assert.Equal(t, 0, (side-21)%4)
	assert.GreaterOrEqual(t, side, 21)
	// finder pattern corners are dark
	assert.True(t, bm.At(side, 0, 0))
	assert.True(t, bm.At(side, 0, side-1))
	assert.True(t, bm.At(side, side-1, 0))
	assert.Greater(t, bm.Dark(), side)

	long, err := WiFi("home", "a much longer password for a larger code", true, qrcode.Highest)
	require.NoError(t, err)
	lside, _ := long.Side()
	assert.Greater(t, lside, side)
}
