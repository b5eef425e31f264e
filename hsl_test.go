// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestHSLAchromatic(t *testing.T) {
	h := NewRGB[SRGB](0.5, 0.5, 0.5).HSL()
	assert.Equal(t, 0.0, float64(h.Hue))
	assert.Equal(t, 0.0, float64(h.Saturation))
	assert.Equal(t, 0.5, float64(h.Lightness))
}

func TestHSLRoundTrip(t *testing.T) {
	for _, c := range []RGB[SRGB, float64]{
		NewRGB[SRGB](1.0, 0.0, 0.0),
		NewRGB[SRGB](0.1, 0.7, 0.3),
		NewRGB[SRGB](0.9, 0.9, 0.2),
		NewRGB[SRGB](0.0, 0.0, 0.0),
		NewRGB[SRGB](1.0, 1.0, 1.0),
	} {
		back := c.HSL().RGB()
		assert.InDelta(t, float64(c.R), float64(back.R), 1e-9)
		assert.InDelta(t, float64(c.G), float64(back.G), 1e-9)
		assert.InDelta(t, float64(c.B), float64(back.B), 1e-9)
	}
}

func TestHSLAgainstColorful(t *testing.T) {
	ref := colorful.Color{R: 0.3, G: 0.6, B: 0.9}
	h, s, l := ref.Hsl()
	ours := NewRGB[SRGB](0.3, 0.6, 0.9).HSL()
	assert.InDelta(t, h, float64(ours.Hue), 1e-6)
	assert.InDelta(t, s, float64(ours.Saturation), 1e-6)
	assert.InDelta(t, l, float64(ours.Lightness), 1e-6)
}

func TestHSLMixHue(t *testing.T) {
	a := NewHSL[SRGB](350.0, 0.5, 0.5)
	b := NewHSL[SRGB](10.0, 0.5, 0.5)
	m := a.Mix(b, 0.5)
	// Shorter arc crosses 0, not 180.
	assert.InDelta(t, 0, float64(m.Hue), 1e-9)
}

func TestHSLShade(t *testing.T) {
	h := NewHSL[SRGB](120.0, 0.5, 0.5)
	assert.Equal(t, 0.7, float64(h.Lighten(0.2).Lightness))
	assert.Equal(t, 0.3, float64(h.Darken(0.2).Lightness))
	assert.Equal(t, 1.0, float64(h.Lighten(2).Lightness))
	assert.Equal(t, 0.7, float64(h.Saturate(0.2).Saturation))
	assert.Equal(t, 0.3, float64(h.Desaturate(0.2).Saturation))
	assert.Equal(t, 150.0, float64(h.ShiftHue(30).Hue))
	assert.Equal(t, 90.0, float64(h.ShiftHue(-390).Hue))
}

func TestHSLThroughHub(t *testing.T) {
	h := NewHSL[SRGB](200.0, 0.7, 0.4)
	lab := LabFrom[D65](h.Tristimulus())
	back := HSLFrom[SRGB](lab.Tristimulus())
	assert.InDelta(t, float64(h.Hue), float64(back.Hue), 1e-6)
	assert.InDelta(t, float64(h.Saturation), float64(back.Saturation), 1e-6)
	assert.InDelta(t, float64(h.Lightness), float64(back.Lightness), 1e-6)
}
