// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestHSVAchromatic(t *testing.T) {
	v := NewRGB[SRGB](0.25, 0.25, 0.25).HSV()
	assert.Equal(t, 0.0, float64(v.Hue))
	assert.Equal(t, 0.0, float64(v.Saturation))
	assert.Equal(t, 0.25, float64(v.Value))

	black := NewRGB[SRGB](0.0, 0.0, 0.0).HSV()
	assert.Equal(t, 0.0, float64(black.Saturation))
	assert.Equal(t, 0.0, float64(black.Value))
}

func TestHSVRoundTrip(t *testing.T) {
	for _, c := range []RGB[SRGB, float64]{
		NewRGB[SRGB](1.0, 0.0, 0.0),
		NewRGB[SRGB](0.1, 0.7, 0.3),
		NewRGB[SRGB](0.2, 0.2, 0.9),
		NewRGB[SRGB](1.0, 1.0, 1.0),
	} {
		back := c.HSV().RGB()
		assert.InDelta(t, float64(c.R), float64(back.R), 1e-9)
		assert.InDelta(t, float64(c.G), float64(back.G), 1e-9)
		assert.InDelta(t, float64(c.B), float64(back.B), 1e-9)
	}
}

func TestHSVAgainstColorful(t *testing.T) {
	ref := colorful.Color{R: 0.3, G: 0.6, B: 0.9}
	h, s, v := ref.Hsv()
	ours := NewRGB[SRGB](0.3, 0.6, 0.9).HSV()
	assert.InDelta(t, h, float64(ours.Hue), 1e-6)
	assert.InDelta(t, s, float64(ours.Saturation), 1e-6)
	assert.InDelta(t, v, float64(ours.Value), 1e-6)
}

func TestHSVHSLAgree(t *testing.T) {
	c := NewRGB[SRGB](0.8, 0.4, 0.1)
	assert.InDelta(t, float64(c.HSL().Hue), float64(c.HSV().Hue), 1e-9)
}
