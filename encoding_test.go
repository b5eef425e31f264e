// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var transferStandards = []struct {
	name string
	tf   TransferFunc
}{
	{"srgb", SRGB{}},
	{"linear", LinearSRGB{}},
	{"gamma22", GammaSRGB{}},
	{"adobe", AdobeRGB{}},
	{"prophoto", ProPhotoRGB{}},
}

func TestTransferRoundTrip(t *testing.T) {
	for _, s := range transferStandards {
		t.Run(s.name, func(t *testing.T) {
			for v := 0.0; v <= 1.0; v += 0.05 {
				assert.InDelta(t, v, s.tf.Decode(s.tf.Encode(v)), 1e-12)
				assert.InDelta(t, v, s.tf.Encode(s.tf.Decode(v)), 1e-12)
			}
		})
	}
}

func TestTransferMirrorsNegatives(t *testing.T) {
	// Out-of-gamut conversions produce negative linear components; the
	// transfer functions mirror around zero so they encode monotonically.
	for _, s := range transferStandards {
		t.Run(s.name, func(t *testing.T) {
			assert.Equal(t, -s.tf.Encode(0.3), s.tf.Encode(-0.3))
			assert.Equal(t, -s.tf.Decode(0.3), s.tf.Decode(-0.3))
			assert.Less(t, s.tf.Encode(-0.3), s.tf.Encode(0.3))
		})
	}
}

func TestSRGBTransferSegments(t *testing.T) {
	var s SRGB
	assert.InDelta(t, 12.92*0.002, s.Encode(0.002), 1e-12)
	assert.InDelta(t, 0.04/12.92, s.Decode(0.04), 1e-12)
	// The two segments meet at the threshold.
	lo := s.Encode(0.0031308 - 1e-9)
	hi := s.Encode(0.0031308 + 1e-9)
	assert.InDelta(t, lo, hi, 1e-6)
}

func TestProPhotoTransferSegments(t *testing.T) {
	var s ProPhotoRGB
	assert.InDelta(t, 16*0.001, s.Encode(0.001), 1e-12)
	assert.InDelta(t, 0.01/16, s.Decode(0.01), 1e-12)
	lo := s.Encode(1.0/512 - 1e-12)
	hi := s.Encode(1.0/512 + 1e-12)
	assert.InDelta(t, lo, hi, 1e-9)
}

func TestLinearSRGBMatchesDecodedSRGB(t *testing.T) {
	c := NewRGB[SRGB](0.8, 0.4, 0.1)
	var s SRGB
	lin := RGBFrom[LinearSRGB](c.Tristimulus())
	assert.InDelta(t, s.Decode(0.8), float64(lin.R), 1e-9)
	assert.InDelta(t, s.Decode(0.4), float64(lin.G), 1e-9)
	assert.InDelta(t, s.Decode(0.1), float64(lin.B), 1e-9)
}

func TestCustomStandard(t *testing.T) {
	// Any value implementing RGBStandard plugs into the generic types.
	gray := RGBFrom[identityRGB](NewRGB[SRGB](0.5, 0.5, 0.5).Tristimulus())
	back := RGBFrom[SRGB](gray.Tristimulus())
	assert.InDelta(t, 0.5, float64(back.R), 1e-9)
	assert.InDelta(t, 0.5, float64(back.G), 1e-9)
	assert.InDelta(t, 0.5, float64(back.B), 1e-9)
}

// identityRGB is a linear wide-gamut test standard with E white.
type identityRGB struct{}

func (identityRGB) White() White { return E{}.White() }
func (identityRGB) Primaries() Primaries {
	return Primaries{
		Red:   Chromaticity{0.7347, 0.2653},
		Green: Chromaticity{0.2738, 0.7174},
		Blue:  Chromaticity{0.1666, 0.0089},
	}
}
func (identityRGB) Encode(v float64) float64 { return v }
func (identityRGB) Decode(v float64) float64 { return v }
