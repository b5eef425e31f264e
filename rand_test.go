// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformColorsAreInBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		assert.True(t, UniformRGB[SRGB, float64](rng).IsWithinBounds())
		assert.True(t, UniformHSL[SRGB, float64](rng).IsWithinBounds())
		assert.True(t, UniformHSV[SRGB, float64](rng).IsWithinBounds())
		assert.True(t, UniformHWB[SRGB, float64](rng).IsWithinBounds())
		assert.True(t, UniformXYZ[D65, float64](rng).IsWithinBounds())
		assert.True(t, UniformYxy[D65, float64](rng).IsWithinBounds())
		assert.True(t, UniformLab[D65, float64](rng).IsWithinBounds())
		assert.True(t, UniformLch[D65, float64](rng).IsWithinBounds())
	}
}

func TestUniformColorsAreReproducible(t *testing.T) {
	a := UniformRGB[SRGB, float64](rand.New(rand.NewPCG(7, 7)))
	b := UniformRGB[SRGB, float64](rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, a, b)
}

func TestUniformHueRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 200 {
		h := UniformHSL[SRGB, float64](rng).Hue
		assert.GreaterOrEqual(t, float64(h), 0.0)
		assert.Less(t, float64(h), 360.0)
	}
}
