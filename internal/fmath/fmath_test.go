// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, 1.5, Abs(-1.5))
	assert.Equal(t, float32(1.5), Abs(float32(-1.5)))
	assert.Equal(t, 0.0, Abs(0.0))
}

func TestMod(t *testing.T) {
	assert.Equal(t, 30.0, Mod(390.0, 360.0))
	assert.Equal(t, -30.0, Mod(-390.0, 360.0)) // keeps the sign of x
	assert.Equal(t, float32(30), Mod(float32(390), float32(360)))
}

func TestTrig(t *testing.T) {
	assert.InDelta(t, 1, Sin(math.Pi/2), 1e-12)
	assert.InDelta(t, -1, Cos(math.Pi), 1e-12)
	assert.InDelta(t, math.Pi/4, Atan2(1.0, 1.0), 1e-12)
	assert.InDelta(t, 5, Hypot(3.0, 4.0), 1e-12)
	assert.InDelta(t, 5, float64(Hypot(float32(3), float32(4))), 1e-6)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.5, Clamp(0.5, 0.0, 1.0))
	assert.Equal(t, 0.0, Clamp(-2.0, 0.0, 1.0))
	assert.Equal(t, 1.0, Clamp(3.0, 0.0, 1.0))
}
