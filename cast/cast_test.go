// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymore-io/palette"
)

func TestSlice(t *testing.T) {
	buf := []float32{1, 0, 0, 0, 1, 0, 0, 0, 1}
	pixels, err := Slice[palette.RGB[palette.SRGB, float32]](buf)
	require.NoError(t, err)
	require.Len(t, pixels, 3)
	assert.Equal(t, palette.NewRGB[palette.SRGB, float32](1, 0, 0), pixels[0])
	assert.Equal(t, palette.NewRGB[palette.SRGB, float32](0, 1, 0), pixels[1])
	assert.Equal(t, palette.NewRGB[palette.SRGB, float32](0, 0, 1), pixels[2])
}

func TestSliceAliases(t *testing.T) {
	buf := []float64{0.1, 0.2, 0.3}
	pixels, err := Slice[palette.RGB[palette.SRGB, float64]](buf)
	require.NoError(t, err)
	pixels[0].G = 0.9
	assert.Equal(t, 0.9, buf[1])
	buf[2] = 0.7
	assert.Equal(t, 0.7, float64(pixels[0].B))
}

func TestSliceLengthMismatch(t *testing.T) {
	_, err := Slice[palette.RGB[palette.SRGB, float64]]([]float64{1, 2, 3, 4})
	assert.Error(t, err)
}

func TestSliceEmpty(t *testing.T) {
	pixels, err := Slice[palette.RGB[palette.SRGB, float64]]([]float64(nil))
	require.NoError(t, err)
	assert.Empty(t, pixels)
}

func TestComponents(t *testing.T) {
	pixels := []palette.Lab[palette.D65, float64]{
		palette.NewLab[palette.D65](50.0, 10.0, -10.0),
		palette.NewLab[palette.D65](60.0, 0.0, 5.0),
	}
	buf, err := Components[float64](pixels)
	require.NoError(t, err)
	assert.Equal(t, []float64{50, 10, -10, 60, 0, 5}, buf)

	back, err := Slice[palette.Lab[palette.D65, float64]](buf)
	require.NoError(t, err)
	assert.Equal(t, pixels, back)
}

func TestComponentTypeMismatch(t *testing.T) {
	// A float32 pair is half a float64 component wide; no view exists.
	type half struct{ A float32 }
	_, err := Slice[half]([]float64{1, 2, 3})
	assert.Error(t, err)

	_, err = Components[float64]([]half{{1}})
	assert.Error(t, err)
}

func TestRGB8Slice(t *testing.T) {
	buf := []uint8{255, 0, 0, 0, 0, 255}
	pixels, err := RGB8Slice(buf)
	require.NoError(t, err)
	require.Len(t, pixels, 2)
	assert.Equal(t, palette.RGB8{R: 255}, pixels[0])
	assert.Equal(t, palette.RGB8{B: 255}, pixels[1])

	// Swap red and blue through the view; the bytes follow.
	pixels[0], pixels[1] = pixels[1], pixels[0]
	assert.Equal(t, []uint8{0, 0, 255, 255, 0, 0}, buf)

	_, err = RGB8Slice([]uint8{1, 2})
	assert.Error(t, err)
}
