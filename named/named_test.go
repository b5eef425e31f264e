// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package named

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymore-io/palette"
)

func TestLookup(t *testing.T) {
	c, ok := Lookup[float64]("rebeccapurple")
	require.True(t, ok)
	want := palette.NewRGBFromBytes[palette.SRGB, float64](102, 51, 153)
	assert.Equal(t, want, c)

	// Case-insensitive.
	c2, ok := Lookup[float64]("RebeccaPurple")
	require.True(t, ok)
	assert.Equal(t, c, c2)

	_, ok = Lookup[float64]("notacolor")
	assert.False(t, ok)
}

func TestLookupBytes(t *testing.T) {
	c, ok := Lookup[float64]("red")
	require.True(t, ok)
	r, g, b := c.RGB8().R, c.RGB8().G, c.RGB8().B
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, uint8(0), g)
	assert.Equal(t, uint8(0), b)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "aliceblue")
	assert.True(t, len(names) > 100)

	// The returned slice is a copy.
	names[0] = "mutated"
	assert.Equal(t, "aliceblue", Names()[0])
}
