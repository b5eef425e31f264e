// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"

	"github.com/gymore-io/palette/internal/fmath"
)

// Yxy (also written xyY) splits a color into its CIE xy chromaticity and
// luminance, relative to the white point W.
type Yxy[W WhitePoint, T Component] struct {
	// X is the x chromaticity coordinate, in [0, 1].
	X T
	// Y is the y chromaticity coordinate, in [0, 1].
	Y T
	// Luma is the luminance, the Y of XYZ, in [0, 1].
	Luma T
}

// NewYxy returns a Yxy color relative to the white point W.
func NewYxy[W WhitePoint, T Component](x, y, luma T) Yxy[W, T] {
	return Yxy[W, T]{X: x, Y: y, Luma: luma}
}

// YxyFrom converts any hub value to Yxy relative to W, adapting the
// white point when it differs. A zero tristimulus takes the white
// point's own chromaticity rather than dividing by zero.
func YxyFrom[W WhitePoint, T Component](t Tristimulus[T]) Yxy[W, T] {
	var c Yxy[W, T]
	c.SetTristimulus(t)
	return c
}

// XYZ returns the tristimulus form of the color. A zero y chromaticity
// carries no light and maps to XYZ zero.
func (c Yxy[W, T]) XYZ() XYZ[W, T] {
	if c.Y == 0 {
		return XYZ[W, T]{}
	}
	scale := c.Luma / c.Y
	return XYZ[W, T]{
		X: c.X * scale,
		Y: c.Luma,
		Z: (1 - c.X - c.Y) * scale,
	}
}

// Tristimulus converts through the typed XYZ form.
func (c Yxy[W, T]) Tristimulus() Tristimulus[T] {
	return c.XYZ().Tristimulus()
}

// SetTristimulus sets the color from a hub value, adapting to W first.
func (c *Yxy[W, T]) SetTristimulus(t Tristimulus[T]) {
	*c = XYZFrom[W](t).Yxy()
}

// IsWithinBounds reports whether the chromaticity coordinates and the
// luminance are all in [0, 1].
func (c Yxy[W, T]) IsWithinBounds() bool {
	return c.X >= 0 && c.X <= 1 && c.Y >= 0 && c.Y <= 1 && c.Luma >= 0 && c.Luma <= 1
}

// Clamped returns the nearest in-domain value, clamping each component
// to [0, 1].
func (c Yxy[W, T]) Clamped() Yxy[W, T] {
	return Yxy[W, T]{X: clamp01(c.X), Y: clamp01(c.Y), Luma: clamp01(c.Luma)}
}

// Clamp clamps the color in place.
func (c *Yxy[W, T]) Clamp() {
	*c = c.Clamped()
}

// Mix linearly interpolates toward other; factor is clamped to [0, 1].
func (c Yxy[W, T]) Mix(other Yxy[W, T], factor T) Yxy[W, T] {
	factor = fmath.Clamp(factor, 0, 1)
	return Yxy[W, T]{
		X:    lerp(c.X, other.X, factor),
		Y:    lerp(c.Y, other.Y, factor),
		Luma: lerp(c.Luma, other.Luma, factor),
	}
}

func (c Yxy[W, T]) String() string {
	return fmt.Sprintf("yxy(%g, %g, %g)", float64(c.Luma), float64(c.X), float64(c.Y))
}
