// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"

	"github.com/gymore-io/palette/internal/fmath"
)

// XYZ is the CIE 1931 tristimulus space relative to the white point W,
// the typed form of the conversion hub itself. Y carries luminance in
// [0, 1]; X and Z range up to the white point's own X and Z.
type XYZ[W WhitePoint, T Component] struct {
	X, Y, Z T
}

// NewXYZ returns an XYZ color relative to the white point W.
func NewXYZ[W WhitePoint, T Component](x, y, z T) XYZ[W, T] {
	return XYZ[W, T]{X: x, Y: y, Z: z}
}

// XYZFrom converts any hub value to XYZ relative to W, adapting the
// white point when it differs.
func XYZFrom[W WhitePoint, T Component](t Tristimulus[T]) XYZ[W, T] {
	var c XYZ[W, T]
	c.SetTristimulus(t)
	return c
}

// Tristimulus returns the value itself, tagged with W.
func (c XYZ[W, T]) Tristimulus() Tristimulus[T] {
	var w W
	return Tristimulus[T]{X: c.X, Y: c.Y, Z: c.Z, White: w.White()}
}

// SetTristimulus sets the value, adapting to W first.
func (c *XYZ[W, T]) SetTristimulus(t Tristimulus[T]) {
	var w W
	t = Adapt(t, w.White())
	c.X, c.Y, c.Z = t.X, t.Y, t.Z
}

// Yxy returns the chromaticity-plus-luminance form of the color.
func (c XYZ[W, T]) Yxy() Yxy[W, T] {
	sum := c.X + c.Y + c.Z
	if sum == 0 {
		// No light: keep the achromatic axis stable by reporting the
		// white point's own chromaticity.
		var w W
		ch := w.White().Chromaticity()
		return Yxy[W, T]{X: T(ch.X), Y: T(ch.Y)}
	}
	return Yxy[W, T]{X: c.X / sum, Y: c.Y / sum, Luma: c.Y}
}

// IsWithinBounds reports whether each component is within [0, white],
// where white is the reference white's tristimulus value.
func (c XYZ[W, T]) IsWithinBounds() bool {
	var w W
	wt := w.White()
	return c.X >= 0 && float64(c.X) <= wt.X &&
		c.Y >= 0 && float64(c.Y) <= wt.Y &&
		c.Z >= 0 && float64(c.Z) <= wt.Z
}

// Clamped returns the nearest in-domain value, clamping each component
// to [0, white].
func (c XYZ[W, T]) Clamped() XYZ[W, T] {
	var w W
	wt := w.White()
	return XYZ[W, T]{
		X: fmath.Clamp(c.X, 0, T(wt.X)),
		Y: fmath.Clamp(c.Y, 0, T(wt.Y)),
		Z: fmath.Clamp(c.Z, 0, T(wt.Z)),
	}
}

// Clamp clamps the color in place.
func (c *XYZ[W, T]) Clamp() {
	*c = c.Clamped()
}

// Mix linearly interpolates toward other; factor is clamped to [0, 1].
func (c XYZ[W, T]) Mix(other XYZ[W, T], factor T) XYZ[W, T] {
	factor = fmath.Clamp(factor, 0, 1)
	return XYZ[W, T]{
		X: lerp(c.X, other.X, factor),
		Y: lerp(c.Y, other.Y, factor),
		Z: lerp(c.Z, other.Z, factor),
	}
}

// Add returns the component-wise sum.
func (c XYZ[W, T]) Add(other XYZ[W, T]) XYZ[W, T] {
	return XYZ[W, T]{X: c.X + other.X, Y: c.Y + other.Y, Z: c.Z + other.Z}
}

// Scale multiplies every component by s.
func (c XYZ[W, T]) Scale(s T) XYZ[W, T] {
	return XYZ[W, T]{X: c.X * s, Y: c.Y * s, Z: c.Z * s}
}

func (c XYZ[W, T]) String() string {
	return fmt.Sprintf("xyz(%g, %g, %g)", float64(c.X), float64(c.Y), float64(c.Z))
}
