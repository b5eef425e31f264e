// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"math"

	"github.com/gymore-io/palette/internal/fmath"
)

// MaxLchChroma is the nominal chroma bound of Lch, the diagonal of the
// Lab a/b plane.
const MaxLchChroma = 181.01933598375616

// Lch is the polar form of Lab relative to the white point W: the same
// L* lightness, with a* and b* expressed as chroma and a hue angle in
// degrees. It reaches the hub through Lab.
type Lch[W WhitePoint, T Component] struct {
	// L is the perceptual lightness, 0 at black and 100 at white.
	L T
	// Chroma is the colorfulness; 0 is gray, the usable maximum
	// depends on hue and lightness but never exceeds MaxLchChroma.
	Chroma T
	// Hue is the hue angle in degrees; achromatic colors take hue 0.
	Hue T
}

// NewLch returns an Lch color; the hue is normalized into [0, 360).
func NewLch[W WhitePoint, T Component](l, chroma, hue T) Lch[W, T] {
	return Lch[W, T]{L: l, Chroma: chroma, Hue: NormalizeHue(hue)}
}

// LchFrom converts any hub value to Lch relative to W, adapting the
// white point when it differs. The result is unclamped.
func LchFrom[W WhitePoint, T Component](t Tristimulus[T]) Lch[W, T] {
	var c Lch[W, T]
	c.SetTristimulus(t)
	return c
}

// Lab returns the cartesian form of the color.
func (c Lch[W, T]) Lab() Lab[W, T] {
	rad := c.Hue * (T(math.Pi) / 180)
	return Lab[W, T]{
		L: c.L,
		A: c.Chroma * fmath.Cos(rad),
		B: c.Chroma * fmath.Sin(rad),
	}
}

// Tristimulus converts through Lab.
func (c Lch[W, T]) Tristimulus() Tristimulus[T] {
	return c.Lab().Tristimulus()
}

// SetTristimulus sets the color from a hub value via Lab.
func (c *Lch[W, T]) SetTristimulus(t Tristimulus[T]) {
	*c = LabFrom[W](t).Lch()
}

// IsWithinBounds reports whether L is in [0, 100] and the chroma in
// [0, MaxLchChroma].
func (c Lch[W, T]) IsWithinBounds() bool {
	return c.L >= 0 && c.L <= 100 && c.Chroma >= 0 && float64(c.Chroma) <= MaxLchChroma
}

// Clamped returns the nearest in-domain value: L and chroma clamp to
// their ranges, the hue normalizes into [0, 360).
func (c Lch[W, T]) Clamped() Lch[W, T] {
	return Lch[W, T]{
		L:      fmath.Clamp(c.L, 0, 100),
		Chroma: fmath.Clamp(c.Chroma, 0, T(MaxLchChroma)),
		Hue:    NormalizeHue(c.Hue),
	}
}

// Clamp clamps the color in place.
func (c *Lch[W, T]) Clamp() {
	*c = c.Clamped()
}

// Mix interpolates toward other, taking the shorter arc between the two
// hues; factor is clamped to [0, 1].
func (c Lch[W, T]) Mix(other Lch[W, T], factor T) Lch[W, T] {
	factor = fmath.Clamp(factor, 0, 1)
	return Lch[W, T]{
		L:      lerp(c.L, other.L, factor),
		Chroma: lerp(c.Chroma, other.Chroma, factor),
		Hue:    mixHue(c.Hue, other.Hue, factor),
	}
}

// Lighten returns a color lighter by the given absolute L* amount,
// keeping the result in range.
func (c Lch[W, T]) Lighten(amount T) Lch[W, T] {
	c.L = fmath.Clamp(c.L+amount, 0, 100)
	return c
}

// Darken returns a color darker by the given absolute L* amount,
// keeping the result in range.
func (c Lch[W, T]) Darken(amount T) Lch[W, T] {
	return c.Lighten(-amount)
}

// Saturate returns a color with chroma increased by the given absolute
// amount, keeping the result in range.
func (c Lch[W, T]) Saturate(amount T) Lch[W, T] {
	c.Chroma = fmath.Clamp(c.Chroma+amount, 0, T(MaxLchChroma))
	return c
}

// Desaturate returns a color with chroma decreased by the given absolute
// amount, keeping the result in range.
func (c Lch[W, T]) Desaturate(amount T) Lch[W, T] {
	return c.Saturate(-amount)
}

// ShiftHue returns a color with the hue rotated by degrees, normalized
// into [0, 360).
func (c Lch[W, T]) ShiftHue(degrees T) Lch[W, T] {
	c.Hue = NormalizeHue(c.Hue + degrees)
	return c
}

func (c Lch[W, T]) String() string {
	return fmt.Sprintf("lch(%g, %g, %g)", float64(c.L), float64(c.Chroma), float64(c.Hue))
}
