// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"math"

	"github.com/gymore-io/palette/internal/fmath"
)

// CIE L*a*b* compression constants: ε = (6/29)³ and κ = (29/3)³.
const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// Lab is the CIE 1976 L*a*b* space relative to the white point W:
// lightness L* in [0, 100], a* on the green–red axis and b* on the
// blue–yellow axis, both nominally in [-128, 127].
type Lab[W WhitePoint, T Component] struct {
	// L is the perceptual lightness, 0 at black and 100 at white.
	L T
	// A is the green (negative) to red (positive) axis.
	A T
	// B is the blue (negative) to yellow (positive) axis.
	B T
}

// NewLab returns a Lab color relative to the white point W.
func NewLab[W WhitePoint, T Component](l, a, b T) Lab[W, T] {
	return Lab[W, T]{L: l, A: a, B: b}
}

// LabFrom converts any hub value to Lab relative to W, adapting the
// white point when it differs. The result is unclamped.
func LabFrom[W WhitePoint, T Component](t Tristimulus[T]) Lab[W, T] {
	var c Lab[W, T]
	c.SetTristimulus(t)
	return c
}

// labF is the cube-root compression applied to white-relative
// tristimulus values, with the CIE linear segment near zero.
func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// labFInv inverts labF.
func labFInv(f float64) float64 {
	if f3 := f * f * f; f3 > labEpsilon {
		return f3
	}
	return (116*f - 16) / labKappa
}

// Tristimulus applies the inverse Lab compression and scales by the
// white point.
func (c Lab[W, T]) Tristimulus() Tristimulus[T] {
	var w W
	wt := w.White()
	fy := (float64(c.L) + 16) / 116
	fx := fy + float64(c.A)/500
	fz := fy - float64(c.B)/200
	return Tristimulus[T]{
		X:     T(labFInv(fx) * wt.X),
		Y:     T(labFInv(fy) * wt.Y),
		Z:     T(labFInv(fz) * wt.Z),
		White: wt,
	}
}

// SetTristimulus sets the color from a hub value, adapting to W first.
func (c *Lab[W, T]) SetTristimulus(t Tristimulus[T]) {
	var w W
	wt := w.White()
	t = Adapt(t, wt)
	fx := labF(float64(t.X) / wt.X)
	fy := labF(float64(t.Y) / wt.Y)
	fz := labF(float64(t.Z) / wt.Z)
	c.L = T(116*fy - 16)
	c.A = T(500 * (fx - fy))
	c.B = T(200 * (fy - fz))
}

// Lch returns the polar form of the color. Achromatic colors (zero
// chroma) take hue 0.
func (c Lab[W, T]) Lch() Lch[W, T] {
	chroma := fmath.Hypot(c.A, c.B)
	var hue T
	if chroma != 0 {
		hue = NormalizeHue(fmath.Atan2(c.B, c.A) * (180 / T(math.Pi)))
	}
	return Lch[W, T]{L: c.L, Chroma: chroma, Hue: hue}
}

// IsWithinBounds reports whether L is in [0, 100] and a and b are in
// [-128, 127].
func (c Lab[W, T]) IsWithinBounds() bool {
	return c.L >= 0 && c.L <= 100 &&
		c.A >= -128 && c.A <= 127 &&
		c.B >= -128 && c.B <= 127
}

// Clamped returns the nearest in-domain value, clamping each component
// to its nominal range.
func (c Lab[W, T]) Clamped() Lab[W, T] {
	return Lab[W, T]{
		L: fmath.Clamp(c.L, 0, 100),
		A: fmath.Clamp(c.A, -128, 127),
		B: fmath.Clamp(c.B, -128, 127),
	}
}

// Clamp clamps the color in place.
func (c *Lab[W, T]) Clamp() {
	*c = c.Clamped()
}

// Mix linearly interpolates toward other; factor is clamped to [0, 1].
func (c Lab[W, T]) Mix(other Lab[W, T], factor T) Lab[W, T] {
	factor = fmath.Clamp(factor, 0, 1)
	return Lab[W, T]{
		L: lerp(c.L, other.L, factor),
		A: lerp(c.A, other.A, factor),
		B: lerp(c.B, other.B, factor),
	}
}

// Lighten returns a color lighter by the given absolute L* amount,
// keeping the result in range.
func (c Lab[W, T]) Lighten(amount T) Lab[W, T] {
	c.L = fmath.Clamp(c.L+amount, 0, 100)
	return c
}

// Darken returns a color darker by the given absolute L* amount,
// keeping the result in range.
func (c Lab[W, T]) Darken(amount T) Lab[W, T] {
	return c.Lighten(-amount)
}

// Add returns the component-wise sum.
func (c Lab[W, T]) Add(other Lab[W, T]) Lab[W, T] {
	return Lab[W, T]{L: c.L + other.L, A: c.A + other.A, B: c.B + other.B}
}

// Sub returns the component-wise difference.
func (c Lab[W, T]) Sub(other Lab[W, T]) Lab[W, T] {
	return Lab[W, T]{L: c.L - other.L, A: c.A - other.A, B: c.B - other.B}
}

func (c Lab[W, T]) String() string {
	return fmt.Sprintf("lab(%g, %g, %g)", float64(c.L), float64(c.A), float64(c.B))
}
