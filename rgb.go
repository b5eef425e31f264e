// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"

	"github.com/gymore-io/palette/internal/fmath"
)

// RGB is a color in the RGB space defined by the standard S, with
// components in the standard's encoded form (decode to linear happens
// inside the conversion to XYZ). The valid domain per component is
// [0, 1]; values outside it represent out-of-gamut colors.
type RGB[S RGBStandard, T Component] struct {
	R, G, B T
}

// NewRGB returns an RGB color in the standard S with the given encoded
// components.
func NewRGB[S RGBStandard, T Component](r, g, b T) RGB[S, T] {
	return RGB[S, T]{R: r, G: g, B: b}
}

// NewRGBFromBytes returns an RGB color from normalized 8-bit components.
func NewRGBFromBytes[S RGBStandard, T Component](r, g, b uint8) RGB[S, T] {
	return RGB[S, T]{R: FromUint8[T](r), G: FromUint8[T](g), B: FromUint8[T](b)}
}

// RGBFrom converts any hub value to the RGB space of standard S,
// adapting the reference white when it differs from the standard's. The
// result is unclamped.
func RGBFrom[S RGBStandard, T Component](t Tristimulus[T]) RGB[S, T] {
	var c RGB[S, T]
	c.SetTristimulus(t)
	return c
}

// Tristimulus decodes the transfer function and applies the standard's
// linear-RGB→XYZ matrix.
func (c RGB[S, T]) Tristimulus() Tristimulus[T] {
	var s S
	to, _ := standardMatrices(s)
	v := to.MulVec(Vec3{s.Decode(float64(c.R)), s.Decode(float64(c.G)), s.Decode(float64(c.B))})
	return Tristimulus[T]{X: T(v[0]), Y: T(v[1]), Z: T(v[2]), White: s.White()}
}

// SetTristimulus sets the color from a hub value, adapting to the
// standard's white point first.
func (c *RGB[S, T]) SetTristimulus(t Tristimulus[T]) {
	var s S
	t = Adapt(t, s.White())
	_, from := standardMatrices(s)
	v := from.MulVec(Vec3{float64(t.X), float64(t.Y), float64(t.Z)})
	c.R = T(s.Encode(v[0]))
	c.G = T(s.Encode(v[1]))
	c.B = T(s.Encode(v[2]))
}

// HSL returns the color in cylindrical hue/saturation/lightness form.
// Achromatic colors take hue 0 and saturation 0.
func (c RGB[S, T]) HSL() HSL[S, T] {
	mx := max(c.R, c.G, c.B)
	mn := min(c.R, c.G, c.B)
	l := (mx + mn) / 2
	if mx == mn {
		return HSL[S, T]{Lightness: l}
	}
	d := mx - mn
	var sat T
	if l > 0.5 {
		sat = d / (2 - mx - mn)
	} else {
		sat = d / (mx + mn)
	}
	return HSL[S, T]{Hue: rgbHue(c.R, c.G, c.B, mx, d), Saturation: sat, Lightness: l}
}

// HSV returns the color in cylindrical hue/saturation/value form.
// Achromatic colors take hue 0 and saturation 0.
func (c RGB[S, T]) HSV() HSV[S, T] {
	mx := max(c.R, c.G, c.B)
	mn := min(c.R, c.G, c.B)
	if mx == mn {
		return HSV[S, T]{Value: mx}
	}
	d := mx - mn
	return HSV[S, T]{Hue: rgbHue(c.R, c.G, c.B, mx, d), Saturation: d / mx, Value: mx}
}

// HWB returns the color in hue/whiteness/blackness form.
func (c RGB[S, T]) HWB() HWB[S, T] {
	return c.HSV().HWB()
}

// RGB8 returns the color packed as 8-bit components, clamped and rounded.
func (c RGB[S, T]) RGB8() RGB8 {
	return RGB8{R: ToUint8(c.R), G: ToUint8(c.G), B: ToUint8(c.B)}
}

// IsWithinBounds reports whether all components are in [0, 1].
func (c RGB[S, T]) IsWithinBounds() bool {
	return c.R >= 0 && c.R <= 1 && c.G >= 0 && c.G <= 1 && c.B >= 0 && c.B <= 1
}

// Clamped returns the nearest in-gamut color, clamping each component to
// [0, 1].
func (c RGB[S, T]) Clamped() RGB[S, T] {
	return RGB[S, T]{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// Clamp clamps the color in place.
func (c *RGB[S, T]) Clamp() {
	*c = c.Clamped()
}

// Mix linearly interpolates toward other; factor is clamped to [0, 1].
func (c RGB[S, T]) Mix(other RGB[S, T], factor T) RGB[S, T] {
	factor = fmath.Clamp(factor, 0, 1)
	return RGB[S, T]{
		R: lerp(c.R, other.R, factor),
		G: lerp(c.G, other.G, factor),
		B: lerp(c.B, other.B, factor),
	}
}

// Add returns the component-wise sum.
func (c RGB[S, T]) Add(other RGB[S, T]) RGB[S, T] {
	return RGB[S, T]{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B}
}

// Sub returns the component-wise difference.
func (c RGB[S, T]) Sub(other RGB[S, T]) RGB[S, T] {
	return RGB[S, T]{R: c.R - other.R, G: c.G - other.G, B: c.B - other.B}
}

// Mul returns the component-wise product.
func (c RGB[S, T]) Mul(other RGB[S, T]) RGB[S, T] {
	return RGB[S, T]{R: c.R * other.R, G: c.G * other.G, B: c.B * other.B}
}

// Scale multiplies every component by s.
func (c RGB[S, T]) Scale(s T) RGB[S, T] {
	return RGB[S, T]{R: c.R * s, G: c.G * s, B: c.B * s}
}

func (c RGB[S, T]) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", float64(c.R), float64(c.G), float64(c.B))
}

// RGB8 is an RGB color packed as normalized 8-bit components, the layout
// of byte-oriented pixel buffers. It carries no standard; pair it with
// one when converting to the floating form via NewRGBFromBytes.
type RGB8 struct {
	R, G, B uint8
}
