// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"

	"github.com/gymore-io/palette/internal/fmath"
)

// HSL is a cylindrical form of the RGB space of standard S: hue in
// degrees, saturation and lightness in [0, 1]. It converts to and from
// the hub exclusively through its associated RGB type.
type HSL[S RGBStandard, T Component] struct {
	// Hue is the hue angle in degrees; 0 is red, 120 green, 240 blue.
	// Achromatic colors take hue 0 by convention.
	Hue T
	// Saturation is 0 for grays and 1 for fully saturated colors.
	Saturation T
	// Lightness is 0 at black and 1 at white.
	Lightness T
}

// NewHSL returns an HSL color; the hue is normalized into [0, 360).
func NewHSL[S RGBStandard, T Component](hue, saturation, lightness T) HSL[S, T] {
	return HSL[S, T]{Hue: NormalizeHue(hue), Saturation: saturation, Lightness: lightness}
}

// HSLFrom converts any hub value to HSL in the standard S, unclamped.
func HSLFrom[S RGBStandard, T Component](t Tristimulus[T]) HSL[S, T] {
	var c HSL[S, T]
	c.SetTristimulus(t)
	return c
}

// RGB returns the encoded RGB form of the color.
func (c HSL[S, T]) RGB() RGB[S, T] {
	ch := (1 - fmath.Abs(2*c.Lightness-1)) * c.Saturation
	r, g, b := hueChromaRGB(c.Hue, ch, c.Lightness-ch/2)
	return RGB[S, T]{R: r, G: g, B: b}
}

// Tristimulus converts through the associated RGB type.
func (c HSL[S, T]) Tristimulus() Tristimulus[T] {
	return c.RGB().Tristimulus()
}

// SetTristimulus sets the color from a hub value via the associated RGB
// type.
func (c *HSL[S, T]) SetTristimulus(t Tristimulus[T]) {
	*c = RGBFrom[S](t).HSL()
}

// IsWithinBounds reports whether saturation and lightness are in [0, 1].
// The hue is an angle and is always valid.
func (c HSL[S, T]) IsWithinBounds() bool {
	return c.Saturation >= 0 && c.Saturation <= 1 && c.Lightness >= 0 && c.Lightness <= 1
}

// Clamped returns the nearest valid color: saturation and lightness
// clamp to [0, 1], the hue normalizes into [0, 360).
func (c HSL[S, T]) Clamped() HSL[S, T] {
	return HSL[S, T]{
		Hue:        NormalizeHue(c.Hue),
		Saturation: clamp01(c.Saturation),
		Lightness:  clamp01(c.Lightness),
	}
}

// Clamp clamps the color in place.
func (c *HSL[S, T]) Clamp() {
	*c = c.Clamped()
}

// Mix interpolates toward other, taking the shorter arc between the two
// hues; factor is clamped to [0, 1].
func (c HSL[S, T]) Mix(other HSL[S, T], factor T) HSL[S, T] {
	factor = fmath.Clamp(factor, 0, 1)
	return HSL[S, T]{
		Hue:        mixHue(c.Hue, other.Hue, factor),
		Saturation: lerp(c.Saturation, other.Saturation, factor),
		Lightness:  lerp(c.Lightness, other.Lightness, factor),
	}
}

// Lighten returns a color lighter by the given absolute lightness amount,
// keeping the result in range.
func (c HSL[S, T]) Lighten(amount T) HSL[S, T] {
	c.Lightness = clamp01(c.Lightness + amount)
	return c
}

// Darken returns a color darker by the given absolute lightness amount,
// keeping the result in range.
func (c HSL[S, T]) Darken(amount T) HSL[S, T] {
	return c.Lighten(-amount)
}

// Saturate returns a color more saturated by the given absolute amount,
// keeping the result in range.
func (c HSL[S, T]) Saturate(amount T) HSL[S, T] {
	c.Saturation = clamp01(c.Saturation + amount)
	return c
}

// Desaturate returns a color less saturated by the given absolute amount,
// keeping the result in range.
func (c HSL[S, T]) Desaturate(amount T) HSL[S, T] {
	return c.Saturate(-amount)
}

// ShiftHue returns a color with the hue rotated by degrees, normalized
// into [0, 360).
func (c HSL[S, T]) ShiftHue(degrees T) HSL[S, T] {
	c.Hue = NormalizeHue(c.Hue + degrees)
	return c
}

func (c HSL[S, T]) String() string {
	return fmt.Sprintf("hsl(%g, %g, %g)", float64(c.Hue), float64(c.Saturation), float64(c.Lightness))
}
