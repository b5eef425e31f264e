// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"

	"github.com/gymore-io/palette/internal/fmath"
)

// HSV is a cylindrical form of the RGB space of standard S: hue in
// degrees, saturation and value in [0, 1]. Like HSL it reaches the hub
// through its associated RGB type.
type HSV[S RGBStandard, T Component] struct {
	// Hue is the hue angle in degrees; achromatic colors take hue 0.
	Hue T
	// Saturation is 0 for grays and 1 at the fully saturated edge.
	Saturation T
	// Value is 0 at black and 1 at the brightest form of the color.
	Value T
}

// NewHSV returns an HSV color; the hue is normalized into [0, 360).
func NewHSV[S RGBStandard, T Component](hue, saturation, value T) HSV[S, T] {
	return HSV[S, T]{Hue: NormalizeHue(hue), Saturation: saturation, Value: value}
}

// HSVFrom converts any hub value to HSV in the standard S, unclamped.
func HSVFrom[S RGBStandard, T Component](t Tristimulus[T]) HSV[S, T] {
	var c HSV[S, T]
	c.SetTristimulus(t)
	return c
}

// RGB returns the encoded RGB form of the color.
func (c HSV[S, T]) RGB() RGB[S, T] {
	ch := c.Value * c.Saturation
	r, g, b := hueChromaRGB(c.Hue, ch, c.Value-ch)
	return RGB[S, T]{R: r, G: g, B: b}
}

// HWB returns the hue/whiteness/blackness form of the color.
func (c HSV[S, T]) HWB() HWB[S, T] {
	return HWB[S, T]{
		Hue:       c.Hue,
		Whiteness: (1 - c.Saturation) * c.Value,
		Blackness: 1 - c.Value,
	}
}

// Tristimulus converts through the associated RGB type.
func (c HSV[S, T]) Tristimulus() Tristimulus[T] {
	return c.RGB().Tristimulus()
}

// SetTristimulus sets the color from a hub value via the associated RGB
// type.
func (c *HSV[S, T]) SetTristimulus(t Tristimulus[T]) {
	*c = RGBFrom[S](t).HSV()
}

// IsWithinBounds reports whether saturation and value are in [0, 1].
func (c HSV[S, T]) IsWithinBounds() bool {
	return c.Saturation >= 0 && c.Saturation <= 1 && c.Value >= 0 && c.Value <= 1
}

// Clamped returns the nearest valid color: saturation and value clamp to
// [0, 1], the hue normalizes into [0, 360).
func (c HSV[S, T]) Clamped() HSV[S, T] {
	return HSV[S, T]{
		Hue:        NormalizeHue(c.Hue),
		Saturation: clamp01(c.Saturation),
		Value:      clamp01(c.Value),
	}
}

// Clamp clamps the color in place.
func (c *HSV[S, T]) Clamp() {
	*c = c.Clamped()
}

// Mix interpolates toward other, taking the shorter arc between the two
// hues; factor is clamped to [0, 1].
func (c HSV[S, T]) Mix(other HSV[S, T], factor T) HSV[S, T] {
	factor = fmath.Clamp(factor, 0, 1)
	return HSV[S, T]{
		Hue:        mixHue(c.Hue, other.Hue, factor),
		Saturation: lerp(c.Saturation, other.Saturation, factor),
		Value:      lerp(c.Value, other.Value, factor),
	}
}

// Saturate returns a color more saturated by the given absolute amount,
// keeping the result in range.
func (c HSV[S, T]) Saturate(amount T) HSV[S, T] {
	c.Saturation = clamp01(c.Saturation + amount)
	return c
}

// Desaturate returns a color less saturated by the given absolute amount,
// keeping the result in range.
func (c HSV[S, T]) Desaturate(amount T) HSV[S, T] {
	return c.Saturate(-amount)
}

// ShiftHue returns a color with the hue rotated by degrees, normalized
// into [0, 360).
func (c HSV[S, T]) ShiftHue(degrees T) HSV[S, T] {
	c.Hue = NormalizeHue(c.Hue + degrees)
	return c
}

func (c HSV[S, T]) String() string {
	return fmt.Sprintf("hsv(%g, %g, %g)", float64(c.Hue), float64(c.Saturation), float64(c.Value))
}
