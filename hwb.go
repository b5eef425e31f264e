// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"

	"github.com/gymore-io/palette/internal/fmath"
)

// HWB describes a color as a hue mixed with amounts of white and black,
// in the RGB space of standard S. It reaches the hub through HSV. Valid
// values additionally require Whiteness + Blackness <= 1; conversions out
// of values that break it rescale the two proportionally, the way CSS
// resolves overspecified hwb() colors.
type HWB[S RGBStandard, T Component] struct {
	// Hue is the hue angle in degrees; achromatic colors take hue 0.
	Hue T
	// Whiteness is the amount of white mixed in, in [0, 1].
	Whiteness T
	// Blackness is the amount of black mixed in, in [0, 1].
	Blackness T
}

// NewHWB returns an HWB color; the hue is normalized into [0, 360).
func NewHWB[S RGBStandard, T Component](hue, whiteness, blackness T) HWB[S, T] {
	return HWB[S, T]{Hue: NormalizeHue(hue), Whiteness: whiteness, Blackness: blackness}
}

// HWBFrom converts any hub value to HWB in the standard S, unclamped.
func HWBFrom[S RGBStandard, T Component](t Tristimulus[T]) HWB[S, T] {
	var c HWB[S, T]
	c.SetTristimulus(t)
	return c
}

// HSV returns the hue/saturation/value form of the color.
func (c HWB[S, T]) HSV() HSV[S, T] {
	w, b := c.Whiteness, c.Blackness
	if sum := w + b; sum > 1 {
		w, b = w/sum, b/sum
	}
	v := 1 - b
	var sat T
	if v > 0 {
		sat = 1 - w/v
	}
	return HSV[S, T]{Hue: c.Hue, Saturation: sat, Value: v}
}

// RGB returns the encoded RGB form of the color.
func (c HWB[S, T]) RGB() RGB[S, T] {
	return c.HSV().RGB()
}

// Tristimulus converts through HSV and the associated RGB type.
func (c HWB[S, T]) Tristimulus() Tristimulus[T] {
	return c.HSV().Tristimulus()
}

// SetTristimulus sets the color from a hub value via the associated RGB
// type.
func (c *HWB[S, T]) SetTristimulus(t Tristimulus[T]) {
	*c = RGBFrom[S](t).HWB()
}

// IsWithinBounds reports whether whiteness and blackness are in [0, 1]
// and sum to at most 1.
func (c HWB[S, T]) IsWithinBounds() bool {
	return c.Whiteness >= 0 && c.Blackness >= 0 && c.Whiteness+c.Blackness <= 1
}

// Clamped returns the nearest valid color: whiteness and blackness clamp
// to [0, 1] and rescale proportionally when their sum exceeds 1; the hue
// normalizes into [0, 360).
func (c HWB[S, T]) Clamped() HWB[S, T] {
	w, b := clamp01(c.Whiteness), clamp01(c.Blackness)
	if sum := w + b; sum > 1 {
		w, b = w/sum, b/sum
	}
	return HWB[S, T]{Hue: NormalizeHue(c.Hue), Whiteness: w, Blackness: b}
}

// Clamp clamps the color in place.
func (c *HWB[S, T]) Clamp() {
	*c = c.Clamped()
}

// Mix interpolates toward other, taking the shorter arc between the two
// hues; factor is clamped to [0, 1].
func (c HWB[S, T]) Mix(other HWB[S, T], factor T) HWB[S, T] {
	factor = fmath.Clamp(factor, 0, 1)
	return HWB[S, T]{
		Hue:       mixHue(c.Hue, other.Hue, factor),
		Whiteness: lerp(c.Whiteness, other.Whiteness, factor),
		Blackness: lerp(c.Blackness, other.Blackness, factor),
	}
}

// ShiftHue returns a color with the hue rotated by degrees, normalized
// into [0, 360).
func (c HWB[S, T]) ShiftHue(degrees T) HWB[S, T] {
	c.Hue = NormalizeHue(c.Hue + degrees)
	return c
}

func (c HWB[S, T]) String() string {
	return fmt.Sprintf("hwb(%g, %g, %g)", float64(c.Hue), float64(c.Whiteness), float64(c.Blackness))
}
