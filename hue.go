// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "github.com/gymore-io/palette/internal/fmath"

// NormalizeHue maps a hue angle in degrees into [0, 360). Hue components
// wrap rather than clamp, so this is what Clamp applies to them.
func NormalizeHue[T Component](h T) T {
	h = fmath.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// HueDistance returns the minimum signed angular distance between two
// hues. A positive result means adding to a moves toward b along the
// shorter arc; a negative result means subtracting. When the two arcs
// tie at exactly half a turn, the plain difference b-a wins, so the
// result's magnitude never exceeds 180 and opposite hues mix through
// the midpoint on the b-a side.
func HueDistance[T Component](a, b T) T {
	d1 := b - a
	d2 := (b + 360) - a
	d3 := b - (a + 360)
	d1a := fmath.Abs(d1)
	d2a := fmath.Abs(d2)
	d3a := fmath.Abs(d3)
	if d1a <= d2a && d1a <= d3a {
		return d1
	}
	if d2a <= d3a {
		return d2
	}
	return d3
}

// mixHue interpolates between two hues along the shorter arc.
func mixHue[T Component](a, b, f T) T {
	return NormalizeHue(a + HueDistance(NormalizeHue(a), NormalizeHue(b))*f)
}

// rgbHue computes the hue sector for RGB-family conversions. mx is the
// largest of r, g, b and d the max–min spread; d must be nonzero
// (achromatic colors take hue 0 by convention, never NaN).
func rgbHue[T Component](r, g, b, mx, d T) T {
	var h T
	switch mx {
	case r:
		h = (g - b) / d
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return NormalizeHue(h * 60)
}

// hueChromaRGB is the shared tail of the HSL→RGB and HSV→RGB conversions:
// hue in degrees, c the chroma and m the per-channel offset.
func hueChromaRGB[T Component](hue, c, m T) (r, g, b T) {
	hp := NormalizeHue(hue) / 60
	x := c * (1 - fmath.Abs(fmath.Mod(hp, 2)-1))
	var r1, g1, b1 T
	switch {
	case hp < 1:
		r1, g1 = c, x
	case hp < 2:
		r1, g1 = x, c
	case hp < 3:
		g1, b1 = c, x
	case hp < 4:
		g1, b1 = x, c
	case hp < 5:
		r1, b1 = x, c
	default:
		r1, b1 = c, x
	}
	return r1 + m, g1 + m, b1 + m
}
