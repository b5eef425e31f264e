// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

// White is the tristimulus value of a reference white, normalized so that
// Y = 1. Two whites compare equal iff they are the same reference white.
type White struct {
	X, Y, Z float64
}

// Chromaticity returns the CIE xy chromaticity coordinates of the white.
func (w White) Chromaticity() Chromaticity {
	sum := w.X + w.Y + w.Z
	return Chromaticity{X: w.X / sum, Y: w.Y / sum}
}

// WhitePoint is implemented by the zero-size marker types (D65, D50, E and
// the rest) that carry a reference white in a color's type. Custom white
// points are ordinary structs implementing this interface.
//
// All standard illuminant values below are for the CIE 1931 2° observer.
type WhitePoint interface {
	White() White
}

// A is CIE standard illuminant A: incandescent/tungsten light, ~2856K.
type A struct{}

func (A) White() White { return White{1.09850, 1, 0.35585} }

// B is CIE standard illuminant B: direct sunlight at noon, ~4874K.
type B struct{}

func (B) White() White { return White{0.99072, 1, 0.85223} }

// C is CIE standard illuminant C: average north sky daylight, ~6774K.
type C struct{}

func (C) White() White { return White{0.98074, 1, 1.18232} }

// D50 is CIE standard illuminant D50: horizon light, ~5003K. The standard
// white of ICC profile connection spaces and of ProPhoto RGB.
type D50 struct{}

func (D50) White() White { return White{0.96422, 1, 0.82521} }

// D55 is CIE standard illuminant D55: mid-morning daylight, ~5503K.
type D55 struct{}

func (D55) White() White { return White{0.95682, 1, 0.92149} }

// D65 is CIE standard illuminant D65: noon daylight, ~6504K. The standard
// white of sRGB and Adobe RGB.
type D65 struct{}

func (D65) White() White { return White{0.95047, 1, 1.08883} }

// D75 is CIE standard illuminant D75: north sky daylight, ~7504K.
type D75 struct{}

func (D75) White() White { return White{0.94972, 1, 1.22638} }

// E is the CIE equal-energy illuminant.
type E struct{}

func (E) White() White { return White{1, 1, 1} }

// F2 is CIE fluorescent illuminant F2: cool white fluorescent, ~4230K.
type F2 struct{}

func (F2) White() White { return White{0.99186, 1, 0.67393} }

// F7 is CIE fluorescent illuminant F7: a D65 simulator, ~6500K.
type F7 struct{}

func (F7) White() White { return White{0.95041, 1, 1.08747} }

// F11 is CIE fluorescent illuminant F11: narrow-band tri-phosphor, ~4000K.
type F11 struct{}

func (F11) White() White { return White{1.00962, 1, 0.64350} }
