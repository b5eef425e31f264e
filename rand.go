// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "math/rand/v2"

// Uniform random in-domain colors, one constructor per bounded space.
// Every result satisfies IsWithinBounds; hues are uniform over [0, 360).

// UniformRGB returns an RGB color with each component uniform in [0, 1].
func UniformRGB[S RGBStandard, T Component](rng *rand.Rand) RGB[S, T] {
	return RGB[S, T]{R: T(rng.Float64()), G: T(rng.Float64()), B: T(rng.Float64())}
}

// UniformHSL returns an HSL color with a uniform hue and saturation and
// lightness uniform in [0, 1].
func UniformHSL[S RGBStandard, T Component](rng *rand.Rand) HSL[S, T] {
	return HSL[S, T]{
		Hue:        T(rng.Float64() * 360),
		Saturation: T(rng.Float64()),
		Lightness:  T(rng.Float64()),
	}
}

// UniformHSV returns an HSV color with a uniform hue and saturation and
// value uniform in [0, 1].
func UniformHSV[S RGBStandard, T Component](rng *rand.Rand) HSV[S, T] {
	return HSV[S, T]{
		Hue:        T(rng.Float64() * 360),
		Saturation: T(rng.Float64()),
		Value:      T(rng.Float64()),
	}
}

// UniformHWB returns an HWB color with a uniform hue and whiteness and
// blackness uniform over the valid triangle w + b <= 1.
func UniformHWB[S RGBStandard, T Component](rng *rand.Rand) HWB[S, T] {
	w, b := rng.Float64(), rng.Float64()
	if w+b > 1 {
		w, b = 1-w, 1-b
	}
	return HWB[S, T]{Hue: T(rng.Float64() * 360), Whiteness: T(w), Blackness: T(b)}
}

// UniformXYZ returns an XYZ color with each component uniform over
// [0, white], its valid range.
func UniformXYZ[W WhitePoint, T Component](rng *rand.Rand) XYZ[W, T] {
	var w W
	wt := w.White()
	return XYZ[W, T]{
		X: T(rng.Float64() * wt.X),
		Y: T(rng.Float64() * wt.Y),
		Z: T(rng.Float64() * wt.Z),
	}
}

// UniformYxy returns a Yxy color with chromaticity and luminance uniform
// in [0, 1].
func UniformYxy[W WhitePoint, T Component](rng *rand.Rand) Yxy[W, T] {
	return Yxy[W, T]{X: T(rng.Float64()), Y: T(rng.Float64()), Luma: T(rng.Float64())}
}

// UniformLab returns a Lab color uniform over the space's nominal box.
func UniformLab[W WhitePoint, T Component](rng *rand.Rand) Lab[W, T] {
	return Lab[W, T]{
		L: T(rng.Float64() * 100),
		A: T(rng.Float64()*255 - 128),
		B: T(rng.Float64()*255 - 128),
	}
}

// UniformLch returns an Lch color uniform over the space's nominal box.
func UniformLch[W WhitePoint, T Component](rng *rand.Rand) Lch[W, T] {
	return Lch[W, T]{
		L:      T(rng.Float64() * 100),
		Chroma: T(rng.Float64() * MaxLchChroma),
		Hue:    T(rng.Float64() * 360),
	}
}
