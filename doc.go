// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides typed color spaces and the conversions between
// them: RGB (in any standard), HSL, HSV, HWB, CIE XYZ, xyY, L*a*b* and
// L*C*h°, with or without an alpha component.
//
// The reference white point and RGB standard of a color are part of its
// type, not runtime state: an sRGB value is RGB[SRGB, float64], a D50 Lab
// value is Lab[D50, float64], and the two cannot be confused. Every space
// declares exactly one pair of edges to a shared hub, the linear CIE XYZ
// value returned by Tristimulus; all cross-space conversions compose
// through that hub, chromatically adapting (Bradford) exactly once when
// the source and target reference whites differ:
//
//	c := palette.NewRGB[palette.SRGB](1, 0.8, 0.3)
//	lch := palette.LchFrom[palette.D65](c.Tristimulus())
//	back := palette.RGBFrom[palette.SRGB](lch.Tristimulus())
//
// Conversions are unclamped: an out-of-gamut result legally carries
// components outside the target's valid domain. Validation is a separate,
// explicit step via IsWithinBounds, Clamped and Clamp. Hue components are
// never clamped; they normalize into [0, 360).
package palette
