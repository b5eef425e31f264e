// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

// Tristimulus is the conversion hub: a linear CIE XYZ value tagged with
// the White it is relative to. Every color space converts to and from
// Tristimulus, and nothing else; all cross-space conversions compose
// through it, so there is exactly one conversion path per pair of types.
type Tristimulus[T Component] struct {
	X, Y, Z T

	// White is the reference white the X, Y, Z values are relative to.
	White White
}

// Color is the contract a type must satisfy to act as a conversion graph
// source. It is implemented by every space in this package, by Alpha, and
// by any user-defined type that can produce its linear XYZ form.
//
// Converting a value to its own type is the identity; the generic
// machinery never special-cases it, so spelling such a conversion
// round-trips through the hub instead of being free.
type Color[T Component] interface {
	// Tristimulus returns the color as linear CIE XYZ relative to the
	// color's native reference white, with no chromatic adaptation and
	// no clamping applied.
	Tristimulus() Tristimulus[T]
}

// Settable is the conversion graph target contract, implemented with a
// pointer receiver. SetTristimulus must chromatically adapt the incoming
// value to the type's own reference white (Adapt is a no-op when the
// whites already match) and must not clamp.
type Settable[T Component] interface {
	SetTristimulus(Tristimulus[T])
}

// Clampable is satisfied by pointers to color values with a bounded
// valid domain.
type Clampable interface {
	// Clamp replaces the value with its nearest in-domain value,
	// per-component; hue components normalize instead of clamping.
	Clamp()
}

// Space constrains a color value type to the full per-space contract:
// hub edges, linear mixing and domain validation. Alpha relies on it to
// delegate everything except the alpha channel itself.
type Space[C any, T Component] interface {
	Color[T]
	Mix(other C, factor T) C
	Clamped() C
	IsWithinBounds() bool
}

// ConvertUnclamped converts src into dst through the XYZ hub, adapting
// between reference whites when they differ. The result may be out of
// dst's valid domain; see Convert for the clamping variant.
//
// The component type cannot be inferred from the interface arguments, so
// calls spell it: ConvertUnclamped[float64](&lab, rgb).
func ConvertUnclamped[T Component](dst Settable[T], src Color[T]) {
	dst.SetTristimulus(src.Tristimulus())
}

// Convert is ConvertUnclamped followed by clamping dst to its valid
// domain.
func Convert[T Component](dst interface {
	Settable[T]
	Clampable
}, src Color[T]) {
	dst.SetTristimulus(src.Tristimulus())
	dst.Clamp()
}

// Static checks that every space wires into the conversion graph.
var (
	_ Color[float64]    = RGB[SRGB, float64]{}
	_ Color[float64]    = HSL[SRGB, float64]{}
	_ Color[float64]    = HSV[SRGB, float64]{}
	_ Color[float64]    = HWB[SRGB, float64]{}
	_ Color[float64]    = XYZ[D65, float64]{}
	_ Color[float64]    = Yxy[D65, float64]{}
	_ Color[float64]    = Lab[D50, float64]{}
	_ Color[float64]    = Lch[D50, float64]{}
	_ Color[float32]    = Alpha[RGB[SRGB, float32], float32]{}
	_ Settable[float64] = (*RGB[SRGB, float64])(nil)
	_ Settable[float64] = (*HSL[SRGB, float64])(nil)
	_ Settable[float64] = (*HSV[SRGB, float64])(nil)
	_ Settable[float64] = (*HWB[SRGB, float64])(nil)
	_ Settable[float64] = (*XYZ[D65, float64])(nil)
	_ Settable[float64] = (*Yxy[D65, float64])(nil)
	_ Settable[float64] = (*Lab[D50, float64])(nil)
	_ Settable[float64] = (*Lch[D50, float64])(nil)
	_ Settable[float32] = (*Alpha[RGB[SRGB, float32], float32])(nil)
)
