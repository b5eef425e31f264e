// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"

	"github.com/gymore-io/palette/internal/fmath"
)

// Alpha pairs any color with an alpha (opacity) component in [0, 1].
// Mixing, clamping and validation delegate to the wrapped color and
// extend to the alpha channel. Opacity has no tristimulus meaning, so
// the outgoing hub edge drops the alpha and the incoming edge leaves it
// unchanged; AlphaFrom carries it across a conversion explicitly.
type Alpha[C Space[C, T], T Component] struct {
	// Color is the wrapped color. The components are not premultiplied
	// by the alpha.
	Color C
	// A is the alpha component: 0 is fully transparent, 1 fully opaque.
	A T
}

// WithAlpha pairs a color with an alpha component.
func WithAlpha[C Space[C, T], T Component](c C, a T) Alpha[C, T] {
	return Alpha[C, T]{Color: c, A: a}
}

// Opaque pairs a color with a fully opaque alpha.
func Opaque[C Space[C, T], T Component](c C) Alpha[C, T] {
	return Alpha[C, T]{Color: c, A: 1}
}

// AlphaFrom converts any hub value to the alpha-wrapped form of C,
// pairing it with the given alpha. The wrapped type is spelled at the
// call site and its pointer form is inferred:
//
//	laba := palette.AlphaFrom[palette.Lab[palette.D65, float64]](c.Tristimulus(), c.A)
func AlphaFrom[C Space[C, T], PC interface {
	*C
	Settable[T]
}, T Component](t Tristimulus[T], alpha T) Alpha[C, T] {
	var c C
	PC(&c).SetTristimulus(t)
	return Alpha[C, T]{Color: c, A: alpha}
}

// Tristimulus returns the wrapped color's hub value; the alpha does not
// participate in conversion.
func (a Alpha[C, T]) Tristimulus() Tristimulus[T] {
	return a.Color.Tristimulus()
}

// SetTristimulus sets the wrapped color from a hub value, leaving the
// alpha unchanged. C's pointer type must implement Settable, which holds
// for every space in this package.
func (a *Alpha[C, T]) SetTristimulus(t Tristimulus[T]) {
	any(&a.Color).(Settable[T]).SetTristimulus(t)
}

// IsWithinBounds reports whether the wrapped color is in its domain and
// the alpha is in [0, 1].
func (a Alpha[C, T]) IsWithinBounds() bool {
	return a.Color.IsWithinBounds() && a.A >= 0 && a.A <= 1
}

// Clamped returns the wrapped color clamped to its domain with the alpha
// clamped to [0, 1].
func (a Alpha[C, T]) Clamped() Alpha[C, T] {
	return Alpha[C, T]{Color: a.Color.Clamped(), A: clamp01(a.A)}
}

// Clamp clamps the color and alpha in place.
func (a *Alpha[C, T]) Clamp() {
	*a = a.Clamped()
}

// Mix interpolates both the wrapped color and the alpha; factor is
// clamped to [0, 1].
func (a Alpha[C, T]) Mix(other Alpha[C, T], factor T) Alpha[C, T] {
	factor = fmath.Clamp(factor, 0, 1)
	return Alpha[C, T]{
		Color: a.Color.Mix(other.Color, factor),
		A:     lerp(a.A, other.A, factor),
	}
}

func (a Alpha[C, T]) String() string {
	return fmt.Sprintf("%v / %g", a.Color, float64(a.A))
}

// Alpha-wrapped forms of the per-space types.
type (
	RGBA[S RGBStandard, T Component] = Alpha[RGB[S, T], T]
	HSLA[S RGBStandard, T Component] = Alpha[HSL[S, T], T]
	HSVA[S RGBStandard, T Component] = Alpha[HSV[S, T], T]
	HWBA[S RGBStandard, T Component] = Alpha[HWB[S, T], T]
	XYZA[W WhitePoint, T Component]  = Alpha[XYZ[W, T], T]
	YxyA[W WhitePoint, T Component]  = Alpha[Yxy[W, T], T]
	LabA[W WhitePoint, T Component]  = Alpha[Lab[W, T], T]
	LchA[W WhitePoint, T Component]  = Alpha[Lch[W, T], T]
)
