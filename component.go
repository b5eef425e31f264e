// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"golang.org/x/exp/constraints"

	"github.com/gymore-io/palette/internal/fmath"
)

// Component is the constraint on the scalar type holding one channel of a
// color. Unit-range channels (RGB, saturation and the like) span [0, 1];
// hue channels are degrees; Lab-family channels use their CIE ranges.
type Component interface {
	constraints.Float
}

// FromUint8 converts a normalized 8-bit component to its floating form,
// mapping the full integer range onto [0, 1] (0 → 0.0, 255 → 1.0).
func FromUint8[T Component](v uint8) T {
	return T(v) / 255
}

// ToUint8 converts a floating component to its normalized 8-bit form,
// clamping to [0, 1] and rounding to nearest. ToUint8(FromUint8(v)) == v
// for every v, so the two directions are scale-consistent.
func ToUint8[T Component](v T) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01[T Component](v T) T {
	return fmath.Clamp(v, 0, 1)
}

// lerp interpolates between a and b component-wise; t is expected in [0, 1].
func lerp[T Component](a, b, t T) T {
	return a + (b-a)*t
}
