// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fmath provides float math generic over float32 and float64.
// The float32 instantiations route through github.com/chewxy/math32,
// which has optimized implementations; float64 falls through to the
// standard math package.
package fmath

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the scalar constraint for all functions in this package.
type Float interface {
	constraints.Float
}

// is32 reports whether T is a 32-bit float. The check compiles to a
// constant per instantiation, so the branches below are free.
func is32[T Float](v T) bool {
	return unsafe.Sizeof(v) == 4
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if is32(x) {
		return T(math32.Abs(float32(x)))
	}
	return T(math.Abs(float64(x)))
}

// Mod returns the floating-point remainder of x/y,
// with the sign of x.
func Mod[T Float](x, y T) T {
	if is32(x) {
		return T(math32.Mod(float32(x), float32(y)))
	}
	return T(math.Mod(float64(x), float64(y)))
}

// Sin returns the sine of the radian argument x.
func Sin[T Float](x T) T {
	if is32(x) {
		return T(math32.Sin(float32(x)))
	}
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[T Float](x T) T {
	if is32(x) {
		return T(math32.Cos(float32(x)))
	}
	return T(math.Cos(float64(x)))
}

// Atan2 returns the arc tangent of y/x, using the signs
// of the two to determine the quadrant of the result.
func Atan2[T Float](y, x T) T {
	if is32(y) {
		return T(math32.Atan2(float32(y), float32(x)))
	}
	return T(math.Atan2(float64(y), float64(x)))
}

// Hypot returns Sqrt(p*p + q*q), avoiding unnecessary
// overflow and underflow.
func Hypot[T Float](p, q T) T {
	if is32(p) {
		return T(math32.Hypot(float32(p), float32(q)))
	}
	return T(math.Hypot(float64(p), float64(q)))
}

// Clamp returns v constrained to [lo, hi].
func Clamp[T Float](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
