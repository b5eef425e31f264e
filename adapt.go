// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "sync"

// Bradford cone-response matrix and its inverse. Adaptation scales the
// cone responses of a tristimulus value by the ratio of the destination
// and source white responses, in the cone basis.
var (
	bradford = Matrix3{
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	}
	bradfordInv = Matrix3{
		0.9869929, -0.1470543, 0.1599627,
		0.4323053, 0.5183603, 0.0492912,
		-0.0085287, 0.0400428, 0.9684867,
	}
)

type whitePair struct {
	from, to White
}

// adaptCache holds one matrix per ordered (from, to) white pair.
var adaptCache sync.Map

// AdaptationMatrix returns the Bradford chromatic adaptation matrix that
// takes tristimulus values relative to from into values relative to to.
// The matrix for each ordered pair of whites is computed once and cached.
func AdaptationMatrix(from, to White) Matrix3 {
	if from == to {
		return Identity3()
	}
	key := whitePair{from, to}
	if m, ok := adaptCache.Load(key); ok {
		return m.(Matrix3)
	}
	f := bradford.MulVec(Vec3{from.X, from.Y, from.Z})
	t := bradford.MulVec(Vec3{to.X, to.Y, to.Z})
	scale := Matrix3{
		t[0] / f[0], 0, 0,
		0, t[1] / f[1], 0,
		0, 0, t[2] / f[2],
	}
	m := bradfordInv.Mul(scale).Mul(bradford)
	adaptCache.Store(key, m)
	return m
}

// Adapt transforms t to the reference white to. When t is already
// relative to to, the value is returned untouched, bit for bit.
func Adapt[T Component](t Tristimulus[T], to White) Tristimulus[T] {
	if t.White == to {
		return t
	}
	v := AdaptationMatrix(t.White, to).MulVec(Vec3{float64(t.X), float64(t.Y), float64(t.Z)})
	return Tristimulus[T]{X: T(v[0]), Y: T(v[1]), Z: T(v[2]), White: to}
}
