// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

// Vec3 is a tristimulus triple used by the 3×3 color transforms.
type Vec3 [3]float64

// Matrix3 is a row-major 3×3 matrix. Color math shares these matrices
// across all component instantiations, so they are always float64.
type Matrix3 [9]float64

// Identity3 returns the identity matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mul returns the matrix product m × n.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var o Matrix3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			o[3*r+c] = m[3*r]*n[c] + m[3*r+1]*n[3+c] + m[3*r+2]*n[6+c]
		}
	}
	return o
}

// MulVec returns the product m × v.
func (m Matrix3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Inverse returns the matrix inverse. The matrix must be non-singular,
// which holds for every primaries basis and cone-response transform here.
func (m Matrix3) Inverse() Matrix3 {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	ca := e*i - f*h
	cb := f*g - d*i
	cc := d*h - e*g
	det := a*ca + b*cb + c*cc

	return Matrix3{
		ca / det, (c*h - b*i) / det, (b*f - c*e) / det,
		cb / det, (a*i - c*g) / det, (c*d - a*f) / det,
		cc / det, (b*g - a*h) / det, (a*e - b*d) / det,
	}
}
