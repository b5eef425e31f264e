// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"math"
	"sync"
)

// Chromaticity is a CIE xy chromaticity coordinate pair.
type Chromaticity struct {
	X, Y float64
}

// Primaries are the chromaticities of the red, green and blue primaries
// of an RGB space. Together with the white point they determine the 3×3
// matrix between linear RGB and XYZ.
type Primaries struct {
	Red, Green, Blue Chromaticity
}

// TransferFunc is the nonlinear encode/decode pair of an RGB standard.
// Both directions mirror around zero, so unclamped negative components
// survive encoding monotonically.
type TransferFunc interface {
	// Encode maps a linear component to its encoded (gamma) form.
	Encode(v float64) float64
	// Decode maps an encoded component back to its linear form.
	Decode(v float64) float64
}

// RGBStandard describes a concrete RGB color space: a set of primaries,
// a reference white and a transfer function. It is implemented by
// zero-size marker types (SRGB, AdobeRGB, ...) carried as the first type
// parameter of RGB, HSL, HSV and HWB. Custom standards are ordinary
// structs implementing this interface.
type RGBStandard interface {
	WhitePoint
	TransferFunc
	// Primaries returns the chromaticities of the three primaries.
	Primaries() Primaries
}

type stdMatrices struct {
	toXYZ, fromXYZ Matrix3
}

// matrixCache holds the derived matrices per standard; standards are
// zero-size comparable values, so the interface value itself is the key.
var matrixCache sync.Map

// standardMatrices returns the linear-RGB→XYZ matrix and its inverse for
// the standard, derived from the primaries and white point once per
// standard and cached.
func standardMatrices(s RGBStandard) (toXYZ, fromXYZ Matrix3) {
	if v, ok := matrixCache.Load(s); ok {
		m := v.(stdMatrices)
		return m.toXYZ, m.fromXYZ
	}
	m := stdMatrices{toXYZ: primariesMatrix(s.Primaries(), s.White())}
	m.fromXYZ = m.toXYZ.Inverse()
	matrixCache.Store(s, m)
	return m.toXYZ, m.fromXYZ
}

// primariesMatrix derives the linear-RGB→XYZ matrix whose columns are the
// primaries' XYZ forms, scaled so that RGB(1,1,1) maps exactly to the
// white point.
func primariesMatrix(p Primaries, w White) Matrix3 {
	basis := Matrix3{
		p.Red.X / p.Red.Y, p.Green.X / p.Green.Y, p.Blue.X / p.Blue.Y,
		1, 1, 1,
		(1 - p.Red.X - p.Red.Y) / p.Red.Y, (1 - p.Green.X - p.Green.Y) / p.Green.Y, (1 - p.Blue.X - p.Blue.Y) / p.Blue.Y,
	}
	s := basis.Inverse().MulVec(Vec3{w.X, w.Y, w.Z})
	return Matrix3{
		basis[0] * s[0], basis[1] * s[1], basis[2] * s[2],
		basis[3] * s[0], basis[4] * s[1], basis[5] * s[2],
		basis[6] * s[0], basis[7] * s[1], basis[8] * s[2],
	}
}

// signPow is pow mirrored around zero.
func signPow(v, p float64) float64 {
	if v < 0 {
		return -math.Pow(-v, p)
	}
	return math.Pow(v, p)
}

// srgbPrimaries are the BT.709 primaries shared by sRGB and its linear
// and plain-gamma variants.
var srgbPrimaries = Primaries{
	Red:   Chromaticity{0.64, 0.33},
	Green: Chromaticity{0.30, 0.60},
	Blue:  Chromaticity{0.15, 0.06},
}

// SRGB is the IEC 61966-2-1 sRGB standard: BT.709 primaries, D65 white
// and the piecewise sRGB transfer function.
type SRGB struct{}

func (SRGB) White() White { return D65{}.White() }
func (SRGB) Primaries() Primaries { return srgbPrimaries }
func (SRGB) Encode(v float64) float64 { return srgbEncode(v) }
func (SRGB) Decode(v float64) float64 { return srgbDecode(v) }

func srgbEncode(v float64) float64 {
	if v < 0 {
		return -srgbEncode(-v)
	}
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func srgbDecode(v float64) float64 {
	if v < 0 {
		return -srgbDecode(-v)
	}
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// LinearSRGB shares the sRGB primaries and white point but stores linear
// component values.
type LinearSRGB struct{}

func (LinearSRGB) White() White { return D65{}.White() }
func (LinearSRGB) Primaries() Primaries { return srgbPrimaries }
func (LinearSRGB) Encode(v float64) float64 { return v }
func (LinearSRGB) Decode(v float64) float64 { return v }

// GammaSRGB is the sRGB space with a plain 2.2 gamma curve instead of the
// piecewise sRGB transfer function.
type GammaSRGB struct{}

func (GammaSRGB) White() White { return D65{}.White() }
func (GammaSRGB) Primaries() Primaries { return srgbPrimaries }
func (GammaSRGB) Encode(v float64) float64 { return signPow(v, 1/2.2) }
func (GammaSRGB) Decode(v float64) float64 { return signPow(v, 2.2) }

// AdobeRGB is the Adobe RGB (1998) standard: a wider green primary than
// sRGB, D65 white, gamma 563/256.
type AdobeRGB struct{}

const adobeGamma = 563.0 / 256.0

func (AdobeRGB) White() White { return D65{}.White() }
func (AdobeRGB) Primaries() Primaries {
	return Primaries{
		Red:   Chromaticity{0.64, 0.33},
		Green: Chromaticity{0.21, 0.71},
		Blue:  Chromaticity{0.15, 0.06},
	}
}
func (AdobeRGB) Encode(v float64) float64 { return signPow(v, 1/adobeGamma) }
func (AdobeRGB) Decode(v float64) float64 { return signPow(v, adobeGamma) }

// ProPhotoRGB is the ROMM RGB standard: wide-gamut primaries, D50 white,
// gamma 1.8 with a linear segment near black. Converting between it and
// any D65 space crosses a white-point boundary, so the conversion graph
// inserts a Bradford adaptation.
type ProPhotoRGB struct{}

func (ProPhotoRGB) White() White { return D50{}.White() }
func (ProPhotoRGB) Primaries() Primaries {
	return Primaries{
		Red:   Chromaticity{0.7347, 0.2653},
		Green: Chromaticity{0.1596, 0.8404},
		Blue:  Chromaticity{0.0366, 0.0001},
	}
}
func (ProPhotoRGB) Encode(v float64) float64 { return prophotoEncode(v) }
func (ProPhotoRGB) Decode(v float64) float64 { return prophotoDecode(v) }

func prophotoEncode(v float64) float64 {
	if v < 0 {
		return -prophotoEncode(-v)
	}
	if v < 1.0/512 {
		return 16 * v
	}
	return math.Pow(v, 1/1.8)
}

func prophotoDecode(v float64) float64 {
	if v < 0 {
		return -prophotoDecode(-v)
	}
	if v < 16.0/512 {
		return v / 16
	}
	return math.Pow(v, 1.8)
}
