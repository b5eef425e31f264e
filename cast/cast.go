// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cast reinterprets contiguous component buffers as slices of
// color values without copying. A returned slice aliases the memory of
// its argument: writes through one are visible through the other, and
// the caller owns keeping access exclusive or read-only while both are
// live.
package cast

import (
	"fmt"
	"unsafe"

	"github.com/gymore-io/palette"
)

// Slice reinterprets raw as a slice of colors C. C must be a struct
// composed solely of fields of type T, so that its size is a whole
// number of components, and len(raw) must be a multiple of that number.
// Layout mismatches are rejected with an error; the buffer is never
// truncated to fit.
//
// The component type is inferred from the buffer:
//
//	pixels, err := cast.Slice[palette.RGB[palette.SRGB, float32]](buf)
func Slice[C any, T palette.Component](raw []T) ([]C, error) {
	n, err := componentsPer[C, T]()
	if err != nil {
		return nil, err
	}
	if len(raw)%n != 0 {
		return nil, fmt.Errorf("cast: buffer of %d components is not a multiple of %d", len(raw), n)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*C)(unsafe.Pointer(&raw[0])), len(raw)/n), nil
}

// Components is the inverse of Slice: it reinterprets a slice of colors
// as the flat component buffer backing it. The component type is spelled
// explicitly, the color type is inferred:
//
//	buf := cast.Components[float32](pixels)
func Components[T palette.Component, C any](colors []C) ([]T, error) {
	n, err := componentsPer[C, T]()
	if err != nil {
		return nil, err
	}
	if len(colors) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&colors[0])), len(colors)*n), nil
}

// RGB8Slice reinterprets a byte buffer as packed 8-bit RGB values;
// len(raw) must be a multiple of 3.
func RGB8Slice(raw []uint8) ([]palette.RGB8, error) {
	if len(raw)%3 != 0 {
		return nil, fmt.Errorf("cast: buffer of %d bytes is not a multiple of 3", len(raw))
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*palette.RGB8)(unsafe.Pointer(&raw[0])), len(raw)/3), nil
}

// componentsPer returns how many T components one C occupies, rejecting
// types whose size is not a whole number of components.
func componentsPer[C any, T palette.Component]() (int, error) {
	var c C
	var t T
	cs, ts := unsafe.Sizeof(c), unsafe.Sizeof(t)
	if cs == 0 || cs%ts != 0 {
		return 0, fmt.Errorf("cast: %T is not a pure composite of %T components", c, t)
	}
	return int(cs / ts), nil
}
