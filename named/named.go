// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package named looks colors up by their SVG 1.1 / CSS name.
package named

import (
	"slices"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/gymore-io/palette"
)

// Lookup returns the named color as nonlinear sRGB. Names are matched
// case-insensitively; ok is false for unknown names.
func Lookup[T palette.Component](name string) (c palette.RGB[palette.SRGB, T], ok bool) {
	v, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return c, false
	}
	return palette.NewRGBFromBytes[palette.SRGB, T](v.R, v.G, v.B), true
}

// Names returns all known color names in alphabetical order.
func Names() []string {
	return slices.Clone(colornames.Names)
}
