// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradient provides position-based color gradients over any
// color type that supports linear mixing.
package gradient

import (
	"cmp"
	"iter"
	"slices"

	"github.com/gymore-io/palette"
)

// Mixer is the mixing contract a color type must satisfy to be used in a
// gradient. Every space in the palette package satisfies it, as does
// palette.Alpha.
type Mixer[C any, T palette.Component] interface {
	// Mix linearly interpolates toward other with the factor in [0, 1];
	// hue components take the shorter angular arc.
	Mix(other C, factor T) C
}

// Stop pairs a color with its position along a gradient.
type Stop[C Mixer[C, T], T palette.Component] struct {
	// Pos is the stop's position; the gradient's domain spans the
	// first and last stop positions.
	Pos T
	// Color is the color at the stop.
	Color C
}

// Gradient interpolates between an ordered sequence of control stops.
// The zero value has no stops; At on it returns the zero color.
//
// Both type parameters are spelled at construction, since Go cannot
// infer the component type through the Mixer constraint:
//
//	g := gradient.New[palette.RGB[palette.SRGB, float64], float64](a, b)
type Gradient[C Mixer[C, T], T palette.Component] struct {
	stops []Stop[C, T]
}

// New returns a gradient with the given colors evenly spaced over
// [0, 1]. A single color yields a constant gradient.
func New[C Mixer[C, T], T palette.Component](colors ...C) Gradient[C, T] {
	stops := make([]Stop[C, T], len(colors))
	for i, c := range colors {
		var pos T
		if len(colors) > 1 {
			pos = T(i) / T(len(colors)-1)
		}
		stops[i] = Stop[C, T]{Pos: pos, Color: c}
	}
	return Gradient[C, T]{stops: stops}
}

// NewAt returns a gradient over the given stops, sorted by position.
// The stop slice is copied; later mutation of the argument does not
// affect the gradient.
func NewAt[C Mixer[C, T], T palette.Component](stops []Stop[C, T]) Gradient[C, T] {
	s := slices.Clone(stops)
	slices.SortStableFunc(s, func(a, b Stop[C, T]) int {
		return cmp.Compare(a.Pos, b.Pos)
	})
	return Gradient[C, T]{stops: s}
}

// AddStop inserts a stop, keeping the stops ordered by position.
func (g *Gradient[C, T]) AddStop(pos T, color C) {
	i, _ := slices.BinarySearchFunc(g.stops, pos, func(s Stop[C, T], p T) int {
		return cmp.Compare(s.Pos, p)
	})
	g.stops = slices.Insert(g.stops, i, Stop[C, T]{Pos: pos, Color: color})
}

// Stops returns a copy of the gradient's stops in position order.
func (g Gradient[C, T]) Stops() []Stop[C, T] {
	return slices.Clone(g.stops)
}

// Domain returns the positions of the first and last stops. A gradient
// with no stops has the empty domain (0, 0).
func (g Gradient[C, T]) Domain() (lo, hi T) {
	if len(g.stops) == 0 {
		return 0, 0
	}
	return g.stops[0].Pos, g.stops[len(g.stops)-1].Pos
}

// At returns the color at pos: the linear interpolation between the two
// bracketing stops, or the first/last color when pos lies outside the
// domain.
func (g Gradient[C, T]) At(pos T) C {
	s := g.stops
	if len(s) == 0 {
		var zero C
		return zero
	}
	if pos <= s[0].Pos {
		return s[0].Color
	}
	if pos >= s[len(s)-1].Pos {
		return s[len(s)-1].Color
	}
	i := 1
	for s[i].Pos < pos {
		i++
	}
	span := s[i].Pos - s[i-1].Pos
	if span == 0 {
		return s[i].Color
	}
	return s[i-1].Color.Mix(s[i].Color, (pos-s[i-1].Pos)/span)
}

// Take returns a lazy sequence of n samples evenly spaced over the
// gradient's domain, endpoints included. The sequence is restartable and
// reproducible: ranging over it any number of times yields the same
// samples, and the gradient itself is never mutated.
func (g Gradient[C, T]) Take(n int) iter.Seq[C] {
	return func(yield func(C) bool) {
		if n <= 0 || len(g.stops) == 0 {
			return
		}
		lo, hi := g.Domain()
		if n == 1 {
			yield(g.At(lo))
			return
		}
		step := (hi - lo) / T(n-1)
		for i := range n {
			if !yield(g.At(lo + T(i)*step)) {
				return
			}
		}
	}
}

// Colors collects Take(n) into a slice.
func (g Gradient[C, T]) Colors(n int) []C {
	out := make([]C, 0, max(n, 0))
	for c := range g.Take(n) {
		out = append(out, c)
	}
	return out
}
