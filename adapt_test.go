// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdaptIdentity(t *testing.T) {
	var wp D65
	in := Tristimulus[float64]{X: 0.3, Y: 0.4, Z: 0.5, White: wp.White()}
	out := Adapt(in, wp.White())
	assert.Equal(t, in, out)
	assert.Equal(t, Identity3(), AdaptationMatrix(wp.White(), wp.White()))
}

func TestAdaptationMatrixD65ToD50(t *testing.T) {
	// Bruce Lindbloom's published Bradford matrix for D65 → D50.
	want := Matrix3{
		1.0478112, 0.0228866, -0.0501270,
		0.0295424, 0.9904844, -0.0170491,
		-0.0092345, 0.0150436, 0.7521316,
	}
	var d65 D65
	var d50 D50
	got := AdaptationMatrix(d65.White(), d50.White())
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5)
	}
}

func TestAdaptRoundTrip(t *testing.T) {
	var d65 D65
	var d50 D50
	in := Tristimulus[float64]{X: 0.2, Y: 0.5, Z: 0.8, White: d65.White()}
	there := Adapt(in, d50.White())
	assert.Equal(t, d50.White(), there.White)
	back := Adapt(there, d65.White())
	assert.InDelta(t, in.X, back.X, 1e-9)
	assert.InDelta(t, in.Y, back.Y, 1e-9)
	assert.InDelta(t, in.Z, back.Z, 1e-9)
}

func TestAdaptMapsWhiteToWhite(t *testing.T) {
	// The defining property of chromatic adaptation: the source white
	// lands exactly on the destination white.
	var d65 D65
	var e E
	in := Tristimulus[float64]{
		X: d65.White().X, Y: d65.White().Y, Z: d65.White().Z, White: d65.White(),
	}
	out := Adapt(in, e.White())
	assert.InDelta(t, e.White().X, out.X, 1e-9)
	assert.InDelta(t, e.White().Y, out.Y, 1e-9)
	assert.InDelta(t, e.White().Z, out.Z, 1e-9)
}

func TestAdaptationMatrixConcurrent(t *testing.T) {
	var d65 D65
	var d50 D50
	want := AdaptationMatrix(d65.White(), d50.White())
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, AdaptationMatrix(d65.White(), d50.White()))
		}()
	}
	wg.Wait()
}
