// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/chewxy/math32"

// WaveExtra are wave-field-specific generation options.
type WaveExtra struct {

	// Amplitude of the scalar field at the origin.
	Amplitude float32

	// Frequency is the number of full wave cycles per unit radius.
	Frequency float32

	// Damping is the exponential radial decay rate.
	Damping float32
}

func (x *WaveExtra) Defaults() {
	x.Amplitude = 0.5
	x.Frequency = 2
	x.Damping = 1.5
}

func (x *WaveExtra) shapeName() string { return "wave" }

func (x *WaveExtra) CacheKey() string {
	return "amp=" + ftoa(x.Amplitude) + "|freq=" + ftoa(x.Frequency) + "|damp=" + ftoa(x.Damping)
}

// waveGrid returns the number of grid points per side at the given
// density.
func waveGrid(density int) int {
	return max(2, density) + 1
}

// WaveN returns the number of points and connections generated at the
// given density.
func WaveN(density int) (numPoint, numConn int) {
	n := waveGrid(density)
	numPoint = n * n
	numConn = 2 * n * (n - 1)
	return
}

// SetWave sets wave points, attributes, and connections in the given
// allocated arrays: a radially damped scalar field sampled on a square
// grid over [-1,1]^2, with grid-neighbor connections in both
// directions.
func SetWave(points, attrs ArrayF32, conns ArrayU32, density int, x *WaveExtra) {
	n := waveGrid(density)
	amp, freq, damp := x.Amplitude, x.Frequency, x.Damping
	if amp == 0 {
		amp = 0.5
	}
	pi := 0
	for gy := 0; gy < n; gy++ {
		py := 2*float32(gy)/float32(n-1) - 1
		for gx := 0; gx < n; gx++ {
			px := 2*float32(gx)/float32(n-1) - 1
			r := math32.Hypot(px, py)
			h := amp * math32.Sin(2*math32.Pi*freq*r) * math32.Exp(-damp*r)
			points.SetVector3(pi*3, px, h, py)
			attrs.Set(pi*AttrDims, r, h/amp)
			pi++
		}
	}
	idx := func(gx, gy int) uint32 { return uint32(gy*n + gx) }
	ci := 0
	for gy := 0; gy < n; gy++ {
		for gx := 0; gx < n-1; gx++ {
			conns.Set(ci, idx(gx, gy), idx(gx+1, gy))
			ci += 2
		}
	}
	for gy := 0; gy < n-1; gy++ {
		for gx := 0; gx < n; gx++ {
			conns.Set(ci, idx(gx, gy), idx(gx, gy+1))
			ci += 2
		}
	}
}
