// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/chewxy/math32"

// CrystalExtra are crystal-lattice-specific generation options.
type CrystalExtra struct {

	// Radius is the truncation radius of the lattice in lattice units.
	// Zero means a radius derived from the generation density.
	Radius float32
}

func (x *CrystalExtra) Defaults() {
	x.Radius = 0
}

func (x *CrystalExtra) shapeName() string { return "crystal" }

func (x *CrystalExtra) CacheKey() string {
	return "radius=" + ftoa(x.Radius)
}

// crystalRadius returns the effective truncation radius.
func crystalRadius(density int, x *CrystalExtra) float32 {
	if x.Radius > 0 {
		return x.Radius
	}
	return float32(density)/4 + 0.5
}

// crystalEach enumerates the integer lattice vectors within the
// truncation radius in a fixed scan order, calling the visit function
// for each. The scan order is what keys lattice coordinates to point
// indices, so it must stay stable.
func crystalEach(radius float32, visit func(i, j, k int)) {
	m := int(math32.Floor(radius))
	r2 := radius * radius
	for i := -m; i <= m; i++ {
		for j := -m; j <= m; j++ {
			for k := -m; k <= m; k++ {
				if float32(i*i+j*j+k*k) <= r2 {
					visit(i, j, k)
				}
			}
		}
	}
}

// CrystalN returns the number of points and connections generated at
// the given density with the given options.
func CrystalN(density int, x *CrystalExtra) (numPoint, numConn int) {
	radius := crystalRadius(density, x)
	present := map[[3]int]bool{}
	crystalEach(radius, func(i, j, k int) {
		numPoint++
		present[[3]int{i, j, k}] = true
	})
	crystalEach(radius, func(i, j, k int) {
		for _, nb := range latticeNeighbors(i, j, k) {
			if present[nb] {
				numConn++
			}
		}
	})
	return
}

// SetCrystal sets crystal points, attributes, and connections in the
// given allocated arrays: all integer lattice vectors truncated by
// radius, scaled into the unit ball, connected to their +1 axis
// neighbors.
func SetCrystal(points, attrs ArrayF32, conns ArrayU32, density int, x *CrystalExtra) {
	radius := crystalRadius(density, x)
	index := map[[3]int]int{}
	pi := 0
	crystalEach(radius, func(i, j, k int) {
		index[[3]int{i, j, k}] = pi
		r := math32.Sqrt(float32(i*i + j*j + k*k))
		points.SetVector3(pi*3,
			float32(i)/radius, float32(j)/radius, float32(k)/radius)
		parity := float32((((i + j + k) % 2) + 2) % 2)
		attrs.Set(pi*AttrDims, r/radius, parity)
		pi++
	})
	ci := 0
	crystalEach(radius, func(i, j, k int) {
		a := index[[3]int{i, j, k}]
		for _, nb := range latticeNeighbors(i, j, k) {
			if b, ok := index[nb]; ok {
				conns.Set(ci, uint32(a), uint32(b))
				ci += 2
			}
		}
	})
}

// latticeNeighbors returns the three +1 axis neighbors of a lattice
// vector; emitting only the positive direction counts each bond once.
func latticeNeighbors(i, j, k int) [3][3]int {
	return [3][3]int{
		{i + 1, j, k},
		{i, j + 1, k},
		{i, j, k + 1},
	}
}
