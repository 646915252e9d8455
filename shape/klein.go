// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/chewxy/math32"

// KleinExtra are options for the non-orientable Klein surface.
type KleinExtra struct {

	// Radius is the larger radius of the central ring.
	Radius float32

	// TubeRadius is the radius of the tube swept around the ring.
	TubeRadius float32
}

func (x *KleinExtra) Defaults() {
	x.Radius = 1
	x.TubeRadius = 0.4
}

func (x *KleinExtra) shapeName() string { return "klein" }

func (x *KleinExtra) CacheKey() string {
	return "radius=" + ftoa(x.Radius) + "|tube=" + ftoa(x.TubeRadius)
}

// kleinSegs returns ring and tube segment counts at the given density.
func kleinSegs(density int) (ring, tube int) {
	ring = max(4, 2*density)
	tube = max(3, density)
	return
}

// KleinN returns the number of points and connections generated at the
// given density.
func KleinN(density int) (numPoint, numConn int) {
	ring, tube := kleinSegs(density)
	numPoint = ring * tube
	numConn = 2 * ring * tube
	return
}

// SetKlein sets points, attributes, and connections for the flat Klein
// bottle embedded in 4D, as a nested angle sweep. The ring direction
// wraps onto the tube coordinate reversed, which is what makes the
// surface non-orientable.
func SetKlein(points, attrs ArrayF32, conns ArrayU32, density int, x *KleinExtra) {
	ring, tube := kleinSegs(density)
	radius, tubeRadius := x.Radius, x.TubeRadius
	if radius == 0 {
		radius = 1
	}
	pi := 0
	for i := 0; i < ring; i++ {
		u := 2 * math32.Pi * float32(i) / float32(ring)
		for j := 0; j < tube; j++ {
			v := 2 * math32.Pi * float32(j) / float32(tube)
			points.SetVector4(pi*4, Vector4{
				X: (radius + tubeRadius*math32.Cos(v)) * math32.Cos(u),
				Y: (radius + tubeRadius*math32.Cos(v)) * math32.Sin(u),
				Z: tubeRadius * math32.Sin(v) * math32.Cos(u/2),
				W: tubeRadius * math32.Sin(v) * math32.Sin(u/2),
			})
			attrs.Set(pi*AttrDims, float32(i)/float32(ring), float32(j)/float32(tube))
			pi++
		}
	}
	// the u seam identifies (ring, j) with (0, tube-j): the reversed
	// tube coordinate closes the bottle.
	idx := func(i, j int) uint32 {
		j = ((j % tube) + tube) % tube
		if i == ring {
			return uint32((tube - j) % tube)
		}
		return uint32(i*tube + j)
	}
	ci := 0
	for i := 0; i < ring; i++ {
		for j := 0; j < tube; j++ {
			conns.Set(ci, idx(i, j), idx(i+1, j))
			ci += 2
			conns.Set(ci, idx(i, j), idx(i, j+1))
			ci += 2
		}
	}
}
