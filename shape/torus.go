// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/chewxy/math32"

// TorusExtra are torus-specific generation options.
type TorusExtra struct {

	// Radius is the larger radius of the torus ring.
	Radius float32

	// TubeRadius is the radius of the solid tube.
	TubeRadius float32
}

func (x *TorusExtra) Defaults() {
	x.Radius = 1
	x.TubeRadius = 0.35
}

func (x *TorusExtra) shapeName() string { return "torus" }

func (x *TorusExtra) CacheKey() string {
	return "radius=" + ftoa(x.Radius) + "|tube=" + ftoa(x.TubeRadius)
}

// torusSegs returns radial and tubular segment counts at the given
// density.
func torusSegs(density int) (radial, tube int) {
	radial = max(3, 2*density)
	tube = max(3, density)
	return
}

// TorusN returns the number of points and connections generated at the
// given density.
func TorusN(density int) (numPoint, numConn int) {
	radial, tube := torusSegs(density)
	numPoint = radial * tube
	numConn = 2 * radial * tube
	return
}

// SetTorus sets torus points, attributes, and connections in the given
// allocated arrays, as a nested angle sweep around the ring and around
// the tube, wrapping in both directions.
func SetTorus(points, attrs ArrayF32, conns ArrayU32, density int, x *TorusExtra) {
	radial, tube := torusSegs(density)
	radius, tubeRadius := x.Radius, x.TubeRadius
	if radius == 0 {
		radius = 1
	}
	pi := 0
	for i := 0; i < radial; i++ {
		u := 2 * math32.Pi * float32(i) / float32(radial)
		for j := 0; j < tube; j++ {
			v := 2 * math32.Pi * float32(j) / float32(tube)
			points.SetVector3(pi*3,
				(radius+tubeRadius*math32.Cos(v))*math32.Cos(u),
				(radius+tubeRadius*math32.Cos(v))*math32.Sin(u),
				tubeRadius*math32.Sin(v))
			attrs.Set(pi*AttrDims, float32(i)/float32(radial), float32(j)/float32(tube))
			pi++
		}
	}
	idx := func(i, j int) uint32 { return uint32((i%radial)*tube + j%tube) }
	ci := 0
	for i := 0; i < radial; i++ {
		for j := 0; j < tube; j++ {
			conns.Set(ci, idx(i, j), idx(i+1, j))
			ci += 2
			conns.Set(ci, idx(i, j), idx(i, j+1))
			ci += 2
		}
	}
}
