// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/chewxy/math32"

// SphereExtra are sphere-specific generation options.
type SphereExtra struct {

	// Radius of the sphere.
	Radius float32
}

func (x *SphereExtra) Defaults() {
	x.Radius = 1
}

func (x *SphereExtra) shapeName() string { return "sphere" }

func (x *SphereExtra) CacheKey() string {
	return "radius=" + ftoa(x.Radius)
}

// sphereSegs returns latitude and longitude segment counts at the
// given density.
func sphereSegs(density int) (lat, lon int) {
	lat = max(2, density)
	lon = 2 * lat
	return
}

// SphereN returns the number of points and connections generated at
// the given density.
func SphereN(density int) (numPoint, numConn int) {
	lat, lon := sphereSegs(density)
	numPoint = (lat + 1) * lon
	numConn = (lat+1)*lon + lat*lon
	return
}

// SetSphere sets sphere points, attributes, and connections in the
// given allocated arrays, as a nested latitude/longitude angle sweep:
// rows from pole to pole, columns wrapping around each row, with
// connections along both sweep directions.
func SetSphere(points, attrs ArrayF32, conns ArrayU32, density int, x *SphereExtra) {
	lat, lon := sphereSegs(density)
	radius := x.Radius
	if radius == 0 {
		radius = 1
	}
	pi := 0
	for r := 0; r <= lat; r++ {
		theta := math32.Pi * float32(r) / float32(lat)
		for c := 0; c < lon; c++ {
			phi := 2 * math32.Pi * float32(c) / float32(lon)
			points.SetVector3(pi*3,
				radius*math32.Sin(theta)*math32.Cos(phi),
				radius*math32.Cos(theta),
				radius*math32.Sin(theta)*math32.Sin(phi))
			attrs.Set(pi*AttrDims, float32(c)/float32(lon), float32(r)/float32(lat))
			pi++
		}
	}
	idx := func(r, c int) uint32 { return uint32(r*lon + c%lon) }
	ci := 0
	for r := 0; r <= lat; r++ {
		for c := 0; c < lon; c++ {
			conns.Set(ci, idx(r, c), idx(r, c+1))
			ci += 2
		}
	}
	for r := 0; r < lat; r++ {
		for c := 0; c < lon; c++ {
			conns.Set(ci, idx(r, c), idx(r+1, c))
			ci += 2
		}
	}
}
