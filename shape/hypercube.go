// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "math/bits"

// HypercubeExtra are hypercube-specific generation options.
type HypercubeExtra struct {

	// Size is the half-extent of the hypercube along each axis.
	Size float32
}

func (x *HypercubeExtra) Defaults() {
	x.Size = 1
}

func (x *HypercubeExtra) shapeName() string { return "hypercube" }

func (x *HypercubeExtra) CacheKey() string {
	return "size=" + ftoa(x.Size)
}

// HypercubeN returns the number of points and connections generated.
// The hypercube has a fixed combinatorial structure: 16 vertices and
// 32 edges regardless of density.
func HypercubeN(density int) (numPoint, numConn int) {
	return 16, 32
}

// SetHypercube sets tesseract points, attributes, and connections in
// the given allocated arrays. Vertex i has coordinate +Size on each
// axis whose bit is set in i, -Size otherwise; two vertices are
// connected exactly when they differ in a single coordinate.
func SetHypercube(points, attrs ArrayF32, conns ArrayU32, density int, x *HypercubeExtra) {
	size := x.Size
	if size == 0 {
		size = 1
	}
	for i := 0; i < 16; i++ {
		var p Vector4
		p.X = coordSign(i, 0) * size
		p.Y = coordSign(i, 1) * size
		p.Z = coordSign(i, 2) * size
		p.W = coordSign(i, 3) * size
		points.SetVector4(i*4, p)
		attrs.Set(i*AttrDims, float32(i)/15, float32(bits.OnesCount8(uint8(i)))/4)
	}
	ci := 0
	for i := 0; i < 16; i++ {
		for k := 0; k < 4; k++ {
			j := i ^ (1 << k)
			if j > i {
				conns.Set(ci, uint32(i), uint32(j))
				ci += 2
			}
		}
	}
}

func coordSign(i, axis int) float32 {
	if i&(1<<axis) != 0 {
		return 1
	}
	return -1
}
