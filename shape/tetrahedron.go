// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

// tetraVertices are the 5 vertices of the regular 4-simplex (5-cell),
// all at equal distance from the origin and from each other, before
// normalization to unit length.
var tetraVertices = [5]Vector4{
	{1, 1, 1, -0.4472136},
	{1, -1, -1, -0.4472136},
	{-1, 1, -1, -0.4472136},
	{-1, -1, 1, -0.4472136},
	{0, 0, 0, 1.7888544},
}

// tetraEdges are the 10 edges of the complete graph over the 5 vertices.
var tetraEdges = [10][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 2}, {1, 3}, {1, 4},
	{2, 3}, {2, 4}, {3, 4},
}

// TetrahedronExtra are simplex-specific generation options.
type TetrahedronExtra struct {

	// Scale multiplies the normalized vertex positions.
	Scale float32
}

func (x *TetrahedronExtra) Defaults() {
	x.Scale = 1
}

func (x *TetrahedronExtra) shapeName() string { return "tetrahedron" }

func (x *TetrahedronExtra) CacheKey() string {
	return "scale=" + ftoa(x.Scale)
}

// tetraSegs returns the number of segments each edge is subdivided
// into at the given density.
func tetraSegs(density int) int {
	return max(1, density/4)
}

// TetrahedronN returns the number of points and connections generated
// at the given density.
func TetrahedronN(density int) (numPoint, numConn int) {
	segs := tetraSegs(density)
	numPoint = 5 + 10*(segs-1)
	numConn = 10 * segs
	return
}

// SetTetrahedron sets 4-simplex points, attributes, and connections in
// the given allocated arrays: the 5 normalized vertices followed by the
// interior edge-subdivision points, with each edge chained into segs
// consecutive connections.
func SetTetrahedron(points, attrs ArrayF32, conns ArrayU32, density int, x *TetrahedronExtra) {
	segs := tetraSegs(density)
	scale := x.Scale
	if scale == 0 {
		scale = 1
	}
	var vs [5]Vector4
	for i, v := range tetraVertices {
		vs[i] = v.Normal().MulScalar(scale)
		points.SetVector4(i*4, vs[i])
		attrs.Set(i*AttrDims, 0, float32(i)/4)
	}
	pi := 5 // next point index
	ci := 0 // next connection offset, in index units
	for _, e := range tetraEdges {
		a, b := vs[e[0]], vs[e[1]]
		prev := uint32(e[0])
		for k := 1; k < segs; k++ {
			t := float32(k) / float32(segs)
			p := a.MulScalar(1 - t).Add(b.MulScalar(t))
			points.SetVector4(pi*4, p)
			attrs.Set(pi*AttrDims, t, p.Length()/scale)
			conns.Set(ci, prev, uint32(pi))
			prev = uint32(pi)
			pi++
			ci += 2
		}
		conns.Set(ci, prev, uint32(e[1]))
		ci += 2
	}
}
