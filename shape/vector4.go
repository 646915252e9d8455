// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/chewxy/math32"

// Vector4 is a 4D vector with X, Y, Z, W components, used for points in
// four-dimensional shapes. Three-dimensional shapes leave W at zero.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// V4 returns a new [Vector4] with the given components.
func V4(x, y, z, w float32) Vector4 {
	return Vector4{x, y, z, w}
}

// Add adds the other vector to this one, returning the result.
func (v Vector4) Add(o Vector4) Vector4 {
	return Vector4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub subtracts the other vector from this one, returning the result.
func (v Vector4) Sub(o Vector4) Vector4 {
	return Vector4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// MulScalar multiplies each component by the scalar, returning the result.
func (v Vector4) MulScalar(s float32) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Length returns the euclidean length of the vector.
func (v Vector4) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

// Normal returns this vector normalized to unit length, or the zero
// vector if its length is zero.
func (v Vector4) Normal() Vector4 {
	l := v.Length()
	if l == 0 {
		return Vector4{}
	}
	return v.MulScalar(1 / l)
}
