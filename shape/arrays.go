// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

// ArrayF32 is a slice of float32 with helpers for setting contiguous
// point data at given offsets.
type ArrayF32 []float32

// NewArrayF32 returns a new array of the given size.
func NewArrayF32(size int) ArrayF32 {
	return make(ArrayF32, size)
}

// Set sets the values of the array starting at the given index.
func (a ArrayF32) Set(idx int, vs ...float32) {
	for i, v := range vs {
		a[idx+i] = v
	}
}

// SetVector4 sets the x, y, z, w components of a 4D point starting at
// the given index.
func (a ArrayF32) SetVector4(idx int, v Vector4) {
	a[idx] = v.X
	a[idx+1] = v.Y
	a[idx+2] = v.Z
	a[idx+3] = v.W
}

// SetVector3 sets x, y, z components of a 3D point starting at the
// given index.
func (a ArrayF32) SetVector3(idx int, x, y, z float32) {
	a[idx] = x
	a[idx+1] = y
	a[idx+2] = z
}

// ArrayU32 is a slice of uint32 with helpers for setting connection
// index data at given offsets.
type ArrayU32 []uint32

// NewArrayU32 returns a new array of the given size.
func NewArrayU32(size int) ArrayU32 {
	return make(ArrayU32, size)
}

// Set sets the values of the array starting at the given index.
func (a ArrayU32) Set(idx int, vs ...uint32) {
	for i, v := range vs {
		a[idx+i] = v
	}
}
