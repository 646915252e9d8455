// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/chewxy/math32"

// fractalBranches is the branching factor of the fractal tree.
const fractalBranches = 3

// FractalExtra are fractal-specific generation options.
type FractalExtra struct {

	// Shrink is the length ratio of each child branch to its parent.
	Shrink float32

	// Tilt is the angle in radians between a parent branch and its
	// children.
	Tilt float32
}

func (x *FractalExtra) Defaults() {
	x.Shrink = 0.6
	x.Tilt = 0.55
}

func (x *FractalExtra) shapeName() string { return "fractal" }

func (x *FractalExtra) CacheKey() string {
	return "shrink=" + ftoa(x.Shrink) + "|tilt=" + ftoa(x.Tilt)
}

// fractalDepth returns the recursion depth at the given density.
func fractalDepth(density int) int {
	return min(2+density/4, 6)
}

// FractalN returns the number of points and connections generated at
// the given density: the full ternary tree of the derived depth.
func FractalN(density int) (numPoint, numConn int) {
	depth := fractalDepth(density)
	numPoint = 1
	level := 1
	for l := 1; l <= depth; l++ {
		level *= fractalBranches
		numPoint += level
	}
	numConn = numPoint - 1
	return
}

// SetFractal sets fractal points, attributes, and connections in the
// given allocated arrays, by deterministic recursive branching: every
// node spawns three children tilted away from the parent direction at
// fixed azimuths, with edge connections forming the tree. No random
// numbers are involved, so the output is exactly reproducible.
func SetFractal(points, attrs ArrayF32, conns ArrayU32, density int, x *FractalExtra) {
	depth := fractalDepth(density)
	shrink, tilt := x.Shrink, x.Tilt
	if shrink == 0 {
		shrink = 0.6
	}
	root := Vector4{0, -1, 0, 0}
	dir := Vector4{0, 1, 0, 0}
	points.SetVector3(0, root.X, root.Y, root.Z)
	attrs.Set(0, 0, 0)
	f := fractalState{
		points: points, attrs: attrs, conns: conns,
		depth: depth, shrink: shrink, tilt: tilt,
		nextPoint: 1,
	}
	f.branch(0, root, dir, 0.8, 1)
}

type fractalState struct {
	points    ArrayF32
	attrs     ArrayF32
	conns     ArrayU32
	depth     int
	shrink    float32
	tilt      float32
	nextPoint int
	nextConn  int
}

// branch adds the children of the node at parent index and recurses.
func (f *fractalState) branch(parent int, pos, dir Vector4, length float32, level int) {
	if level > f.depth {
		return
	}
	u, w := frame3(dir)
	for b := 0; b < fractalBranches; b++ {
		az := 2*math32.Pi*float32(b)/fractalBranches + 0.5*float32(level)
		cd := dir.MulScalar(math32.Cos(f.tilt)).
			Add(u.MulScalar(math32.Sin(f.tilt) * math32.Cos(az))).
			Add(w.MulScalar(math32.Sin(f.tilt) * math32.Sin(az)))
		cp := pos.Add(cd.MulScalar(length))
		i := f.nextPoint
		f.nextPoint++
		f.points.SetVector3(i*3, cp.X, cp.Y, cp.Z)
		f.attrs.Set(i*AttrDims, float32(level)/float32(f.depth), float32(b)/fractalBranches)
		f.conns.Set(f.nextConn, uint32(parent), uint32(i))
		f.nextConn += 2
		f.branch(i, cp, cd, length*f.shrink, level+1)
	}
}

// frame3 returns two unit vectors orthogonal to the given direction,
// treating vectors as 3D (W ignored).
func frame3(d Vector4) (u, w Vector4) {
	ref := Vector4{0, 0, 1, 0}
	if math32.Abs(d.Z) > 0.9 {
		ref = Vector4{1, 0, 0, 0}
	}
	u = cross3(d, ref).Normal()
	w = cross3(d, u)
	return
}

// cross3 returns the 3D cross product, ignoring W.
func cross3(a, b Vector4) Vector4 {
	return Vector4{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}
