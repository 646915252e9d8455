// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

// Morph returns a blended dataset between a and b at progress t.
//
// When morphing is disabled it is a hard switch: a for t < 0.5, b
// otherwise. When enabled, the point and attribute buffers are each
// linearly blended component-wise and truncated to the shorter of the
// two inputs (truncation, not padding); the connection buffer of a is
// reused unchanged: topology never blends, only positions and
// attributes do. When b is smaller than a, reused connections may
// reference points beyond the truncated buffer; renderers are expected
// to treat the point count as authoritative.
//
// t is NOT clamped to [0,1]: values outside the range extrapolate,
// which callers overshooting easing curves rely on.
func (c *Cache) Morph(a, b *Dataset, t float32) *Dataset {
	if !c.Morphing {
		if t < 0.5 {
			return a
		}
		return b
	}
	np := min(len(a.Points), len(b.Points))
	na := min(len(a.Attrs), len(b.Attrs))
	out := &Dataset{
		Points: NewArrayF32(np),
		Attrs:  NewArrayF32(na),
		Meta:   a.Meta,
	}
	for i := 0; i < np; i++ {
		out.Points[i] = a.Points[i] + (b.Points[i]-a.Points[i])*t
	}
	for i := 0; i < na; i++ {
		out.Attrs[i] = a.Attrs[i] + (b.Attrs[i]-a.Attrs[i])*t
	}
	out.Conns = a.Conns
	out.Meta.MorphFrom = a.Meta.Type
	out.Meta.MorphTo = b.Meta.Type
	out.Meta.MorphT = t
	return out
}
