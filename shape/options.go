// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "strconv"

// Options select the generation density and optional shape-specific
// extras for one geometry request. The zero value generates the shape
// at [DefaultDensity] with its default extras.
type Options struct {

	// Density is the resolution of generation: grid cells, sweep
	// segments, branching depth, or lattice radius depending on the
	// shape. Higher density never decreases point or connection
	// counts. Zero or negative means [DefaultDensity].
	Density int

	// Extra holds shape-specific options; nil means the shape's
	// defaults. Passing extras of the wrong kind fails with
	// [ErrOptionsMismatch].
	Extra Extra
}

// Extra is the tagged union of per-shape generation options. Each of
// the 8 shape kinds declares its own concrete type, so generators have
// fixed, typed signatures and cache keys serialize fields in a fixed
// declaration order (never map iteration), making semantically equal
// option sets produce exactly one key.
type Extra interface {

	// CacheKey returns the canonical serialization of the options,
	// with fields in fixed declaration order.
	CacheKey() string

	// shapeName is the registry name of the shape these options
	// apply to.
	shapeName() string
}

// density returns the effective generation density.
func (o Options) density() int {
	if o.Density <= 0 {
		return DefaultDensity
	}
	return o.Density
}

// resolve resolves the options against the given descriptor, applying
// defaults and rejecting extras of the wrong kind.
func (o Options) resolve(d *Descriptor) (density int, x Extra, err error) {
	density = o.density()
	x = o.Extra
	if x == nil {
		x = d.defaultExtra()
		return density, x, nil
	}
	if x.shapeName() != d.Name {
		return 0, nil, ErrOptionsMismatch
	}
	return density, x, nil
}

// ftoa formats a float32 options field for cache keys.
func ftoa(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
