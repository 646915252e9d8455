// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import "math"

// TimeParam is the derived time parameter, recomputed at every drain
// from the authority's monotonic start offset. Writing it directly is
// allowed but the next drain overwrites it.
const TimeParam = "time"

// defaultMeta declares the standard visualization parameter set, in
// the order used for full-sync pushes.
var defaultMeta = []struct {
	Name string
	Meta Meta
}{
	{"geometry", Meta{Min: 0, Max: 7, Kind: KindInt, Category: "shape", Default: 0}},
	{"gridDensity", Meta{Min: 1, Max: 25, Kind: KindFloat, Category: "shape", Default: 8}},
	{"dimension", Meta{Min: 3, Max: 4.5, Kind: KindFloat, Category: "core", Default: 3.5}},
	{"morphFactor", Meta{Min: 0, Max: 1.5, Kind: KindFloat, Category: "core", Default: 0.5}},
	{"rotationSpeed", Meta{Min: 0, Max: 3, Kind: KindFloat, Category: "motion", Default: 0.5}},
	{"lineThickness", Meta{Min: 0.002, Max: 0.1, Kind: KindFloat, Category: "visual", Default: 0.02}},
	{"patternIntensity", Meta{Min: 0, Max: 3, Kind: KindFloat, Category: "visual", Default: 1}},
	{"universeModifier", Meta{Min: 0.3, Max: 2.5, Kind: KindFloat, Category: "visual", Default: 1}},
	{"glitchIntensity", Meta{Min: 0, Max: 0.15, Kind: KindFloat, Category: "visual", Default: 0.02}},
	{"colorShift", Meta{Min: -1, Max: 1, Kind: KindFloat, Category: "color", Default: 0}},
	{TimeParam, Meta{Min: 0, Max: math.MaxFloat32, Kind: KindFloat, Category: "derived", Default: 0}},
}
