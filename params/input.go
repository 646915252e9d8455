// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

// Interaction-derived writers. These are pure mappings from raw input
// deltas onto SetParam calls, so every interaction path goes through
// the same validation, queueing, and diff suppression as any other
// write. The raw listeners themselves live in the embedding host.

// WheelDensityStep is how much one wheel step changes gridDensity.
var WheelDensityStep = float32(0.5)

// keyGeometry resolves discrete key input into the geometry parameter:
// digit key codes 0 through 7 select the shape with that index.
var keyGeometry = map[rune]int{
	'0': 0, '1': 1, '2': 2, '3': 3,
	'4': 4, '5': 5, '6': 6, '7': 7,
}

// PointerMove maps a pointer position within a width-by-height surface
// onto the morph factor (horizontal) and dimension (vertical)
// parameters, normalized across their declared ranges.
func (a *Authority) PointerMove(x, y, width, height float32, source string) {
	if width <= 0 || height <= 0 {
		return
	}
	nx := clamp01(x / width)
	ny := clamp01(1 - y/height)
	if m, ok := a.meta.ValueByKey("morphFactor"); ok {
		a.SetParam("morphFactor", float64(m.Min+nx*(m.Max-m.Min)), source)
	}
	if m, ok := a.meta.ValueByKey("dimension"); ok {
		a.SetParam("dimension", float64(m.Min+ny*(m.Max-m.Min)), source)
	}
}

// Wheel adjusts gridDensity by [WheelDensityStep] per call, clamped by
// the declared range. Direction is inverted: scrolling down (positive
// delta) decreases density.
func (a *Authority) Wheel(delta float32, source string) {
	if delta == 0 {
		return
	}
	step := WheelDensityStep
	if delta > 0 {
		step = -step
	}
	cur := a.values["gridDensity"]
	a.SetParam("gridDensity", float64(cur+step), source)
}

// Key resolves a discrete key code through the fixed lookup table into
// the geometry parameter. Unmapped keys are ignored.
func (a *Authority) Key(code rune, source string) {
	idx, ok := keyGeometry[code]
	if !ok {
		return
	}
	a.SetParam("geometry", float64(idx), source)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
