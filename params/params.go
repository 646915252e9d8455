// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package params holds the single authoritative set of named tunable
// parameters shared by all rendering instances. Writes are validated,
// coerced, and clamped against declared metadata, buffered in a bounded
// queue, and applied once per render-clock tick with per-subscriber
// diff-suppressed fan-out.
package params

import (
	"errors"
	"math"
	"time"
)

// Kind is the declared numeric kind of a parameter.
type Kind int32

const (
	// KindFloat parameters hold arbitrary float32 values in range.
	KindFloat Kind = iota

	// KindInt parameters hold whole-number values; writes are rounded
	// to the nearest integer before clamping.
	KindInt
)

func (k Kind) String() string {
	if k == KindInt {
		return "int"
	}
	return "float"
}

// ErrUnknownParameter is returned when writing a name that is not
// registered. State is left unchanged.
var ErrUnknownParameter = errors.New("params: unknown parameter")

// ErrInvalidValue is returned when a written value cannot be coerced to
// the parameter's declared kind (NaN or infinite). State is left
// unchanged.
var ErrInvalidValue = errors.New("params: invalid value")

// Meta is the declared metadata of one parameter. Metadata is created
// at init and never changes.
type Meta struct {

	// Min and Max bound the value; every committed value stays within
	// [Min, Max] at all times.
	Min float32
	Max float32

	// Kind is the declared numeric kind.
	Kind Kind

	// Category groups parameters for presentation.
	Category string

	// Default is the initial value.
	Default float32
}

// Update is one pending write: created by SetParam, consumed and
// discarded at the next tick drain.
type Update struct {
	Name   string
	Value  float32
	Source string
	At     time.Time
}

// coerce coerces the raw value to the declared kind and clamps it to
// [Min, Max], reporting whether coercion succeeded.
func (m *Meta) coerce(raw float64) (float32, bool) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0, false
	}
	if m.Kind == KindInt {
		raw = math.Round(raw)
	}
	v := float32(raw)
	if v < m.Min {
		v = m.Min
	}
	if v > m.Max {
		v = m.Max
	}
	return v, true
}
