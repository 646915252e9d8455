// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects notifications for one subscriber.
type recorder struct {
	got   map[string]float32
	order []string
}

func newRecorder() *recorder {
	return &recorder{got: map[string]float32{}}
}

func (r *recorder) notify(name string, value float32) {
	r.got[name] = value
	r.order = append(r.order, name)
}

func TestSetParamClampAndCoerce(t *testing.T) {
	start := time.Now()
	a := New(0, start)

	// declared range [3, 4.5]: out-of-range input clamps
	require.NoError(t, a.SetParam("dimension", 10, "test"))
	a.Drain(start)
	v, ok := a.Param("dimension")
	require.True(t, ok)
	assert.Equal(t, float32(4.5), v)

	require.NoError(t, a.SetParam("dimension", -2, "test"))
	a.Drain(start)
	v, _ = a.Param("dimension")
	assert.Equal(t, float32(3), v)

	// int kind rounds to the nearest whole number
	require.NoError(t, a.SetParam("geometry", 3.4, "test"))
	a.Drain(start)
	v, _ = a.Param("geometry")
	assert.Equal(t, float32(3), v)

	// every declared parameter clamps on both sides (time is excluded:
	// the drain recomputes it from the clock)
	for _, name := range a.Names() {
		if name == TimeParam {
			continue
		}
		m, _ := a.Meta(name)
		require.NoError(t, a.SetParam(name, float64(m.Max)+1e6, "test"))
		a.Drain(start)
		v, _ := a.Param(name)
		assert.Equal(t, m.Max, v, name)
	}
}

func TestSetParamUnknownAndInvalid(t *testing.T) {
	start := time.Now()
	a := New(0, start)
	before := a.AllParams()

	err := a.SetParam("warpFactor", 1, "test")
	assert.ErrorIs(t, err, ErrUnknownParameter)
	assert.Equal(t, 0, a.Pending())

	err = a.SetParam("dimension", math.NaN(), "test")
	assert.ErrorIs(t, err, ErrInvalidValue)
	err = a.SetParam("dimension", math.Inf(1), "test")
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, 0, a.Pending())

	a.Drain(start)
	assert.Equal(t, before, a.AllParams())
}

func TestSetParamSameValueNoOp(t *testing.T) {
	start := time.Now()
	a := New(0, start)
	rec := newRecorder()
	a.Register("r", "content", rec.notify)
	rec.order = nil

	cur, _ := a.Param("morphFactor")
	require.NoError(t, a.SetParam("morphFactor", float64(cur), "test"))
	assert.Equal(t, 0, a.Pending())
	a.Drain(start)
	assert.Empty(t, rec.order)
}

func TestRegisterFullSync(t *testing.T) {
	a := New(0, time.Now())
	rec := newRecorder()
	a.Register("r", "content", rec.notify)

	// exactly one notification per currently defined parameter, with
	// the authority's current values (set equality, order irrelevant)
	assert.Len(t, rec.order, len(a.Names()))
	assert.Equal(t, a.AllParams(), rec.got)
}

func TestUnregisterIdempotent(t *testing.T) {
	a := New(0, time.Now())
	a.Register("r", "content", func(string, float32) {})
	assert.Equal(t, 1, a.NumSubscribers())
	a.Unregister("r")
	a.Unregister("r")
	a.Unregister("never-there")
	assert.Equal(t, 0, a.NumSubscribers())
}

func TestDrainDiffSuppression(t *testing.T) {
	start := time.Now()
	a := New(0, start)
	rec := newRecorder()
	a.Register("r", "content", rec.notify)
	rec.order = nil

	// both writes queue (validation compares against the committed
	// value, which stays 8 until the drain)
	require.NoError(t, a.SetParam("gridDensity", 5, "test"))
	require.NoError(t, a.SetParam("gridDensity", 5, "test"))
	assert.Equal(t, 2, a.Pending())

	applied := a.Drain(start)
	assert.Equal(t, 2, applied)
	// the second commit of an identical value is suppressed
	assert.Equal(t, []string{"gridDensity"}, rec.order)
	assert.Equal(t, float32(5), rec.got["gridDensity"])
}

func TestDrainFIFO(t *testing.T) {
	start := time.Now()
	a := New(0, start)
	require.NoError(t, a.SetParam("rotationSpeed", 1, "test"))
	require.NoError(t, a.SetParam("rotationSpeed", 2, "test"))
	require.NoError(t, a.SetParam("rotationSpeed", 3, "test"))
	a.Drain(start)
	v, _ := a.Param("rotationSpeed")
	assert.Equal(t, float32(3), v)
}

func TestDerivedTime(t *testing.T) {
	start := time.Now()
	a := New(0, start)
	a.Drain(start.Add(2 * time.Second))
	v, ok := a.Param(TimeParam)
	require.True(t, ok)
	assert.InDelta(t, 2.0, float64(v), 1e-3)
}

func TestQueueOverflowDropsOldestHalf(t *testing.T) {
	start := time.Now()
	a := New(8, start)
	// nine distinct queued writes on one name: all differ from the
	// committed value, so all queue; the ninth evicts the oldest four
	for i := 1; i <= 9; i++ {
		require.NoError(t, a.SetParam("patternIntensity", float64(i)*0.1, "test"))
	}
	assert.Equal(t, 5, a.Pending())
	applied := a.Drain(start)
	assert.Equal(t, 5, applied)
	v, _ := a.Param("patternIntensity")
	assert.InDelta(t, 0.9, float64(v), 1e-6)
}
