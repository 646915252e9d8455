// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pool

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vizcore/vizcore/params"
	"github.com/vizcore/vizcore/shape"
)

// fakeRenderer is a renderer collaborator for tests, with injectable
// failures.
type fakeRenderer struct {
	id         int
	params     map[string]float32
	geom       *shape.Dataset
	setErr     error
	destroyErr error
	restoreErr error
	restores   int
	destroys   int
}

func newFakeRenderer(id int) *fakeRenderer {
	return &fakeRenderer{id: id, params: map[string]float32{}}
}

func (r *fakeRenderer) Render() {}

func (r *fakeRenderer) SetParams(vals map[string]float32) error {
	if r.setErr != nil {
		return r.setErr
	}
	for n, v := range vals {
		r.params[n] = v
	}
	return nil
}

func (r *fakeRenderer) SetGeometry(ds *shape.Dataset) error {
	if r.setErr != nil {
		return r.setErr
	}
	r.geom = ds
	return nil
}

func (r *fakeRenderer) RestoreContext() error {
	r.restores++
	return r.restoreErr
}

func (r *fakeRenderer) Destroy() error {
	r.destroys++
	return r.destroyErr
}

// testPool returns a pool with one registered type and a builder that
// records the renderers it constructs.
func testPool(capacity int, auth *params.Authority) (*Pool, *[]*fakeRenderer) {
	rends := &[]*fakeRenderer{}
	pl := NewPool(capacity, func(typ, role string, id int, resource any) (Renderer, error) {
		r := newFakeRenderer(id)
		*rends = append(*rends, r)
		return r, nil
	}, auth)
	pl.RegisterType("faceted", "background", Usage{Shaders: 2, Textures: 1, Buffers: 3})
	pl.RegisterType("holographic", "content", Usage{Shaders: 5, Textures: 4, Buffers: 8})
	return pl, rends
}

func TestCreateUnknownType(t *testing.T) {
	pl, _ := testPool(4, nil)
	_, err := pl.Create("plasma", nil, "", nil)
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Equal(t, 0, pl.NumLive())
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	pl, _ := testPool(8, nil)
	a, err := pl.Create("faceted", nil, "", nil)
	require.NoError(t, err)
	b, err := pl.Create("faceted", nil, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, a.ID)
	assert.Equal(t, 1, b.ID)
	assert.Equal(t, "background", a.Role)

	// ids are never reused, even after destruction
	require.True(t, pl.Destroy(a.ID))
	c, err := pl.Create("faceted", nil, "highlight", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, c.ID)
	assert.Equal(t, "highlight", c.Role)
}

func TestCreateRegistersWithAuthority(t *testing.T) {
	auth := params.New(0, time.Now())
	pl, rends := testPool(4, auth)
	inst, err := pl.Create("faceted", nil, "", nil)
	require.NoError(t, err)

	// registration triggers an immediate full sync
	assert.Equal(t, 1, auth.NumSubscribers())
	assert.Equal(t, auth.AllParams(), (*rends)[0].params)

	pl.Destroy(inst.ID)
	assert.Equal(t, 0, auth.NumSubscribers())
}

func TestCreateOptionsOverrides(t *testing.T) {
	auth := params.New(0, time.Now())
	pl, rends := testPool(4, auth)
	_, err := pl.Create("faceted", nil, "", &CreateOptions{
		Params: map[string]float32{"glitchIntensity": 0.1},
	})
	require.NoError(t, err)

	// instance-local overrides land after the registration sync
	assert.Equal(t, float32(0.1), (*rends)[0].params["glitchIntensity"])
	v, _ := auth.Param("glitchIntensity")
	assert.Equal(t, float32(0.02), v, "authority value is not affected")
}

func TestDestroyIdempotentAndFailSoft(t *testing.T) {
	pl, rends := testPool(4, nil)
	inst, err := pl.Create("faceted", nil, "", nil)
	require.NoError(t, err)

	// release failure on an already-invalid resource is logged, not
	// escalated
	(*rends)[0].destroyErr = errors.New("context already gone")
	assert.True(t, pl.Destroy(inst.ID))
	assert.Equal(t, 0, pl.NumLive())

	// destroying an absent id is a no-op success
	assert.True(t, pl.Destroy(inst.ID))
	assert.True(t, pl.Destroy(12345))
	assert.Equal(t, 1, (*rends)[0].destroys)
}

func TestCapacityRecyclesSameType(t *testing.T) {
	pl, _ := testPool(20, nil)
	insts := make([]*Instance, 20)
	base := time.Now()
	for i := range insts {
		inst, err := pl.Create("faceted", nil, "", nil)
		require.NoError(t, err)
		insts[i] = inst
		// deterministic update ordering: instance 7 is stalest
		inst.LastUpdate = base.Add(time.Duration((i+13)%20) * time.Second)
	}
	require.Equal(t, 20, pl.NumLive())

	extra, err := pl.Create("faceted", nil, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 20, pl.NumLive())
	assert.Equal(t, 20, extra.ID)

	// instance 7 had the earliest LastUpdate and was recycled
	_, alive := pl.Instance(insts[7].ID)
	assert.False(t, alive)
	assert.False(t, insts[7].Active)
	for i, inst := range insts {
		if i == 7 {
			continue
		}
		_, alive := pl.Instance(inst.ID)
		assert.True(t, alive, "instance %d", i)
	}
}

func TestCapacityRecycleTieBreaksByCreation(t *testing.T) {
	pl, _ := testPool(3, nil)
	base := time.Now()
	insts := make([]*Instance, 3)
	for i := range insts {
		inst, err := pl.Create("faceted", nil, "", nil)
		require.NoError(t, err)
		inst.LastUpdate = base
		inst.CreatedAt = base.Add(time.Duration(2-i) * time.Second)
		insts[i] = inst
	}

	_, err := pl.Create("faceted", nil, "", nil)
	require.NoError(t, err)
	// all LastUpdates equal: the earliest-created goes, which is the
	// last one built above
	_, alive := pl.Instance(insts[2].ID)
	assert.False(t, alive)
}

func TestPoolExhaustedNoSameTypeCandidate(t *testing.T) {
	pl, _ := testPool(2, nil)
	_, err := pl.Create("faceted", nil, "", nil)
	require.NoError(t, err)
	_, err = pl.Create("faceted", nil, "", nil)
	require.NoError(t, err)

	// at capacity with no live holographic instance to recycle
	_, err = pl.Create("holographic", nil, "", nil)
	assert.ErrorIs(t, err, ErrPoolExhausted)
	assert.Equal(t, 2, pl.NumLive())
}

func TestBuilderFailure(t *testing.T) {
	boom := errors.New("no drawable")
	pl := NewPool(4, func(typ, role string, id int, resource any) (Renderer, error) {
		return nil, boom
	}, nil)
	pl.RegisterType("faceted", "background", Usage{})
	_, err := pl.Create("faceted", nil, "", nil)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, pl.NumLive())
}

func TestUpdateInstanceParams(t *testing.T) {
	pl, rends := testPool(4, nil)
	inst, err := pl.Create("faceted", nil, "", nil)
	require.NoError(t, err)

	ok := pl.UpdateInstanceParams(inst.ID, map[string]float32{"hue": 0.5})
	assert.True(t, ok)
	assert.Equal(t, float32(0.5), (*rends)[0].params["hue"])

	assert.False(t, pl.UpdateInstanceParams(999, map[string]float32{"hue": 1}))

	(*rends)[0].setErr = errors.New("push failed")
	assert.False(t, pl.UpdateInstanceParams(inst.ID, map[string]float32{"hue": 1}))
}

func TestUpdateAllParamsPartialFailure(t *testing.T) {
	pl, rends := testPool(4, nil)
	for i := 0; i < 3; i++ {
		_, err := pl.Create("faceted", nil, "", nil)
		require.NoError(t, err)
	}
	(*rends)[1].setErr = errors.New("push failed")

	n := pl.UpdateAllParams(map[string]float32{"hue": 0.25})
	assert.Equal(t, 2, n)
	assert.Equal(t, float32(0.25), (*rends)[0].params["hue"])
	assert.Equal(t, float32(0.25), (*rends)[2].params["hue"])
}

func TestSetGeometryAll(t *testing.T) {
	pl, rends := testPool(4, nil)
	for i := 0; i < 2; i++ {
		_, err := pl.Create("holographic", nil, "", nil)
		require.NoError(t, err)
	}
	ds, err := shape.NewCache().Geometry("hypercube", shape.Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, pl.SetGeometryAll(ds))
	assert.Same(t, ds, (*rends)[0].geom)
	assert.Same(t, ds, (*rends)[1].geom)
}

func TestGetStats(t *testing.T) {
	pl, _ := testPool(10, nil)
	for i := 0; i < 3; i++ {
		_, err := pl.Create("faceted", nil, "", nil)
		require.NoError(t, err)
	}
	_, err := pl.Create("holographic", nil, "", nil)
	require.NoError(t, err)
	pl.Destroy(0)

	st := pl.GetStats()
	assert.Equal(t, 3, st.Live)
	assert.Equal(t, 10, st.Capacity)
	assert.Equal(t, 2, st.ByType["faceted"])
	assert.Equal(t, 1, st.ByType["holographic"])
	assert.Equal(t, 4, st.Created)
	assert.Equal(t, 1, st.Destroyed)
	assert.Equal(t, Usage{Shaders: 2*2 + 5, Textures: 2*1 + 4, Buffers: 2*3 + 8}, st.Usage)
}
