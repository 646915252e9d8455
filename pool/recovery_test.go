// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pool

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextLostMarksAllActive(t *testing.T) {
	pl, _ := testPool(8, nil)
	for i := 0; i < 3; i++ {
		_, err := pl.Create("faceted", nil, "", nil)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, pl.NumPending())

	pl.ContextLost()
	assert.Equal(t, 3, pl.NumPending())
	assert.Equal(t, 3, pl.GetStats().Pending)
}

func TestContextRestoredRecoversAll(t *testing.T) {
	pl, rends := testPool(8, nil)
	for i := 0; i < 3; i++ {
		_, err := pl.Create("faceted", nil, "", nil)
		require.NoError(t, err)
	}
	pl.ContextLost()

	n := pl.ContextRestored()
	assert.Equal(t, 3, n)
	assert.Equal(t, 0, pl.NumPending())
	for _, r := range *rends {
		assert.Equal(t, 1, r.restores)
	}
}

func TestContextRestoredBoundedRetries(t *testing.T) {
	pl, rends := testPool(8, nil)
	inst, err := pl.Create("faceted", nil, "", nil)
	require.NoError(t, err)
	(*rends)[0].restoreErr = errors.New("driver still gone")
	pl.ContextLost()

	// the hook always fails: exactly the budget is spent, never a
	// 4th attempt within the same event, and the instance stays
	// pending
	n := pl.ContextRestored()
	assert.Equal(t, 0, n)
	assert.Equal(t, MaxRestoreAttempts, (*rends)[0].restores)
	assert.Equal(t, 1, pl.NumPending())

	// a later restore signal re-attempts under the same budget
	n = pl.ContextRestored()
	assert.Equal(t, 0, n)
	assert.Equal(t, 2*MaxRestoreAttempts, (*rends)[0].restores)
	assert.Equal(t, 1, pl.NumPending())

	// once restoration can succeed, the instance leaves the pending
	// set on the first attempt of the next event
	(*rends)[0].restoreErr = nil
	n = pl.ContextRestored()
	assert.Equal(t, 1, n)
	assert.Equal(t, 2*MaxRestoreAttempts+1, (*rends)[0].restores)
	assert.Equal(t, 0, pl.NumPending())

	_, alive := pl.Instance(inst.ID)
	assert.True(t, alive)
}

func TestContextRestoredPartialRecovery(t *testing.T) {
	pl, rends := testPool(8, nil)
	for i := 0; i < 4; i++ {
		_, err := pl.Create("faceted", nil, "", nil)
		require.NoError(t, err)
	}
	(*rends)[1].restoreErr = errors.New("driver still gone")
	(*rends)[3].restoreErr = errors.New("driver still gone")
	pl.ContextLost()

	n := pl.ContextRestored()
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, pl.NumPending())
	assert.Equal(t, 1, (*rends)[0].restores)
	assert.Equal(t, MaxRestoreAttempts, (*rends)[1].restores)
}

func TestDestroyedInstanceLeavesPendingSet(t *testing.T) {
	pl, _ := testPool(8, nil)
	inst, err := pl.Create("faceted", nil, "", nil)
	require.NoError(t, err)
	pl.ContextLost()
	require.Equal(t, 1, pl.NumPending())

	pl.Destroy(inst.ID)
	assert.Equal(t, 0, pl.NumPending())
	assert.Equal(t, 0, pl.ContextRestored())
}

func TestContextRestoredEmptyPending(t *testing.T) {
	pl, _ := testPool(8, nil)
	_, err := pl.Create("faceted", nil, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, pl.ContextRestored())
}
