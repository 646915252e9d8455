// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pool

import (
	"time"

	baseerrors "github.com/vizcore/vizcore/base/errors"
	"github.com/vizcore/vizcore/shape"
)

// UpdateInstanceParams pushes parameter values directly to one
// instance's renderer, bypassing the authority for pool-local tuning.
// It reports whether the instance exists and the push succeeded.
func (pl *Pool) UpdateInstanceParams(id int, vals map[string]float32) bool {
	pl.Lock()
	inst, ok := pl.instances[id]
	pl.Unlock()
	if !ok {
		return false
	}
	if baseerrors.Log(inst.Renderer.SetParams(vals)) != nil {
		return false
	}
	inst.LastUpdate = time.Now()
	return true
}

// UpdateAllParams applies the given values to every active instance
// and returns the success count. This operation is NOT atomic across
// instances: partial failure is expected and callers must tolerate it.
func (pl *Pool) UpdateAllParams(vals map[string]float32) int {
	pl.Lock()
	insts := make([]*Instance, 0, len(pl.instances))
	for _, inst := range pl.instances {
		insts = append(insts, inst)
	}
	pl.Unlock()
	n := 0
	for _, inst := range insts {
		if baseerrors.Log(inst.Renderer.SetParams(vals)) == nil {
			inst.LastUpdate = time.Now()
			n++
		}
	}
	return n
}

// SetGeometryAll assigns the given shared dataset to every active
// instance and returns the success count; like parameter fan-out, this
// is not atomic across instances.
func (pl *Pool) SetGeometryAll(ds *shape.Dataset) int {
	pl.Lock()
	insts := make([]*Instance, 0, len(pl.instances))
	for _, inst := range pl.instances {
		insts = append(insts, inst)
	}
	pl.Unlock()
	n := 0
	for _, inst := range insts {
		if baseerrors.Log(inst.Renderer.SetGeometry(ds)) == nil {
			inst.LastUpdate = time.Now()
			n++
		}
	}
	return n
}

// Stats is a point-in-time diagnostic snapshot, for status reporting
// only.
type Stats struct {

	// Live is the current live instance count; Capacity the limit.
	Live     int
	Capacity int

	// ByType is the live count per registered type.
	ByType map[string]int

	// Created and Destroyed are lifetime totals across all types.
	Created   int
	Destroyed int

	// Pending is the number of instances awaiting context recovery.
	Pending int

	// Usage is the aggregate estimated resource usage.
	Usage Usage
}

// GetStats returns a diagnostic snapshot of the pool.
func (pl *Pool) GetStats() Stats {
	pl.Lock()
	defer pl.Unlock()
	st := Stats{
		Live:     len(pl.instances),
		Capacity: pl.Capacity,
		ByType:   make(map[string]int, pl.types.Len()),
		Pending:  len(pl.pending),
	}
	for _, kv := range pl.types.Order {
		ti := kv.Value
		st.ByType[ti.Name] = len(ti.live)
		st.Created += ti.Created
		st.Destroyed += ti.Destroyed
	}
	for _, inst := range pl.instances {
		st.Usage.Add(inst.Usage)
	}
	return st
}
