// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine ties the coordination core together: one parameter
// authority, one instance pool, and one geometry cache, driven by the
// host's render-clock tick. The engine subscribes to the authority
// itself so that discrete geometry parameter changes switch the active
// shape for all instances.
package engine

import (
	"time"

	"github.com/vizcore/vizcore/base/logx"
	"github.com/vizcore/vizcore/params"
	"github.com/vizcore/vizcore/pool"
	"github.com/vizcore/vizcore/shape"
)

// Engine is the integrated coordination core.
type Engine struct {

	// Config the engine was constructed with.
	Config *Config

	// Params is the single parameter authority.
	Params *params.Authority

	// Pool is the bounded instance pool.
	Pool *pool.Pool

	// Shapes is the geometry cache.
	Shapes *shape.Cache

	// current is the active dataset assigned to instances.
	current *shape.Dataset
}

// New returns an engine wired from the given config and renderer
// builder. The engine registers itself with the authority under the
// "engine" id so geometry parameter changes drive shape switching.
func New(cf *Config, build pool.Builder) *Engine {
	if cf == nil {
		cf = &Config{}
		cf.Defaults()
	}
	eg := &Engine{Config: cf}
	eg.Params = params.New(cf.QueueSize, time.Now())
	eg.Pool = pool.NewPool(cf.Capacity, build, eg.Params)
	eg.Shapes = shape.NewCache()
	eg.Shapes.Caching = cf.Caching
	eg.Shapes.Morphing = cf.Morphing
	eg.Params.Register("engine", "coordinator", eg.paramChanged)
	eg.ApplyConfig(cf)
	return eg
}

// Tick drives one render-clock tick: the authority drains its pending
// queue and fans out diffs. It returns the number of updates applied.
func (eg *Engine) Tick(now time.Time) int {
	return eg.Params.Drain(now)
}

// Current returns the active dataset, if any.
func (eg *Engine) Current() *shape.Dataset {
	return eg.current
}

// SetShape resolves the named shape at the current grid density and
// assigns the dataset to every active instance.
func (eg *Engine) SetShape(name string) error {
	ds, err := eg.Shapes.Geometry(name, eg.geomOptions())
	if err != nil {
		return err
	}
	eg.assign(ds)
	return nil
}

// SetShapeIndex is [Engine.SetShape] keyed by stable shape index.
func (eg *Engine) SetShapeIndex(idx int) error {
	ds, err := eg.Shapes.GeometryIndex(idx, eg.geomOptions())
	if err != nil {
		return err
	}
	eg.assign(ds)
	return nil
}

// MorphTo assigns a morph between the current dataset and the named
// target at progress t to every active instance. With no current
// dataset it is a plain switch to the target.
func (eg *Engine) MorphTo(name string, t float32) error {
	target, err := eg.Shapes.Geometry(name, eg.geomOptions())
	if err != nil {
		return err
	}
	if eg.current == nil {
		eg.assign(target)
		return nil
	}
	eg.assign(eg.Shapes.Morph(eg.current, target, t))
	return nil
}

// ApplyConfig applies the given config's parameter overrides through
// normal validated writes and updates cache toggles. Pool capacity is
// fixed at construction and is not changed by reloads.
func (eg *Engine) ApplyConfig(cf *Config) {
	eg.Shapes.Caching = cf.Caching
	eg.Shapes.Morphing = cf.Morphing
	for name, v := range cf.Params {
		if err := eg.Params.SetParam(name, v, "config"); err != nil {
			logx.PrintWarn("engine: config override rejected: %v", err)
		}
	}
}

// Watch watches the given config file and re-applies its overrides and
// toggles on every change, through the same validated writes as
// [Engine.ApplyConfig]. The returned function stops the watch.
func (eg *Engine) Watch(filename string) (stop func(), err error) {
	return WatchConfig(filename, eg.ApplyConfig)
}

// assign records and fans out a dataset.
func (eg *Engine) assign(ds *shape.Dataset) {
	eg.current = ds
	n := eg.Pool.SetGeometryAll(ds)
	logx.PrintDebug("engine: assigned %s geometry to %d instances", ds.Meta.Type, n)
}

// geomOptions derives generation options from the current parameters.
func (eg *Engine) geomOptions() shape.Options {
	o := shape.Options{}
	if d, ok := eg.Params.Param("gridDensity"); ok {
		o.Density = int(d)
	}
	return o
}

// paramChanged reacts to authority fan-out: geometry index changes
// switch the active shape.
func (eg *Engine) paramChanged(name string, value float32) {
	if name != "geometry" {
		return
	}
	if err := eg.SetShapeIndex(int(value)); err != nil {
		logx.PrintWarn("engine: shape switch failed: %v", err)
	}
}
