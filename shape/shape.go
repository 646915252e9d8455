// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates, caches, and morphs the procedural geometry
// datasets used by rendering instances. It holds a fixed registry of 8
// shape descriptors, each with a pure, deterministic generator: for a
// fixed (shape, options) pair the output is exactly reproducible, which
// is what makes caching sound.
//
// Datasets are line geometries: a flat point buffer (Dims floats per
// point), a per-point attribute buffer ([AttrDims] floats per point),
// and a connection buffer of point-index pairs.
package shape

import (
	"errors"
	"fmt"
)

// AttrDims is the number of attribute floats stored per point. The two
// attribute channels carry shape-specific derived values, typically the
// parametric coordinate and a radial or depth measure, which renderers
// use for coloring and line weighting.
const AttrDims = 2

// DefaultDensity is the generation density used when options specify none.
const DefaultDensity = 8

// ErrUnknownShape is returned when a name or index resolves to no
// registered shape descriptor. Validate against [Shapes] first to
// avoid it.
var ErrUnknownShape = errors.New("shape: unknown geometry type")

// ErrOptionsMismatch is returned when generation options declared for
// one shape kind are passed to a different shape.
var ErrOptionsMismatch = errors.New("shape: options are for a different shape")

// Properties are the declared static properties of a shape descriptor.
type Properties struct {

	// Parametric indicates the shape is generated by a parametric
	// angle or grid sweep.
	Parametric bool

	// Closed indicates the connection graph wraps around with no
	// boundary points.
	Closed bool

	// Recursive indicates the shape is built by recursive subdivision
	// or branching.
	Recursive bool

	// Lattice indicates points lie on an integer lattice.
	Lattice bool
}

// Meta is the metadata tagged onto every generated [Dataset].
type Meta struct {

	// Type is the registry name of the generating shape.
	Type string

	// Index is the stable registry index of the generating shape.
	Index int

	// Dims is the number of coordinate floats per point (3 or 4).
	Dims int

	// Props are the declared properties of the generating shape.
	Props Properties

	// MorphFrom and MorphTo are the source and destination type names
	// for morphed datasets, empty otherwise.
	MorphFrom string
	MorphTo   string

	// MorphT is the morph progress for morphed datasets.
	MorphT float32
}

// Dataset is one generated geometry dataset. Datasets returned from a
// [Cache] are shared: callers must treat them as immutable and never
// mutate the buffers in place.
type Dataset struct {

	// Points is the flat coordinate buffer, Meta.Dims floats per point.
	Points ArrayF32

	// Attrs is the flat attribute buffer, [AttrDims] floats per point.
	Attrs ArrayF32

	// Conns is the connection buffer: pairs of point indices forming
	// line segments. Every index is a valid point index.
	Conns ArrayU32

	// Meta tags the dataset with its generating shape and morph state.
	Meta Meta
}

// NumPoints returns the number of points in the dataset.
func (ds *Dataset) NumPoints() int {
	return len(ds.Points) / ds.Meta.Dims
}

// NumConns returns the number of connections (index pairs).
func (ds *Dataset) NumConns() int {
	return len(ds.Conns) / 2
}

// Bytes returns the total byte size of the dataset buffers.
func (ds *Dataset) Bytes() int {
	return 4 * (len(ds.Points) + len(ds.Attrs) + len(ds.Conns))
}

// Descriptor is one static registry entry describing a procedural shape
// generator. Descriptors are created once at startup and are immutable.
type Descriptor struct {

	// Index is the stable integer index of the shape.
	Index int

	// Name is the registry name of the shape.
	Name string

	// Desc describes the shape for listings.
	Desc string

	// Dims is the number of coordinate floats per generated point.
	Dims int

	// Props are the declared static properties.
	Props Properties

	// defaultExtra returns the default shape-specific options.
	defaultExtra func() Extra

	// generate runs the pure generator at the given density with the
	// given (already resolved) shape-specific options.
	generate func(density int, x Extra) *Dataset
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("%d: %s (%dD) %s", d.Index, d.Name, d.Dims, d.Desc)
}

// newDataset allocates the buffers for a dataset of the given descriptor
// with numPoint points and numConn connections, with metadata tagged.
func (d *Descriptor) newDataset(numPoint, numConn int) *Dataset {
	return &Dataset{
		Points: NewArrayF32(numPoint * d.Dims),
		Attrs:  NewArrayF32(numPoint * AttrDims),
		Conns:  NewArrayU32(numConn * 2),
		Meta:   Meta{Type: d.Name, Index: d.Index, Dims: d.Dims, Props: d.Props},
	}
}
