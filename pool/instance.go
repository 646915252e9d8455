// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pool

import (
	"time"

	"github.com/vizcore/vizcore/shape"
)

// Renderer is the hook surface of the external renderer construction
// collaborator. The pool never renders itself: it owns lifecycle and
// bookkeeping and calls through these hooks.
type Renderer interface {

	// Render draws one frame.
	Render()

	// SetParams pushes parameter values to the renderer.
	SetParams(vals map[string]float32) error

	// SetGeometry assigns a geometry dataset. The dataset is shared
	// and must not be mutated.
	SetGeometry(ds *shape.Dataset) error

	// RestoreContext re-creates drawable resources after a context
	// loss. It may suspend; the pool bounds retries, not duration.
	RestoreContext() error

	// Destroy releases the underlying drawable resources. It must
	// tolerate the resources already being invalid.
	Destroy() error
}

// Builder constructs the backing renderer for a new instance. It is
// provided by the embedding host and may suspend internally; the
// instance becomes eligible for parameter fan-out only after Builder
// returns.
type Builder func(typ, role string, id int, resource any) (Renderer, error)

// Usage is an approximate count of drawable resources, maintained for
// status reporting only; it never gates correctness decisions.
type Usage struct {
	Shaders  int
	Textures int
	Buffers  int
}

// Add accumulates the other usage into this one.
func (u *Usage) Add(o Usage) {
	u.Shaders += o.Shaders
	u.Textures += o.Textures
	u.Buffers += o.Buffers
}

// Instance is one live renderable bound to a drawable resource.
type Instance struct {

	// ID is monotonically unique across the pool lifetime; ids are
	// never reused, including after recycling.
	ID int

	// Type is the registered visualizer type name.
	Type string

	// Role describes what the instance is used for (background,
	// content, highlight).
	Role string

	// Resource is the opaque drawable resource handle the renderer
	// was constructed on.
	Resource any

	// Renderer is the constructed renderer collaborator.
	Renderer Renderer

	// CreatedAt is the construction time; LastUpdate is the last time
	// parameters or geometry were pushed. Recycling picks the least-
	// recently-updated instance, breaking ties by earliest CreatedAt.
	CreatedAt  time.Time
	LastUpdate time.Time

	// Active is false once the instance is destroyed.
	Active bool

	// Usage is the estimated resource usage of this instance.
	Usage Usage
}
