// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pool owns the lifecycle of renderable instances sharing a
// bounded drawable resource pool: creation, recycling when at
// capacity, destruction, and loss/recovery of drawable contexts.
// Instances register with the parameter authority for synchronized
// fan-out and receive geometry datasets assigned by the coordinator.
package pool

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	baseerrors "github.com/vizcore/vizcore/base/errors"
	"github.com/vizcore/vizcore/base/ordmap"
	"github.com/vizcore/vizcore/params"
)

// DefaultCapacity is the default hard limit on live instances.
const DefaultCapacity = 20

// ErrUnknownType is returned when creating an instance of an
// unregistered visualizer type.
var ErrUnknownType = errors.New("pool: unknown visualizer type")

// ErrPoolExhausted is returned when the pool is at capacity and no
// same-type instance is available to recycle.
var ErrPoolExhausted = errors.New("pool: at capacity with no recyclable instance")

// ErrResourceRelease tags drawable release failures; these are logged
// and swallowed, never escalated past the pool boundary.
var ErrResourceRelease = errors.New("pool: resource release failed")

// TypeInfo is one registered visualizer type.
type TypeInfo struct {

	// Name is the type name instances are created under.
	Name string

	// DefaultRole is used when Create is called with an empty role.
	DefaultRole string

	// Usage is the estimated per-instance resource usage.
	Usage Usage

	// Created and Destroyed count instances over the pool lifetime.
	Created   int
	Destroyed int

	live map[int]*Instance
}

// Pool manages the bounded set of live instances. The mutex guards all
// tables because context-loss recovery runs concurrently with normal
// tick processing; everything else follows the engine's single-writer
// discipline.
type Pool struct {

	// Capacity is the hard limit on live instances; the live count
	// never exceeds it.
	Capacity int

	// Build constructs backing renderers; required.
	Build Builder

	// Params is the authority instances register with; may be nil for
	// standalone pools.
	Params *params.Authority

	// OnCreated and OnDestroyed, if set, are signaled after an
	// instance is created or destroyed.
	OnCreated   func(*Instance)
	OnDestroyed func(*Instance)

	types     *ordmap.Map[string, *TypeInfo]
	instances map[int]*Instance
	nextID    int
	pending   map[int]*pendingRecovery

	sync.Mutex
}

// NewPool returns a pool with the given capacity (zero means
// [DefaultCapacity]), renderer builder, and parameter authority.
func NewPool(capacity int, build Builder, auth *params.Authority) *Pool {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Pool{
		Capacity:  capacity,
		Build:     build,
		Params:    auth,
		types:     ordmap.New[string, *TypeInfo](),
		instances: make(map[int]*Instance),
		pending:   make(map[int]*pendingRecovery),
	}
}

// RegisterType declares a visualizer type with its default role and
// estimated per-instance resource usage.
func (pl *Pool) RegisterType(name, defaultRole string, usage Usage) {
	pl.Lock()
	defer pl.Unlock()
	pl.types.Add(name, &TypeInfo{
		Name:        name,
		DefaultRole: defaultRole,
		Usage:       usage,
		live:        make(map[int]*Instance),
	})
}

// Types returns the registered type names in registration order.
func (pl *Pool) Types() []string {
	pl.Lock()
	defer pl.Unlock()
	return pl.types.Keys()
}

// CreateOptions are optional per-instance creation settings.
type CreateOptions struct {

	// Params are instance-local parameter overrides, pushed directly to
	// the renderer after the full registration sync.
	Params map[string]float32
}

// Create creates a live instance of the given registered type bound to
// the given drawable resource. An empty role takes the type's default
// and a nil opts means no per-instance overrides.
//
// At capacity, the least-recently-updated live instance of the SAME
// type is recycled first (ties broken by earliest creation time); if
// no same-type candidate exists, Create fails with [ErrPoolExhausted].
// The new instance registers with the parameter authority only after
// renderer construction completes, so it never receives partial
// parameter pushes; registration triggers a full initial sync.
func (pl *Pool) Create(typ string, resource any, role string, opts *CreateOptions) (*Instance, error) {
	pl.Lock()
	defer pl.Unlock()

	ti, ok := pl.types.ValueByKey(typ)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typ)
	}
	if role == "" {
		role = ti.DefaultRole
	}
	if len(pl.instances) >= pl.Capacity {
		victim := recycleCandidate(ti)
		if victim == nil {
			return nil, fmt.Errorf("%w: capacity %d, type %q", ErrPoolExhausted, pl.Capacity, typ)
		}
		pl.destroyLocked(victim)
	}

	id := pl.nextID
	pl.nextID++
	rend, err := pl.Build(typ, role, id, resource)
	if err != nil {
		return nil, fmt.Errorf("pool: building %q instance %d: %w", typ, id, err)
	}
	now := time.Now()
	inst := &Instance{
		ID:         id,
		Type:       typ,
		Role:       role,
		Resource:   resource,
		Renderer:   rend,
		CreatedAt:  now,
		LastUpdate: now,
		Active:     true,
		Usage:      ti.Usage,
	}
	pl.instances[id] = inst
	ti.live[id] = inst
	ti.Created++

	if pl.Params != nil {
		pl.Params.Register(subscriberID(id), role, func(name string, value float32) {
			baseerrors.Log(rend.SetParams(map[string]float32{name: value}))
			inst.LastUpdate = time.Now()
		})
	}
	if opts != nil && len(opts.Params) > 0 {
		baseerrors.Log(rend.SetParams(opts.Params))
	}
	if pl.OnCreated != nil {
		pl.OnCreated(inst)
	}
	return inst, nil
}

// Destroy destroys the instance with the given id, releasing its
// drawable resources. Destroying an absent id is an idempotent no-op
// success. Internal failures, including release failures on already-
// invalid resources, are caught and logged, never thrown past this
// boundary; the boolean result is best effort.
func (pl *Pool) Destroy(id int) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			baseerrors.Log(fmt.Errorf("pool: destroy %d panicked: %v", id, r))
			ok = false
		}
	}()
	pl.Lock()
	defer pl.Unlock()
	inst, has := pl.instances[id]
	if !has {
		return true
	}
	pl.destroyLocked(inst)
	return true
}

// destroyLocked does the destroy bookkeeping; callers hold the mutex.
func (pl *Pool) destroyLocked(inst *Instance) {
	if err := inst.Renderer.Destroy(); err != nil {
		baseerrors.Log(fmt.Errorf("%w: instance %d: %v", ErrResourceRelease, inst.ID, err))
	}
	if pl.Params != nil {
		pl.Params.Unregister(subscriberID(inst.ID))
	}
	inst.Active = false
	delete(pl.instances, inst.ID)
	delete(pl.pending, inst.ID)
	if ti, ok := pl.types.ValueByKey(inst.Type); ok {
		delete(ti.live, inst.ID)
		ti.Destroyed++
	}
	if pl.OnDestroyed != nil {
		pl.OnDestroyed(inst)
	}
}

// recycleCandidate returns the least-recently-updated live instance of
// the given type, breaking ties by earliest creation time, or nil.
func recycleCandidate(ti *TypeInfo) *Instance {
	var victim *Instance
	for _, inst := range ti.live {
		if victim == nil {
			victim = inst
			continue
		}
		if inst.LastUpdate.Before(victim.LastUpdate) ||
			(inst.LastUpdate.Equal(victim.LastUpdate) && inst.CreatedAt.Before(victim.CreatedAt)) {
			victim = inst
		}
	}
	return victim
}

// Instance returns the live instance with the given id.
func (pl *Pool) Instance(id int) (*Instance, bool) {
	pl.Lock()
	defer pl.Unlock()
	inst, ok := pl.instances[id]
	return inst, ok
}

// NumLive returns the number of live instances.
func (pl *Pool) NumLive() int {
	pl.Lock()
	defer pl.Unlock()
	return len(pl.instances)
}

// subscriberID is the authority subscriber id for a pool instance.
func subscriberID(id int) string {
	return "instance-" + strconv.Itoa(id)
}
