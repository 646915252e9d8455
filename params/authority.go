// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"fmt"
	"time"

	"github.com/vizcore/vizcore/base/logx"
	"github.com/vizcore/vizcore/base/ordmap"
)

// NotifyFunc receives one changed parameter value. Notification
// functions are closures with all context captured, registered per
// subscriber.
type NotifyFunc func(name string, value float32)

// Subscriber is one registered consumer of parameter state. Each
// subscriber keeps a last-sent cache per parameter, so fan-out is
// diff-suppressed per subscriber, not globally.
type Subscriber struct {
	ID           string
	Role         string
	Notify       NotifyFunc
	RegisteredAt time.Time

	lastSent map[string]float32
}

// Authority is the single source of truth for named tunable values.
// All writes go through [Authority.SetParam]; pending writes buffer in
// a bounded queue and are applied in FIFO order once per render-clock
// tick by [Authority.Drain]. The authority assumes single-writer-per-
// tick discipline and does no internal locking.
type Authority struct {
	values map[string]float32
	meta   *ordmap.Map[string, *Meta]
	queue  *Queue
	subs   map[string]*Subscriber
	start  time.Time
}

// New returns an authority with the standard parameter set registered
// at defaults and a pending queue of the given capacity (zero means
// [DefaultQueueSize]). The given start time is the monotonic offset
// the derived time parameter is computed from.
func New(queueSize int, start time.Time) *Authority {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	a := &Authority{
		values: make(map[string]float32),
		meta:   ordmap.New[string, *Meta](),
		queue:  NewQueue(queueSize),
		subs:   make(map[string]*Subscriber),
		start:  start,
	}
	for _, dm := range defaultMeta {
		m := dm.Meta
		a.meta.Add(dm.Name, &m)
		a.values[dm.Name] = m.Default
	}
	return a
}

// SetParam queues a validated write of the named parameter. The value
// is coerced to the declared kind and clamped to the declared range.
// Writing the current value is an idempotent no-op: success with no
// queued update and no notification. Unknown names fail with
// [ErrUnknownParameter] and invalid values with [ErrInvalidValue],
// both leaving all state unchanged. SetParam never panics across the
// component boundary.
func (a *Authority) SetParam(name string, value float64, source string) error {
	m, ok := a.meta.ValueByKey(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}
	v, ok := m.coerce(value)
	if !ok {
		return fmt.Errorf("%w: %q = %v", ErrInvalidValue, name, value)
	}
	if v == a.values[name] {
		return nil
	}
	evicted := a.queue.Add(Update{Name: name, Value: v, Source: source, At: time.Now()})
	if evicted > 0 {
		logx.PrintDebug("params: queue overflow, evicted %d oldest updates", evicted)
	}
	return nil
}

// Param returns the current authoritative value for the given name.
func (a *Authority) Param(name string) (float32, bool) {
	v, ok := a.values[name]
	return v, ok
}

// AllParams returns a copy of the full current parameter set.
func (a *Authority) AllParams() map[string]float32 {
	vals := make(map[string]float32, len(a.values))
	for n, v := range a.values {
		vals[n] = v
	}
	return vals
}

// Meta returns the declared metadata for the given name.
func (a *Authority) Meta(name string) (*Meta, bool) {
	return a.meta.ValueByKey(name)
}

// Names returns all parameter names in declaration order.
func (a *Authority) Names() []string {
	return a.meta.Keys()
}

// Drain applies every queued update in FIFO order, committing each
// old-to-new value atomically, then recomputes the derived time
// parameter from the monotonic start offset. Each applied change is
// pushed only to subscribers whose cached value for that name differs.
// Drain is invoked once per render-clock tick; it returns the number
// of updates applied.
func (a *Authority) Drain(now time.Time) int {
	applied := 0
	for {
		u, ok := a.queue.PopFront()
		if !ok {
			break
		}
		a.commit(u.Name, u.Value)
		applied++
	}
	t := float32(now.Sub(a.start).Seconds())
	if t != a.values[TimeParam] {
		a.commit(TimeParam, t)
	}
	return applied
}

// commit stores the value and fans it out with per-subscriber diff
// suppression.
func (a *Authority) commit(name string, v float32) {
	a.values[name] = v
	for _, sub := range a.subs {
		if last, sent := sub.lastSent[name]; sent && last == v {
			continue
		}
		sub.lastSent[name] = v
		sub.Notify(name, v)
	}
}

// Register creates a subscriber entry and immediately pushes the full
// current parameter set to it, so new subscribers always start fully
// synced, never partially. Registering an existing id replaces it and
// re-syncs in full.
func (a *Authority) Register(id, role string, notify NotifyFunc) *Subscriber {
	sub := &Subscriber{
		ID:           id,
		Role:         role,
		Notify:       notify,
		RegisteredAt: time.Now(),
		lastSent:     make(map[string]float32, a.meta.Len()),
	}
	a.subs[id] = sub
	for _, name := range a.meta.Keys() {
		v := a.values[name]
		sub.lastSent[name] = v
		sub.Notify(name, v)
	}
	return sub
}

// Unregister removes the subscriber with the given id. Removing an
// absent id is a no-op success.
func (a *Authority) Unregister(id string) {
	delete(a.subs, id)
}

// NumSubscribers returns the number of registered subscribers.
func (a *Authority) NumSubscribers() int {
	return len(a.subs)
}

// Pending returns the number of queued updates awaiting the next drain.
func (a *Authority) Pending() int {
	return a.queue.Len()
}
