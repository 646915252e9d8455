// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements an ordered map that retains the order in which
// items were added, while providing fast key-based lookup. The slice holds
// the key-value pairs in insertion order and the map holds the index of
// each key into that slice. Adding and lookup are fast; deletion is slower
// because the index map must be rebuilt for shifted entries.
package ordmap

import "slices"

// KeyValue represents one key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a generic insertion-ordered map.
type Map[K comparable, V any] struct {

	// Order is the ordered list of key-value pairs, in the order added.
	Order []KeyValue[K, V]

	// indexes is the key to Order-index mapping.
	indexes map[K]int
}

// New returns a new ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{indexes: make(map[K]int)}
}

// Init ensures that the index map is constructed.
func (om *Map[K, V]) Init() {
	if om.indexes == nil {
		om.indexes = make(map[K]int)
	}
}

// Reset removes all elements.
func (om *Map[K, V]) Reset() {
	om.Order = nil
	om.indexes = nil
}

// Add adds a value for the given key, replacing any existing value at
// that key while keeping its original position.
func (om *Map[K, V]) Add(key K, val V) {
	om.Init()
	if idx, has := om.indexes[key]; has {
		om.Order[idx] = KeyValue[K, V]{Key: key, Value: val}
		return
	}
	om.indexes[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
}

// ValueByKey returns the value for the given key, and whether it was found.
func (om *Map[K, V]) ValueByKey(key K) (V, bool) {
	if idx, has := om.indexes[key]; has {
		return om.Order[idx].Value, true
	}
	var zv V
	return zv, false
}

// IndexByKey returns the insertion index for the given key, or -1.
func (om *Map[K, V]) IndexByKey(key K) int {
	if idx, has := om.indexes[key]; has {
		return idx
	}
	return -1
}

// DeleteKey removes the given key, reporting whether it was present.
func (om *Map[K, V]) DeleteKey(key K) bool {
	idx, has := om.indexes[key]
	if !has {
		return false
	}
	om.Order = slices.Delete(om.Order, idx, idx+1)
	delete(om.indexes, key)
	for i := idx; i < len(om.Order); i++ {
		om.indexes[om.Order[i].Key] = i
	}
	return true
}

// Len returns the number of elements.
func (om *Map[K, V]) Len() int {
	return len(om.Order)
}

// Keys returns the keys in insertion order.
func (om *Map[K, V]) Keys() []K {
	ks := make([]K, len(om.Order))
	for i, kv := range om.Order {
		ks[i] = kv.Key
	}
	return ks
}

// Values returns the values in insertion order.
func (om *Map[K, V]) Values() []V {
	vs := make([]V, len(om.Order))
	for i, kv := range om.Order {
		vs[i] = kv.Value
	}
	return vs
}
