// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"strconv"

	"github.com/vizcore/vizcore/base/ordmap"
)

// Cache generates and memoizes geometry datasets. The cache key is a
// deterministic serialization of the resolved shape name and the
// generation options, so identical requests return the identical shared
// dataset. Returned datasets must never be mutated in place.
//
// Concurrent requests for different keys are independently safe under
// the engine's single-writer-per-tick discipline; requests for the same
// uncached key are not collapsed into one generation (an accepted
// hardening gap, not a contract).
type Cache struct {

	// Caching enables memoization. When false every request generates.
	Caching bool

	// Morphing enables blended morph output; when false [Cache.Morph]
	// degenerates to a hard switch.
	Morphing bool

	entries     *ordmap.Map[string, *Dataset]
	generations int
}

// NewCache returns a new cache with caching and morphing enabled.
func NewCache() *Cache {
	return &Cache{
		Caching:  true,
		Morphing: true,
		entries:  ordmap.New[string, *Dataset](),
	}
}

// Stats reports cache diagnostics.
type Stats struct {

	// Entries is the number of cached datasets.
	Entries int

	// Shapes is the number of registered shape descriptors.
	Shapes int

	// Bytes is the estimated byte footprint of all cached buffers.
	Bytes int

	// Generations counts generator invocations since construction.
	Generations int
}

// Geometry returns the dataset for the named shape with the given
// options, generating it on first request and serving the cached
// dataset afterwards. It fails with [ErrUnknownShape] for unregistered
// names; validate against [Shapes] first.
func (c *Cache) Geometry(name string, o Options) (*Dataset, error) {
	d, err := DescriptorByName(name)
	if err != nil {
		return nil, err
	}
	return c.dataset(d, o)
}

// GeometryIndex is [Cache.Geometry] keyed by the stable shape index.
func (c *Cache) GeometryIndex(idx int, o Options) (*Dataset, error) {
	d, err := DescriptorByIndex(idx)
	if err != nil {
		return nil, err
	}
	return c.dataset(d, o)
}

// dataset resolves options, consults the store, and generates on miss.
func (c *Cache) dataset(d *Descriptor, o Options) (*Dataset, error) {
	density, x, err := o.resolve(d)
	if err != nil {
		return nil, err
	}
	key := cacheKey(d, density, x)
	if c.Caching {
		c.init()
		if ds, ok := c.entries.ValueByKey(key); ok {
			return ds, nil
		}
	}
	ds := d.generate(density, x)
	c.generations++
	if c.Caching {
		c.entries.Add(key, ds)
	}
	return ds, nil
}

// cacheKey builds the canonical cache key from the resolved name,
// density, and resolved extras. Extras serialize their own fields in
// fixed declaration order, so semantically identical option sets always
// produce one key.
func cacheKey(d *Descriptor, density int, x Extra) string {
	return d.Name + "|d=" + strconv.Itoa(density) + "|" + x.CacheKey()
}

// init ensures the entry store is constructed, so the zero value of
// Cache is usable.
func (c *Cache) init() {
	if c.entries == nil {
		c.entries = ordmap.New[string, *Dataset]()
	}
}

// Clear empties the cache store.
func (c *Cache) Clear() {
	c.init()
	c.entries.Reset()
}

// GetStats reports entry count, registered shape count, estimated byte
// footprint, and the number of generator invocations.
func (c *Cache) GetStats() Stats {
	c.init()
	st := Stats{
		Entries:     c.entries.Len(),
		Shapes:      len(byIndex),
		Generations: c.generations,
	}
	for _, kv := range c.entries.Order {
		st.Bytes += kv.Value.Bytes()
	}
	return st
}
