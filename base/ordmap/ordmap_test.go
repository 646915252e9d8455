// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdMap(t *testing.T) {
	om := New[string, int]()
	om.Add("one", 1)
	om.Add("two", 2)
	om.Add("three", 3)

	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []string{"one", "two", "three"}, om.Keys())
	assert.Equal(t, []int{1, 2, 3}, om.Values())

	v, ok := om.ValueByKey("two")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = om.ValueByKey("four")
	assert.False(t, ok)
	assert.Equal(t, -1, om.IndexByKey("four"))

	// replace keeps position
	om.Add("two", 22)
	assert.Equal(t, 3, om.Len())
	assert.Equal(t, 1, om.IndexByKey("two"))

	assert.True(t, om.DeleteKey("one"))
	assert.False(t, om.DeleteKey("one"))
	assert.Equal(t, []string{"two", "three"}, om.Keys())
	assert.Equal(t, 0, om.IndexByKey("two"))
	assert.Equal(t, 1, om.IndexByKey("three"))

	om.Reset()
	assert.Equal(t, 0, om.Len())
	om.Add("again", 9)
	assert.Equal(t, 1, om.Len())
}
