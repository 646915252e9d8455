// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

// DefaultQueueSize is the default capacity of the pending update queue.
const DefaultQueueSize = 128

// Queue is an explicit bounded FIFO ring buffer of pending updates.
//
// Overflow is lossy and favors recency over completeness: when the
// buffer is full, Add evicts the oldest half of the queue before
// appending. Eviction drops oldest entries regardless of name, so
// last-write-wins is NOT guaranteed across different parameter names
// under overflow.
type Queue struct {
	buf  []Update
	head int
	n    int
}

// NewQueue returns a queue with the given capacity; capacities below 2
// are raised to 2 so eviction always frees at least one slot.
func NewQueue(capacity int) *Queue {
	if capacity < 2 {
		capacity = 2
	}
	return &Queue{buf: make([]Update, capacity)}
}

// Len returns the number of pending updates.
func (q *Queue) Len() int { return q.n }

// Cap returns the capacity of the queue.
func (q *Queue) Cap() int { return len(q.buf) }

// Add appends an update, evicting the oldest half first if full.
// It reports how many entries were evicted.
func (q *Queue) Add(u Update) int {
	evicted := 0
	if q.n == len(q.buf) {
		evicted = max(1, q.n/2)
		q.head = (q.head + evicted) % len(q.buf)
		q.n -= evicted
	}
	q.buf[(q.head+q.n)%len(q.buf)] = u
	q.n++
	return evicted
}

// PopFront removes and returns the oldest pending update.
func (q *Queue) PopFront() (Update, bool) {
	if q.n == 0 {
		return Update{}, false
	}
	u := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return u, true
}
