// SPDX-License-Identifier: MIT
// Package integrate: priority structure of the adaptive engine.
//
// intervalHeap is an array-backed binary max-heap keyed by the local error
// estimate. Sift-up/sift-down are iterative, so stack depth does not depend
// on the subdivision budget. Equal errors are ordered by insertion sequence
// (older first), which keeps pop order reproducible.

package integrate

// interval is one subdivision unit: [a,b] with a < b and its local estimates.
type interval struct {
	a, b     float64
	integral float64
	err      float64
	seq      uint64
}

type intervalHeap struct {
	items []interval
	next  uint64
}

// newIntervalHeap preallocates room for capacity intervals.
func newIntervalHeap(capacity int) *intervalHeap {
	if capacity < 1 {
		capacity = 1
	}

	return &intervalHeap{items: make([]interval, 0, capacity)}
}

// len returns the number of queued intervals.
func (h *intervalHeap) len() int { return len(h.items) }

// push inserts iv, stamping its insertion sequence.
func (h *intervalHeap) push(iv interval) {
	iv.seq = h.next
	h.next++
	h.items = append(h.items, iv)
	h.siftUp(len(h.items) - 1)
}

// peek returns the interval with the largest error without removing it.
func (h *intervalHeap) peek() (interval, bool) {
	if len(h.items) == 0 {
		return interval{}, false
	}

	return h.items[0], true
}

// pop removes and returns the interval with the largest error.
func (h *intervalHeap) pop() (interval, bool) {
	n := len(h.items)
	if n == 0 {
		return interval{}, false
	}
	top := h.items[0]
	h.items[0] = h.items[n-1]
	h.items = h.items[:n-1]
	if n > 1 {
		h.siftDown(0)
	}

	return top, true
}

// before reports whether item i must be popped before item j.
func (h *intervalHeap) before(i, j int) bool {
	x, y := &h.items[i], &h.items[j]
	if x.err != y.err {
		return x.err > y.err
	}

	return x.seq < y.seq
}

func (h *intervalHeap) siftUp(i int) {
	var parent int
	for i > 0 {
		parent = (i - 1) / 2
		if !h.before(i, parent) {
			return
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *intervalHeap) siftDown(i int) {
	var (
		n           = len(h.items)
		left, right int
		best        int
	)
	for {
		left = 2*i + 1
		if left >= n {
			return
		}
		best = left
		if right = left + 1; right < n && h.before(right, left) {
			best = right
		}
		if !h.before(best, i) {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
