// SPDX-License-Identifier: MIT
package integrate_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/scijo/integrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHeap_Empty verifies that pop/peek on an empty heap report !ok.
func TestHeap_Empty(t *testing.T) {
	h := integrate.NewHeap_TestOnly()
	_, _, _, ok := h.Pop()
	assert.False(t, ok)
	_, _, _, ok = h.Peek()
	assert.False(t, ok)
	assert.Zero(t, h.Len())
}

// TestHeap_MaxOrder pushes random errors and expects non-increasing pops.
func TestHeap_MaxOrder(t *testing.T) {
	h := integrate.NewHeap_TestOnly()
	rng := rand.New(rand.NewSource(1337))
	const n = 500
	for i := 0; i < n; i++ {
		h.Push(float64(i), float64(i+1), rng.Float64())
	}
	require.Equal(t, n, h.Len())

	_, _, top, ok := h.Peek()
	require.True(t, ok)
	prev := top
	for i := 0; i < n; i++ {
		_, _, e, ok := h.Pop()
		require.True(t, ok)
		assert.LessOrEqual(t, e, prev)
		prev = e
	}
	assert.Zero(t, h.Len())
}

// TestHeap_TiesPopInInsertionOrder verifies deterministic tie-breaking.
func TestHeap_TiesPopInInsertionOrder(t *testing.T) {
	h := integrate.NewHeap_TestOnly()
	h.Push(0, 1, 1)
	h.Push(1, 2, 5)
	h.Push(2, 3, 1)
	h.Push(3, 4, 5)
	h.Push(4, 5, 1)

	var got []float64
	for h.Len() > 0 {
		a, _, _, _ := h.Pop()
		got = append(got, a)
	}
	assert.Equal(t, []float64{1, 3, 0, 2, 4}, got)
}

// TestHeap_InterleavedOps mixes pushes and pops like the adaptive loop does.
func TestHeap_InterleavedOps(t *testing.T) {
	h := integrate.NewHeap_TestOnly()
	h.Push(0, 1, 4)
	a, b, e, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, []float64{0, 1, 4}, []float64{a, b, e})

	h.Push(0, 0.5, 3)
	h.Push(0.5, 1, 0.5)
	a, _, e, _ = h.Pop()
	assert.Equal(t, 0.0, a)
	assert.Equal(t, 3.0, e)

	h.Push(0, 0.25, 0.5)
	h.Push(0.25, 0.5, 2)
	a, _, _, _ = h.Pop()
	assert.Equal(t, 0.25, a)
	// Two intervals with err 0.5 remain: the older one ([0.5,1]) first.
	a, _, _, _ = h.Pop()
	assert.Equal(t, 0.5, a)
	a, _, _, _ = h.Pop()
	assert.Equal(t, 0.0, a)
}
