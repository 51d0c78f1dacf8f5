// SPDX-License-Identifier: MIT
package integrate_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/scijo/integrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// moment returns Σ w·t^k over the full symmetric expansion of a table.
func moment(nodes, weights []float64, center float64, k int) float64 {
	s := 0.0
	if k == 0 {
		s = center
	}
	for i, t := range nodes {
		s += 2 * weights[i] * math.Pow(t, float64(k))
	}

	return s
}

// TestRules_NodesAscendingInOpenUnit verifies the storage layout of every table.
func TestRules_NodesAscendingInOpenUnit(t *testing.T) {
	for _, tb := range integrate.RuleTables_TestOnly() {
		require.Len(t, tb.Low, len(tb.Nodes), tb.Name)
		require.Len(t, tb.High, len(tb.Nodes), tb.Name)
		for i, x := range tb.Nodes {
			assert.Greater(t, x, 0.0, "%s node %d", tb.Name, i)
			assert.Less(t, x, 1.0, "%s node %d", tb.Name, i)
			if i > 0 {
				assert.Greater(t, x, tb.Nodes[i-1], "%s nodes must be strictly increasing", tb.Name)
			}
		}
	}
}

// TestRules_PointCounts checks 2·len(nodes)+1 for every family.
func TestRules_PointCounts(t *testing.T) {
	want := map[string]int{"GK15": 15, "GK21": 21, "GK43": 43, "GK87": 87}
	for _, tb := range integrate.RuleTables_TestOnly() {
		assert.Equal(t, want[tb.Name], 2*len(tb.Nodes)+1, tb.Name)
	}
}

// TestRules_ConstantIntegratesExactly verifies the weights of both embedded
// rules expand to the length of [-1,1].
func TestRules_ConstantIntegratesExactly(t *testing.T) {
	for _, tb := range integrate.RuleTables_TestOnly() {
		assert.InDelta(t, 2.0, moment(tb.Nodes, tb.High, tb.HighCenter, 0), 1e-15, "%s high", tb.Name)
		assert.InDelta(t, 2.0, moment(tb.Nodes, tb.Low, tb.LowCenter, 0), 1e-15, "%s low", tb.Name)
	}
}

// TestRules_PolynomialExactness checks even Legendre moments 2/(k+1) up to
// the degree of exactness of each rule (odd moments vanish by symmetry).
func TestRules_PolynomialExactness(t *testing.T) {
	cases := []struct {
		name      string
		low, high int // degrees of exactness
	}{
		{"GK15", 13, 22},
		{"GK21", 19, 31},
		{"GK43", 31, 40},
		{"GK87", 40, 40},
	}
	tables := map[string]integrate.RuleTable{}
	for _, tb := range integrate.RuleTables_TestOnly() {
		tables[tb.Name] = tb
	}
	for _, tc := range cases {
		tb := tables[tc.name]
		for k := 0; k <= tc.high; k += 2 {
			exact := 2.0 / float64(k+1)
			assert.InDelta(t, exact, moment(tb.Nodes, tb.High, tb.HighCenter, k), 1e-14, "%s high k=%d", tc.name, k)
		}
		for k := 0; k <= tc.low; k += 2 {
			exact := 2.0 / float64(k+1)
			assert.InDelta(t, exact, moment(tb.Nodes, tb.Low, tb.LowCenter, k), 1e-14, "%s low k=%d", tc.name, k)
		}
	}
}

// TestRules_LadderNesting verifies that each ladder level contains the previous
// level's nodes (inherited indices) and that its low rule IS the previous high rule.
func TestRules_LadderNesting(t *testing.T) {
	ladder := integrate.LadderTables_TestOnly()
	require.Len(t, ladder, 3)
	assert.Empty(t, ladder[0].Inherited, "first level has nothing to inherit")

	for l := 1; l < len(ladder); l++ {
		cur, prev := ladder[l], ladder[l-1]
		require.Len(t, cur.Inherited, len(cur.Nodes), cur.Name)

		seen := make(map[int]bool)
		fresh := 0
		for i, j := range cur.Inherited {
			if j < 0 {
				fresh++
				assert.Zero(t, cur.Low[i], "%s: new node %d must not carry a low weight", cur.Name, i)
				continue
			}
			require.Less(t, j, len(prev.Nodes))
			assert.Equal(t, prev.Nodes[j], cur.Nodes[i], "%s: inherited node must be identical", cur.Name)
			assert.Equal(t, prev.High[j], cur.Low[i], "%s: low weight must equal previous high weight", cur.Name)
			assert.False(t, seen[j], "%s: previous node %d inherited twice", cur.Name, j)
			seen[j] = true
		}
		assert.Len(t, seen, len(prev.Nodes), "%s must inherit every previous node", cur.Name)
		assert.Equal(t, len(prev.Nodes)+1, fresh, "%s adds n+1 nodes", cur.Name)
		assert.Equal(t, prev.HighCenter, cur.LowCenter, "%s center weight", cur.Name)
	}
}
