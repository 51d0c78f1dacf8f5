// SPDX-License-Identifier: MIT

package integrate

// Test-Bridge (White-Box) for rule tables, the kernel evaluator and the heap.
//
// Compiled only with the package tests, so the production API stays narrow.

// RuleTable is a read-only copy of one RuleSet.
type RuleTable struct {
	Name       string
	Nodes      []float64
	Low        []float64
	High       []float64
	LowCenter  float64
	HighCenter float64
	Inherited  []int
}

func tableOf(name string, r *RuleSet) RuleTable {
	return RuleTable{
		Name:       name,
		Nodes:      append([]float64(nil), r.nodes...),
		Low:        append([]float64(nil), r.low...),
		High:       append([]float64(nil), r.high...),
		LowCenter:  r.lowCenter,
		HighCenter: r.highCenter,
		Inherited:  append([]int(nil), r.inherited...),
	}
}

// RuleTables_TestOnly returns the per-subinterval rules followed by the ladder.
func RuleTables_TestOnly() []RuleTable {
	return []RuleTable{
		tableOf("GK15", &gk15),
		tableOf("GK21", &gk21),
		tableOf("GK43", &gk43),
		tableOf("GK87", &gk87),
	}
}

// LadderTables_TestOnly returns the escalation ladder in order.
func LadderTables_TestOnly() []RuleTable {
	names := []string{"GK21", "GK43", "GK87"}
	out := make([]RuleTable, len(escalation))
	for i, r := range escalation {
		out[i] = tableOf(names[i], r)
	}

	return out
}

// KernelOut mirrors the private estimate.
type KernelOut struct {
	Low, High, Abs, Asc float64
	NEval               int
}

// EvaluateLadder_TestOnly evaluates every ladder level on [a,b], threading the
// cache like NonAdaptive does.
func EvaluateLadder_TestOnly(f Func, args []float64, a, b float64) []KernelOut {
	var (
		cache *evalCache
		est   estimate
		out   = make([]KernelOut, 0, len(escalation))
	)
	for _, r := range escalation {
		est, cache = evaluate(f, args, a, b, r, cache)
		out = append(out, KernelOut{Low: est.low, High: est.high, Abs: est.abs, Asc: est.asc, NEval: est.neval})
	}

	return out
}

// EvaluateRule_TestOnly evaluates one per-subinterval rule without a cache.
func EvaluateRule_TestOnly(f Func, a, b float64, rule Rule) KernelOut {
	r, _ := rule.ruleSet()
	est, _ := evaluate(f, nil, a, b, r, nil)

	return KernelOut{Low: est.low, High: est.high, Abs: est.abs, Asc: est.asc, NEval: est.neval}
}

var (
	ExportedRescaleError        = rescaleError
	ExportedSubintervalTooSmall = subintervalTooSmall
)

// Machine constants used by the numeric policy.
const (
	Epsilon_TestOnly   = epsilon
	Underflow_TestOnly = underflow
	PanicRuleInvalid   = panicRuleInvalid
)

// Heap_TestOnly wraps the private interval heap.
type Heap_TestOnly struct{ h *intervalHeap }

// NewHeap_TestOnly allocates an empty heap.
func NewHeap_TestOnly() *Heap_TestOnly { return &Heap_TestOnly{h: newIntervalHeap(0)} }

// Push inserts [a,b] with the given error estimate.
func (t *Heap_TestOnly) Push(a, b, err float64) { t.h.push(interval{a: a, b: b, err: err}) }

// Pop removes the worst interval.
func (t *Heap_TestOnly) Pop() (a, b, err float64, ok bool) {
	iv, ok := t.h.pop()

	return iv.a, iv.b, iv.err, ok
}

// Peek reads the worst interval.
func (t *Heap_TestOnly) Peek() (a, b, err float64, ok bool) {
	iv, ok := t.h.peek()

	return iv.a, iv.b, iv.err, ok
}

// Len returns the queue size.
func (t *Heap_TestOnly) Len() int { return t.h.len() }
