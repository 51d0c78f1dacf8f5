// Package catalog names the functions the scijo command line can integrate,
// differentiate and solve. Each entry takes x plus the trailing --args values.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/scijo/integrate"
)

var (
	// ErrUnknownFunc is returned for a name that is not in the catalog.
	ErrUnknownFunc = errors.New("catalog: unknown function")

	// ErrBadArgs is returned when fewer args are given than the entry needs.
	ErrBadArgs = errors.New("catalog: not enough args")
)

// Entry is one named function.
type Entry struct {
	Name    string
	Doc     string
	MinArgs int
	F       integrate.Func
}

// Bind fixes args and returns a plain one-variable function.
func (e Entry) Bind(args []float64) func(float64) float64 {
	return func(x float64) float64 { return e.F(x, args) }
}

// Check reports ErrBadArgs when args is too short for e.
func (e Entry) Check(args []float64) error {
	if len(args) < e.MinArgs {
		return fmt.Errorf("%w: %s needs %d, got %d", ErrBadArgs, e.Name, e.MinArgs, len(args))
	}

	return nil
}

var entries = map[string]Entry{}

func register(name, doc string, minArgs int, f integrate.Func) {
	entries[name] = Entry{Name: name, Doc: doc, MinArgs: minArgs, F: f}
}

func unary(g func(float64) float64) integrate.Func {
	return func(x float64, _ []float64) float64 { return g(x) }
}

func init() {
	register("sin", "sin(x)", 0, unary(math.Sin))
	register("cos", "cos(x)", 0, unary(math.Cos))
	register("exp", "exp(x)", 0, unary(math.Exp))
	register("log", "ln(x)", 0, unary(math.Log))
	register("sqrt", "√x", 0, unary(math.Sqrt))
	register("inv-sqrt", "1/√x", 0, unary(func(x float64) float64 { return 1 / math.Sqrt(x) }))
	register("runge", "1/(1+25x²)", 0, unary(func(x float64) float64 { return 1 / (1 + 25*x*x) }))
	register("gauss", "exp(−x²)", 0, unary(func(x float64) float64 { return math.Exp(-x * x) }))
	register("abs", "|x − args[0]|, shift defaults to 0", 0, func(x float64, args []float64) float64 {
		if len(args) > 0 {
			x -= args[0]
		}
		return math.Abs(x)
	})
	register("poly", "Σ args[i]·xⁱ (ascending coefficients)", 1, func(x float64, args []float64) float64 {
		var s float64
		for i := len(args) - 1; i >= 0; i-- {
			s = s*x + args[i]
		}
		return s
	})
	register("sin-scaled", "args[0]·sin(args[1]·x)", 2, func(x float64, args []float64) float64 {
		return args[0] * math.Sin(args[1]*x)
	})
	register("step", "1 for x > args[0], else 0", 1, func(x float64, args []float64) float64 {
		if x > args[0] {
			return 1
		}
		return 0
	})
}

// Lookup returns the entry called name.
func Lookup(name string) (Entry, error) {
	e, ok := entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownFunc, name)
	}

	return e, nil
}

// Resolve looks name up and checks args in one step.
func Resolve(name string, args []float64) (Entry, error) {
	e, err := Lookup(name)
	if err != nil {
		return Entry{}, err
	}
	if err = e.Check(args); err != nil {
		return Entry{}, err
	}

	return e, nil
}

// Names returns every catalog name in sorted order.
func Names() []string {
	out := make([]string, 0, len(entries))
	for name := range entries {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
