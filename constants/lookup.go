package constants

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownConstant is returned by Lookup and Value for names not in the table.
var ErrUnknownConstant = errors.New("constants: unknown constant")

// Constant is one table entry.
type Constant struct {
	Name        string
	Value       float64
	Unit        string
	Uncertainty float64 // standard uncertainty, 0 for exact values
}

// Exact reports whether the value is exact by definition.
func (c Constant) Exact() bool { return c.Uncertainty == 0 }

// String renders "name = value unit".
func (c Constant) String() string {
	s := fmt.Sprintf("%s = %.12g", c.Name, c.Value)
	if c.Unit != "" {
		s += " " + c.Unit
	}
	if c.Exact() {
		return s + " (exact)"
	}

	return s + fmt.Sprintf(" (± %.2g)", c.Uncertainty)
}

var byName = func() map[string]Constant {
	m := make(map[string]Constant, len(table))
	for _, c := range table {
		m[strings.ToLower(c.Name)] = c
	}

	return m
}()

// Lookup returns the constant with the given name (case-insensitive).
func Lookup(name string) (Constant, error) {
	c, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Constant{}, fmt.Errorf("%w: %q", ErrUnknownConstant, name)
	}

	return c, nil
}

// Value returns only the numeric value of the named constant.
func Value(name string) (float64, error) {
	c, err := Lookup(name)
	if err != nil {
		return 0, err
	}

	return c.Value, nil
}

// Find returns the sorted names containing sub (case-insensitive).
// An empty sub matches every name.
func Find(sub string) []string {
	sub = strings.ToLower(sub)
	var out []string
	for _, c := range table {
		if strings.Contains(strings.ToLower(c.Name), sub) {
			out = append(out, c.Name)
		}
	}
	sort.Strings(out)

	return out
}

// All returns a copy of the table sorted by name.
func All() []Constant {
	out := append([]Constant(nil), table...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}
