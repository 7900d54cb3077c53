package plot

import (
	"fmt"
	"sort"
)

// Method approximates the definite integral of f over d with steps
// subintervals. Non-finite samples contribute zero.
type Method interface {
	Name() string
	Area(f func(float64) float64, d Domain, steps int) float64
}

var methods = map[string]func() Method{}

// RegisterMethod adds an area method constructor to the registry.
func RegisterMethod(name string, constructor func() Method) {
	methods[name] = constructor
}

// GetMethod returns an area method by name.
func GetMethod(name string) (Method, error) {
	ctor, ok := methods[name]
	if !ok {
		return nil, fmt.Errorf("unknown area method: %s", name)
	}
	return ctor(), nil
}

// MethodNames returns all registered method names, sorted.
func MethodNames() []string {
	names := make([]string, 0, len(methods))
	for k := range methods {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterMethod("rectangular", func() Method { return Rectangular{} })
	RegisterMethod("trapezoidal", func() Method { return Trapezoidal{} })
}

// clamped evaluates f, mapping NaN and ±Inf to 0.
func clamped(f func(float64) float64, x float64) float64 {
	y := f(x)
	if !finite(y) {
		return 0
	}
	return y
}

// Rectangular is the left-endpoint rule: Σ f(x_i)·Δx.
type Rectangular struct{}

func (Rectangular) Name() string { return "rectangular" }

func (Rectangular) Area(f func(float64) float64, d Domain, steps int) float64 {
	if steps < 1 {
		return 0
	}
	dx := (d.Max - d.Min) / float64(steps)
	area := 0.0
	for i := 0; i < steps; i++ {
		area += clamped(f, d.at(i, steps)) * dx
	}
	return area
}

// Trapezoidal is Σ (f(x_i) + f(x_{i+1}))/2·Δx.
type Trapezoidal struct{}

func (Trapezoidal) Name() string { return "trapezoidal" }

func (Trapezoidal) Area(f func(float64) float64, d Domain, steps int) float64 {
	if steps < 1 {
		return 0
	}
	dx := (d.Max - d.Min) / float64(steps)
	area := 0.0
	prev := clamped(f, d.Min)
	for i := 1; i <= steps; i++ {
		next := clamped(f, d.at(i, steps))
		area += (prev + next) / 2 * dx
		prev = next
	}
	return area
}
