package plot

import (
	"fmt"
	"math"
	"sort"
)

// Mode maps a curve parameter to a Cartesian point.
type Mode interface {
	Name() string
	Point(f func(float64) float64, t float64) Point
	// DefaultDomain is the parameter interval used when none is given.
	DefaultDomain() Domain
}

var modes = map[string]func() Mode{}

// RegisterMode adds a mode constructor to the registry.
func RegisterMode(name string, constructor func() Mode) {
	modes[name] = constructor
}

// GetMode returns a mode by name.
func GetMode(name string) (Mode, error) {
	ctor, ok := modes[name]
	if !ok {
		return nil, fmt.Errorf("unknown plot mode: %s", name)
	}
	return ctor(), nil
}

// ModeNames returns all registered mode names, sorted.
func ModeNames() []string {
	names := make([]string, 0, len(modes))
	for k := range modes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterMode("cartesian", func() Mode { return Cartesian{} })
	RegisterMode("polar", func() Mode { return Polar{} })
}

// Cartesian plots y = f(x) with x running over the domain.
type Cartesian struct{}

func (Cartesian) Name() string { return "cartesian" }

func (Cartesian) DefaultDomain() Domain { return Domain{Min: -10, Max: 10} }

func (Cartesian) Point(f func(float64) float64, x float64) Point {
	y := f(x)
	if !finite(y) {
		return Point{X: x, Break: true}
	}
	return Point{X: x, Y: y}
}

// Polar plots r = f(θ) with θ running over the domain.
type Polar struct{}

func (Polar) Name() string { return "polar" }

func (Polar) DefaultDomain() Domain { return Domain{Min: 0, Max: 2 * math.Pi} }

func (Polar) Point(f func(float64) float64, theta float64) Point {
	r := f(theta)
	x := r * math.Cos(theta)
	y := r * math.Sin(theta)
	if !finite(x) || !finite(y) {
		return Point{Break: true}
	}
	return Point{X: x, Y: y}
}
