// Package plot turns a function of one variable into plottable points and
// approximates its definite integral.
package plot

import (
	"fmt"
	"iter"
	"math"
)

// Domain is a closed parameter interval [Min, Max].
type Domain struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Validate checks that d is a finite, non-empty interval.
func (d Domain) Validate() error {
	if math.IsNaN(d.Min) || math.IsInf(d.Min, 0) || math.IsNaN(d.Max) || math.IsInf(d.Max, 0) {
		return fmt.Errorf("domain bounds must be finite: [%v, %v]", d.Min, d.Max)
	}
	if !(d.Min < d.Max) {
		return fmt.Errorf("domain requires min < max: [%v, %v]", d.Min, d.Max)
	}
	return nil
}

// at returns the i-th of steps+1 evenly spaced parameters.
func (d Domain) at(i, steps int) float64 {
	t := float64(i) / float64(steps)
	return d.Min + t*(d.Max-d.Min)
}

// Point is one sample of a curve. Break marks a non-finite sample: the
// consumer must not draw a segment into or out of it. X and Y of a broken
// coordinate are reported as 0.
type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Break bool    `json:"break"`
}

// Sample returns the steps+1 points of f over d in the given mode. The
// sequence is computed lazily and can be ranged over any number of times;
// each pass starts again from d.Min. A steps value below 1 yields nothing.
func Sample(f func(float64) float64, d Domain, steps int, mode Mode) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if steps < 1 {
			return
		}
		for i := 0; i <= steps; i++ {
			if !yield(mode.Point(f, d.at(i, steps))) {
				return
			}
		}
	}
}

// Collect gathers a sequence into a slice.
func Collect(seq iter.Seq[Point]) []Point {
	var pts []Point
	for p := range seq {
		pts = append(pts, p)
	}
	return pts
}

// Breaks counts break points in pts.
func Breaks(pts []Point) int {
	n := 0
	for _, p := range pts {
		if p.Break {
			n++
		}
	}
	return n
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
