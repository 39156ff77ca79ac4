// Package geom holds the small amount of 2D math shared by the demos.
package geom

import "math"

// Vec represents a 2D point or direction in screen space.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied component-wise by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Div returns v divided component-wise by s.
func (v Vec) Div(s float64) Vec {
	return Vec{X: v.X / s, Y: v.Y / s}
}

// Length returns the Euclidean length of v.
func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Vec) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Clamp restricts value to [lo, hi]. The lower bound is applied first, so
// when hi < lo the result is hi.
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		value = lo
	}
	if value > hi {
		value = hi
	}
	return value
}
