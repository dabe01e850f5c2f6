// Package escape evaluates the bounded escape-time iteration z ← z² + c.
package escape

import "math"

// DefaultBound is the magnitude beyond which an orbit is assumed to diverge.
// Orbits that ever leave the radius-2 disc cannot return.
const DefaultBound = 2.0

// A Result reports how an orbit left, or failed to leave, the bound disc.
type Result struct {
	// Escaped is whether |z| exceeded the bound within the iteration budget.
	Escaped bool

	// Iterations is the number of iteration steps applied: the step on
	// which the orbit escaped, or the full budget when it never did.
	Iterations int

	// Magnitude is |z| after the final step.
	Magnitude float64
}

// Evaluate iterates z ← z² + c from z = 0 for at most maxIterations steps,
// stopping as soon as |z| strictly exceeds bound. A point sitting exactly
// on the bound circle counts as non-escaping.
//
// The loop compares squared magnitudes, so each step is a handful of
// multiply-adds with no square root.
func Evaluate(c complex128, maxIterations int, bound float64) Result {
	cr, ci := real(c), imag(c)
	bound2 := bound * bound

	var zr, zi float64
	for n := 1; n <= maxIterations; n++ {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		if mag2 := zr*zr + zi*zi; mag2 > bound2 {
			return Result{Escaped: true, Iterations: n, Magnitude: math.Sqrt(mag2)}
		}
	}
	return Result{Iterations: maxIterations, Magnitude: math.Hypot(zr, zi)}
}

// Smooth is the fractional iteration count, continuous across the discrete
// escape bands. For bounded orbits it is just the full iteration count.
func (r Result) Smooth() float64 {
	if !r.Escaped || r.Magnitude <= 1 {
		return float64(r.Iterations)
	}
	return float64(r.Iterations) + 1 - math.Log(math.Log(r.Magnitude))/math.Ln2
}
