// Package palette turns escape results into colors.
package palette

import (
	"math"
	"sort"

	"github.com/benw000/MandelbrotZoom/pkg/escape"
)

// A Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// A Stop pins a color to a position in [0, 1] along a gradient.
type Stop struct {
	Pos   float64
	Color Color
}

// A Gradient is a piecewise-linear ramp through its color stops.
type Gradient struct {
	stops []Stop
}

// NewGradient builds a gradient from the given stops, sorting them by
// position. The stops are copied; the caller may reuse the slice.
func NewGradient(stops ...Stop) Gradient {
	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Pos < sorted[j].Pos
	})
	return Gradient{stops: sorted}
}

// At returns the gradient color at t, clamping t to [0, 1]. Positions
// outside the outermost stops take the nearest stop's color.
func (g Gradient) At(t float64) Color {
	if len(g.stops) == 0 {
		return Color{}
	}
	t = clamp01(t)

	if t <= g.stops[0].Pos {
		return g.stops[0].Color
	}
	last := g.stops[len(g.stops)-1]
	if t >= last.Pos {
		return last.Color
	}

	i := sort.Search(len(g.stops), func(i int) bool {
		return g.stops[i].Pos >= t
	})
	lo, hi := g.stops[i-1], g.stops[i]

	span := hi.Pos - lo.Pos
	if span <= 0 {
		return lo.Color
	}
	return lerp(lo.Color, hi.Color, (t-lo.Pos)/span)
}

func lerp(a, b Color, t float64) Color {
	return Color{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + t*(float64(b)-float64(a)) + 0.5)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// DefaultDecayRate spreads iteration budgets of a few dozen steps over the
// whole gradient.
const DefaultDecayRate = 0.05

// A Mapper assigns colors to escape results. Bounded orbits get the fixed
// Interior color. Escaped orbits are placed on the gradient at
// t = e^(−rate·n), so earlier escapes land nearer the hot end at t = 1 and
// later escapes decay toward t = 0.
type Mapper struct {
	Interior Color
	Gradient Gradient

	// DecayRate is the exponential rate applied to the iteration count.
	// Zero means DefaultDecayRate.
	DecayRate float64

	// Smoothed decays the fractional iteration count instead of the
	// integer one, removing visible banding between escape bands.
	Smoothed bool
}

// New returns a Mapper over grad with a black interior and the default
// decay rate.
func New(grad Gradient) Mapper {
	return Mapper{Gradient: grad}
}

func (m Mapper) Map(r escape.Result) Color {
	if !r.Escaped {
		return m.Interior
	}
	n := float64(r.Iterations)
	if m.Smoothed {
		n = r.Smooth()
	}
	rate := m.DecayRate
	if rate <= 0 {
		rate = DefaultDecayRate
	}
	return m.Gradient.At(math.Exp(-rate * n))
}
