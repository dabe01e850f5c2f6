// Package zoom schedules the per-frame view windows of a zoom animation.
package zoom

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/benw000/MandelbrotZoom/pkg/plane"
)

var (
	// ErrInvalidScaleFactor reports a per-frame scale outside (0, 1).
	ErrInvalidScaleFactor = errors.New("scale factor must be in (0, 1)")

	// ErrInvalidFrameCount reports a non-positive frame count.
	ErrInvalidFrameCount = errors.New("frame count must be positive")

	// ErrInvalidWindow reports an initial window with non-positive dimensions.
	ErrInvalidWindow = errors.New("initial window dimensions must be positive")
)

// DefaultRecenterFrames is how many initial frames the window center spends
// traveling onto the focus point.
const DefaultRecenterFrames = 5

// A Plan describes a zoom-in: starting from Initial, each frame's window
// shrinks by Scale while the center moves onto Focus over the first
// RecenterFrames frames and then holds it.
//
// Every window is a pure function of its frame index, so any frame can be
// reconstructed without replaying earlier ones.
type Plan struct {
	Initial plane.ViewWindow
	Focus   complex128

	// Frames is the total number of windows in the schedule.
	Frames int

	// Scale multiplies the window dimensions between consecutive frames.
	// Must be in (0, 1); unused when Frames is 1.
	Scale float64

	// RecenterFrames is how many initial frames the center spends moving
	// linearly from Initial.Center onto Focus. Zero snaps to Focus at
	// frame 1.
	RecenterFrames int
}

func (p Plan) Validate() error {
	if p.Frames <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrameCount, p.Frames)
	}
	if p.RecenterFrames < 0 {
		return fmt.Errorf("%w: recenter frames %d", ErrInvalidFrameCount, p.RecenterFrames)
	}
	if p.Frames > 1 && (p.Scale <= 0 || p.Scale >= 1) {
		return fmt.Errorf("%w: %v", ErrInvalidScaleFactor, p.Scale)
	}
	if p.Initial.Width <= 0 || p.Initial.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidWindow, p.Initial.Width, p.Initial.Height)
	}
	return nil
}

// WindowAt reconstructs the view window for frame k. Frame 0 is Initial
// unchanged. The center approaches Focus monotonically and never
// overshoots it.
func (p Plan) WindowAt(k int) plane.ViewWindow {
	center := p.Initial.Center
	if k > 0 {
		f := 1.0
		if p.RecenterFrames > 0 && k < p.RecenterFrames {
			f = float64(k) / float64(p.RecenterFrames)
		}
		center += complex(f, 0) * (p.Focus - center)
	}

	shrink := math.Pow(p.Scale, float64(k))
	return plane.ViewWindow{
		Center: center,
		Width:  p.Initial.Width * shrink,
		Height: p.Initial.Height * shrink,
	}
}

// All yields (index, window) for every frame of the schedule in order.
func (p Plan) All() iter.Seq2[int, plane.ViewWindow] {
	return func(yield func(int, plane.ViewWindow) bool) {
		for k := 0; k < p.Frames; k++ {
			if !yield(k, p.WindowAt(k)) {
				return
			}
		}
	}
}
