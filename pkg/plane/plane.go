// Package plane maps the pixel grid onto the complex plane.
package plane

import (
	"errors"
	"fmt"
)

// ErrInvalidResolution reports a pixel grid with a non-positive dimension.
var ErrInvalidResolution = errors.New("resolution dimensions must be positive")

// A Resolution is the pixel grid shared by every frame of a render.
type Resolution struct {
	Width, Height int
}

func (r Resolution) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidResolution, r.Width, r.Height)
	}
	return nil
}

// Aspect is the width-to-height ratio of the pixel grid.
func (r Resolution) Aspect() float64 {
	return float64(r.Width) / float64(r.Height)
}

// DefaultWidth is the width of the default view, covering the whole set
// with real and imaginary parts in [-2, 2] on a square grid.
const DefaultWidth = 4.0

// A ViewWindow is the rectangle of the complex plane currently mapped onto
// the pixel grid. Height is always derived from Width and the pixel aspect
// ratio, so pixels cover square complex-plane regions.
type ViewWindow struct {
	Center complex128
	Width  float64
	Height float64
}

// Window builds the view of the given width centered on center, deriving
// the height from the pixel aspect ratio.
func Window(center complex128, width float64, res Resolution) ViewWindow {
	return ViewWindow{
		Center: center,
		Width:  width,
		Height: width / res.Aspect(),
	}
}

// DefaultWindow is the whole-set view at the given resolution.
func DefaultWindow(res Resolution) ViewWindow {
	return Window(0, DefaultWidth, res)
}

// Pixel returns the complex point at the center of pixel (col, row).
// Row 0 is the top of the frame and carries the largest imaginary parts,
// so the image keeps the conventional mathematical orientation.
func (w ViewWindow) Pixel(col, row int, res Resolution) complex128 {
	re := real(w.Center) + ((float64(col)+0.5)/float64(res.Width)-0.5)*w.Width
	im := imag(w.Center) - ((float64(row)+0.5)/float64(res.Height)-0.5)*w.Height
	return complex(re, im)
}
