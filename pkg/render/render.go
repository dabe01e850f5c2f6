// Package render rasterizes view windows into frame buffers.
package render

import (
	"errors"
	"fmt"
	"image"
	"runtime"
	"sync"

	xdraw "golang.org/x/image/draw"

	"github.com/benw000/MandelbrotZoom/pkg/escape"
	"github.com/benw000/MandelbrotZoom/pkg/palette"
	"github.com/benw000/MandelbrotZoom/pkg/plane"
)

// ErrInvalidIterationBudget reports a non-positive iteration budget.
var ErrInvalidIterationBudget = errors.New("max iterations must be positive")

// Settings fix everything about a render except the view window, which
// changes per frame.
type Settings struct {
	Resolution    plane.Resolution
	MaxIterations int

	// Bound is the escape radius. Zero means escape.DefaultBound.
	Bound float64

	Mapper palette.Mapper

	// Workers is the pixel worker count within a frame. Zero means
	// GOMAXPROCS.
	Workers int

	// FrameWorkers is how many frames of a sequence render concurrently.
	// Zero means 1. Peak memory grows with frames in flight.
	FrameWorkers int

	// Supersample renders at an integer multiple of Resolution and
	// downscales with Catmull-Rom. Values below 2 render natively.
	Supersample int
}

func (s Settings) Validate() error {
	if err := s.Resolution.Validate(); err != nil {
		return err
	}
	if s.MaxIterations <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIterationBudget, s.MaxIterations)
	}
	return nil
}

// A Renderer rasterizes frames under fixed settings. It holds no per-frame
// state, so one Renderer may rasterize many frames concurrently.
type Renderer struct {
	settings     Settings
	bound        float64
	workers      int
	frameWorkers int
}

// New validates settings and fills in defaults.
func New(s Settings) (*Renderer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	r := &Renderer{
		settings:     s,
		bound:        s.Bound,
		workers:      s.Workers,
		frameWorkers: s.FrameWorkers,
	}
	if r.bound == 0 {
		r.bound = escape.DefaultBound
	}
	if r.workers <= 0 {
		r.workers = runtime.GOMAXPROCS(0)
	}
	if r.frameWorkers <= 0 {
		r.frameWorkers = 1
	}
	return r, nil
}

// Frame rasterizes one view window into a fresh buffer. Identical inputs
// produce identical buffers.
func (r *Renderer) Frame(w plane.ViewWindow) *image.NRGBA {
	res := r.settings.Resolution
	if s := r.settings.Supersample; s > 1 {
		hi := plane.Resolution{Width: res.Width * s, Height: res.Height * s}
		big := r.raster(w, hi)
		dst := image.NewNRGBA(image.Rect(0, 0, res.Width, res.Height))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), big, big.Bounds(), xdraw.Src, nil)
		return dst
	}
	return r.raster(w, res)
}

// raster stripes rows across the worker pool. Pixels are independent, and
// each worker writes disjoint rows, so no synchronization is needed beyond
// the final wait.
func (r *Renderer) raster(w plane.ViewWindow, res plane.Resolution) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, res.Width, res.Height))
	stride := img.Stride
	pix := img.Pix

	var wg sync.WaitGroup
	wg.Add(r.workers)
	for i := 0; i < r.workers; i++ {
		go func(worker int) {
			defer wg.Done()
			for row := worker; row < res.Height; row += r.workers {
				off := row * stride
				for col := 0; col < res.Width; col++ {
					result := escape.Evaluate(w.Pixel(col, row, res), r.settings.MaxIterations, r.bound)
					c := r.settings.Mapper.Map(result)

					p := off + col*4
					pix[p+0] = c.R
					pix[p+1] = c.G
					pix[p+2] = c.B
					pix[p+3] = 0xff
				}
			}
		}(i)
	}
	wg.Wait()

	return img
}
