package render

import (
	"context"
	"image"
	"sync"

	"github.com/benw000/MandelbrotZoom/pkg/zoom"
)

type renderedFrame struct {
	index int
	img   *image.NRGBA
}

// RenderSequence rasterizes every frame of plan and hands the buffers to
// emit strictly in frame order, regardless of completion order. Up to
// FrameWorkers frames render concurrently.
//
// Cancelling ctx stops the render at the next frame boundary: frames
// already emitted stay valid, and ctx.Err is returned. An error from emit
// aborts the render and is returned unchanged; no later frame is emitted.
func (r *Renderer) RenderSequence(ctx context.Context, plan zoom.Plan, emit func(index int, frame *image.NRGBA) error) error {
	if err := plan.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := r.frameWorkers
	if workers > plan.Frames {
		workers = plan.Frames
	}

	indices := make(chan int)
	results := make(chan renderedFrame, workers)

	go func() {
		defer close(indices)
		for k := 0; k < plan.Frames; k++ {
			select {
			case indices <- k:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for k := range indices {
				results <- renderedFrame{index: k, img: r.Frame(plan.WindowAt(k))}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Frames complete out of order; park early arrivals until their turn.
	pending := make(map[int]*image.NRGBA, workers)
	next := 0
	var emitErr error
	for f := range results {
		if emitErr != nil {
			continue // drain so the workers can exit
		}
		pending[f.index] = f.img
		for {
			img, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			if err := emit(next, img); err != nil {
				emitErr = err
				cancel()
				break
			}
			next++
		}
	}
	if emitErr != nil {
		return emitErr
	}
	if err := ctx.Err(); err != nil && next < plan.Frames {
		return err
	}
	return nil
}
