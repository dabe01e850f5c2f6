// mandelzoom renders a Mandelbrot zoom animation as a numbered PNG frame
// sequence, ready for assembly into a video with ffmpeg.
package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/benw000/MandelbrotZoom/pkg/palette"
	"github.com/benw000/MandelbrotZoom/pkg/plane"
	"github.com/benw000/MandelbrotZoom/pkg/render"
	"github.com/benw000/MandelbrotZoom/pkg/zoom"
)

type options struct {
	focusReal float64
	focusImag float64
	landmark  string

	width  int
	height int

	frames        int
	maxIterations int
	scale         float64
	recenter      int
	bound         float64
	viewWidth     float64

	palette     string
	smooth      bool
	supersample int

	workers      int
	frameWorkers int

	outDir string
}

func mainCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "mandelzoom",
		Short: "Render a Mandelbrot zoom as PNG frames",
		Long: `Render a zoom into the Mandelbrot set as a numbered PNG frame sequence.

Each frame's view window shrinks geometrically while the center moves onto
the focus point. Frames land in the output directory as frame_0000.png,
frame_0001.png, ... for external assembly, e.g.:

  ffmpeg -framerate 5 -i renders/frame_%04d.png -pix_fmt yuv420p zoom.mp4`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true
			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.focusReal, "focus-real", 0, "real part of the zoom focus")
	flags.Float64Var(&opts.focusImag, "focus-imag", 0, "imaginary part of the zoom focus")
	flags.StringVar(&opts.landmark, "landmark", "",
		fmt.Sprintf("named focus point, overrides --focus-real/--focus-imag (one of %v)", zoom.LandmarkNames()))
	flags.IntVar(&opts.width, "width", 400, "frame width in pixels")
	flags.IntVar(&opts.height, "height", 400, "frame height in pixels")
	flags.IntVar(&opts.frames, "frames", 20, "number of frames to render")
	flags.IntVar(&opts.maxIterations, "max-iterations", 50, "escape-time search depth per pixel")
	flags.Float64Var(&opts.scale, "scale", 0.9, "per-frame window scale factor, in (0, 1)")
	flags.IntVar(&opts.recenter, "recenter-frames", zoom.DefaultRecenterFrames,
		"frames spent moving the center onto the focus")
	flags.Float64Var(&opts.bound, "bound", 0, "escape radius (default 2)")
	flags.Float64Var(&opts.viewWidth, "view-width", plane.DefaultWidth,
		"complex-plane width of the initial view, centered at the origin")
	flags.StringVar(&opts.palette, "palette", "ember",
		fmt.Sprintf("color gradient (one of %v)", palette.Names()))
	flags.BoolVar(&opts.smooth, "smooth", false, "smooth the iteration count to remove color banding")
	flags.IntVar(&opts.supersample, "supersample", 1, "render at N× resolution and downscale")
	flags.IntVar(&opts.workers, "workers", 0, "pixel workers per frame (default GOMAXPROCS)")
	flags.IntVar(&opts.frameWorkers, "frame-workers", 1, "frames rendered concurrently")
	flags.StringVar(&opts.outDir, "out", "renders", "output directory for PNG frames")

	return cmd
}

func run(ctx context.Context, opts *options) error {
	res := plane.Resolution{Width: opts.width, Height: opts.height}

	grad, err := palette.Preset(opts.palette)
	if err != nil {
		return err
	}
	mapper := palette.New(grad)
	mapper.Smoothed = opts.smooth

	renderer, err := render.New(render.Settings{
		Resolution:    res,
		MaxIterations: opts.maxIterations,
		Bound:         opts.bound,
		Mapper:        mapper,
		Workers:       opts.workers,
		FrameWorkers:  opts.frameWorkers,
		Supersample:   opts.supersample,
	})
	if err != nil {
		return err
	}

	focus := complex(opts.focusReal, opts.focusImag)
	if opts.landmark != "" {
		var ok bool
		if focus, ok = zoom.Landmark(opts.landmark); !ok {
			return fmt.Errorf("unknown landmark %q (have %v)", opts.landmark, zoom.LandmarkNames())
		}
	}

	plan := zoom.Plan{
		Initial:        plane.Window(0, opts.viewWidth, res),
		Focus:          focus,
		Frames:         opts.frames,
		Scale:          opts.scale,
		RecenterFrames: opts.recenter,
	}
	if err := plan.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return err
	}

	log.Printf("rendering %d frames at %dx%d, search depth %d, focus %v",
		plan.Frames, res.Width, res.Height, opts.maxIterations, focus)

	written := 0
	err = renderer.RenderSequence(ctx, plan, func(k int, frame *image.NRGBA) error {
		name := filepath.Join(opts.outDir, fmt.Sprintf("frame_%04d.png", k))
		if err := writePNG(name, frame); err != nil {
			return err
		}
		written++
		log.Printf("frame %d/%d", k+1, plan.Frames)
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Printf("interrupted; %d complete frames left in %s", written, opts.outDir)
		}
		return err
	}

	log.Printf("done; assemble with: ffmpeg -framerate 5 -i %s -pix_fmt yuv420p zoom.mp4",
		filepath.Join(opts.outDir, "frame_%04d.png"))
	return nil
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
