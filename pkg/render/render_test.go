package render

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/benw000/MandelbrotZoom/pkg/palette"
	"github.com/benw000/MandelbrotZoom/pkg/plane"
)

func testSettings(res plane.Resolution) Settings {
	return Settings{
		Resolution:    res,
		MaxIterations: 10,
		Mapper: palette.New(palette.NewGradient(
			palette.Stop{Pos: 0, Color: palette.Color{R: 0, G: 0, B: 64}},
			palette.Stop{Pos: 1, Color: palette.Color{R: 255, G: 255, B: 255}},
		)),
	}
}

func TestNewValidates(t *testing.T) {
	s := testSettings(plane.Resolution{Width: 0, Height: 10})
	if _, err := New(s); !errors.Is(err, plane.ErrInvalidResolution) {
		t.Errorf("got %v, want ErrInvalidResolution", err)
	}

	s = testSettings(plane.Resolution{Width: 10, Height: 10})
	s.MaxIterations = 0
	if _, err := New(s); !errors.Is(err, ErrInvalidIterationBudget) {
		t.Errorf("got %v, want ErrInvalidIterationBudget", err)
	}
}

func TestFrameInteriorAndCorners(t *testing.T) {
	res := plane.Resolution{Width: 10, Height: 10}
	r, err := New(testSettings(res))
	if err != nil {
		t.Fatal(err)
	}

	frame := r.Frame(plane.Window(0, 4.0, res))

	// The pixels nearest the window center map to c ≈ 0, deep interior.
	interior := r.settings.Mapper.Interior
	for _, p := range []image.Point{{4, 4}, {5, 4}, {4, 5}, {5, 5}} {
		c := frame.NRGBAAt(p.X, p.Y)
		if c.R != interior.R || c.G != interior.G || c.B != interior.B {
			t.Errorf("center pixel %v: got %+v, want interior color %+v", p, c, interior)
		}
	}

	// Corner pixels map to c ≈ ±1.8±1.8i, well outside the bound disc.
	for _, p := range []image.Point{{0, 0}, {9, 0}, {0, 9}, {9, 9}} {
		c := frame.NRGBAAt(p.X, p.Y)
		if c.R == interior.R && c.G == interior.G && c.B == interior.B {
			t.Errorf("corner pixel %v rendered as interior", p)
		}
	}
}

func TestFrameDeterministic(t *testing.T) {
	res := plane.Resolution{Width: 32, Height: 24}
	s := testSettings(res)
	s.MaxIterations = 40
	s.Workers = 4
	r, err := New(s)
	if err != nil {
		t.Fatal(err)
	}

	w := plane.Window(complex(-0.75, 0.1), 0.5, res)
	a := r.Frame(w)
	b := r.Frame(w)

	if diff := cmp.Diff(a.Pix, b.Pix); diff != "" {
		t.Errorf("identical inputs produced different buffers (-a +b):\n%s", diff)
	}
}

func TestFrameWorkerCountIrrelevant(t *testing.T) {
	res := plane.Resolution{Width: 17, Height: 13} // odd sizes exercise stripe edges
	w := plane.Window(complex(-0.5, 0), 3.0, res)

	s := testSettings(res)
	s.Workers = 1
	serial, err := New(s)
	if err != nil {
		t.Fatal(err)
	}

	s.Workers = 8
	parallel, err := New(s)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(serial.Frame(w).Pix, parallel.Frame(w).Pix); diff != "" {
		t.Errorf("worker count changed the output (-serial +parallel):\n%s", diff)
	}
}

func TestFrameSupersampleDimensions(t *testing.T) {
	res := plane.Resolution{Width: 20, Height: 10}
	s := testSettings(res)
	s.Supersample = 2
	r, err := New(s)
	if err != nil {
		t.Fatal(err)
	}

	frame := r.Frame(plane.DefaultWindow(res))
	if got := frame.Bounds(); got.Dx() != res.Width || got.Dy() != res.Height {
		t.Errorf("got bounds %v, want %dx%d", got, res.Width, res.Height)
	}
}
