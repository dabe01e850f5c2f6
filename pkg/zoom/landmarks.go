package zoom

import "sort"

// Landmarks are classic regions of the Mandelbrot set, usable as zoom foci.
var Landmarks = map[string]complex128{
	// Seahorse Valley – dense filaments and repeating seahorse curls
	"seahorse-valley": complex(-0.75, 0.1),

	// Elephant Valley – large bulb with trunk-like tendrils
	"elephant-valley": complex(-1.8, -0.06),

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	"spiral-minibrot": complex(-0.74275, 0.13175),

	// Triple Spiral – threefold symmetric spiral structure
	"triple-spiral": complex(-0.7465, 0.0965),

	// Valley of the Dragon – deep, highly detailed spiral filaments
	"dragon-valley": complex(-0.7375, 0.1825),
}

// Landmark looks up a named focus point.
func Landmark(name string) (complex128, bool) {
	focus, ok := Landmarks[name]
	return focus, ok
}

// LandmarkNames lists the known landmark names in sorted order.
func LandmarkNames() []string {
	names := make([]string, 0, len(Landmarks))
	for name := range Landmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
