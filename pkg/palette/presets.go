package palette

import (
	"fmt"
	"sort"
)

// Gradient presets. "ember" approximates the hot-metal ramp of classic
// Mandelbrot renders: near-black through red and orange to white-hot.
var presets = map[string]Gradient{
	"ember": NewGradient(
		Stop{0.00, Color{10, 2, 0}},
		Stop{0.35, Color{128, 24, 8}},
		Stop{0.65, Color{232, 120, 16}},
		Stop{0.85, Color{255, 216, 96}},
		Stop{1.00, Color{255, 255, 255}},
	),
	"ocean": NewGradient(
		Stop{0.00, Color{0, 7, 60}},
		Stop{0.30, Color{32, 107, 203}},
		Stop{0.60, Color{120, 200, 235}},
		Stop{1.00, Color{237, 255, 255}},
	),
	"verdant": NewGradient(
		Stop{0.00, Color{0, 8, 2}},
		Stop{0.35, Color{0, 90, 40}},
		Stop{0.65, Color{160, 220, 40}},
		Stop{1.00, Color{250, 255, 220}},
	),
	"mono": NewGradient(
		Stop{0.00, Color{0, 0, 0}},
		Stop{1.00, Color{255, 255, 255}},
	),
}

// Preset returns a named gradient preset.
func Preset(name string) (Gradient, error) {
	g, ok := presets[name]
	if !ok {
		return Gradient{}, fmt.Errorf("unknown palette %q (have %v)", name, Names())
	}
	return g, nil
}

// Names lists the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
