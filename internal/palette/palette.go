// Package palette holds the curated cosine-gradient palettes and the color
// presentation state that rides alongside the parameter registry.
package palette

// Vec3 is one RGB coefficient vector.
type Vec3 [3]float64

// Palette is a cosine gradient: color(t) = A + B*cos(2pi*(C*t + D)).
type Palette struct {
	Name string
	A    Vec3
	B    Vec3
	C    Vec3
	D    Vec3
}

// Coefficients returns the four coefficient vectors in upload order.
func (p Palette) Coefficients() [4]Vec3 {
	return [4]Vec3{p.A, p.B, p.C, p.D}
}

// Builtin returns the curated palette table.
func Builtin() []Palette {
	return []Palette{
		{Name: "Ember", A: Vec3{0.50, 0.50, 0.50}, B: Vec3{0.50, 0.50, 0.50}, C: Vec3{1.00, 1.00, 1.00}, D: Vec3{0.00, 0.10, 0.20}},
		{Name: "Lagoon", A: Vec3{0.50, 0.50, 0.50}, B: Vec3{0.50, 0.50, 0.50}, C: Vec3{1.00, 1.00, 1.00}, D: Vec3{0.30, 0.20, 0.20}},
		{Name: "Verdant", A: Vec3{0.50, 0.50, 0.50}, B: Vec3{0.50, 0.50, 0.50}, C: Vec3{1.00, 1.00, 0.50}, D: Vec3{0.80, 0.90, 0.30}},
		{Name: "Dusk", A: Vec3{0.50, 0.50, 0.50}, B: Vec3{0.50, 0.50, 0.50}, C: Vec3{1.00, 0.70, 0.40}, D: Vec3{0.00, 0.15, 0.20}},
		{Name: "Orchid", A: Vec3{0.50, 0.50, 0.50}, B: Vec3{0.50, 0.50, 0.50}, C: Vec3{2.00, 1.00, 0.00}, D: Vec3{0.50, 0.20, 0.25}},
		{Name: "Ice", A: Vec3{0.80, 0.50, 0.40}, B: Vec3{0.20, 0.40, 0.20}, C: Vec3{2.00, 1.00, 1.00}, D: Vec3{0.00, 0.25, 0.25}},
	}
}

// ColorMode selects how the renderer colors the pattern.
type ColorMode int

const (
	// ColorModeMono renders without palette coloring.
	ColorModeMono ColorMode = iota
	// ColorModePalette colors via the selected cosine palette.
	ColorModePalette
	// ColorModeSpectrum maps depth directly to hue, ignoring the palette.
	ColorModeSpectrum
)

// State is the color presentation state captured into every snapshot.
type State struct {
	Index  int
	Mode   ColorMode
	Invert bool
}

// DefaultState starts on the first palette with coloring enabled.
func DefaultState() State {
	return State{Index: 0, Mode: ColorModePalette}
}

// Current returns the selected palette from table, clamping a stale index.
func (s State) Current(table []Palette) Palette {
	if len(table) == 0 {
		return Palette{}
	}
	i := s.Index
	if i < 0 {
		i = 0
	}
	if i >= len(table) {
		i = len(table) - 1
	}
	return table[i]
}

// Cycle moves the palette index by delta with wraparound.
func (s *State) Cycle(table []Palette, delta int) {
	n := len(table)
	if n == 0 {
		return
	}
	s.Index = ((s.Index+delta)%n + n) % n
}
