package overlay

import (
	"github.com/bmorelli/kaleido-go/internal/analyzer"
	"github.com/bmorelli/kaleido-go/internal/registry"
)

// Source selects which band level (or control signal) drives a mapping.
type Source int

const (
	SourceSubBass Source = iota
	SourceLowBass
	SourceHighBass
	SourceLowMid
	SourceCenterMid
	SourceHighMid
	SourcePresence
	SourceBrilliance
	SourceAir
	SourceUltra
	SourceBass
	SourceMid
	SourceTreble
	SourceOverall
	SourceBeat
)

// Mode selects how a mapping combines with the parameter's base value.
type Mode int

const (
	// ModeMultiply computes base * (1 + level*sensitivity). Multiple multiply
	// mappings on the same key compose multiplicatively against the same base.
	ModeMultiply Mode = iota
	// ModeOffset computes base + level*sensitivity.
	ModeOffset
)

// Mapping routes one band or control signal into one parameter.
type Mapping struct {
	Key         string
	Source      Source
	Sensitivity float64
	Mode        Mode
}

// beatDecay is the per-frame falloff of the beat envelope at ~60 Hz.
const beatDecay = 0.90

// Mapper evaluates a mapping table against fresh band levels each frame and
// writes the resulting shadows through an Overlay. When the custom table is
// empty the built-in default preset applies; a non-empty custom table
// supersedes the preset entirely.
type Mapper struct {
	reg     *registry.Registry
	custom  []Mapping
	beatEnv float64
}

// NewMapper returns a mapper over reg using the built-in preset.
func NewMapper(reg *registry.Registry) *Mapper {
	return &Mapper{reg: reg}
}

// SetCustom replaces the custom mapping table. An empty slice reverts to the
// built-in preset.
func (m *Mapper) SetCustom(mappings []Mapping) {
	m.custom = append(m.custom[:0:0], mappings...)
}

// Custom returns a copy of the custom mapping table.
func (m *Mapper) Custom() []Mapping {
	return append([]Mapping(nil), m.custom...)
}

// Apply recomputes every mapped shadow from b against current base values and
// replaces the overlay's contents with the result. Modulation is always
// relative to the base, so clearing the overlay later lands back on the base
// value without a visual jump.
func (m *Mapper) Apply(o *Overlay, b analyzer.Bands) {
	if b.Beat {
		m.beatEnv = 1
	} else {
		m.beatEnv *= beatDecay
	}

	table := m.custom
	if len(table) == 0 {
		table = defaultPreset
	}

	factors := make(map[string]float64, len(table))
	offsets := make(map[string]float64)
	for _, mp := range table {
		if !m.reg.Has(mp.Key) {
			continue
		}
		level := m.level(b, mp.Source)
		switch mp.Mode {
		case ModeOffset:
			offsets[mp.Key] += level * mp.Sensitivity
		default:
			f, ok := factors[mp.Key]
			if !ok {
				f = 1
			}
			factors[mp.Key] = f * (1 + level*mp.Sensitivity)
		}
	}

	o.ResetAll()
	for key, f := range factors {
		base, _ := m.reg.BaseValue(key)
		o.Set(key, base*f+offsets[key])
		delete(offsets, key)
	}
	for key, d := range offsets {
		base, _ := m.reg.BaseValue(key)
		o.Set(key, base+d)
	}
}

// Reset zeroes the beat envelope.
func (m *Mapper) Reset() {
	m.beatEnv = 0
}

func (m *Mapper) level(b analyzer.Bands, s Source) float64 {
	switch s {
	case SourceSubBass:
		return b.SubBass
	case SourceLowBass:
		return b.LowBass
	case SourceHighBass:
		return b.HighBass
	case SourceLowMid:
		return b.LowMid
	case SourceCenterMid:
		return b.CenterMid
	case SourceHighMid:
		return b.HighMid
	case SourcePresence:
		return b.Presence
	case SourceBrilliance:
		return b.Brilliance
	case SourceAir:
		return b.Air
	case SourceUltra:
		return b.Ultra
	case SourceBass:
		return b.Bass
	case SourceMid:
		return b.Mid
	case SourceTreble:
		return b.Treble
	case SourceOverall:
		return b.Overall
	case SourceBeat:
		return m.beatEnv
	default:
		return 0
	}
}

// defaultPreset is hand-tuned routing used when no custom table exists:
// bass into the radius-ish shape controls, mids into rotation, treble into
// pattern complexity, overall loudness into contrast, beats into glow.
// Sensitivities are tuning data, not load-bearing constants.
var defaultPreset = []Mapping{
	{Key: "truchet_radius", Source: SourceBass, Sensitivity: 0.8, Mode: ModeMultiply},
	{Key: "zoom_level", Source: SourceSubBass, Sensitivity: 0.3, Mode: ModeMultiply},
	{Key: "rotation_speed", Source: SourceMid, Sensitivity: 0.6, Mode: ModeMultiply},
	{Key: "pattern_density", Source: SourceTreble, Sensitivity: 0.5, Mode: ModeMultiply},
	{Key: "detail_level", Source: SourceTreble, Sensitivity: 0.25, Mode: ModeMultiply},
	{Key: "contrast", Source: SourceOverall, Sensitivity: 0.8, Mode: ModeMultiply},
	{Key: "glow_intensity", Source: SourceBeat, Sensitivity: 0.6, Mode: ModeOffset},
}
