package kaleido

import (
	"github.com/bmorelli/kaleido-go/internal/analyzer"
	"github.com/bmorelli/kaleido-go/internal/overlay"
)

// Bands is one frame of normalized (0..1) frequency-band levels plus a beat
// trigger: ten fine bands from sub-bass to ultra-high, and the four coarse
// aggregates older mappings use.
type Bands struct {
	SubBass    float64
	LowBass    float64
	HighBass   float64
	LowMid     float64
	CenterMid  float64
	HighMid    float64
	Presence   float64
	Brilliance float64
	Air        float64
	Ultra      float64

	Bass    float64
	Mid     float64
	Treble  float64
	Overall float64

	Beat bool
}

// Source selects which band level or control signal drives a mapping.
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
	// ModeMultiply computes base * (1 + level*sensitivity); several multiply
	// mappings on one key compose multiplicatively against the same base.
	ModeMultiply Mode = iota
	// ModeOffset computes base + level*sensitivity.
	ModeOffset
)

// Mapping routes one band or control signal into one parameter. Mappings to
// unknown keys are silently skipped.
type Mapping struct {
	Key         string
	Source      Source
	Sensitivity float64
	Mode        Mode
}

func mappingsToInternal(in []Mapping) []overlay.Mapping {
	out := make([]overlay.Mapping, 0, len(in))
	for _, m := range in {
		out = append(out, overlay.Mapping{
			Key:         m.Key,
			Source:      overlay.Source(m.Source),
			Sensitivity: m.Sensitivity,
			Mode:        overlay.Mode(m.Mode),
		})
	}
	return out
}

func mappingsFromInternal(in []overlay.Mapping) []Mapping {
	out := make([]Mapping, 0, len(in))
	for _, m := range in {
		out = append(out, Mapping{
			Key:         m.Key,
			Source:      Source(m.Source),
			Sensitivity: m.Sensitivity,
			Mode:        Mode(m.Mode),
		})
	}
	return out
}

func bandsFromInternal(b analyzer.Bands) Bands {
	return Bands{
		SubBass:    b.SubBass,
		LowBass:    b.LowBass,
		HighBass:   b.HighBass,
		LowMid:     b.LowMid,
		CenterMid:  b.CenterMid,
		HighMid:    b.HighMid,
		Presence:   b.Presence,
		Brilliance: b.Brilliance,
		Air:        b.Air,
		Ultra:      b.Ultra,
		Bass:       b.Bass,
		Mid:        b.Mid,
		Treble:     b.Treble,
		Overall:    b.Overall,
		Beat:       b.Beat,
	}
}
