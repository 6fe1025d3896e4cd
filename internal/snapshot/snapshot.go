// Package snapshot implements full-state capture and restore: every parameter
// base value of both tiers plus the color and navigation presentation state.
// Snapshots feed the undo/redo stacks and the persisted document format.
package snapshot

import (
	"github.com/bmorelli/kaleido-go/internal/palette"
	"github.com/bmorelli/kaleido-go/internal/registry"
)

// Aux is the presentation state that rides along with parameter values.
type Aux struct {
	PaletteIndex   int
	ColorMode      palette.ColorMode
	InvertColors   bool
	ArtisticCursor int
	DebugCursor    int
}

// Snapshot is a value object: an independent copy of all base values plus aux
// state. Mutating the live registry after capture never alters a snapshot.
type Snapshot struct {
	Params map[string]float64
	Aux    Aux
}

// Capture walks every registered key and records its base value (never the
// audio-modulated effective value: snapshots store user intent).
func Capture(reg *registry.Registry, aux Aux) Snapshot {
	params := make(map[string]float64, reg.Len())
	for _, key := range reg.Keys() {
		v, _ := reg.BaseValue(key)
		params[key] = v
	}
	return Snapshot{Params: params, Aux: aux}
}

// Apply writes s's parameter values back into reg through Set, so clamping
// and parity rules hold for values from any source. Keys no longer registered
// are skipped; registered keys absent from s keep their current value.
func Apply(reg *registry.Registry, s Snapshot) {
	for key, v := range s.Params {
		reg.Set(key, v)
	}
}

// Clone returns an independent copy of s.
func (s Snapshot) Clone() Snapshot {
	params := make(map[string]float64, len(s.Params))
	for k, v := range s.Params {
		params[k] = v
	}
	return Snapshot{Params: params, Aux: s.Aux}
}
