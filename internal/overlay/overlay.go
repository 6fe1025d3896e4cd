// Package overlay implements the transient audio-modifier layer: a sparse map
// of shadow values that supersede parameter base values while reactivity is
// active, and the mapping tables that compute those shadows from band levels.
package overlay

import "github.com/bmorelli/kaleido-go/internal/registry"

// Overlay is a sparse key -> shadow-value map. A present key means the
// effective value is the shadow, not the parameter's stored base value.
// Shadows never persist: they are cleared wholesale when reactivity stops.
type Overlay struct {
	reg     *registry.Registry
	shadows map[string]float64
}

// New returns an empty overlay validated against reg's key set.
func New(reg *registry.Registry) *Overlay {
	return &Overlay{reg: reg, shadows: make(map[string]float64)}
}

// Set installs a shadow value for key. Unknown keys are ignored so a typo in
// a mapping table cannot corrupt state.
func (o *Overlay) Set(key string, value float64) {
	if !o.reg.Has(key) {
		return
	}
	o.shadows[key] = value
}

// Value returns the shadow for key and whether one is present.
func (o *Overlay) Value(key string) (float64, bool) {
	v, ok := o.shadows[key]
	return v, ok
}

// Has reports whether key currently has a shadow.
func (o *Overlay) Has(key string) bool {
	_, ok := o.shadows[key]
	return ok
}

// Len returns the number of active shadows.
func (o *Overlay) Len() int {
	return len(o.shadows)
}

// ResetAll clears every shadow, reverting all effective values to user-set
// bases. Called whenever audio reactivity transitions to inactive.
func (o *Overlay) ResetAll() {
	clear(o.shadows)
}
