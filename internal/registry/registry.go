// Package registry holds the authoritative table of visualizer parameters:
// bounds, stepping, curated defaults and current base values. All mutation goes
// through Set so clamping and integer rules are applied uniformly.
package registry

import (
	"fmt"
	"math"
)

// Tier separates user-facing creative parameters from low-level math constants.
type Tier int

const (
	TierArtistic Tier = iota
	TierDebug
)

// Descriptor declares one parameter. Even implies Integer: the value is floored
// to the nearest even whole number after clamping (used by the kaleidoscope
// segment count, which must stay even for symmetric mirroring).
type Descriptor struct {
	Key      string
	Display  string
	Tier     Tier
	Category string
	Min      float64
	Max      float64
	Step     float64
	Default  float64
	Integer  bool
	Even     bool
}

// UniformName is the rendering-engine input slot for this parameter.
func (d Descriptor) UniformName() string {
	return "u_" + d.Key
}

type parameter struct {
	desc  Descriptor
	value float64
}

// Registry owns every parameter's base value. It is a plain single-threaded
// value; callers that need locking hold it one level up.
type Registry struct {
	params map[string]*parameter
	order  []string
}

// New validates the descriptor table and builds a registry with every
// parameter at its default value.
func New(descs []Descriptor) (*Registry, error) {
	r := &Registry{params: make(map[string]*parameter, len(descs))}
	uniforms := make(map[string]string, len(descs))
	for _, d := range descs {
		if d.Key == "" {
			return nil, fmt.Errorf("descriptor with empty key (display %q)", d.Display)
		}
		if _, dup := r.params[d.Key]; dup {
			return nil, fmt.Errorf("duplicate parameter key %q", d.Key)
		}
		if prev, dup := uniforms[d.UniformName()]; dup {
			return nil, fmt.Errorf("uniform name %q of %q collides with %q", d.UniformName(), d.Key, prev)
		}
		if d.Min > d.Max {
			return nil, fmt.Errorf("parameter %q: min %v > max %v", d.Key, d.Min, d.Max)
		}
		if d.Step <= 0 {
			return nil, fmt.Errorf("parameter %q: step must be positive, got %v", d.Key, d.Step)
		}
		if d.Default < d.Min || d.Default > d.Max {
			return nil, fmt.Errorf("parameter %q: default %v outside [%v, %v]", d.Key, d.Default, d.Min, d.Max)
		}
		if d.Even {
			if !d.Integer {
				return nil, fmt.Errorf("parameter %q: Even requires Integer", d.Key)
			}
			if int(d.Min)%2 != 0 || int(d.Default)%2 != 0 {
				return nil, fmt.Errorf("parameter %q: min and default must be even", d.Key)
			}
		}
		uniforms[d.UniformName()] = d.Key
		r.params[d.Key] = &parameter{desc: d, value: d.Default}
		r.order = append(r.order, d.Key)
	}
	return r, nil
}

// Get returns the descriptor for key. The second return is false for an
// unregistered key; callers treat that as a skip, not a failure.
func (r *Registry) Get(key string) (Descriptor, bool) {
	p, ok := r.params[key]
	if !ok {
		return Descriptor{}, false
	}
	return p.desc, true
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.params[key]
	return ok
}

// BaseValue returns the stored value for key, ignoring any audio overlay.
func (r *Registry) BaseValue(key string) (float64, bool) {
	p, ok := r.params[key]
	if !ok {
		return 0, false
	}
	return p.value, true
}

// Set clamps proposed into the parameter's bounds, applies the integer and
// even-floor rules, and stores the result. NaN proposals leave the stored
// value untouched. Returns false if key is unregistered or the proposal was
// NaN. Set never records undo state; that is the caller's job.
func (r *Registry) Set(key string, proposed float64) bool {
	p, ok := r.params[key]
	if !ok {
		return false
	}
	if math.IsNaN(proposed) {
		return false
	}
	p.value = quantize(p.desc, proposed)
	return true
}

// Adjust moves key by deltaSteps step increments from its current base value.
func (r *Registry) Adjust(key string, deltaSteps float64) bool {
	p, ok := r.params[key]
	if !ok {
		return false
	}
	return r.Set(key, p.value+deltaSteps*p.desc.Step)
}

// Reset restores the curated default for key.
func (r *Registry) Reset(key string) bool {
	p, ok := r.params[key]
	if !ok {
		return false
	}
	p.value = p.desc.Default
	return true
}

// ResetAll restores every parameter in both tiers to its default.
func (r *Registry) ResetAll() {
	for _, p := range r.params {
		p.value = p.desc.Default
	}
}

// Keys returns every registered key in declaration order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered parameters.
func (r *Registry) Len() int {
	return len(r.order)
}

// Descriptors returns every descriptor in declaration order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.params[key].desc)
	}
	return out
}

func quantize(d Descriptor, v float64) float64 {
	if v < d.Min {
		v = d.Min
	} else if v > d.Max {
		v = d.Max
	}
	switch {
	case d.Even:
		// Floor to the nearest even whole number: 7 -> 6, 7.9 -> 6.
		n := int(math.Floor(v))
		if n%2 != 0 {
			n--
		}
		if float64(n) < d.Min {
			n = int(d.Min)
		}
		v = float64(n)
	case d.Integer:
		v = math.Round(v)
	}
	return v
}
