// Package lfo provides the slow periodic modulators used by the demo tone
// generator to keep its drone moving.
package lfo

import "math"

// Shape selects the oscillation shape.
type Shape int

const (
	ShapeSine Shape = iota
	ShapeTriangle
)

// LFO is a low-frequency oscillator producing per-sample modulation in
// [-depth, +depth].
type LFO struct {
	depth  float64
	rateHz float64
	shape  Shape
	phase  float64 // [0, 1)
}

// Set configures depth, rate and shape. Unknown shapes fall back to sine.
func (l *LFO) Set(depth, rateHz float64, shape Shape) {
	l.depth = depth
	l.rateHz = rateHz
	if shape != ShapeSine && shape != ShapeTriangle {
		shape = ShapeSine
	}
	l.shape = shape
}

// SetPhase places the oscillator at a fixed phase offset, so several LFOs at
// the same rate can run staggered.
func (l *LFO) SetPhase(phase float64) {
	l.phase = phase - math.Floor(phase)
}

// Sample advances by one sample and returns the current modulation value.
// Returns 0 when depth or rate is zero.
func (l *LFO) Sample(sampleRate float64) float64 {
	if l.depth == 0 || l.rateHz == 0 || sampleRate == 0 {
		return 0
	}
	var v float64
	switch l.shape {
	case ShapeTriangle:
		if l.phase < 0.5 {
			v = 4.0*l.phase - 1.0
		} else {
			v = 3.0 - 4.0*l.phase
		}
	default:
		v = math.Sin(2 * math.Pi * l.phase)
	}
	l.phase += l.rateHz / sampleRate
	for l.phase >= 1.0 {
		l.phase -= 1.0
	}
	return v * l.depth
}

// Active reports whether the LFO produces non-zero output.
func (l *LFO) Active() bool {
	return l.depth != 0 && l.rateHz != 0
}

// Reset zeroes the phase.
func (l *LFO) Reset() {
	l.phase = 0
}
