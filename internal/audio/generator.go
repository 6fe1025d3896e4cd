package audio

import (
	"math"
	"sync"

	"github.com/bmorelli/kaleido-go/internal/lfo"
)

// Generator synthesizes an endless demo drone with a kick pulse, so the
// visualizer has something to react to without a microphone or media file:
// a bass foundation for the low bands, a slowly shifting pad for the mids,
// a sparkle voice for the highs, and a kick every beat for the detector.
type Generator struct {
	mu         sync.Mutex
	sampleRate float64
	gain       float64
	bpm        float64

	phaseBass    float64
	phasePad     [3]float64
	phaseSparkle float64
	kickClock    float64
	kickEnv      float64

	padAmp     lfo.LFO
	sparkleAmp lfo.LFO

	tap func([]float32)
}

// padDetune are the pad oscillator frequency ratios against the root.
var padDetune = [3]float64{1.0, 1.498, 2.003}

// NewGenerator returns a generator at the given rate and tempo. tap, if
// non-nil, receives every produced stereo buffer (audio thread; keep brief).
func NewGenerator(sampleRate int, bpm float64, tap func([]float32)) *Generator {
	g := &Generator{
		sampleRate: float64(sampleRate),
		gain:       0.5,
		bpm:        bpm,
		tap:        tap,
	}
	g.padAmp.Set(0.35, 0.13, lfo.ShapeSine)
	g.sparkleAmp.Set(0.5, 0.41, lfo.ShapeTriangle)
	g.sparkleAmp.SetPhase(0.5)
	return g
}

// SetGain sets the output gain, clamped to [0, 1].
func (g *Generator) SetGain(gain float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if gain < 0 {
		gain = 0
	}
	if gain > 1 {
		gain = 1
	}
	g.gain = gain
}

// Process renders interleaved stereo frames into dst.
func (g *Generator) Process(dst []float32) {
	g.mu.Lock()
	sr := g.sampleRate
	beatLen := sr * 60 / g.bpm
	const rootHz = 55.0

	for i := 0; i+1 < len(dst); i += 2 {
		// Kick trigger and exponential decay envelope.
		g.kickClock++
		if g.kickClock >= beatLen {
			g.kickClock -= beatLen
			g.kickEnv = 1
		}
		g.kickEnv *= 0.9994

		// Bass: root sine, pitch-bent downward by the kick envelope.
		bassHz := rootHz * (1 + 0.8*g.kickEnv)
		g.phaseBass += bassHz / sr
		bass := math.Sin(2*math.Pi*g.phaseBass) * (0.5 + 0.5*g.kickEnv)

		// Pad: three detuned partials with slow amplitude movement.
		padLevel := 0.45 + g.padAmp.Sample(sr)
		pad := 0.0
		for v := range g.phasePad {
			g.phasePad[v] += rootHz * 4 * padDetune[v] / sr
			pad += math.Sin(2 * math.Pi * g.phasePad[v])
		}
		pad = pad / 3 * padLevel

		// Sparkle: a high partial that fades in and out.
		sparkleLevel := 0.18 + g.sparkleAmp.Sample(sr)*0.18
		g.phaseSparkle += rootHz * 32 / sr
		sparkle := math.Sin(2*math.Pi*g.phaseSparkle) * sparkleLevel

		s := float32((bass*0.6 + pad*0.3 + sparkle*0.1) * g.gain)
		dst[i] = s
		dst[i+1] = s
	}
	tap := g.tap
	g.mu.Unlock()

	if tap != nil {
		tap(dst)
	}
}
