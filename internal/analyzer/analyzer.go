// Package analyzer turns raw audio samples into the normalized band levels
// and beat trigger consumed by the audio-modifier overlay. Samples arrive on
// the audio thread through Tap; Frame is polled once per animation frame.
package analyzer

import (
	"math"
	"sync"
)

const (
	fftSize    = 2048
	ringBufLen = 16384
)

// bandEdges are the fine-band boundaries in Hz: sub-bass through ultra-high.
var bandEdges = [11]float64{20, 60, 120, 250, 500, 2000, 4000, 6000, 10000, 14000, 18000}

// Analyzer accumulates tapped samples in a ring buffer and computes smoothed
// band levels over the most recent FFT window.
type Analyzer struct {
	mu         sync.Mutex
	sampleRate int
	ring       []float32
	writePos   int
	total      int64

	levels [10]float64
	beat   beatDetector
}

// New returns an analyzer for the given sample rate.
func New(sampleRate int) *Analyzer {
	return &Analyzer{
		sampleRate: sampleRate,
		ring:       make([]float32, ringBufLen),
	}
}

// Tap consumes an interleaved stereo buffer. It runs on the audio thread;
// only a mono downmix copy happens under the lock.
func (a *Analyzer) Tap(samples []float32) {
	a.mu.Lock()
	for i := 0; i+1 < len(samples); i += 2 {
		mono := (samples[i] + samples[i+1]) * 0.5
		a.ring[a.writePos] = mono
		a.writePos = (a.writePos + 1) % ringBufLen
		a.total++
	}
	a.mu.Unlock()
}

// Total returns the number of mono samples tapped so far.
func (a *Analyzer) Total() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.total
}

// Reset clears the buffer, smoothing state and beat history.
func (a *Analyzer) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.ring {
		a.ring[i] = 0
	}
	a.writePos = 0
	a.total = 0
	a.levels = [10]float64{}
	a.beat = beatDetector{}
}

// Frame analyzes the most recent FFT window and returns smoothed band levels
// plus the beat flag. Call once per animation frame.
func (a *Analyzer) Frame() Bands {
	window := make([]float32, fftSize)
	a.mu.Lock()
	start := (a.writePos - fftSize + ringBufLen*2) % ringBufLen
	for i := 0; i < fftSize; i++ {
		window[i] = a.ring[(start+i)%ringBufLen]
	}
	a.mu.Unlock()

	raw := a.bandMagnitudes(window)
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, v := range raw {
		// Fast attack, slow release, like a spectrum display.
		prev := a.levels[i]
		if v > prev {
			a.levels[i] = prev*0.3 + v*0.7
		} else {
			a.levels[i] = prev*0.85 + v*0.15
		}
	}
	b := Bands{
		SubBass:    a.levels[0],
		LowBass:    a.levels[1],
		HighBass:   a.levels[2],
		LowMid:     a.levels[3],
		CenterMid:  a.levels[4],
		HighMid:    a.levels[5],
		Presence:   a.levels[6],
		Brilliance: a.levels[7],
		Air:        a.levels[8],
		Ultra:      a.levels[9],
	}
	b.Bass = (b.SubBass + b.LowBass + b.HighBass) / 3
	b.Mid = (b.LowMid + b.CenterMid + b.HighMid) / 3
	b.Treble = (b.Presence + b.Brilliance + b.Air + b.Ultra) / 4
	sum := 0.0
	for _, v := range a.levels {
		sum += v
	}
	b.Overall = sum / 10
	b.Beat = a.beat.update(raw[0] + raw[1])
	return b
}

// bandMagnitudes converts one window into ten normalized (0..1) band levels.
func (a *Analyzer) bandMagnitudes(window []float32) [10]float64 {
	buf := make([]complex128, fftSize)
	hannWindow(buf, window)
	fft(buf)

	var out [10]float64
	binHz := float64(a.sampleRate) / float64(fftSize)
	half := fftSize / 2
	for band := 0; band < 10; band++ {
		lo := int(bandEdges[band] / binHz)
		hi := int(bandEdges[band+1] / binHz)
		if lo < 1 {
			lo = 1
		}
		if hi > half {
			hi = half
		}
		if hi <= lo {
			hi = lo + 1
		}
		sum := 0.0
		for i := lo; i < hi && i < len(buf); i++ {
			re := real(buf[i])
			im := imag(buf[i])
			sum += math.Sqrt(re*re + im*im)
		}
		mean := sum / float64(hi-lo)
		// Map log magnitude into 0..1 with a -60 dB floor.
		db := 20 * math.Log10(mean/float64(fftSize)+1e-9)
		norm := (db + 60) / 60
		if norm < 0 {
			norm = 0
		}
		if norm > 1 {
			norm = 1
		}
		out[band] = norm
	}
	return out
}
