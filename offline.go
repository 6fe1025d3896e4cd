package kaleido

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/wav"

	"github.com/bmorelli/kaleido-go/internal/analyzer"
)

// StreamWAV decodes a WAV file and hands fn one interleaved stereo float32
// chunk per animation frame at fps, along with the file's sample rate on the
// first call. Mono files are upmixed; extra channels beyond two are dropped.
// This is the microphone-free reactivity path: feed each chunk to Core.Tap,
// then call Advance, exactly as the realtime loop would.
func StreamWAV(path string, fps int, fn func(sampleRate int, chunk []float32) error) error {
	if fps <= 0 {
		return errors.New("fps must be positive")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("decode wav: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels <= 0 || buf.Format.SampleRate <= 0 {
		return errors.New("wav has no usable format")
	}
	if dec.BitDepth == 0 || dec.BitDepth > 32 {
		return fmt.Errorf("unsupported bit depth %d", dec.BitDepth)
	}

	channels := buf.Format.NumChannels
	rate := buf.Format.SampleRate
	scale := float32(uint64(1) << (dec.BitDepth - 1))
	perFrame := rate / fps
	if perFrame <= 0 {
		return fmt.Errorf("fps %d too high for sample rate %d", fps, rate)
	}

	chunk := make([]float32, perFrame*2)
	frames := len(buf.Data) / channels
	for start := 0; start+perFrame <= frames; start += perFrame {
		for i := 0; i < perFrame; i++ {
			base := (start + i) * channels
			l := float32(buf.Data[base]) / scale
			r := l
			if channels > 1 {
				r = float32(buf.Data[base+1]) / scale
			}
			chunk[i*2] = l
			chunk[i*2+1] = r
		}
		if err := fn(rate, chunk); err != nil {
			return err
		}
	}
	return nil
}

// AnalyzeWAV runs the band analyzer over path and returns one Bands frame
// per animation frame at fps.
func AnalyzeWAV(path string, fps int) ([]Bands, error) {
	var (
		an  *analyzer.Analyzer
		out []Bands
	)
	err := StreamWAV(path, fps, func(sampleRate int, chunk []float32) error {
		if an == nil {
			an = analyzer.New(sampleRate)
		}
		an.Tap(chunk)
		out = append(out, bandsFromInternal(an.Frame()))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
