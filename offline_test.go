package kaleido

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/require"
)

// writeTestWAV renders a mono 16-bit sine to a temp file.
func writeTestWAV(t *testing.T, freq float64, sampleRate int, seconds float64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	n := int(float64(sampleRate) * seconds)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, n),
	}
	for i := 0; i < n; i++ {
		s := math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
		buf.Data[i] = int(s * 0.9 * 32767)
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
	return path
}

func TestStreamWAVChunking(t *testing.T) {
	const (
		rate = 8000
		fps  = 40
	)
	path := writeTestWAV(t, 440, rate, 1.0)

	var (
		chunks   int
		gotRate  int
		chunkLen int
	)
	err := StreamWAV(path, fps, func(sampleRate int, chunk []float32) error {
		gotRate = sampleRate
		chunkLen = len(chunk)
		chunks++
		for _, s := range chunk {
			require.LessOrEqual(t, math.Abs(float64(s)), 1.0)
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, rate, gotRate)
	require.Equal(t, rate/fps*2, chunkLen, "chunks are interleaved stereo")
	require.Equal(t, fps, chunks, "one chunk per frame for one second of audio")
}

func TestStreamWAVErrors(t *testing.T) {
	path := writeTestWAV(t, 440, 8000, 0.1)
	require.Error(t, StreamWAV(path, 0, func(int, []float32) error { return nil }))
	require.Error(t, StreamWAV(filepath.Join(t.TempDir(), "missing.wav"), 60, func(int, []float32) error { return nil }))
}

func TestAnalyzeWAVProducesLevels(t *testing.T) {
	path := writeTestWAV(t, 100, 8000, 1.0)
	bands, err := AnalyzeWAV(path, 30)
	require.NoError(t, err)
	require.Len(t, bands, 30)

	// Once the analysis window fills, a loud low tone shows up in the bass
	// aggregate and stays out of the treble end.
	last := bands[len(bands)-1]
	require.Greater(t, last.Bass, 0.1)
	require.Greater(t, last.Bass, last.Treble)
	require.GreaterOrEqual(t, last.Overall, 0.0)
}
