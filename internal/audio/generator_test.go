package audio

import "testing"

func TestGeneratorProducesEnergy(t *testing.T) {
	g := NewGenerator(48000, 120, nil)
	buf := make([]float32, 48000/4*2)
	g.Process(buf)

	var energy float64
	for _, s := range buf {
		if s < 0 {
			energy -= float64(s)
		} else {
			energy += float64(s)
		}
	}
	if energy == 0 {
		t.Fatal("expected non-zero audio energy")
	}
}

func TestGeneratorStaysInRange(t *testing.T) {
	g := NewGenerator(48000, 140, nil)
	buf := make([]float32, 48000*2)
	g.Process(buf)
	for i, s := range buf {
		if s < -1 || s > 1 {
			t.Fatalf("sample %d = %v outside [-1, 1]", i, s)
		}
	}
}

func TestGeneratorTapSeesEveryBuffer(t *testing.T) {
	var tapped int
	g := NewGenerator(48000, 120, func(samples []float32) {
		tapped += len(samples)
	})
	buf := make([]float32, 2048)
	g.Process(buf)
	g.Process(buf)
	if tapped != 4096 {
		t.Fatalf("tap saw %d samples, want 4096", tapped)
	}
}

func TestGainClamps(t *testing.T) {
	g := NewGenerator(48000, 120, nil)
	g.SetGain(5)
	buf := make([]float32, 4096)
	g.Process(buf)
	for i, s := range buf {
		if s < -1 || s > 1 {
			t.Fatalf("sample %d = %v with clamped gain", i, s)
		}
	}
}
