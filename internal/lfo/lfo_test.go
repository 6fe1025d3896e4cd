package lfo

import (
	"math"
	"testing"
)

func TestInactiveLFOOutputsZero(t *testing.T) {
	var l LFO
	if l.Active() {
		t.Fatal("zero-value LFO reports active")
	}
	if v := l.Sample(48000); v != 0 {
		t.Fatalf("inactive sample = %v, want 0", v)
	}
}

func TestSineStaysWithinDepth(t *testing.T) {
	var l LFO
	l.Set(0.5, 3, ShapeSine)
	for i := 0; i < 48000; i++ {
		v := l.Sample(48000)
		if math.Abs(v) > 0.5+1e-9 {
			t.Fatalf("sample %d = %v exceeds depth 0.5", i, v)
		}
	}
}

func TestTriangleCompletesCycle(t *testing.T) {
	var l LFO
	l.Set(1, 1, ShapeTriangle)
	// One full cycle at 1 Hz / 1 kHz sample rate; sum over a period is ~0.
	sum := 0.0
	for i := 0; i < 1000; i++ {
		sum += l.Sample(1000)
	}
	if math.Abs(sum) > 0.01*1000 {
		t.Fatalf("triangle over one period sums to %v, want ~0", sum)
	}
}

func TestSetPhaseStaggers(t *testing.T) {
	var a, b LFO
	a.Set(1, 2, ShapeSine)
	b.Set(1, 2, ShapeSine)
	b.SetPhase(0.25)
	va := a.Sample(48000)
	vb := b.Sample(48000)
	if va == vb {
		t.Fatal("staggered LFOs produced identical first samples")
	}
}
