package overlay

import (
	"math"
	"testing"

	"github.com/bmorelli/kaleido-go/internal/analyzer"
	"github.com/bmorelli/kaleido-go/internal/registry"
)

func newReg(t *testing.T) *registry.Registry {
	t.Helper()
	r, err := registry.New(registry.Table())
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	return r
}

func TestShadowSupersedesBase(t *testing.T) {
	reg := newReg(t)
	o := New(reg)

	reg.Set("contrast", 1.0)
	o.Set("contrast", 1.8)

	if v, ok := o.Value("contrast"); !ok || v != 1.8 {
		t.Fatalf("overlay value = %v (present %v), want 1.8", v, ok)
	}
	if base, _ := reg.BaseValue("contrast"); base != 1.0 {
		t.Fatalf("base value = %v, want untouched 1.0", base)
	}

	o.ResetAll()
	if o.Has("contrast") {
		t.Fatal("shadow survived ResetAll")
	}
}

func TestSetIgnoresUnknownKey(t *testing.T) {
	o := New(newReg(t))
	o.Set("tpyoed_key", 5)
	if o.Len() != 0 {
		t.Fatalf("overlay has %d entries after unknown-key set, want 0", o.Len())
	}
}

func TestDefaultPresetModulatesRelativeToBase(t *testing.T) {
	reg := newReg(t)
	o := New(reg)
	m := NewMapper(reg)

	reg.Set("contrast", 1.0)
	m.Apply(o, analyzer.Bands{Overall: 0.5})

	v, ok := o.Value("contrast")
	if !ok {
		t.Fatal("contrast not shadowed by default preset")
	}
	want := 1.0 * (1 + 0.5*0.8)
	if math.Abs(v-want) > 1e-9 {
		t.Fatalf("contrast shadow = %v, want %v", v, want)
	}

	// Silence maps back to the base value.
	m.Apply(o, analyzer.Bands{})
	if v, _ := o.Value("contrast"); v != 1.0 {
		t.Fatalf("contrast shadow at silence = %v, want base 1.0", v)
	}
}

func TestCustomTableSupersedesPreset(t *testing.T) {
	reg := newReg(t)
	o := New(reg)
	m := NewMapper(reg)
	m.SetCustom([]Mapping{
		{Key: "fly_speed", Source: SourceBass, Sensitivity: 1.0, Mode: ModeMultiply},
	})

	m.Apply(o, analyzer.Bands{Bass: 1, Overall: 1})

	if !o.Has("fly_speed") {
		t.Fatal("custom mapping did not apply")
	}
	if o.Has("contrast") {
		t.Fatal("default preset leaked through a non-empty custom table")
	}
}

func TestMultipleMappingsComposeMultiplicatively(t *testing.T) {
	reg := newReg(t)
	o := New(reg)
	m := NewMapper(reg)
	m.SetCustom([]Mapping{
		{Key: "zoom_level", Source: SourceBass, Sensitivity: 0.5, Mode: ModeMultiply},
		{Key: "zoom_level", Source: SourceTreble, Sensitivity: 0.5, Mode: ModeMultiply},
	})

	reg.Set("zoom_level", 2.0)
	m.Apply(o, analyzer.Bands{Bass: 1, Treble: 1})

	v, _ := o.Value("zoom_level")
	want := 2.0 * 1.5 * 1.5
	if math.Abs(v-want) > 1e-9 {
		t.Fatalf("zoom_level shadow = %v, want %v (composed against one base)", v, want)
	}
}

func TestBeatEnvelopeDecays(t *testing.T) {
	reg := newReg(t)
	o := New(reg)
	m := NewMapper(reg)
	m.SetCustom([]Mapping{
		{Key: "glow_intensity", Source: SourceBeat, Sensitivity: 1.0, Mode: ModeOffset},
	})

	base, _ := reg.BaseValue("glow_intensity")
	m.Apply(o, analyzer.Bands{Beat: true})
	onBeat, _ := o.Value("glow_intensity")
	if onBeat <= base {
		t.Fatalf("beat did not raise glow: %v <= %v", onBeat, base)
	}
	m.Apply(o, analyzer.Bands{})
	after, _ := o.Value("glow_intensity")
	if after >= onBeat || after <= base {
		t.Fatalf("beat envelope did not decay: beat %v, next %v, base %v", onBeat, after, base)
	}
}

func TestMappingWithUnknownKeyIsSkipped(t *testing.T) {
	reg := newReg(t)
	o := New(reg)
	m := NewMapper(reg)
	m.SetCustom([]Mapping{
		{Key: "not_a_parameter", Source: SourceBass, Sensitivity: 1.0, Mode: ModeMultiply},
		{Key: "contrast", Source: SourceBass, Sensitivity: 1.0, Mode: ModeMultiply},
	})
	m.Apply(o, analyzer.Bands{Bass: 1})
	if o.Len() != 1 {
		t.Fatalf("overlay has %d entries, want 1 (unknown key skipped)", o.Len())
	}
}
