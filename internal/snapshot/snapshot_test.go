package snapshot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/bmorelli/kaleido-go/internal/palette"
	"github.com/bmorelli/kaleido-go/internal/registry"
)

func newReg(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.New(registry.Table())
	require.NoError(t, err)
	return reg
}

func TestCaptureIsIndependentOfLiveState(t *testing.T) {
	reg := newReg(t)
	reg.Set("contrast", 2.0)

	snap := Capture(reg, Aux{PaletteIndex: 3})
	reg.Set("contrast", 0.5)

	require.Equal(t, 2.0, snap.Params["contrast"], "snapshot mutated by later registry write")
}

func TestCaptureCoversEveryRegisteredKey(t *testing.T) {
	reg := newReg(t)
	snap := Capture(reg, Aux{})
	require.Len(t, snap.Params, reg.Len())
}

func TestRoundTripIsIdempotent(t *testing.T) {
	reg := newReg(t)
	reg.Set("fly_speed", 1.15)
	reg.Set("kaleidoscope_segments", 12)

	before := Capture(reg, Aux{PaletteIndex: 2, ColorMode: palette.ColorModeSpectrum, InvertColors: true})
	Apply(reg, before)
	after := Capture(reg, before.Aux)

	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("restore(capture()) changed state (-before +after):\n%s", diff)
	}
}

func TestApplyEnforcesParityAndBounds(t *testing.T) {
	reg := newReg(t)
	snap := Capture(reg, Aux{})
	snap.Params["kaleidoscope_segments"] = 7
	snap.Params["contrast"] = 99

	Apply(reg, snap)

	segs, _ := reg.BaseValue("kaleidoscope_segments")
	require.Equal(t, 6.0, segs, "parity must hold through restore")
	contrast, _ := reg.BaseValue("contrast")
	require.Equal(t, 5.0, contrast, "restore must clamp to bounds")
}

func TestApplySkipsUnknownAndAbsentKeys(t *testing.T) {
	reg := newReg(t)
	reg.Set("layer_count", 9)

	snap := Capture(reg, Aux{})
	delete(snap.Params, "layer_count")
	snap.Params["retired_parameter"] = 1.0
	snap.Params["glow_intensity"] = 1.2

	Apply(reg, snap)

	lc, _ := reg.BaseValue("layer_count")
	require.Equal(t, 9.0, lc, "absent key must keep its pre-restore value")
	glow, _ := reg.BaseValue("glow_intensity")
	require.Equal(t, 1.2, glow)
}

func TestCloneIsDeep(t *testing.T) {
	reg := newReg(t)
	a := Capture(reg, Aux{})
	b := a.Clone()
	b.Params["contrast"] = 4.0
	require.NotEqual(t, a.Params["contrast"], b.Params["contrast"])
}
