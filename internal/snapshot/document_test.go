package snapshot

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bmorelli/kaleido-go/internal/overlay"
)

func TestDocumentRoundTrip(t *testing.T) {
	reg := newReg(t)
	reg.Set("truchet_radius", 0.5)
	snap := Capture(reg, Aux{PaletteIndex: 4, InvertColors: true})
	mappings := []overlay.Mapping{
		{Key: "contrast", Source: overlay.SourceOverall, Sensitivity: 0.8, Mode: overlay.ModeMultiply},
	}

	data, err := EncodeDocument(snap, mappings, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	doc, err := DecodeDocument(data)
	require.NoError(t, err)
	require.Equal(t, DocumentVersion, doc.Version)
	require.Equal(t, "2026-03-01T12:00:00Z", doc.Timestamp)
	require.Equal(t, 0.5, doc.Parameters["truchet_radius"])
	require.Equal(t, mappings, doc.Mappings())

	fresh := newReg(t)
	aux, skipped := ApplyDocument(fresh, doc, Aux{})
	require.Empty(t, skipped)
	require.Equal(t, 4, aux.PaletteIndex)
	require.True(t, aux.InvertColors)
	v, _ := fresh.BaseValue("truchet_radius")
	require.Equal(t, 0.5, v)
}

func TestDecodeRejectsStructuralCorruption(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", `{"version": "1", `},
		{"missing version", `{"parameters": {}}`},
		{"future version", `{"version": "99", "parameters": {}}`},
		{"missing parameters", `{"version": "1"}`},
	}
	for _, c := range cases {
		_, err := DecodeDocument([]byte(c.data))
		require.Error(t, err, c.name)
		require.True(t, errors.Is(err, ErrMalformedDocument), c.name)
	}
}

func TestApplyDocumentLeavesAbsentKeysUntouched(t *testing.T) {
	reg := newReg(t)
	snap := Capture(reg, Aux{})
	data, err := EncodeDocument(snap, nil, time.Now())
	require.NoError(t, err)

	// Strip layer_count from the document, as an older save would lack it.
	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	delete(doc.Parameters, "layer_count")
	stripped, err := json.Marshal(doc)
	require.NoError(t, err)

	target := newReg(t)
	target.Set("layer_count", 23)
	parsed, err := DecodeDocument(stripped)
	require.NoError(t, err)
	_, skipped := ApplyDocument(target, parsed, Aux{})
	require.Empty(t, skipped)

	lc, _ := target.BaseValue("layer_count")
	require.Equal(t, 23.0, lc)
}

func TestApplyDocumentReportsAndSkipsUnknownKeys(t *testing.T) {
	reg := newReg(t)
	doc := &Document{
		Version: DocumentVersion,
		Parameters: map[string]float64{
			"contrast":    1.7000000000000002,
			"ghost_param": 3.0,
			"other_ghost": 4.0,
			"layer_count": 8,
		},
	}
	_, skipped := ApplyDocument(reg, doc, Aux{})
	require.ElementsMatch(t, []string{"ghost_param", "other_ghost"}, skipped)
	lc, _ := reg.BaseValue("layer_count")
	require.Equal(t, 8.0, lc)
}

func TestApplyDocumentClampsHostileValues(t *testing.T) {
	reg := newReg(t)
	doc := &Document{
		Version: DocumentVersion,
		Parameters: map[string]float64{
			"contrast":  1e18,
			"fly_speed": -1e18,
		},
	}
	_, _ = ApplyDocument(reg, doc, Aux{})
	c, _ := reg.BaseValue("contrast")
	require.Equal(t, 5.0, c)
	f, _ := reg.BaseValue("fly_speed")
	require.Equal(t, -3.0, f)
}
