package kaleido

import (
	"errors"
	"time"

	"github.com/bmorelli/kaleido-go/internal/navigate"
	"github.com/bmorelli/kaleido-go/internal/snapshot"
)

// ErrMalformedDocument reports structural corruption in a persisted state
// document. It is the only error the load path produces; everything softer
// (unknown keys, out-of-range values) is tolerated.
var ErrMalformedDocument = snapshot.ErrMalformedDocument

// SaveDocument serializes the full state — every parameter base value of
// both tiers, the color block, and any custom mapping table — into the
// versioned JSON document used for file save and URL sharing.
func (c *Core) SaveDocument() ([]byte, error) {
	c.mu.Lock()
	snap := c.captureLocked()
	mappings := c.mapper.Custom()
	c.mu.Unlock()
	return snapshot.EncodeDocument(snap, mappings, time.Now())
}

// LoadDocument validates data fully before touching live state, then records
// one undo step and applies the document: every recognized parameter value
// is clamped through the usual setter, unknown keys are skipped and
// returned, absent keys keep their current values. Structural corruption
// returns an error wrapping ErrMalformedDocument with nothing mutated.
func (c *Core) LoadDocument(data []byte) ([]string, error) {
	doc, err := snapshot.DecodeDocument(data)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.recordLocked()
	aux, skipped := snapshot.ApplyDocument(c.reg, doc, snapshot.Aux{
		PaletteIndex:   c.color.Index,
		ColorMode:      c.color.Mode,
		InvertColors:   c.color.Invert,
		ArtisticCursor: c.cursor.Position(navigate.ContextArtistic),
		DebugCursor:    c.cursor.Position(navigate.ContextAll),
	})
	c.color.Index = clampPaletteIndex(aux.PaletteIndex, len(c.palettes))
	c.color.Mode = aux.ColorMode
	c.color.Invert = aux.InvertColors
	if m := doc.Mappings(); m != nil {
		c.mapper.SetCustom(m)
	}
	return skipped, nil
}

func clampPaletteIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// IsMalformed reports whether err came from document parsing rather than an
// I/O failure.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedDocument)
}
