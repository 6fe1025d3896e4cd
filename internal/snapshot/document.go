package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bmorelli/kaleido-go/internal/overlay"
	"github.com/bmorelli/kaleido-go/internal/palette"
	"github.com/bmorelli/kaleido-go/internal/registry"
)

// DocumentVersion is the current persisted schema version.
const DocumentVersion = "1"

// ErrMalformedDocument wraps any structural failure while decoding a
// persisted document. Structural corruption fails loudly; missing optional
// fields do not.
var ErrMalformedDocument = errors.New("malformed state document")

// Document is the JSON form used for file save/load and URL sharing.
// Optional blocks are pointers so an absent block is distinguishable from a
// zero one; loaders apply whatever subset is present.
type Document struct {
	Version    string             `json:"version"`
	Timestamp  string             `json:"timestamp,omitempty"`
	Parameters map[string]float64 `json:"parameters"`
	Color      *ColorBlock        `json:"color,omitempty"`
	Audio      []MappingEntry     `json:"audio_mappings,omitempty"`
}

// ColorBlock carries palette and color-mode state.
type ColorBlock struct {
	PaletteIndex *int  `json:"palette_index,omitempty"`
	ColorMode    *int  `json:"color_mode,omitempty"`
	Invert       *bool `json:"invert,omitempty"`
}

// MappingEntry is one persisted audio-to-parameter routing tuple.
type MappingEntry struct {
	Key         string  `json:"key"`
	Source      int     `json:"source"`
	Sensitivity float64 `json:"sensitivity"`
	Mode        int     `json:"mode"`
}

// EncodeDocument serializes a snapshot plus the custom mapping table.
func EncodeDocument(s Snapshot, mappings []overlay.Mapping, now time.Time) ([]byte, error) {
	doc := Document{
		Version:    DocumentVersion,
		Timestamp:  now.UTC().Format(time.RFC3339),
		Parameters: make(map[string]float64, len(s.Params)),
	}
	for k, v := range s.Params {
		doc.Parameters[k] = v
	}
	idx := s.Aux.PaletteIndex
	mode := int(s.Aux.ColorMode)
	invert := s.Aux.InvertColors
	doc.Color = &ColorBlock{PaletteIndex: &idx, ColorMode: &mode, Invert: &invert}
	for _, m := range mappings {
		doc.Audio = append(doc.Audio, MappingEntry{
			Key:         m.Key,
			Source:      int(m.Source),
			Sensitivity: m.Sensitivity,
			Mode:        int(m.Mode),
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// DecodeDocument parses and structurally validates data without touching any
// live state. Unknown parameter keys are tolerated here; callers learn about
// them from ApplyDocument.
func DecodeDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if doc.Version == "" {
		return nil, fmt.Errorf("%w: missing version", ErrMalformedDocument)
	}
	if doc.Version != DocumentVersion {
		return nil, fmt.Errorf("%w: unsupported version %q", ErrMalformedDocument, doc.Version)
	}
	if doc.Parameters == nil {
		return nil, fmt.Errorf("%w: missing parameters block", ErrMalformedDocument)
	}
	return &doc, nil
}

// ApplyDocument writes doc's parameter values into reg (clamped through Set)
// and merges the color block into aux. It returns the parameter keys that
// were skipped because they are not registered. Registered parameters absent
// from doc keep their current values.
func ApplyDocument(reg *registry.Registry, doc *Document, aux Aux) (Aux, []string) {
	var skipped []string
	for key, v := range doc.Parameters {
		if !reg.Set(key, v) {
			skipped = append(skipped, key)
		}
	}
	if doc.Color != nil {
		if doc.Color.PaletteIndex != nil {
			aux.PaletteIndex = *doc.Color.PaletteIndex
		}
		if doc.Color.ColorMode != nil {
			aux.ColorMode = palette.ColorMode(*doc.Color.ColorMode)
		}
		if doc.Color.Invert != nil {
			aux.InvertColors = *doc.Color.Invert
		}
	}
	return aux, skipped
}

// Mappings converts the persisted audio block back into overlay mappings.
func (d *Document) Mappings() []overlay.Mapping {
	if len(d.Audio) == 0 {
		return nil
	}
	out := make([]overlay.Mapping, 0, len(d.Audio))
	for _, e := range d.Audio {
		out = append(out, overlay.Mapping{
			Key:         e.Key,
			Source:      overlay.Source(e.Source),
			Sensitivity: e.Sensitivity,
			Mode:        overlay.Mode(e.Mode),
		})
	}
	return out
}
