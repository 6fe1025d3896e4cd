package navigate

import (
	"testing"

	"github.com/bmorelli/kaleido-go/internal/registry"
)

func buildIndex(t *testing.T) (*registry.Registry, *Index) {
	t.Helper()
	reg, err := registry.New(registry.Table())
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	return reg, Build(reg, registry.Categories())
}

func TestArtisticCategoryLeads(t *testing.T) {
	_, ix := buildIndex(t)
	cats := ix.Categories()
	if len(cats) == 0 {
		t.Fatal("no categories")
	}
	if cats[0].Name != registry.CategoryArtistic {
		t.Fatalf("first category = %q, want %q", cats[0].Name, registry.CategoryArtistic)
	}
}

func TestFlattenCoversEveryKeyOnce(t *testing.T) {
	reg, ix := buildIndex(t)
	flat := ix.Flatten()
	if len(flat) != reg.Len() {
		t.Fatalf("flatten has %d keys, registry has %d", len(flat), reg.Len())
	}
	seen := make(map[string]bool, len(flat))
	for _, k := range flat {
		if seen[k] {
			t.Fatalf("key %q appears twice in flatten", k)
		}
		seen[k] = true
	}
}

func TestStepWrapsAroundBothEnds(t *testing.T) {
	reg, ix := buildIndex(t)
	var c Cursor

	first := c.Current(ix, ContextAll)
	back := c.Step(ix, ContextAll, -1)
	flat := ix.Flatten()
	if back != flat[len(flat)-1] {
		t.Fatalf("step -1 from start = %q, want last key %q", back, flat[len(flat)-1])
	}
	forward := c.Step(ix, ContextAll, 1)
	if forward != first {
		t.Fatalf("wrap forward = %q, want %q", forward, first)
	}
	_ = reg
}

func TestArtisticContextWalksOnlyArtisticTier(t *testing.T) {
	reg, ix := buildIndex(t)
	var c Cursor
	n := 0
	start := c.Current(ix, ContextArtistic)
	for {
		d, ok := reg.Get(c.Current(ix, ContextArtistic))
		if !ok || d.Tier != registry.TierArtistic {
			t.Fatalf("artistic walk reached %q (tier %v)", c.Current(ix, ContextArtistic), d.Tier)
		}
		n++
		if c.Step(ix, ContextArtistic, 1) == start {
			break
		}
		if n > reg.Len() {
			t.Fatal("artistic walk never wrapped")
		}
	}
	if n != 16 {
		t.Fatalf("artistic walk visited %d keys, want 16", n)
	}
}

func TestContextSwitchNeverOutOfBounds(t *testing.T) {
	_, ix := buildIndex(t)
	var c Cursor
	for i := 0; i < 30; i++ {
		c.Step(ix, ContextAll, 1)
	}
	// Position 30 is out of range for the 16-key artistic sequence; the
	// cursor must clamp, not panic or return "".
	c.SetPosition(ContextArtistic, 30)
	if got := c.Current(ix, ContextArtistic); got == "" {
		t.Fatal("clamped artistic cursor returned empty key")
	}
	c.SetPosition(ContextAll, -5)
	if got := c.Current(ix, ContextAll); got == "" {
		t.Fatal("negative cursor returned empty key")
	}
}
